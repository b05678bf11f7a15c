package layout

import "fmt"

// Geometry describes the fixed widths of one dashboard frame. All values
// derive from the total width: the single-column inner width, and for
// two-column sections a split offset with independent left and right
// inner widths. A Geometry is immutable; the poll loop builds a fresh
// one whenever the terminal size changes and passes it into every render
// call, so no renderer ever holds width state of its own.
//
// The border arithmetic is exact by construction:
//
//	1 + LeftInner + 1 + RightInner + 1 == Total
type Geometry struct {
	// Total is the full frame width including both border columns.
	Total int
	// Inner is the single-column content width, Total-2.
	Inner int
	// Split is the column index of the middle border in two-column
	// sections, at 60% of the total width.
	Split int
	// LeftInner is the content width left of the split, Split-1.
	LeftInner int
	// RightInner is the content width right of the split, Total-Split-2.
	RightInner int
}

// NewGeometry derives a frame geometry from a total width. The total
// must leave at least one content column on each side of the split;
// anything narrower is a configuration error, reported here rather than
// silently producing a mis-sized frame.
func NewGeometry(total int) (Geometry, error) {
	g := Geometry{
		Total: total,
		Inner: total - 2,
		Split: total * 3 / 5,
	}
	g.LeftInner = g.Split - 1
	g.RightInner = total - g.Split - 2

	if g.LeftInner < 1 || g.RightInner < 1 {
		return Geometry{}, fmt.Errorf("layout: total width %d cannot hold a split frame", total)
	}
	return g, nil
}

// FrameWidth returns the frame width for a terminal of the given column
// count: the terminal width minus a two-column margin, capped at max for
// readability on very wide terminals.
func FrameWidth(termWidth, max int) int {
	w := termWidth - 2
	if w > max {
		w = max
	}
	return w
}
