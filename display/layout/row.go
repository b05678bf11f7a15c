package layout

import "strings"

// Box-drawing characters for frame borders. The set is fixed; the
// geometry decides where each junction lands.
const (
	horizontal  = '─'
	vertical    = '│'
	topLeft     = '┌'
	topRight    = '┐'
	bottomLeft  = '└'
	bottomRight = '┘'
	teeRight    = '├'
	teeLeft     = '┤'
	teeDown     = '┬'
	teeUp       = '┴'
	cross       = '┼'
)

// ellipsis marks truncated content. Three columns wide.
const ellipsis = "..."

// RenderRow wraps content in border characters, padded or truncated so
// the visible width of the result is exactly innerWidth+2 for any
// innerWidth >= 0 and any content, however many escape sequences it
// embeds.
//
// Content wider than innerWidth is cut to innerWidth-3 columns with an
// ellipsis appended; the cut closes any open style sequence first so the
// ellipsis and border render unstyled. When innerWidth is too narrow to
// hold the ellipsis itself, content is hard-cut to innerWidth with no
// marker, keeping the width contract intact even in the degenerate case.
func RenderRow(content string, innerWidth int) string {
	return string(vertical) + fit(content, innerWidth) + string(vertical)
}

// RenderSplitRow renders a two-column row: border, left content fitted
// to leftWidth, border, right content fitted to rightWidth, border. The
// visible width of the result is exactly leftWidth+rightWidth+3.
//
// Each column is fitted independently by the RenderRow rule. As a
// safety net the assembled row is re-measured and the right column's
// padding corrected if the total drifts; with the single width function
// in this package the correction never fires, and a test asserts that.
func RenderSplitRow(left, right string, leftWidth, rightWidth int) string {
	l := fit(left, leftWidth)
	r := fit(right, rightWidth)
	row := string(vertical) + l + string(vertical) + r + string(vertical)

	want := leftWidth + rightWidth + 3
	if got := Width(row); got != want {
		r = correct(r, rightWidth+want-got)
		row = string(vertical) + l + string(vertical) + r + string(vertical)
	}
	return row
}

// CenterRow renders content centered within innerWidth and wrapped in
// borders. Content that does not fit is truncated by the RenderRow rule.
func CenterRow(content string, innerWidth int) string {
	pad := innerWidth - Width(content)
	if pad <= 0 {
		return RenderRow(content, innerWidth)
	}
	return RenderRow(strings.Repeat(" ", pad/2)+content, innerWidth)
}

// fit pads or truncates s to exactly width visible columns.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := Width(s)
	if w <= width {
		return s + strings.Repeat(" ", width-w)
	}
	if width < len(ellipsis) {
		return truncateTo(s, width)
	}
	return truncateTo(s, width-len(ellipsis)) + ellipsis
}

// correct pads or trims trailing spaces so s occupies exactly width
// visible columns. Trimming falls back to a hard truncate if the excess
// is not plain padding.
func correct(s string, width int) string {
	if width < 0 {
		width = 0
	}
	w := Width(s)
	switch {
	case w < width:
		return s + strings.Repeat(" ", width-w)
	case w > width:
		trimmed := strings.TrimRight(s, " ")
		if tw := Width(trimmed); tw <= width {
			return trimmed + strings.Repeat(" ", width-tw)
		}
		return truncateTo(trimmed, width)
	}
	return s
}

// TopBorder returns the single-column top border for the geometry.
func (g Geometry) TopBorder() string {
	return line(topLeft, topRight, g.Inner)
}

// BottomBorder returns the single-column bottom border.
func (g Geometry) BottomBorder() string {
	return line(bottomLeft, bottomRight, g.Inner)
}

// Divider returns a full-width horizontal rule joining the side borders.
func (g Geometry) Divider() string {
	return line(teeRight, teeLeft, g.Inner)
}

// SplitTopBorder returns the top border of a two-column section, with a
// downward tee at the split.
func (g Geometry) SplitTopBorder() string {
	return splitLine(topLeft, teeDown, topRight, g)
}

// SplitBottomBorder returns the bottom border of a two-column section,
// with an upward tee at the split.
func (g Geometry) SplitBottomBorder() string {
	return splitLine(bottomLeft, teeUp, bottomRight, g)
}

// SplitDivider returns the rule that separates rows inside a two-column
// section, crossing at the split.
func (g Geometry) SplitDivider() string {
	return splitLine(teeRight, cross, teeLeft, g)
}

func line(left, right rune, inner int) string {
	return string(left) + strings.Repeat(string(horizontal), inner) + string(right)
}

func splitLine(left, mid, right rune, g Geometry) string {
	return string(left) +
		strings.Repeat(string(horizontal), g.LeftInner) +
		string(mid) +
		strings.Repeat(string(horizontal), g.RightInner) +
		string(right)
}
