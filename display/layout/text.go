// Package layout implements the fixed-width frame geometry and row
// rendering for the dashboard.
//
// Every row printed inside a frame goes through this package, which
// guarantees that a rendered row always occupies exactly the width its
// geometry promises, no matter how many color escape sequences or
// double-width characters the content carries. Width accounting is
// delegated to a single display-width function so that wide and
// pictographic characters count as two columns everywhere.
package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Width returns the number of terminal columns s occupies once escape
// sequences are removed. East-Asian wide characters and pictographic
// symbols count as two columns. This is the only width measure used by
// the renderers; mixing it with naive character counts reintroduces the
// alignment drift it exists to prevent.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Strip removes every terminal escape sequence from s, leaving only the
// visible characters. Stripping an already-stripped string is a no-op.
// Malformed sequences are handled best-effort and never cause an error.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Truncate cuts s to at most width visible columns. Escape sequences in
// the kept portion are preserved and a wide character is never split.
// Because a wide character straddling the cut can leave the result one
// column short, callers needing an exact width should use truncateTo.
func Truncate(s string, width int) string {
	return ansi.Truncate(s, width, "")
}

// truncateTo cuts s to exactly width visible columns, closing any style
// sequence left open by the cut. A wide character straddling the cut is
// dropped and the missing column filled with an unstyled space.
func truncateTo(s string, width int) string {
	if width <= 0 {
		return ansi.ResetStyle
	}
	t := ansi.Truncate(s, width, "")
	short := width - ansi.StringWidth(t)
	t += ansi.ResetStyle
	if short > 0 {
		t += strings.Repeat(" ", short)
	}
	return t
}
