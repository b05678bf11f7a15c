// Package format holds the small string and time helpers the TUI tabs
// share.
package format

// Ellipsize truncates s to maxWidth runes, appending "..." when it had
// to cut. Below four columns there is no room for an ellipsis and the
// text is hard-truncated instead.
func Ellipsize(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth < 4 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}
