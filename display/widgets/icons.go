package widgets

import (
	"strings"

	"github.com/fatih/color"
)

// ConditionIcon returns the emoji and color for a forecast condition.
// Matching is by keyword on the condition text NWS reports, most
// specific first, so "Partly Cloudy" gets the sun-behind-cloud glyph
// rather than the cloud.
func ConditionIcon(condition string) (string, *color.Color) {
	switch {
	case strings.Contains(condition, "Sunny") || strings.Contains(condition, "Clear"):
		return "☀️", yellow
	case strings.Contains(condition, "Partly"):
		return "⛅", cyan
	case strings.Contains(condition, "Cloud"):
		return "☁️", white
	case strings.Contains(condition, "Rain"):
		return "🌧️", blue
	case strings.Contains(condition, "Thunder"):
		return "⛈️", magenta
	default:
		return "🌤️", white
	}
}

// artLines is the height of the condition art block, one line per row
// of the current conditions panel it decorates.
const artLines = 5

// Art blocks keep a fixed width per variant so the text column to the
// right of them stays aligned across all five rows.
var (
	clearArt = [artLines]string{
		"     \\   /      ",
		"      .-.       ",
		"   ― (   ) ―    ",
		"      `-'       ",
		"     /   \\      ",
	}
	cloudArt = [artLines]string{
		"       .--.      ",
		"    .-(    ).    ",
		"   (___.__)__)   ",
		"                 ",
		"                 ",
	}
	rainArt = [artLines]string{
		"      .-.        ",
		"     (   ).      ",
		"    (___(__)     ",
		"    ' ' ' '      ",
		"   ' ' ' '       ",
	}
)

// ConditionArt returns the five art lines shown beside the current
// conditions text: a sun for clear skies, a cloud bank, or a raining
// cloud. Conditions without art get empty lines so the panel keeps its
// shape either way.
func ConditionArt(condition string) []string {
	kind := strings.ToLower(condition)
	switch {
	case strings.Contains(kind, "clear") || strings.Contains(kind, "sunny"):
		return paintArt(clearArt, yellow, yellow)
	case strings.Contains(kind, "cloud"):
		return paintArt(cloudArt, cyan, cyan)
	case strings.Contains(kind, "rain") || strings.Contains(kind, "shower"):
		return paintArt(rainArt, cyan, blue)
	default:
		lines := make([]string, artLines)
		return lines
	}
}

// paintArt colors the cloud body with body and the last two lines with
// tail, which lets rain fall in a different color than its cloud. Blank
// lines stay unstyled.
func paintArt(art [artLines]string, body, tail *color.Color) []string {
	lines := make([]string, artLines)
	for i, line := range art {
		if strings.TrimSpace(line) == "" {
			lines[i] = line
			continue
		}
		paint := body
		if i >= 3 {
			paint = tail
		}
		lines[i] = paint.Sprint(line)
	}
	return lines
}
