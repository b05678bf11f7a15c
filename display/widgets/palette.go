// Package widgets renders the dashboard's content fragments: gauges,
// forecast tables, condition icons and art, compass glyphs, and
// sparklines. Widgets produce styled strings only; framing them into
// bordered rows is the layout package's job.
package widgets

import "github.com/fatih/color"

// The dashboard palette. Weather values map onto plain terminal colors
// so the thresholds read the same on any scheme: red is hot, blue is
// cool, cyan is cold.
var (
	red     = color.New(color.FgRed)
	yellow  = color.New(color.FgYellow)
	green   = color.New(color.FgGreen)
	blue    = color.New(color.FgBlue)
	cyan    = color.New(color.FgCyan)
	magenta = color.New(color.FgMagenta)
	white   = color.New(color.FgWhite)
)

// TempColor returns the color for a temperature in Fahrenheit: above
// 85 red, above 75 yellow, above 65 green, otherwise blue.
func TempColor(temp float64) *color.Color {
	switch {
	case temp > 85:
		return red
	case temp > 75:
		return yellow
	case temp > 65:
		return green
	default:
		return blue
	}
}

// LowTempColor returns the color for a daily low, one band cooler than
// TempColor so overnight lows in the 40s read cold rather than merely
// cool.
func LowTempColor(temp float64) *color.Color {
	switch {
	case temp > 75:
		return yellow
	case temp > 65:
		return green
	case temp > 55:
		return blue
	default:
		return cyan
	}
}
