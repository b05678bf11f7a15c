package widgets

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// gaugeLabelCols is the fixed field the gauge label is left-justified
// into, so the bars of a stacked gauge group open at the same column.
const gaugeLabelCols = 25

// RenderGauge draws a horizontal bar gauge: the label in a fixed field,
// then filled blocks and spaces between brackets. The fill fraction is
// value/max clamped to [0, 1]; a non-positive max renders an empty bar
// rather than dividing by it. Any positive value shows at least one
// block so a trace amount never looks like zero.
func RenderGauge(value, max float64, width int, label string) string {
	if width < 0 {
		width = 0
	}

	fraction := 0.0
	if max > 0 {
		fraction = value / max
		if fraction < 0 {
			fraction = 0
		} else if fraction > 1 {
			fraction = 1
		}
	}

	filled := int(float64(width) * fraction)
	if value > 0 && filled == 0 && width > 0 {
		filled = 1
	}

	fill := strings.Repeat("█", filled)
	if filled > 0 {
		fill = gaugeColor(fraction).Sprint(fill)
	}
	bar := "[" + fill + strings.Repeat(" ", width-filled) + "]"

	if label == "" {
		return bar
	}
	return fmt.Sprintf("%-*s%s", gaugeLabelCols, label, bar)
}

// gaugeColor picks the bar color by fill fraction, coolest to hottest.
func gaugeColor(fraction float64) *color.Color {
	switch {
	case fraction < 0.3:
		return blue
	case fraction < 0.6:
		return green
	case fraction < 0.8:
		return yellow
	default:
		return red
	}
}
