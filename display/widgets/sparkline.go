package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkRunes are the eighth-block characters a sparkline is built from,
// lowest to highest.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// SparklineConfig controls a sparkline chart.
type SparklineConfig struct {
	// Data points to render, oldest first.
	Data []float64
	// Width caps the number of cells. Zero means one cell per point;
	// fewer points than cells left-pads with spaces, more keeps the
	// most recent.
	Width int
	// Min and Max fix the value range. Equal values auto-scale from
	// the data.
	Min, Max float64
	// Label is optional text shown before the chart.
	Label string
	// Color styles the chart cells when set.
	Color lipgloss.Color
}

// RenderSparkline renders a one-line block chart of the configured
// series. A flat series renders at mid height rather than collapsing
// to the baseline.
func RenderSparkline(cfg SparklineConfig) string {
	if len(cfg.Data) == 0 {
		return ""
	}

	data := cfg.Data
	width := cfg.Width
	if width <= 0 {
		width = len(data)
	}
	if width < len(data) {
		data = data[len(data)-width:]
	}

	lo, hi := cfg.Min, cfg.Max
	if lo == hi {
		lo, hi = data[0], data[0]
		for _, v := range data {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	cells := make([]rune, 0, len(data))
	for _, v := range data {
		cells = append(cells, sparkRune(v, lo, hi))
	}

	chart := string(cells)
	if width > len(data) {
		chart = strings.Repeat(" ", width-len(data)) + chart
	}
	if cfg.Color != "" {
		chart = lipgloss.NewStyle().Foreground(cfg.Color).Render(chart)
	}
	if cfg.Label != "" {
		chart = cfg.Label + " " + chart
	}
	return chart
}

// sparkRune maps v into the block ramp for the range [lo, hi].
func sparkRune(v, lo, hi float64) rune {
	if lo == hi {
		return sparkRunes[len(sparkRunes)/2]
	}
	normalized := (v - lo) / (hi - lo)
	if normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}
	idx := int(normalized * float64(len(sparkRunes)-1))
	return sparkRunes[idx]
}

// TemperatureTrend renders a temperature series as a sparkline
// bracketed by its low and high in degrees, for the hourly forecast
// view.
func TemperatureTrend(temps []float64, width int) string {
	if len(temps) == 0 {
		return ""
	}
	lo, hi := temps[0], temps[0]
	for _, t := range temps {
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}
	chart := RenderSparkline(SparklineConfig{Data: temps, Width: width})
	return fmt.Sprintf("%.0f°%s%.0f°", lo, chart, hi)
}
