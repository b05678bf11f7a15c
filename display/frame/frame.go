// Package frame composes the dashboard's terminal paint: the title
// row, the current-conditions box with its gauges, the split forecast
// box, the alert line, and the footer. Composition is pure string
// assembly over a fixed Geometry; the caller owns all terminal I/O.
package frame

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"

	"gitlab.com/tinyland/lab/wtop/display/layout"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// Minimum terminal size the dashboard will draw into.
const (
	MinWidth  = 80
	MinHeight = 24
)

var (
	bold      = color.New(color.Bold)
	boldCyan  = color.New(color.FgCyan, color.Bold)
	cyan      = color.New(color.FgCyan)
	yellow    = color.New(color.FgYellow)
	magenta   = color.New(color.FgMagenta)
	faint     = color.New(color.Faint)
	alertBold = color.New(color.FgRed, color.Bold)
	alertWarn = color.New(color.FgYellow, color.Bold)
)

// Config controls frame composition.
type Config struct {
	// Geometry fixes the frame's column arithmetic. The caller
	// recomputes it after a terminal resize and builds a new Frame.
	Geometry layout.Geometry

	// RefreshInterval appears in the footer line.
	RefreshInterval time.Duration

	// Clock supplies the current-time row. Nil means time.Now.
	Clock func() time.Time
}

// Frame renders weather reports into dashboard paints.
type Frame struct {
	geo      layout.Geometry
	interval time.Duration
	clock    func() time.Time
}

// New creates a Frame for the given configuration. A nil Clock
// defaults to time.Now and a zero RefreshInterval to five seconds.
func New(cfg Config) *Frame {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 5 * time.Second
	}
	return &Frame{
		geo:      cfg.Geometry,
		interval: cfg.RefreshInterval,
		clock:    cfg.Clock,
	}
}

// Render composes the complete dashboard for one report:
//
//	title row
//	current conditions box (conditions, gauges)
//	forecast box (hourly | daily)
//	alert line, when any alert is active
//	footer
//
// Every boxed row occupies exactly Geometry.Total columns.
func (f *Frame) Render(rep *weather.Report) string {
	rows := make([]string, 0, 32)

	rows = append(rows, f.titleRow(rep.Location))
	rows = append(rows, f.geo.TopBorder())
	rows = append(rows, f.currentRows(rep.Current)...)
	rows = append(rows, f.gaugeRows(rep.Current)...)
	rows = append(rows, f.geo.BottomBorder())
	rows = append(rows, f.forecastRows(rep.Hourly, rep.Daily)...)
	if line := f.alertRow(rep.Alerts); line != "" {
		rows = append(rows, line)
	}
	rows = append(rows, "", f.footerRow())

	return strings.Join(rows, "\n")
}

// titleRow renders the borderless heading above the first box, padded
// to the full frame width.
func (f *Frame) titleRow(location string) string {
	title := boldCyan.Sprintf("WTOP - Weather Dashboard for %s", location)
	return " " + centerTo(title, f.geo.Inner) + " "
}

// alertRow returns the worst active alert as a single colored line, or
// "" when no alert is active. Alerts arrive most severe first.
func (f *Frame) alertRow(alerts []weather.Alert) string {
	if len(alerts) == 0 {
		return ""
	}
	worst := alerts[0]
	text := worst.Headline
	if text == "" {
		text = worst.Event
	}
	line := severityColor(worst.Severity).Sprintf("⚠ %s", text)
	return layout.Truncate(line, f.geo.Total)
}

// footerRow renders the refresh notice, centered to the frame width.
func (f *Frame) footerRow() string {
	secs := int(math.Round(f.interval.Seconds()))
	if secs < 1 {
		secs = 1
	}
	msg := fmt.Sprintf("Updates every %d seconds | Press Ctrl+C to exit", secs)
	pad := (f.geo.Total - len(msg)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + faint.Sprint(msg)
}

// TooSmall returns the message shown instead of a frame when the
// terminal is below the minimum size.
func TooSmall(width, height int) string {
	return fmt.Sprintf("Terminal too small! Minimum size: %dx%d\nCurrent size: %dx%d",
		MinWidth, MinHeight, width, height)
}

// severityColor maps an alert severity to its display color.
func severityColor(s weather.Severity) *color.Color {
	switch s {
	case weather.SeverityExtreme, weather.SeveritySevere:
		return alertBold
	case weather.SeverityModerate:
		return alertWarn
	default:
		return cyan
	}
}

// row wraps content in the frame's single-column borders.
func (f *Frame) row(content string) string {
	return layout.RenderRow(content, f.geo.Inner)
}

// centerTo pads s with spaces to exactly width columns, extra space on
// the right when the padding is odd.
func centerTo(s string, width int) string {
	pad := width - layout.Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
