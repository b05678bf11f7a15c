package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/wtop/display/widgets"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// renderCurrentContent renders the Current tab: present conditions for
// the configured location with gauges for the observation fields that
// have natural scales.
func renderCurrentContent(rep *weather.Report, width, height int) string {
	if rep == nil {
		return "No weather data yet\n\nWaiting for the first fetch from api.weather.gov."
	}

	cfg := LayoutForSize(DetectLayout(width), width)
	cur := rep.Current

	labelStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	mutedStyle := lipgloss.NewStyle().Foreground(colorMuted)

	var sections []string

	sections = append(sections, styleTitle.Render(rep.Location))
	if !rep.Fetched.IsZero() {
		sections = append(sections, mutedStyle.Render("Observed "+formatRelativeTime(rep.Fetched)))
	}
	sections = append(sections, "")

	if cfg.ShowConditionArt {
		art := widgets.ConditionArt(cur.Condition)
		for _, line := range art {
			if strings.TrimSpace(line) != "" {
				sections = append(sections, line)
			}
		}
		if len(art) > 0 && strings.TrimSpace(art[0]) != "" {
			sections = append(sections, "")
		}
	}

	icon, _ := widgets.ConditionIcon(cur.Condition)
	rows := []struct {
		label string
		value string
	}{
		{"Temperature", tempStyle(cur.Temperature).Render(fmt.Sprintf("%.1f°F / %.1f°C", cur.Temperature, weather.FToC(cur.Temperature)))},
		{"Feels Like", tempStyle(cur.FeelsLike).Render(fmt.Sprintf("%.1f°F", cur.FeelsLike))},
		{"Condition", icon + " " + valueStyle.Render(cur.Condition)},
		{"Wind", valueStyle.Render(fmt.Sprintf("%g mph %s %s", cur.WindSpeed, widgets.DirectionName(cur.WindDeg), widgets.DirectionArrow(cur.WindDeg)))},
		{"Sunrise", valueStyle.Render(clockOrNA(cur.Sunrise))},
		{"Sunset", valueStyle.Render(clockOrNA(cur.Sunset))},
	}
	for _, r := range rows {
		sections = append(sections, labelStyle.Render(r.label+":")+" "+r.value)
	}

	sepWidth := width - 4
	if sepWidth < 10 {
		sepWidth = 10
	}
	sections = append(sections, "", mutedStyle.Render(horizontalRule(sepWidth)))

	visKm := cur.Visibility / 1000
	pressurePct := math.Min(100, math.Max(0, (cur.Pressure-970)/60*100))
	visPct := math.Min(100, visKm/10*100)

	sections = append(sections,
		widgets.RenderGauge(cur.Humidity, 100, cfg.GaugeWidth, fmt.Sprintf("Humidity (%g%%)", cur.Humidity)),
		widgets.RenderGauge(cur.CloudCover, 100, cfg.GaugeWidth, fmt.Sprintf("Cloud Cover (%g%%)", cur.CloudCover)),
		widgets.RenderGauge(pressurePct, 100, cfg.GaugeWidth, fmt.Sprintf("Pressure (%g hPa)", cur.Pressure)),
		widgets.RenderGauge(visPct, 100, cfg.GaugeWidth, fmt.Sprintf("Visibility (%.1f km)", visKm)),
	)

	if n := len(rep.Alerts); n > 0 {
		word := "alert"
		if n > 1 {
			word = "alerts"
		}
		alertStyle := lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
		sections = append(sections, "", alertStyle.Render(fmt.Sprintf("⚠ %d active %s - press 4 for details", n, word)))
	}

	for _, w := range rep.Warnings {
		sections = append(sections, mutedStyle.Render(truncateText(w, width-4)))
	}

	return strings.Join(sections, "\n")
}

// clockOrNA formats a wall clock time, or "N/A" when the time is unset.
func clockOrNA(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("15:04")
}

// tempStyle picks a lipgloss color for a Fahrenheit temperature using
// the same bands as the boxed dashboard.
func tempStyle(temp float64) lipgloss.Style {
	switch {
	case temp > 85:
		return lipgloss.NewStyle().Foreground(colorDanger)
	case temp > 75:
		return lipgloss.NewStyle().Foreground(colorWarning)
	case temp > 65:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	default:
		return lipgloss.NewStyle().Foreground(colorSecondary)
	}
}
