package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/wtop/display/widgets"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// renderDailyContent renders the Daily tab: the week ahead with high
// and low temperatures.
func renderDailyContent(rep *weather.Report, width, height int) string {
	if rep == nil || len(rep.Daily) == 0 {
		return "No daily forecast available"
	}

	cfg := LayoutForSize(DetectLayout(width), width)

	var sections []string
	sections = append(sections, sectionTitle("7-Day Forecast", titleWidth(cfg)))
	sections = append(sections, "")

	if cfg.ShowSparklines {
		highs := make([]float64, 0, len(rep.Daily))
		for _, r := range rep.Daily {
			highs = append(highs, r.Temp)
		}
		sections = append(sections, widgets.TemperatureTrend(highs, len(highs)*3), "")
	}

	table := widgets.DefaultTableConfig()
	table.MaxWidth = cfg.TableMaxWidth
	table.Columns = []widgets.Column{
		{Title: "Day", Width: 5},
		{Title: "High", Width: 5, Align: widgets.AlignRight},
		{Title: "Low", Width: 5, Align: widgets.AlignRight},
		{Title: "Conditions"},
		{Title: "Precip", Width: 6, Align: widgets.AlignRight},
	}
	for _, r := range rep.Daily {
		table.Rows = append(table.Rows, []string{
			r.Time.Format("Mon"),
			tempStyle(r.Temp).Render(fmt.Sprintf("%.0f°", r.Temp)),
			lowTempStyle(r.Low).Render(fmt.Sprintf("%.0f°", r.Low)),
			r.Condition,
			precipCell(r),
		})
	}
	sections = append(sections, widgets.RenderTable(table))

	return strings.Join(sections, "\n")
}

// lowTempStyle picks a lipgloss color for a daily low temperature.
func lowTempStyle(temp float64) lipgloss.Style {
	switch {
	case temp > 75:
		return lipgloss.NewStyle().Foreground(colorWarning)
	case temp > 65:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case temp > 55:
		return lipgloss.NewStyle().Foreground(colorSecondary)
	default:
		return lipgloss.NewStyle().Foreground(colorPrimary)
	}
}
