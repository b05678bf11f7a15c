package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/wtop/display/widgets"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// renderHourlyContent renders the Hourly tab: a table of the next hours
// with a temperature trend sparkline above it.
func renderHourlyContent(rep *weather.Report, width, height int) string {
	if rep == nil || len(rep.Hourly) == 0 {
		return "No hourly forecast available"
	}

	cfg := LayoutForSize(DetectLayout(width), width)

	var sections []string
	sections = append(sections, sectionTitle("Hourly Forecast", titleWidth(cfg)))
	sections = append(sections, "")

	records := rep.Hourly
	maxRows := height - 7
	if maxRows < 3 {
		maxRows = 3
	}
	if len(records) > maxRows {
		records = records[:maxRows]
	}

	if cfg.ShowSparklines {
		temps := make([]float64, 0, len(records))
		for _, r := range records {
			temps = append(temps, r.Temp)
		}
		sections = append(sections, widgets.TemperatureTrend(temps, len(temps)), "")
	}

	table := widgets.DefaultTableConfig()
	table.MaxWidth = cfg.TableMaxWidth
	table.Columns = []widgets.Column{
		{Title: "Time", Width: 6},
		{Title: "Temp", Width: 6, Align: widgets.AlignRight},
		{Title: "Conditions"},
		{Title: "Wind", Width: 12},
		{Title: "Precip", Width: 6, Align: widgets.AlignRight},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Time.Format("15:04"),
			tempStyle(r.Temp).Render(fmt.Sprintf("%.0f°F", r.Temp)),
			r.Condition,
			fmt.Sprintf("%g mph %s", r.WindSpeed, widgets.DirectionName(r.WindDeg)),
			precipCell(r),
		})
	}
	sections = append(sections, widgets.RenderTable(table))

	return strings.Join(sections, "\n")
}

// precipCell formats the precipitation column: probability when known,
// otherwise accumulation, otherwise a dash.
func precipCell(r weather.Record) string {
	if r.PrecipProb > 0 {
		return fmt.Sprintf("%.0f%%", r.PrecipProb)
	}
	if amt := r.Rain1h + r.Snow1h; amt > 0 {
		return fmt.Sprintf("%.1fmm", amt)
	}
	return "-"
}

// titleWidth caps section titles at a readable width on wide terminals.
func titleWidth(cfg LayoutConfig) int {
	if cfg.TableMaxWidth > 60 {
		return 60
	}
	return cfg.TableMaxWidth
}
