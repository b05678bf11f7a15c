package frame

import (
	"gitlab.com/tinyland/lab/wtop/display/layout"
	"gitlab.com/tinyland/lab/wtop/display/widgets"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// forecastRows builds the split forecast box: a full-width centered
// title, the column headers, then the hourly and daily tables side by
// side. The shorter column pads with empty rows so both close on the
// same border.
func (f *Frame) forecastRows(hourly, daily []weather.Record) []string {
	g := f.geo

	rows := make([]string, 0, 18)
	rows = append(rows,
		g.SplitTopBorder(),
		layout.CenterRow(bold.Sprint("Weather Forecast"), g.Inner),
		g.SplitDivider(),
		layout.RenderSplitRow(
			bold.Sprint("Hourly Forecast (Next 12 Hours)"),
			" "+bold.Sprint("7-Day Forecast"),
			g.LeftInner, g.RightInner),
	)

	left := widgets.HourlyRows(hourly, g.LeftInner)
	right := widgets.DailyRows(daily, g.RightInner)

	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		rows = append(rows, layout.RenderSplitRow(l, r, g.LeftInner, g.RightInner))
	}

	rows = append(rows, g.SplitBottomBorder())
	return rows
}
