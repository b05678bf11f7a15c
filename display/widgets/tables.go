package widgets

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"gitlab.com/tinyland/lab/wtop/display/layout"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// Row bounds for the two forecast tables. Fewer records produce fewer
// rows; the tables never pad with placeholder rows.
const (
	hourlyBound = 12
	dailyBound  = 7
)

// Hourly table column widths. The fixed set fits the narrowest frame
// the dashboard accepts, so only the adaptive daily table ever changes
// shape.
const (
	hourlyMargin   = 2
	hourlyDateCols = 5
	hourlyTimeCols = 5
	hourlyTempCols = 6
	hourlyCondCols = 10
	hourlyWindCols = 8
	hourlyRainCols = 4
)

const dailyMargin = 1

// HourlyRows builds the hourly forecast table for the left column of
// the forecast frame: a header row, a separator row, and one data row
// per record, at most twelve. Every row is padded to exactly width
// visible columns so the split row renderer passes it through
// unchanged.
func HourlyRows(records []weather.Record, width int) []string {
	rows := make([]string, 0, hourlyBound+2)

	header := strings.Repeat(" ", hourlyMargin) +
		center("Date", hourlyDateCols) + "│" +
		center("Time", hourlyTimeCols) + "│" +
		center("Temp", hourlyTempCols) + "│" +
		center("Condition", hourlyCondCols) + "│" +
		center("Wind", hourlyWindCols) + "│" +
		center("Rain", hourlyRainCols)
	rows = append(rows, padTo(header, width, " "))

	sep := strings.Repeat(" ", hourlyMargin) +
		strings.Repeat("─", hourlyDateCols) + "┼" +
		strings.Repeat("─", hourlyTimeCols) + "┼" +
		strings.Repeat("─", hourlyTempCols) + "┼" +
		strings.Repeat("─", hourlyCondCols) + "┼" +
		strings.Repeat("─", hourlyWindCols) + "┼" +
		strings.Repeat("─", hourlyRainCols)
	rows = append(rows, padTo(sep, width, "─"))

	for i, r := range records {
		if i == hourlyBound {
			break
		}
		rows = append(rows, hourlyRow(r, width))
	}
	return rows
}

func hourlyRow(r weather.Record, width int) string {
	date := fmt.Sprintf("%d/%d", int(r.Time.Month()), r.Time.Day())
	clock := r.Time.Format("15:04")

	temp := fmt.Sprintf("%.1f", r.Temp)
	tempCell := center(TempColor(r.Temp).Sprint(temp), hourlyTempCols)

	wind := fmt.Sprintf("%.0fmph%s", r.WindSpeed, DirectionArrow(r.WindDeg))
	if utf8.RuneCountInString(wind) > hourlyWindCols {
		wind = string([]rune(wind)[:hourlyWindCols])
	}

	row := strings.Repeat(" ", hourlyMargin) +
		center(date, hourlyDateCols) + "│" +
		center(clock, hourlyTimeCols) + "│" +
		tempCell + "│" +
		center(clip(r.Condition, hourlyCondCols), hourlyCondCols) + "│" +
		center(wind, hourlyWindCols) + "│" +
		rainCell(precipAmount(r), hourlyPrecipColor, hourlyRainCols)
	return padTo(row, width, " ")
}

// dailyWidths holds the adaptive column widths of the daily table.
type dailyWidths struct {
	day, icon, temp, cond, rain int
}

// dailyLayout sizes the daily table for the right column width: the
// full shape when there is room, a compact one on narrow frames. Only
// the condition column absorbs the remaining slack.
func dailyLayout(width int) dailyWidths {
	if width > 40 {
		w := dailyWidths{day: 6, icon: 3, temp: 8, cond: width - 30, rain: 5}
		if w.cond > 10 {
			w.cond = 10
		}
		return w
	}
	w := dailyWidths{day: 4, icon: 2, temp: 7, cond: width - 25, rain: 4}
	if w.cond > 8 {
		w.cond = 8
	}
	if w.cond < 1 {
		w.cond = 1
	}
	return w
}

// DailyRows builds the day-by-day forecast table for the right column
// of the forecast frame, at most seven rows after the header and
// separator. The icon column holds the condition emoji; its padding is
// measured, not assumed, so a narrow glyph cannot skew the columns
// after it.
func DailyRows(records []weather.Record, width int) []string {
	w := dailyLayout(width)
	rows := make([]string, 0, dailyBound+2)

	header := strings.Repeat(" ", dailyMargin) +
		center("Day", w.day) + "│" +
		strings.Repeat(" ", w.icon) + "│" +
		center("Hi/Lo", w.temp) + "│" +
		center("Weather", w.cond) + "│" +
		center("Rain", w.rain)
	rows = append(rows, padTo(header, width, " "))

	sep := strings.Repeat(" ", dailyMargin) +
		strings.Repeat("─", w.day) + "┼" +
		strings.Repeat("─", w.icon) + "┼" +
		strings.Repeat("─", w.temp) + "┼" +
		strings.Repeat("─", w.cond) + "┼" +
		strings.Repeat("─", w.rain)
	rows = append(rows, padTo(sep, width, "─"))

	for i, r := range records {
		if i == dailyBound {
			break
		}
		rows = append(rows, dailyRow(r, w, width))
	}
	return rows
}

func dailyRow(r weather.Record, w dailyWidths, width int) string {
	icon, paint := ConditionIcon(r.Condition)
	iconCell := paint.Sprint(icon)
	if pad := w.icon - layout.Width(icon); pad > 0 {
		iconCell += strings.Repeat(" ", pad)
	}

	hi := TempColor(r.Temp).Sprint(fmt.Sprintf("%.0f°", r.Temp))
	lo := LowTempColor(r.Low).Sprint(fmt.Sprintf("%.0f°", r.Low))

	row := strings.Repeat(" ", dailyMargin) +
		center(r.Time.Format("Mon"), w.day) + "│" +
		iconCell + "│" +
		center(hi+"/"+lo, w.temp) + "│" +
		center(clip(r.Condition, w.cond), w.cond) + "│" +
		rainCell(precipAmount(r), dailyPrecipColor, w.rain)
	return padTo(row, width, " ")
}

// precipAmount returns a record's precipitation in millimeters: the
// one-hour rain and snow totals, or a third of the three-hour totals
// when no one-hour figures were reported.
func precipAmount(r weather.Record) float64 {
	p := r.Rain1h + r.Snow1h
	if p == 0 {
		p = (r.Rain3h + r.Snow3h) / 3
	}
	return p
}

// rainCell formats a precipitation amount centered in the column, "0"
// when dry, colored by the table's thresholds when wet.
func rainCell(amount float64, paint func(float64) *color.Color, width int) string {
	if amount <= 0 {
		return center("0", width)
	}
	cell := fmt.Sprintf("%.1f", amount)
	if c := paint(amount); c != nil {
		cell = c.Sprint(cell)
	}
	return center(cell, width)
}

func hourlyPrecipColor(amount float64) *color.Color {
	switch {
	case amount > 0.5:
		return blue
	case amount > 0.1:
		return cyan
	default:
		return nil
	}
}

func dailyPrecipColor(amount float64) *color.Color {
	if amount > 0.4 {
		return blue
	}
	return cyan
}

// center pads s on both sides to width visible columns, extra space on
// the right. Styled content is measured by display width, so padding
// computed here never counts escape sequences.
func center(s string, width int) string {
	pad := width - layout.Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// clip cuts plain text to at most width columns, marking the cut with
// an ellipsis when there is room for one.
func clip(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width < 3 {
		return string([]rune(s)[:width])
	}
	cut := strings.TrimRight(string([]rune(s)[:width-3]), " ")
	return cut + "..."
}

// padTo extends a row to exactly width visible columns with the given
// fill, spaces for content rows and box-drawing dashes for separators.
// Rows already at or past the width are left for the row renderer to
// fit.
func padTo(s string, width int, fill string) string {
	if n := width - layout.Width(s); n > 0 {
		return s + strings.Repeat(fill, n)
	}
	return s
}
