package frame

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/wtop/display/layout"
	"gitlab.com/tinyland/lab/wtop/display/widgets"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// gaugeWidth is the bar width of every stats gauge.
const gaugeWidth = 30

// currentRows builds the six condition rows of the top box. Each row
// leads with one line of condition art; the temperature color is
// derived once from the observed temperature and reused for the
// feels-like value, matching the row above it.
func (f *Frame) currentRows(cur weather.Current) []string {
	art := widgets.ConditionArt(cur.Condition)
	temp := widgets.TempColor(cur.Temperature)

	rows := make([]string, 0, 6)

	head := art[0] + bold.Sprint("Current Conditions")
	clock := bold.Sprint("Current Time:") + " " + f.clock().Format("2006-01-02 15:04:05")
	gap := (f.geo.Inner - layout.Width(head) - layout.Width(clock)) / 2
	if gap < 1 {
		gap = 1
	}
	rows = append(rows, f.row(head+strings.Repeat(" ", gap)+clock))

	rows = append(rows, f.row(fmt.Sprintf("%s %s %s / %s",
		art[1], bold.Sprint("Temperature:"),
		temp.Sprintf("%.1f°F", cur.Temperature),
		temp.Sprintf("%.1f°C", weather.FToC(cur.Temperature)))))

	rows = append(rows, f.row(fmt.Sprintf("%s %s %s",
		art[2], bold.Sprint("Feels Like:"),
		temp.Sprintf("%.1f°F", cur.FeelsLike))))

	rows = append(rows, f.row(fmt.Sprintf("%s %s %s",
		art[3], bold.Sprint("Condition:"), cur.Condition)))

	rows = append(rows, f.row(fmt.Sprintf("%s %s %g mph %s %s",
		art[4], bold.Sprint("Wind:"), cur.WindSpeed,
		widgets.DirectionName(cur.WindDeg),
		cyan.Sprint(widgets.DirectionArrow(cur.WindDeg)))))

	rows = append(rows, f.row(fmt.Sprintf("%s %s %s  %s %s",
		strings.Repeat(" ", 20),
		bold.Sprint("Sunrise:"), yellow.Sprint(sunClock(cur.Sunrise)),
		bold.Sprint("Sunset:"), magenta.Sprint(sunClock(cur.Sunset)))))

	return rows
}

// gaugeRows builds the stats header and the four gauge rows. Pressure
// is normalized over the usual 970-1030 hPa surface range; visibility
// over a 10 km ceiling.
func (f *Frame) gaugeRows(cur weather.Current) []string {
	visKm := cur.Visibility / 1000
	pressurePct := math.Min(100, math.Max(0, (cur.Pressure-970)/60*100))
	visPct := math.Min(100, visKm/10*100)

	return []string{
		f.row(bold.Sprint("System Stats:")),
		f.row(widgets.RenderGauge(cur.Humidity, 100, gaugeWidth,
			fmt.Sprintf("Humidity (%g%%)", cur.Humidity))),
		f.row(widgets.RenderGauge(cur.CloudCover, 100, gaugeWidth,
			fmt.Sprintf("Cloud Cover (%g%%)", cur.CloudCover))),
		f.row(widgets.RenderGauge(pressurePct, 100, gaugeWidth,
			fmt.Sprintf("Pressure (%g hPa)", cur.Pressure))),
		f.row(widgets.RenderGauge(visPct, 100, gaugeWidth,
			fmt.Sprintf("Visibility (%.1f km)", visKm))),
	}
}

// sunClock formats a sun event time, or N/A when the time is missing.
func sunClock(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("15:04")
}
