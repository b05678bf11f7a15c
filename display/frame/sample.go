package frame

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/wtop/display/layout"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// sampleConditions rotate through the forecast records so a sample
// paint exercises every icon and color path.
var sampleConditions = []string{
	"Sunny", "Partly Cloudy", "Mostly Cloudy", "Cloudy",
	"Rain Showers", "Scattered Thunderstorms", "Clear",
}

// SampleReport returns a synthetic report for border checks and tests.
// No network is involved; values sit in the typical San Diego range so
// every panel has something to show.
func SampleReport(now time.Time) *weather.Report {
	rep := &weather.Report{
		Location: "San Diego, CA",
		Current: weather.Current{
			Temperature: 72.5,
			FeelsLike:   71.0,
			Humidity:    60,
			Pressure:    1013,
			Condition:   "Partly Cloudy",
			WindSpeed:   8,
			WindDeg:     270,
			CloudCover:  10,
			Visibility:  10000,
			Sunrise:     time.Date(now.Year(), now.Month(), now.Day(), 6, 30, 0, 0, now.Location()),
			Sunset:      time.Date(now.Year(), now.Month(), now.Day(), 19, 45, 0, 0, now.Location()),
		},
		RadarStation: "KNKX",
		Fetched:      now,
	}

	for i := 0; i < 12; i++ {
		rec := weather.Record{
			Time:      now.Add(time.Duration(i) * time.Hour),
			Temp:      72 + float64(i%3-1),
			Condition: sampleConditions[(i+2)%len(sampleConditions)],
			WindSpeed: 8,
			WindDeg:   270,
		}
		if i%4 == 0 {
			rec.Rain1h = 0.2 * float64(i%3+1)
		}
		rep.Hourly = append(rep.Hourly, rec)
	}

	for i := 0; i < 7; i++ {
		high := 72 + float64((i%3-1)*3+(i%2)*2)
		cond := sampleConditions[(i+2)%len(sampleConditions)]
		rec := weather.Record{
			Time:      now.AddDate(0, 0, i),
			Temp:      high,
			Low:       high - 10 - float64(i%3),
			Condition: cond,
			WindSpeed: 8,
			WindDeg:   270,
			Daytime:   true,
		}
		if strings.Contains(cond, "Rain") || strings.Contains(cond, "Thunder") {
			rec.Rain1h = 0.2 * float64(i%3+1)
		}
		rep.Daily = append(rep.Daily, rec)
	}

	return rep
}

// CheckBorders renders every border string of the geometry with its
// name, for eyeballing alignment after layout changes.
func CheckBorders(g layout.Geometry) string {
	var b strings.Builder
	write := func(name, border string) {
		fmt.Fprintf(&b, "\n%s:\n%s\n", name, border)
	}
	b.WriteString("Checking border strings:")
	write("TOP", g.TopBorder())
	write("BOTTOM", g.BottomBorder())
	write("DIVIDER", g.Divider())
	write("FORECAST_TOP", g.SplitTopBorder())
	write("FORECAST_BOTTOM", g.SplitBottomBorder())
	write("FORECAST_DIVIDER", g.SplitDivider())
	return b.String()
}
