package weather

import (
	"math"
	"time"
)

// EstimateSunTimes approximates sunrise and sunset for a coordinate on
// the given date. It is a seasonal heuristic, not an astronomical
// calculation: a fixed base of 6:30/19:30 local time shifted by a
// sinusoidal seasonal term anchored at the March equinox, amplified
// toward the poles, and offset by the coordinate's position within its
// 15 degree timezone slice. NWS observations carry no sun times, so
// the dashboard always derives them from this.
func EstimateSunTimes(lat, lon float64, date time.Time) (sunrise, sunset time.Time) {
	const (
		baseSunrise = 6.5
		baseSunset  = 19.5
	)

	doy := float64(date.YearDay())
	season := math.Sin((doy-80)*(2*math.Pi/365)) * 1.5

	// Days lengthen more per season the further from the equator.
	season *= 1 + math.Abs(lat)/90*2
	// Seasons are inverted south of the equator.
	if lat < 0 {
		season = -season
	}

	// Position within the timezone's 15 degree slice, in hours.
	center := math.Round(lon/15) * 15
	lonAdj := (lon - center) / 15

	riseHour := baseSunrise - season - lonAdj
	setHour := baseSunset + season - lonAdj

	rh, rm := splitHour(riseHour)
	sh, sm := splitHour(setHour)

	y, m, d := date.Date()
	sunrise = time.Date(y, m, d, rh, rm, 0, 0, date.Location())
	sunset = time.Date(y, m, d, sh, sm, 0, 0, date.Location())
	return sunrise, sunset
}

// splitHour converts a fractional hour to clamped hour and minute
// components.
func splitHour(h float64) (hour, minute int) {
	hour = int(h)
	minute = int((h - float64(hour)) * 60)
	hour = clampInt(hour, 0, 23)
	minute = clampInt(minute, 0, 59)
	return hour, minute
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
