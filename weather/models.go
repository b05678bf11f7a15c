// Package weather supplies the dashboard's data: current conditions,
// hourly and daily forecast records, and active alerts, fetched from
// the National Weather Service API with IP-based geolocation.
package weather

import "time"

// Current holds one observation of present conditions. All values are
// already converted to display units: Fahrenheit, mph, hPa, percent.
type Current struct {
	// Temperature is the observed air temperature in °F.
	Temperature float64
	// FeelsLike is the apparent temperature in °F.
	FeelsLike float64
	// Humidity is relative humidity in percent, 0-100.
	Humidity float64
	// Pressure is barometric pressure in hPa.
	Pressure float64
	// Condition is the textual sky/weather description.
	Condition string
	// WindSpeed is sustained wind in mph.
	WindSpeed float64
	// WindDeg is the wind origin direction in degrees, 0 = north.
	WindDeg float64
	// CloudCover is sky cover in percent, 0-100.
	CloudCover float64
	// Visibility is surface visibility in meters.
	Visibility float64
	// Sunrise and Sunset are local times for the observation's day.
	Sunrise time.Time
	Sunset  time.Time
}

// Record is one forecast data point, hourly or daily. Records are built
// fresh from each poll cycle's response, never mutated afterwards, and
// discarded when the next cycle replaces them.
type Record struct {
	// Time is the period start.
	Time time.Time
	// Temp is the forecast temperature in °F. For daily records this is
	// the daytime high.
	Temp float64
	// Low is the overnight low in °F; only set on daily records.
	Low float64
	// Condition is the short forecast text with hedging prefixes
	// ("Chance", "Slight Chance") removed.
	Condition string
	// WindSpeed is forecast wind in mph.
	WindSpeed float64
	// WindDeg is the wind origin direction in degrees.
	WindDeg float64
	// Rain1h and Snow1h are expected liquid amounts for the hour in mm.
	// Rain3h and Snow3h cover a three-hour window for sources that only
	// report multi-hour totals; consumers divide by three when falling
	// back to them.
	Rain1h, Snow1h float64
	Rain3h, Snow3h float64
	// PrecipProb is probability of precipitation in percent, 0-100.
	PrecipProb float64
	// Daytime marks a daily record built from a daytime period.
	Daytime bool
}

// Alert is one active weather alert for the dashboard's location.
type Alert struct {
	// Event is the alert type, e.g. "Severe Thunderstorm Warning".
	Event string
	// Headline is the full issued headline.
	Headline string
	// Severity orders alerts for display.
	Severity Severity
	// Expires is when the alert ends or expires.
	Expires time.Time
}

// Report is the complete result of one fetch cycle. It is owned by the
// cycle that fetched it and never shared across cycles.
type Report struct {
	// Location is the display label, "City, Region".
	Location string
	// Current holds present conditions.
	Current Current
	// Hourly holds forecast records in hour steps, soonest first.
	Hourly []Record
	// Daily holds one record per forecast day, soonest first.
	Daily []Record
	// Alerts holds active alerts, most severe first.
	Alerts []Alert
	// RadarStation is the NWS radar site covering the location, used by
	// the radar pane. Empty when the grid metadata does not name one.
	RadarStation string
	// Fetched is when the report was assembled.
	Fetched time.Time
	// Warnings lists non-fatal problems encountered while assembling
	// the report, e.g. an observation endpoint that had to be skipped.
	Warnings []string
}
