package weather

import (
	"math"
	"strconv"
	"strings"
)

// directionDegrees maps 16-point compass names to degrees. Forecast
// periods carry wind direction as a name, observations as a number.
var directionDegrees = map[string]float64{
	"N": 0, "NNE": 22.5, "NE": 45, "ENE": 67.5,
	"E": 90, "ESE": 112.5, "SE": 135, "SSE": 157.5,
	"S": 180, "SSW": 202.5, "SW": 225, "WSW": 247.5,
	"W": 270, "WNW": 292.5, "NW": 315, "NNW": 337.5,
}

// DirectionDegrees converts a compass name to degrees. Unknown names
// default to west.
func DirectionDegrees(name string) float64 {
	if deg, ok := directionDegrees[name]; ok {
		return deg
	}
	return 270
}

// cleanCondition strips hedging "Chance" qualifiers from a short
// forecast and collapses the whitespace they leave behind.
func cleanCondition(s string) string {
	s = strings.ReplaceAll(s, "Chance", "")
	s = strings.ReplaceAll(s, "chance", "")
	return strings.Join(strings.Fields(s), " ")
}

// parseWindSpeed extracts the leading number from an NWS wind speed
// string such as "10 mph" or "5 to 10 mph". Unparseable input defaults
// to a light 5 mph breeze.
func parseWindSpeed(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 5
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 5
	}
	return v
}

// hourlyRecords converts hourly forecast periods into Records, keeping
// the first twelve hours. Light rain is assumed for periods whose
// short forecast mentions rain or showers, since the hourly endpoint
// reports no amounts.
func hourlyRecords(periods []forecastPeriod) []Record {
	if len(periods) > hourlyCount {
		periods = periods[:hourlyCount]
	}

	records := make([]Record, 0, len(periods))
	for _, p := range periods {
		r := Record{
			Time:      p.StartTime,
			Temp:      p.Temperature,
			Condition: cleanCondition(p.ShortForecast),
			WindSpeed: math.Round(parseWindSpeed(p.WindSpeed)),
			WindDeg:   DirectionDegrees(p.WindDirection),
			Daytime:   p.IsDaytime,
		}
		if strings.Contains(p.ShortForecast, "Showers") || strings.Contains(p.ShortForecast, "Rain") {
			r.Rain1h = 0.2
		}
		if v := p.ProbabilityOfPrecipitation.Value; v != nil {
			r.PrecipProb = *v
		}
		records = append(records, r)
	}
	return records
}

// dailyRecords pairs day/night forecast periods into seven daily
// Records. The high comes from the daytime period, the low from the
// following night, with high minus ten degrees standing in when the
// night period is missing. Precipitation is estimated from the
// detailed forecast text.
func dailyRecords(periods []forecastPeriod) []Record {
	limit := len(periods)
	if limit > 2*dailyCount {
		limit = 2 * dailyCount
	}

	records := make([]Record, 0, dailyCount)
	for i := 0; i < limit; i += 2 {
		day := periods[i]

		r := Record{
			Time:      day.StartTime,
			Temp:      day.Temperature,
			Low:       day.Temperature - 10,
			Condition: cleanCondition(day.ShortForecast),
			WindSpeed: math.Round(parseWindSpeed(day.WindSpeed)),
			WindDeg:   DirectionDegrees(day.WindDirection),
			Daytime:   day.IsDaytime,
		}
		if i+1 < len(periods) {
			r.Low = periods[i+1].Temperature
		}

		detail := strings.ToLower(day.DetailedForecast)
		if strings.Contains(detail, "rain") || strings.Contains(detail, "shower") {
			r.Rain1h = 0.3
		}
		if strings.Contains(detail, "thunder") {
			r.Rain1h = 0.5
		}
		if v := day.ProbabilityOfPrecipitation.Value; v != nil {
			r.PrecipProb = *v
		}

		records = append(records, r)
	}
	return records
}

// currentFromObservation maps a station observation to Current,
// converting units and substituting typical values for measurements
// the station did not report.
func currentFromObservation(props observationProps) Current {
	cur := Current{
		Temperature: 70,
		FeelsLike:   70,
		Humidity:    60,
		Pressure:    1013,
		Condition:   props.TextDescription,
		WindSpeed:   8,
		WindDeg:     270,
		CloudCover:  10,
		Visibility:  10000,
	}

	if v := props.Temperature.Value; v != nil {
		cur.Temperature = CToF(*v)
		cur.FeelsLike = cur.Temperature
	}
	// Stations report apparent temperature as heat index in warm
	// weather and wind chill in cold, never both.
	if v := props.HeatIndex.Value; v != nil {
		cur.FeelsLike = CToF(*v)
	} else if v := props.WindChill.Value; v != nil {
		cur.FeelsLike = CToF(*v)
	}
	if v := props.RelativeHumidity.Value; v != nil {
		cur.Humidity = math.Round(*v)
	}
	if v := props.BarometricPressure.Value; v != nil {
		cur.Pressure = PaToHPa(*v)
	}
	if v := props.Visibility.Value; v != nil {
		cur.Visibility = *v
	}
	if v := props.WindSpeed.Value; v != nil {
		cur.WindSpeed = math.Round(MpsToMph(*v))
	}
	if v := props.WindDirection.Value; v != nil {
		cur.WindDeg = *v
	}
	if pct, ok := cloudCoverFromLayers(props.CloudLayers); ok {
		cur.CloudCover = pct
	}
	return cur
}

// cloudCoverFromLayers estimates total sky cover from METAR layer
// amount codes, taking the thickest layer.
func cloudCoverFromLayers(layers []cloudLayer) (float64, bool) {
	pct := -1.0
	for _, layer := range layers {
		var p float64
		switch layer.Amount {
		case "CLR", "SKC":
			p = 0
		case "FEW":
			p = 25
		case "SCT":
			p = 50
		case "BKN":
			p = 75
		case "OVC", "VV":
			p = 100
		default:
			continue
		}
		if p > pct {
			pct = p
		}
	}
	if pct < 0 {
		return 0, false
	}
	return pct, true
}

// currentFromHourly approximates current conditions from the first
// hourly forecast period, for when no station observation is
// available.
func currentFromHourly(hourly []Record) Current {
	cur := Current{
		Temperature: 70,
		FeelsLike:   70,
		Humidity:    60,
		Pressure:    1013,
		Condition:   "Unknown",
		WindSpeed:   8,
		WindDeg:     270,
		CloudCover:  10,
		Visibility:  10000,
	}
	if len(hourly) == 0 {
		return cur
	}

	h := hourly[0]
	cur.Temperature = h.Temp
	cur.FeelsLike = h.Temp - 1.5
	cur.Condition = h.Condition
	cur.WindSpeed = h.WindSpeed
	cur.WindDeg = h.WindDeg
	return cur
}
