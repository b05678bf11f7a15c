package widgets

import "math"

// compassNames are the 16-point compass names clockwise from north.
var compassNames = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// compassArrows are the 8 direction glyphs clockwise from north.
var compassArrows = [...]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// DirectionName returns the 16-point compass name nearest the given
// bearing in degrees. Bearings outside [0, 360) are normalized first.
func DirectionName(degrees float64) string {
	return compassNames[compassSector(degrees, len(compassNames))]
}

// DirectionArrow returns the arrow glyph for the nearest of the 8 major
// compass directions.
func DirectionArrow(degrees float64) string {
	return compassArrows[compassSector(degrees, len(compassArrows))]
}

func compassSector(degrees float64, sectors int) int {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	return int(math.Round(degrees*float64(sectors)/360)) % sectors
}
