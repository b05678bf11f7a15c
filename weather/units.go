package weather

// Unit conversions between the values NWS reports and the units the
// dashboard displays. NWS observations use SI: Celsius, Pascals,
// meters per second.

// CToF converts Celsius to Fahrenheit.
func CToF(c float64) float64 {
	return c*9/5 + 32
}

// FToC converts Fahrenheit to Celsius.
func FToC(f float64) float64 {
	return (f - 32) * 5 / 9
}

// PaToHPa converts Pascals to hectopascals.
func PaToHPa(pa float64) float64 {
	return pa / 100
}

// MpsToMph converts meters per second to miles per hour.
func MpsToMph(mps float64) float64 {
	return mps * 2.237
}
