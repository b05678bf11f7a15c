package weather

import (
	"testing"
	"time"
)

func TestEstimateSunTimes_SummerDaysAreLonger(t *testing.T) {
	lat, lon := 40.7128, -74.0060 // New York

	summer := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)
	winter := time.Date(2026, 12, 21, 12, 0, 0, 0, time.UTC)

	sr, ss := EstimateSunTimes(lat, lon, summer)
	wr, ws := EstimateSunTimes(lat, lon, winter)

	summerDay := ss.Sub(sr)
	winterDay := ws.Sub(wr)
	if summerDay <= winterDay {
		t.Errorf("summer day %v should be longer than winter day %v", summerDay, winterDay)
	}
}

func TestEstimateSunTimes_SouthernHemisphereInverted(t *testing.T) {
	date := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)

	nr, ns := EstimateSunTimes(40, 0, date)
	sr, ss := EstimateSunTimes(-40, 0, date)

	northDay := ns.Sub(nr)
	southDay := ss.Sub(sr)
	if southDay >= northDay {
		t.Errorf("june day at -40 lat (%v) should be shorter than at +40 (%v)", southDay, northDay)
	}
}

func TestEstimateSunTimes_PolarLatitudeAmplifies(t *testing.T) {
	date := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)

	er, es := EstimateSunTimes(10, 0, date)
	pr, ps := EstimateSunTimes(60, 0, date)

	equatorDay := es.Sub(er)
	polarDay := ps.Sub(pr)
	if polarDay <= equatorDay {
		t.Errorf("june day at 60 lat (%v) should be longer than at 10 (%v)", polarDay, equatorDay)
	}
}

func TestEstimateSunTimes_LongitudeOffsetShiftsBoth(t *testing.T) {
	date := time.Date(2026, 3, 21, 12, 0, 0, 0, time.UTC) // equinox, no seasonal term

	// East of its timezone center the sun rises earlier.
	eastRise, eastSet := EstimateSunTimes(0, 5, date)
	centerRise, centerSet := EstimateSunTimes(0, 0, date)

	if !eastRise.Before(centerRise) {
		t.Errorf("sunrise at lon 5 (%v) should precede sunrise at lon 0 (%v)", eastRise, centerRise)
	}
	if !eastSet.Before(centerSet) {
		t.Errorf("sunset at lon 5 (%v) should precede sunset at lon 0 (%v)", eastSet, centerSet)
	}
}

func TestEstimateSunTimes_SameDayAsInput(t *testing.T) {
	date := time.Date(2026, 8, 25, 23, 45, 0, 0, time.Local)
	sr, ss := EstimateSunTimes(32.7153, -117.1573, date)

	for _, tm := range []time.Time{sr, ss} {
		y, m, d := tm.Date()
		if y != 2026 || m != time.August || d != 25 {
			t.Errorf("sun time %v not on the input date", tm)
		}
	}
	if !sr.Before(ss) {
		t.Errorf("sunrise %v should precede sunset %v", sr, ss)
	}
}

func TestSplitHour_Clamps(t *testing.T) {
	tests := []struct {
		in        float64
		hour, min int
	}{
		{6.5, 6, 30},
		{19.75, 19, 45},
		{-1.2, 0, 0},
		{24.5, 23, 30},
		{0, 0, 0},
	}

	for _, tt := range tests {
		h, m := splitHour(tt.in)
		if h != tt.hour || m != tt.min {
			t.Errorf("splitHour(%v) = (%d, %d), want (%d, %d)", tt.in, h, m, tt.hour, tt.min)
		}
	}
}
