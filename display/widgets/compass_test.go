package widgets

import "testing"

func TestDirectionName(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{22.5, "NNE"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{337.5, "NNW"},
		{353, "N"},
		{360, "N"},
		{-90, "W"},
		{450, "E"},
	}
	for _, tc := range cases {
		if got := DirectionName(tc.degrees); got != tc.want {
			t.Errorf("DirectionName(%.1f) = %q, expected %q", tc.degrees, got, tc.want)
		}
	}
}

func TestDirectionArrow(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "↑"},
		{45, "↗"},
		{90, "→"},
		{135, "↘"},
		{180, "↓"},
		{225, "↙"},
		{270, "←"},
		{315, "↖"},
		{350, "↑"},
		{-45, "↖"},
	}
	for _, tc := range cases {
		if got := DirectionArrow(tc.degrees); got != tc.want {
			t.Errorf("DirectionArrow(%.1f) = %q, expected %q", tc.degrees, got, tc.want)
		}
	}
}
