package weather

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"Minor", SeverityMinor},
		{"Moderate", SeverityModerate},
		{"Severe", SeveritySevere},
		{"Extreme", SeverityExtreme},
		{"Unknown", SeverityUnknown},
		{"", SeverityUnknown},
		{"severe", SeverityUnknown}, // NWS sends capitalized values
	}

	for _, tt := range tests {
		if got := ParseSeverity(tt.in); got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityMinor, "minor"},
		{SeverityModerate, "moderate"},
		{SeveritySevere, "severe"},
		{SeverityExtreme, "extreme"},
		{SeverityUnknown, "unknown"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestWorseSeverity(t *testing.T) {
	if got := WorseSeverity(SeverityMinor, SeveritySevere); got != SeveritySevere {
		t.Errorf("WorseSeverity(minor, severe) = %v", got)
	}
	if got := WorseSeverity(SeverityExtreme, SeverityModerate); got != SeverityExtreme {
		t.Errorf("WorseSeverity(extreme, moderate) = %v", got)
	}
	if got := WorseSeverity(SeverityUnknown, SeverityMinor); got != SeverityMinor {
		t.Errorf("WorseSeverity(unknown, minor) = %v", got)
	}
}
