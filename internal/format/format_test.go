package format

import (
	"testing"
	"time"
)

func TestEllipsize(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten..", 13, "exactly ten.."},
		{"a longer headline than fits", 10, "a longe..."},
		{"tiny", 3, "tin"},
		{"anything", 0, ""},
		{"snow ❄ likely", 8, "snow ..."},
	}
	for _, tt := range tests {
		if got := Ellipsize(tt.in, tt.width); got != tt.want {
			t.Errorf("Ellipsize(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestTimeSince(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "never"},
		{"seconds ago", now.Add(-3 * time.Second), "just now"},
		{"under a minute", now.Add(-45 * time.Second), "45s ago"},
		{"minutes", now.Add(-12 * time.Minute), "12m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		if got := TimeSince(tt.t); got != tt.want {
			t.Errorf("%s: TimeSince = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTimeUntil(t *testing.T) {
	now := time.Now()
	if got := TimeUntil(time.Time{}); got != "" {
		t.Errorf("zero time = %q, want empty", got)
	}
	if got := TimeUntil(now.Add(-time.Minute)); got != "now" {
		t.Errorf("past time = %q, want now", got)
	}
	// A minute of slack keeps the assertion stable.
	if got := TimeUntil(now.Add(2*time.Hour + 30*time.Minute + 30*time.Second)); got != "2h 30m" {
		t.Errorf("future time = %q, want 2h 30m", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "0s"},
		{30 * time.Second, "30s"},
		{5*time.Minute + 30*time.Second, "5m 30s"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
		{3*24*time.Hour + 4*time.Hour, "3d 4h"},
		{-30 * time.Second, "30s"},
	}
	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
