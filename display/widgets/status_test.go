package widgets

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/wtop/weather"
)

func TestRenderStatus_OK(t *testing.T) {
	result := RenderStatus(StatusConfig{
		Level:    StatusOK,
		Text:     "ok",
		ShowIcon: true,
	})

	if !strings.Contains(result, "●") {
		t.Errorf("expected filled dot icon, got %q", result)
	}
	if !strings.Contains(result, "ok") {
		t.Errorf("expected text 'ok', got %q", result)
	}
}

func TestRenderStatus_Unknown(t *testing.T) {
	result := RenderStatus(StatusConfig{
		Level:    StatusUnknown,
		Text:     "unknown",
		ShowIcon: true,
	})

	if !strings.Contains(result, "○") {
		t.Errorf("expected outline dot icon for unknown, got %q", result)
	}
}

func TestRenderStatus_NoIcon(t *testing.T) {
	result := RenderStatus(StatusConfig{
		Level:    StatusCritical,
		Text:     "unreachable",
		ShowIcon: false,
	})

	if strings.Contains(result, "●") {
		t.Errorf("expected no icon, got %q", result)
	}
	if !strings.Contains(result, "unreachable") {
		t.Errorf("expected text 'unreachable', got %q", result)
	}
}

func TestRenderStatus_EmptyText(t *testing.T) {
	result := RenderStatus(StatusConfig{
		Level:    StatusOK,
		ShowIcon: true,
	})

	if !strings.Contains(result, "●") {
		t.Errorf("expected bare icon, got %q", result)
	}
	if strings.Contains(result, " ") {
		t.Errorf("expected no trailing text separator, got %q", result)
	}
}

func TestAlertLevel(t *testing.T) {
	tests := []struct {
		sev  weather.Severity
		want StatusLevel
	}{
		{weather.SeverityExtreme, StatusCritical},
		{weather.SeveritySevere, StatusCritical},
		{weather.SeverityModerate, StatusWarning},
		{weather.SeverityMinor, StatusOK},
		{weather.SeverityUnknown, StatusUnknown},
	}

	for _, tt := range tests {
		if got := AlertLevel(tt.sev); got != tt.want {
			t.Errorf("AlertLevel(%v) = %d, want %d", tt.sev, got, tt.want)
		}
	}
}

func TestRenderAlertBadge(t *testing.T) {
	result := RenderAlertBadge(weather.SeveritySevere)

	if !strings.Contains(result, "SEVERE") {
		t.Errorf("expected uppercase severity in badge, got %q", result)
	}
	if !strings.Contains(result, "●") {
		t.Errorf("expected icon in badge, got %q", result)
	}
}

func TestStatusLevelFromString(t *testing.T) {
	tests := []struct {
		input string
		want  StatusLevel
	}{
		{"ok", StatusOK},
		{"OK", StatusOK},
		{"healthy", StatusOK},
		{"reachable", StatusOK},
		{"warning", StatusWarning},
		{"degraded", StatusWarning},
		{"stale", StatusWarning},
		{"error", StatusCritical},
		{"critical", StatusCritical},
		{"unreachable", StatusCritical},
		{"something_else", StatusUnknown},
		{"", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := StatusLevelFromString(tt.input)
			if got != tt.want {
				t.Errorf("StatusLevelFromString(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderStatusFromString(t *testing.T) {
	result := RenderStatusFromString("reachable")

	if !strings.Contains(result, "●") {
		t.Errorf("expected icon, got %q", result)
	}
	if !strings.Contains(result, "reachable") {
		t.Errorf("expected input text, got %q", result)
	}
}

func TestStatusIconsAndColorsCoverAllLevels(t *testing.T) {
	levels := []StatusLevel{StatusOK, StatusWarning, StatusCritical, StatusUnknown}

	for _, level := range levels {
		if _, ok := statusIcons[level]; !ok {
			t.Errorf("statusIcons missing level %d", level)
		}
		if _, ok := statusColors[level]; !ok {
			t.Errorf("statusColors missing level %d", level)
		}
	}
}
