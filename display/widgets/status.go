package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/wtop/weather"
)

// StatusLevel grades a status indicator from healthy to critical.
type StatusLevel int

const (
	// StatusOK indicates a healthy or low-impact state.
	StatusOK StatusLevel = iota
	// StatusWarning indicates a degraded or moderate-impact state.
	StatusWarning
	// StatusCritical indicates a failure or a dangerous condition.
	StatusCritical
	// StatusUnknown indicates an indeterminate state.
	StatusUnknown
)

// StatusConfig holds the configuration for rendering a status indicator.
type StatusConfig struct {
	// Level determines the color and icon.
	Level StatusLevel
	// Text is the label shown next to the indicator.
	Text string
	// ShowIcon controls whether the colored dot is shown.
	ShowIcon bool
}

// statusIcons maps each status level to its display icon.
var statusIcons = map[StatusLevel]string{
	StatusOK:       "●", // ● green dot
	StatusWarning:  "●", // ● yellow dot
	StatusCritical: "●", // ● red dot
	StatusUnknown:  "○", // ○ gray outline
}

// statusColors maps each status level to its display color.
var statusColors = map[StatusLevel]lipgloss.Color{
	StatusOK:       lipgloss.Color("#22C55E"),
	StatusWarning:  lipgloss.Color("#EAB308"),
	StatusCritical: lipgloss.Color("#EF4444"),
	StatusUnknown:  lipgloss.Color("#6B7280"),
}

// RenderStatus renders a status indicator with an optional colored icon and text.
func RenderStatus(cfg StatusConfig) string {
	color := statusColors[cfg.Level]
	style := lipgloss.NewStyle().Foreground(color)

	if cfg.ShowIcon {
		icon := statusIcons[cfg.Level]
		coloredIcon := style.Render(icon)
		if cfg.Text == "" {
			return coloredIcon
		}
		return coloredIcon + " " + cfg.Text
	}

	return style.Render(cfg.Text)
}

// AlertLevel maps an NWS alert severity to a status level.
func AlertLevel(sev weather.Severity) StatusLevel {
	switch sev {
	case weather.SeverityExtreme, weather.SeveritySevere:
		return StatusCritical
	case weather.SeverityModerate:
		return StatusWarning
	case weather.SeverityMinor:
		return StatusOK
	default:
		return StatusUnknown
	}
}

// RenderAlertBadge renders a colored severity badge for an alert, such
// as "● SEVERE".
func RenderAlertBadge(sev weather.Severity) string {
	return RenderStatus(StatusConfig{
		Level:    AlertLevel(sev),
		Text:     strings.ToUpper(sev.String()),
		ShowIcon: true,
	})
}

// StatusLevelFromString maps a health check result string to a
// StatusLevel. Matching is case-insensitive.
func StatusLevelFromString(status string) StatusLevel {
	switch strings.ToLower(status) {
	case "ok", "healthy", "reachable":
		return StatusOK
	case "warning", "degraded", "stale":
		return StatusWarning
	case "error", "critical", "unreachable":
		return StatusCritical
	default:
		return StatusUnknown
	}
}

// RenderStatusFromString renders a status indicator from a plain status
// string, with the icon enabled.
func RenderStatusFromString(status string) string {
	return RenderStatus(StatusConfig{
		Level:    StatusLevelFromString(status),
		Text:     status,
		ShowIcon: true,
	})
}
