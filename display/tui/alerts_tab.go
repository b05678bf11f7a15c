package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/wtop/display/widgets"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// renderAlertsContent renders the Alerts tab: active NWS alerts for the
// location, most severe first.
func renderAlertsContent(rep *weather.Report, width, height int) string {
	if rep == nil {
		return "No weather data yet\n\nWaiting for the first fetch from api.weather.gov."
	}

	mutedStyle := lipgloss.NewStyle().Foreground(colorMuted)

	if len(rep.Alerts) == 0 {
		okStyle := lipgloss.NewStyle().Foreground(colorSuccess)
		return okStyle.Render("No active alerts") + "\n\n" +
			mutedStyle.Render("Watches and warnings from the National Weather Service appear here.")
	}

	eventStyle := lipgloss.NewStyle().Bold(true)

	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	var sections []string
	sections = append(sections, styleTitle.Render(fmt.Sprintf("Active Alerts (%d)", len(rep.Alerts))))

	for _, a := range rep.Alerts {
		sections = append(sections, "")
		sections = append(sections, widgets.RenderAlertBadge(a.Severity)+"  "+eventStyle.Render(a.Event))
		if a.Headline != "" {
			sections = append(sections, "  "+truncateText(a.Headline, textWidth))
		}
		switch expiry := formatTimeUntil(a.Expires); expiry {
		case "":
		case "now":
			sections = append(sections, "  "+mutedStyle.Render("Expired"))
		default:
			sections = append(sections, "  "+mutedStyle.Render("Expires in "+expiry))
		}
	}

	sections = append(sections, "",
		mutedStyle.Render("Full details: ")+widgets.RenderHyperlink("https://www.weather.gov/alerts", "weather.gov/alerts"))

	return strings.Join(sections, "\n")
}
