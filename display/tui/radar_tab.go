package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/wtop/display/widgets"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// renderRadarContent renders the Radar tab: the station's latest
// composite reflectivity image drawn with half-block cells. The radar
// string is rendered ahead of time by fetchRadarCmd so View stays
// synchronous.
func renderRadarContent(rep *weather.Report, radar string, width, height int) string {
	if rep == nil {
		return "No weather data yet\n\nWaiting for the first fetch from api.weather.gov."
	}
	if rep.RadarStation == "" {
		return "No radar station reported for this location"
	}

	mutedStyle := lipgloss.NewStyle().Foreground(colorMuted)
	title := styleTitle.Render(fmt.Sprintf("Radar (%s)", rep.RadarStation))

	if radar == "" {
		return title + "\n\n" + mutedStyle.Render("Fetching radar image from radar.weather.gov...")
	}

	link := widgets.RenderHyperlink(
		fmt.Sprintf("https://radar.weather.gov/station/%s", strings.ToLower(rep.RadarStation)),
		"radar.weather.gov")

	return title + "\n\n" + radar + "\n" + mutedStyle.Render("Live view: ") + link
}
