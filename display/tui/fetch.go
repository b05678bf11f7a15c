package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/wtop/display/render"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// reportMsg carries the result of a weather fetch back into Update.
type reportMsg struct {
	report *weather.Report
	err    error
}

// radarMsg carries a rendered radar image, already scaled to the cell
// budget it was requested with.
type radarMsg struct {
	view string
	err  error
}

// refreshTickMsg fires when the refresh interval elapses.
type refreshTickMsg time.Time

// fetchTimeout bounds a single background fetch so a stalled request
// cannot pile up behind the refresh timer.
const fetchTimeout = 30 * time.Second

// fetchReportCmd returns a tea.Cmd that fetches a fresh report from the
// source. This runs as a non-blocking command to avoid freezing the TUI
// during network I/O.
func fetchReportCmd(source weather.Source) tea.Cmd {
	if source == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		rep, err := source.Fetch(ctx)
		return reportMsg{report: rep, err: err}
	}
}

// fetchRadarCmd returns a tea.Cmd that downloads the station's latest
// radar composite and renders it as half-block cells within the given
// budget.
func fetchRadarCmd(station string, cols, rows int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		img, err := weather.RadarImage(ctx, station)
		if err != nil {
			return radarMsg{err: err}
		}
		return radarMsg{view: render.HalfBlocks(img, cols, rows)}
	}
}

// scheduleRefresh returns a tea.Cmd that fires a refreshTickMsg after
// the refresh interval.
func scheduleRefresh(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}
