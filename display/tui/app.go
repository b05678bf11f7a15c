// Package tui is the interactive full-screen mode. The boxed dashboard
// repaints one fixed frame on a timer; this mode layers tabbed views on
// the same weather data, adding scrolling, mouse support, and a radar
// image that the fixed frame has no room for.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/wtop/weather"
)

// Tab identifies which tab is currently active.
type Tab int

const (
	TabCurrent Tab = iota
	TabHourly
	TabDaily
	TabAlerts
	TabRadar
	tabCount // sentinel for wrapping
)

// tabNames maps each Tab value to its display label.
var tabNames = map[Tab]string{
	TabCurrent: "Current",
	TabHourly:  "Hourly",
	TabDaily:   "Daily",
	TabAlerts:  "Alerts",
	TabRadar:   "Radar",
}

// scrollToEnd is a scroll offset larger than any real content; it is
// clamped to the last full page at render time.
const scrollToEnd = 1 << 20

// Model is the top-level Bubbletea model for the wtop TUI.
type Model struct {
	activeTab   Tab
	width       int
	height      int
	scroll      int
	source      weather.Source
	interval    time.Duration
	report      *weather.Report
	radar       string
	fetchErr    error
	spinner     spinner.Model
	fetching    bool
	lastUpdated time.Time
	ready       bool
}

// NewModel returns an initialized Model with TabCurrent active. The
// source is fetched once at startup and again every interval.
func NewModel(source weather.Source, interval time.Duration) Model {
	// The global zone manager backs the clickable tab bar.
	zone.NewGlobal()

	if interval <= 0 {
		interval = 5 * time.Second
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner
	return Model{
		activeTab: TabCurrent,
		source:    source,
		interval:  interval,
		spinner:   sp,
		fetching:  true, // Init starts the first fetch right away
	}
}

// SetReport updates the model with a fresh weather report.
func (m *Model) SetReport(rep *weather.Report) {
	m.report = rep
	m.lastUpdated = time.Now()
}

// setTab activates a tab and resets the scroll position.
func (m *Model) setTab(t Tab) {
	if t != m.activeTab {
		m.scroll = 0
	}
	m.activeTab = t
}

// Init implements tea.Model. It kicks off the first fetch, the refresh
// timer, and the fetch spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchReportCmd(m.source), scheduleRefresh(m.interval), m.spinner.Tick)
}

// Update implements tea.Model. It handles key presses, mouse clicks on
// the tab bar, window resizes, and data refresh messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextTab):
			m.setTab((m.activeTab + 1) % tabCount)
		case key.Matches(msg, keys.PrevTab):
			m.setTab((m.activeTab - 1 + tabCount) % tabCount)
		case key.Matches(msg, keys.Tab1):
			m.setTab(TabCurrent)
		case key.Matches(msg, keys.Tab2):
			m.setTab(TabHourly)
		case key.Matches(msg, keys.Tab3):
			m.setTab(TabDaily)
		case key.Matches(msg, keys.Tab4):
			m.setTab(TabAlerts)
		case key.Matches(msg, keys.Tab5):
			m.setTab(TabRadar)
		case key.Matches(msg, keys.ScrollDown):
			m.scroll++
		case key.Matches(msg, keys.ScrollUp):
			if m.scroll > 0 {
				m.scroll--
			}
		case key.Matches(msg, keys.PageDown):
			m.scroll += m.contentHeight()
		case key.Matches(msg, keys.PageUp):
			m.scroll -= m.contentHeight()
			if m.scroll < 0 {
				m.scroll = 0
			}
		case key.Matches(msg, keys.GoTop):
			m.scroll = 0
		case key.Matches(msg, keys.GoBottom):
			m.scroll = scrollToEnd
		case key.Matches(msg, keys.Refresh):
			m.fetching = true
			return m, tea.Batch(fetchReportCmd(m.source), m.spinner.Tick)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for i := Tab(0); i < tabCount; i++ {
				if zone.Get(tabZoneID(i)).InBounds(msg) {
					m.setTab(i)
					break
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		// The radar image is scaled to the terminal, so a resize
		// needs a fresh render.
		if m.report != nil && m.report.RadarStation != "" {
			cols, rows := m.radarBudget()
			return m, fetchRadarCmd(m.report.RadarStation, cols, rows)
		}

	case reportMsg:
		m.fetching = false
		m.fetchErr = msg.err
		if msg.report != nil {
			m.report = msg.report
			m.lastUpdated = time.Now()
			if msg.report.RadarStation != "" {
				cols, rows := m.radarBudget()
				return m, fetchRadarCmd(msg.report.RadarStation, cols, rows)
			}
		}

	case radarMsg:
		// A failed radar fetch keeps the previous image; the tab shows
		// its own placeholder when nothing has loaded yet.
		if msg.err == nil {
			m.radar = msg.view
		}

	case spinner.TickMsg:
		// Ticks die out once the fetch resolves; each refresh restarts
		// them with a fresh spinner.Tick.
		if m.fetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case refreshTickMsg:
		m.fetching = true
		return m, tea.Batch(fetchReportCmd(m.source), scheduleRefresh(m.interval), m.spinner.Tick)
	}

	return m, nil
}

// View implements tea.Model. It renders the header, active tab content,
// and footer. The assembled output passes through the zone scanner so
// mouse clicks can be resolved against the tab bar.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	content := m.renderTabContent()
	footer := m.renderFooter()

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, content, footer))
}

// tabZoneID returns the click zone marker id for a tab.
func tabZoneID(t Tab) string {
	return fmt.Sprintf("tab-%d", int(t))
}

// renderHeader renders the tab bar with the active tab highlighted.
func (m Model) renderHeader() string {
	var tabs []string
	for i := Tab(0); i < tabCount; i++ {
		name := tabNames[i]
		var cell string
		if i == m.activeTab {
			cell = styleActiveTab.Render(name)
		} else {
			cell = styleInactiveTab.Render(name)
		}
		tabs = append(tabs, zone.Mark(tabZoneID(i), cell))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return styleHeader.Width(m.width).Render(tabBar)
}

// contentHeight is the vertical space left for tab content after the
// header and footer.
func (m Model) contentHeight() int {
	h := m.height - 6
	if h < 1 {
		h = 1
	}
	return h
}

// radarBudget returns the terminal cell budget available to the radar
// image inside the content area.
func (m Model) radarBudget() (cols, rows int) {
	cols = m.width - 8
	rows = m.contentHeight() - 5
	if cols < 20 {
		cols = 20
	}
	if rows < 8 {
		rows = 8
	}
	return cols, rows
}

// renderTabContent delegates to the appropriate tab renderer based on
// the active tab, then applies the scroll offset.
func (m Model) renderTabContent() string {
	height := m.contentHeight()

	var content string
	switch m.activeTab {
	case TabCurrent:
		content = renderCurrentContent(m.report, m.width, height)
	case TabHourly:
		content = renderHourlyContent(m.report, m.width, height)
	case TabDaily:
		content = renderDailyContent(m.report, m.width, height)
	case TabAlerts:
		content = renderAlertsContent(m.report, m.width, height)
	case TabRadar:
		content = renderRadarContent(m.report, m.radar, m.width, height)
	default:
		content = ""
	}

	content = scrollLines(content, m.scroll, height)
	return styleContent.Width(m.width).Render(content)
}

// scrollLines drops the first offset lines of content. The offset is
// clamped so the final page stays full when it runs past the end.
func scrollLines(content string, offset, height int) string {
	if offset <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	return strings.Join(lines[offset:], "\n")
}

// renderFooter renders the help text, the last fetch error if any, and
// the last updated timestamp.
func (m Model) renderFooter() string {
	help := "q: quit | tab: switch | 1-5: jump | r: refresh"

	var status string
	switch {
	case m.fetching:
		status = "  " + m.spinner.View() + " Fetching..."
	case m.fetchErr != nil:
		status = "  " + styleFooterError.Render(truncateText(m.fetchErr.Error(), 48))
	case !m.lastUpdated.IsZero():
		status = fmt.Sprintf("  Updated: %s", m.lastUpdated.Format("15:04:05"))
	}

	return styleFooter.Width(m.width).Render(help + status)
}
