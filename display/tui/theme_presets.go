package tui

import "github.com/charmbracelet/lipgloss"

// ThemePreset defines a complete color scheme and layout configuration
// that can be applied at runtime to change the TUI appearance.
type ThemePreset struct {
	Name        string
	Description string
	// Colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	// Layout
	ShowBorders bool
	CompactMode bool
}

// Predefined theme presets.
var (
	// SkyTheme is the default blue theme for day-to-day forecasting.
	SkyTheme = ThemePreset{
		Name:        "sky",
		Description: "Default blue theme for day-to-day forecasting",
		Primary:     lipgloss.Color("#2563EB"),
		Secondary:   lipgloss.Color("#06B6D4"),
		Success:     lipgloss.Color("#22C55E"),
		Warning:     lipgloss.Color("#EAB308"),
		Danger:      lipgloss.Color("#EF4444"),
		Muted:       lipgloss.Color("#6B7280"),
		Background:  lipgloss.Color("#0F172A"),
		ShowBorders: true,
		CompactMode: false,
	}

	// StormTheme is a high-contrast theme for severe weather days.
	StormTheme = ThemePreset{
		Name:        "storm",
		Description: "High-contrast theme for severe weather days",
		Primary:     lipgloss.Color("#B91C1C"),
		Secondary:   lipgloss.Color("#FBBF24"),
		Success:     lipgloss.Color("#4ADE80"),
		Warning:     lipgloss.Color("#FCD34D"),
		Danger:      lipgloss.Color("#F87171"),
		Muted:       lipgloss.Color("#94A3B8"),
		Background:  lipgloss.Color("#020617"),
		ShowBorders: true,
		CompactMode: false,
	}

	// MinimalTheme is a clean, low-distraction theme.
	MinimalTheme = ThemePreset{
		Name:        "minimal",
		Description: "Clean minimal theme",
		Primary:     lipgloss.Color("#60A5FA"),
		Secondary:   lipgloss.Color("#67E8F9"),
		Success:     lipgloss.Color("#4ADE80"),
		Warning:     lipgloss.Color("#FCD34D"),
		Danger:      lipgloss.Color("#F87171"),
		Muted:       lipgloss.Color("#9CA3AF"),
		Background:  lipgloss.Color("#0F172A"),
		ShowBorders: false,
		CompactMode: true,
	}
)

// allPresets is the canonical list of available theme presets.
var allPresets = []ThemePreset{SkyTheme, StormTheme, MinimalTheme}

// GetThemePreset returns the theme preset matching the given name.
// Unknown names return SkyTheme as the default.
func GetThemePreset(name string) ThemePreset {
	for _, p := range allPresets {
		if p.Name == name {
			return p
		}
	}
	return SkyTheme
}

// AllThemePresets returns all available theme presets.
func AllThemePresets() []ThemePreset {
	out := make([]ThemePreset, len(allPresets))
	copy(out, allPresets)
	return out
}

// ApplyTheme updates the package-level style variables to use the given
// preset's colors. This allows runtime theme switching without
// restarting the application.
func ApplyTheme(preset ThemePreset) {
	styleActiveTab = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(preset.Primary).
		Padding(0, 2)

	styleInactiveTab = lipgloss.NewStyle().
		Foreground(preset.Muted).
		Padding(0, 2)

	if preset.ShowBorders {
		styleHeader = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(preset.Muted).
			MarginBottom(1)
	} else {
		styleHeader = lipgloss.NewStyle().
			MarginBottom(1)
	}

	styleFooter = lipgloss.NewStyle().
		Foreground(preset.Muted).
		MarginTop(1)

	styleFooterError = lipgloss.NewStyle().
		Foreground(preset.Danger)

	if preset.CompactMode {
		styleContent = lipgloss.NewStyle().
			Padding(0, 1)
	} else {
		styleContent = lipgloss.NewStyle().
			Padding(1, 2)
	}

	styleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(preset.Secondary)

	styleSpinner = lipgloss.NewStyle().
		Foreground(preset.Secondary)
}
