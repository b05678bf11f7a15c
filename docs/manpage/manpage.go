// Package manpage generates a roff-formatted man page for wtop.
//
// The man page is generated at runtime from the actual KeyRegistry and
// compiled-in version information, keeping documentation in sync with
// the code automatically.
//
// Usage:
//
//	wtop --man | man -l -
//	wtop --man > ~/.local/share/man/man1/wtop.1
package manpage

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/wtop/display/tui"
)

// Generate produces a complete roff-formatted man(1) page for wtop.
// The version, commit, and date parameters are passed from the build-time
// linker variables so the man page always reflects the current build.
func Generate(version, commit, date string) string {
	var b strings.Builder

	writeHeader(&b, version)
	writeName(&b)
	writeSynopsis(&b)
	writeDescription(&b)
	writeOptions(&b)
	writeKeybindings(&b)
	writeConfiguration(&b)
	writeFiles(&b)
	writeExamples(&b)
	writeEnvironment(&b)
	writeExitStatus(&b)
	writeSeeAlso(&b)
	writeAuthors(&b)
	writeBugs(&b)
	writeFooter(&b, version, commit, date)

	return b.String()
}

// roffEscape escapes special roff characters in a string.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `-`, `\-`)
	s = strings.ReplaceAll(s, `.`, `\&.`)
	return s
}

func writeHeader(b *strings.Builder, version string) {
	month := time.Now().Format("January 2006")
	fmt.Fprintf(b, ".TH WTOP 1 \"%s\" \"wtop %s\" \"User Commands\"\n", month, version)
}

func writeName(b *strings.Builder) {
	b.WriteString(`.SH NAME
wtop \- terminal weather dashboard
`)
}

func writeSynopsis(b *strings.Builder) {
	b.WriteString(`.SH SYNOPSIS
.B wtop
[\fIOPTIONS\fR]
`)
}

func writeDescription(b *strings.Builder) {
	b.WriteString(`.SH DESCRIPTION
.B wtop
is a top-style weather dashboard for the terminal. It resolves the
host's location (or a pinned coordinate), fetches current conditions,
hourly and seven-day forecasts, and active alerts from the National
Weather Service API at api.weather.gov, and repaints a fixed-width
boxed dashboard in place on a refresh interval.
.PP
The tool operates in several modes:
.IP \(bu 2
.B Dashboard mode
(default): Clears the screen and repaints the boxed dashboard in place
every refresh interval, re-rendering immediately on terminal resize.
Exit with Ctrl+C.
.IP \(bu 2
.B One-shot mode
(\fB\-\-once\fR): Renders the dashboard once to stdout without any
cursor control and exits. Suitable for scripting and cron.
.IP \(bu 2
.B TUI mode
(\fB\-\-tui\fR): Launches an interactive Bubble Tea interface with
tabbed navigation across current conditions, hourly, daily, alerts,
and radar panels.
.IP \(bu 2
.B Health mode
(\fB\-\-health\fR): Probes the cache directory, location resolution,
api.weather.gov reachability, and a full forecast fetch, then exits 0
if every check passes.
`)
}

func writeOptions(b *strings.Builder) {
	b.WriteString(`.SH OPTIONS
`)

	flags := []struct {
		flag string
		arg  string
		desc string
	}{
		{"once", "", "Run a single fetch-render-print pass and exit. The output carries no cursor control sequences, so it can be piped or captured."},
		{"tui", "", "Launch the interactive Bubble Tea TUI. Provides tabbed navigation across current, hourly, daily, alerts, and radar panels with vim-style keybindings."},
		{"health", "", "Run connectivity self-checks and exit. Probes the cache directory, location resolution, api\\&.weather\\&.gov reachability, and a full forecast fetch. Exit code 0 means every check passed."},
		{"json", "", "Output health check results as JSON. Must be used with \\fB\\-\\-health\\fR."},
		{"check\\-borders", "", "Render a border alignment test frame for the current terminal size and report any row width mismatch. Useful after font or terminal changes."},
		{"keys", "", "Show all registered keybindings in a formatted table. Can be filtered by mode and formatted as JSON."},
		{"keys\\-mode", "MODE", "Filter keybindings by mode when used with \\fB\\-\\-keys\\fR. MODE must be one of: tui, dashboard."},
		{"keys\\-format", "FORMAT", "Output format for \\fB\\-\\-keys\\fR. FORMAT must be one of: table (default), json."},
		{"config", "PATH", "Path to the YAML configuration file. Default: ~/.config/wtop/config.yaml."},
		{"interval", "DURATION", "Refresh interval override, e.g. 5s or 1m. Overrides the config file value."},
		{"width", "N", "Maximum dashboard width in columns. The frame uses the smaller of this and the detected terminal width."},
		{"lat", "LAT", "Latitude override. Together with \\fB\\-\\-lon\\fR this pins the forecast coordinate and skips IP geolocation."},
		{"lon", "LON", "Longitude override. Together with \\fB\\-\\-lat\\fR this pins the forecast coordinate and skips IP geolocation."},
		{"location", "LABEL", "Display label override for the title row, e.g. \"San Diego, CA\". Does not affect the forecast coordinate."},
		{"station", "ID", "Observation station override, e.g. KSAN. By default the nearest station to the forecast grid is used."},
		{"theme", "THEME", "TUI theme preset. THEME must be one of: sky (default), storm, minimal."},
		{"no\\-color", "", "Disable all color and text attributes in the output. The NO_COLOR environment variable has the same effect."},
		{"clear\\-cache", "", "Remove every cached metadata entry (point resolutions and the geolocation result) and exit."},
		{"verbose", "", "Enable debug-level logging to stderr."},
		{"version", "", "Print the version, commit hash, and build date, then exit."},
		{"man", "", "Print this man page to stdout in roff format. Pipe to man(1) for formatted viewing: \\fBwtop \\-\\-man | man \\-l \\-\\fR."},
	}

	for _, f := range flags {
		b.WriteString(".TP\n")
		if f.arg != "" {
			fmt.Fprintf(b, ".BR \\-\\-%s \" \\fI%s\\fR\"\n", f.flag, f.arg)
		} else {
			fmt.Fprintf(b, ".B \\-\\-%s\n", f.flag)
		}
		b.WriteString(f.desc + "\n")
	}
}

func writeKeybindings(b *strings.Builder) {
	b.WriteString(`.SH KEYBINDINGS
The following keybindings are registered in the KeyRegistry and are the
single source of truth for all wtop input handling.
`)

	registry := tui.DefaultRegistry()

	modes := []struct {
		mode tui.KeyMode
		name string
		desc string
	}{
		{tui.ModeTUI, "TUI Mode", "Active in the interactive TUI (\\fB\\-\\-tui\\fR)."},
		{tui.ModeDashboard, "Dashboard Mode", "Active in the default repainting dashboard."},
	}

	for _, m := range modes {
		entries := registry.ByMode(m.mode)
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(b, ".SS %s\n%s\n", m.name, m.desc)

		// Group by category within each mode.
		categories := []struct {
			cat  tui.KeyCategory
			name string
		}{
			{tui.CategoryNavigation, "Navigation"},
			{tui.CategoryScroll, "Scrolling"},
			{tui.CategoryData, "Data"},
			{tui.CategorySystem, "System"},
		}

		for _, cat := range categories {
			var catEntries []tui.KeyEntry
			for _, e := range entries {
				if e.Category == cat.cat {
					catEntries = append(catEntries, e)
				}
			}
			if len(catEntries) == 0 {
				continue
			}

			fmt.Fprintf(b, ".PP\n\\fI%s:\\fR\n", cat.name)
			for _, e := range catEntries {
				keysStr := strings.Join(e.Binding.Keys(), ", ")
				desc := e.Binding.Help().Desc
				fmt.Fprintf(b, ".TP\n.B %s\n%s (since %s)\n", roffEscape(keysStr), desc, e.Since)
			}
		}
	}
}

func writeConfiguration(b *strings.Builder) {
	b.WriteString(`.SH CONFIGURATION
Configuration is read from a YAML file at
.B ~/.config/wtop/config.yaml
by default, or from the path specified with \fB\-\-config\fR. A missing
file is not an error; built-in defaults apply.
.PP
The configuration file is organized into the following top-level sections:
.SS location
.TP
.B auto
Resolve the location from the host's public IP via ipinfo\&.io. Default: true.
.TP
.B label
Display label for the title row, e.g. "San Diego, CA". When set with a
pinned coordinate it replaces the resolved city and region.
.TP
.B latitude, longitude
Pinned forecast coordinate. When both are set (or either is non-zero),
geolocation is skipped entirely.
.SS dashboard
.TP
.B refresh_interval
Duration between fetch cycles (e.g., "5s", "1m"). Default: "5s".
.TP
.B max_width
Maximum frame width in columns. The frame never exceeds the terminal
width. Default: 130, minimum: 80.
.TP
.B no_color
Disable color output. Default: false.
.SS weather
.TP
.B user_agent
User-Agent header sent to api\&.weather\&.gov. The NWS API asks for a
contact address in this header.
.TP
.B station
Observation station identifier (e.g. KSAN). Default: nearest station to
the forecast grid.
.TP
.B request_timeout
Per-request HTTP timeout (e.g., "10s"). Default: "10s".
.TP
.B requests_per_second
Rate limit applied to fetch cycles against the NWS API. Default: 1.
.TP
.B burst
Rate limiter burst allowance. Default: 4.
.SS cache
.TP
.B dir
Directory for cached point metadata and geolocation results.
Default: ~/.cache/wtop.
.TP
.B points_ttl
How long a cached /points grid resolution stays fresh (e.g., "24h").
Default: "24h".
`)
}

func writeFiles(b *strings.Builder) {
	b.WriteString(`.SH FILES
.TP
.I ~/.config/wtop/config.yaml
Primary configuration file (YAML).
.TP
.I ~/.cache/wtop/
Metadata cache: /points grid resolutions and the last IP geolocation
result, stored as JSON files with timestamps.
`)
}

func writeExamples(b *strings.Builder) {
	b.WriteString(`.SH EXAMPLES
Run the dashboard with IP geolocation and a 5 second refresh:
.PP
.nf
wtop
.fi
.PP
Pin the forecast to a coordinate with a custom label:
.PP
.nf
wtop \-\-lat 45.52 \-\-lon \-122.68 \-\-location "Portland, OR"
.fi
.PP
Render once for a cron job or a scrollback capture:
.PP
.nf
wtop \-\-once \-\-no\-color > /tmp/weather.txt
.fi
.PP
Launch the interactive TUI with the storm theme:
.PP
.nf
wtop \-\-tui \-\-theme storm
.fi
.PP
Check connectivity before enabling a status bar integration:
.PP
.nf
wtop \-\-health
wtop \-\-health \-\-json
.fi
.PP
View keybindings:
.PP
.nf
wtop \-\-keys
wtop \-\-keys \-\-keys\-mode tui
wtop \-\-keys \-\-keys\-format json
.fi
.PP
View this man page:
.PP
.nf
wtop \-\-man | man \-l \-
.fi
.PP
Install the man page permanently:
.PP
.nf
wtop \-\-man > ~/.local/share/man/man1/wtop.1
.fi
`)
}

func writeEnvironment(b *strings.Builder) {
	b.WriteString(`.SH ENVIRONMENT
.TP
.B WTOP_LAT, WTOP_LON
Pin the forecast coordinate, overriding the config file.
.TP
.B WTOP_LOCATION
Display label override.
.TP
.B WTOP_STATION
Observation station override.
.TP
.B WTOP_INTERVAL
Refresh interval override (e.g., "10s").
.TP
.B WTOP_MAX_WIDTH
Maximum frame width override.
.TP
.B WTOP_USER_AGENT
User-Agent header override for NWS API requests.
.TP
.B WTOP_CACHE_DIR
Metadata cache directory override.
.TP
.B WTOP_NO_COLOR, NO_COLOR
Disable color output when set to any value.
.TP
.B COLUMNS, LINES
Terminal size fallback when stdout is not a terminal.
`)
}

func writeExitStatus(b *strings.Builder) {
	b.WriteString(".SH EXIT STATUS\n")
	b.WriteString(".TP\n.B 0\n")
	b.WriteString("Success. For \\fB\\-\\-health\\fR, every check passed.\n")
	b.WriteString(".TP\n.B 1\n")
	b.WriteString("Failure: invalid configuration, an unusable terminal geometry, or a failed health check.\n")
}

func writeSeeAlso(b *strings.Builder) {
	b.WriteString(`.SH SEE ALSO
.BR watch (1),
.BR crontab (5),
.BR man (1)
.PP
The NWS API documentation at <https://www.weather.gov/documentation/services\-web\-api>.
`)
}

func writeAuthors(b *strings.Builder) {
	b.WriteString(`.SH AUTHORS
Tinyland Lab <https://gitlab.com/tinyland/lab>
`)
}

func writeBugs(b *strings.Builder) {
	b.WriteString(`.SH BUGS
Report bugs at <https://gitlab.com/tinyland/lab/wtop/\-/issues>.
`)
}

func writeFooter(b *strings.Builder, version, commit, date string) {
	fmt.Fprintf(b, ".SH VERSION\n%s (%s) built %s\n", version, commit, date)
}
