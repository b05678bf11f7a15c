// wtop is a terminal weather dashboard.
//
// It polls the National Weather Service API (api.weather.gov) for the
// host's location and repaints a fixed-width boxed dashboard in place:
// current conditions with gauges, an hourly forecast beside a 7-day
// forecast, and any active alerts. An interactive TUI mode layers
// tabbed views, scrolling, and a radar image over the same data.
//
// Usage:
//
//	wtop [flags]
//
// Flags:
//
//	-once             One fetch-render-print pass, then exit
//	-tui              Launch the interactive Bubble Tea interface
//	-health           Run connectivity self-checks and exit
//	-check-borders    Render a border test frame and exit
//	-keys             Print registered keybindings and exit
//	-man              Print the man page to stdout in roff format
//	-clear-cache      Remove cached metadata and exit
//	-version          Print version and exit
//	-config string    Path to configuration file (default: ~/.config/wtop/config.yaml)
//	-interval dur     Refresh interval override (e.g. 5s)
//	-width int        Maximum dashboard width override
//	-lat float        Latitude override (skips geolocation)
//	-lon float        Longitude override (skips geolocation)
//	-location string  Display label override (e.g. "San Diego, CA")
//	-station string   Observation station override (e.g. KSAN)
//	-theme string     TUI theme preset (sky|storm|minimal)
//	-no-color         Disable color output
//	-verbose          Enable debug logging to stderr
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/wtop/cache"
	"gitlab.com/tinyland/lab/wtop/config"
	dcolor "gitlab.com/tinyland/lab/wtop/display/color"
	"gitlab.com/tinyland/lab/wtop/display/frame"
	"gitlab.com/tinyland/lab/wtop/display/layout"
	"gitlab.com/tinyland/lab/wtop/display/tui"
	"gitlab.com/tinyland/lab/wtop/docs/manpage"
	"gitlab.com/tinyland/lab/wtop/weather"
)

const (
	// locationCacheKey and locationCacheTTL govern the cached IP
	// geolocation result. The host does not move often; a stale entry
	// only costs one extra lookup.
	locationCacheKey = "location"
	locationCacheTTL = 24 * time.Hour
)

func main() {
	var (
		configPath   = flag.String("config", "", "Path to configuration file (default: ~/.config/wtop/config.yaml)")
		runOnce      = flag.Bool("once", false, "One fetch-render-print pass, then exit")
		runTUI       = flag.Bool("tui", false, "Launch the interactive Bubble Tea interface")
		runHealth    = flag.Bool("health", false, "Run connectivity self-checks and exit")
		healthJSON   = flag.Bool("json", false, "Output health checks as JSON (with -health)")
		checkBorders = flag.Bool("check-borders", false, "Render a border test frame and exit")
		showKeys     = flag.Bool("keys", false, "Print registered keybindings and exit")
		keysMode     = flag.String("keys-mode", "", "Filter keybindings by mode (tui|dashboard)")
		keysFormat   = flag.String("keys-format", "table", "Output format for -keys (table|json)")
		showMan      = flag.Bool("man", false, "Print the man page to stdout in roff format")
		clearCache   = flag.Bool("clear-cache", false, "Remove cached metadata and exit")
		showVersion  = flag.Bool("version", false, "Print version and exit")
		interval     = flag.Duration("interval", 0, "Refresh interval override (e.g. 5s)")
		maxWidth     = flag.Int("width", 0, "Maximum dashboard width override")
		lat          = flag.Float64("lat", 0, "Latitude override (skips geolocation)")
		lon          = flag.Float64("lon", 0, "Longitude override (skips geolocation)")
		location     = flag.String("location", "", "Display label override (e.g. \"San Diego, CA\")")
		station      = flag.String("station", "", "Observation station override (e.g. KSAN)")
		themeFlag    = flag.String("theme", "", "TUI theme preset (sky|storm|minimal)")
		noColor      = flag.Bool("no-color", false, "Disable color output")
		verbose      = flag.Bool("verbose", false, "Enable debug logging to stderr")
	)
	flag.Parse()

	// ---------------------------------------------------------------
	// Commands that don't require config
	// ---------------------------------------------------------------

	if *showVersion {
		fmt.Printf("wtop %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *showMan {
		fmt.Print(manpage.Generate(version, commit, date))
		os.Exit(0)
	}

	if *showKeys {
		os.Exit(runKeysCommand(*keysMode, *keysFormat))
	}

	// ---------------------------------------------------------------
	// Load configuration, apply flag overrides
	// ---------------------------------------------------------------

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wtop: failed to load config: %v\n", err)
		os.Exit(1)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	applyOverrides(cfg, flagValues{
		interval: *interval,
		maxWidth: *maxWidth,
		lat:      *lat,
		lon:      *lon,
		label:    *location,
		station:  *station,
		noColor:  *noColor,
	}, set)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "wtop: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	dcolor.Apply(cfg.Dashboard.NoColor)
	logger := newLogger(*verbose)

	if *clearCache {
		os.Exit(runClearCache(cfg, logger))
	}

	// ---------------------------------------------------------------
	// Border self-check
	// ---------------------------------------------------------------

	if *checkBorders {
		w, _ := frame.DetectTerminalSize()
		g, err := layout.NewGeometry(layout.FrameWidth(w, cfg.Dashboard.MaxWidth))
		if err != nil {
			fmt.Fprintf(os.Stderr, "wtop: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(frame.CheckBorders(g))
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Context with signal handling
	// ---------------------------------------------------------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// ---------------------------------------------------------------
	// Health check
	// ---------------------------------------------------------------

	if *runHealth {
		os.Exit(runHealthChecks(ctx, cfg, logger, *healthJSON))
	}

	// ---------------------------------------------------------------
	// Weather source, shared by every remaining mode
	// ---------------------------------------------------------------

	store, err := cache.NewStore(cfg.Cache.Dir, logger)
	if err != nil {
		logger.Warn("metadata cache unavailable, continuing without it", "error", err)
		store = nil
	}

	loc := resolveLocation(ctx, cfg, store, logger)
	source := buildSource(cfg, loc, store, logger)

	// ---------------------------------------------------------------
	// TUI mode
	// ---------------------------------------------------------------

	if *runTUI {
		defer func() {
			if r := recover(); r != nil {
				// Restore the terminal from the alt screen before the
				// error lands on it.
				fmt.Print("\x1b[?1049l\x1b[?25h")
				fmt.Fprintf(os.Stderr, "wtop: TUI panic: %v\n", r)
				os.Exit(1)
			}
		}()

		if *themeFlag != "" {
			tui.ApplyTheme(tui.GetThemePreset(*themeFlag))
		}

		model := tui.NewModel(source, cfg.RefreshEvery())
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "wtop: TUI error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Dashboard: -once or the continuous poll loop
	// ---------------------------------------------------------------

	d := newDashboard(cfg, source, logger, os.Stdout)

	if *runOnce {
		if err := d.renderOnce(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "wtop: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := d.run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "wtop: %v\n", err)
		os.Exit(1)
	}
}

// flagValues carries the tuning flags that override config file values.
type flagValues struct {
	interval time.Duration
	maxWidth int
	lat      float64
	lon      float64
	label    string
	station  string
	noColor  bool
}

// applyOverrides layers explicitly passed flags over the loaded config,
// so precedence is flags, then file, then defaults. set reports which
// flags appeared on the command line; checking it rather than the value
// keeps zero overrides like -lat 0 meaningful.
func applyOverrides(cfg *config.Config, v flagValues, set map[string]bool) {
	if set["interval"] {
		cfg.Dashboard.RefreshInterval = v.interval.String()
	}
	if set["width"] {
		cfg.Dashboard.MaxWidth = v.maxWidth
	}
	if set["lat"] {
		cfg.Location.Latitude = v.lat
	}
	if set["lon"] {
		cfg.Location.Longitude = v.lon
	}
	if set["location"] {
		cfg.Location.Label = v.label
	}
	if set["station"] {
		cfg.Weather.Station = v.station
	}
	if set["no-color"] && v.noColor {
		cfg.Dashboard.NoColor = true
	}
}

// newLogger builds the stderr logger. The dashboard owns the screen, so
// anything below warn stays quiet unless -verbose asks for it.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveLocation pins the forecast coordinate: explicit config or flag
// coordinates win, then a cached geolocation result, then a live
// ipinfo.io lookup, then the built-in fallback. The -location label
// override applies to whichever branch resolved.
func resolveLocation(ctx context.Context, cfg *config.Config, store *cache.Store, logger *slog.Logger) weather.Location {
	loc, resolved := pinnedLocation(cfg)
	if !resolved {
		loc = geolocate(ctx, cfg, store, logger)
	}
	if cfg.Location.Label != "" {
		loc.City, loc.Region = cfg.Location.Label, ""
	}
	return loc
}

// pinnedLocation returns the explicitly configured coordinate, if any.
func pinnedLocation(cfg *config.Config) (weather.Location, bool) {
	if cfg.Location.Latitude == 0 && cfg.Location.Longitude == 0 {
		return weather.Location{}, false
	}
	return weather.Location{
		Lat: cfg.Location.Latitude,
		Lon: cfg.Location.Longitude,
	}, true
}

// geolocate resolves the host's location from its public IP, consulting
// the metadata cache first. Failures fall back to the default location
// rather than blocking the dashboard.
func geolocate(ctx context.Context, cfg *config.Config, store *cache.Store, logger *slog.Logger) weather.Location {
	if store != nil {
		cached, fresh, err := cache.GetTyped[weather.Location](store, locationCacheKey, locationCacheTTL)
		if err != nil {
			logger.Warn("location cache read failed", "error", err)
		} else if cached != nil && fresh {
			return *cached
		}
	}

	locator := weather.NewLocator(cfg.Weather.UserAgent, logger)
	loc, err := locator.Locate(ctx)
	if err != nil {
		logger.Warn("geolocation failed, using fallback location", "error", err)
		return weather.FallbackLocation()
	}

	if store != nil {
		if err := cache.SetTyped(store, locationCacheKey, &loc); err != nil {
			logger.Warn("location cache write failed", "error", err)
		}
	}
	return loc
}

// runClearCache removes every cached metadata entry and reports what
// was dropped.
func runClearCache(cfg *config.Config, logger *slog.Logger) int {
	store, err := cache.NewStore(cfg.Cache.Dir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wtop: opening cache: %v\n", err)
		return 1
	}
	n := len(store.Keys())
	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "wtop: clearing cache: %v\n", err)
		return 1
	}
	fmt.Printf("Cleared %d cached entries from %s\n", n, store.Dir())
	return 0
}

// buildSource assembles the NWS client for the resolved location and
// wraps it in the politeness throttle.
func buildSource(cfg *config.Config, loc weather.Location, store *cache.Store, logger *slog.Logger) weather.Source {
	client := weather.NewClient(weather.ClientOptions{
		Location:  loc,
		Station:   cfg.Weather.Station,
		UserAgent: cfg.Weather.UserAgent,
		Timeout:   cfg.RequestTimeout(),
		Cache:     store,
		PointsTTL: cfg.PointsTTL(),
		Logger:    logger,
	})
	return weather.Throttled(client, cfg.Weather.RequestsPerSecond, cfg.Weather.Burst)
}
