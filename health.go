package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"gitlab.com/tinyland/lab/wtop/cache"
	"gitlab.com/tinyland/lab/wtop/config"
	"gitlab.com/tinyland/lab/wtop/display/widgets"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// nwsStatusURL is probed for reachability before attempting a full
// forecast fetch. The API root answers with service metadata.
const nwsStatusURL = "https://api.weather.gov/"

// healthCheck is one self-check result. Status is a health word the
// status widget knows how to color: ok, degraded, error, unreachable.
type healthCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// passed reports whether the check counts toward a healthy exit. A
// degraded check displays yellow but does not fail the run.
func (c healthCheck) passed() bool {
	return widgets.StatusLevelFromString(c.Status) != widgets.StatusCritical
}

// runHealthChecks probes everything the dashboard needs to start:
// the metadata cache directory, location resolution, api.weather.gov
// reachability, and a full forecast fetch. It prints one line per
// check (or a JSON document with -json) and returns the process exit
// code: 0 when every check passes, 1 otherwise.
func runHealthChecks(ctx context.Context, cfg *config.Config, logger *slog.Logger, asJSON bool) int {
	cacheCheck, store := checkCacheDir(cfg.Cache.Dir, logger)
	locCheck, loc := checkGeolocation(ctx, cfg, logger)
	endpointCheck := checkEndpoint(ctx, nwsStatusURL, cfg.Weather.UserAgent, cfg.RequestTimeout())
	forecastCheck := checkForecast(ctx, buildSource(cfg, loc, store, logger))

	checks := []healthCheck{cacheCheck, locCheck, endpointCheck, forecastCheck}

	healthy := true
	for _, c := range checks {
		if !c.passed() {
			healthy = false
		}
	}

	if asJSON {
		out := struct {
			Healthy bool          `json:"healthy"`
			Checks  []healthCheck `json:"checks"`
		}{healthy, checks}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
	} else {
		for _, c := range checks {
			fmt.Println(widgets.RenderStatus(widgets.StatusConfig{
				Level:    widgets.StatusLevelFromString(c.Status),
				Text:     fmt.Sprintf("%s: %s", c.Name, c.Detail),
				ShowIcon: true,
			}))
		}
	}

	if !healthy {
		if !asJSON {
			fmt.Fprintln(os.Stderr, "one or more checks failed")
		}
		return 1
	}
	return 0
}

// checkCacheDir verifies the metadata cache directory can be created
// and written. The store is returned for the forecast check so its
// fetch exercises the same path the dashboard will.
func checkCacheDir(dir string, logger *slog.Logger) (healthCheck, *cache.Store) {
	store, err := cache.NewStore(dir, logger)
	if err != nil {
		return healthCheck{Name: "cache", Status: "error", Detail: err.Error()}, nil
	}
	detail := fmt.Sprintf("%s (%d entries)", dir, len(store.Keys()))
	return healthCheck{Name: "cache", Status: "ok", Detail: detail}, store
}

// checkGeolocation resolves the forecast coordinate. A pinned
// coordinate passes without a network call; otherwise a live
// ipinfo.io lookup runs, falling back to the default location so the
// remaining checks still exercise the API.
func checkGeolocation(ctx context.Context, cfg *config.Config, logger *slog.Logger) (healthCheck, weather.Location) {
	if loc, ok := pinnedLocation(cfg); ok {
		if cfg.Location.Label != "" {
			loc.City, loc.Region = cfg.Location.Label, ""
		}
		return healthCheck{
			Name:   "geolocation",
			Status: "ok",
			Detail: fmt.Sprintf("pinned to %.4f, %.4f", loc.Lat, loc.Lon),
		}, loc
	}

	locator := weather.NewLocator(cfg.Weather.UserAgent, logger)
	loc, err := locator.Locate(ctx)
	if err != nil {
		return healthCheck{
			Name:   "geolocation",
			Status: "error",
			Detail: err.Error(),
		}, weather.FallbackLocation()
	}
	return healthCheck{
		Name:   "geolocation",
		Status: "ok",
		Detail: fmt.Sprintf("%s (%.4f, %.4f)", loc.Label(), loc.Lat, loc.Lon),
	}, loc
}

// checkEndpoint issues a bare request against the API root and reports
// reachability with the round-trip time.
func checkEndpoint(ctx context.Context, url, userAgent string, timeout time.Duration) healthCheck {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return healthCheck{Name: "api.weather.gov", Status: "error", Detail: err.Error()}
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: timeout}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return healthCheck{Name: "api.weather.gov", Status: "unreachable", Detail: err.Error()}
	}
	defer resp.Body.Close()

	return healthCheck{
		Name:   "api.weather.gov",
		Status: "ok",
		Detail: fmt.Sprintf("reachable (HTTP %d in %dms)", resp.StatusCode, time.Since(start).Milliseconds()),
	}
}

// checkForecast runs a complete fetch through the configured source,
// the same call the dashboard makes every cycle. Partial data (an
// observation or alert failure) reports as degraded rather than
// failing the run.
func checkForecast(ctx context.Context, src weather.Source) healthCheck {
	rep, err := src.Fetch(ctx)
	if err != nil {
		return healthCheck{Name: "forecast", Status: "error", Detail: err.Error()}
	}

	detail := fmt.Sprintf("%d hourly and %d daily periods for %s", len(rep.Hourly), len(rep.Daily), rep.Location)
	if len(rep.Warnings) > 0 {
		return healthCheck{
			Name:   "forecast",
			Status: "degraded",
			Detail: fmt.Sprintf("%s (%s)", detail, rep.Warnings[0]),
		}
	}
	return healthCheck{Name: "forecast", Status: "ok", Detail: detail}
}
