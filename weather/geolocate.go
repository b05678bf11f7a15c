package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// ipinfoEndpoint is the IP geolocation API URL.
	ipinfoEndpoint = "https://ipinfo.io/json"

	// geolocateTimeout is the per-request timeout for the lookup.
	geolocateTimeout = 5 * time.Second

	// geolocateMaxResponseBytes limits the response body size.
	geolocateMaxResponseBytes = 1 << 16 // 64 KiB
)

// Location is a resolved coordinate with its display label parts.
// It is JSON-serializable for the metadata cache.
type Location struct {
	City   string  `json:"city"`
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// Label returns the "City, Region" display form.
func (l Location) Label() string {
	if l.Region == "" {
		return l.City
	}
	return l.City + ", " + l.Region
}

// FallbackLocation is used when IP geolocation fails or is disabled
// without an explicit coordinate.
func FallbackLocation() Location {
	return Location{City: "San Diego", Region: "CA", Lat: 32.7153, Lon: -117.1573}
}

// ipinfoResponse is the subset of the ipinfo.io payload the dashboard
// reads. Loc is "lat,lon" as a single string.
type ipinfoResponse struct {
	City   string `json:"city"`
	Region string `json:"region"`
	Loc    string `json:"loc"`
}

// Locator resolves the host's approximate location from its public IP.
type Locator struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// NewLocator creates a Locator with a 5-second timeout.
// If logger is nil, a no-op logger is used.
func NewLocator(userAgent string, logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Locator{
		httpClient: &http.Client{Timeout: geolocateTimeout},
		baseURL:    ipinfoEndpoint,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Locate queries ipinfo.io for the host's coordinate and city. Callers
// fall back to FallbackLocation on error.
func (l *Locator) Locate(ctx context.Context) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL, nil)
	if err != nil {
		return Location{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	req.Header.Set("Accept", "application/json")

	l.logger.Debug("resolving location", "url", l.baseURL)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, geolocateMaxResponseBytes))
	if err != nil {
		return Location{}, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geolocation API error: %s", resp.Status)
	}

	var parsed ipinfoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Location{}, fmt.Errorf("parsing geolocation response: %w", err)
	}

	loc := FallbackLocation()
	if parsed.City != "" {
		loc.City = parsed.City
	}
	if parsed.Region != "" {
		loc.Region = parsed.Region
	}
	if lat, lon, ok := parseCoordinate(parsed.Loc); ok {
		loc.Lat, loc.Lon = lat, lon
	}

	l.logger.Debug("resolved location",
		"city", loc.City, "region", loc.Region, "lat", loc.Lat, "lon", loc.Lon)
	return loc, nil
}

// parseCoordinate splits an ipinfo "lat,lon" string.
func parseCoordinate(s string) (lat, lon float64, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
