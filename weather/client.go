package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"gitlab.com/tinyland/lab/wtop/cache"
)

const (
	// nwsEndpoint is the National Weather Service API base URL.
	nwsEndpoint = "https://api.weather.gov"

	// defaultUserAgent identifies wtop in request headers. NWS policy
	// requires a contactable User-Agent.
	defaultUserAgent = "wtop/1.0 (gitlab.com/tinyland/lab/wtop)"

	// nwsRequestTimeout is the default per-request timeout.
	nwsRequestTimeout = 10 * time.Second

	// nwsMaxResponseBytes limits response body size. Forecast payloads
	// run to a few hundred KiB of GeoJSON.
	nwsMaxResponseBytes = 1 << 22 // 4 MiB

	// pointsCacheTTL is how long a /points resolution stays fresh. The
	// grid mapping for a coordinate almost never changes, and NWS asks
	// clients not to re-resolve it on every request.
	pointsCacheTTL = 24 * time.Hour

	// hourlyCount and dailyCount bound how much forecast the dashboard
	// keeps per cycle.
	hourlyCount = 12
	dailyCount  = 7
)

// ErrNoStations reports that the forecast grid lists no observation
// stations, so there is nothing to read current conditions from.
var ErrNoStations = errors.New("no observation stations for grid")

// APIError represents a non-success HTTP response from the NWS API.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("nws API error: %s (body: %s)", e.Status, e.Body)
	}
	return fmt.Sprintf("nws API error: %s", e.Status)
}

// ClientOptions configures a Client. Zero values take defaults.
type ClientOptions struct {
	// Location is the resolved coordinate and display label.
	Location Location

	// Station overrides nearest-station selection for observations,
	// e.g. "KSAN".
	Station string

	// UserAgent identifies the application per NWS API policy.
	UserAgent string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// BaseURL overrides the API endpoint, for tests.
	BaseURL string

	// Cache stores /points resolutions across runs. Nil disables
	// metadata caching.
	Cache *cache.Store

	// PointsTTL is how long a cached /points resolution stays fresh.
	PointsTTL time.Duration

	// Logger receives debug output. Nil means no logging.
	Logger *slog.Logger
}

// Client fetches weather reports from the National Weather Service API.
// One Client serves one location for its lifetime.
type Client struct {
	loc        Location
	station    string
	userAgent  string
	baseURL    string
	httpClient *http.Client
	store      *cache.Store
	pointsTTL  time.Duration
	logger     *slog.Logger
}

var _ Source = (*Client)(nil)

// NewClient creates an NWS client for the given location.
func NewClient(opts ClientOptions) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = nwsRequestTimeout
	}
	if opts.BaseURL == "" {
		opts.BaseURL = nwsEndpoint
	}
	if opts.PointsTTL <= 0 {
		opts.PointsTTL = pointsCacheTTL
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		loc:        opts.Location,
		station:    opts.Station,
		userAgent:  opts.UserAgent,
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		store:      opts.Cache,
		pointsTTL:  opts.PointsTTL,
		logger:     opts.Logger,
	}
}

// Name implements Source.
func (c *Client) Name() string { return "nws" }

// Fetch implements Source. It resolves the forecast grid, pulls hourly
// and seven-day forecasts, the latest station observation, and active
// alerts, and assembles them into a Report. Grid and forecast failures
// are fatal for the cycle; observation and alert failures degrade to
// warnings, with current conditions approximated from the first hourly
// period.
func (c *Client) Fetch(ctx context.Context) (*Report, error) {
	now := time.Now()
	var warnings []string

	meta, err := c.resolvePoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving forecast grid: %w", err)
	}

	hourlyPeriods, err := c.fetchPeriods(ctx, meta.ForecastHourly)
	if err != nil {
		return nil, fmt.Errorf("fetching hourly forecast: %w", err)
	}
	hourly := hourlyRecords(hourlyPeriods)

	dailyPeriods, err := c.fetchPeriods(ctx, meta.Forecast)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	daily := dailyRecords(dailyPeriods)

	current, warn := c.fetchCurrent(ctx, meta, hourly)
	warnings = append(warnings, warn...)
	current.Sunrise, current.Sunset = EstimateSunTimes(c.loc.Lat, c.loc.Lon, now)

	alerts, warn := c.fetchAlerts(ctx)
	warnings = append(warnings, warn...)

	label := c.loc.Label()
	if label == "" {
		label = meta.label()
	}

	return &Report{
		Location:     label,
		Current:      current,
		Hourly:       hourly,
		Daily:        daily,
		Alerts:       alerts,
		RadarStation: meta.RadarStation,
		Fetched:      now,
		Warnings:     warnings,
	}, nil
}

// pointsMeta is the flattened /points resolution kept in the metadata
// cache: the per-coordinate URLs and names everything else hangs off.
type pointsMeta struct {
	Forecast            string `json:"forecast"`
	ForecastHourly      string `json:"forecastHourly"`
	ObservationStations string `json:"observationStations"`
	RadarStation        string `json:"radarStation"`
	City                string `json:"city"`
	State               string `json:"state"`
}

// label returns the relative-location fallback label.
func (m *pointsMeta) label() string {
	if m.City == "" {
		return m.State
	}
	if m.State == "" {
		return m.City
	}
	return m.City + ", " + m.State
}

func (c *Client) pointsKey() string {
	return fmt.Sprintf("points-%.4f,%.4f", c.loc.Lat, c.loc.Lon)
}

// resolvePoints maps the coordinate to its forecast grid, consulting
// the metadata cache first. Cache failures never block a live fetch.
func (c *Client) resolvePoints(ctx context.Context) (*pointsMeta, error) {
	key := c.pointsKey()
	if c.store != nil {
		meta, fresh, err := cache.GetTyped[pointsMeta](c.store, key, c.pointsTTL)
		if err != nil {
			c.logger.Warn("point metadata cache read failed", "error", err)
		} else if meta != nil && fresh {
			return meta, nil
		}
	}

	var parsed pointsResponse
	url := fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, c.loc.Lat, c.loc.Lon)
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return nil, err
	}

	p := parsed.Properties
	meta := &pointsMeta{
		Forecast:            p.Forecast,
		ForecastHourly:      p.ForecastHourly,
		ObservationStations: p.ObservationStations,
		RadarStation:        p.RadarStation,
		City:                p.RelativeLocation.Properties.City,
		State:               p.RelativeLocation.Properties.State,
	}
	if meta.Forecast == "" || meta.ForecastHourly == "" {
		return nil, fmt.Errorf("point response for %s missing forecast URLs", key)
	}

	if c.store != nil {
		if err := cache.SetTyped(c.store, key, meta); err != nil {
			c.logger.Warn("point metadata cache write failed", "error", err)
		}
	}
	return meta, nil
}

// fetchPeriods retrieves a forecast endpoint and returns its periods.
func (c *Client) fetchPeriods(ctx context.Context, url string) ([]forecastPeriod, error) {
	var parsed forecastResponse
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return nil, err
	}
	return parsed.Properties.Periods, nil
}

// fetchCurrent builds current conditions from the nearest station's
// latest observation. Any failure downgrades to an approximation from
// the first hourly period plus a warning.
func (c *Client) fetchCurrent(ctx context.Context, meta *pointsMeta, hourly []Record) (Current, []string) {
	station := c.station
	if station == "" {
		var err error
		station, err = c.nearestStation(ctx, meta.ObservationStations)
		if err != nil {
			return currentFromHourly(hourly), []string{fmt.Sprintf("station lookup failed: %v", err)}
		}
	}

	var parsed observationResponse
	url := fmt.Sprintf("%s/stations/%s/observations/latest", c.baseURL, station)
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return currentFromHourly(hourly), []string{fmt.Sprintf("observation at %s failed: %v", station, err)}
	}
	return currentFromObservation(parsed.Properties), nil
}

// nearestStation returns the first station on the grid's station list,
// which NWS orders by distance.
func (c *Client) nearestStation(ctx context.Context, url string) (string, error) {
	var parsed stationsResponse
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Features) == 0 {
		return "", fmt.Errorf("%w near %.4f,%.4f", ErrNoStations, c.loc.Lat, c.loc.Lon)
	}
	return parsed.Features[0].Properties.StationIdentifier, nil
}

// fetchAlerts retrieves active alerts for the coordinate, worst first.
// Failures degrade to a warning rather than killing the cycle.
func (c *Client) fetchAlerts(ctx context.Context) ([]Alert, []string) {
	var parsed alertsResponse
	url := fmt.Sprintf("%s/alerts/active?point=%.4f,%.4f", c.baseURL, c.loc.Lat, c.loc.Lon)
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return nil, []string{fmt.Sprintf("alerts fetch failed: %v", err)}
	}

	alerts := make([]Alert, 0, len(parsed.Features))
	for _, f := range parsed.Features {
		p := f.Properties
		expires := p.Expires
		if p.Ends != nil {
			expires = *p.Ends
		}
		alerts = append(alerts, Alert{
			Event:    p.Event,
			Headline: p.Headline,
			Severity: ParseSeverity(p.Severity),
			Expires:  expires,
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank(alerts[i].Severity) > severityRank(alerts[j].Severity)
	})
	return alerts, nil
}

// getJSON performs a GET against the NWS API and decodes the body.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	c.logger.Debug("fetching", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, nwsMaxResponseBytes))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// quantity is the NWS QuantitativeValue shape. Value is null when the
// station did not report the measurement.
type quantity struct {
	Value    *float64 `json:"value"`
	UnitCode string   `json:"unitCode"`
}

type pointsResponse struct {
	Properties struct {
		Forecast            string `json:"forecast"`
		ForecastHourly      string `json:"forecastHourly"`
		ObservationStations string `json:"observationStations"`
		RadarStation        string `json:"radarStation"`
		RelativeLocation    struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

type stationsResponse struct {
	Features []struct {
		Properties struct {
			StationIdentifier string `json:"stationIdentifier"`
			Name              string `json:"name"`
		} `json:"properties"`
	} `json:"features"`
}

type observationResponse struct {
	Properties observationProps `json:"properties"`
}

type observationProps struct {
	TextDescription    string       `json:"textDescription"`
	Temperature        quantity     `json:"temperature"`
	HeatIndex          quantity     `json:"heatIndex"`
	WindChill          quantity     `json:"windChill"`
	WindSpeed          quantity     `json:"windSpeed"`
	WindDirection      quantity     `json:"windDirection"`
	BarometricPressure quantity     `json:"barometricPressure"`
	RelativeHumidity   quantity     `json:"relativeHumidity"`
	Visibility         quantity     `json:"visibility"`
	CloudLayers        []cloudLayer `json:"cloudLayers"`
}

type cloudLayer struct {
	Amount string `json:"amount"`
}

type forecastResponse struct {
	Properties struct {
		Periods []forecastPeriod `json:"periods"`
	} `json:"properties"`
}

type forecastPeriod struct {
	Number                     int       `json:"number"`
	Name                       string    `json:"name"`
	StartTime                  time.Time `json:"startTime"`
	IsDaytime                  bool      `json:"isDaytime"`
	Temperature                float64   `json:"temperature"`
	TemperatureUnit            string    `json:"temperatureUnit"`
	WindSpeed                  string    `json:"windSpeed"`
	WindDirection              string    `json:"windDirection"`
	ShortForecast              string    `json:"shortForecast"`
	DetailedForecast           string    `json:"detailedForecast"`
	ProbabilityOfPrecipitation quantity  `json:"probabilityOfPrecipitation"`
}

type alertsResponse struct {
	Features []struct {
		Properties struct {
			Event    string     `json:"event"`
			Headline string     `json:"headline"`
			Severity string     `json:"severity"`
			Expires  time.Time  `json:"expires"`
			Ends     *time.Time `json:"ends"`
		} `json:"properties"`
	} `json:"features"`
}
