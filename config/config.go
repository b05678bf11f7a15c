// Package config provides configuration parsing for wtop.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the wtop configuration.
type Config struct {
	// Location holds forecast location settings.
	Location LocationConfig `yaml:"location"`

	// Dashboard holds render loop settings.
	Dashboard DashboardConfig `yaml:"dashboard"`

	// Weather holds api.weather.gov client settings.
	Weather WeatherConfig `yaml:"weather"`

	// Cache holds metadata cache settings.
	Cache CacheConfig `yaml:"cache"`
}

// LocationConfig holds forecast location settings.
type LocationConfig struct {
	// Auto enables IP geolocation when no coordinates are configured.
	Auto bool `yaml:"auto"`
	// Label overrides the display label, e.g. "San Diego, CA".
	Label string `yaml:"label"`
	// Latitude pins the forecast point; 0 with Auto on means geolocate.
	Latitude float64 `yaml:"latitude"`
	// Longitude pins the forecast point.
	Longitude float64 `yaml:"longitude"`
}

// DashboardConfig holds render loop settings.
type DashboardConfig struct {
	// RefreshInterval is a duration string (e.g. "5s") between fetches.
	RefreshInterval string `yaml:"refresh_interval"`
	// MaxWidth caps the frame width on wide terminals.
	MaxWidth int `yaml:"max_width"`
	// NoColor disables color output regardless of terminal support.
	NoColor bool `yaml:"no_color"`
}

// WeatherConfig holds api.weather.gov client settings.
type WeatherConfig struct {
	// UserAgent identifies this client to api.weather.gov, which
	// rejects anonymous requests.
	UserAgent string `yaml:"user_agent"`
	// Station overrides the nearest-observation-station lookup with a
	// station identifier like "KSAN".
	Station string `yaml:"station"`
	// RequestTimeout is a duration string per API request.
	RequestTimeout string `yaml:"request_timeout"`
	// RequestsPerSecond paces API calls as politeness to the free API.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	// Burst is how many calls may go out back to back before pacing
	// applies; one fetch cycle issues several.
	Burst int `yaml:"burst"`
}

// CacheConfig holds metadata cache settings.
type CacheConfig struct {
	// Dir is the directory for cached point resolutions and the
	// geolocation result. Live weather data is never cached.
	Dir string `yaml:"dir"`
	// PointsTTL is a duration string for cached point metadata.
	PointsTTL string `yaml:"points_ttl"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		Location: LocationConfig{
			Auto: true,
		},
		Dashboard: DashboardConfig{
			RefreshInterval: "5s",
			MaxWidth:        130,
		},
		Weather: WeatherConfig{
			UserAgent:         "wtop/1.0 (gitlab.com/tinyland/lab/wtop)",
			RequestTimeout:    "10s",
			RequestsPerSecond: 1,
			Burst:             4,
		},
		Cache: CacheConfig{
			Dir:       filepath.Join(home, ".cache", "wtop"),
			PointsTTL: "24h",
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wtop", "config.yaml")
}

// Load reads configuration from a YAML file, merging it over defaults
// and applying WTOP_* environment overrides last. A missing file is
// not an error; the defaults stand.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv overlays WTOP_* environment variables onto the config.
func applyEnv(c *Config) error {
	if v, ok := os.LookupEnv("WTOP_LAT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: WTOP_LAT: %w", err)
		}
		c.Location.Latitude = f
	}
	if v, ok := os.LookupEnv("WTOP_LON"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: WTOP_LON: %w", err)
		}
		c.Location.Longitude = f
	}
	if v, ok := os.LookupEnv("WTOP_LOCATION"); ok {
		c.Location.Label = v
	}
	if v, ok := os.LookupEnv("WTOP_STATION"); ok {
		c.Weather.Station = v
	}
	if v, ok := os.LookupEnv("WTOP_INTERVAL"); ok {
		c.Dashboard.RefreshInterval = v
	}
	if v, ok := os.LookupEnv("WTOP_MAX_WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: WTOP_MAX_WIDTH: %w", err)
		}
		c.Dashboard.MaxWidth = n
	}
	if v, ok := os.LookupEnv("WTOP_USER_AGENT"); ok {
		c.Weather.UserAgent = v
	}
	if v, ok := os.LookupEnv("WTOP_CACHE_DIR"); ok {
		c.Cache.Dir = v
	}
	if _, ok := os.LookupEnv("WTOP_NO_COLOR"); ok {
		c.Dashboard.NoColor = true
	}
	return nil
}

// Validate checks the configuration for required fields and logical
// consistency.
func (c *Config) Validate() error {
	if d, err := time.ParseDuration(c.Dashboard.RefreshInterval); err != nil || d <= 0 {
		return fmt.Errorf("dashboard.refresh_interval must be a positive duration, got %q", c.Dashboard.RefreshInterval)
	}
	if c.Dashboard.MaxWidth < 80 {
		return fmt.Errorf("dashboard.max_width must be at least 80, got %d", c.Dashboard.MaxWidth)
	}

	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("location.latitude must be within [-90, 90], got %g", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("location.longitude must be within [-180, 180], got %g", c.Location.Longitude)
	}
	if !c.Location.Auto && c.Location.Latitude == 0 && c.Location.Longitude == 0 {
		return fmt.Errorf("location.auto is off but no coordinates are configured")
	}

	if c.Weather.UserAgent == "" {
		return fmt.Errorf("weather.user_agent is required; api.weather.gov rejects anonymous clients")
	}
	if d, err := time.ParseDuration(c.Weather.RequestTimeout); err != nil || d <= 0 {
		return fmt.Errorf("weather.request_timeout must be a positive duration, got %q", c.Weather.RequestTimeout)
	}
	if c.Weather.RequestsPerSecond <= 0 {
		return fmt.Errorf("weather.requests_per_second must be positive, got %g", c.Weather.RequestsPerSecond)
	}
	if c.Weather.Burst < 1 {
		return fmt.Errorf("weather.burst must be at least 1, got %d", c.Weather.Burst)
	}

	if c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is required")
	}
	if _, err := time.ParseDuration(c.Cache.PointsTTL); err != nil {
		return fmt.Errorf("cache.points_ttl must be a duration, got %q", c.Cache.PointsTTL)
	}

	return nil
}

// RefreshEvery returns the parsed refresh interval.
func (c *Config) RefreshEvery() time.Duration {
	if d, err := time.ParseDuration(c.Dashboard.RefreshInterval); err == nil && d > 0 {
		return d
	}
	return 5 * time.Second
}

// RequestTimeout returns the parsed per-request timeout.
func (c *Config) RequestTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Weather.RequestTimeout); err == nil && d > 0 {
		return d
	}
	return 10 * time.Second
}

// PointsTTL returns the parsed cache TTL for point metadata.
func (c *Config) PointsTTL() time.Duration {
	if d, err := time.ParseDuration(c.Cache.PointsTTL); err == nil && d >= 0 {
		return d
	}
	return 24 * time.Hour
}
