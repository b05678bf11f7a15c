package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Location.Auto {
		t.Error("expected automatic geolocation by default")
	}
	if cfg.Dashboard.RefreshInterval != "5s" {
		t.Errorf("expected RefreshInterval=5s, got %s", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Dashboard.MaxWidth != 130 {
		t.Errorf("expected MaxWidth=130, got %d", cfg.Dashboard.MaxWidth)
	}
	if cfg.Dashboard.NoColor {
		t.Error("expected color enabled by default")
	}
	if cfg.Weather.UserAgent == "" {
		t.Error("expected a default user agent; api.weather.gov requires one")
	}
	if cfg.Weather.Station != "" {
		t.Errorf("expected no station override by default, got %s", cfg.Weather.Station)
	}
	if cfg.Weather.RequestTimeout != "10s" {
		t.Errorf("expected RequestTimeout=10s, got %s", cfg.Weather.RequestTimeout)
	}
	if cfg.Weather.RequestsPerSecond != 1 {
		t.Errorf("expected RequestsPerSecond=1, got %g", cfg.Weather.RequestsPerSecond)
	}
	if cfg.Weather.Burst != 4 {
		t.Errorf("expected Burst=4, got %d", cfg.Weather.Burst)
	}
	if cfg.Cache.Dir == "" {
		t.Error("expected a default cache dir")
	}
	if cfg.Cache.PointsTTL != "24h" {
		t.Errorf("expected PointsTTL=24h, got %s", cfg.Cache.PointsTTL)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid, got error: %v", err)
	}
}

func TestDefaultPathUnderConfigHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home dir: %v", err)
	}
	want := filepath.Join(home, ".config", "wtop", "config.yaml")
	if got := DefaultPath(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestLoadNonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error for non-existent file: %v", err)
	}
	if cfg.Dashboard.RefreshInterval != "5s" {
		t.Errorf("expected default RefreshInterval=5s, got %s", cfg.Dashboard.RefreshInterval)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error for empty path: %v", err)
	}
	if cfg.Dashboard.MaxWidth != 130 {
		t.Errorf("expected default MaxWidth=130, got %d", cfg.Dashboard.MaxWidth)
	}
}

func TestLoadValidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
location:
  auto: false
  label: Portland, OR
  latitude: 45.5234
  longitude: -122.6762

dashboard:
  refresh_interval: 30s
  max_width: 110

weather:
  station: KPDX
  requests_per_second: 0.5
  burst: 8
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Location.Auto {
		t.Error("expected auto geolocation off")
	}
	if cfg.Location.Label != "Portland, OR" {
		t.Errorf("expected label Portland, OR, got %s", cfg.Location.Label)
	}
	if cfg.Location.Latitude != 45.5234 {
		t.Errorf("expected latitude 45.5234, got %g", cfg.Location.Latitude)
	}
	if cfg.Dashboard.RefreshInterval != "30s" {
		t.Errorf("expected RefreshInterval=30s, got %s", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Weather.Station != "KPDX" {
		t.Errorf("expected station KPDX, got %s", cfg.Weather.Station)
	}
	if cfg.Weather.RequestsPerSecond != 0.5 {
		t.Errorf("expected RequestsPerSecond=0.5, got %g", cfg.Weather.RequestsPerSecond)
	}

	// Defaults preserved for unspecified fields.
	if cfg.Weather.UserAgent == "" {
		t.Error("expected the default user agent preserved")
	}
	if cfg.Cache.PointsTTL != "24h" {
		t.Errorf("expected default PointsTTL=24h, got %s", cfg.Cache.PointsTTL)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("dashboard:\n  max_width: [invalid\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WTOP_LAT", "40.7128")
	t.Setenv("WTOP_LON", "-74.006")
	t.Setenv("WTOP_LOCATION", "New York, NY")
	t.Setenv("WTOP_STATION", "KNYC")
	t.Setenv("WTOP_INTERVAL", "10s")
	t.Setenv("WTOP_MAX_WIDTH", "100")
	t.Setenv("WTOP_NO_COLOR", "1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Location.Latitude != 40.7128 {
		t.Errorf("expected latitude from env, got %g", cfg.Location.Latitude)
	}
	if cfg.Location.Longitude != -74.006 {
		t.Errorf("expected longitude from env, got %g", cfg.Location.Longitude)
	}
	if cfg.Location.Label != "New York, NY" {
		t.Errorf("expected label from env, got %s", cfg.Location.Label)
	}
	if cfg.Weather.Station != "KNYC" {
		t.Errorf("expected station from env, got %s", cfg.Weather.Station)
	}
	if cfg.Dashboard.RefreshInterval != "10s" {
		t.Errorf("expected interval from env, got %s", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Dashboard.MaxWidth != 100 {
		t.Errorf("expected max width from env, got %d", cfg.Dashboard.MaxWidth)
	}
	if !cfg.Dashboard.NoColor {
		t.Error("expected WTOP_NO_COLOR to disable color")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("weather:\n  station: KSAN\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WTOP_STATION", "KMYF")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Weather.Station != "KMYF" {
		t.Errorf("expected the environment to win over the file, got %s", cfg.Weather.Station)
	}
}

func TestLoadEnvMalformed(t *testing.T) {
	t.Setenv("WTOP_LAT", "north-ish")

	if _, err := Load(""); err == nil {
		t.Error("expected error for malformed WTOP_LAT")
	}
}

func TestValidateBadInterval(t *testing.T) {
	cfg := Default()
	cfg.Dashboard.RefreshInterval = "soon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unparseable refresh_interval")
	}
}

func TestValidateNonPositiveInterval(t *testing.T) {
	cfg := Default()
	cfg.Dashboard.RefreshInterval = "0s"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero refresh_interval")
	}
}

func TestValidateNarrowMaxWidth(t *testing.T) {
	cfg := Default()
	cfg.Dashboard.MaxWidth = 60
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for max_width below 80")
	}
}

func TestValidateLatitudeRange(t *testing.T) {
	cfg := Default()
	cfg.Location.Latitude = 91
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for latitude out of range")
	}
}

func TestValidateLongitudeRange(t *testing.T) {
	cfg := Default()
	cfg.Location.Longitude = -200
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for longitude out of range")
	}
}

func TestValidateManualLocationNeedsCoordinates(t *testing.T) {
	cfg := Default()
	cfg.Location.Auto = false
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error when auto is off with no coordinates")
	}
}

func TestValidateMissingUserAgent(t *testing.T) {
	cfg := Default()
	cfg.Weather.UserAgent = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty user_agent")
	}
}

func TestValidateBadRate(t *testing.T) {
	cfg := Default()
	cfg.Weather.RequestsPerSecond = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero requests_per_second")
	}
}

func TestValidateBadBurst(t *testing.T) {
	cfg := Default()
	cfg.Weather.Burst = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero burst")
	}
}

func TestValidateMissingCacheDir(t *testing.T) {
	cfg := Default()
	cfg.Cache.Dir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty cache dir")
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := Default()
	cfg.Dashboard.RefreshInterval = "7s"
	cfg.Weather.RequestTimeout = "3s"
	cfg.Cache.PointsTTL = "1h"

	if got := cfg.RefreshEvery(); got != 7*time.Second {
		t.Errorf("expected 7s, got %v", got)
	}
	if got := cfg.RequestTimeout(); got != 3*time.Second {
		t.Errorf("expected 3s, got %v", got)
	}
	if got := cfg.PointsTTL(); got != time.Hour {
		t.Errorf("expected 1h, got %v", got)
	}
}

func TestDurationAccessorsFallBack(t *testing.T) {
	cfg := Default()
	cfg.Dashboard.RefreshInterval = "garbage"

	if got := cfg.RefreshEvery(); got != 5*time.Second {
		t.Errorf("expected the 5s fallback, got %v", got)
	}
}
