package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/wtop/config"
	"gitlab.com/tinyland/lab/wtop/display/frame"
	"gitlab.com/tinyland/lab/wtop/weather"
)

func TestHealthCheckPassed(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"ok", true},
		{"degraded", true},
		{"error", false},
		{"unreachable", false},
	}
	for _, tt := range tests {
		c := healthCheck{Name: "x", Status: tt.status}
		if got := c.passed(); got != tt.want {
			t.Errorf("passed(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCheckCacheDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "wtop-cache")

	check, store := checkCacheDir(dir, discardLogger())
	if check.Status != "ok" {
		t.Fatalf("status = %q, want ok (%s)", check.Status, check.Detail)
	}
	if check.Detail != dir+" (0 entries)" {
		t.Errorf("detail = %q, want the directory path and entry count", check.Detail)
	}
	if store == nil {
		t.Error("expected a usable store on success")
	}
}

func TestCheckCacheDir_Unwritable(t *testing.T) {
	// A path below a regular file cannot be created.
	f := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(f, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	check, store := checkCacheDir(filepath.Join(f, "sub"), discardLogger())
	if check.Status != "error" {
		t.Fatalf("status = %q, want error", check.Status)
	}
	if store != nil {
		t.Error("no store should be returned on failure")
	}
}

func TestCheckEndpoint(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	check := checkEndpoint(context.Background(), srv.URL, "wtop-test/1.0", 2*time.Second)
	if check.Status != "ok" {
		t.Fatalf("status = %q, want ok (%s)", check.Status, check.Detail)
	}
	if !strings.Contains(check.Detail, "HTTP 200") {
		t.Errorf("detail = %q, want the response code", check.Detail)
	}
	if gotUA != "wtop-test/1.0" {
		t.Errorf("User-Agent = %q, want wtop-test/1.0", gotUA)
	}
}

func TestCheckEndpoint_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	check := checkEndpoint(context.Background(), srv.URL, "wtop-test/1.0", time.Second)
	if check.Status != "unreachable" {
		t.Fatalf("status = %q, want unreachable", check.Status)
	}
	if check.Detail == "" {
		t.Error("detail should carry the transport error")
	}
}

func TestCheckForecast(t *testing.T) {
	src := &stubSource{report: frame.SampleReport(dashClock())}

	check := checkForecast(context.Background(), src)
	if check.Status != "ok" {
		t.Fatalf("status = %q, want ok (%s)", check.Status, check.Detail)
	}
	want := "12 hourly and 7 daily periods for San Diego, CA"
	if check.Detail != want {
		t.Errorf("detail = %q, want %q", check.Detail, want)
	}
}

func TestCheckForecast_Degraded(t *testing.T) {
	rep := frame.SampleReport(dashClock())
	rep.Warnings = []string{"station observation unavailable"}

	check := checkForecast(context.Background(), &stubSource{report: rep})
	if check.Status != "degraded" {
		t.Fatalf("status = %q, want degraded", check.Status)
	}
	if !strings.Contains(check.Detail, "station observation unavailable") {
		t.Errorf("detail = %q, want the first warning", check.Detail)
	}
	if !check.passed() {
		t.Error("degraded must not fail the health run")
	}
}

func TestCheckForecast_Error(t *testing.T) {
	src := &stubSource{err: errors.New("api.weather.gov: 503")}

	check := checkForecast(context.Background(), src)
	if check.Status != "error" {
		t.Fatalf("status = %q, want error", check.Status)
	}
	if !strings.Contains(check.Detail, "503") {
		t.Errorf("detail = %q, want the fetch error", check.Detail)
	}
}

func TestCheckGeolocation_Pinned(t *testing.T) {
	cfg := config.Default()
	cfg.Location.Latitude = 45.5152
	cfg.Location.Longitude = -122.6784
	cfg.Location.Label = "Portland"

	check, loc := checkGeolocation(context.Background(), cfg, discardLogger())
	if check.Status != "ok" {
		t.Fatalf("status = %q, want ok (%s)", check.Status, check.Detail)
	}
	if !strings.Contains(check.Detail, "pinned to 45.5152, -122.6784") {
		t.Errorf("detail = %q, want the pinned coordinate", check.Detail)
	}
	if loc.Label() != "Portland" {
		t.Errorf("label = %q, want the configured override", loc.Label())
	}
	if loc.Lat != 45.5152 || loc.Lon != -122.6784 {
		t.Errorf("coordinate = %.4f, %.4f, want the pinned values", loc.Lat, loc.Lon)
	}
}

var _ weather.Source = (*stubSource)(nil)
