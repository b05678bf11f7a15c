package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestLocator(t *testing.T, handler http.HandlerFunc) *Locator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	l := NewLocator("wtop-test/1.0", nil)
	l.baseURL = server.URL
	return l
}

func TestLocator_Locate_Success(t *testing.T) {
	l := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "wtop-test/1.0" {
			t.Errorf("user agent = %q", ua)
		}
		fmt.Fprint(w, `{"city":"Portland","region":"Oregon","loc":"45.5234,-122.6762"}`)
	})

	loc, err := l.Locate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.City != "Portland" || loc.Region != "Oregon" {
		t.Errorf("location = %+v", loc)
	}
	if loc.Lat != 45.5234 || loc.Lon != -122.6762 {
		t.Errorf("coordinate = %v,%v", loc.Lat, loc.Lon)
	}
	if loc.Label() != "Portland, Oregon" {
		t.Errorf("label = %q", loc.Label())
	}
}

func TestLocator_Locate_MissingFieldsKeepFallbackValues(t *testing.T) {
	l := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"loc":"40.0,-100.0"}`)
	})

	loc, err := l.Locate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.City != "San Diego" || loc.Region != "CA" {
		t.Errorf("missing city/region should keep fallback label parts, got %+v", loc)
	}
	if loc.Lat != 40.0 || loc.Lon != -100.0 {
		t.Errorf("coordinate = %v,%v", loc.Lat, loc.Lon)
	}
}

func TestLocator_Locate_MalformedCoordinateKeepsFallback(t *testing.T) {
	l := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"city":"Nowhere","region":"XX","loc":"not-a-coordinate"}`)
	})

	loc, err := l.Locate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fallback := FallbackLocation()
	if loc.Lat != fallback.Lat || loc.Lon != fallback.Lon {
		t.Errorf("coordinate = %v,%v, want fallback %v,%v", loc.Lat, loc.Lon, fallback.Lat, fallback.Lon)
	}
	if loc.City != "Nowhere" {
		t.Errorf("city = %q, parsed fields should still apply", loc.City)
	}
}

func TestLocator_Locate_ServerError(t *testing.T) {
	l := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if _, err := l.Locate(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestLocator_Locate_InvalidJSON(t *testing.T) {
	l := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>blocked</html>")
	})

	if _, err := l.Locate(context.Background()); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in       string
		lat, lon float64
		ok       bool
	}{
		{"32.7153,-117.1573", 32.7153, -117.1573, true},
		{" 10.5 , 20.25 ", 10.5, 20.25, true},
		{"32.7153", 0, 0, false},
		{"a,b", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		lat, lon, ok := parseCoordinate(tt.in)
		if lat != tt.lat || lon != tt.lon || ok != tt.ok {
			t.Errorf("parseCoordinate(%q) = (%v, %v, %v), want (%v, %v, %v)",
				tt.in, lat, lon, ok, tt.lat, tt.lon, tt.ok)
		}
	}
}

func TestFallbackLocation(t *testing.T) {
	loc := FallbackLocation()
	if loc.Label() != "San Diego, CA" {
		t.Errorf("label = %q", loc.Label())
	}
	if loc.Lat != 32.7153 || loc.Lon != -117.1573 {
		t.Errorf("coordinate = %v,%v", loc.Lat, loc.Lon)
	}
}

func TestLocationLabel_NoRegion(t *testing.T) {
	loc := Location{City: "Singapore"}
	if loc.Label() != "Singapore" {
		t.Errorf("label = %q", loc.Label())
	}
}
