package cache

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s, err := NewStore(dir, logger)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestSetGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	type pointMeta struct {
		Forecast     string `json:"forecast"`
		RadarStation string `json:"radarStation"`
	}

	original := pointMeta{
		Forecast:     "https://api.weather.gov/gridpoints/SGX/55,21/forecast",
		RadarStation: "KSOX",
	}

	if err := s.Set("points-32.7153,-117.1573", original); err != nil {
		t.Fatalf("Set: %v", err)
	}

	raw, fresh, err := s.Get("points-32.7153,-117.1573", 1*time.Hour)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !fresh {
		t.Error("expected fresh=true for recently written entry")
	}
	if raw == nil {
		t.Fatal("expected non-nil data")
	}

	var got pointMeta
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != original {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, original)
	}
}

func TestTypedRoundTrip(t *testing.T) {
	s := newTestStore(t)

	type location struct {
		City string  `json:"city"`
		Lat  float64 `json:"lat"`
	}

	original := &location{City: "San Diego", Lat: 32.7153}

	if err := SetTyped(s, "location", original); err != nil {
		t.Fatalf("SetTyped: %v", err)
	}

	got, fresh, err := GetTyped[location](s, "location", 1*time.Hour)
	if err != nil {
		t.Fatalf("GetTyped: %v", err)
	}
	if !fresh {
		t.Error("expected fresh=true")
	}
	if got == nil {
		t.Fatal("expected non-nil result")
	}
	if *got != *original {
		t.Errorf("typed round-trip mismatch: got %+v, want %+v", *got, *original)
	}
}

func TestTTLExpiry(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("expiring", map[string]string{"v": "data"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Backdate the file modification time to simulate age.
	path := filepath.Join(s.dir, "expiring.json")
	past := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	raw, fresh, err := s.Get("expiring", 1*time.Hour)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fresh {
		t.Error("expected fresh=false for stale entry")
	}
	if raw == nil {
		t.Error("expected stale data to still be returned")
	}
}

func TestMissingKeyReturnsNil(t *testing.T) {
	s := newTestStore(t)

	raw, fresh, err := s.Get("nonexistent", 1*time.Hour)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fresh {
		t.Error("expected fresh=false for missing key")
	}
	if raw != nil {
		t.Errorf("expected nil data for missing key, got %s", string(raw))
	}
}

func TestCorruptedFileHandling(t *testing.T) {
	s := newTestStore(t)

	// Write invalid JSON directly to the cache file.
	path := filepath.Join(s.dir, "broken.json")
	if err := os.WriteFile(path, []byte("{invalid json!!!"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	raw, fresh, err := s.Get("broken", 1*time.Hour)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fresh {
		t.Error("expected fresh=false for corrupted entry")
	}
	if raw != nil {
		t.Error("expected nil data for corrupted entry")
	}

	// Verify the corrupted file was removed.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected corrupted file to be removed")
	}
}

func TestCorruptedFileTypedHandling(t *testing.T) {
	s := newTestStore(t)

	// json.Unmarshal into a struct is lenient, so write truly invalid
	// JSON rather than mismatched-but-valid JSON.
	path := filepath.Join(s.dir, "badtype.json")
	if err := os.WriteFile(path, []byte(`not json`), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	type target struct {
		Field string `json:"field"`
	}

	got, fresh, err := GetTyped[target](s, "badtype", 1*time.Hour)
	if err != nil {
		t.Fatalf("GetTyped: %v", err)
	}
	if fresh {
		t.Error("expected fresh=false")
	}
	if got != nil {
		t.Error("expected nil result for corrupted typed entry")
	}
}

func TestAtomicWriteConcurrency(t *testing.T) {
	s := newTestStore(t)

	const goroutines = 20
	const iterations = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				data := map[string]int{"writer": id, "iteration": i}
				if err := s.Set("concurrent", data); err != nil {
					t.Errorf("goroutine %d iteration %d: Set: %v", id, i, err)
					return
				}
			}
		}(g)
	}

	wg.Wait()

	// After all writes complete, the file must contain valid JSON.
	raw, fresh, err := s.Get("concurrent", 1*time.Hour)
	if err != nil {
		t.Fatalf("Get after concurrent writes: %v", err)
	}
	if !fresh {
		t.Error("expected fresh=true")
	}
	if raw == nil {
		t.Fatal("expected non-nil data after concurrent writes")
	}

	var result map[string]int
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("final value is not valid JSON: %v", err)
	}
}

func TestAge(t *testing.T) {
	s := newTestStore(t)

	// Missing key returns 0.
	if age := s.Age("missing"); age != 0 {
		t.Errorf("expected age=0 for missing key, got %v", age)
	}

	if err := s.Set("aged", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	age := s.Age("aged")
	if age < 0 || age > 2*time.Second {
		t.Errorf("unexpected age for freshly written entry: %v", age)
	}

	// Backdate and recheck.
	path := filepath.Join(s.dir, "aged.json")
	past := time.Now().Add(-30 * time.Minute)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	age = s.Age("aged")
	if age < 29*time.Minute || age > 31*time.Minute {
		t.Errorf("expected age ~30m, got %v", age)
	}
}

func TestKeys(t *testing.T) {
	s := newTestStore(t)

	if keys := s.Keys(); len(keys) != 0 {
		t.Errorf("expected empty keys, got %v", keys)
	}

	for _, k := range []string{"location", "points-32.7153,-117.1573", "points-40.7128,-74.0060"} {
		if err := s.Set(k, k); err != nil {
			t.Fatalf("Set %s: %v", k, err)
		}
	}

	keys := s.Keys()
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d: %v", len(keys), keys)
	}

	want := map[string]bool{
		"location":                 true,
		"points-32.7153,-117.1573": true,
		"points-40.7128,-74.0060":  true,
	}
	for _, k := range keys {
		if !want[k] {
			t.Errorf("unexpected key: %s", k)
		}
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	for _, k := range []string{"a", "b", "c"} {
		if err := s.Set(k, k); err != nil {
			t.Fatalf("Set %s: %v", k, err)
		}
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if keys := s.Keys(); len(keys) != 0 {
		t.Errorf("expected no keys after clear, got %v", keys)
	}
}

func TestNilLoggerAllowed(t *testing.T) {
	s, err := NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Set("quiet", "ok"); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

func TestFilePermissions(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set("perms", "secret"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	path := filepath.Join(s.dir, "perms.json")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("expected file permissions 0600, got %04o", perm)
	}
}

func TestDirectoryPermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "subdir")

	_, err := NewStore(dir, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	perm := info.Mode().Perm()
	if perm != 0700 {
		t.Errorf("expected directory permissions 0700, got %04o", perm)
	}
}
