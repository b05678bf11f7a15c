package weather

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	_ "image/gif" // RIDGE images are GIFs
	_ "image/png"
)

const (
	// radarEndpoint hosts the RIDGE standard radar products.
	radarEndpoint = "https://radar.weather.gov/ridge/standard"

	// radarTimeout is the per-request timeout for image fetches.
	radarTimeout = 15 * time.Second
)

// RadarImage fetches the latest composite reflectivity image for a
// radar station, e.g. "KSOX". The station comes from the forecast
// grid's RadarStation.
func RadarImage(ctx context.Context, station string) (image.Image, error) {
	if station == "" {
		return nil, fmt.Errorf("no radar station resolved for this location")
	}

	url := fmt.Sprintf("%s/%s_0.gif", radarEndpoint, station)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	client := &http.Client{Timeout: radarTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding radar image for %s: %w", station, err)
	}
	return img, nil
}
