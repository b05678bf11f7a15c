package weather

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// ThrottledSource wraps a Source with a token-bucket limiter so short
// refresh intervals cannot hammer the upstream API. It is politeness
// pacing only; a denied token waits, it never retries a failed fetch.
type ThrottledSource struct {
	src     Source
	limiter *rate.Limiter
}

var _ Source = (*ThrottledSource)(nil)

// Throttled wraps src with a limiter allowing rps fetches per second
// with the given burst. rps may be fractional for slower-than-hourly
// pacing.
func Throttled(src Source, rps float64, burst int) *ThrottledSource {
	return &ThrottledSource{
		src:     src,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Name implements Source.
func (t *ThrottledSource) Name() string { return t.src.Name() }

// Fetch waits for limiter permission, then forwards to the wrapped
// source.
func (t *ThrottledSource) Fetch(ctx context.Context) (*Report, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return t.src.Fetch(ctx)
}
