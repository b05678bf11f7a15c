package weather

import "context"

// Source is implemented by anything that can produce a full weather
// report for a fixed location: the live NWS client, a throttled
// wrapper, or a canned source in tests.
type Source interface {
	// Name returns the source's identifier for logs, e.g. "nws".
	Name() string

	// Fetch assembles a complete report. Non-fatal issues, such as a
	// single station observation failing while forecasts succeed, are
	// reported in Report.Warnings rather than as errors. The context
	// is respected for cancellation of in-flight requests.
	Fetch(ctx context.Context) (*Report, error)
}
