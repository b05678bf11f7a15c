package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/wtop/config"
	"gitlab.com/tinyland/lab/wtop/display/frame"
	"gitlab.com/tinyland/lab/wtop/display/layout"
	"gitlab.com/tinyland/lab/wtop/weather"
)

// tickInterval is the poll loop's granularity. The loop sleeps in
// short ticks so an interrupt or a terminal resize is handled well
// before the next refresh is due.
const tickInterval = 100 * time.Millisecond

// Cursor control for in-place repainting.
const (
	clearScreen = "\x1b[2J\x1b[H"
	homeCursor  = "\x1b[H"
	eraseBelow  = "\x1b[J"
	eraseRight  = "\x1b[K"
)

// dashboard drives the fixed-frame repaint loop: fetch on the refresh
// interval, paint in place, re-render immediately on terminal resize
// using the last report.
type dashboard struct {
	cfg    *config.Config
	source weather.Source
	logger *slog.Logger
	out    io.Writer

	// sizeFn and clock are injection points for tests.
	sizeFn func() (width, height int)
	clock  func() time.Time

	resize  *resizeWatcher
	report  *weather.Report
	painted bool
}

// newDashboard creates the repaint loop around a weather source. The
// resize watcher starts listening immediately.
func newDashboard(cfg *config.Config, source weather.Source, logger *slog.Logger, out io.Writer) *dashboard {
	return &dashboard{
		cfg:    cfg,
		source: source,
		logger: logger,
		out:    out,
		sizeFn: frame.DetectTerminalSize,
		clock:  time.Now,
		resize: newResizeWatcher(),
	}
}

// run executes the poll loop until the context is canceled: an
// immediate first cycle, then a fetch whenever the refresh interval
// has elapsed, checking the resize flag on every tick. Cancellation
// prints the farewell and returns nil; only a render failure is an
// error.
func (d *dashboard) run(ctx context.Context) error {
	defer d.resize.Stop()

	if err := d.fetchAndPaint(ctx); err != nil {
		return err
	}
	lastFetch := d.clock()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.farewell()
			return nil
		case <-ticker.C:
			if d.resize.Take() {
				// Repaint the last report with recomputed geometry;
				// the resize alone does not justify a refetch.
				if err := d.paint(); err != nil {
					return err
				}
			}
			if d.clock().Sub(lastFetch) >= d.cfg.RefreshEvery() {
				if err := d.fetchAndPaint(ctx); err != nil {
					return err
				}
				lastFetch = d.clock()
			}
		}
	}
}

// fetchAndPaint runs one fetch-render-print cycle. An upstream fetch
// failure prints a single error line and aborts the cycle; the loop
// carries on with the next one. Only a render failure propagates.
func (d *dashboard) fetchAndPaint(ctx context.Context) error {
	rep, err := d.source.Fetch(ctx)
	if err != nil {
		// A canceled fetch is shutdown, not an upstream failure; the
		// loop prints the farewell when it sees the done context.
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintf(d.out, "Error fetching weather data: %v%s\n", err, eraseRight)
		return nil
	}

	d.report = rep
	for _, w := range rep.Warnings {
		d.logger.Warn("partial weather data", "warning", w)
	}
	return d.paint()
}

// paint renders the current report to the terminal. Below the minimum
// size it prints the too-small notice and skips the frame for this
// cycle. The first paint clears the screen; later paints home the
// cursor and overdraw in place.
func (d *dashboard) paint() error {
	w, h := d.sizeFn()
	if w < frame.MinWidth || h < frame.MinHeight {
		d.beginPaint()
		fmt.Fprintln(d.out, overdraw(frame.TooSmall(w, h)))
		fmt.Fprint(d.out, eraseBelow)
		return nil
	}

	if d.report == nil {
		return nil
	}

	g, err := layout.NewGeometry(layout.FrameWidth(w, d.cfg.Dashboard.MaxWidth))
	if err != nil {
		return fmt.Errorf("computing frame geometry: %w", err)
	}

	f := frame.New(frame.Config{
		Geometry:        g,
		RefreshInterval: d.cfg.RefreshEvery(),
		Clock:           d.clock,
	})

	d.beginPaint()
	fmt.Fprintln(d.out, overdraw(f.Render(d.report)))
	fmt.Fprint(d.out, eraseBelow)
	return nil
}

// renderOnce performs a single fetch-render-print pass with no cursor
// control, for scripting and cron use.
func (d *dashboard) renderOnce(ctx context.Context) error {
	rep, err := d.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetching weather data: %w", err)
	}
	for _, w := range rep.Warnings {
		d.logger.Warn("partial weather data", "warning", w)
	}

	w, _ := d.sizeFn()
	g, err := layout.NewGeometry(layout.FrameWidth(w, d.cfg.Dashboard.MaxWidth))
	if err != nil {
		return fmt.Errorf("computing frame geometry: %w", err)
	}

	f := frame.New(frame.Config{
		Geometry:        g,
		RefreshInterval: d.cfg.RefreshEvery(),
		Clock:           d.clock,
	})
	fmt.Fprintln(d.out, f.Render(rep))
	return nil
}

// beginPaint positions the cursor for the next frame: a full clear on
// the first paint, a plain cursor home afterwards.
func (d *dashboard) beginPaint() {
	if !d.painted {
		fmt.Fprint(d.out, clearScreen)
		d.painted = true
		return
	}
	fmt.Fprint(d.out, homeCursor)
}

// overdraw suffixes every row with erase-to-end-of-line so repainting
// over a previous frame never leaves stale cells when a row shortens.
func overdraw(s string) string {
	return strings.ReplaceAll(s, "\n", eraseRight+"\n") + eraseRight
}

func (d *dashboard) farewell() {
	fmt.Fprintln(d.out, "\nExiting WTOP dashboard. Goodbye!")
}
