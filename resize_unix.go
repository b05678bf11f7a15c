//go:build unix

package main

import (
	"os"
	"os/signal"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// resizeWatcher latches SIGWINCH into an atomic flag. The handler
// goroutine only sets the flag; the poll loop drains it on its own
// tick, so all rendering stays on one goroutine.
type resizeWatcher struct {
	flag atomic.Bool
	ch   chan os.Signal
}

func newResizeWatcher() *resizeWatcher {
	w := &resizeWatcher{ch: make(chan os.Signal, 1)}
	signal.Notify(w.ch, unix.SIGWINCH)
	go func() {
		for range w.ch {
			w.flag.Store(true)
		}
	}()
	return w
}

// Take reports whether a resize arrived since the last call, clearing
// the flag.
func (w *resizeWatcher) Take() bool {
	return w.flag.Swap(false)
}

// Stop detaches the signal handler.
func (w *resizeWatcher) Stop() {
	signal.Stop(w.ch)
	close(w.ch)
}
