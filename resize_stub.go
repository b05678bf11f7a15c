//go:build !unix

package main

// resizeWatcher has no signal to watch on platforms without SIGWINCH;
// the dashboard still picks the new size up on its next fetch cycle.
type resizeWatcher struct{}

func newResizeWatcher() *resizeWatcher { return &resizeWatcher{} }

func (w *resizeWatcher) Take() bool { return false }

func (w *resizeWatcher) Stop() {}
