// Package backend watches the persisted deck document for external edits.
package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/tiledeck/internal/logging/events"
)

// Event signals that the deck document changed on disk, or that the poll
// failed.
type Event struct {
	Path string
	Err  error
}

// Watcher polls the deck file at a fixed interval and publishes an event
// whenever its modification time or size changes.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls path every interval.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current tick; use
// Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

type fileStamp struct {
	modTime time.Time
	size    int64
	exists  bool
}

func (w *Watcher) stamp() (fileStamp, error) {
	info, err := os.Stat(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileStamp{}, nil
		}
		return fileStamp{}, err
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size(), exists: true}, nil
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	// Baseline first so the initial load is not reported as a change.
	last, _ := w.stamp()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	emit := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			current, err := w.stamp()
			if err != nil {
				if !emit(Event{Path: w.path, Err: err}) {
					return
				}
				continue
			}
			if current == last {
				continue
			}
			last = current
			events.Store.Changed(w.path)
			if !emit(Event{Path: w.path}) {
				return
			}
		}
	}
}
