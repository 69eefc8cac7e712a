package search

import (
	"strings"
	"sync"
	"time"
)

// DefaultDelay is the pause after the last keystroke before a search fires.
const DefaultDelay = 100 * time.Millisecond

// Dispatch is one debounced search request. Seq increases monotonically; the
// caller compares it against IsCurrent before applying results.
type Dispatch struct {
	Seq   uint64
	Query string
}

// Debouncer turns a stream of raw input changes into at most one dispatch
// per quiet period. Safe for concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	seq   uint64
}

// New creates a debouncer with the given quiet period. A non-positive delay
// falls back to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Input registers a raw input change. The query is trimmed; an empty result
// is dispatched too, so the caller can restore its unfiltered list. Each call
// restarts the quiet period, and emit runs on the timer goroutine once the
// pause elapses. The sequence number is assigned when the timer fires, so a
// dispatch that reaches emit is current at that moment.
func (d *Debouncer) Input(raw string, emit func(Dispatch)) {
	query := strings.TrimSpace(raw)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		d.seq++
		dispatch := Dispatch{Seq: d.seq, Query: query}
		d.mu.Unlock()
		emit(dispatch)
	})
}

// IsCurrent reports whether seq is still the latest dispatched sequence.
// Results for a stale sequence must be dropped.
func (d *Debouncer) IsCurrent(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return seq == d.seq
}

// Stop cancels any pending dispatch.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
