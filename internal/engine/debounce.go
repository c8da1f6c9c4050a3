package engine

import (
	"sync"
	"time"

	"github.com/vloureiro/garagem/internal/remote"
)

// DefaultDebounceWindow is how long a cost edit waits for further typing
// before the write is sent.
const DefaultDebounceWindow = 500 * time.Millisecond

// Debouncer coalesces rapid repeated writes per key. Each key owns its own
// timer; scheduling for one key never disturbs another key's pending write.
// Only the latest payload scheduled for a key is ever sent.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	fire    func(key string, patch remote.ItemPatch)
	pending map[string]*pendingWrite
}

type pendingWrite struct {
	timer *time.Timer
	patch remote.ItemPatch
}

// NewDebouncer builds a debouncer that invokes fire when a key's quiet
// period elapses. window <= 0 uses DefaultDebounceWindow.
func NewDebouncer(window time.Duration, fire func(key string, patch remote.ItemPatch)) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{
		window:  window,
		fire:    fire,
		pending: make(map[string]*pendingWrite),
	}
}

// Schedule (re)starts the key's timer with the given payload. A second call
// for the same key before the timer elapses resets the timer and replaces
// the payload (last write wins, no queueing). window <= 0 uses the
// debouncer's default.
func (d *Debouncer) Schedule(key string, patch remote.ItemPatch, window time.Duration) {
	if window <= 0 {
		window = d.window
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
		p.patch = patch
		p.timer = time.AfterFunc(window, func() { d.expire(key) })
		return
	}
	d.pending[key] = &pendingWrite{
		patch: patch,
		timer: time.AfterFunc(window, func() { d.expire(key) }),
	}
}

// Cancel aborts the key's pending write without sending. Unknown keys are
// ignored.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
		delete(d.pending, key)
	}
}

// Flush cancels the key's timer and sends the last scheduled payload
// immediately. Does nothing when no write is pending, so at most one of
// {timer write, flush write} fires for a given burst.
func (d *Debouncer) Flush(key string) {
	patch, ok := d.take(key)
	if !ok {
		return
	}
	d.fire(key, patch)
}

// Pending reports whether the key has a scheduled write.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// expire is the timer callback. take ensures a racing Flush and timer agree
// on exactly one sender.
func (d *Debouncer) expire(key string) {
	patch, ok := d.take(key)
	if !ok {
		return
	}
	d.fire(key, patch)
}

// take atomically removes and returns the key's pending payload.
func (d *Debouncer) take(key string) (remote.ItemPatch, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.pending[key]
	if !ok {
		return remote.ItemPatch{}, false
	}
	p.timer.Stop()
	delete(d.pending, key)
	return p.patch, true
}
