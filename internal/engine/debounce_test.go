package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/vloureiro/garagem/internal/remote"
)

type firedWrite struct {
	key  string
	cost float64
}

// collectFires returns a debouncer plus an accessor for everything it sent.
func collectFires(window time.Duration) (*Debouncer, func() []firedWrite) {
	var mu sync.Mutex
	var fires []firedWrite

	d := NewDebouncer(window, func(key string, patch remote.ItemPatch) {
		mu.Lock()
		defer mu.Unlock()
		cost := -1.0
		if patch.EstimatedCost != nil {
			cost = *patch.EstimatedCost
		}
		fires = append(fires, firedWrite{key: key, cost: cost})
	})
	return d, func() []firedWrite {
		mu.Lock()
		defer mu.Unlock()
		return append([]firedWrite(nil), fires...)
	}
}

func costPatch(v float64) remote.ItemPatch {
	return remote.ItemPatch{EstimatedCost: &v}
}

func TestDebouncer_CoalescesBurstToLastPayload(t *testing.T) {
	d, fired := collectFires(40 * time.Millisecond)

	d.Schedule("a", costPatch(10), 0)
	d.Schedule("a", costPatch(20), 0)
	d.Schedule("a", costPatch(30), 0)

	time.Sleep(200 * time.Millisecond)

	got := fired()
	if len(got) != 1 {
		t.Fatalf("fired %d writes, want 1", len(got))
	}
	if got[0].key != "a" || got[0].cost != 30 {
		t.Fatalf("fired %+v, want key a cost 30", got[0])
	}
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	d, fired := collectFires(40 * time.Millisecond)

	// A quick edit to item b must not cancel item a's pending write.
	d.Schedule("a", costPatch(10), 0)
	d.Schedule("b", costPatch(20), 0)

	time.Sleep(200 * time.Millisecond)

	got := fired()
	if len(got) != 2 {
		t.Fatalf("fired %d writes, want 2 (one per key): %+v", len(got), got)
	}
	byKey := map[string]float64{}
	for _, f := range got {
		byKey[f.key] = f.cost
	}
	if byKey["a"] != 10 || byKey["b"] != 20 {
		t.Fatalf("payloads = %v, want a=10 b=20", byKey)
	}
}

func TestDebouncer_CancelDropsWrite(t *testing.T) {
	d, fired := collectFires(40 * time.Millisecond)

	d.Schedule("a", costPatch(10), 0)
	d.Cancel("a")

	time.Sleep(200 * time.Millisecond)

	if got := fired(); len(got) != 0 {
		t.Fatalf("fired %+v after Cancel, want nothing", got)
	}
	if d.Pending("a") {
		t.Fatalf("key still pending after Cancel")
	}
}

func TestDebouncer_FlushSendsExactlyOnce(t *testing.T) {
	d, fired := collectFires(60 * time.Millisecond)

	d.Schedule("a", costPatch(10), 0)
	d.Flush("a")

	if got := fired(); len(got) != 1 || got[0].cost != 10 {
		t.Fatalf("after Flush fired = %+v, want one write cost 10", got)
	}

	// The original timer must not fire a second write.
	time.Sleep(250 * time.Millisecond)
	if got := fired(); len(got) != 1 {
		t.Fatalf("fired %d writes total, want 1 (flush suppressed the timer)", len(got))
	}

	// Flush with nothing pending is a no-op.
	d.Flush("a")
	if got := fired(); len(got) != 1 {
		t.Fatalf("idle Flush fired a write")
	}
}

func TestDebouncer_ScheduleRestartsTimer(t *testing.T) {
	d, fired := collectFires(100 * time.Millisecond)

	d.Schedule("a", costPatch(1), 0)
	time.Sleep(60 * time.Millisecond)
	d.Schedule("a", costPatch(2), 0)
	time.Sleep(60 * time.Millisecond)

	// 120ms after the first schedule, but only 60ms after the reset: nothing
	// may have fired yet.
	if got := fired(); len(got) != 0 {
		t.Fatalf("fired %+v before quiet period elapsed", got)
	}

	time.Sleep(200 * time.Millisecond)
	got := fired()
	if len(got) != 1 || got[0].cost != 2 {
		t.Fatalf("fired = %+v, want one write cost 2", got)
	}
}
