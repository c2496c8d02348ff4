package tempo

import (
	"fmt"
	"sync/atomic"
	"time"
)

// ID identifies a registered tween. IDs are allocated from a process-wide
// counter starting at 1 and are never reused, so an ID from one Manager can
// never match a tween owned by another.
type ID uint64

// String returns "tween#N".
func (id ID) String() string {
	return fmt.Sprintf("tween#%d", uint64(id))
}

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Add(1))
}

// EndReason tells an end callback why the tween stopped.
type EndReason uint8

const (
	EndNatural EndReason = iota // the tween reached its end time
	EndForced                   // Finish was called before the end time
)

// String returns a human-readable representation of the reason.
func (r EndReason) String() string {
	switch r {
	case EndNatural:
		return "natural"
	case EndForced:
		return "forced"
	default:
		return fmt.Sprintf("EndReason(%d)", int(r))
	}
}

// StartFunc is called once, on the first pass at or after the tween's start.
type StartFunc func()

// UpdateFunc receives the eased progress. The last call before the end
// callback always receives exactly 1.
type UpdateFunc func(progress float64)

// EndFunc is called exactly once when the tween leaves the active set.
type EndFunc func(reason EndReason, id ID)

// Tween configures a single registration. The zero value of every field is
// usable: no delay, zero duration (completes on the first pass), Linear
// easing and no-op callbacks.
type Tween struct {
	// Delay is the wait between registration and the start callback.
	Delay time.Duration
	// Duration is the time over which progress advances from 0 to 1.
	// Zero or negative durations complete on the first pass after Delay.
	Duration time.Duration
	// Easing shapes the progress handed to OnUpdate. Defaults to Linear.
	Easing Easing

	OnStart  StartFunc
	OnUpdate UpdateFunc
	OnEnd    EndFunc
}

// entry is the Manager-owned state of one registered tween.
type entry struct {
	id       ID
	duration time.Duration
	easing   Easing
	onStart  StartFunc
	onUpdate UpdateFunc
	onEnd    EndFunc

	start time.Time
	end   time.Time

	firstFrame bool
	ended      bool
	firing     bool // a pass is running one of this entry's callbacks
	forced     bool // Finish claimed the entry while firing was set
}

func noopStart()            {}
func noopUpdate(float64)    {}
func noopEnd(EndReason, ID) {}

// newEntry resolves defaults and computes the absolute start and end times
// relative to now.
func newEntry(id ID, tw Tween, now time.Time) *entry {
	e := &entry{
		id:         id,
		duration:   max(tw.Duration, 0),
		easing:     tw.Easing,
		onStart:    tw.OnStart,
		onUpdate:   tw.OnUpdate,
		onEnd:      tw.OnEnd,
		firstFrame: true,
	}
	if e.easing == nil {
		e.easing = Linear
	}
	if e.onStart == nil {
		e.onStart = noopStart
	}
	if e.onUpdate == nil {
		e.onUpdate = noopUpdate
	}
	if e.onEnd == nil {
		e.onEnd = noopEnd
	}
	e.start = now.Add(max(tw.Delay, 0))
	e.end = e.start.Add(e.duration)
	return e
}

// progress returns the raw fraction of the active window elapsed at now.
// Only meaningful for start <= now < end, which implies duration > 0.
func (e *entry) progress(now time.Time) float64 {
	return float64(now.Sub(e.start)) / float64(e.duration)
}
