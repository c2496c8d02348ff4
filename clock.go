package tempo

import (
	"sync"
	"time"
)

// Clock provides time for the Manager. The default implementation uses
// system time. Tests inject a fake clock to control timing deterministically.
//
// Readings must never go backward; the Manager does not defend against it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now, whose monotonic component keeps successive
// readings non-decreasing.
var SystemClock Clock = systemClock{}

// FrameRequester schedules fn to run exactly once, roughly one frame from
// now. The Manager only relies on fn eventually running once.
type FrameRequester interface {
	RequestFrame(fn func())
}

// FrameFunc adapts a plain function to FrameRequester.
type FrameFunc func(fn func())

// RequestFrame calls f(fn).
func (f FrameFunc) RequestFrame(fn func()) { f(fn) }

// DefaultFrameInterval is one frame at 60 Hz.
const DefaultFrameInterval = time.Second / 60

// TimerFrames is a FrameRequester for hosts without a display refresh. Each
// requested callback runs once on its own timer goroutine after Interval.
type TimerFrames struct {
	Interval time.Duration

	mu      sync.Mutex
	pending map[*time.Timer]struct{}
}

// NewTimerFrames returns TimerFrames firing after interval. A non-positive
// interval falls back to DefaultFrameInterval.
func NewTimerFrames(interval time.Duration) *TimerFrames {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TimerFrames{Interval: interval}
}

// RequestFrame arms a one-shot timer for fn.
func (f *TimerFrames) RequestFrame(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending == nil {
		f.pending = make(map[*time.Timer]struct{})
	}
	var t *time.Timer
	t = time.AfterFunc(f.Interval, func() {
		f.mu.Lock()
		delete(f.pending, t)
		f.mu.Unlock()
		fn()
	})
	f.pending[t] = struct{}{}
}

// Cancel stops every timer that has not fired yet. Their callbacks never run.
func (f *TimerFrames) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for t := range f.pending {
		t.Stop()
		delete(f.pending, t)
	}
}

// Pending reports how many callbacks are armed but have not fired.
func (f *TimerFrames) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}
