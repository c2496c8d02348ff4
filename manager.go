package tempo

import (
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Config configures a Manager. Zero fields are filled in by New.
type Config struct {
	// Clock is the time source. Defaults to SystemClock.
	Clock Clock
	// Frames re-arms the loop after each pass. Defaults to TimerFrames at
	// DefaultFrameInterval.
	Frames FrameRequester
	// Logger receives recovered callback panics and, in debug mode, per-pass
	// records. Defaults to discarding everything.
	Logger *slog.Logger
	// Debug enables per-pass timing records at slog.LevelDebug.
	Debug bool
}

// DefaultConfig returns the configuration used by Default.
func DefaultConfig() Config {
	return Config{
		Clock:  SystemClock,
		Frames: NewTimerFrames(DefaultFrameInterval),
	}
}

// Manager owns a set of active tweens and advances them once per pass.
//
// A pass visits every tween registered before the pass began, in
// registration order, and decides from the current time whether the tween is
// still delayed, running or finished. Progress is derived from elapsed time,
// not from the number of passes, so tweens take the same wall-clock time at
// any frame rate.
//
// Callbacks run synchronously inside the pass (or inside Finish) without any
// Manager lock held, so they may call Add, Finish, Stop and Start freely.
// They must not call Step and should not block. Passes never overlap: Step
// serializes callers from different goroutines, and a Finish from another
// goroutine never lets a pass fire start or update callbacks after OnEnd.
type Manager struct {
	clock  Clock
	frames FrameRequester
	logger *slog.Logger
	debug  bool

	passMu sync.Mutex // serializes passes
	snap   []*entry   // pass snapshot, guarded by passMu

	mu      sync.Mutex // guards everything below
	byID    map[ID]*entry
	order   []*entry
	running bool
	inPass  bool
	gen     uint64
	stats   Stats
}

// New creates a Manager. The loop is not running until Start is called;
// Step can drive passes manually instead.
func New(cfg Config) *Manager {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.Frames == nil {
		cfg.Frames = NewTimerFrames(DefaultFrameInterval)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		clock:  cfg.Clock,
		frames: cfg.Frames,
		logger: cfg.Logger.With("component", "tempo"),
		debug:  cfg.Debug,
		byID:   make(map[ID]*entry),
	}
}

// Add registers tw and returns its ID before any callback fires. The start
// time is now+Delay and the end time start+Duration. A tween added while a
// pass is in progress is first visited by the next pass.
func (m *Manager) Add(tw Tween) ID {
	id := nextID()
	e := newEntry(id, tw, m.clock.Now())

	m.mu.Lock()
	m.byID[id] = e
	m.order = append(m.order, e)
	m.mu.Unlock()

	if m.debug {
		m.logger.Debug("tween added", "tween", id, "delay", tw.Delay, "duration", tw.Duration)
	}
	return id
}

// Finish completes the tween immediately: OnUpdate(1) then
// OnEnd(EndForced, id). It reports false, firing nothing, when id is unknown
// or the tween has already ended.
//
// When a pass is inside one of the tween's own callbacks, whether Finish was
// called from that callback or from another goroutine, the tween is claimed
// at once and the pass delivers OnUpdate(1) and OnEnd as soon as the callback
// returns. No further callbacks for the tween run in that pass.
func (m *Manager) Finish(id ID) bool {
	m.mu.Lock()
	e, ok := m.byID[id]
	if !ok || e.ended {
		m.mu.Unlock()
		return false
	}
	e.ended = true
	delete(m.byID, id)
	if i := slices.Index(m.order, e); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	m.stats.Forced++
	if e.firing {
		e.forced = true
		m.mu.Unlock()
		return true
	}
	m.mu.Unlock()

	m.complete(e, EndForced)
	return true
}

// Has reports whether id is still in the active set.
func (m *Manager) Has(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byID[id]
	return ok
}

// Len returns the number of active tweens.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

// Step runs one pass over the active set. Tweens that end naturally are
// dropped from the iteration order only after the whole pass has run.
func (m *Manager) Step() {
	m.passMu.Lock()
	defer m.passMu.Unlock()

	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}

	m.mu.Lock()
	m.inPass = true
	m.snap = append(m.snap[:0], m.order...)
	m.mu.Unlock()

	ended := 0
	for _, e := range m.snap {
		if m.visit(e) {
			ended++
		}
	}
	clear(m.snap)

	m.mu.Lock()
	m.order = slices.DeleteFunc(m.order, func(e *entry) bool { return e.ended })
	m.inPass = false
	m.stats.Passes++
	m.stats.Active = len(m.byID)
	if m.debug {
		m.stats.LastPass = time.Since(t0)
	}
	stats := m.stats
	m.mu.Unlock()

	if m.debug {
		m.debugLog(stats, ended)
	}
}

// visit advances one tween and reports whether it ended naturally.
func (m *Manager) visit(e *entry) bool {
	if !m.live(e) {
		return false
	}
	now := m.clock.Now()

	// Start must fire before a same-pass natural end.
	if e.firstFrame && !now.Before(e.start) {
		if !m.enter(e) {
			return false
		}
		e.firstFrame = false
		m.guard(e.id, "start", e.onStart)
		if m.leave(e) {
			return false
		}
	}

	switch {
	case !now.Before(e.end):
		if !m.claimNatural(e) {
			return false
		}
		m.complete(e, EndNatural)
		return true
	case !now.Before(e.start):
		if !m.enter(e) {
			return false
		}
		p := e.progress(now)
		m.guard(e.id, "update", func() { e.onUpdate(e.easing(p)) })
		m.leave(e)
	}
	return false
}

func (m *Manager) live(e *entry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !e.ended
}

// enter marks the pass as inside a callback of e. It reports false when e
// has already ended, in which case nothing may fire.
func (m *Manager) enter(e *entry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ended {
		return false
	}
	e.firing = true
	return true
}

// leave clears the mark set by enter, delivers a Finish that arrived while
// the callback ran, and reports whether e has ended.
func (m *Manager) leave(e *entry) bool {
	m.mu.Lock()
	e.firing = false
	forced := e.forced
	e.forced = false
	ended := e.ended
	m.mu.Unlock()

	if forced {
		m.complete(e, EndForced)
	}
	return ended
}

// claimNatural marks e as ended unless Finish got there first.
func (m *Manager) claimNatural(e *entry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ended {
		return false
	}
	e.ended = true
	delete(m.byID, e.id)
	m.stats.Natural++
	return true
}

// complete fires the final OnUpdate(1) and OnEnd for an entry already marked
// ended.
func (m *Manager) complete(e *entry, reason EndReason) {
	m.update(e, 1)
	m.finish(e, reason)
}

func (m *Manager) update(e *entry, progress float64) {
	m.guard(e.id, "update", func() { e.onUpdate(progress) })
}

func (m *Manager) finish(e *entry, reason EndReason) {
	m.guard(e.id, "end", func() { e.onEnd(reason, e.id) })
	if m.debug {
		m.logger.Debug("tween ended", "tween", e.id, "reason", reason)
	}
}

// guard runs one callback, recovering a panic so the rest of the pass still
// runs.
func (m *Manager) guard(id ID, hook string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.mu.Lock()
			m.stats.Panics++
			m.mu.Unlock()
			m.logger.Error("tween callback panicked", "tween", id, "hook", hook, "panic", r)
		}
	}()
	fn()
}

// Start runs a pass immediately and keeps re-arming itself through the
// FrameRequester until Stop is called. Starting a running Manager is a no-op.
// Called while a pass is in progress, for example from a callback, Start
// requests a frame for its first pass instead of running it inline.
func (m *Manager) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.gen++
	gen := m.gen
	inPass := m.inPass
	m.mu.Unlock()

	m.logger.Info("scheduler started")
	if inPass {
		m.frames.RequestFrame(func() { m.loop(gen) })
		return
	}
	m.loop(gen)
}

// Stop prevents the loop from re-arming. A frame callback that is already
// scheduled returns without running a pass. Active tweens are kept; a later
// Start resumes them against the same absolute times.
func (m *Manager) Stop() {
	m.mu.Lock()
	wasRunning := m.running
	m.running = false
	m.mu.Unlock()

	if wasRunning {
		m.logger.Info("scheduler stopped")
	}
}

// Running reports whether the loop is started.
func (m *Manager) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Manager) loop(gen uint64) {
	if !m.current(gen) {
		return
	}
	m.Step()
	if m.current(gen) {
		m.frames.RequestFrame(func() { m.loop(gen) })
	}
}

// current reports whether the loop generation gen is still the live one.
func (m *Manager) current(gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running && m.gen == gen
}
