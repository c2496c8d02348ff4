package ebitenpump

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tempo"
)

type stubGame struct {
	updates int
	err     error
}

func (g *stubGame) Update() error              { g.updates++; return g.err }
func (g *stubGame) Draw(*ebiten.Image)         {}
func (g *stubGame) Layout(w, h int) (int, int) { return w, h }

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestPumpRunsEachCallbackOnce(t *testing.T) {
	p := New()
	calls := 0
	p.RequestFrame(func() { calls++ })

	p.Update()
	p.Update()
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}

func TestPumpDefersCallbacksQueuedDuringUpdate(t *testing.T) {
	p := New()
	var order []string
	p.RequestFrame(func() {
		order = append(order, "first")
		p.RequestFrame(func() { order = append(order, "second") })
	})

	p.Update()
	if len(order) != 1 {
		t.Fatalf("order = %v after one tick, want [first]", order)
	}
	if p.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", p.Pending())
	}
	p.Update()
	if len(order) != 2 || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
	if p.Ticks() != 2 {
		t.Errorf("Ticks = %d, want 2", p.Ticks())
	}
}

func TestGameServicesPumpBeforeUpdate(t *testing.T) {
	p := New()
	inner := &stubGame{}
	g := Wrap(inner, p)

	serviced := false
	p.RequestFrame(func() {
		if inner.updates != 0 {
			t.Error("pump serviced after the wrapped Update")
		}
		serviced = true
	})

	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !serviced || inner.updates != 1 {
		t.Errorf("serviced=%v updates=%d, want true 1", serviced, inner.updates)
	}
	if w, h := g.Layout(320, 240); w != 320 || h != 240 {
		t.Errorf("Layout not forwarded: %d x %d", w, h)
	}
}

func TestGamePropagatesError(t *testing.T) {
	want := errors.New("quit")
	g := Wrap(&stubGame{err: want}, New())
	if err := g.Update(); !errors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
}

func TestManagerDrivenByPump(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	p := New()
	m := tempo.New(tempo.Config{Clock: clock, Frames: p})

	var progress []float64
	var reason tempo.EndReason = 255
	m.Add(tempo.Tween{
		Duration: 100 * time.Millisecond,
		OnUpdate: func(v float64) { progress = append(progress, v) },
		OnEnd:    func(r tempo.EndReason, _ tempo.ID) { reason = r },
	})
	m.Start()
	defer m.Stop()

	// Half the ticks elapse at double speed: progress follows time, not ticks.
	clock.now = clock.now.Add(50 * time.Millisecond)
	p.Update()
	clock.now = clock.now.Add(100 * time.Millisecond)
	p.Update()

	want := []float64{0, 0.5, 1}
	if len(progress) != len(want) {
		t.Fatalf("progress = %v, want %v", progress, want)
	}
	for i := range want {
		if progress[i] != want[i] {
			t.Fatalf("progress = %v, want %v", progress, want)
		}
	}
	if reason != tempo.EndNatural {
		t.Errorf("reason = %v, want natural", reason)
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
}
