// Package ebitenpump drives a tempo.Manager from an Ebitengine game loop.
//
// Ebitengine calls Game.Update once per tick (60 times per second by
// default). A Pump collects the frame callbacks the Manager requests and runs
// them on the next tick, on the game goroutine, so tween callbacks can touch
// game state without extra locking.
//
//	pump := ebitenpump.New()
//	m := tempo.New(tempo.Config{Frames: pump})
//	m.Start()
//	ebiten.RunGame(ebitenpump.Wrap(myGame, pump))
package ebitenpump

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Pump is a tempo.FrameRequester serviced by an Ebitengine tick.
type Pump struct {
	mu      sync.Mutex
	queue   []func()
	running []func()
	ticks   uint64
}

// New returns an empty Pump.
func New() *Pump {
	return &Pump{}
}

// RequestFrame queues fn for the next Update. Safe from any goroutine.
func (p *Pump) RequestFrame(fn func()) {
	p.mu.Lock()
	p.queue = append(p.queue, fn)
	p.mu.Unlock()
}

// Update runs every callback queued before the call, each exactly once.
// Callbacks queued while Update runs wait for the next Update.
func (p *Pump) Update() {
	p.mu.Lock()
	p.queue, p.running = p.running[:0], p.queue
	p.ticks++
	p.mu.Unlock()

	for i, fn := range p.running {
		fn()
		p.running[i] = nil
	}
}

// Pending reports how many callbacks are waiting for the next Update.
func (p *Pump) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Ticks reports how many times Update has run.
func (p *Pump) Ticks() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticks
}

// Game wraps an ebiten.Game, servicing a Pump before each Update.
type Game struct {
	ebiten.Game
	Pump *Pump
}

// Wrap returns g with p serviced at the start of every tick.
func Wrap(g ebiten.Game, p *Pump) *Game {
	return &Game{Game: g, Pump: p}
}

// Update services the pump, then delegates to the wrapped game.
func (g *Game) Update() error {
	g.Pump.Update()
	return g.Game.Update()
}
