package cli

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tempo"
	"github.com/phanxgames/tempo/ebitenpump"
	"github.com/phanxgames/tempo/internal/timeline"
)

const (
	windowTitle = "tempo"
	screenW     = 640
	rowHeight   = 28
	barLeft     = 140
	barMaxW     = 440
	barHeight   = 14
	headerH     = 40
)

var (
	clearColor = color.RGBA{R: 26, G: 26, B: 38, A: 255}
	trackColor = color.RGBA{R: 60, G: 60, B: 80, A: 255}
	barColor   = color.RGBA{R: 102, G: 204, B: 255, A: 255}
	doneColor  = color.RGBA{R: 153, G: 255, B: 102, A: 255}
)

func newWindowCmd() *cobra.Command {
	var loop, showFPS bool
	cmd := &cobra.Command{
		Use:   "window <timeline.yaml>",
		Short: "Play a timeline in an Ebitengine window, one bar per track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := timeline.LoadFile(args[0])
			if err != nil {
				return err
			}

			pump := ebitenpump.New()
			g := newBarsGame(tl, pump, loop, showFPS)
			g.schedule()
			g.m.Start()
			defer g.m.Stop()

			ebiten.SetWindowTitle(windowTitle + " - " + args[0])
			ebiten.SetWindowSize(screenW, g.height())
			if err := ebiten.RunGame(ebitenpump.Wrap(g, pump)); err != nil {
				return fmt.Errorf("run window: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&loop, "loop", true, "Restart the timeline when every track has ended")
	cmd.Flags().BoolVar(&showFPS, "fps", true, "Show the FPS/TPS readout")
	return cmd
}

// barsGame renders one horizontal bar per track. Tween callbacks arrive on
// the game goroutine through the pump, so no locking is needed.
type barsGame struct {
	tl      *timeline.Timeline
	m       *tempo.Manager
	loop    bool
	showFPS bool

	values    []float64
	done      []bool
	remaining int
	index     map[string]int
}

func newBarsGame(tl *timeline.Timeline, pump *ebitenpump.Pump, loop, showFPS bool) *barsGame {
	g := &barsGame{
		tl:      tl,
		m:       tempo.New(tempo.Config{Frames: pump, Logger: logger, Debug: flagDebug}),
		loop:    loop,
		showFPS: showFPS,
		values:  make([]float64, len(tl.Tracks)),
		done:    make([]bool, len(tl.Tracks)),
		index:   make(map[string]int, len(tl.Tracks)),
	}
	for i, tr := range tl.Tracks {
		g.index[tr.Name] = i
	}
	return g
}

// schedule (re)starts every track from its From value.
func (g *barsGame) schedule() []tempo.ID {
	for i, tr := range g.tl.Tracks {
		g.values[i] = tr.From
		g.done[i] = false
	}
	g.remaining = len(g.tl.Tracks)
	return g.tl.Schedule(g.m, timeline.Handlers{
		OnValue: func(track string, v float64) {
			g.values[g.index[track]] = v
		},
		OnEnd: func(track string, reason tempo.EndReason) {
			g.done[g.index[track]] = true
			g.remaining--
			logger.Debug("track ended", "track", track, "reason", reason)
		},
	})
}

func (g *barsGame) Update() error {
	if g.remaining == 0 && g.loop {
		g.schedule()
	}
	return nil
}

func (g *barsGame) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)

	for i, tr := range g.tl.Tracks {
		y := headerH + i*rowHeight
		ebitenutil.DebugPrintAt(screen, tr.Name, 8, y)
		fillRect(screen, barLeft, y, barMaxW, barHeight, trackColor)

		c := barColor
		if g.done[i] {
			c = doneColor
		}
		w := int(barFraction(tr, g.values[i]) * barMaxW)
		fillRect(screen, barLeft, y, min(w, screenW-barLeft), barHeight, c)
	}

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f  active: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.m.Len()))
	}
}

func (g *barsGame) Layout(_, _ int) (int, int) {
	return screenW, g.height()
}

func (g *barsGame) height() int {
	return headerH + len(g.tl.Tracks)*rowHeight + rowHeight
}

// barFraction maps a track value to the share of the bar it fills. Elastic
// and back curves may land slightly outside [0, 1].
func barFraction(tr timeline.Track, v float64) float64 {
	if tr.To == tr.From {
		return 1
	}
	return (v - tr.From) / (tr.To - tr.From)
}

func fillRect(dst *ebiten.Image, x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	dst.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image).Fill(c)
}
