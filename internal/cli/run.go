package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tempo"
	"github.com/phanxgames/tempo/internal/timeline"
)

type playOptions struct {
	FPS         int
	FinishAfter time.Duration // zero waits for natural completion
	Values      bool
	Out         io.Writer
}

func newRunCmd() *cobra.Command {
	opts := playOptions{}
	cmd := &cobra.Command{
		Use:   "run <timeline.yaml>",
		Short: "Play a timeline headlessly and print its events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := timeline.LoadFile(args[0])
			if err != nil {
				return err
			}
			opts.Out = cmd.OutOrStdout()
			_, err = play(cmd.Context(), tl, opts)
			return err
		},
	}
	cmd.Flags().IntVar(&opts.FPS, "fps", 60, "Frames per second of the headless frame source")
	cmd.Flags().DurationVar(&opts.FinishAfter, "finish-after", 0, "Force every unfinished track to end after this long")
	cmd.Flags().BoolVar(&opts.Values, "values", true, "Print every track value")
	return cmd
}

// play runs tl to completion on its own Manager and returns the final stats.
func play(ctx context.Context, tl *timeline.Timeline, opts playOptions) (tempo.Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.FPS <= 0 {
		return tempo.Stats{}, fmt.Errorf("invalid fps %d", opts.FPS)
	}

	frames := tempo.NewTimerFrames(time.Second / time.Duration(opts.FPS))
	m := tempo.New(tempo.Config{
		Frames: frames,
		Logger: logger,
		Debug:  flagDebug,
	})

	var (
		outMu sync.Mutex
		wg    sync.WaitGroup
	)
	printf := func(format string, args ...any) {
		outMu.Lock()
		defer outMu.Unlock()
		fmt.Fprintf(opts.Out, format, args...)
	}

	wg.Add(len(tl.Tracks))
	h := timeline.Handlers{
		OnStart: func(track string) {
			logger.Info("track started", "track", track)
			printf("%-16s start\n", track)
		},
		OnEnd: func(track string, reason tempo.EndReason) {
			logger.Info("track ended", "track", track, "reason", reason)
			printf("%-16s end %s\n", track, reason)
			wg.Done()
		},
	}
	if opts.Values {
		h.OnValue = func(track string, v float64) {
			printf("%-16s %10.4f\n", track, v)
		}
	}

	ids := tl.Schedule(m, h)
	logger.Info("timeline scheduled", "tracks", len(ids), "length", tl.End(), "fps", opts.FPS)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	m.Start()
	defer func() {
		m.Stop()
		frames.Cancel()
	}()

	var deadline <-chan time.Time
	if opts.FinishAfter > 0 {
		timer := time.NewTimer(opts.FinishAfter)
		defer timer.Stop()
		deadline = timer.C
	}

	var err error
	select {
	case <-done:
	case <-deadline:
		logger.Warn("finishing remaining tracks", "after", opts.FinishAfter)
		finishAll(m, ids)
		<-done
	case <-ctx.Done():
		finishAll(m, ids)
		<-done
		err = ctx.Err()
	}

	stats := m.Stats()
	printf("tracks=%d natural=%d forced=%d passes=%d\n", len(ids), stats.Natural, stats.Forced, stats.Passes)
	return stats, err
}

func finishAll(m *tempo.Manager, ids []tempo.ID) {
	for _, id := range ids {
		m.Finish(id)
	}
}
