package timeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/tempo"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestLoad(t *testing.T) {
	data := []byte(`
tracks:
  - name: fade
    duration: 1s
    easing: out-quad
    to: 1
  - name: slide
    delay: 250ms
    duration: 500ms
    from: -100
    to: 100
`)

	tl, err := Load(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tl.Tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tl.Tracks))
	}
	if tl.Tracks[0].Name != "fade" || tl.Tracks[0].Duration != time.Second || tl.Tracks[0].Easing != "out-quad" {
		t.Errorf("track 0 mismatch: %+v", tl.Tracks[0])
	}
	if tl.Tracks[1].Delay != 250*time.Millisecond || tl.Tracks[1].From != -100 || tl.Tracks[1].To != 100 {
		t.Errorf("track 1 mismatch: %+v", tl.Tracks[1])
	}
	if got := tl.End(); got != time.Second {
		t.Errorf("End = %v, want 1s", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", `tracks: []`, ErrNoTracks},
		{"missing name", "tracks:\n  - duration: 1s\n", ErrMissingName},
		{"duplicate", "tracks:\n  - name: a\n    duration: 1s\n  - name: a\n    duration: 1s\n", ErrDuplicateTrack},
		{"unknown easing", "tracks:\n  - name: a\n    duration: 1s\n    easing: wobble\n", ErrUnknownEasing},
		{"negative delay", "tracks:\n  - name: a\n    delay: -1s\n    duration: 1s\n", ErrNegativeDelay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	for name, data := range map[string]string{
		"not yaml":        "tracks: [",
		"unknown field":   "tracks:\n  - name: a\n    duratoin: 1s\n",
		"integer seconds": "tracks:\n  - name: a\n    duration: 5\n",
	} {
		if _, err := Load([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tl.yaml")
	if err := os.WriteFile(path, []byte("tracks:\n  - name: a\n    duration: 1s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSchedule(t *testing.T) {
	tl, err := Load([]byte(`
tracks:
  - name: x
    duration: 100ms
    from: 10
    to: 20
  - name: y
    delay: 100ms
    duration: 100ms
    to: 1
`))
	if err != nil {
		t.Fatal(err)
	}

	clock := &fakeClock{now: time.Unix(0, 0)}
	m := tempo.New(tempo.Config{Clock: clock, Frames: tempo.FrameFunc(func(func()) {})})

	values := map[string][]float64{}
	var started, ended []string
	ids := tl.Schedule(m, Handlers{
		OnStart: func(track string) { started = append(started, track) },
		OnValue: func(track string, v float64) { values[track] = append(values[track], v) },
		OnEnd: func(track string, r tempo.EndReason) {
			ended = append(ended, track+":"+r.String())
		},
	})
	if len(ids) != 2 {
		t.Fatalf("ids = %v, want 2", ids)
	}

	for _, ms := range []int{0, 50, 100, 150} {
		clock.now = time.Unix(0, 0).Add(time.Duration(ms) * time.Millisecond)
		m.Step()
	}
	m.Finish(ids[1])

	if got := values["x"]; len(got) != 3 || got[0] != 10 || got[1] != 15 || got[2] != 20 {
		t.Errorf("x values = %v, want [10 15 20]", got)
	}
	if got := values["y"]; len(got) != 3 || got[0] != 0 || got[1] != 0.5 || got[2] != 1 {
		t.Errorf("y values = %v, want [0 0.5 1]", got)
	}
	if len(started) != 2 {
		t.Errorf("started = %v", started)
	}
	if len(ended) != 2 || ended[0] != "x:natural" || ended[1] != "y:forced" {
		t.Errorf("ended = %v, want [x:natural y:forced]", ended)
	}
}

func TestTrackValue(t *testing.T) {
	tr := Track{From: 2, To: 4}
	if got := tr.Value(0.5); got != 3 {
		t.Errorf("Value(0.5) = %v, want 3", got)
	}
}
