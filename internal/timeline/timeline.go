// Package timeline loads YAML tween timelines and schedules them on a
// tempo.Manager.
//
// A timeline is a list of named tracks, each animating one value:
//
//	tracks:
//	  - name: fade
//	    delay: 250ms
//	    duration: 1s
//	    easing: out-quad
//	    from: 0
//	    to: 1
package timeline

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/tempo"
)

var (
	ErrNoTracks       = errors.New("no tracks")
	ErrMissingName    = errors.New("track has no name")
	ErrDuplicateTrack = errors.New("duplicate track name")
	ErrUnknownEasing  = errors.New("unknown easing")
	ErrNegativeDelay  = errors.New("negative delay")
)

// Track describes one tween. Durations use Go syntax ("150ms", "2s").
type Track struct {
	Name     string        `yaml:"name"`
	Delay    time.Duration `yaml:"delay,omitempty"`
	Duration time.Duration `yaml:"duration"`
	Easing   string        `yaml:"easing,omitempty"`
	From     float64       `yaml:"from,omitempty"`
	To       float64       `yaml:"to"`
}

// Value maps eased progress onto the track's [From, To] range.
func (t Track) Value(progress float64) float64 {
	return t.From + (t.To-t.From)*progress
}

// Timeline is the top-level document.
type Timeline struct {
	Tracks []Track `yaml:"tracks"`

	easings []tempo.Easing
}

// Load parses and validates a YAML timeline. Unknown fields are rejected.
func Load(data []byte) (*Timeline, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var tl Timeline
	if err := dec.Decode(&tl); err != nil {
		return nil, fmt.Errorf("parse timeline: %w", err)
	}
	if err := tl.validate(); err != nil {
		return nil, fmt.Errorf("parse timeline: %w", err)
	}
	return &tl, nil
}

// LoadFile reads and parses the timeline at path.
func LoadFile(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timeline: %w", err)
	}
	return Load(data)
}

func (tl *Timeline) validate() error {
	if len(tl.Tracks) == 0 {
		return ErrNoTracks
	}
	seen := make(map[string]bool, len(tl.Tracks))
	tl.easings = make([]tempo.Easing, len(tl.Tracks))
	for i, tr := range tl.Tracks {
		if tr.Name == "" {
			return fmt.Errorf("track %d: %w", i, ErrMissingName)
		}
		if seen[tr.Name] {
			return fmt.Errorf("track %q: %w", tr.Name, ErrDuplicateTrack)
		}
		seen[tr.Name] = true
		if tr.Delay < 0 {
			return fmt.Errorf("track %q: %w", tr.Name, ErrNegativeDelay)
		}

		name := tr.Easing
		if name == "" {
			name = "linear"
		}
		fn, ok := tempo.EasingByName(name)
		if !ok {
			return fmt.Errorf("track %q: %w %q", tr.Name, ErrUnknownEasing, tr.Easing)
		}
		tl.easings[i] = fn
	}
	return nil
}

// End returns the offset at which the last track finishes.
func (tl *Timeline) End() time.Duration {
	var end time.Duration
	for _, tr := range tl.Tracks {
		end = max(end, tr.Delay+max(tr.Duration, 0))
	}
	return end
}

// Handlers receive track events. Nil fields are ignored.
type Handlers struct {
	OnStart func(track string)
	OnValue func(track string, value float64)
	OnEnd   func(track string, reason tempo.EndReason)
}

// Schedule registers every track on m and returns the IDs in track order.
func (tl *Timeline) Schedule(m *tempo.Manager, h Handlers) []tempo.ID {
	ids := make([]tempo.ID, len(tl.Tracks))
	for i, tr := range tl.Tracks {
		ids[i] = m.Add(tl.tween(i, tr, h))
	}
	return ids
}

func (tl *Timeline) tween(i int, tr Track, h Handlers) tempo.Tween {
	tw := tempo.Tween{
		Delay:    tr.Delay,
		Duration: tr.Duration,
		Easing:   tl.easings[i],
	}
	if h.OnStart != nil {
		tw.OnStart = func() { h.OnStart(tr.Name) }
	}
	if h.OnValue != nil {
		tw.OnUpdate = func(p float64) { h.OnValue(tr.Name, tr.Value(p)) }
	}
	if h.OnEnd != nil {
		tw.OnEnd = func(reason tempo.EndReason, _ tempo.ID) { h.OnEnd(tr.Name, reason) }
	}
	return tw
}
