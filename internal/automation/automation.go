package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/mandelterm/internal/bits"
	"github.com/san-kum/mandelterm/internal/config"
	"github.com/san-kum/mandelterm/internal/render"
	"github.com/san-kum/mandelterm/internal/session"
	"gopkg.in/yaml.v3"
)

var ErrUnknownAction = errors.New("automation: unknown action")

// Tour is a scripted sequence of explorer inputs.
type Tour struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Preset      string     `yaml:"preset"`
	Steps       []TourStep `yaml:"steps"`
}

// TourStep is one input, applied Repeat times with a frame after each.
type TourStep struct {
	Action string `yaml:"action"` // pan, zoom_in, zoom_out, threshold, redraw, jump
	DX     int    `yaml:"dx"`
	DY     int    `yaml:"dy"`
	Mult   int    `yaml:"mult"`
	Delta  int    `yaml:"delta"`
	Preset string `yaml:"preset"`
	Repeat int    `yaml:"repeat"`
}

// FrameResult is what one tour frame produced.
type FrameResult struct {
	Step       int
	Action     string
	Stats      render.Stats
	Foreground int
}

// LoadTour loads a tour from a YAML file
func LoadTour(path string) (*Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tour Tour
	if err := yaml.Unmarshal(data, &tour); err != nil {
		return nil, err
	}
	if err := tour.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &tour, nil
}

// DefaultTour pans across the full view, dives into seahorse valley and
// raises the threshold on the way.
func DefaultTour() *Tour {
	return &Tour{
		Name:        "default",
		Description: "pan, zoom and threshold changes over the full set",
		Preset:      "full",
		Steps: []TourStep{
			{Action: "redraw"},
			{Action: "pan", DX: 1, Repeat: 20},
			{Action: "pan", DY: 1, Repeat: 10},
			{Action: "pan", DX: -1, DY: -1, Mult: 5, Repeat: 4},
			{Action: "zoom_in", Mult: 10, Repeat: 5},
			{Action: "threshold", Delta: 250},
			{Action: "pan", DX: -1, Repeat: 10},
			{Action: "zoom_out", Mult: 10, Repeat: 2},
			{Action: "jump", Preset: "seahorse"},
			{Action: "pan", DX: 1, Mult: 2, Repeat: 10},
		},
	}
}

func (t *Tour) Validate() error {
	if t.Preset != "" {
		if _, ok := config.GetPreset(t.Preset); !ok {
			return fmt.Errorf("%w: %s", config.ErrUnknownPreset, t.Preset)
		}
	}
	for i, step := range t.Steps {
		switch step.Action {
		case "pan", "zoom_in", "zoom_out", "threshold", "redraw":
		case "jump":
			if _, ok := config.GetPreset(step.Preset); !ok {
				return fmt.Errorf("step %d: %w: %s", i+1, config.ErrUnknownPreset, step.Preset)
			}
		default:
			return fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownAction, step.Action)
		}
	}
	return nil
}

// Frames is the number of frames Run will render.
func (t *Tour) Frames() int {
	n := 0
	for _, step := range t.Steps {
		n += max(step.Repeat, 1)
	}
	return n
}

// Run replays the tour against s, rendering into g after every input.
// Cancellation is checked between frames; a started frame always finishes.
func Run(ctx context.Context, t *Tour, s *session.Session, g *bits.Grid, observe func(FrameResult)) ([]FrameResult, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.Preset != "" {
		v, _ := config.GetPreset(t.Preset)
		s.Jump(v)
	}

	results := make([]FrameResult, 0, t.Frames())
	for i, step := range t.Steps {
		mult := max(step.Mult, 1)
		for r := 0; r < max(step.Repeat, 1); r++ {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			default:
			}

			// Inputs before the first frame are dropped, as in the explorer.
			switch step.Action {
			case "pan":
				s.Pan(step.DX, step.DY, mult)
			case "zoom_in":
				s.ZoomIn(mult)
			case "zoom_out":
				s.ZoomOut(mult)
			case "threshold":
				if step.Delta >= 0 {
					s.RaiseThreshold(step.Delta)
				} else {
					s.LowerThreshold(-step.Delta)
				}
			case "jump":
				v, _ := config.GetPreset(step.Preset)
				s.Jump(v)
			case "redraw":
			}

			res := FrameResult{Step: i + 1, Action: step.Action, Stats: s.Frame(g)}
			res.Foreground = g.Count()
			results = append(results, res)
			if observe != nil {
				observe(res)
			}
		}
	}

	return results, nil
}

// SweepResult holds one threshold of a sweep.
type SweepResult struct {
	Threshold  int
	Foreground int
	Stats      render.Stats
}

// RunThresholdSweep renders the same view at thresholds from..to in steps of
// step, using a fresh uncached session per threshold.
func RunThresholdSweep(ctx context.Context, view config.View, workers int, g *bits.Grid, from, to, step int) ([]SweepResult, error) {
	if step <= 0 || from < 0 || to < from {
		return nil, fmt.Errorf("invalid sweep %d..%d step %d", from, to, step)
	}

	results := make([]SweepResult, 0, (to-from)/step+1)
	for t := from; t <= to; t += step {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		s := session.New(session.Options{Threshold: t, View: view, Workers: workers})
		stats := s.Frame(g)
		results = append(results, SweepResult{Threshold: t, Foreground: g.Count(), Stats: stats})
	}
	return results, nil
}
