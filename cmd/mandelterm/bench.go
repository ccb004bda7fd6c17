package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mandelterm/internal/automation"
	"github.com/san-kum/mandelterm/internal/export"
	"github.com/san-kum/mandelterm/internal/metrics"
	"github.com/san-kum/mandelterm/internal/tui"
	"github.com/spf13/cobra"
)

var (
	frameRate int

	sweepFrom int
	sweepTo   int
	sweepStep int
)

func loadTour(args []string) (*automation.Tour, error) {
	if len(args) == 0 {
		return automation.DefaultTour(), nil
	}
	return automation.LoadTour(args[0])
}

func benchTour(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tour, err := loadTour(args)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)

	s, canvas, err := newHeadless(cfg, logger)
	if err != nil {
		return err
	}
	g := canvas.Grid()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ms := metrics.Defaults()
	frames := make([]float64, 0, tour.Frames())
	logger.Info("running tour", "name", tour.Name, "frames", tour.Frames(), "size", fmt.Sprintf("%dx%d", cols, rows), "workers", s.Workers())

	results, err := automation.Run(ctx, tour, s, g, func(r automation.FrameResult) {
		for _, m := range ms {
			m.Observe(r.Stats)
		}
		frames = append(frames, float64(r.Stats.Elapsed)/float64(time.Millisecond))
	})
	if err != nil {
		return fmt.Errorf("tour %s: %w", tour.Name, err)
	}

	fmt.Printf("benchmarking tour %s (%d frames, %dx%d cells, cache %s)\n\n", tour.Name, len(results), cols, rows, cfg.Cache.Kind)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tACTION\tFRAMES\tMEAN\tHITS")
	for _, st := range summarize(results) {
		fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%d\n", st.step, st.action, st.frames, st.mean.Round(time.Microsecond), st.hits)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.3f\n", m.Name(), m.Value())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if jsonPath != "" {
		report := export.NewBenchReport(tour.Name, results, ms)
		report.Cols, report.Rows = cols, rows
		report.Workers = s.Workers()
		report.Cache = cfg.Cache.Kind
		if err := export.WriteJSON(jsonPath, report); err != nil {
			return err
		}
		logger.Info("wrote report", "path", jsonPath)
	}

	if len(frames) > 1 {
		fmt.Println()
		graph := asciigraph.Plot(frames,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("frame time (ms)"),
		)
		fmt.Println(graph)
	}
	return nil
}

type stepSummary struct {
	step   int
	action string
	frames int
	mean   time.Duration
	hits   uint64
}

func summarize(results []automation.FrameResult) []stepSummary {
	var out []stepSummary
	var total time.Duration
	for _, r := range results {
		if len(out) == 0 || out[len(out)-1].step != r.Step {
			out = append(out, stepSummary{step: r.Step, action: r.Action})
			total = 0
		}
		cur := &out[len(out)-1]
		cur.frames++
		cur.hits += r.Stats.CacheHits
		total += r.Stats.Elapsed
		cur.mean = total / time.Duration(cur.frames)
	}
	return out
}

func playTour(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tour, err := loadTour(args)
	if err != nil {
		return err
	}

	// Reserve a line for the frame status.
	rows--
	s, canvas, err := newHeadless(cfg, newLogger(os.Stderr))
	if err != nil {
		return err
	}
	g := canvas.Grid()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	live := tui.NewLiveRenderer(os.Stdout, g, frameRate)
	live.Start()
	defer live.Stop()

	_, err = automation.Run(ctx, tour, s, g, live.OnFrame)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func sweepThreshold(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, canvas, err := newHeadless(cfg, newLogger(os.Stderr))
	if err != nil {
		return err
	}
	g := canvas.Grid()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunThresholdSweep(ctx, cfg.View, cfg.Workers, g, sweepFrom, sweepTo, sweepStep)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "THRESHOLD\tESCAPED\tINSIDE\tTIME")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%v\n", r.Threshold, r.Foreground, g.Area()-r.Foreground, r.Stats.Elapsed.Round(time.Microsecond))
	}
	return w.Flush()
}
