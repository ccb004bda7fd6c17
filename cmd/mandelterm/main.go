package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lmittmann/tint"
	"github.com/san-kum/mandelterm/internal/config"
	"github.com/san-kum/mandelterm/internal/export"
	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/session"
	"github.com/san-kum/mandelterm/internal/tui"
	"github.com/san-kum/mandelterm/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	threshold  int
	workers    int
	cacheKind  string
	cacheSize  int
	noStatus   bool
	debug      bool
	logFile    string

	cols int
	rows int

	svgPath  string
	svgScale float64
	jsonPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "mandelterm",
		Short:        "explore the mandelbrot set in the terminal",
		SilenceUsage: true,
		RunE:         runExplorer,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start at a named view")
	pf.IntVar(&threshold, "threshold", config.DefaultThreshold, "iteration threshold")
	pf.IntVar(&workers, "workers", 0, "render workers (0 = all cpus)")
	pf.StringVar(&cacheKind, "cache", config.DefaultCache, "pan cache: unbounded, lru or none")
	pf.IntVar(&cacheSize, "cache-size", config.DefaultCacheSize, "lru cache entries")
	pf.BoolVar(&noStatus, "no-status", false, "hide the status bar")
	pf.BoolVar(&debug, "debug", false, "log every frame")
	pf.StringVar(&logFile, "log-file", "", "log file for the interactive explorer")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print a single frame",
		RunE:  renderFrame,
	}
	renderCmd.Flags().IntVar(&cols, "cols", 80, "terminal columns")
	renderCmd.Flags().IntVar(&rows, "rows", 24, "terminal rows")
	renderCmd.Flags().StringVar(&svgPath, "svg", "", "also write the frame as svg")
	renderCmd.Flags().Float64Var(&svgScale, "svg-scale", 4, "svg pixels per grid bit")

	benchCmd := &cobra.Command{
		Use:   "bench [tour.yaml]",
		Short: "replay a tour and report frame statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchTour,
	}
	benchCmd.Flags().IntVar(&cols, "cols", 80, "terminal columns")
	benchCmd.Flags().IntVar(&rows, "rows", 24, "terminal rows")
	benchCmd.Flags().StringVar(&jsonPath, "json", "", "write per-frame results as json")

	tourCmd := &cobra.Command{
		Use:   "tour [tour.yaml]",
		Short: "play a tour in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playTour,
	}
	tourCmd.Flags().IntVar(&cols, "cols", 80, "terminal columns")
	tourCmd.Flags().IntVar(&rows, "rows", 24, "terminal rows")
	tourCmd.Flags().IntVar(&frameRate, "fps", 15, "frame rate")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "render one view at a range of thresholds",
		RunE:  sweepThreshold,
	}
	sweepCmd.Flags().IntVar(&cols, "cols", 80, "terminal columns")
	sweepCmd.Flags().IntVar(&rows, "rows", 24, "terminal rows")
	sweepCmd.Flags().IntVar(&sweepFrom, "from", 10, "first threshold")
	sweepCmd.Flags().IntVar(&sweepTo, "to", 1000, "last threshold")
	sweepCmd.Flags().IntVar(&sweepStep, "step", 99, "threshold increment")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named views",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tX\tY")
			for _, name := range config.ListPresets() {
				v, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t[%g, %g]\t[%g, %g]\n", name, v.XMin, v.XMax, v.YMin, v.YMax)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "mandelterm.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, benchCmd, tourCmd, sweepCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers the config file, the preset and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if configFile == "" || flags.Changed("threshold") {
		cfg.Threshold = threshold
	}
	if configFile == "" || flags.Changed("workers") {
		cfg.Workers = workers
	}
	if configFile == "" || flags.Changed("cache") {
		cfg.Cache.Kind = cacheKind
	}
	if configFile == "" || flags.Changed("cache-size") {
		cfg.Cache.Size = cacheSize
	}
	if flags.Changed("no-status") {
		cfg.StatusBar = !noStatus
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}

func runExplorer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The explorer owns the terminal, so logs only go to a file.
	logger := slog.New(slog.DiscardHandler)
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}
	slog.SetDefault(logger)

	logger.Info("starting explorer", "threshold", cfg.Threshold, "cache", cfg.Cache.Kind, "view", cfg.View)
	return tui.RunInteractive(cfg, logger)
}

// newHeadless builds a session and canvas for a cols x rows terminal area.
func newHeadless(cfg *config.Config, logger *slog.Logger) (*session.Session, *viz.Canvas, error) {
	if cols <= 0 || rows <= 0 {
		return nil, nil, fmt.Errorf("invalid size %dx%d", cols, rows)
	}
	cache, err := mandel.NewCache(cfg.Cache.Kind, cfg.Cache.Size)
	if err != nil {
		return nil, nil, err
	}
	s := session.New(session.Options{
		Threshold: cfg.Threshold,
		View:      cfg.View,
		Workers:   cfg.Workers,
		Cache:     cache,
		Logger:    logger,
	})
	return s, viz.NewCanvas(cols, rows), nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)

	s, canvas, err := newHeadless(cfg, logger)
	if err != nil {
		return err
	}
	g := canvas.Grid()
	stats := s.Frame(g)

	fmt.Println(canvas.String())
	logger.Info("frame",
		"elapsed", stats.Elapsed,
		"threshold", stats.Threshold,
		"pixels", stats.Pixels,
		"workers", s.Workers(),
	)

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.GridToSVG(g, svgScale)), 0644); err != nil {
			return err
		}
		logger.Info("wrote svg", "path", svgPath)
	}
	return nil
}
