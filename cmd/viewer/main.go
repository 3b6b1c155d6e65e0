package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"SeriesScope/internal/config"
	"SeriesScope/internal/loader"
	"SeriesScope/internal/plot"
	"SeriesScope/internal/scheduler"
	"SeriesScope/internal/series"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SeriesScope starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Chart.OutputPath), 0o755); err != nil {
		log.Fatalf("[FATAL] create output dir: %v", err)
	}
	renderer := plot.NewFileRenderer(cfg.Chart.OutputPath, cfg.Chart.Width, cfg.Chart.Height)

	refresh := func() error {
		return refreshOnce(cfg, renderer)
	}

	if err := refresh(); err != nil {
		log.Fatalf("[FATAL] initial refresh: %v", err)
	}
	log.Printf("[INFO] chart written to %s", cfg.Chart.OutputPath)

	// One-shot mode when no watch schedule is configured
	if cfg.Watch.Cron == "" {
		log.Println("[INFO] SeriesScope done")
		return
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, refresh)
	if err := sched.Register(cfg.Watch.Cron); err != nil {
		log.Fatalf("[FATAL] register watch task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] SeriesScope is watching. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SeriesScope stopped")
}

func refreshOnce(cfg *config.Config, renderer series.Renderer) error {
	opts := loader.DefaultOptions()
	opts.DateColumn = cfg.Input.DateColumn
	opts.ValueColumn = cfg.Input.ValueColumn
	opts.DateFormat = cfg.Input.DateFormat

	pts, err := loader.Load(cfg.Input.CSVPath, opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Input.CSVPath, err)
	}

	var seriesOpts []series.Option
	if cfg.Series.Name != "" {
		seriesOpts = append(seriesOpts, series.WithName(cfg.Series.Name))
	}
	ts, err := series.New(pts, seriesOpts...)
	if err != nil {
		return fmt.Errorf("build series: %w", err)
	}

	sum := ts.Summary()
	log.Printf("[INFO] %s | mean=%.4f median=%.4f std=%.4f min=%.4f max=%.4f",
		ts, sum.Mean, sum.Median, sum.Std, sum.Min, sum.Max)

	if err := ts.Plot(renderer); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}
