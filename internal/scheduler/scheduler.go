package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// RefreshFunc re-runs the load/summarize/render cycle once.
type RefreshFunc func() error

// Scheduler re-executes the refresh cycle on a cron schedule (watch mode).
type Scheduler struct {
	Cron    *cron.Cron
	Refresh RefreshFunc
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, refresh RefreshFunc) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Refresh: refresh,
		Ctx:     ctx,
	}
}

// Register registers the refresh task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] watch scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] watch scheduler stopped")
}

// RunNow executes the refresh task immediately (for manual trigger / startup).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Println("[INFO] running refresh")
	if err := s.Refresh(); err != nil {
		log.Printf("[ERROR] refresh: %v", err)
	}
}
