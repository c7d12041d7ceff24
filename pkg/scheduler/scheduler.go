package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler owns the process-wide recurring jobs: the daily expiry scan, the
// daily space scan and the monthly savings report. Schedules are evaluated in
// the configured regional time zone, not UTC.
type Scheduler struct {
	mu      sync.Mutex
	running bool
	cron    *cron.Cron
	entries map[string]cron.EntryID
	jobs    *Jobs
	log     zerolog.Logger
}

func New(loc *time.Location, jobs *Jobs, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		entries: make(map[string]cron.EntryID),
		jobs:    jobs,
		log:     log,
	}
}

// Start registers the three jobs and starts the runner. Registering an id
// that already exists replaces its schedule instead of duplicating it, so a
// stop/start cycle keeps exactly one entry per job. Calling Start on a
// running scheduler is a no-op.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn().Msg("scheduler already running")
		return nil
	}

	registrations := []struct {
		id   string
		spec string
		run  func()
	}{
		{"check_expiring_items", "0 9 * * *", func() { s.jobs.CheckExpiringItems(context.Background()) }},
		{"check_space_usage", "0 9 * * *", func() { s.jobs.CheckSpaceUsage(context.Background()) }},
		{"send_monthly_stats", "0 10 1 * *", func() { s.jobs.SendMonthlyStats(context.Background()) }},
	}

	for _, reg := range registrations {
		if existing, ok := s.entries[reg.id]; ok {
			s.cron.Remove(existing)
		}
		entryID, err := s.cron.AddFunc(reg.spec, reg.run)
		if err != nil {
			return fmt.Errorf("register job %s: %w", reg.id, err)
		}
		s.entries[reg.id] = entryID
	}

	s.cron.Start()
	s.running = true
	s.log.Info().Int("jobs", len(s.entries)).Msg("scheduler started")
	return nil
}

// Stop halts the runner and waits for in-flight jobs to finish. Calling Stop
// on a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		s.log.Warn().Msg("scheduler not running")
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	s.log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
