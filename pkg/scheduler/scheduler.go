package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Job defines the work that should be executed by the scheduler.
type Job func(context.Context) error

// DefaultParser provides standard cron parsing support including optional
// seconds and predefined descriptors such as "@daily".
var DefaultParser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

// Scheduler orchestrates the execution of a job according to a cron expression.
type Scheduler struct {
	cron        *cron.Cron
	expression  string
	job         Job
	logger      *slog.Logger
	jobTimeout  time.Duration
	started     bool
	startStopMu sync.Mutex
	entryID     cron.EntryID
}

// Option configures the scheduler.
type Option func(*Scheduler)

// WithCron injects a preconfigured cron engine to use for scheduling.
func WithCron(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.cron = c
		}
	}
}

// WithLogger overrides the scheduler logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithJobTimeout configures a timeout applied to each job execution.
func WithJobTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		if timeout > 0 {
			s.jobTimeout = timeout
		}
	}
}

// New creates a scheduler for the provided cron expression and job.
func New(expression string, job Job, opts ...Option) (*Scheduler, error) {
	if expression == "" {
		return nil, errors.New("cron expression cannot be empty")
	}

	if job == nil {
		return nil, errors.New("job cannot be nil")
	}

	scheduler := &Scheduler{
		expression: expression,
		job:        job,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(scheduler)
	}

	if scheduler.cron == nil {
		scheduler.cron = cron.New(cron.WithParser(DefaultParser))
	}

	return scheduler, nil
}

// Start registers the job and begins executing it according to the cron
// expression. Calling Start twice is an error.
func (s *Scheduler) Start(ctx context.Context) error {
	s.startStopMu.Lock()
	defer s.startStopMu.Unlock()

	if s.started {
		return errors.New("scheduler already started")
	}

	entryID, err := s.cron.AddFunc(s.expression, func() {
		s.run(ctx)
	})

	if err != nil {
		return fmt.Errorf("schedule [%s]: %w", s.expression, err)
	}

	s.entryID = entryID
	s.started = true
	s.cron.Start()

	s.logger.Info("scheduler started", slog.String("expression", s.expression))

	return nil
}

// Stop halts the scheduler and waits for any running job to finish.
func (s *Scheduler) Stop() {
	s.startStopMu.Lock()
	defer s.startStopMu.Unlock()

	if !s.started {
		return
	}

	<-s.cron.Stop().Done()
	s.started = false

	s.logger.Info("scheduler stopped", slog.String("expression", s.expression))
}

func (s *Scheduler) run(ctx context.Context) {
	jobCtx := ctx
	cancel := func() {}

	if s.jobTimeout > 0 {
		jobCtx, cancel = context.WithTimeout(ctx, s.jobTimeout)
	}

	defer cancel()

	if err := s.job(jobCtx); err != nil {
		s.logger.Error("scheduled job failed", "error", err)
	}
}
