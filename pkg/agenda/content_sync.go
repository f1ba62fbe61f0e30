package agenda

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	baseGorm "gorm.io/gorm"

	"github.com/devfolio/database"
	"github.com/devfolio/database/repository"
	"github.com/devfolio/handler/payload"
	"github.com/devfolio/metal/env"
	"github.com/devfolio/pkg/portal"
	"github.com/devfolio/pkg/scheduler"
)

// ContentSync mirrors the JSON fixtures into the database on a cron, so the
// DB-backed providers never drift from the authored content.
type ContentSync struct {
	env      *env.Environment
	db       *database.Connection
	logger   *slog.Logger
	engine   *scheduler.Scheduler
	fixtures string
}

// Option configures the sync job.
type Option func(*ContentSync)

// WithLogger overrides the sync logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *ContentSync) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewContentSync creates the sync job from the content environment.
func NewContentSync(environment *env.Environment, db *database.Connection, opts ...Option) (*ContentSync, error) {
	if environment == nil {
		return nil, errors.New("environment cannot be nil")
	}

	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}

	sync := &ContentSync{
		env:      environment,
		db:       db,
		logger:   slog.Default(),
		fixtures: environment.Content.FixturesDir,
	}

	for _, opt := range opts {
		opt(sync)
	}

	engine, err := scheduler.New(
		environment.Content.SyncCron,
		sync.Refresh,
		scheduler.WithLogger(sync.logger),
		scheduler.WithJobTimeout(time.Minute),
	)

	if err != nil {
		return nil, err
	}

	sync.engine = engine

	return sync, nil
}

// Start schedules the refresh according to the configured cron expression.
func (s *ContentSync) Start(ctx context.Context) error {
	if s == nil || s.engine == nil {
		return errors.New("content sync is not initialised")
	}

	return s.engine.Start(ctx)
}

// Stop halts the schedule and waits for a running refresh to finish.
func (s *ContentSync) Stop() {
	if s == nil || s.engine == nil {
		return
	}

	s.engine.Stop()
}

// Refresh replaces the mirrored rows with the current fixture content inside
// one transaction. A broken fixture leaves the previous mirror untouched.
func (s *ContentSync) Refresh(ctx context.Context) error {
	experiences, err := portal.ParseJsonFile[payload.ExperienceResponse](
		filepath.Join(s.fixtures, "experience.json"),
	)

	if err != nil {
		return fmt.Errorf("content sync: %w", err)
	}

	projects, err := portal.ParseJsonFile[payload.ProjectsResponse](
		filepath.Join(s.fixtures, "projects.json"),
	)

	if err != nil {
		return fmt.Errorf("content sync: %w", err)
	}

	err = s.db.Transaction(func(tx *baseGorm.DB) error {
		if err := tx.WithContext(ctx).Exec("DELETE FROM experience_roles").Error; err != nil {
			return err
		}

		if err := tx.WithContext(ctx).Exec("DELETE FROM experience_highlights").Error; err != nil {
			return err
		}

		if err := tx.WithContext(ctx).Exec("DELETE FROM experiences").Error; err != nil {
			return err
		}

		if err := tx.WithContext(ctx).Exec("DELETE FROM projects").Error; err != nil {
			return err
		}

		conn := database.NewConnectionFromGorm(tx)
		experienceRepo := repository.Experiences{DB: conn}
		projectRepo := repository.Projects{DB: conn}

		for i, entry := range experiences.Data {
			if _, err := experienceRepo.Create(payload.GetExperienceAttrs(entry, i)); err != nil {
				return err
			}
		}

		for i, entry := range projects.Data {
			if _, err := projectRepo.Create(payload.GetProjectAttrs(entry, i)); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("content sync: %w", err)
	}

	s.logger.Info(
		"content sync completed",
		slog.Int("experiences", len(experiences.Data)),
		slog.Int("projects", len(projects.Data)),
	)

	return nil
}
