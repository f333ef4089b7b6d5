// Package sweeper provides adapters for running the stale run sweeper on a cron schedule.
package sweeper

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
	"github.com/target/rmsgas-api/config"
	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/data"
	"github.com/target/rmsgas-api/internal/observability/statsd"
	"github.com/target/rmsgas-api/internal/service"
)

// Sweeper performs one sweep.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Runner runs a Sweeper on a cron schedule.
type Runner struct {
	sweeper  Sweeper
	schedule cron.Schedule
	expr     string
	logger   *slog.Logger
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	DB      *sql.DB
	Config  config.SweeperConfig
	Logger  *slog.Logger
	Metrics statsd.Sink

	// Optional dependency injection for testing/decoupling
	Repo    core.OptimizationRepository
	Sweeper Sweeper
}

// NewRunner creates a new sweeper runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.DB == nil && opts.Repo == nil && opts.Sweeper == nil {
		return nil, errors.New("database connection is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	opts.Config.Sanitize()

	schedule, err := cron.ParseStandard(opts.Config.Schedule)
	if err != nil {
		return nil, fmt.Errorf("parse sweeper schedule %q: %w", opts.Config.Schedule, err)
	}

	sw := opts.Sweeper
	if sw == nil {
		repo := opts.Repo
		if repo == nil {
			repo = data.NewOptimizationRepo(opts.DB)
		}
		svc, svcErr := service.NewSweeperService(service.SweeperServiceOptions{
			Repo:    repo,
			Config:  opts.Config,
			Logger:  opts.Logger,
			Metrics: opts.Metrics,
		})
		if svcErr != nil {
			return nil, fmt.Errorf("wire sweeper service: %w", svcErr)
		}
		sw = svc
	}

	return &Runner{
		sweeper:  sw,
		schedule: schedule,
		expr:     opts.Config.Schedule,
		logger:   opts.Logger.With("component", "sweeper_runner"),
	}, nil
}

// Run sweeps once immediately, then on every scheduled tick until the context is cancelled.
// Overlapping ticks are skipped. Returns nil on graceful shutdown.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting sweeper runner", "schedule", r.expr)

	r.sweep(ctx)

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(r.schedule, cron.FuncJob(func() { r.sweep(ctx) }))
	c.Start()

	<-ctx.Done()
	stopped := c.Stop()
	<-stopped.Done()

	r.logger.InfoContext(ctx, "sweeper runner stopping", "reason", ctx.Err())
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return ctx.Err()
}

func (r *Runner) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := r.sweeper.Sweep(ctx); err != nil {
		r.logger.ErrorContext(ctx, "sweep failed", "error", err)
	}
}
