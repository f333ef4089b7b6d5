package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/target/rmsgas-api/config"
	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/domain/model"
	"github.com/target/rmsgas-api/internal/observability/metrics"
	"github.com/target/rmsgas-api/internal/observability/statsd"
)

// SweeperServiceOptions groups dependencies for SweeperService.
type SweeperServiceOptions struct {
	Repo    core.OptimizationRepository // Required: job store
	Config  config.SweeperConfig        // Required: sweeper configuration
	Logger  *slog.Logger                // Optional: structured logger
	Metrics statsd.Sink                 // Optional: metrics sink (StatsD-compatible)
	Now     func() time.Time            // Optional: clock override for tests
}

// SweeperService reports jobs whose generation stalled before reaching 100 percent.
// Generation runs are fire-and-forget, so this is the only place their silent failures surface.
// It never modifies a job.
type SweeperService struct {
	repo    core.OptimizationRepository
	config  config.SweeperConfig
	logger  *slog.Logger
	metrics statsd.Sink
	now     func() time.Time
}

// NewSweeperService constructs a new SweeperService.
func NewSweeperService(opts SweeperServiceOptions) (*SweeperService, error) {
	if opts.Repo == nil {
		return nil, errors.New("OptimizationRepository is required")
	}

	cfg := opts.Config
	cfg.Sanitize()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "sweeper_service")
	logger.Debug("SweeperService initialized",
		"schedule", cfg.Schedule,
		"stale_after", cfg.StaleAfter,
		"batch_size", cfg.BatchSize,
	)

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SweeperService{
		repo:    opts.Repo,
		config:  cfg,
		logger:  logger,
		metrics: opts.Metrics,
		now:     now,
	}, nil
}

// Sweep logs every incomplete job not updated within StaleAfter and returns how many it found.
func (s *SweeperService) Sweep(ctx context.Context) (int, error) {
	stale, err := s.repo.ListStale(ctx, model.StaleOptimizationQuery{
		Before: s.now().Add(-s.config.StaleAfter),
		Limit:  s.config.BatchSize,
	})
	if err != nil {
		return 0, fmt.Errorf("list stale optimizations: %w", err)
	}

	for _, opt := range stale {
		s.logger.WarnContext(ctx, "optimization stalled before completion",
			"optimization_id", opt.ID,
			"portfolio_id", opt.PortfolioID,
			"percentage", opt.Percentage,
			"updated_at", opt.UpdatedAt,
		)
	}
	metrics.EmitStale(s.metrics, len(stale))

	if len(stale) > 0 {
		s.logger.InfoContext(ctx, "sweep found stalled optimizations", "count", len(stale))
	}
	return len(stale), nil
}

// Schedule returns the cron expression the sweep runs on.
func (s *SweeperService) Schedule() string {
	return s.config.Schedule
}
