package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/target/rmsgas-api/config"
	"github.com/target/rmsgas-api/internal/adapters/sweeper"
	"github.com/target/rmsgas-api/internal/observability/statsd"
)

// SweeperConfig contains configuration for the stale run sweeper.
type SweeperConfig struct {
	DB      *sql.DB
	Logger  *slog.Logger
	Config  config.SweeperConfig
	Metrics statsd.Sink
}

// RunSweeper starts the stale run sweeper.
func RunSweeper(ctx context.Context, cfg SweeperConfig) error {
	runner, err := sweeper.NewRunner(sweeper.RunnerOptions{
		DB:      cfg.DB,
		Config:  cfg.Config,
		Logger:  cfg.Logger,
		Metrics: cfg.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create sweeper runner: %w", err)
	}

	return runner.Run(ctx)
}
