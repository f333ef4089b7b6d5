package progressrunner

import (
	"context"
	"errors"
	"log/slog"

	"github.com/target/rmsgas-api/config"
	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/domain/optimization"
	"github.com/target/rmsgas-api/internal/observability/statsd"
)

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Generator Generator
	Config    config.ProgressConfig
	Notifier  core.RunNotifier
	Metrics   statsd.Sink
	Logger    *slog.Logger
}

// Runner wires a Registrar to a Pool.
type Runner struct {
	registrar *Registrar
	pool      *Pool
	logger    *slog.Logger
}

// NewRunner creates a new progress runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Generator == nil {
		return nil, errors.New("generator is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	cfg := opts.Config
	cfg.Sanitize()

	reg, err := NewRegistrar(RegistrarOptions{
		Generator: opts.Generator,
		Notifier:  opts.Notifier,
		Metrics:   opts.Metrics,
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	pool, err := NewPool(PoolOptions{
		Concurrency: cfg.Concurrency,
		QueueSize:   cfg.QueueSize,
		RunTimeout:  cfg.RunTimeout,
		Run:         reg.Execute,
		Metrics:     opts.Metrics,
		Logger:      opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	reg.queue = pool

	return &Runner{registrar: reg, pool: pool, logger: opts.Logger}, nil
}

// Register subscribes the runner to bus.
func (r *Runner) Register(bus optimization.Subscriber) error {
	return r.registrar.Register(bus)
}

// Run starts the worker pool and runs until the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting progress runner")
	return r.pool.Run(ctx)
}
