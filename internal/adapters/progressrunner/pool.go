// Package progressrunner executes generation runs for created optimizations in the background.
package progressrunner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/target/rmsgas-api/internal/domain/model"
	"github.com/target/rmsgas-api/internal/observability/metrics"
	"github.com/target/rmsgas-api/internal/observability/statsd"
	"golang.org/x/sync/errgroup"
)

// ErrQueueFull is returned by Enqueue when every queue slot is taken.
var ErrQueueFull = errors.New("progress run queue is full")

// RunFunc executes one run. It owns error reporting; the pool ignores the outcome.
type RunFunc func(ctx context.Context, job *model.Optimization)

// Enqueuer accepts jobs without blocking.
type Enqueuer interface {
	Enqueue(job *model.Optimization) error
}

// PoolOptions configures a Pool.
type PoolOptions struct {
	Concurrency int           // number of worker goroutines; defaults to 1
	QueueSize   int           // queued runs waiting for a worker; defaults to Concurrency
	RunTimeout  time.Duration // deadline of one run; zero disables it
	Run         RunFunc       // Required
	Metrics     statsd.Sink
	Logger      *slog.Logger
}

// Pool is a bounded worker pool fed by a bounded queue.
type Pool struct {
	queue      chan *model.Optimization
	workers    int
	runTimeout time.Duration
	run        RunFunc
	metrics    statsd.Sink
	logger     *slog.Logger
}

var _ Enqueuer = (*Pool)(nil)

// NewPool constructs a Pool.
func NewPool(opts PoolOptions) (*Pool, error) {
	if opts.Run == nil {
		return nil, errors.New("run func is required")
	}
	workers := opts.Concurrency
	if workers <= 0 {
		workers = 1
	}
	size := opts.QueueSize
	if size <= 0 {
		size = workers
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		queue:      make(chan *model.Optimization, size),
		workers:    workers,
		runTimeout: opts.RunTimeout,
		run:        opts.Run,
		metrics:    opts.Metrics,
		logger:     logger.With("component", "progress_pool"),
	}, nil
}

// Enqueue schedules job without waiting. It returns ErrQueueFull when the queue is saturated.
func (p *Pool) Enqueue(job *model.Optimization) error {
	if job == nil {
		return errors.New("job is required")
	}
	select {
	case p.queue <- job:
		p.emitDepth()
		return nil
	default:
		return ErrQueueFull
	}
}

// Pending returns the number of queued runs.
func (p *Pool) Pending() int {
	return len(p.queue)
}

// Run starts the workers and blocks until ctx is cancelled. Runs still queued at that point
// are abandoned. Returns nil on graceful shutdown.
func (p *Pool) Run(ctx context.Context) error {
	p.logger.InfoContext(ctx, "starting progress pool", "workers", p.workers, "queue_size", cap(p.queue))

	g, gctx := errgroup.WithContext(ctx)
	for range p.workers {
		g.Go(func() error {
			p.workerLoop(gctx)
			return nil
		})
	}
	err := g.Wait()

	if abandoned := len(p.queue); abandoned > 0 {
		p.logger.WarnContext(ctx, "progress pool stopped with queued runs", "abandoned", abandoned)
	}
	if err != nil {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(ctxErr, context.Canceled) {
		return ctxErr
	}
	return nil
}

func (p *Pool) workerLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-p.queue:
			p.emitDepth()
			p.execute(ctx, job)
		}
	}
}

func (p *Pool) execute(ctx context.Context, job *model.Optimization) {
	runCtx := ctx
	if p.runTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.runTimeout)
		defer cancel()
	}

	defer func() {
		if rec := recover(); rec != nil {
			p.logger.ErrorContext(ctx, "progress run panicked", "optimization_id", job.ID, "panic", rec)
		}
	}()
	p.run(runCtx, job)
}

func (p *Pool) emitDepth() {
	if p.metrics == nil {
		return
	}
	p.metrics.Gauge(metrics.QueueDepth, float64(len(p.queue)), nil)
}
