package progressrunner

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/domain/model"
	"github.com/target/rmsgas-api/internal/domain/optimization"
	apperrors "github.com/target/rmsgas-api/internal/errors"
	obserrors "github.com/target/rmsgas-api/internal/observability/errors"
	"github.com/target/rmsgas-api/internal/observability/metrics"
	"github.com/target/rmsgas-api/internal/observability/statsd"
	"github.com/target/rmsgas-api/internal/service"
)

// SubscriberName is the name the registrar subscribes under.
const SubscriberName = "progress-generator"

const notifyTimeout = 10 * time.Second

// Generator executes one generation run.
type Generator interface {
	Run(ctx context.Context, job *model.Optimization) (service.RunSummary, error)
}

// RegistrarOptions configures a Registrar.
type RegistrarOptions struct {
	Generator Generator        // Required
	Queue     Enqueuer         // Required before Register
	Notifier  core.RunNotifier // Optional: defaults to a no-op notifier
	Metrics   statsd.Sink      // Optional
	Logger    *slog.Logger     // Optional
	Now       func() time.Time // Optional: clock override for tests
}

// Registrar connects the optimization bus to the run queue and is the error boundary of every
// run: failures are logged, counted and forwarded to the notifier, never retried or returned.
type Registrar struct {
	gen      Generator
	queue    Enqueuer
	notifier core.RunNotifier
	metrics  statsd.Sink
	logger   *slog.Logger
	now      func() time.Time

	mu         sync.Mutex
	registered bool
}

// NewRegistrar constructs a Registrar.
func NewRegistrar(opts RegistrarOptions) (*Registrar, error) {
	if opts.Generator == nil {
		return nil, errors.New("generator is required")
	}
	r := &Registrar{
		gen:      opts.Generator,
		queue:    opts.Queue,
		notifier: opts.Notifier,
		metrics:  opts.Metrics,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	if r.notifier == nil {
		r.notifier = core.NoopRunNotifier{}
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.logger = r.logger.With("component", "progress_registrar")
	if r.now == nil {
		r.now = time.Now
	}
	return r, nil
}

// Register subscribes the run queue to bus. It succeeds once per Registrar; later calls return
// a duplicate_subscription error without touching bus.
func (r *Registrar) Register(bus optimization.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.registered {
		return apperrors.DuplicateSubscription(SubscriberName)
	}
	if r.queue == nil {
		return errors.New("registrar has no queue")
	}
	if err := bus.Subscribe(SubscriberName, r.handleCreated); err != nil {
		return err
	}
	r.registered = true
	return nil
}

func (r *Registrar) handleCreated(ctx context.Context, job *model.Optimization) error {
	if err := r.queue.Enqueue(job); err != nil {
		r.logger.WarnContext(ctx, "progress run rejected", "optimization_id", job.ID, "error", err)
		metrics.EmitRunLifecycle(r.metrics, metrics.RunMetric{Status: metrics.StatusRejected, Err: err})
		r.notify(ctx, core.RunOutcome{
			OptimizationID: job.ID,
			Status:         core.RunStatusFailed,
			ErrorKind:      "queue_full",
			Error:          err.Error(),
			FinishedAt:     r.now().UTC(),
		})
		return err
	}
	return nil
}

// Execute runs the generator for job and reports the outcome. It is the pool's RunFunc.
func (r *Registrar) Execute(ctx context.Context, job *model.Optimization) {
	start := r.now()
	summary, err := r.gen.Run(ctx, job)
	elapsed := r.now().Sub(start)

	outcome := core.RunOutcome{
		OptimizationID: job.ID,
		RunID:          summary.RunID,
		Status:         core.RunStatusCompleted,
		Inserted:       summary.Inserted,
		Duration:       elapsed,
		FinishedAt:     r.now().UTC(),
	}
	log := r.logger.With("optimization_id", job.ID, "run_id", summary.RunID)

	if err != nil {
		kind := obserrors.Classify(err)
		outcome.Status = core.RunStatusFailed
		outcome.ErrorKind = kind
		outcome.Error = err.Error()
		log.ErrorContext(ctx, "progress run failed", "error_kind", kind, "error", err, "elapsed", elapsed)
		metrics.EmitRunLifecycle(r.metrics, metrics.RunMetric{
			Status: metrics.StatusFailed, Duration: elapsed, Err: err,
		})
	} else {
		log.InfoContext(ctx, "progress run completed", "inserted", summary.Inserted, "elapsed", elapsed)
		metrics.EmitRunLifecycle(r.metrics, metrics.RunMetric{
			Status: metrics.StatusCompleted, Duration: elapsed, Rows: summary.Inserted,
		})
	}

	r.notify(ctx, outcome)
}

// notify outlives the run deadline so timed-out runs are still reported.
func (r *Registrar) notify(ctx context.Context, outcome core.RunOutcome) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := r.notifier.NotifyRun(nctx, outcome); err != nil {
		r.logger.WarnContext(ctx, "run notification failed",
			"optimization_id", outcome.OptimizationID,
			"run_id", outcome.RunID,
			"error", err,
		)
	}
}
