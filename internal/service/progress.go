package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/target/rmsgas-api/config"
	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

const (
	minVolume = 500000
	maxVolume = 1000000
	// vesselCount bounds the synthetic vessel suffix to 0..99.
	vesselCount  = 100
	mmbtuPerUnit = 1.05
	mmscfPerUnit = 0.95
)

// RandSource yields uniform samples in [0, 1).
type RandSource interface {
	Float64() float64
}

// globalRand draws from the math/rand/v2 top-level source, which is safe for concurrent use.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// RunSummary describes a finished generation run. OptimizationID and RunID are set even when
// the run fails.
type RunSummary struct {
	OptimizationID int64  `json:"optimization_id"`
	RunID          string `json:"run_id"`
	Inserted       int64  `json:"inserted"`
	TotalDays      int    `json:"total_days"`
}

// ProgressGeneratorOptions groups dependencies for ProgressGenerator.
type ProgressGeneratorOptions struct {
	Optimizations core.OptimizationRepository // Required: job store
	Portfolios    core.PortfolioLookup        // Required: portfolio resolution
	Finalizer     core.RunFinalizer           // Required: terminal transaction
	Config        config.ProgressConfig       // Optional: cadence, timeouts and RGT tag
	Rand          RandSource                  // Optional: defaults to math/rand/v2
	NewRunID      func() string               // Optional: defaults to uuid.NewString
	Logger        *slog.Logger                // Optional: structured logger
}

// ProgressGenerator synthesizes one result row per portfolio day and advances the job's
// completion percentage as it goes.
type ProgressGenerator struct {
	optimizations core.OptimizationRepository
	portfolios    core.PortfolioLookup
	finalizer     core.RunFinalizer
	cfg           config.ProgressConfig
	rand          RandSource
	newRunID      func() string
	logger        *slog.Logger
}

// NewProgressGenerator constructs a new ProgressGenerator.
func NewProgressGenerator(opts ProgressGeneratorOptions) (*ProgressGenerator, error) {
	if opts.Optimizations == nil {
		return nil, errors.New("OptimizationRepository is required")
	}
	if opts.Portfolios == nil {
		return nil, errors.New("PortfolioLookup is required")
	}
	if opts.Finalizer == nil {
		return nil, errors.New("RunFinalizer is required")
	}

	cfg := opts.Config
	cfg.Sanitize()

	g := &ProgressGenerator{
		optimizations: opts.Optimizations,
		portfolios:    opts.Portfolios,
		finalizer:     opts.Finalizer,
		cfg:           cfg,
		rand:          opts.Rand,
		newRunID:      opts.NewRunID,
		logger:        opts.Logger,
	}
	if g.rand == nil {
		g.rand = globalRand{}
	}
	if g.newRunID == nil {
		g.newRunID = uuid.NewString
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	g.logger = g.logger.With("component", "progress_generator")
	return g, nil
}

// Run generates the results of job. Nothing is written when the job, its portfolio or its date
// range cannot be resolved. The rows and the terminal 100 percent update are committed together.
func (g *ProgressGenerator) Run(ctx context.Context, job *model.Optimization) (RunSummary, error) {
	summary := RunSummary{RunID: g.newRunID()}
	if job == nil {
		return summary, apperrors.Validation("optimization is required")
	}
	summary.OptimizationID = job.ID
	log := g.logger.With("optimization_id", job.ID, "run_id", summary.RunID)

	current, err := withOpTimeout(ctx, g.cfg.OpTimeout, func(ctx context.Context) (*model.Optimization, error) {
		return g.optimizations.GetByID(ctx, job.ID)
	})
	if err != nil {
		return summary, classifyStoreErr(err, "load optimization")
	}

	rng, err := g.resolveRange(ctx, current.PortfolioID)
	if err != nil {
		return summary, err
	}
	total := rng.Days()
	summary.TotalDays = total
	log.DebugContext(ctx, "generation started",
		"portfolio_id", current.PortfolioID,
		"start", rng.Start.Format(model.DateLayout),
		"days", total,
	)

	rows := make([]*model.OptResult, 0, total)
	version := current.Version
	for k := 1; k <= total; k++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return summary, classifyStoreErr(ctxErr, "generate results")
		}
		rows = append(rows, g.synthesize(current, rng.Start.AddDate(0, 0, k-1)))

		if k == total || k%g.cfg.UpdateEvery != 0 {
			continue
		}
		pct := model.RoundPercentage(float64(k) / float64(total) * model.MaxPercentage)
		upd, updErr := withOpTimeout(ctx, g.cfg.OpTimeout, func(ctx context.Context) (*model.Optimization, error) {
			return g.optimizations.UpdateProgress(ctx, model.ProgressUpdate{
				OptimizationID:  current.ID,
				Percentage:      pct,
				ExpectedVersion: version,
			})
		})
		if updErr != nil {
			return summary, classifyStoreErr(updErr, "update progress")
		}
		version = upd.Version
	}

	_, err = withOpTimeout(ctx, g.cfg.OpTimeout, func(ctx context.Context) (*model.Optimization, error) {
		return g.finalizer.CompleteRun(ctx, model.CompleteRunParams{
			Rows: rows,
			Progress: model.ProgressUpdate{
				OptimizationID:  current.ID,
				Percentage:      model.MaxPercentage,
				IsCompleted:     true,
				ExpectedVersion: version,
			},
		})
	})
	if err != nil {
		return summary, classifyStoreErr(err, "complete run")
	}

	summary.Inserted = int64(len(rows))
	log.InfoContext(ctx, "generation completed", "inserted", summary.Inserted)
	return summary, nil
}

func (g *ProgressGenerator) resolveRange(ctx context.Context, portfolioID string) (model.DateRange, error) {
	p, err := withOpTimeout(ctx, g.cfg.OpTimeout, func(ctx context.Context) (*model.Portfolio, error) {
		return g.portfolios.GetByID(ctx, portfolioID)
	})
	switch {
	case apperrors.IsNotFound(err):
		return model.DateRange{}, apperrors.Wrap(err, apperrors.ErrCodeNotFound, "portfolio not found")
	case err != nil:
		return model.DateRange{}, classifyStoreErr(err, "load portfolio")
	case p == nil:
		return model.DateRange{}, apperrors.NotFound("portfolio not found")
	}

	rng, err := p.Range()
	switch {
	case errors.Is(err, model.ErrInvalidRange):
		return model.DateRange{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid range")
	case err != nil:
		return model.DateRange{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid date")
	}
	return rng, nil
}

func (g *ProgressGenerator) synthesize(job *model.Optimization, day time.Time) *model.OptResult {
	volume := int64(math.Floor(g.rand.Float64()*(maxVolume-minVolume) + minVolume))
	vessel := int(math.Floor(g.rand.Float64() * vesselCount))
	return &model.OptResult{
		OptimizationID:  job.ID,
		DeliveryDate:    day,
		RGT:             g.cfg.DefaultRGT,
		Shipper:         job.Shipper,
		Volume:          volume,
		UntouchedVolume: volume,
		VesselName:      "Vessel-" + strconv.Itoa(vessel),
		MMBTU:           int64(math.Floor(float64(volume) * mmbtuPerUnit)),
		MMSCF:           int64(math.Floor(float64(volume) * mmscfPerUnit)),
	}
}

func withOpTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if d <= 0 {
		return fn(ctx)
	}
	opCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return fn(opCtx)
}

// classifyStoreErr tags a failed step with its error kind. AppErrors keep their code.
func classifyStoreErr(err error, op string) error {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Timeout(err, op)
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, op+" canceled")
	default:
		return apperrors.Persistence(err, op+" failed")
	}
}
