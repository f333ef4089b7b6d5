package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/rmsgas-api/config"
	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
	"github.com/target/rmsgas-api/internal/mocks"
	"github.com/target/rmsgas-api/internal/testutil"
	"go.uber.org/mock/gomock"
)

// seqRand replays a fixed sequence of samples, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type progressFixture struct {
	opts       *mocks.MockOptimizationRepository
	portfolios *mocks.MockPortfolioLookup
	finalizer  *mocks.MockRunFinalizer
	gen        *ProgressGenerator
}

func newProgressFixture(t *testing.T, cfg config.ProgressConfig) *progressFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &progressFixture{
		opts:       mocks.NewMockOptimizationRepository(ctrl),
		portfolios: mocks.NewMockPortfolioLookup(ctrl),
		finalizer:  mocks.NewMockRunFinalizer(ctrl),
	}
	gen, err := NewProgressGenerator(ProgressGeneratorOptions{
		Optimizations: f.opts,
		Portfolios:    f.portfolios,
		Finalizer:     f.finalizer,
		Config:        cfg,
		Rand:          &seqRand{vals: []float64{0, 0, 0.5, 0.5}},
		NewRunID:      func() string { return "run-1" },
	})
	require.NoError(t, err)
	f.gen = gen
	return f
}

func (f *progressFixture) expectJob(job *model.Optimization, p *model.Portfolio) {
	f.opts.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil)
	f.portfolios.EXPECT().GetByID(gomock.Any(), job.PortfolioID).Return(p, nil)
}

func (f *progressFixture) expectProgress(id int64, pct float64, version int) *gomock.Call {
	return f.opts.EXPECT().
		UpdateProgress(gomock.Any(), model.ProgressUpdate{
			OptimizationID: id, Percentage: pct, ExpectedVersion: version,
		}).
		Return(&model.Optimization{ID: id, Percentage: pct, Version: version + 1}, nil)
}

func (f *progressFixture) captureComplete(out *model.CompleteRunParams) *gomock.Call {
	return f.finalizer.EXPECT().CompleteRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params model.CompleteRunParams) (*model.Optimization, error) {
			*out = params
			return &model.Optimization{
				ID:          params.Progress.OptimizationID,
				Percentage:  params.Progress.Percentage,
				IsCompleted: model.CompletionFlag(params.Progress.IsCompleted),
			}, nil
		})
}

func job(id int64) *model.Optimization {
	return &model.Optimization{ID: id, PortfolioID: "P1", ScenarioID: "S1", Shipper: "ACME", Version: 1}
}

func TestNewProgressGenerator_RequiresDependencies(t *testing.T) {
	_, err := NewProgressGenerator(ProgressGeneratorOptions{})
	require.Error(t, err)
}

func TestProgressGenerator_ThreeDayRange(t *testing.T) {
	f := newProgressFixture(t, config.ProgressConfig{})
	f.expectJob(job(1), testutil.Portfolio("P1", "2024-01-01", "2024-01-03"))

	var done model.CompleteRunParams
	gomock.InOrder(
		f.expectProgress(1, 33.33, 1),
		f.expectProgress(1, 66.67, 2),
		f.captureComplete(&done),
	)

	summary, err := f.gen.Run(context.Background(), job(1))
	require.NoError(t, err)
	assert.Equal(t, RunSummary{OptimizationID: 1, RunID: "run-1", Inserted: 3, TotalDays: 3}, summary)

	assert.Equal(t, model.ProgressUpdate{
		OptimizationID: 1, Percentage: 100, IsCompleted: true, ExpectedVersion: 3,
	}, done.Progress)

	require.Len(t, done.Rows, 3)
	for i, want := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		row := done.Rows[i]
		assert.Equal(t, testutil.Date(want), row.DeliveryDate)
		assert.Equal(t, int64(1), row.OptimizationID)
		assert.Equal(t, "ACME", row.Shipper)
		assert.Equal(t, model.DefaultRGT, row.RGT)
	}
}

func TestProgressGenerator_SynthesizedValues(t *testing.T) {
	f := newProgressFixture(t, config.ProgressConfig{DefaultRGT: "RGTX"})
	f.expectJob(job(7), testutil.Portfolio("P1", "2024-02-01", "2024-02-02"))
	f.expectProgress(7, 50, 1)

	var done model.CompleteRunParams
	f.captureComplete(&done)

	_, err := f.gen.Run(context.Background(), job(7))
	require.NoError(t, err)
	require.Len(t, done.Rows, 2)

	first := done.Rows[0]
	assert.Equal(t, int64(500000), first.Volume)
	assert.Equal(t, "Vessel-0", first.VesselName)
	assert.Equal(t, "RGTX", first.RGT)

	for _, row := range done.Rows {
		assert.GreaterOrEqual(t, row.Volume, int64(500000))
		assert.Less(t, row.Volume, int64(1000000))
		assert.Equal(t, row.Volume, row.UntouchedVolume)
		assert.Equal(t, int64(math.Floor(float64(row.Volume)*1.05)), row.MMBTU)
		assert.Equal(t, int64(math.Floor(float64(row.Volume)*0.95)), row.MMSCF)
		assert.True(t, strings.HasPrefix(row.VesselName, "Vessel-"))
	}
	assert.Equal(t, "Vessel-50", done.Rows[1].VesselName)
}

func TestProgressGenerator_SingleDayGoesStraightToComplete(t *testing.T) {
	f := newProgressFixture(t, config.ProgressConfig{})
	f.expectJob(job(2), testutil.Portfolio("P1", "2024-06-15", "2024-06-15"))

	var done model.CompleteRunParams
	f.captureComplete(&done)

	summary, err := f.gen.Run(context.Background(), job(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Inserted)
	require.Len(t, done.Rows, 1)
	assert.Equal(t, testutil.Date("2024-06-15"), done.Rows[0].DeliveryDate)
	assert.InDelta(t, 100.0, done.Progress.Percentage, 0)
	assert.True(t, done.Progress.IsCompleted)
	assert.Equal(t, 1, done.Progress.ExpectedVersion)
}

func TestProgressGenerator_PercentagesStrictlyIncrease(t *testing.T) {
	f := newProgressFixture(t, config.ProgressConfig{})
	f.expectJob(job(3), testutil.Portfolio("P1", "2024-01-01", "2024-01-07"))

	var seen []float64
	f.opts.EXPECT().UpdateProgress(gomock.Any(), gomock.Any()).Times(6).
		DoAndReturn(func(_ context.Context, upd model.ProgressUpdate) (*model.Optimization, error) {
			assert.False(t, upd.IsCompleted)
			seen = append(seen, upd.Percentage)
			return &model.Optimization{ID: 3, Version: upd.ExpectedVersion + 1}, nil
		})
	var done model.CompleteRunParams
	f.captureComplete(&done)

	_, err := f.gen.Run(context.Background(), job(3))
	require.NoError(t, err)

	seen = append(seen, done.Progress.Percentage)
	require.Len(t, seen, 7)
	for k := 1; k <= 7; k++ {
		assert.InDelta(t, model.RoundPercentage(float64(k)/7*100), seen[k-1], 1e-9)
		if k > 1 {
			assert.Greater(t, seen[k-1], seen[k-2])
		}
	}
	assert.InDelta(t, 100.0, seen[6], 0)
}

func TestProgressGenerator_UpdateCadence(t *testing.T) {
	f := newProgressFixture(t, config.ProgressConfig{UpdateEvery: 2})
	f.expectJob(job(4), testutil.Portfolio("P1", "2024-03-01", "2024-03-05"))

	var done model.CompleteRunParams
	gomock.InOrder(
		f.expectProgress(4, 40, 1),
		f.expectProgress(4, 80, 2),
		f.captureComplete(&done),
	)

	summary, err := f.gen.Run(context.Background(), job(4))
	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalDays)
	assert.Len(t, done.Rows, 5)
	assert.Equal(t, 3, done.Progress.ExpectedVersion)
}

func TestProgressGenerator_RejectsBeforeWriting(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *progressFixture)
		check   func(t *testing.T, err error)
		message string
	}{
		{
			name: "inverted range",
			setup: func(f *progressFixture) {
				f.expectJob(job(5), testutil.Portfolio("P1", "2024-01-03", "2024-01-01"))
			},
			check:   func(t *testing.T, err error) { assert.True(t, apperrors.IsValidation(err)) },
			message: "invalid range",
		},
		{
			name: "malformed date",
			setup: func(f *progressFixture) {
				f.expectJob(job(5), testutil.Portfolio("P1", "2024-13-01", "2024-01-01"))
			},
			check:   func(t *testing.T, err error) { assert.True(t, apperrors.IsValidation(err)) },
			message: "invalid date",
		},
		{
			name: "missing portfolio",
			setup: func(f *progressFixture) {
				f.opts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(job(5), nil)
				f.portfolios.EXPECT().GetByID(gomock.Any(), "P1").Return(nil, apperrors.NotFoundf("portfolio P1 not found"))
			},
			check:   func(t *testing.T, err error) { assert.True(t, apperrors.IsNotFound(err)) },
			message: "portfolio not found",
		},
		{
			name: "nil portfolio",
			setup: func(f *progressFixture) {
				f.opts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(job(5), nil)
				f.portfolios.EXPECT().GetByID(gomock.Any(), "P1").Return(nil, nil)
			},
			check:   func(t *testing.T, err error) { assert.True(t, apperrors.IsNotFound(err)) },
			message: "portfolio not found",
		},
		{
			name: "job deleted",
			setup: func(f *progressFixture) {
				f.opts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, apperrors.NotFoundf("optimization 5 not found"))
			},
			check:   func(t *testing.T, err error) { assert.True(t, apperrors.IsNotFound(err)) },
			message: "load optimization",
		},
		{
			name: "portfolio store failure",
			setup: func(f *progressFixture) {
				f.opts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(job(5), nil)
				f.portfolios.EXPECT().GetByID(gomock.Any(), "P1").Return(nil, errors.New("connection reset"))
			},
			check:   func(t *testing.T, err error) { assert.True(t, apperrors.IsPersistence(err)) },
			message: "load portfolio failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// strict mocks fail the test on any UpdateProgress or CompleteRun call
			f := newProgressFixture(t, config.ProgressConfig{})
			tt.setup(f)

			summary, err := f.gen.Run(context.Background(), job(5))
			require.Error(t, err)
			tt.check(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, int64(5), summary.OptimizationID)
			assert.Equal(t, "run-1", summary.RunID)
			assert.Zero(t, summary.Inserted)
		})
	}
}

func TestProgressGenerator_StaleVersionAbortsRun(t *testing.T) {
	f := newProgressFixture(t, config.ProgressConfig{})
	f.expectJob(job(6), testutil.Portfolio("P1", "2024-01-01", "2024-01-03"))
	f.opts.EXPECT().UpdateProgress(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Conflict("optimization was modified concurrently"))

	_, err := f.gen.Run(context.Background(), job(6))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Contains(t, err.Error(), "update progress")
}

func TestProgressGenerator_OperationTimeout(t *testing.T) {
	f := newProgressFixture(t, config.ProgressConfig{OpTimeout: 20 * time.Millisecond})
	f.expectJob(job(8), testutil.Portfolio("P1", "2024-01-01", "2024-01-01"))
	f.finalizer.EXPECT().CompleteRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ model.CompleteRunParams) (*model.Optimization, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	summary, err := f.gen.Run(context.Background(), job(8))
	require.Error(t, err)
	assert.True(t, apperrors.IsTimeout(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, summary.Inserted)
}

func TestProgressGenerator_CanceledMidRun(t *testing.T) {
	f := newProgressFixture(t, config.ProgressConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.opts.EXPECT().GetByID(gomock.Any(), int64(9)).Return(job(9), nil)
	f.portfolios.EXPECT().GetByID(gomock.Any(), "P1").
		DoAndReturn(func(context.Context, string) (*model.Portfolio, error) {
			cancel()
			return testutil.Portfolio("P1", "2024-01-01", "2024-01-03"), nil
		})

	_, err := f.gen.Run(ctx, job(9))
	require.Error(t, err)
	assert.True(t, apperrors.IsCanceled(err))
}

func TestProgressGenerator_RerunSendsAFullSetAgain(t *testing.T) {
	f := newProgressFixture(t, config.ProgressConfig{})
	p := testutil.Portfolio("P1", "2024-01-01", "2024-01-03")
	f.opts.EXPECT().GetByID(gomock.Any(), int64(10)).Return(job(10), nil).Times(2)
	f.portfolios.EXPECT().GetByID(gomock.Any(), "P1").Return(p, nil).Times(2)
	f.opts.EXPECT().UpdateProgress(gomock.Any(), gomock.Any()).Times(4).
		DoAndReturn(func(_ context.Context, upd model.ProgressUpdate) (*model.Optimization, error) {
			return &model.Optimization{ID: 10, Version: upd.ExpectedVersion + 1}, nil
		})

	var written int
	f.finalizer.EXPECT().CompleteRun(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, params model.CompleteRunParams) (*model.Optimization, error) {
			written += len(params.Rows)
			return &model.Optimization{ID: 10}, nil
		})

	for range 2 {
		_, err := f.gen.Run(context.Background(), job(10))
		require.NoError(t, err)
	}
	assert.Equal(t, 6, written)
}

func TestProgressGenerator_DefaultRunIDIsUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts := mocks.NewMockOptimizationRepository(ctrl)
	gen, err := NewProgressGenerator(ProgressGeneratorOptions{
		Optimizations: opts,
		Portfolios:    mocks.NewMockPortfolioLookup(ctrl),
		Finalizer:     mocks.NewMockRunFinalizer(ctrl),
	})
	require.NoError(t, err)

	opts.EXPECT().GetByID(gomock.Any(), int64(11)).Return(nil, apperrors.NotFound("gone"))
	summary, err := gen.Run(context.Background(), job(11))
	require.Error(t, err)
	_, parseErr := uuid.Parse(summary.RunID)
	assert.NoError(t, parseErr)
}

func TestClassifyStoreErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.ErrorCode
	}{
		{"app error keeps code", apperrors.Conflict("stale"), apperrors.ErrCodeConflict},
		{"deadline", context.DeadlineExceeded, apperrors.ErrCodeTimeout},
		{"canceled", context.Canceled, apperrors.ErrCodeCanceled},
		{"driver error", errors.New("broken pipe"), apperrors.ErrCodePersistence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyStoreErr(tt.err, "op")
			assert.Equal(t, tt.want, apperrors.GetCode(got))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}
