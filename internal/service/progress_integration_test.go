package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/rmsgas-api/config"
	"github.com/target/rmsgas-api/internal/data"
	apperrors "github.com/target/rmsgas-api/internal/errors"
	"github.com/target/rmsgas-api/internal/testutil"
)

func newIntegrationGenerator(t *testing.T, db *sql.DB) (*ProgressGenerator, *data.OptimizationRepo) {
	t.Helper()
	opts := data.NewOptimizationRepo(db)
	portfolios, err := NewPortfolioService(PortfolioServiceOptions{Repo: data.NewPortfolioRepo(db)})
	require.NoError(t, err)
	gen, err := NewProgressGenerator(ProgressGeneratorOptions{
		Optimizations: opts,
		Portfolios:    portfolios,
		Finalizer:     data.NewOptResultRepo(db),
		Config:        config.ProgressConfig{},
	})
	require.NoError(t, err)
	return gen, opts
}

func TestProgressGenerator_Integration_RunAndRerun(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		testutil.InsertPortfolio(t, db, "P1", "2024-01-01", "2024-01-03")
		gen, opts := newIntegrationGenerator(t, db)

		job, err := opts.Create(ctx, testutil.NewOptimizationRequest().Build())
		require.NoError(t, err)

		summary, err := gen.Run(ctx, job)
		require.NoError(t, err)
		assert.Equal(t, int64(3), summary.Inserted)

		done, err := opts.GetByID(ctx, job.ID)
		require.NoError(t, err)
		assert.True(t, bool(done.IsCompleted))
		assert.InDelta(t, 100.0, done.Percentage, 1e-9)
		assert.Equal(t, 3, testutil.CountResults(t, db, job.ID))

		// a second run appends a second full set
		_, err = gen.Run(ctx, job)
		require.NoError(t, err)
		assert.Equal(t, 6, testutil.CountResults(t, db, job.ID))
	})
}

func TestProgressGenerator_Integration_InvertedRangeWritesNothing(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		testutil.InsertPortfolio(t, db, "P1", "2024-01-03", "2024-01-01")
		gen, opts := newIntegrationGenerator(t, db)

		job, err := opts.Create(ctx, testutil.NewOptimizationRequest().Build())
		require.NoError(t, err)

		_, err = gen.Run(ctx, job)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))

		after, err := opts.GetByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Zero(t, after.Percentage)
		assert.Equal(t, job.Version, after.Version)
		assert.Equal(t, 0, testutil.CountResults(t, db, job.ID))
	})
}

func TestProgressGenerator_Integration_MissingPortfolio(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		gen, opts := newIntegrationGenerator(t, db)

		job, err := opts.Create(ctx, testutil.NewOptimizationRequest().WithPortfolio("P404").Build())
		require.NoError(t, err)

		_, err = gen.Run(ctx, job)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Equal(t, 0, testutil.CountResults(t, db, job.ID))
	})
}
