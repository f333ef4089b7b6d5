package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
	"github.com/target/rmsgas-api/internal/testutil"
)

func resultRows(optimizationID int64, days ...string) []*model.OptResult {
	out := make([]*model.OptResult, 0, len(days))
	for i, d := range days {
		vol := int64(600000 + i)
		out = append(out, &model.OptResult{
			OptimizationID:  optimizationID,
			DeliveryDate:    testutil.Date(d),
			Shipper:         "ACME",
			Volume:          vol,
			UntouchedVolume: vol,
			VesselName:      "Vessel-7",
			MMBTU:           vol * 105 / 100,
			MMSCF:           vol * 95 / 100,
		})
	}
	return out
}

func TestOptResultRepo_Integration_CompleteRun(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		opts := NewOptimizationRepo(db)
		results := NewOptResultRepo(db)

		opt, err := opts.Create(ctx, testutil.NewOptimizationRequest().Build())
		require.NoError(t, err)

		mid, err := opts.UpdateProgress(ctx, model.ProgressUpdate{
			OptimizationID: opt.ID, Percentage: 50, ExpectedVersion: opt.Version,
		})
		require.NoError(t, err)
		assert.Equal(t, opt.Version+1, mid.Version)

		done, err := results.CompleteRun(ctx, model.CompleteRunParams{
			Rows: resultRows(opt.ID, "2024-01-02", "2024-01-01"),
			Progress: model.ProgressUpdate{
				OptimizationID: opt.ID, Percentage: 100, IsCompleted: true, ExpectedVersion: mid.Version,
			},
		})
		require.NoError(t, err)
		assert.True(t, bool(done.IsCompleted))
		assert.InDelta(t, 100.0, done.Percentage, 1e-9)

		rows, err := results.ListByOptimizationID(ctx, opt.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, testutil.Date("2024-01-01"), rows[0].DeliveryDate.UTC())
		assert.Equal(t, model.DefaultRGT, rows[0].RGT)
	})
}

func TestOptResultRepo_Integration_CompleteRunStaleVersionWritesNothing(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		opts := NewOptimizationRepo(db)
		results := NewOptResultRepo(db)

		opt, err := opts.Create(ctx, testutil.NewOptimizationRequest().Build())
		require.NoError(t, err)

		_, err = results.CompleteRun(ctx, model.CompleteRunParams{
			Rows: resultRows(opt.ID, "2024-01-01"),
			Progress: model.ProgressUpdate{
				OptimizationID: opt.ID, Percentage: 100, IsCompleted: true, ExpectedVersion: opt.Version + 5,
			},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStaleVersion)
		assert.Equal(t, 0, testutil.CountResults(t, db, opt.ID))

		_, err = results.CompleteRun(ctx, model.CompleteRunParams{
			Progress: model.ProgressUpdate{OptimizationID: opt.ID + 1000, Percentage: 100, IsCompleted: true},
		})
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestOptResultRepo_Integration_CRUD(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		opts := NewOptimizationRepo(db)
		results := NewOptResultRepo(db)

		opt, err := opts.Create(ctx, testutil.NewOptimizationRequest().Build())
		require.NoError(t, err)

		n, err := results.BulkInsert(ctx, resultRows(opt.ID, "2024-03-01", "2024-03-02", "2024-03-03"))
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		_, err = results.BulkInsert(ctx, nil)
		require.ErrorIs(t, err, ErrEmptyBatch)

		row, err := results.Create(ctx, &model.CreateOptResultRequest{
			OptimizationID: opt.ID, DeliveryDate: "2024-03-04", Volume: 10, UntouchedVolume: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, model.DefaultRGT, row.RGT)

		vessel := "Vessel-99"
		updated, err := results.Update(ctx, row.ID, model.UpdateOptResultRequest{VesselName: &vessel})
		require.NoError(t, err)
		assert.Equal(t, vessel, updated.VesselName)
		assert.Equal(t, int64(10), updated.Volume)

		_, err = results.Create(ctx, &model.CreateOptResultRequest{
			OptimizationID: opt.ID + 1000, DeliveryDate: "2024-03-04",
		})
		assert.True(t, apperrors.IsForeignKey(err))

		deleted, err := results.Delete(ctx, row.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = results.GetByID(ctx, row.ID)
		assert.True(t, apperrors.IsNotFound(err))

		removed, err := results.DeleteByOptimizationID(ctx, opt.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
	})
}

func TestPortfolioRepo_Integration(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewPortfolioRepo(db)

		p, err := repo.Create(ctx, testutil.PortfolioRequest("P1", "2024-01-01", "2024-01-03"))
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", p.StartDate)

		_, err = repo.Create(ctx, testutil.PortfolioRequest("P1", "2024-01-01", "2024-01-03"))
		assert.True(t, apperrors.IsConflict(err))

		updated, err := repo.Update(ctx, "P1", model.UpdatePortfolioRequest{StartDate: "2024-02-01", EndDate: "2024-02-10"})
		require.NoError(t, err)
		assert.Equal(t, "2024-02-10", updated.EndDate)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		deleted, err := repo.Delete(ctx, "P1")
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, "P1")
		assert.True(t, apperrors.IsNotFound(err))
	})
}
