package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/target/rmsgas-api/internal/data/pgxutil"
	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

const optResultColumns = `id, optimization_id, delivery_date, rgt, shipper, volume, untouched_volume, vessel_name, mmbtu, mmscf, created_at`

// optResultCopyColumns are the columns written by COPY; id and created_at take their defaults.
var optResultCopyColumns = []string{
	"optimization_id", "delivery_date", "rgt", "shipper", "volume",
	"untouched_volume", "vessel_name", "mmbtu", "mmscf",
}

// OptResultRepo is the result store. Bulk writes use the COPY protocol through a native pgx
// connection.
type OptResultRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOptResultRepo creates a new OptResultRepo.
func NewOptResultRepo(db *sql.DB) *OptResultRepo {
	return &OptResultRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewOptResultRepoWithTimeProvider creates a new OptResultRepo with a custom time provider.
func NewOptResultRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *OptResultRepo {
	return &OptResultRepo{DB: db, timeProvider: tp}
}

// Create inserts a single result row.
func (r *OptResultRepo) Create(ctx context.Context, req *model.CreateOptResultRequest) (*model.OptResult, error) {
	if req == nil {
		return nil, errors.New("create result request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid result")
	}
	row, err := req.ToResult()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid result")
	}

	var out model.OptResult
	err = pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO opt_results (optimization_id, delivery_date, rgt, shipper, volume,
				untouched_volume, vessel_name, mmbtu, mmscf)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+optResultColumns,
			row.OptimizationID, row.DeliveryDate, row.RGT, row.Shipper, row.Volume,
			row.UntouchedVolume, row.VesselName, row.MMBTU, row.MMSCF,
		)
		if qerr != nil {
			return qerr
		}
		res, collectErr := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.OptResult])
		if collectErr != nil {
			return collectErr
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("insert result: %w", err))
	}
	return &out, nil
}

// BulkInsert writes all rows with a single COPY and returns the number inserted.
func (r *OptResultRepo) BulkInsert(ctx context.Context, rows []*model.OptResult) (int64, error) {
	if len(rows) == 0 {
		return 0, ErrEmptyBatch
	}
	var n int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var copyErr error
		n, copyErr = conn.CopyFrom(ctx, pgx.Identifier{"opt_results"}, optResultCopyColumns, copySource(rows))
		return copyErr
	})
	if err != nil {
		return 0, apperrors.MapDBError(fmt.Errorf("bulk insert results: %w", err))
	}
	return n, nil
}

// CompleteRun inserts the rows of a run and applies its terminal progress update in one
// transaction. When the version guard fails nothing is written.
func (r *OptResultRepo) CompleteRun(
	ctx context.Context,
	params model.CompleteRunParams,
) (*model.Optimization, error) {
	if err := model.ValidatePercentage(params.Progress.Percentage); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid progress")
	}
	id := params.Progress.OptimizationID

	var out model.Optimization
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			if len(params.Rows) > 0 {
				if _, err := tx.CopyFrom(ctx, pgx.Identifier{"opt_results"}, optResultCopyColumns,
					copySource(params.Rows)); err != nil {
					return fmt.Errorf("copy results: %w", err)
				}
			}

			rows, err := tx.Query(ctx, progressUpdateSQL,
				id, params.Progress.Percentage, params.Progress.IsCompleted,
				params.Progress.ExpectedVersion, r.timeProvider.Now().UTC(),
			)
			if err != nil {
				return fmt.Errorf("finalize progress: %w", err)
			}
			res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Optimization])
			if errors.Is(err, pgx.ErrNoRows) {
				return explainMissedTxUpdate(ctx, tx, id)
			}
			if err != nil {
				return fmt.Errorf("finalize progress: %w", err)
			}
			out = res
			return nil
		},
	})
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("complete run of optimization %d: %w", id, err))
	}
	return &out, nil
}

func explainMissedTxUpdate(ctx context.Context, tx pgx.Tx, id int64) error {
	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM optimizations WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check optimization: %w", err)
	}
	if !exists {
		return apperrors.NotFoundf("optimization %d not found", id)
	}
	return ErrStaleVersion
}

func copySource(rows []*model.OptResult) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		r := rows[i]
		rgt := r.RGT
		if rgt == "" {
			rgt = model.DefaultRGT
		}
		return []any{
			r.OptimizationID, r.DeliveryDate, rgt, r.Shipper, r.Volume,
			r.UntouchedVolume, r.VesselName, r.MMBTU, r.MMSCF,
		}, nil
	})
}

// GetByID retrieves a result row by ID.
func (r *OptResultRepo) GetByID(ctx context.Context, id int64) (*model.OptResult, error) {
	var out model.OptResult
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+optResultColumns+` FROM opt_results WHERE id = $1`, id)
		if err != nil {
			return err
		}
		res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.OptResult])
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundf("result %d not found", id)
	}
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("get result %d: %w", id, err))
	}
	return &out, nil
}

// ListByOptimizationID returns the rows of an optimization in delivery order.
func (r *OptResultRepo) ListByOptimizationID(ctx context.Context, optimizationID int64) ([]*model.OptResult, error) {
	var out []*model.OptResult
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+optResultColumns+` FROM opt_results
			WHERE optimization_id = $1
			ORDER BY delivery_date ASC, id ASC`, optimizationID)
		if err != nil {
			return err
		}
		res, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.OptResult])
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("list results of optimization %d: %w", optimizationID, err))
	}
	if out == nil {
		out = make([]*model.OptResult, 0)
	}
	return out, nil
}

// Update merges the non-nil request fields into the stored row.
func (r *OptResultRepo) Update(
	ctx context.Context,
	id int64,
	req model.UpdateOptResultRequest,
) (*model.OptResult, error) {
	if req.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	var out model.OptResult
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE opt_results SET
				rgt              = COALESCE($2, rgt),
				shipper          = COALESCE($3, shipper),
				volume           = COALESCE($4, volume),
				untouched_volume = COALESCE($5, untouched_volume),
				vessel_name      = COALESCE($6, vessel_name),
				mmbtu            = COALESCE($7, mmbtu),
				mmscf            = COALESCE($8, mmscf)
			WHERE id = $1
			RETURNING `+optResultColumns,
			id, req.RGT, req.Shipper, req.Volume, req.UntouchedVolume, req.VesselName, req.MMBTU, req.MMSCF,
		)
		if err != nil {
			return err
		}
		res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.OptResult])
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundf("result %d not found", id)
	}
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("update result %d: %w", id, err))
	}
	return &out, nil
}

// Delete removes a result row. It reports false when the row did not exist.
func (r *OptResultRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM opt_results WHERE id = $1`, id)
	if err != nil {
		return false, apperrors.MapDBError(fmt.Errorf("delete result %d: %w", id, err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// DeleteByOptimizationID removes every row of an optimization and returns the count removed.
func (r *OptResultRepo) DeleteByOptimizationID(ctx context.Context, optimizationID int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM opt_results WHERE optimization_id = $1`, optimizationID)
	if err != nil {
		return 0, apperrors.MapDBError(fmt.Errorf("delete results of optimization %d: %w", optimizationID, err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
