package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

const optimizationColumns = `id, portfolio_id, scenario_id, shipper, is_completed, percentage, version, created_at, updated_at`

const defaultStaleLimit = 100

// OptimizationRepo is the job store for optimization records.
type OptimizationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOptimizationRepo creates a new OptimizationRepo with real time provider.
func NewOptimizationRepo(db *sql.DB) *OptimizationRepo {
	return &OptimizationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewOptimizationRepoWithTimeProvider creates a new OptimizationRepo with a custom time provider.
func NewOptimizationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *OptimizationRepo {
	return &OptimizationRepo{DB: db, timeProvider: tp}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOptimization(row rowScanner) (*model.Optimization, error) {
	var o model.Optimization
	if err := row.Scan(
		&o.ID, &o.PortfolioID, &o.ScenarioID, &o.Shipper, &o.IsCompleted,
		&o.Percentage, &o.Version, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts a new optimization record with zero progress unless the request says otherwise.
func (r *OptimizationRepo) Create(
	ctx context.Context,
	req *model.CreateOptimizationRequest,
) (*model.Optimization, error) {
	if req == nil {
		return nil, errors.New("create optimization request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid optimization")
	}

	completed := false
	if req.IsCompleted != nil {
		completed = bool(*req.IsCompleted)
	}
	pct := 0.0
	if req.Percentage != nil {
		pct = model.RoundPercentage(*req.Percentage)
	}
	now := r.timeProvider.Now().UTC()

	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO optimizations (portfolio_id, scenario_id, shipper, is_completed, percentage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+optimizationColumns,
		req.PortfolioID, req.ScenarioID, req.Shipper, completed, pct, now,
	)
	out, err := scanOptimization(row)
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("insert optimization: %w", err))
	}
	return out, nil
}

// GetByID retrieves an optimization by ID.
func (r *OptimizationRepo) GetByID(ctx context.Context, id int64) (*model.Optimization, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+optimizationColumns+` FROM optimizations WHERE id = $1`, id)
	out, err := scanOptimization(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("optimization %d not found", id)
	}
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("get optimization %d: %w", id, err))
	}
	return out, nil
}

// List returns optimizations matching the filter, newest first.
func (r *OptimizationRepo) List(
	ctx context.Context,
	filter model.OptimizationFilter,
) ([]*model.Optimization, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, cond+" = $"+strconv.Itoa(len(args)))
	}
	if filter.PortfolioID != "" {
		add("portfolio_id", filter.PortfolioID)
	}
	if filter.ScenarioID != "" {
		add("scenario_id", filter.ScenarioID)
	}
	if filter.Shipper != "" {
		add("shipper", filter.Shipper)
	}
	if filter.IsCompleted != nil {
		add("is_completed", *filter.IsCompleted)
	}

	query := `SELECT ` + optimizationColumns + ` FROM optimizations`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id DESC`

	return r.queryMany(ctx, "list optimizations", query, args...)
}

// ListStale returns incomplete optimizations whose last update is older than q.Before.
func (r *OptimizationRepo) ListStale(
	ctx context.Context,
	q model.StaleOptimizationQuery,
) ([]*model.Optimization, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultStaleLimit
	}
	return r.queryMany(ctx, "list stale optimizations", `
		SELECT `+optimizationColumns+` FROM optimizations
		WHERE is_completed = false AND updated_at < $1
		ORDER BY updated_at ASC
		LIMIT $2`, q.Before, limit)
}

func (r *OptimizationRepo) queryMany(
	ctx context.Context,
	op, query string,
	args ...any,
) ([]*model.Optimization, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	out := make([]*model.Optimization, 0)
	for rows.Next() {
		o, scanErr := scanOptimization(rows)
		if scanErr != nil {
			return nil, apperrors.MapDBError(fmt.Errorf("%s: scan: %w", op, scanErr))
		}
		out = append(out, o)
	}
	if err = rows.Err(); err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("%s: %w", op, err))
	}
	return out, nil
}

// Update merges the non-nil request fields into the stored row in one statement and returns
// the merged record.
func (r *OptimizationRepo) Update(
	ctx context.Context,
	id int64,
	req model.UpdateOptimizationRequest,
) (*model.Optimization, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid optimization update")
	}
	if req.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var completed *bool
	if req.IsCompleted != nil {
		v := bool(*req.IsCompleted)
		completed = &v
	}
	var pct *float64
	if req.Percentage != nil {
		v := model.RoundPercentage(*req.Percentage)
		pct = &v
	}

	row := r.DB.QueryRowContext(ctx, `
		UPDATE optimizations SET
			portfolio_id = COALESCE($2, portfolio_id),
			scenario_id  = COALESCE($3, scenario_id),
			shipper      = COALESCE($4, shipper),
			is_completed = COALESCE($5, is_completed),
			percentage   = COALESCE($6, percentage),
			version      = version + 1,
			updated_at   = $7
		WHERE id = $1
		RETURNING `+optimizationColumns,
		id, trimmed(req.PortfolioID), trimmed(req.ScenarioID), trimmed(req.Shipper), completed, pct,
		r.timeProvider.Now().UTC(),
	)
	out, err := scanOptimization(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("optimization %d not found", id)
	}
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("update optimization %d: %w", id, err))
	}
	return out, nil
}

// UpdateProgress writes the progress fields only when the stored version still equals
// upd.ExpectedVersion. A mismatch returns ErrStaleVersion.
func (r *OptimizationRepo) UpdateProgress(
	ctx context.Context,
	upd model.ProgressUpdate,
) (*model.Optimization, error) {
	if err := model.ValidatePercentage(upd.Percentage); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid progress")
	}
	row := r.DB.QueryRowContext(ctx, progressUpdateSQL,
		upd.OptimizationID, upd.Percentage, upd.IsCompleted, upd.ExpectedVersion,
		r.timeProvider.Now().UTC(),
	)
	out, err := scanOptimization(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.explainMissedUpdate(ctx, upd.OptimizationID)
	}
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("update progress of optimization %d: %w", upd.OptimizationID, err))
	}
	return out, nil
}

const progressUpdateSQL = `
	UPDATE optimizations SET
		percentage   = $2,
		is_completed = $3,
		version      = version + 1,
		updated_at   = $5
	WHERE id = $1 AND version = $4
	RETURNING ` + optimizationColumns

// explainMissedUpdate distinguishes a deleted optimization from a stale version.
func (r *OptimizationRepo) explainMissedUpdate(ctx context.Context, id int64) error {
	var exists bool
	if err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM optimizations WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return apperrors.MapDBError(fmt.Errorf("check optimization %d: %w", id, err))
	}
	if !exists {
		return apperrors.NotFoundf("optimization %d not found", id)
	}
	return fmt.Errorf("optimization %d: %w", id, ErrStaleVersion)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
