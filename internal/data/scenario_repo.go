package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

const scenarioColumns = `scenario_id, parent_portfolio_id, created_at, updated_at`

// ScenarioRepo stores scenarios.
type ScenarioRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewScenarioRepo creates a new ScenarioRepo.
func NewScenarioRepo(db *sql.DB) *ScenarioRepo {
	return &ScenarioRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewScenarioRepoWithTimeProvider creates a new ScenarioRepo with a custom time provider.
func NewScenarioRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ScenarioRepo {
	return &ScenarioRepo{DB: db, timeProvider: tp}
}

func scanScenario(row rowScanner) (*model.Scenario, error) {
	var s model.Scenario
	if err := row.Scan(&s.ScenarioID, &s.ParentPortfolioID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a scenario.
func (r *ScenarioRepo) Create(ctx context.Context, req *model.CreateScenarioRequest) (*model.Scenario, error) {
	if req == nil {
		return nil, errors.New("create scenario request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid scenario")
	}
	now := r.timeProvider.Now().UTC()
	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO scenarios (scenario_id, parent_portfolio_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING `+scenarioColumns,
		strings.TrimSpace(req.ScenarioID), strings.TrimSpace(req.ParentPortfolioID), now,
	)
	out, err := scanScenario(row)
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("insert scenario: %w", err))
	}
	return out, nil
}

// GetByID retrieves a scenario by its identifier.
func (r *ScenarioRepo) GetByID(ctx context.Context, id string) (*model.Scenario, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+scenarioColumns+` FROM scenarios WHERE scenario_id = $1`, id)
	out, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("scenario %s not found", id)
	}
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("get scenario %s: %w", id, err))
	}
	return out, nil
}

// List returns every scenario ordered by identifier.
func (r *ScenarioRepo) List(ctx context.Context) ([]*model.Scenario, error) {
	return r.queryMany(ctx, "list scenarios", `SELECT `+scenarioColumns+` FROM scenarios ORDER BY scenario_id`)
}

// ListByPortfolioID returns the scenarios of one portfolio.
func (r *ScenarioRepo) ListByPortfolioID(ctx context.Context, portfolioID string) ([]*model.Scenario, error) {
	return r.queryMany(ctx, "list scenarios by portfolio", `
		SELECT `+scenarioColumns+` FROM scenarios
		WHERE parent_portfolio_id = $1
		ORDER BY scenario_id`, portfolioID)
}

func (r *ScenarioRepo) queryMany(ctx context.Context, op, query string, args ...any) ([]*model.Scenario, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	out := make([]*model.Scenario, 0)
	for rows.Next() {
		s, scanErr := scanScenario(rows)
		if scanErr != nil {
			return nil, apperrors.MapDBError(fmt.Errorf("%s: scan: %w", op, scanErr))
		}
		out = append(out, s)
	}
	if err = rows.Err(); err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("%s: %w", op, err))
	}
	return out, nil
}

// Update moves a scenario under another portfolio.
func (r *ScenarioRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateScenarioRequest,
) (*model.Scenario, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid scenario update")
	}
	row := r.DB.QueryRowContext(ctx, `
		UPDATE scenarios SET parent_portfolio_id = $2, updated_at = $3
		WHERE scenario_id = $1
		RETURNING `+scenarioColumns,
		id, strings.TrimSpace(req.ParentPortfolioID), r.timeProvider.Now().UTC(),
	)
	out, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("scenario %s not found", id)
	}
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("update scenario %s: %w", id, err))
	}
	return out, nil
}

// Delete removes a scenario. It reports false when the scenario did not exist.
func (r *ScenarioRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM scenarios WHERE scenario_id = $1`, id)
	if err != nil {
		return false, apperrors.MapDBError(fmt.Errorf("delete scenario %s: %w", id, err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
