// Package data provides database access layer and repository implementations for the RMSGAS optimization service.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/target/rmsgas-api/internal/data/pgxutil"
	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

const portfolioColumns = `portfolio_id, start_date, end_date, created_at, updated_at`

// PortfolioRepo stores portfolios and their date ranges.
type PortfolioRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPortfolioRepo creates a new PortfolioRepo.
func NewPortfolioRepo(db *sql.DB) *PortfolioRepo {
	return &PortfolioRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPortfolioRepoWithTimeProvider creates a new PortfolioRepo with a custom time provider.
func NewPortfolioRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PortfolioRepo {
	return &PortfolioRepo{DB: db, timeProvider: tp}
}

func (r *PortfolioRepo) queryOne(ctx context.Context, query string, args ...any) (*model.Portfolio, error) {
	var out model.Portfolio
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Portfolio])
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create inserts a portfolio. A duplicate portfolio_id maps to a conflict.
func (r *PortfolioRepo) Create(ctx context.Context, req *model.CreatePortfolioRequest) (*model.Portfolio, error) {
	if req == nil {
		return nil, errors.New("create portfolio request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid portfolio")
	}
	now := r.timeProvider.Now().UTC()
	out, err := r.queryOne(ctx, `
		INSERT INTO portfolios (portfolio_id, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING `+portfolioColumns,
		strings.TrimSpace(req.PortfolioID), strings.TrimSpace(req.StartDate), strings.TrimSpace(req.EndDate), now,
	)
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("insert portfolio: %w", err))
	}
	return out, nil
}

// GetByID retrieves a portfolio by its identifier.
func (r *PortfolioRepo) GetByID(ctx context.Context, id string) (*model.Portfolio, error) {
	out, err := r.queryOne(ctx, `SELECT `+portfolioColumns+` FROM portfolios WHERE portfolio_id = $1`, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundf("portfolio %s not found", id)
	}
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("get portfolio %s: %w", id, err))
	}
	return out, nil
}

// List returns every portfolio ordered by identifier.
func (r *PortfolioRepo) List(ctx context.Context) ([]*model.Portfolio, error) {
	var out []*model.Portfolio
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+portfolioColumns+` FROM portfolios ORDER BY portfolio_id`)
		if err != nil {
			return err
		}
		res, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.Portfolio])
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("list portfolios: %w", err))
	}
	if out == nil {
		out = make([]*model.Portfolio, 0)
	}
	return out, nil
}

// Update replaces the date range of a portfolio.
func (r *PortfolioRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdatePortfolioRequest,
) (*model.Portfolio, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid portfolio update")
	}
	out, err := r.queryOne(ctx, `
		UPDATE portfolios SET start_date = $2, end_date = $3, updated_at = $4
		WHERE portfolio_id = $1
		RETURNING `+portfolioColumns,
		id, strings.TrimSpace(req.StartDate), strings.TrimSpace(req.EndDate), r.timeProvider.Now().UTC(),
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundf("portfolio %s not found", id)
	}
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("update portfolio %s: %w", id, err))
	}
	return out, nil
}

// Delete removes a portfolio. It reports false when the portfolio did not exist.
func (r *PortfolioRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM portfolios WHERE portfolio_id = $1`, id)
	if err != nil {
		return false, apperrors.MapDBError(fmt.Errorf("delete portfolio %s: %w", id, err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
