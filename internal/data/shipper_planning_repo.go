package data

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/target/rmsgas-api/internal/data/pgxutil"
	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

const shipperPlanningColumns = `id, portfolio_id, scenario_id, shipper, delivery_date, vessel_name, volume_m3, activity`

// ErrNoDeleteCriteria is returned when a bulk delete would match every row.
var ErrNoDeleteCriteria = apperrors.Validation("at least one of portfolio_ids, scenario_ids or shippers is required")

// ShipperPlanningRepo stores shipper planning rows.
type ShipperPlanningRepo struct {
	DB *sql.DB
}

// NewShipperPlanningRepo creates a new ShipperPlanningRepo.
func NewShipperPlanningRepo(db *sql.DB) *ShipperPlanningRepo {
	return &ShipperPlanningRepo{DB: db}
}

func scanShipperPlanning(row rowScanner) (*model.ShipperPlanning, error) {
	var (
		p      model.ShipperPlanning
		volume sql.NullInt64
		date   sql.NullTime
	)
	if err := row.Scan(
		&p.ID, &p.PortfolioID, &p.ScenarioID, &p.Shipper, &date, &p.VesselName, &volume, &p.Activity,
	); err != nil {
		return nil, err
	}
	if volume.Valid {
		v := volume.Int64
		p.VolumeM3 = &v
	}
	if date.Valid {
		d := date.Time
		p.DeliveryDate = &d
	}
	return &p, nil
}

// List returns planning rows matching the filter ordered by delivery date.
func (r *ShipperPlanningRepo) List(
	ctx context.Context,
	filter model.ShipperPlanningFilter,
) ([]*model.ShipperPlanning, error) {
	var (
		conds []string
		args  []any
	)
	add := func(col, v string) {
		if v == "" {
			return
		}
		args = append(args, v)
		conds = append(conds, col+" = $"+strconv.Itoa(len(args)))
	}
	add("portfolio_id", filter.PortfolioID)
	add("scenario_id", filter.ScenarioID)
	add("shipper", filter.Shipper)

	query := `SELECT ` + shipperPlanningColumns + ` FROM shipper_plannings`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY delivery_date ASC NULLS LAST, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("list shipper planning: %w", err))
	}
	defer rows.Close()

	out := make([]*model.ShipperPlanning, 0)
	for rows.Next() {
		p, scanErr := scanShipperPlanning(rows)
		if scanErr != nil {
			return nil, apperrors.MapDBError(fmt.Errorf("list shipper planning: scan: %w", scanErr))
		}
		out = append(out, p)
	}
	if err = rows.Err(); err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("list shipper planning: %w", err))
	}
	return out, nil
}

// BulkCreate inserts all rows in one transaction. Either every row is stored or none is.
func (r *ShipperPlanningRepo) BulkCreate(ctx context.Context, rows []*model.ShipperPlanning) (int64, error) {
	if len(rows) == 0 {
		return 0, ErrEmptyBatch
	}
	var inserted int64
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{
		Fn: func(tx *sql.Tx) error {
			stmt, err := tx.PrepareContext(ctx, `
				INSERT INTO shipper_plannings
					(portfolio_id, scenario_id, shipper, delivery_date, vessel_name, volume_m3, activity)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`)
			if err != nil {
				return fmt.Errorf("prepare insert: %w", err)
			}
			defer stmt.Close()

			for i, p := range rows {
				if _, err = stmt.ExecContext(ctx,
					p.PortfolioID, p.ScenarioID, p.Shipper, p.DeliveryDate, p.VesselName, p.VolumeM3, p.Activity,
				); err != nil {
					return fmt.Errorf("insert row %d: %w", i, err)
				}
				inserted++
			}
			return nil
		},
	})
	if err != nil {
		return 0, apperrors.MapDBError(fmt.Errorf("bulk insert shipper planning: %w", err))
	}
	return inserted, nil
}

// BulkDelete removes the rows matching every non-empty criteria list and returns the count.
func (r *ShipperPlanningRepo) BulkDelete(
	ctx context.Context,
	criteria model.ShipperPlanningDeleteCriteria,
) (int64, error) {
	if criteria.IsEmpty() {
		return 0, ErrNoDeleteCriteria
	}
	var (
		conds []string
		args  []any
	)
	in := func(col string, values []string) {
		if len(values) == 0 {
			return
		}
		ph := make([]string, len(values))
		for i, v := range values {
			args = append(args, v)
			ph[i] = "$" + strconv.Itoa(len(args))
		}
		conds = append(conds, col+" IN ("+strings.Join(ph, ", ")+")")
	}
	in("portfolio_id", criteria.PortfolioIDs)
	in("scenario_id", criteria.ScenarioIDs)
	in("shipper", criteria.Shippers)

	res, err := r.DB.ExecContext(ctx, `DELETE FROM shipper_plannings WHERE `+strings.Join(conds, " AND "), args...)
	if err != nil {
		return 0, apperrors.MapDBError(fmt.Errorf("bulk delete shipper planning: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
