//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"fmt"
	"time"
)

// maxBulkPlanningRows bounds one bulk insert request.
const maxBulkPlanningRows = 10000

// ShipperPlanning is one planned delivery for a shipper within a portfolio scenario.
type ShipperPlanning struct {
	ID           int64      `json:"id"            db:"id"`
	PortfolioID  *string    `json:"portfolio_id"  db:"portfolio_id"`
	ScenarioID   *string    `json:"scenario_id"   db:"scenario_id"`
	Shipper      *string    `json:"shipper"       db:"shipper"`
	DeliveryDate *time.Time `json:"delivery_date" db:"delivery_date"`
	VesselName   *string    `json:"vessel_name"   db:"vessel_name"`
	VolumeM3     *int64     `json:"volume_m3"     db:"volume_m3"`
	Activity     *string    `json:"activity"      db:"activity"`
}

// ShipperPlanningInput is one row of a bulk insert. Every column is nullable.
type ShipperPlanningInput struct {
	PortfolioID  *string `json:"portfolio_id"`
	ScenarioID   *string `json:"scenario_id"`
	Shipper      *string `json:"shipper"`
	DeliveryDate *string `json:"delivery_date"`
	VesselName   *string `json:"vessel_name"`
	VolumeM3     *int64  `json:"volume_m3"`
	Activity     *string `json:"activity"`
}

// ToPlanning converts the input into a row, parsing the delivery date when present.
func (in *ShipperPlanningInput) ToPlanning() (*ShipperPlanning, error) {
	out := &ShipperPlanning{
		PortfolioID: in.PortfolioID,
		ScenarioID:  in.ScenarioID,
		Shipper:     in.Shipper,
		VesselName:  in.VesselName,
		VolumeM3:    in.VolumeM3,
		Activity:    in.Activity,
	}
	if in.DeliveryDate != nil && *in.DeliveryDate != "" {
		d, err := ParseDate(*in.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("delivery_date %q: %w", *in.DeliveryDate, err)
		}
		out.DeliveryDate = &d
	}
	return out, nil
}

// ValidateBulkPlanning checks the size of a bulk insert.
func ValidateBulkPlanning(rows []ShipperPlanningInput) error {
	if len(rows) == 0 {
		return errors.New("at least one shipper planning record is required")
	}
	if len(rows) > maxBulkPlanningRows {
		return fmt.Errorf("at most %d records may be inserted at once", maxBulkPlanningRows)
	}
	return nil
}

// ShipperPlanningFilter selects planning rows. Empty fields are ignored.
type ShipperPlanningFilter struct {
	PortfolioID string
	ScenarioID  string
	Shipper     string
}

// ShipperPlanningDeleteCriteria selects planning rows for bulk deletion. Lists are ANDed
// together; values within a list are ORed.
type ShipperPlanningDeleteCriteria struct {
	PortfolioIDs []string `json:"portfolio_ids"`
	ScenarioIDs  []string `json:"scenario_ids"`
	Shippers     []string `json:"shippers"`
}

// IsEmpty reports whether no criteria are set.
func (c *ShipperPlanningDeleteCriteria) IsEmpty() bool {
	return len(c.PortfolioIDs) == 0 && len(c.ScenarioIDs) == 0 && len(c.Shippers) == 0
}

// BulkDeleteResult reports how many planning rows were removed.
type BulkDeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
