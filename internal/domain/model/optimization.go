// Package model defines the records exchanged between the stores, the progress pipeline and the
// HTTP layer of the RMSGAS optimization service.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	maxRefLen = 50
	// MaxPercentage is the terminal progress value of a run.
	MaxPercentage = 100.0
)

// CompletionFlag is the is_completed column. It is written to JSON as 0 or 1 and accepts
// 0, 1, true or false on input.
//
//nolint:recvcheck // UnmarshalJSON needs pointer receiver, MarshalJSON value receiver
type CompletionFlag bool

// MarshalJSON renders the flag as 0 or 1.
func (f CompletionFlag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON accepts 0/1 numbers and JSON booleans.
func (f *CompletionFlag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "1", "true":
		*f = true
	case "0", "false", "null":
		*f = false
	default:
		return fmt.Errorf("invalid is_completed value %s", data)
	}
	return nil
}

// Optimization is a job record tracking one portfolio/scenario/shipper triple and the progress
// of its synthetic result generation.
type Optimization struct {
	ID          int64          `json:"id"           db:"id"`
	PortfolioID string         `json:"portfolio_id" db:"portfolio_id"`
	ScenarioID  string         `json:"scenario_id"  db:"scenario_id"`
	Shipper     string         `json:"shipper"      db:"shipper"`
	IsCompleted CompletionFlag `json:"is_completed" db:"is_completed"`
	Percentage  float64        `json:"percentage"   db:"percentage"`
	Version     int            `json:"version"      db:"version"`
	CreatedAt   time.Time      `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"   db:"updated_at"`
}

// CreateOptimizationRequest represents a request to create a new optimization record.
type CreateOptimizationRequest struct {
	PortfolioID string          `json:"portfolio_id"`
	ScenarioID  string          `json:"scenario_id"`
	Shipper     string          `json:"shipper"`
	IsCompleted *CompletionFlag `json:"is_completed,omitempty"`
	Percentage  *float64        `json:"percentage,omitempty"`
}

// Normalize trims identifiers in place.
func (r *CreateOptimizationRequest) Normalize() {
	r.PortfolioID = strings.TrimSpace(r.PortfolioID)
	r.ScenarioID = strings.TrimSpace(r.ScenarioID)
	r.Shipper = strings.TrimSpace(r.Shipper)
}

// Validate validates the CreateOptimizationRequest fields.
func (r *CreateOptimizationRequest) Validate() error {
	if err := validateRef("portfolio_id", r.PortfolioID); err != nil {
		return err
	}
	if err := validateRef("scenario_id", r.ScenarioID); err != nil {
		return err
	}
	if err := validateRef("shipper", r.Shipper); err != nil {
		return err
	}
	if r.Percentage != nil {
		return ValidatePercentage(*r.Percentage)
	}
	return nil
}

// UpdateOptimizationRequest carries the fields merged into an existing optimization record.
// Nil fields keep their stored value.
type UpdateOptimizationRequest struct {
	PortfolioID *string         `json:"portfolio_id,omitempty"`
	ScenarioID  *string         `json:"scenario_id,omitempty"`
	Shipper     *string         `json:"shipper,omitempty"`
	IsCompleted *CompletionFlag `json:"is_completed,omitempty"`
	Percentage  *float64        `json:"percentage,omitempty"`
}

// Validate validates the UpdateOptimizationRequest fields that are present.
func (r *UpdateOptimizationRequest) Validate() error {
	if r.PortfolioID != nil {
		if err := validateRef("portfolio_id", *r.PortfolioID); err != nil {
			return err
		}
	}
	if r.ScenarioID != nil {
		if err := validateRef("scenario_id", *r.ScenarioID); err != nil {
			return err
		}
	}
	if r.Shipper != nil {
		if err := validateRef("shipper", *r.Shipper); err != nil {
			return err
		}
	}
	if r.Percentage != nil {
		return ValidatePercentage(*r.Percentage)
	}
	return nil
}

// IsEmpty reports whether the request carries no fields.
func (r *UpdateOptimizationRequest) IsEmpty() bool {
	return r.PortfolioID == nil && r.ScenarioID == nil && r.Shipper == nil &&
		r.IsCompleted == nil && r.Percentage == nil
}

// ProgressUpdate is the partial update applied by a generation run. ExpectedVersion guards
// against a concurrent writer.
type ProgressUpdate struct {
	OptimizationID  int64
	Percentage      float64
	IsCompleted     bool
	ExpectedVersion int
}

// OptimizationFilter selects optimization records. Empty fields are ignored.
type OptimizationFilter struct {
	PortfolioID string
	ScenarioID  string
	Shipper     string
	IsCompleted *bool
}

// StaleOptimizationQuery selects incomplete optimizations not updated since Before.
type StaleOptimizationQuery struct {
	Before time.Time
	Limit  int
}

// OptimizationSummary bundles an optimization with its result rows.
type OptimizationSummary struct {
	Optimization *Optimization `json:"optimization"`
	Results      []*OptResult  `json:"results"`
}

// ValidatePercentage checks that p lies in [0, 100].
func ValidatePercentage(p float64) error {
	if math.IsNaN(p) || p < 0 || p > MaxPercentage {
		return errors.New("percentage must be between 0 and 100")
	}
	return nil
}

// RoundPercentage rounds p to two decimal places.
func RoundPercentage(p float64) float64 {
	return math.Round(p*100) / 100
}

func validateRef(field, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(v) > maxRefLen {
		return fmt.Errorf("%s must be at most %d characters", field, maxRefLen)
	}
	return nil
}

var _ json.Marshaler = CompletionFlag(false)
