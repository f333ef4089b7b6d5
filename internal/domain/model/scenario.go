//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Scenario is a what-if variant of a portfolio.
type Scenario struct {
	ScenarioID        string    `json:"scenario_id"         db:"scenario_id"`
	ParentPortfolioID string    `json:"parent_portfolio_id" db:"parent_portfolio_id"`
	CreatedAt         time.Time `json:"created_at"          db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"          db:"updated_at"`
}

// CreateScenarioRequest represents a request to create a scenario.
type CreateScenarioRequest struct {
	ScenarioID        string `json:"scenario_id"`
	ParentPortfolioID string `json:"parent_portfolio_id"`
}

// Validate validates the CreateScenarioRequest fields.
func (r *CreateScenarioRequest) Validate() error {
	if strings.TrimSpace(r.ScenarioID) == "" {
		return errors.New("scenario_id is required")
	}
	if len(r.ScenarioID) > maxIDLen || len(r.ParentPortfolioID) > maxIDLen {
		return errors.New("identifiers must be at most 100 characters")
	}
	return nil
}

// UpdateScenarioRequest moves a scenario under another portfolio.
type UpdateScenarioRequest struct {
	ParentPortfolioID string `json:"parent_portfolio_id"`
}

// Validate validates the UpdateScenarioRequest fields.
func (r *UpdateScenarioRequest) Validate() error {
	if len(r.ParentPortfolioID) > maxIDLen {
		return errors.New("parent_portfolio_id must be at most 100 characters")
	}
	return nil
}
