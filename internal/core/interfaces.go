// Package core defines the ports between the RMSGAS services and their stores.
package core

import (
	"context"

	"github.com/target/rmsgas-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// Service implementations depend on these interfaces, not on concrete repositories.

// OptimizationRepository is the job store.
type OptimizationRepository interface {
	Create(ctx context.Context, req *model.CreateOptimizationRequest) (*model.Optimization, error)
	GetByID(ctx context.Context, id int64) (*model.Optimization, error)
	List(ctx context.Context, filter model.OptimizationFilter) ([]*model.Optimization, error)
	// Update merges the non-nil request fields into the stored row and bumps its version.
	Update(ctx context.Context, id int64, req model.UpdateOptimizationRequest) (*model.Optimization, error)
	// UpdateProgress writes percentage and is_completed only when the stored version matches.
	UpdateProgress(ctx context.Context, upd model.ProgressUpdate) (*model.Optimization, error)
	ListStale(ctx context.Context, q model.StaleOptimizationQuery) ([]*model.Optimization, error)
}

// OptResultRepository is the result store.
type OptResultRepository interface {
	Create(ctx context.Context, req *model.CreateOptResultRequest) (*model.OptResult, error)
	BulkInsert(ctx context.Context, rows []*model.OptResult) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.OptResult, error)
	ListByOptimizationID(ctx context.Context, optimizationID int64) ([]*model.OptResult, error)
	Update(ctx context.Context, id int64, req model.UpdateOptResultRequest) (*model.OptResult, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByOptimizationID(ctx context.Context, optimizationID int64) (int64, error)
}

// RunFinalizer applies the terminal write of a generation run atomically.
type RunFinalizer interface {
	CompleteRun(ctx context.Context, params model.CompleteRunParams) (*model.Optimization, error)
}

// PortfolioRepository defines the interface for portfolio data operations.
type PortfolioRepository interface {
	Create(ctx context.Context, req *model.CreatePortfolioRequest) (*model.Portfolio, error)
	GetByID(ctx context.Context, id string) (*model.Portfolio, error)
	List(ctx context.Context) ([]*model.Portfolio, error)
	Update(ctx context.Context, id string, req model.UpdatePortfolioRequest) (*model.Portfolio, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PortfolioLookup resolves a portfolio for a generation run.
type PortfolioLookup interface {
	GetByID(ctx context.Context, id string) (*model.Portfolio, error)
}

// ScenarioRepository defines the interface for scenario data operations.
type ScenarioRepository interface {
	Create(ctx context.Context, req *model.CreateScenarioRequest) (*model.Scenario, error)
	GetByID(ctx context.Context, id string) (*model.Scenario, error)
	List(ctx context.Context) ([]*model.Scenario, error)
	ListByPortfolioID(ctx context.Context, portfolioID string) ([]*model.Scenario, error)
	Update(ctx context.Context, id string, req model.UpdateScenarioRequest) (*model.Scenario, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ShipperPlanningRepository defines the interface for shipper planning data operations.
type ShipperPlanningRepository interface {
	List(ctx context.Context, filter model.ShipperPlanningFilter) ([]*model.ShipperPlanning, error)
	BulkCreate(ctx context.Context, rows []*model.ShipperPlanning) (int64, error)
	BulkDelete(ctx context.Context, criteria model.ShipperPlanningDeleteCriteria) (int64, error)
}

// DBPinger checks database connectivity.
type DBPinger interface {
	PingContext(ctx context.Context) error
}
