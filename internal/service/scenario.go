package service

import (
	"context"
	"errors"

	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/domain/model"
)

// ScenarioServiceOptions groups dependencies for ScenarioService.
type ScenarioServiceOptions struct {
	Repo core.ScenarioRepository
}

// ScenarioService exposes scenario CRUD.
type ScenarioService struct {
	repo core.ScenarioRepository
}

// NewScenarioService constructs a new ScenarioService.
func NewScenarioService(opts ScenarioServiceOptions) (*ScenarioService, error) {
	if opts.Repo == nil {
		return nil, errors.New("ScenarioRepository is required")
	}
	return &ScenarioService{repo: opts.Repo}, nil
}

// Create creates a scenario.
func (s *ScenarioService) Create(ctx context.Context, req *model.CreateScenarioRequest) (*model.Scenario, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a scenario by ID.
func (s *ScenarioService) GetByID(ctx context.Context, id string) (*model.Scenario, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every scenario.
func (s *ScenarioService) List(ctx context.Context) ([]*model.Scenario, error) {
	return s.repo.List(ctx)
}

// ListByPortfolio returns the scenarios derived from a portfolio.
func (s *ScenarioService) ListByPortfolio(ctx context.Context, portfolioID string) ([]*model.Scenario, error) {
	return s.repo.ListByPortfolioID(ctx, portfolioID)
}

// Update moves a scenario under another portfolio.
func (s *ScenarioService) Update(
	ctx context.Context,
	id string,
	req model.UpdateScenarioRequest,
) (*model.Scenario, error) {
	return s.repo.Update(ctx, id, req)
}

// Delete deletes a scenario.
func (s *ScenarioService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
