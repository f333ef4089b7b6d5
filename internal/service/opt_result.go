package service

import (
	"context"
	"errors"

	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/domain/model"
)

// OptResultServiceOptions groups dependencies for OptResultService.
type OptResultServiceOptions struct {
	Repo core.OptResultRepository
}

// OptResultService exposes single result row maintenance.
type OptResultService struct {
	repo core.OptResultRepository
}

// NewOptResultService constructs a new OptResultService.
func NewOptResultService(opts OptResultServiceOptions) (*OptResultService, error) {
	if opts.Repo == nil {
		return nil, errors.New("OptResultRepository is required")
	}
	return &OptResultService{repo: opts.Repo}, nil
}

// Create inserts one result row.
func (s *OptResultService) Create(ctx context.Context, req *model.CreateOptResultRequest) (*model.OptResult, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a result row by ID.
func (s *OptResultService) GetByID(ctx context.Context, id int64) (*model.OptResult, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges the supplied fields into a result row.
func (s *OptResultService) Update(
	ctx context.Context,
	id int64,
	req model.UpdateOptResultRequest,
) (*model.OptResult, error) {
	return s.repo.Update(ctx, id, req)
}

// Delete deletes a result row.
func (s *OptResultService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
