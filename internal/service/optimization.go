// Package service provides business logic services for the RMSGAS optimization service.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/domain/model"
	"github.com/target/rmsgas-api/internal/domain/optimization"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

// OptimizationServiceOptions groups dependencies for OptimizationService.
type OptimizationServiceOptions struct {
	Repo      core.OptimizationRepository // Required: job store
	Results   core.OptResultRepository    // Required: result store
	Publisher optimization.Publisher      // Required: receives every created or regenerated job
	Logger    *slog.Logger                // Optional: structured logger
}

// OptimizationService manages optimization jobs and hands created jobs to the progress pipeline.
type OptimizationService struct {
	repo      core.OptimizationRepository
	results   core.OptResultRepository
	publisher optimization.Publisher
	logger    *slog.Logger
}

// NewOptimizationService constructs a new OptimizationService.
func NewOptimizationService(opts OptimizationServiceOptions) (*OptimizationService, error) {
	if opts.Repo == nil {
		return nil, errors.New("OptimizationRepository is required")
	}
	if opts.Results == nil {
		return nil, errors.New("OptResultRepository is required")
	}
	if opts.Publisher == nil {
		return nil, errors.New("publisher is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &OptimizationService{
		repo:      opts.Repo,
		results:   opts.Results,
		publisher: opts.Publisher,
		logger:    logger.With("component", "optimization_service"),
	}, nil
}

// Create stores a job and publishes it. The response does not wait for generation.
func (s *OptimizationService) Create(
	ctx context.Context,
	req *model.CreateOptimizationRequest,
) (*model.Optimization, error) {
	opt, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, opt)
	return opt, nil
}

// Regenerate publishes an existing job again. Each run appends a full set of result rows.
func (s *OptimizationService) Regenerate(ctx context.Context, id int64) (*model.Optimization, error) {
	opt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "regenerating optimization results", "optimization_id", id)
	s.publisher.Publish(ctx, opt)
	return opt, nil
}

// GetByID retrieves a job by ID.
func (s *OptimizationService) GetByID(ctx context.Context, id int64) (*model.Optimization, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns jobs matching filter, newest first.
func (s *OptimizationService) List(
	ctx context.Context,
	filter model.OptimizationFilter,
) ([]*model.Optimization, error) {
	return s.repo.List(ctx, filter)
}

// Update merges the supplied fields into a job.
func (s *OptimizationService) Update(
	ctx context.Context,
	id int64,
	req model.UpdateOptimizationRequest,
) (*model.Optimization, error) {
	return s.repo.Update(ctx, id, req)
}

// Results returns the result rows of a job ordered by delivery date. A job without rows yields
// a not_found error.
func (s *OptimizationService) Results(ctx context.Context, id int64) ([]*model.OptResult, error) {
	rows, err := s.results.ListByOptimizationID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFoundf("no results found for optimization %d", id)
	}
	return rows, nil
}

// DeleteResults removes every result row of a job and returns how many were deleted.
func (s *OptimizationService) DeleteResults(ctx context.Context, id int64) (int64, error) {
	return s.results.DeleteByOptimizationID(ctx, id)
}

// Summary returns a job together with its result rows.
func (s *OptimizationService) Summary(ctx context.Context, id int64) (*model.OptimizationSummary, error) {
	opt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.results.ListByOptimizationID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.OptimizationSummary{Optimization: opt, Results: rows}, nil
}
