package service

import (
	"context"
	"errors"

	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/domain/model"
)

// PortfolioServiceOptions groups dependencies for PortfolioService.
type PortfolioServiceOptions struct {
	Repo  core.PortfolioRepository // Required: portfolio store
	Cache *core.PortfolioCache     // Optional: read-through cache
}

// PortfolioService orchestrates portfolio CRUD and keeps the portfolio cache coherent.
// It also serves as the core.PortfolioLookup of the progress generator.
type PortfolioService struct {
	repo  core.PortfolioRepository
	cache *core.PortfolioCache
}

var _ core.PortfolioLookup = (*PortfolioService)(nil)

// NewPortfolioService constructs a new PortfolioService.
func NewPortfolioService(opts PortfolioServiceOptions) (*PortfolioService, error) {
	if opts.Repo == nil {
		return nil, errors.New("PortfolioRepository is required")
	}
	return &PortfolioService{repo: opts.Repo, cache: opts.Cache}, nil
}

// Create creates a portfolio.
func (s *PortfolioService) Create(ctx context.Context, req *model.CreatePortfolioRequest) (*model.Portfolio, error) {
	p, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.Store(ctx, p)
	return p, nil
}

// GetByID returns a portfolio, serving it from the cache when possible.
func (s *PortfolioService) GetByID(ctx context.Context, id string) (*model.Portfolio, error) {
	if p, ok := s.cache.Get(ctx, id); ok {
		return p, nil
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Store(ctx, p)
	return p, nil
}

// List returns every portfolio.
func (s *PortfolioService) List(ctx context.Context) ([]*model.Portfolio, error) {
	return s.repo.List(ctx)
}

// Update replaces the date range of a portfolio.
func (s *PortfolioService) Update(
	ctx context.Context,
	id string,
	req model.UpdatePortfolioRequest,
) (*model.Portfolio, error) {
	s.cache.Invalidate(ctx, id)
	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Store(ctx, p)
	return p, nil
}

// Delete deletes a portfolio. The cache entry is dropped after the delete so a concurrent read
// cannot repopulate it with the removed row.
func (s *PortfolioService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	s.cache.Invalidate(ctx, id)
	return deleted, nil
}
