package core

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/target/rmsgas-api/internal/domain/model"
)

// CacheRepository defines the interface for caching operations.
// This follows the hexagonal architecture pattern where the core defines interfaces
// and the data layer provides implementations.
type CacheRepository interface {
	// Set stores a value in the cache with the given key and TTL.
	// If TTL is 0, the key will not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value from the cache by key.
	// Returns nil if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key from the cache.
	// Returns true if the key was deleted, false if it didn't exist.
	Delete(ctx context.Context, key string) (bool, error)

	// Health checks the health of the cache connection.
	Health(ctx context.Context) error
}

// PortfolioCache keeps JSON copies of portfolios in a CacheRepository. Cache failures are
// logged and reported as misses so the store stays authoritative.
type PortfolioCache struct {
	cache  CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

// PortfolioCacheOptions bundles dependencies for NewPortfolioCache.
type PortfolioCacheOptions struct {
	Cache  CacheRepository
	TTL    time.Duration
	Logger *slog.Logger
}

// DefaultPortfolioCacheTTL is used when no TTL is configured.
const DefaultPortfolioCacheTTL = 10 * time.Minute

// NewPortfolioCache creates a new PortfolioCache. A nil Cache yields a cache that always misses.
func NewPortfolioCache(opts PortfolioCacheOptions) *PortfolioCache {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultPortfolioCacheTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PortfolioCache{
		cache:  opts.Cache,
		ttl:    ttl,
		logger: logger.With("component", "portfolio_cache"),
	}
}

// Get returns the cached portfolio and whether it was found.
func (c *PortfolioCache) Get(ctx context.Context, id string) (*model.Portfolio, bool) {
	if c == nil || c.cache == nil || id == "" {
		return nil, false
	}

	raw, err := c.cache.Get(ctx, portfolioKey(id))
	if err != nil {
		c.logger.WarnContext(ctx, "portfolio cache read failed", "portfolio_id", id, "error", err)
		return nil, false
	}
	if len(raw) == 0 {
		return nil, false
	}

	var p model.Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		c.logger.WarnContext(ctx, "portfolio cache entry corrupt", "portfolio_id", id, "error", err)
		return nil, false
	}
	return &p, true
}

// Store caches p under its id.
func (c *PortfolioCache) Store(ctx context.Context, p *model.Portfolio) {
	if c == nil || c.cache == nil || p == nil || p.PortfolioID == "" {
		return
	}

	raw, err := json.Marshal(p)
	if err != nil {
		c.logger.WarnContext(ctx, "portfolio cache encode failed", "portfolio_id", p.PortfolioID, "error", err)
		return
	}
	if err := c.cache.Set(ctx, portfolioKey(p.PortfolioID), raw, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "portfolio cache write failed", "portfolio_id", p.PortfolioID, "error", err)
	}
}

// Invalidate removes the cached copy of a portfolio.
// This should be called when a portfolio is updated or deleted.
func (c *PortfolioCache) Invalidate(ctx context.Context, id string) {
	if c == nil || c.cache == nil || id == "" {
		return
	}
	if _, err := c.cache.Delete(ctx, portfolioKey(id)); err != nil {
		c.logger.WarnContext(ctx, "portfolio cache invalidation failed", "portfolio_id", id, "error", err)
	}
}

// portfolioKey generates a cache key for a portfolio.
func portfolioKey(id string) string {
	return "portfolio:" + id
}
