// Package testutil provides testing utilities and helpers for the RMSGAS optimization service.
package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/target/rmsgas-api/internal/domain/model"
)

// OptimizationRequestBuilder provides a fluent interface for building CreateOptimizationRequest
// objects for testing.
type OptimizationRequestBuilder struct {
	req *model.CreateOptimizationRequest
}

// NewOptimizationRequest creates a new OptimizationRequestBuilder with sensible defaults.
func NewOptimizationRequest() *OptimizationRequestBuilder {
	return &OptimizationRequestBuilder{
		req: &model.CreateOptimizationRequest{
			PortfolioID: "P1",
			ScenarioID:  "S1",
			Shipper:     "ACME",
		},
	}
}

// WithPortfolio sets the portfolio reference.
func (b *OptimizationRequestBuilder) WithPortfolio(id string) *OptimizationRequestBuilder {
	b.req.PortfolioID = id
	return b
}

// WithScenario sets the scenario reference.
func (b *OptimizationRequestBuilder) WithScenario(id string) *OptimizationRequestBuilder {
	b.req.ScenarioID = id
	return b
}

// WithShipper sets the shipper.
func (b *OptimizationRequestBuilder) WithShipper(shipper string) *OptimizationRequestBuilder {
	b.req.Shipper = shipper
	return b
}

// Completed marks the request as already completed at 100 percent.
func (b *OptimizationRequestBuilder) Completed() *OptimizationRequestBuilder {
	done := model.CompletionFlag(true)
	pct := model.MaxPercentage
	b.req.IsCompleted = &done
	b.req.Percentage = &pct
	return b
}

// Build returns the built request.
func (b *OptimizationRequestBuilder) Build() *model.CreateOptimizationRequest {
	out := *b.req
	return &out
}

// PortfolioRequest returns a create request for a portfolio spanning start..end.
func PortfolioRequest(id, start, end string) *model.CreatePortfolioRequest {
	return &model.CreatePortfolioRequest{PortfolioID: id, StartDate: start, EndDate: end}
}

// Portfolio returns an in-memory portfolio spanning start..end.
func Portfolio(id, start, end string) *model.Portfolio {
	return &model.Portfolio{PortfolioID: id, StartDate: start, EndDate: end}
}

// Date parses a YYYY-MM-DD date and panics on malformed input.
func Date(s string) time.Time {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

// InsertPortfolio writes a portfolio row directly, bypassing the repositories.
func InsertPortfolio(t TestingTB, db *sql.DB, id, start, end string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx,
		`INSERT INTO portfolios (portfolio_id, start_date, end_date) VALUES ($1, $2, $3)`,
		id, start, end,
	); err != nil {
		t.Fatalf("insert portfolio %s: %v", id, err)
	}
}

// CountResults returns the number of result rows stored for an optimization.
func CountResults(t TestingTB, db *sql.DB, optimizationID int64) int {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var n int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM opt_results WHERE optimization_id = $1`, optimizationID,
	).Scan(&n); err != nil {
		t.Fatalf("count results of optimization %d: %v", optimizationID, err)
	}
	return n
}
