// Package mocks provides mock implementations for testing the RMSGAS optimization service.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	mockRepo := mocks.NewMockOptimizationRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(opt, nil)
package mocks

// Generate mock for OptimizationRepository interface from internal/core package.
// This creates MockOptimizationRepository with methods for all OptimizationRepository interface methods:
// Create, GetByID, List, ListStale, Update, UpdateProgress
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=optimization_repository_mock.go github.com/target/rmsgas-api/internal/core OptimizationRepository

// Generate mock for OptResultRepository interface from internal/core package.
// This creates MockOptResultRepository with methods for all OptResultRepository interface methods:
// Create, BulkInsert, GetByID, ListByOptimizationID, Update, Delete, DeleteByOptimizationID
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=opt_result_repository_mock.go github.com/target/rmsgas-api/internal/core OptResultRepository

// Generate mock for RunFinalizer interface from internal/core package.
// This creates MockRunFinalizer with methods for all RunFinalizer interface methods:
// CompleteRun
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=run_finalizer_mock.go github.com/target/rmsgas-api/internal/core RunFinalizer

// Generate mock for PortfolioRepository interface from internal/core package.
// This creates MockPortfolioRepository with methods for all PortfolioRepository interface methods:
// Create, GetByID, List, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=portfolio_repository_mock.go github.com/target/rmsgas-api/internal/core PortfolioRepository

// Generate mock for PortfolioLookup interface from internal/core package.
// This creates MockPortfolioLookup with methods for all PortfolioLookup interface methods:
// GetByID
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=portfolio_lookup_mock.go github.com/target/rmsgas-api/internal/core PortfolioLookup

// Generate mock for ScenarioRepository interface from internal/core package.
// This creates MockScenarioRepository with methods for all ScenarioRepository interface methods:
// Create, GetByID, List, ListByPortfolioID, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=scenario_repository_mock.go github.com/target/rmsgas-api/internal/core ScenarioRepository

// Generate mock for ShipperPlanningRepository interface from internal/core package.
// This creates MockShipperPlanningRepository with methods for all ShipperPlanningRepository interface methods:
// List, BulkCreate, BulkDelete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=shipper_planning_repository_mock.go github.com/target/rmsgas-api/internal/core ShipperPlanningRepository

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete, Health
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/target/rmsgas-api/internal/core CacheRepository

// Generate mock for RunNotifier interface from internal/core package.
// This creates MockRunNotifier with methods for all RunNotifier interface methods:
// NotifyRun
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=run_notifier_mock.go github.com/target/rmsgas-api/internal/core RunNotifier

// Generate mock for DBPinger interface from internal/core package.
// This creates MockDBPinger with methods for all DBPinger interface methods:
// PingContext
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=db_pinger_mock.go github.com/target/rmsgas-api/internal/core DBPinger
