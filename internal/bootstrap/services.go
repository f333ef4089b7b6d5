package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/target/rmsgas-api/config"
	"github.com/target/rmsgas-api/internal/adapters/kafkanotify"
	"github.com/target/rmsgas-api/internal/adapters/progressrunner"
	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/data"
	"github.com/target/rmsgas-api/internal/domain/optimization"
	"github.com/target/rmsgas-api/internal/observability/statsd"
	"github.com/target/rmsgas-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Portfolios      *service.PortfolioService
	Scenarios       *service.ScenarioService
	ShipperPlanning *service.ShipperPlanningService
	Optimizations   *service.OptimizationService
	OptResults      *service.OptResultService
	Bus             *optimization.Bus
	Progress        *progressrunner.Runner
	Observability   ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink *statsd.Client
	Notifier    core.RunNotifier
}

// Close releases the metrics socket and the notifier connection.
func (c *ServiceContainer) Close() error {
	var errs []error
	if err := c.Observability.MetricsSink.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close metrics sink: %w", err))
	}
	if closer, ok := c.Observability.Notifier.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close run notifier: %w", err))
		}
	}
	return errors.Join(errs...)
}

// ServiceDeps contains dependencies for creating services.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups the stores shared by the services.
type serviceRepositories struct {
	Optimizations   *data.OptimizationRepo
	OptResults      *data.OptResultRepo
	Portfolios      *data.PortfolioRepo
	Scenarios       *data.ScenarioRepo
	ShipperPlanning *data.ShipperPlanningRepo
	Cache           core.CacheRepository
}

func buildRepositories(db *sql.DB, redisClient redis.UniversalClient, cfg config.CacheConfig) *serviceRepositories {
	repos := &serviceRepositories{
		Optimizations:   data.NewOptimizationRepo(db),
		OptResults:      data.NewOptResultRepo(db),
		Portfolios:      data.NewPortfolioRepo(db),
		Scenarios:       data.NewScenarioRepo(db),
		ShipperPlanning: data.NewShipperPlanningRepo(db),
	}
	if redisClient != nil {
		prefix := cfg.KeyPrefix
		if prefix == "" {
			prefix = data.DefaultCacheKeyPrefix
		}
		repos.Cache = data.NewRedisCacheRepoWithPrefix(redisClient, prefix)
	}
	return repos
}

func buildObservability(logger *slog.Logger, cfg *config.AppConfig) ObservabilityContainer {
	obs := ObservabilityContainer{Notifier: core.NoopRunNotifier{}}

	sink, err := statsd.NewClient(statsd.Config{
		Address: cfg.Metrics.StatsdAddress,
		Prefix:  cfg.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Warn("statsd disabled", "address", cfg.Metrics.StatsdAddress, "error", err)
		sink, _ = statsd.NewClient(statsd.Config{Prefix: cfg.Metrics.Prefix, Logger: logger})
	} else if sink.Enabled() {
		logger.Info("statsd metrics enabled", "address", cfg.Metrics.StatsdAddress, "prefix", cfg.Metrics.Prefix)
	}
	obs.MetricsSink = sink

	if cfg.Kafka.IsEnabled() {
		notifier, kerr := kafkanotify.New(cfg.Kafka, logger)
		if kerr != nil {
			logger.Warn("run notifications disabled", "error", kerr)
		} else {
			logger.Info("run notifications enabled", "topic", cfg.Kafka.Topic)
			obs.Notifier = notifier
		}
	}
	return obs
}

// NewServices wires repositories, services and the progress pipeline. The progress runner is
// subscribed to the bus before any service can publish.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service config is required")
	}
	if deps.DB == nil {
		return ServiceContainer{}, errors.New("database connection is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	repos := buildRepositories(deps.DB, deps.RedisClient, cfg.Cache)
	obs := buildObservability(logger, cfg)
	container := ServiceContainer{Observability: obs, Bus: optimization.NewBus(logger)}

	var err error
	if container.Portfolios, err = service.NewPortfolioService(service.PortfolioServiceOptions{
		Repo: repos.Portfolios,
		Cache: core.NewPortfolioCache(core.PortfolioCacheOptions{
			Cache:  repos.Cache,
			TTL:    cfg.Cache.PortfolioTTL,
			Logger: logger,
		}),
	}); err != nil {
		return container, fmt.Errorf("portfolio service: %w", err)
	}
	if container.Scenarios, err = service.NewScenarioService(service.ScenarioServiceOptions{
		Repo: repos.Scenarios,
	}); err != nil {
		return container, fmt.Errorf("scenario service: %w", err)
	}
	if container.ShipperPlanning, err = service.NewShipperPlanningService(service.ShipperPlanningServiceOptions{
		Repo: repos.ShipperPlanning,
	}); err != nil {
		return container, fmt.Errorf("shipper planning service: %w", err)
	}
	if container.OptResults, err = service.NewOptResultService(service.OptResultServiceOptions{
		Repo: repos.OptResults,
	}); err != nil {
		return container, fmt.Errorf("result service: %w", err)
	}
	if container.Optimizations, err = service.NewOptimizationService(service.OptimizationServiceOptions{
		Repo:      repos.Optimizations,
		Results:   repos.OptResults,
		Publisher: container.Bus,
		Logger:    logger,
	}); err != nil {
		return container, fmt.Errorf("optimization service: %w", err)
	}

	if container.Progress, err = newProgressRunner(progressRunnerDeps{
		Repos:      repos,
		Portfolios: container.Portfolios,
		Config:     cfg.Progress,
		Obs:        obs,
		Logger:     logger,
	}); err != nil {
		return container, err
	}
	if err = container.Progress.Register(container.Bus); err != nil {
		return container, fmt.Errorf("register progress runner: %w", err)
	}

	return container, nil
}

type progressRunnerDeps struct {
	Repos      *serviceRepositories
	Portfolios core.PortfolioLookup
	Config     config.ProgressConfig
	Obs        ObservabilityContainer
	Logger     *slog.Logger
}

func newProgressRunner(deps progressRunnerDeps) (*progressrunner.Runner, error) {
	gen, err := service.NewProgressGenerator(service.ProgressGeneratorOptions{
		Optimizations: deps.Repos.Optimizations,
		Portfolios:    deps.Portfolios,
		Finalizer:     deps.Repos.OptResults,
		Config:        deps.Config,
		Logger:        deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("progress generator: %w", err)
	}
	runner, err := progressrunner.NewRunner(progressrunner.RunnerOptions{
		Generator: gen,
		Config:    deps.Config,
		Notifier:  deps.Obs.Notifier,
		Metrics:   deps.Obs.MetricsSink,
		Logger:    deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("progress runner: %w", err)
	}
	return runner, nil
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	DB       *sql.DB
	Logger   *slog.Logger
}

const (
	// shutdownWaitTimeout is the maximum time to wait for services to stop gracefully.
	shutdownWaitTimeout = 15 * time.Second
)

// serviceStartupDeps groups dependencies for service startup.
type serviceStartupDeps struct {
	ctx             context.Context
	cfg             *ServiceOrchestrationConfig
	logger          *slog.Logger
	enabledServices map[config.ServiceMode]bool
	errCh           chan error
}

// backgroundService describes a startable background component.
type backgroundService struct {
	mode  config.ServiceMode
	name  string
	start func(context.Context) error
}

// backgroundServiceHandle tracks a running background service.
type backgroundServiceHandle struct {
	mode config.ServiceMode
	name string
	done <-chan struct{}
}

// startHTTPServerIfEnabled starts the HTTP server if enabled.
func startHTTPServerIfEnabled(deps *serviceStartupDeps) *http.Server {
	if deps == nil || deps.cfg == nil || !deps.enabledServices[config.ServiceModeHTTP] {
		return nil
	}
	return StartHTTPServer(&HTTPServerConfig{
		Config:   deps.cfg.Config,
		Services: deps.cfg.Services,
		DB:       deps.cfg.DB,
		Logger:   deps.logger,
	})
}

func launchBackground(ctx context.Context, deps *serviceStartupDeps, descriptor backgroundService) <-chan struct{} {
	if deps == nil || !deps.enabledServices[descriptor.mode] {
		return nil
	}
	logger := deps.logger
	if logger == nil {
		logger = slog.Default()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := descriptor.start(ctx); err != nil {
			errMsg := fmt.Errorf("%s failed: %w", descriptor.name, err)
			select {
			case deps.errCh <- errMsg:
			case <-ctx.Done():
			default:
				logger.WarnContext(ctx, "dropping background service error",
					"service", descriptor.name,
					"error", errMsg,
				)
			}
		}
	}()

	logger.InfoContext(ctx, "background service started", "service", descriptor.name, "mode", descriptor.mode)
	return done
}

func startBackgroundServices(deps *serviceStartupDeps, services []backgroundService) []backgroundServiceHandle {
	if deps == nil {
		return nil
	}
	handles := make([]backgroundServiceHandle, 0, len(services))

	for _, svc := range services {
		done := launchBackground(deps.ctx, deps, svc)
		if done == nil {
			continue
		}

		handles = append(handles, backgroundServiceHandle{
			mode: svc.mode,
			name: svc.name,
			done: done,
		})
	}

	return handles
}

// newProgressBackgroundService runs the dispatcher workers alongside the HTTP server that feeds
// them.
func newProgressBackgroundService(deps *serviceStartupDeps) backgroundService {
	return backgroundService{
		mode: config.ServiceModeHTTP,
		name: "progress runner",
		start: func(ctx context.Context) error {
			if deps == nil || deps.cfg == nil || deps.cfg.Services.Progress == nil {
				return nil
			}
			return deps.cfg.Services.Progress.Run(ctx)
		},
	}
}

func newSweeperBackgroundService(deps *serviceStartupDeps) backgroundService {
	return backgroundService{
		mode: config.ServiceModeSweeper,
		name: "sweeper",
		start: func(ctx context.Context) error {
			if deps == nil || deps.cfg == nil {
				return nil
			}
			var sweeperCfg config.SweeperConfig
			if deps.cfg.Config != nil {
				sweeperCfg = deps.cfg.Config.Sweeper
			}
			return RunSweeper(ctx, SweeperConfig{
				DB:      deps.cfg.DB,
				Logger:  deps.logger,
				Config:  sweeperCfg,
				Metrics: deps.cfg.Services.Observability.MetricsSink,
			})
		},
	}
}

func buildBackgroundServices(deps *serviceStartupDeps) []backgroundService {
	if deps == nil {
		return nil
	}
	return []backgroundService{
		newProgressBackgroundService(deps),
		newSweeperBackgroundService(deps),
	}
}

// ServiceStartupResult holds the results of starting all services.
type ServiceStartupResult struct {
	HTTPServer *http.Server
	Background []backgroundServiceHandle
}

// startServices starts all enabled services and returns their completion channels.
func startServices(deps *serviceStartupDeps) ServiceStartupResult {
	return ServiceStartupResult{
		HTTPServer: startHTTPServerIfEnabled(deps),
		Background: startBackgroundServices(deps, buildBackgroundServices(deps)),
	}
}

// RunServicesWithShutdown starts all enabled services and manages their lifecycle.
// This function blocks until a shutdown signal is received or a service fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	serviceCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}

	enabledServices, err := cfg.Config.GetEnabledServices()
	if err != nil {
		return fmt.Errorf("determine enabled services: %w", err)
	}
	errCh := make(chan error, errorChannelBufferSize(enabledServices))

	result := startServices(&serviceStartupDeps{
		ctx:             serviceCtx,
		cfg:             cfg,
		logger:          logger,
		enabledServices: enabledServices,
		errCh:           errCh,
	})

	return waitForShutdown(shutdownConfig{
		cancel:      cancel,
		errCh:       errCh,
		httpServer:  result.HTTPServer,
		logger:      logger,
		backgrounds: result.Background,
	})
}

func errorChannelCapacity(enabled map[config.ServiceMode]bool) int {
	count := 0
	for _, mode := range config.ValidServiceModes() {
		if enabled[mode] {
			count++
		}
	}
	return count
}

func errorChannelBufferSize(enabled map[config.ServiceMode]bool) int {
	return errorChannelCapacity(enabled) + 1
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	cancel      context.CancelFunc
	errCh       <-chan error
	httpServer  *http.Server
	logger      *slog.Logger
	backgrounds []backgroundServiceHandle
}

// waitForShutdown waits for shutdown signal or service error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		cfg.logger.Info("shutting down services...")
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop drains the HTTP server first so no new jobs are published, then cancels the
// background services and waits for them.
func gracefulStop(cfg shutdownConfig) error {
	var httpErr error
	if cfg.httpServer != nil {
		httpErr = ShutdownHTTPServer(ShutdownConfig{
			Context: context.Background(),
			Server:  cfg.httpServer,
			Logger:  cfg.logger,
		})
	}

	cfg.cancel()
	for _, svc := range cfg.backgrounds {
		waitForService(svc.done, svc.name, cfg.logger)
	}

	return httpErr
}

// waitForService waits for a service to finish with timeout.
func waitForService(done <-chan struct{}, name string, logger *slog.Logger) {
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info(name + " stopped")
	case <-time.After(shutdownWaitTimeout):
		logger.Warn("timeout waiting for " + name + " to stop")
	}
}
