// Package config loads the RMSGAS service configuration from environment variables.
package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - database.go: Postgres, Redis and cache configuration
//   - http.go: HTTP server configuration
//   - services.go: service modes, progress runner and sweeper configuration
//   - observability.go: metrics and run notifications
type AppConfig struct {
	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`
	Cache    CacheConfig `envPrefix:"CACHE_"`

	// HTTP server configuration
	HTTP HTTPConfig `envPrefix:"HTTP_"`

	// Service mode configuration
	Services string `env:"SERVICES" envDefault:"http"`

	// Progress pipeline configuration
	Progress ProgressConfig `envPrefix:"PROGRESS_"`

	// Stale run sweeper configuration
	Sweeper SweeperConfig `envPrefix:"SWEEPER_"`

	// Run outcome notifications
	Kafka KafkaConfig `envPrefix:"KAFKA_"`

	// Observability configuration
	Metrics MetricsConfig `envPrefix:"METRICS_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Cache.Sanitize()
	c.HTTP.Sanitize()
	c.Progress.Sanitize()
	c.Sweeper.Sanitize()
	c.Kafka.Sanitize()
	c.Metrics.Sanitize()
}

// GetEnabledServices returns the enabled services based on the Services field.
func (c *AppConfig) GetEnabledServices() (map[ServiceMode]bool, error) {
	return ParseServices(c.Services)
}

// IsHTTPServerEnabled returns true if the HTTP server service is enabled.
func (c *AppConfig) IsHTTPServerEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeHTTP]
}

// IsSweeperEnabled returns true if the stale run sweeper is enabled.
func (c *AppConfig) IsSweeperEnabled() bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[ServiceModeSweeper]
}
