package config

import (
	"strings"
	"time"
)

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"rmsgas"`
	Password string `env:"PASSWORD" envDefault:"rmsgas"`
	Name     string `env:"NAME"     envDefault:"rmsgas"`
	SSLMode  string `env:"SSLMODE"  envDefault:"disable"` // 'require' in production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration. Redis is optional; without it portfolio lookups go
// straight to Postgres.
type RedisConfig struct {
	Enabled            bool     `env:"ENABLED"              envDefault:"false"`
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:""`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
}

// CacheConfig contains cache configuration (Redis-based).
type CacheConfig struct {
	// PortfolioTTL is the TTL for cached portfolio date ranges.
	PortfolioTTL time.Duration `env:"PORTFOLIO_TTL" envDefault:"10m"`
	// KeyPrefix namespaces cache keys.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"rmsgas:"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.PortfolioTTL < 0 {
		c.PortfolioTTL = 0
	}
	c.KeyPrefix = strings.TrimSpace(c.KeyPrefix)
}
