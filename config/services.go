package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ServiceMode represents the available service modes.
type ServiceMode string

const (
	// ServiceModeHTTP runs the HTTP server together with the progress runner it feeds.
	ServiceModeHTTP ServiceMode = "http"
	// ServiceModeSweeper runs the stale run sweeper.
	ServiceModeSweeper ServiceMode = "sweeper"
)

// ValidServiceModes returns all valid service mode names.
func ValidServiceModes() []ServiceMode {
	return []ServiceMode{ServiceModeHTTP, ServiceModeSweeper}
}

// ParseServices parses a comma-delimited string of service names and returns the enabled services.
// It validates that all service names are valid and returns an error if any are invalid.
func ParseServices(servicesStr string) (map[ServiceMode]bool, error) {
	services := make(map[ServiceMode]bool)

	if servicesStr == "" {
		return services, errors.New("at least one service must be specified")
	}

	for _, part := range strings.Split(servicesStr, ",") {
		serviceName := strings.TrimSpace(part)
		if serviceName == "" {
			continue
		}

		mode := ServiceMode(serviceName)
		switch mode {
		case ServiceModeHTTP, ServiceModeSweeper:
			services[mode] = true
		default:
			return nil, fmt.Errorf("invalid service name: %q (valid options: http, sweeper)", serviceName)
		}
	}

	if len(services) == 0 {
		return nil, errors.New("at least one valid service must be specified")
	}

	return services, nil
}

// ProgressConfig contains progress runner configuration.
type ProgressConfig struct {
	// Concurrency is the number of worker goroutines executing runs.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`

	// QueueSize bounds the runs waiting for a worker.
	QueueSize int `env:"QUEUE_SIZE" envDefault:"256"`

	// RunTimeout bounds one whole run.
	RunTimeout time.Duration `env:"RUN_TIMEOUT" envDefault:"10m"`

	// OpTimeout bounds each store operation inside a run.
	OpTimeout time.Duration `env:"OP_TIMEOUT" envDefault:"15s"`

	// UpdateEvery writes intermediate progress every N days. The terminal update is always written.
	UpdateEvery int `env:"UPDATE_EVERY" envDefault:"1"`

	// DefaultRGT tags generated rows.
	DefaultRGT string `env:"DEFAULT_RGT" envDefault:"RGTSU"`
}

// Sanitize applies guardrails to progress runner configuration values.
func (p *ProgressConfig) Sanitize() {
	if p.Concurrency < 1 {
		p.Concurrency = 1
	}
	if p.QueueSize < 1 {
		p.QueueSize = 1
	}
	if p.RunTimeout <= 0 {
		p.RunTimeout = 10 * time.Minute
	}
	if p.OpTimeout <= 0 {
		p.OpTimeout = 15 * time.Second
	}
	if p.OpTimeout > p.RunTimeout {
		p.OpTimeout = p.RunTimeout
	}
	if p.UpdateEvery < 1 {
		p.UpdateEvery = 1
	}
	if p.DefaultRGT = strings.TrimSpace(p.DefaultRGT); p.DefaultRGT == "" {
		p.DefaultRGT = "RGTSU"
	}
}

// SweeperConfig contains stale run sweeper configuration.
type SweeperConfig struct {
	// Schedule is a robfig/cron expression; descriptors such as "@every 5m" are accepted.
	Schedule string `env:"SCHEDULE" envDefault:"@every 5m"`

	// StaleAfter is the age after which an incomplete run is reported.
	StaleAfter time.Duration `env:"STALE_AFTER" envDefault:"30m"`

	// BatchSize bounds the runs reported per sweep.
	BatchSize int `env:"BATCH_SIZE" envDefault:"100"`
}

// Sanitize applies guardrails to sweeper configuration values.
func (s *SweeperConfig) Sanitize() {
	if s.Schedule = strings.TrimSpace(s.Schedule); s.Schedule == "" {
		s.Schedule = "@every 5m"
	}
	if s.StaleAfter <= 0 {
		s.StaleAfter = 30 * time.Minute
	}
	if s.BatchSize < 1 {
		s.BatchSize = 100
	}
}
