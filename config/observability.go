package config

import (
	"strings"
	"time"
)

const defaultObservabilityName = "rmsgas"

// MetricsConfig controls emission of metrics to a StatsD sink.
type MetricsConfig struct {
	StatsdAddress string `env:"STATSD_ADDRESS" envDefault:""`
	Prefix        string `env:"PREFIX"         envDefault:"rmsgas"`
}

// Sanitize normalises derived fields and enforces safe defaults.
func (c *MetricsConfig) Sanitize() {
	c.StatsdAddress = strings.TrimSpace(c.StatsdAddress)
	if c.Prefix = strings.TrimSpace(c.Prefix); c.Prefix == "" {
		c.Prefix = defaultObservabilityName
	}
}

// IsEnabled returns true when metrics emission is active after sanitisation.
func (c *MetricsConfig) IsEnabled() bool {
	return c.StatsdAddress != ""
}

// KafkaConfig controls the run outcome notifier.
type KafkaConfig struct {
	Brokers      []string      `env:"BROKERS"       envDefault:""`
	Topic        string        `env:"TOPIC"         envDefault:"rmsgas.optimization.runs"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
}

// Sanitize drops blank brokers and restores defaults.
func (c *KafkaConfig) Sanitize() {
	brokers := make([]string, 0, len(c.Brokers))
	for _, b := range c.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	c.Brokers = brokers
	if c.Topic = strings.TrimSpace(c.Topic); c.Topic == "" {
		c.Topic = "rmsgas.optimization.runs"
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 5 * time.Second
	}
}

// IsEnabled reports whether at least one broker is configured.
func (c *KafkaConfig) IsEnabled() bool {
	return len(c.Brokers) > 0
}
