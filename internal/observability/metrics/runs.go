// Package metrics emits the progress pipeline's StatsD metrics.
package metrics

import (
	"time"

	obserrors "github.com/target/rmsgas-api/internal/observability/errors"
	"github.com/target/rmsgas-api/internal/observability/statsd"
)

// Run status tags.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRejected  = "rejected"
)

// Metric names.
const (
	RunTransition = "progress.run"
	RunDuration   = "progress.run.duration"
	RunRows       = "progress.run.rows"
	StaleRuns     = "progress.stale"
	QueueDepth    = "progress.queue.depth"
)

// RunMetric captures the outcome of one generation run.
type RunMetric struct {
	Status   string
	Duration time.Duration
	Rows     int64
	Err      error
}

// EmitRunLifecycle emits the run counter, its duration and the rows written.
func EmitRunLifecycle(sink statsd.Sink, in RunMetric) {
	if sink == nil {
		return
	}
	tags := map[string]string{"status": in.Status}
	if in.Err != nil {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_kind"] = class
		}
	}

	sink.Count(RunTransition, 1, tags)
	if in.Duration > 0 {
		sink.Timing(RunDuration, in.Duration, CloneTags(tags))
	}
	if in.Rows > 0 {
		sink.Count(RunRows, in.Rows, nil)
	}
}

// EmitStale records how many incomplete runs the sweeper found.
func EmitStale(sink statsd.Sink, count int) {
	if sink == nil {
		return
	}
	sink.Gauge(StaleRuns, float64(count), nil)
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
