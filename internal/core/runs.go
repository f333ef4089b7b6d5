package core

import (
	"context"
	"time"
)

// RunStatus is the terminal state of a generation run.
type RunStatus string

const (
	// RunStatusCompleted marks a run whose rows and terminal progress were committed.
	RunStatusCompleted RunStatus = "completed"
	// RunStatusFailed marks a run that ended with an error.
	RunStatusFailed RunStatus = "failed"
)

// RunOutcome describes how a generation run ended.
type RunOutcome struct {
	OptimizationID int64         `json:"optimization_id"`
	RunID          string        `json:"run_id"`
	Status         RunStatus     `json:"status"`
	Inserted       int64         `json:"inserted"`
	ErrorKind      string        `json:"error_kind,omitempty"`
	Error          string        `json:"error,omitempty"`
	Duration       time.Duration `json:"duration_ns"`
	FinishedAt     time.Time     `json:"finished_at"`
}

// RunNotifier publishes run outcomes outside the process.
type RunNotifier interface {
	NotifyRun(ctx context.Context, outcome RunOutcome) error
}

// NoopRunNotifier discards run outcomes.
type NoopRunNotifier struct{}

// NotifyRun implements RunNotifier.
func (NoopRunNotifier) NotifyRun(context.Context, RunOutcome) error { return nil }
