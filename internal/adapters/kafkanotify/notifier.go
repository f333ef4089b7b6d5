// Package kafkanotify publishes generation run outcomes to Kafka.
package kafkanotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/target/rmsgas-api/config"
	"github.com/target/rmsgas-api/internal/core"
)

const batchTimeout = 10 * time.Millisecond

// messageWriter is the subset of *kafka.Writer the notifier uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier writes one JSON message per run outcome, keyed by optimization id so the outcomes of
// one optimization stay ordered on a partition.
type Notifier struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

var _ core.RunNotifier = (*Notifier)(nil)

// message is the wire format of a run outcome.
type message struct {
	OptimizationID int64          `json:"optimization_id"`
	RunID          string         `json:"run_id,omitempty"`
	Status         core.RunStatus `json:"status"`
	Inserted       int64          `json:"inserted"`
	ErrorKind      string         `json:"error_kind,omitempty"`
	Error          string         `json:"error,omitempty"`
	DurationMS     int64          `json:"duration_ms"`
	FinishedAt     time.Time      `json:"finished_at"`
}

// New constructs a Notifier from cfg. It fails when no broker is configured.
func New(cfg config.KafkaConfig, logger *slog.Logger) (*Notifier, error) {
	cfg.Sanitize()
	if !cfg.IsEnabled() {
		return nil, errors.New("kafka: at least one broker required")
	}

	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: batchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Async:        false,
	})
	return newWithWriter(w, cfg.Topic, logger), nil
}

func newWithWriter(w messageWriter, topic string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		writer: w,
		topic:  topic,
		logger: logger.With("component", "kafka_notifier", "topic", topic),
	}
}

// NotifyRun implements core.RunNotifier.
func (n *Notifier) NotifyRun(ctx context.Context, outcome core.RunOutcome) error {
	value, err := json.Marshal(message{
		OptimizationID: outcome.OptimizationID,
		RunID:          outcome.RunID,
		Status:         outcome.Status,
		Inserted:       outcome.Inserted,
		ErrorKind:      outcome.ErrorKind,
		Error:          outcome.Error,
		DurationMS:     outcome.Duration.Milliseconds(),
		FinishedAt:     outcome.FinishedAt,
	})
	if err != nil {
		return fmt.Errorf("encode run outcome: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(outcome.OptimizationID, 10)),
		Value: value,
		Time:  outcome.FinishedAt,
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write to %s: %w", n.topic, err)
	}
	n.logger.DebugContext(ctx, "run outcome published",
		"optimization_id", outcome.OptimizationID,
		"status", outcome.Status,
	)
	return nil
}

// Close flushes pending messages and closes the writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
