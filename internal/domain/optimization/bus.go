// Package optimization carries the in-process "optimization created" event from the job store
// to the progress pipeline.
package optimization

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

// EventCreated is the only event kind carried by the Bus.
const EventCreated = "optimization.created"

// Handler consumes a created optimization.
type Handler func(ctx context.Context, opt *model.Optimization) error

// Publisher emits created optimizations.
type Publisher interface {
	Publish(ctx context.Context, opt *model.Optimization)
}

// Subscriber registers named handlers.
type Subscriber interface {
	Subscribe(name string, h Handler) error
}

type subscription struct {
	name    string
	handler Handler
}

// Bus is a process-scoped publish/subscribe channel for EventCreated. Subscriptions live for the
// lifetime of the Bus; there is no replay for events published before a handler subscribes.
type Bus struct {
	logger *slog.Logger

	mu   sync.RWMutex
	subs []subscription
}

// NewBus constructs an empty Bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{logger: logger.With("component", "optimization_bus")}
}

// Subscribe registers h under name. Registering a name twice returns a duplicate_subscription error.
func (b *Bus) Subscribe(name string, h Handler) error {
	if h == nil {
		return apperrors.Validation("handler is required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.subs {
		if s.name == name {
			return apperrors.DuplicateSubscription(name)
		}
	}
	b.subs = append(b.subs, subscription{name: name, handler: h})
	return nil
}

// Publish invokes every handler synchronously in registration order. Handler errors and panics
// are logged and never reach the caller.
func (b *Bus) Publish(ctx context.Context, opt *model.Optimization) {
	if opt == nil {
		return
	}
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	if len(subs) == 0 {
		b.logger.DebugContext(ctx, "event dropped without subscribers",
			"event", EventCreated, "optimization_id", opt.ID)
		return
	}
	for _, s := range subs {
		if err := b.deliver(ctx, s, opt); err != nil {
			b.logger.ErrorContext(ctx, "subscriber failed",
				"event", EventCreated,
				"subscriber", s.name,
				"optimization_id", opt.ID,
				"error", err)
		}
	}
}

func (b *Bus) deliver(ctx context.Context, s subscription, opt *model.Optimization) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("subscriber panic: %v", r)
		}
	}()
	return s.handler(ctx, opt)
}

// Subscribers returns the registered subscriber names in registration order.
func (b *Bus) Subscribers() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.subs))
	for i, s := range b.subs {
		out[i] = s.name
	}
	return out
}

var (
	_ Publisher  = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)
