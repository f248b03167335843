package eventbus

import (
	"context"
	"log/slog"
	"sync"
)

// Subscriber receives events synchronously, on the publisher's goroutine.
type Subscriber func(Event)

// InProcessBus dispatches events synchronously to registered subscribers.
// This is the local-mode bus: the UI layer observes suggestion updates
// through it without any broker.
type InProcessBus struct {
	logger *slog.Logger

	mu   sync.Mutex
	subs []Subscriber
}

// NewInProcessBus creates a new in-process bus.
func NewInProcessBus(logger *slog.Logger) *InProcessBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProcessBus{logger: logger}
}

// Subscribe registers a subscriber for all events.
func (b *InProcessBus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Publish dispatches the event to every subscriber. A panicking
// subscriber is logged and skipped; publishing never fails.
func (b *InProcessBus) Publish(ctx context.Context, event Event) error {
	b.mu.Lock()
	subs := make([]Subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, fn := range subs {
		b.dispatch(fn, event)
	}
	b.logger.Debug("event dispatched", "event", event.Name, "event_id", event.ID)
	return nil
}

func (b *InProcessBus) dispatch(fn Subscriber, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("subscriber panicked", "event", event.Name, "panic", r)
		}
	}()
	fn(event)
}

// Close is a no-op for the in-process bus.
func (b *InProcessBus) Close() error {
	return nil
}

var _ Publisher = (*InProcessBus)(nil)
