package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mibanco/fintech/pkg/domain/events"
)

// SimpleEventBus delivers events synchronously, in subscription order, on
// the publishing goroutine. Handlers registered for All run after the
// type-specific ones.
type SimpleEventBus struct {
	handlers map[events.EventType][]HandlerFunc
	mu       sync.RWMutex
}

var _ Bus = (*SimpleEventBus)(nil)

func NewSimpleEventBus() *SimpleEventBus {
	return &SimpleEventBus{handlers: make(map[events.EventType][]HandlerFunc)}
}

func (b *SimpleEventBus) Publish(ctx context.Context, event events.Event) error {
	if event == nil {
		return fmt.Errorf("eventbus: nil event")
	}
	slog.Debug("EventBus.Publish", "event_type", event.Type(), "concrete_type", fmt.Sprintf("%T", event))
	b.mu.RLock()
	typed := b.handlers[events.EventType(event.Type())]
	wildcard := b.handlers[All]
	b.mu.RUnlock()
	for _, handler := range typed {
		handler(ctx, event)
	}
	for _, handler := range wildcard {
		handler(ctx, event)
	}
	return nil
}

func (b *SimpleEventBus) Subscribe(eventType events.EventType, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
