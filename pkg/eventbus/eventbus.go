package eventbus

import (
	"context"

	"github.com/mibanco/fintech/pkg/domain/events"
)

// All subscribes a handler to every event type.
const All events.EventType = "*"

// HandlerFunc reacts to a published event.
type HandlerFunc func(ctx context.Context, event events.Event)

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	Publish(ctx context.Context, event events.Event) error
	Subscribe(eventType events.EventType, handler HandlerFunc)
}
