package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is a record of something that already happened to a customer or a
// product. String renders a human-readable line for consoles and logs.
type Event interface {
	Type() string
	String() string
}

// Base carries the fields shared by every event.
type Base struct {
	ID            uuid.UUID `json:"id"`
	CorrelationID uuid.UUID `json:"correlation_id"`
	AccountNumber string    `json:"account_number,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
