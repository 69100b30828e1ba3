package events

import (
	"time"

	"github.com/google/uuid"
)

type BaseOpt func(*Base)

// NewBase returns a Base with a fresh ID and correlation ID stamped now.
func NewBase(opts ...BaseOpt) Base {
	b := Base{
		ID:            uuid.New(),
		CorrelationID: uuid.New(),
		OccurredAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func WithAccountNumber(number string) BaseOpt {
	return func(b *Base) { b.AccountNumber = number }
}

func WithCorrelationID(id uuid.UUID) BaseOpt {
	return func(b *Base) { b.CorrelationID = id }
}

func WithOccurredAt(t time.Time) BaseOpt {
	return func(b *Base) { b.OccurredAt = t }
}
