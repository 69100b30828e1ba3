package events_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mibanco/fintech/pkg/domain/events"
	"github.com/mibanco/fintech/pkg/domain/product"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewBase(t *testing.T) {
	t.Parallel()
	b := events.NewBase()
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.NotEqual(t, uuid.Nil, b.CorrelationID)
	assert.WithinDuration(t, time.Now(), b.OccurredAt, time.Minute)
	assert.Empty(t, b.AccountNumber)
}

func TestNewBaseOptions(t *testing.T) {
	t.Parallel()
	corr := uuid.New()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	b := events.NewBase(
		events.WithAccountNumber("SAV-1"),
		events.WithCorrelationID(corr),
		events.WithOccurredAt(at),
	)

	assert.Equal(t, "SAV-1", b.AccountNumber)
	assert.Equal(t, corr, b.CorrelationID)
	assert.Equal(t, at, b.OccurredAt)
}

func TestEventTypesAndText(t *testing.T) {
	t.Parallel()
	base := events.NewBase(events.WithAccountNumber("SAV-1"))
	tests := []struct {
		event    events.Event
		wantType events.EventType
		wantText string
	}{
		{
			event:    events.Deposited{Base: base, Amount: money.NewFromInt(25), Balance: money.NewFromInt(125)},
			wantType: events.EventTypeDeposited,
			wantText: "deposit of 25.00 to SAV-1 completed, new balance 125.00",
		},
		{
			event:    events.WithdrawalDeclined{Base: base, Amount: money.NewFromInt(151), Balance: money.NewFromInt(100)},
			wantType: events.EventTypeWithdrawalDeclined,
			wantText: "withdrawal of 151.00 from SAV-1 declined: insufficient funds including overdraft, balance 100.00",
		},
		{
			event: events.InterestAccrued{Base: base, Accrual: product.Accrual{
				AccountNumber: "SAV-1",
				Kind:          product.KindSavings,
				Rate:          decimal.NewFromInt(5),
				Interest:      money.NewFromInt(50),
				Balance:       money.NewFromInt(1050),
			}},
			wantType: events.EventTypeInterestAccrued,
			wantText: "savings account SAV-1: interest added 50.00, balance 1050.00",
		},
		{
			event:    events.Charged{Base: base, Amount: money.NewFromInt(500), UsedBalance: money.NewFromInt(500)},
			wantType: events.EventTypeCharged,
			wantText: "purchase of 500.00 on card SAV-1 approved, used balance 500.00",
		},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.wantType.String(), tc.event.Type())
		assert.Equal(t, tc.wantText, tc.event.String())
	}
}
