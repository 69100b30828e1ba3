package eventbus_test

import (
	"context"
	"sync"
	"testing"

	"github.com/mibanco/fintech/pkg/domain/events"
	"github.com/mibanco/fintech/pkg/eventbus"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleEventBusDelivery(t *testing.T) {
	t.Parallel()
	bus := eventbus.NewSimpleEventBus()

	var got []string
	bus.Subscribe(events.EventTypeDeposited, func(_ context.Context, e events.Event) {
		got = append(got, "typed:"+e.Type())
	})
	bus.Subscribe(eventbus.All, func(_ context.Context, e events.Event) {
		got = append(got, "all:"+e.Type())
	})

	deposit := events.Deposited{
		Base:    events.NewBase(events.WithAccountNumber("SAV-1")),
		Amount:  money.NewFromInt(10),
		Balance: money.NewFromInt(10),
	}
	require.NoError(t, bus.Publish(context.Background(), deposit))
	require.NoError(t, bus.Publish(context.Background(), events.Paid{Base: events.NewBase()}))

	assert.Equal(t, []string{
		"typed:Product.Deposited",
		"all:Product.Deposited",
		"all:Card.Paid",
	}, got)
}

func TestSimpleEventBusRejectsNil(t *testing.T) {
	t.Parallel()
	bus := eventbus.NewSimpleEventBus()
	assert.Error(t, bus.Publish(context.Background(), nil))
}

func TestSimpleEventBusConcurrentPublish(t *testing.T) {
	t.Parallel()
	bus := eventbus.NewSimpleEventBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe(events.EventTypeWithdrawn, func(context.Context, events.Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, bus.Publish(context.Background(), events.Withdrawn{Base: events.NewBase()}))
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, count)
}
