// Package product provides the application service over customers and
// financial products. It looks entities up in a repository.Registry, runs
// domain operations one at a time per product, and publishes a domain event
// for every operation that changed state.
package product

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mibanco/fintech/pkg/config"
	"github.com/mibanco/fintech/pkg/domain"
	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/domain/events"
	"github.com/mibanco/fintech/pkg/domain/product"
	"github.com/mibanco/fintech/pkg/eventbus"
	"github.com/mibanco/fintech/pkg/repository"
)

// Service provides business logic for customers and their products.
type Service struct {
	registry repository.Registry
	bus      eventbus.Bus
	logger   *slog.Logger
	defaults *config.Products

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var defaults *config.Products
	if deps.Config != nil {
		defaults = deps.Config.Products
	}
	return &Service{
		registry: deps.Registry,
		bus:      deps.EventBus,
		logger:   logger,
		defaults: defaults,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lock serialises service operations on the given account numbers. Locks are
// taken in ascending order so two transfers in opposite directions cannot
// deadlock. The returned func releases them.
func (s *Service) lock(numbers ...string) func() {
	sorted := make([]string, 0, len(numbers))
	seen := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		if !seen[n] {
			seen[n] = true
			sorted = append(sorted, n)
		}
	}
	sort.Strings(sorted)

	s.locksMu.Lock()
	held := make([]*sync.Mutex, len(sorted))
	for i, n := range sorted {
		m, ok := s.locks[n]
		if !ok {
			m = &sync.Mutex{}
			s.locks[n] = m
		}
		held[i] = m
	}
	s.locksMu.Unlock()

	for _, m := range held {
		m.Lock()
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

// publish hands event to the bus. The operation it describes has already
// been applied, so a publish failure is logged and not returned.
func (s *Service) publish(ctx context.Context, logger *slog.Logger, event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		logger.Error("Event publish failed", "event_type", event.Type(), "error", err)
	}
}

func (s *Service) customer(ctx context.Context, document string) (*customer.Customer, error) {
	return s.registry.Customers().Get(ctx, document)
}

func (s *Service) product(ctx context.Context, number string) (product.Product, error) {
	return s.registry.Products().Get(ctx, number)
}

// kindMismatch reports an operation invoked on the wrong product variant.
func kindMismatch(p product.Product, want product.Kind) error {
	return domain.NewValidationError("kind",
		fmt.Sprintf("product %s is a %s, operation requires %s", p.AccountNumber(), p.Kind(), want))
}
