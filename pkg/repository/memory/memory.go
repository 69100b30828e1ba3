// Package memory provides process-local repositories. Entries live for the
// lifetime of the process; nothing is persisted.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mibanco/fintech/pkg/domain"
	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/domain/product"
	"github.com/mibanco/fintech/pkg/repository"
)

// Registry is an in-memory repository.Registry.
type Registry struct {
	customers *CustomerRepository
	products  *ProductRepository
}

var _ repository.Registry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		customers: NewCustomerRepository(),
		products:  NewProductRepository(),
	}
}

func (r *Registry) Customers() repository.CustomerRepository { return r.customers }

func (r *Registry) Products() repository.ProductRepository { return r.products }

type CustomerRepository struct {
	mu    sync.RWMutex
	items map[string]*customer.Customer
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{items: make(map[string]*customer.Customer)}
}

func (r *CustomerRepository) Create(_ context.Context, c *customer.Customer) error {
	if c == nil {
		return domain.NewValidationError("customer", "is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.Document()]; ok {
		return fmt.Errorf("customer %s: %w", c.Document(), domain.ErrAlreadyExists)
	}
	r.items[c.Document()] = c
	return nil
}

func (r *CustomerRepository) Get(_ context.Context, document string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[document]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", document, domain.ErrNotFound)
	}
	return c, nil
}

func (r *CustomerRepository) List(_ context.Context) ([]*customer.Customer, error) {
	r.mu.RLock()
	out := make([]*customer.Customer, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Document() < out[j].Document() })
	return out, nil
}

type ProductRepository struct {
	mu    sync.RWMutex
	items map[string]product.Product
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository() *ProductRepository {
	return &ProductRepository{items: make(map[string]product.Product)}
}

func (r *ProductRepository) Create(_ context.Context, p product.Product) error {
	if p == nil {
		return domain.NewValidationError("product", "is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.AccountNumber()]; ok {
		return fmt.Errorf("product %s: %w", p.AccountNumber(), domain.ErrAlreadyExists)
	}
	r.items[p.AccountNumber()] = p
	return nil
}

func (r *ProductRepository) Get(_ context.Context, accountNumber string) (product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[accountNumber]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", accountNumber, domain.ErrNotFound)
	}
	return p, nil
}

func (r *ProductRepository) List(_ context.Context) ([]product.Product, error) {
	return r.filter(func(product.Product) bool { return true }), nil
}

func (r *ProductRepository) ListByCustomer(_ context.Context, document string) ([]product.Product, error) {
	return r.filter(func(p product.Product) bool {
		return p.Customer().Document() == document
	}), nil
}

func (r *ProductRepository) filter(keep func(product.Product) bool) []product.Product {
	r.mu.RLock()
	out := make([]product.Product, 0, len(r.items))
	for _, p := range r.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].AccountNumber() < out[j].AccountNumber() })
	return out
}
