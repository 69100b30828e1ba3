package repository

import (
	"context"

	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/domain/product"
)

// CustomerRepository defines data access for customers keyed by identity document.
type CustomerRepository interface {
	// Create stores a new customer. Fails with domain.ErrAlreadyExists when
	// the document is taken.
	Create(ctx context.Context, c *customer.Customer) error
	// Get returns the customer with the given document or domain.ErrNotFound.
	Get(ctx context.Context, document string) (*customer.Customer, error)
	List(ctx context.Context) ([]*customer.Customer, error)
}

// ProductRepository defines data access for products keyed by account number.
type ProductRepository interface {
	Create(ctx context.Context, p product.Product) error
	Get(ctx context.Context, accountNumber string) (product.Product, error)
	// List returns every product ordered by account number.
	List(ctx context.Context) ([]product.Product, error)
	ListByCustomer(ctx context.Context, document string) ([]product.Product, error)
}

// Registry groups the repositories a service needs.
type Registry interface {
	Customers() CustomerRepository
	Products() ProductRepository
}
