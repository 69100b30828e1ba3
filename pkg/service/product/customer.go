package product

import (
	"context"

	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/domain/events"
)

// CustomerInput carries the fields needed to register a customer.
type CustomerInput struct {
	Document string
	Name     string
	Email    string
	Phone    string
	Address  string
}

// CustomerUpdate lists the contact fields to change. Nil fields are kept.
type CustomerUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// RegisterCustomer validates and stores a new customer.
func (s *Service) RegisterCustomer(ctx context.Context, in CustomerInput) (*customer.Customer, error) {
	logger := s.logger.With("document", in.Document)
	logger.Info("RegisterCustomer started")

	c, err := customer.New(in.Document, in.Name, in.Email, in.Phone, in.Address)
	if err != nil {
		logger.Error("RegisterCustomer failed: domain error", "error", err)
		return nil, err
	}
	if err := s.registry.Customers().Create(ctx, c); err != nil {
		logger.Error("RegisterCustomer failed: repo create error", "error", err)
		return nil, err
	}

	s.publish(ctx, logger, events.CustomerRegistered{Base: events.NewBase(), Customer: c.Snapshot()})
	logger.Info("RegisterCustomer successful")
	return c, nil
}

// UpdateCustomer changes a customer's contact data. All new values are
// validated before any is applied, so a rejected update leaves the customer
// unchanged. Updates to one customer are serialised and never interleave.
func (s *Service) UpdateCustomer(ctx context.Context, document string, in CustomerUpdate) (*customer.Customer, error) {
	logger := s.logger.With("document", document)
	logger.Info("UpdateCustomer started")

	c, err := s.customer(ctx, document)
	if err != nil {
		logger.Error("UpdateCustomer failed: customer lookup", "error", err)
		return nil, err
	}

	unlock := s.lock(customerLockKey(document))
	defer unlock()

	next := c.Snapshot()
	pick(&next.Name, in.Name)
	pick(&next.Email, in.Email)
	pick(&next.Phone, in.Phone)
	pick(&next.Address, in.Address)
	if _, err := customer.New(next.Document, next.Name, next.Email, next.Phone, next.Address); err != nil {
		logger.Error("UpdateCustomer failed: domain error", "error", err)
		return nil, err
	}

	for _, apply := range []func() error{
		func() error { return c.SetName(next.Name) },
		func() error { return c.SetEmail(next.Email) },
		func() error { return c.SetPhone(next.Phone) },
		func() error { return c.SetAddress(next.Address) },
	} {
		if err := apply(); err != nil {
			logger.Error("UpdateCustomer failed: setter rejected value", "error", err)
			return nil, err
		}
	}

	s.publish(ctx, logger, events.CustomerUpdated{Base: events.NewBase(), Customer: c.Snapshot()})
	logger.Info("UpdateCustomer successful")
	return c, nil
}

// Customer returns the customer registered under document.
func (s *Service) Customer(ctx context.Context, document string) (*customer.Customer, error) {
	return s.customer(ctx, document)
}

// customerLockKey keeps customer locks apart from account-number locks.
func customerLockKey(document string) string {
	return "customer:" + document
}

func pick(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
