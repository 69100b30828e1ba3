package product

import (
	"context"
	"log/slog"

	"github.com/mibanco/fintech/pkg/domain"
	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/domain/events"
	"github.com/mibanco/fintech/pkg/domain/product"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/shopspring/decimal"
)

// OpenParams describes a product to open. Nil parameters fall back to the
// configured product defaults; those that do not apply to Kind are ignored.
type OpenParams struct {
	Kind             product.Kind
	AccountNumber    string
	CustomerDocument string
	InitialBalance   money.Money
	InterestRate     *decimal.Decimal
	OverdraftLimit   *money.Money
	TermMonths       *int
	CreditLimit      *money.Money
}

// Open opens a product of any kind, filling unset parameters from the
// configured defaults.
func (s *Service) Open(ctx context.Context, p OpenParams) (product.Product, error) {
	if !p.Kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown product kind "+p.Kind.String())
	}
	rate, err := s.rateFor(p.Kind, p.InterestRate)
	if err != nil {
		return nil, err
	}
	switch p.Kind {
	case product.KindChecking:
		limit, err := s.moneyOrDefault("overdraft_limit", p.OverdraftLimit, s.defaultOverdraft())
		if err != nil {
			return nil, err
		}
		return asProduct(s.OpenChecking(ctx, p.AccountNumber, p.CustomerDocument, p.InitialBalance, rate, limit))
	case product.KindCertificate:
		term := 0
		switch {
		case p.TermMonths != nil:
			term = *p.TermMonths
		case s.defaults != nil:
			term = s.defaults.CertificateTermMonths
		default:
			return nil, domain.NewValidationError("term_months", "is required")
		}
		return asProduct(s.OpenCertificate(ctx, p.AccountNumber, p.CustomerDocument, p.InitialBalance, term, rate))
	case product.KindCreditCard:
		limit, err := s.moneyOrDefault("credit_limit", p.CreditLimit, s.defaultCreditLimit())
		if err != nil {
			return nil, err
		}
		return asProduct(s.IssueCreditCard(ctx, p.AccountNumber, p.CustomerDocument, p.InitialBalance, limit, rate))
	default:
		return asProduct(s.OpenSavings(ctx, p.AccountNumber, p.CustomerDocument, p.InitialBalance, rate))
	}
}

// OpenSavings opens a savings account for a registered customer.
func (s *Service) OpenSavings(
	ctx context.Context,
	number, document string,
	initial money.Money,
	rate decimal.Decimal,
) (*product.Savings, error) {
	logger := s.logger.With("account_number", number, "document", document, "kind", product.KindSavings)
	return openWith(ctx, s, logger, document, func(o *customer.Customer) (*product.Savings, error) {
		return product.NewSavings(number, initial, o, rate)
	})
}

// OpenChecking opens a checking account with an overdraft limit.
func (s *Service) OpenChecking(
	ctx context.Context,
	number, document string,
	initial money.Money,
	rate decimal.Decimal,
	overdraftLimit money.Money,
) (*product.Checking, error) {
	logger := s.logger.With("account_number", number, "document", document, "kind", product.KindChecking)
	return openWith(ctx, s, logger, document, func(o *customer.Customer) (*product.Checking, error) {
		return product.NewChecking(number, initial, o, rate, overdraftLimit)
	})
}

// OpenCertificate opens a certificate of deposit for termMonths.
func (s *Service) OpenCertificate(
	ctx context.Context,
	number, document string,
	initial money.Money,
	termMonths int,
	rate decimal.Decimal,
) (*product.Certificate, error) {
	logger := s.logger.With("account_number", number, "document", document, "kind", product.KindCertificate)
	return openWith(ctx, s, logger, document, func(o *customer.Customer) (*product.Certificate, error) {
		return product.NewCertificate(number, initial, o, termMonths, rate)
	})
}

// IssueCreditCard issues a credit card with a zero used balance.
func (s *Service) IssueCreditCard(
	ctx context.Context,
	number, document string,
	initial money.Money,
	creditLimit money.Money,
	rate decimal.Decimal,
) (*product.CreditCard, error) {
	logger := s.logger.With("account_number", number, "document", document, "kind", product.KindCreditCard)
	return openWith(ctx, s, logger, document, func(o *customer.Customer) (*product.CreditCard, error) {
		return product.NewCreditCard(number, initial, o, creditLimit, rate)
	})
}

// openWith resolves the owner, builds the product, stores it and publishes
// ProductOpened.
func openWith[P product.Product](
	ctx context.Context,
	s *Service,
	logger *slog.Logger,
	document string,
	build func(*customer.Customer) (P, error),
) (P, error) {
	var zero P
	logger.Info("Open product started")

	owner, err := s.customer(ctx, document)
	if err != nil {
		logger.Error("Open product failed: customer lookup", "error", err)
		return zero, err
	}
	p, err := build(owner)
	if err != nil {
		logger.Error("Open product failed: domain error", "error", err)
		return zero, err
	}
	if err := s.registry.Products().Create(ctx, p); err != nil {
		logger.Error("Open product failed: repo create error", "error", err)
		return zero, err
	}

	details := p.Details()
	s.publish(ctx, logger, events.ProductOpened{
		Base:    events.NewBase(events.WithAccountNumber(details.AccountNumber)),
		Product: details,
	})
	logger.Info("Open product successful", "balance", details.Balance)
	return p, nil
}

// asProduct keeps a failed typed constructor from yielding a non-nil
// interface holding a nil pointer.
func asProduct[P product.Product](p P, err error) (product.Product, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) rateFor(kind product.Kind, rate *decimal.Decimal) (decimal.Decimal, error) {
	if rate != nil {
		return *rate, nil
	}
	if s.defaults == nil {
		return decimal.Zero, domain.NewValidationError("interest_rate", "is required")
	}
	switch kind {
	case product.KindChecking:
		return s.defaults.CheckingRate, nil
	case product.KindCertificate:
		return s.defaults.CertificateRate, nil
	case product.KindCreditCard:
		return s.defaults.CreditCardRate, nil
	default:
		return s.defaults.SavingsRate, nil
	}
}

func (s *Service) defaultOverdraft() *money.Money {
	if s.defaults == nil {
		return nil
	}
	m := money.FromDecimal(s.defaults.OverdraftLimit)
	return &m
}

func (s *Service) defaultCreditLimit() *money.Money {
	if s.defaults == nil {
		return nil
	}
	m := money.FromDecimal(s.defaults.CreditLimit)
	return &m
}

func (s *Service) moneyOrDefault(field string, v, fallback *money.Money) (money.Money, error) {
	if v != nil {
		return *v, nil
	}
	if fallback != nil {
		return *fallback, nil
	}
	return money.Zero(), domain.NewValidationError(field, "is required")
}
