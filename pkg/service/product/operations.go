package product

import (
	"context"

	"github.com/mibanco/fintech/pkg/domain/events"
	"github.com/mibanco/fintech/pkg/domain/product"
	"github.com/mibanco/fintech/pkg/money"
)

// Product returns the product with the given account number.
func (s *Service) Product(ctx context.Context, number string) (product.Product, error) {
	return s.product(ctx, number)
}

// Products lists products ordered by account number. An empty document
// lists every product.
func (s *Service) Products(ctx context.Context, document string) ([]product.Product, error) {
	if document == "" {
		return s.registry.Products().List(ctx)
	}
	if _, err := s.customer(ctx, document); err != nil {
		return nil, err
	}
	return s.registry.Products().ListByCustomer(ctx, document)
}

// Deposit adds amount to the product's balance.
func (s *Service) Deposit(ctx context.Context, number string, amount money.Money) (product.Details, error) {
	logger := s.logger.With("account_number", number, "amount", amount)
	logger.Info("Deposit started")

	p, err := s.product(ctx, number)
	if err != nil {
		logger.Error("Deposit failed: product lookup", "error", err)
		return product.Details{}, err
	}

	unlock := s.lock(number)
	if err := p.Deposit(amount); err != nil {
		unlock()
		logger.Error("Deposit failed: domain error", "error", err)
		return product.Details{}, err
	}
	details := p.Details()
	unlock()

	s.publish(ctx, logger, events.Deposited{
		Base:    events.NewBase(events.WithAccountNumber(number)),
		Amount:  amount,
		Balance: details.Balance,
	})
	logger.Info("Deposit successful", "balance", details.Balance)
	return details, nil
}

// Withdraw removes amount under the product's withdraw policy. A checking
// account beyond its overdraft reports (false, nil) and publishes
// WithdrawalDeclined; every other shortfall is an error.
func (s *Service) Withdraw(ctx context.Context, number string, amount money.Money) (bool, product.Details, error) {
	logger := s.logger.With("account_number", number, "amount", amount)
	logger.Info("Withdraw started")

	p, err := s.product(ctx, number)
	if err != nil {
		logger.Error("Withdraw failed: product lookup", "error", err)
		return false, product.Details{}, err
	}

	unlock := s.lock(number)
	ok, err := p.Withdraw(amount)
	if err != nil {
		unlock()
		logger.Error("Withdraw failed: domain error", "error", err)
		return false, product.Details{}, err
	}
	details := p.Details()
	unlock()

	base := events.NewBase(events.WithAccountNumber(number))
	if !ok {
		s.publish(ctx, logger, events.WithdrawalDeclined{Base: base, Amount: amount, Balance: details.Balance})
		logger.Warn("Withdraw declined: overdraft limit reached", "balance", details.Balance)
		return false, details, nil
	}
	s.publish(ctx, logger, events.Withdrawn{Base: base, Amount: amount, Balance: details.Balance})
	logger.Info("Withdraw successful", "balance", details.Balance)
	return true, details, nil
}

// AccrueInterest runs one monthly interest cycle on a product.
func (s *Service) AccrueInterest(ctx context.Context, number string) (product.Accrual, error) {
	logger := s.logger.With("account_number", number)
	logger.Info("AccrueInterest started")

	p, err := s.product(ctx, number)
	if err != nil {
		logger.Error("AccrueInterest failed: product lookup", "error", err)
		return product.Accrual{}, err
	}
	accrual := s.accrue(ctx, p)
	logger.Info("AccrueInterest successful", "interest", accrual.Interest, "balance", accrual.Balance)
	return accrual, nil
}

// AccrueAll runs one monthly interest cycle over every product, in account
// number order.
func (s *Service) AccrueAll(ctx context.Context) ([]product.Accrual, error) {
	s.logger.Info("AccrueAll started")
	all, err := s.registry.Products().List(ctx)
	if err != nil {
		s.logger.Error("AccrueAll failed: product listing", "error", err)
		return nil, err
	}
	out := make([]product.Accrual, 0, len(all))
	for _, p := range all {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("AccrueAll interrupted", "processed", len(out), "error", err)
			return out, err
		}
		out = append(out, s.accrue(ctx, p))
	}
	s.logger.Info("AccrueAll successful", "products", len(out))
	return out, nil
}

func (s *Service) accrue(ctx context.Context, p product.Product) product.Accrual {
	unlock := s.lock(p.AccountNumber())
	accrual := p.AccrueMonthlyInterest()
	unlock()

	s.publish(ctx, s.logger, events.InterestAccrued{
		Base:    events.NewBase(events.WithAccountNumber(p.AccountNumber())),
		Accrual: accrual,
	})
	return accrual
}

// Charge records a purchase on a credit card.
func (s *Service) Charge(ctx context.Context, number string, amount money.Money) (product.Details, error) {
	logger := s.logger.With("account_number", number, "amount", amount)
	logger.Info("Charge started")

	card, err := s.card(ctx, number)
	if err != nil {
		logger.Error("Charge failed: product lookup", "error", err)
		return product.Details{}, err
	}

	unlock := s.lock(number)
	if err := card.Charge(amount); err != nil {
		unlock()
		logger.Error("Charge failed: domain error", "error", err)
		return product.Details{}, err
	}
	details := card.Details()
	unlock()

	s.publish(ctx, logger, events.Charged{
		Base:        events.NewBase(events.WithAccountNumber(number)),
		Amount:      amount,
		UsedBalance: *details.UsedBalance,
	})
	logger.Info("Charge successful", "used_balance", details.UsedBalance)
	return details, nil
}

// Pay applies a payment to a credit card's used balance.
func (s *Service) Pay(ctx context.Context, number string, amount money.Money) (product.Details, error) {
	logger := s.logger.With("account_number", number, "amount", amount)
	logger.Info("Pay started")

	card, err := s.card(ctx, number)
	if err != nil {
		logger.Error("Pay failed: product lookup", "error", err)
		return product.Details{}, err
	}

	unlock := s.lock(number)
	if err := card.Pay(amount); err != nil {
		unlock()
		logger.Error("Pay failed: domain error", "error", err)
		return product.Details{}, err
	}
	details := card.Details()
	unlock()

	s.publish(ctx, logger, events.Paid{
		Base:        events.NewBase(events.WithAccountNumber(number)),
		Amount:      amount,
		UsedBalance: *details.UsedBalance,
	})
	logger.Info("Pay successful", "used_balance", details.UsedBalance)
	return details, nil
}

// Transfer moves amount from one product to another as a single unit.
func (s *Service) Transfer(
	ctx context.Context,
	from, to string,
	amount money.Money,
) (source, destination product.Details, err error) {
	logger := s.logger.With("account_number", from, "destination", to, "amount", amount)
	logger.Info("Transfer started")

	src, err := s.product(ctx, from)
	if err != nil {
		logger.Error("Transfer failed: source lookup", "error", err)
		return source, destination, err
	}
	dst, err := s.product(ctx, to)
	if err != nil {
		logger.Error("Transfer failed: destination lookup", "error", err)
		return source, destination, err
	}

	unlock := s.lock(from, to)
	if err = src.Transfer(amount, dst); err != nil {
		unlock()
		logger.Error("Transfer failed: domain error", "error", err)
		return source, destination, err
	}
	source, destination = src.Details(), dst.Details()
	unlock()

	s.publish(ctx, logger, events.Transferred{
		Base:               events.NewBase(events.WithAccountNumber(from)),
		Destination:        to,
		Amount:             amount,
		SourceBalance:      source.Balance,
		DestinationBalance: destination.Balance,
	})
	logger.Info("Transfer successful", "source_balance", source.Balance, "destination_balance", destination.Balance)
	return source, destination, nil
}

// FinalPayout returns a certificate of deposit's projected value at term,
// derived from its current balance.
func (s *Service) FinalPayout(ctx context.Context, number string) (money.Money, error) {
	p, err := s.product(ctx, number)
	if err != nil {
		return money.Zero(), err
	}
	cd, ok := p.(*product.Certificate)
	if !ok {
		return money.Zero(), kindMismatch(p, product.KindCertificate)
	}
	return cd.FinalPayout(), nil
}

func (s *Service) card(ctx context.Context, number string) (*product.CreditCard, error) {
	p, err := s.product(ctx, number)
	if err != nil {
		return nil, err
	}
	card, ok := p.(*product.CreditCard)
	if !ok {
		return nil, kindMismatch(p, product.KindCreditCard)
	}
	return card, nil
}
