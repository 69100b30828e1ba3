package product

import (
	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/shopspring/decimal"
)

// Savings is a savings account. Withdrawals follow the default policy.
type Savings struct {
	account
	rate decimal.Decimal
}

var _ Product = (*Savings)(nil)

// NewSavings opens a savings account paying rate percent per cycle.
func NewSavings(number string, initial money.Money, owner *customer.Customer, rate decimal.Decimal) (*Savings, error) {
	s := &Savings{}
	if err := s.init(KindSavings, number, initial, owner); err != nil {
		return nil, err
	}
	if err := requireNonNegativeRate(rate); err != nil {
		return nil, err
	}
	s.rate = rate
	return s, nil
}

// InterestRate returns the rate as a percentage.
func (s *Savings) InterestRate() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

// SetInterestRate replaces the rate; negative rates are rejected.
func (s *Savings) SetInterestRate(rate decimal.Decimal) error {
	if err := requireNonNegativeRate(rate); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rate = rate
	return nil
}

// AccrueMonthlyInterest adds balance x rate/100 to the balance.
func (s *Savings) AccrueMonthlyInterest() Accrual {
	s.mu.Lock()
	defer s.mu.Unlock()
	interest := s.balance.Percent(s.rate)
	s.balance = s.balance.Add(interest)
	return Accrual{
		AccountNumber: s.number,
		Kind:          s.kind,
		Rate:          s.rate,
		Interest:      interest,
		Balance:       s.balance,
	}
}

// Transfer moves amount to destination. See Operations.
func (s *Savings) Transfer(amount money.Money, destination Product) error {
	return transfer(s, destination, amount)
}

func (s *Savings) Details() Details {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.details(s.rate)
}

func (s *Savings) base() *account {
	if s == nil {
		return nil
	}
	return &s.account
}
