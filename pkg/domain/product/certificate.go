package product

import (
	"github.com/mibanco/fintech/pkg/domain"
	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/shopspring/decimal"
)

// Certificate is a certificate of deposit: a balance invested for a fixed
// term at an annual rate. The balance holds principal plus accrued interest.
//
// Withdrawals follow the default policy; there is no lock before the term
// ends and no early-withdrawal penalty.
type Certificate struct {
	account
	termMonths int
	rate       decimal.Decimal
}

var _ Product = (*Certificate)(nil)

// NewCertificate opens a certificate of deposit for termMonths (> 0) at an
// annual rate (>= 0).
func NewCertificate(
	number string,
	initial money.Money,
	owner *customer.Customer,
	termMonths int,
	rate decimal.Decimal,
) (*Certificate, error) {
	c := &Certificate{}
	if err := c.init(KindCertificate, number, initial, owner); err != nil {
		return nil, err
	}
	if err := requirePositiveTerm(termMonths); err != nil {
		return nil, err
	}
	if err := requireNonNegativeRate(rate); err != nil {
		return nil, err
	}
	c.termMonths = termMonths
	c.rate = rate
	return c, nil
}

func (c *Certificate) TermMonths() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.termMonths
}

func (c *Certificate) SetTermMonths(months int) error {
	if err := requirePositiveTerm(months); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.termMonths = months
	return nil
}

func (c *Certificate) InterestRate() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

func (c *Certificate) SetInterestRate(rate decimal.Decimal) error {
	if err := requireNonNegativeRate(rate); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = rate
	return nil
}

// AccrueMonthlyInterest adds one twelfth of the annual interest:
// balance x (rate/100) / 12.
func (c *Certificate) AccrueMonthlyInterest() Accrual {
	c.mu.Lock()
	defer c.mu.Unlock()
	interest := c.balance.Percent(c.rate).Divide(monthsPerYear)
	c.balance = c.balance.Add(interest)
	return Accrual{
		AccountNumber: c.number,
		Kind:          c.kind,
		Rate:          c.rate,
		Interest:      interest,
		Balance:       c.balance,
	}
}

// FinalPayout returns balance + balance x (rate/100) x (termMonths/12).
// It does not mutate the certificate.
//
// The payout is derived from the current balance, not the principal at
// opening, so calling it after monthly accruals counts that interest twice.
func (c *Certificate) FinalPayout() money.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finalPayoutLocked()
}

func (c *Certificate) finalPayoutLocked() money.Money {
	years := decimal.NewFromInt(int64(c.termMonths)).Div(monthsPerYear)
	return c.balance.Add(c.balance.Percent(c.rate).Multiply(years))
}

func (c *Certificate) Transfer(amount money.Money, destination Product) error {
	return transfer(c, destination, amount)
}

func (c *Certificate) Details() Details {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.details(c.rate)
	term := c.termMonths
	payout := c.finalPayoutLocked()
	d.TermMonths = &term
	d.FinalPayout = &payout
	return d
}

func requirePositiveTerm(months int) error {
	if months <= 0 {
		return domain.NewValidationError("term_months", "must be greater than zero")
	}
	return nil
}

func (c *Certificate) base() *account {
	if c == nil {
		return nil
	}
	return &c.account
}
