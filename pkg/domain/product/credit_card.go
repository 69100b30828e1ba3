package product

import (
	"fmt"

	"github.com/mibanco/fintech/pkg/domain"
	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/shopspring/decimal"
)

// CreditCard lets the customer draw on credit up to a limit. The drawn
// amount is tracked as the used balance, separate from the nominal balance
// inherited from the shared account state (normally zero for cards).
type CreditCard struct {
	account
	creditLimit money.Money
	rate        decimal.Decimal
	used        money.Money
}

var _ Product = (*CreditCard)(nil)

// NewCreditCard issues a card with a zero used balance.
func NewCreditCard(
	number string,
	initial money.Money,
	owner *customer.Customer,
	creditLimit money.Money,
	rate decimal.Decimal,
) (*CreditCard, error) {
	c := &CreditCard{}
	if err := c.init(KindCreditCard, number, initial, owner); err != nil {
		return nil, err
	}
	if err := requireNonNegativeAmount("credit_limit", creditLimit); err != nil {
		return nil, err
	}
	if err := requireNonNegativeRate(rate); err != nil {
		return nil, err
	}
	c.creditLimit = creditLimit
	c.rate = rate
	c.used = money.Zero()
	return c, nil
}

func (c *CreditCard) CreditLimit() money.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creditLimit
}

// SetCreditLimit replaces the limit; negative limits are rejected. A used
// balance already above the new limit is kept; further charges fail.
func (c *CreditCard) SetCreditLimit(limit money.Money) error {
	if err := requireNonNegativeAmount("credit_limit", limit); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creditLimit = limit
	return nil
}

func (c *CreditCard) InterestRate() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

func (c *CreditCard) SetInterestRate(rate decimal.Decimal) error {
	if err := requireNonNegativeRate(rate); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = rate
	return nil
}

// UsedBalance returns the amount currently drawn.
func (c *CreditCard) UsedBalance() money.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

// AvailableCredit returns limit - used, never below zero.
func (c *CreditCard) AvailableCredit() money.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.availableLocked()
}

func (c *CreditCard) availableLocked() money.Money {
	available := c.creditLimit.Subtract(c.used)
	if available.IsNegative() {
		return money.Zero()
	}
	return available
}

// Charge draws amount on the card if amount + used balance stays within the
// credit limit; otherwise it returns ErrCreditLimitExceeded.
func (c *CreditCard) Charge(amount money.Money) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := requirePositive(amount); err != nil {
		return err
	}
	if amount.Add(c.used).GreaterThan(c.creditLimit) {
		return fmt.Errorf("%w: charge %s, available %s",
			domain.ErrCreditLimitExceeded, amount, c.availableLocked())
	}
	c.used = c.used.Add(amount)
	return nil
}

// Pay reduces the used balance. Paying more than the used balance is a
// validation error.
//
// Note: non-positive charges and payments are rejected with a validation
// error rather than applied, matching Deposit and Withdraw.
func (c *CreditCard) Pay(amount money.Money) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := requirePositive(amount); err != nil {
		return err
	}
	if amount.GreaterThan(c.used) {
		return domain.NewValidationError("amount",
			fmt.Sprintf("payment %s exceeds used balance %s", amount, c.used))
	}
	c.used = c.used.Subtract(amount)
	return nil
}

// AccrueMonthlyInterest adds used x rate/100 to the used balance. The
// nominal balance is not touched.
func (c *CreditCard) AccrueMonthlyInterest() Accrual {
	c.mu.Lock()
	defer c.mu.Unlock()
	interest := c.used.Percent(c.rate)
	c.used = c.used.Add(interest)
	return Accrual{
		AccountNumber: c.number,
		Kind:          c.kind,
		Rate:          c.rate,
		Interest:      interest,
		Balance:       c.used,
	}
}

func (c *CreditCard) Transfer(amount money.Money, destination Product) error {
	return transfer(c, destination, amount)
}

func (c *CreditCard) Details() Details {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.details(c.rate)
	limit, used, available := c.creditLimit, c.used, c.availableLocked()
	d.CreditLimit = &limit
	d.UsedBalance = &used
	d.AvailableCredit = &available
	return d
}

func (c *CreditCard) base() *account {
	if c == nil {
		return nil
	}
	return &c.account
}
