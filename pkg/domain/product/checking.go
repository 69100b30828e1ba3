package product

import (
	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/shopspring/decimal"
)

// Checking is a checking account whose balance may go negative down to
// -OverdraftLimit.
//
// Unlike the default policy, a withdrawal beyond the overdraft is not an
// error: Withdraw returns (false, nil) and the balance is left unchanged.
type Checking struct {
	account
	rate           decimal.Decimal
	overdraftLimit money.Money
}

var _ Product = (*Checking)(nil)

// NewChecking opens a checking account.
func NewChecking(
	number string,
	initial money.Money,
	owner *customer.Customer,
	rate decimal.Decimal,
	overdraftLimit money.Money,
) (*Checking, error) {
	c := &Checking{}
	if err := c.init(KindChecking, number, initial, owner); err != nil {
		return nil, err
	}
	if err := requireNonNegativeRate(rate); err != nil {
		return nil, err
	}
	if err := requireNonNegativeAmount("overdraft_limit", overdraftLimit); err != nil {
		return nil, err
	}
	c.rate = rate
	c.overdraftLimit = overdraftLimit
	return c, nil
}

func (c *Checking) InterestRate() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

func (c *Checking) SetInterestRate(rate decimal.Decimal) error {
	if err := requireNonNegativeRate(rate); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = rate
	return nil
}

func (c *Checking) OverdraftLimit() money.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overdraftLimit
}

// SetOverdraftLimit replaces the overdraft limit; negative limits are
// rejected. An already overdrawn balance is not re-checked.
func (c *Checking) SetOverdraftLimit(limit money.Money) error {
	if err := requireNonNegativeAmount("overdraft_limit", limit); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overdraftLimit = limit
	return nil
}

// Withdraw succeeds when amount <= balance + overdraft limit. A larger
// amount yields (false, nil).
//
// Note: a non-positive amount is a validation error rather than a no-op or
// a credit, matching every other product.
func (c *Checking) Withdraw(amount money.Money) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.withdrawLocked(amount)
}

func (c *Checking) withdrawLocked(amount money.Money) (bool, error) {
	if err := requirePositive(amount); err != nil {
		return false, err
	}
	if amount.GreaterThan(c.balance.Add(c.overdraftLimit)) {
		return false, nil
	}
	c.balance = c.balance.Subtract(amount)
	return true, nil
}

// AccrueMonthlyInterest adds balance x rate/100 to the balance. An overdrawn
// balance therefore accrues negative interest.
func (c *Checking) AccrueMonthlyInterest() Accrual {
	c.mu.Lock()
	defer c.mu.Unlock()
	interest := c.balance.Percent(c.rate)
	c.balance = c.balance.Add(interest)
	return Accrual{
		AccountNumber: c.number,
		Kind:          c.kind,
		Rate:          c.rate,
		Interest:      interest,
		Balance:       c.balance,
	}
}

func (c *Checking) Transfer(amount money.Money, destination Product) error {
	return transfer(c, destination, amount)
}

func (c *Checking) Details() Details {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.details(c.rate)
	limit := c.overdraftLimit
	d.OverdraftLimit = &limit
	return d
}

func (c *Checking) base() *account {
	if c == nil {
		return nil
	}
	return &c.account
}
