// Package product models the bank's financial products: savings accounts,
// checking accounts, certificates of deposit and credit cards.
//
// The set of products is closed. Every variant embeds the shared account
// state and implements Product; the interface carries unexported methods so
// no type outside this package can satisfy it.
//
// Concurrency: each product owns a mutex and every exported operation holds
// it for its whole read-modify-write, so operations on one product are
// applied one at a time in lock-acquisition order. Transfer holds both
// products' locks, taken in account-number order.
package product

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mibanco/fintech/pkg/domain"
	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/shopspring/decimal"
)

// Kind tags the product variant.
type Kind string

const (
	KindSavings     Kind = "savings"
	KindChecking    Kind = "checking"
	KindCertificate Kind = "certificate_of_deposit"
	KindCreditCard  Kind = "credit_card"
)

// Kinds lists every product variant.
var Kinds = []Kind{KindSavings, KindChecking, KindCertificate, KindCreditCard}

// IsValid reports whether k is one of the known variants.
func (k Kind) IsValid() bool {
	switch k {
	case KindSavings, KindChecking, KindCertificate, KindCreditCard:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// ParseKind accepts a Kind value or one of its short aliases
// ("cd", "certificate", "card", "credit").
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "savings", "saving":
		return KindSavings, nil
	case "checking", "current":
		return KindChecking, nil
	case "certificate_of_deposit", "certificate", "cd":
		return KindCertificate, nil
	case "credit_card", "card", "credit":
		return KindCreditCard, nil
	}
	return "", domain.NewValidationError("kind", fmt.Sprintf("unknown product kind %q", raw))
}

// Operations is the money-movement contract shared by every product.
type Operations interface {
	// Deposit adds a positive amount to the balance.
	Deposit(amount money.Money) error
	// Withdraw removes amount from the balance under the product's policy.
	// The default policy returns ErrInsufficientFunds on a shortfall;
	// checking accounts report a shortfall as (false, nil) instead.
	Withdraw(amount money.Money) (bool, error)
	// Transfer withdraws amount from this product and deposits it into
	// destination as one unit.
	Transfer(amount money.Money, destination Product) error
}

// Product is a financial instrument tied to one customer.
type Product interface {
	Operations

	AccountNumber() string
	Kind() Kind
	Balance() money.Money
	Customer() *customer.Customer
	// AccrueMonthlyInterest applies one monthly interest cycle and returns
	// a record of what was applied.
	AccrueMonthlyInterest() Accrual
	// Details returns a consistent snapshot of the product's state.
	Details() Details

	// base returns the shared state, or nil for a nil variant pointer.
	base() *account
	withdrawLocked(amount money.Money) (bool, error)
}

// Details is a point-in-time view of a product. Fields that do not apply to
// a variant are left nil.
type Details struct {
	AccountNumber   string          `json:"account_number"`
	Kind            Kind            `json:"kind"`
	Customer        string          `json:"customer"`
	Balance         money.Money     `json:"balance"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	OverdraftLimit  *money.Money    `json:"overdraft_limit,omitempty"`
	TermMonths      *int            `json:"term_months,omitempty"`
	CreditLimit     *money.Money    `json:"credit_limit,omitempty"`
	UsedBalance     *money.Money    `json:"used_balance,omitempty"`
	AvailableCredit *money.Money    `json:"available_credit,omitempty"`
	FinalPayout     *money.Money    `json:"final_payout,omitempty"`
}

// account is the state and default behaviour shared by every product.
type account struct {
	mu       sync.Mutex
	kind     Kind
	number   string
	balance  money.Money
	customer *customer.Customer
}

func (a *account) init(kind Kind, number string, initial money.Money, owner *customer.Customer) error {
	if strings.TrimSpace(number) == "" {
		return domain.NewValidationError("account_number", "must not be empty")
	}
	if initial.IsNegative() {
		return domain.NewValidationError("initial_balance", "must not be negative")
	}
	if owner == nil {
		return domain.NewValidationError("customer", "is required")
	}
	a.kind = kind
	a.number = number
	a.balance = initial
	a.customer = owner
	return nil
}

// AccountNumber returns the immutable account number.
func (a *account) AccountNumber() string { return a.number }

// Kind returns the product variant.
func (a *account) Kind() Kind { return a.kind }

// Customer returns the owning customer. The customer is shared, not owned.
func (a *account) Customer() *customer.Customer { return a.customer }

// Balance returns the current balance.
func (a *account) Balance() money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds amount to the balance. Non-positive amounts are rejected.
func (a *account) Deposit(amount money.Money) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.depositLocked(amount)
}

func (a *account) depositLocked(amount money.Money) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw applies the default policy: the balance may never go below zero.
func (a *account) Withdraw(amount money.Money) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdrawLocked(amount)
}

func (a *account) withdrawLocked(amount money.Money) (bool, error) {
	if err := requirePositive(amount); err != nil {
		return false, err
	}
	if amount.GreaterThan(a.balance) {
		return false, fmt.Errorf("%w: requested %s, available %s",
			domain.ErrInsufficientFunds, amount, a.balance)
	}
	a.balance = a.balance.Subtract(amount)
	return true, nil
}

func (a *account) details(rate decimal.Decimal) Details {
	return Details{
		AccountNumber: a.number,
		Kind:          a.kind,
		Customer:      a.customer.Document(),
		Balance:       a.balance,
		InterestRate:  rate,
	}
}

func requirePositive(amount money.Money) error {
	if !amount.IsPositive() {
		return domain.NewValidationError("amount", "must be positive")
	}
	return nil
}

func requireNonNegativeRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return domain.NewValidationError("interest_rate", "must not be negative")
	}
	return nil
}

func requireNonNegativeAmount(field string, amount money.Money) error {
	if amount.IsNegative() {
		return domain.NewValidationError(field, "must not be negative")
	}
	return nil
}
