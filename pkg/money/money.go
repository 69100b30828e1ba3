// Package money provides the decimal value object used for every balance,
// amount and accrued interest in the product domain.
//
// Invariants:
//   - Amounts are exact decimals; no float arithmetic is performed after
//     construction.
//   - A single implicit currency is used (multi-currency is out of scope).
//   - Values are immutable: every operation returns a new Money.
package money

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimal places used when rendering amounts.
const DisplayPlaces = 2

var hundred = decimal.NewFromInt(100)

// Money is an exact decimal monetary amount.
type Money struct {
	amount decimal.Decimal
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// New creates Money from a float64. Intended for literals in tests and
// examples; parse user input with Parse instead.
func New(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// NewFromInt creates Money from a whole number of units.
func NewFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// FromDecimal wraps an existing decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Parse reads a decimal amount such as "1050.25" or "-40".
// Surrounding whitespace is ignored.
func Parse(raw string) (Money, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Money{}, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return Money{amount: d}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(raw string) Money {
	m, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns m - other.
func (m Money) Subtract(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Negate returns -m.
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg()}
}

// Abs returns |m|.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs()}
}

// Multiply scales m by factor.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// Divide divides m by divisor. Division by zero panics, as in decimal.Div.
func (m Money) Divide(divisor decimal.Decimal) Money {
	return Money{amount: m.amount.Div(divisor)}
}

// Percent returns m x rate/100, where rate is expressed as a percentage
// (5 means 5%).
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Div(hundred)}
}

// Round rounds m to the given number of decimal places (half away from zero).
func (m Money) Round(places int32) Money {
	return Money{amount: m.amount.Round(places)}
}

// Equals reports whether both amounts are numerically equal.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThan reports m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// GreaterThanOrEqual reports m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// LessThan reports m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// LessThanOrEqual reports m <= other.
func (m Money) LessThanOrEqual(other Money) bool {
	return m.amount.LessThanOrEqual(other.amount)
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with DisplayPlaces decimals, e.g. "1050.00".
func (m Money) String() string {
	return m.amount.StringFixed(DisplayPlaces)
}

// MarshalJSON encodes the amount as a JSON string with two decimals so that
// clients never see binary floating point.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, string(data))
	}
	m.amount = d
	return nil
}
