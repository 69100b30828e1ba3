// Package customer holds the validated contact data of a bank customer.
package customer

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/mibanco/fintech/pkg/domain"
)

// Field names reported in validation errors.
const (
	FieldDocument = "document"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldAddress  = "address"
)

var rules = map[string]string{
	FieldDocument: "notblank",
	FieldName:     "notblank",
	FieldEmail:    "notblank,contains=@",
	FieldPhone:    "notblank,number",
	FieldAddress:  "notblank",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("customer: register notblank: %v", err))
	}
	return v
}

// Customer represents the owner of one or more financial products.
//
// Invariants:
//   - The identity document is set once and never changes.
//   - Every field satisfies its rule at all times; setters leave the
//     customer untouched when the new value is rejected.
type Customer struct {
	mu       sync.RWMutex
	document string
	name     string
	email    string
	phone    string
	address  string
}

// New validates every field and returns a Customer.
func New(document, name, email, phone, address string) (*Customer, error) {
	for _, f := range []struct{ field, value string }{
		{FieldDocument, document},
		{FieldName, name},
		{FieldEmail, email},
		{FieldPhone, phone},
		{FieldAddress, address},
	} {
		if err := check(f.field, f.value); err != nil {
			return nil, err
		}
	}
	return &Customer{
		document: document,
		name:     name,
		email:    email,
		phone:    phone,
		address:  address,
	}, nil
}

// Document returns the identity document, the customer's unique key.
func (c *Customer) Document() string {
	return c.document
}

func (c *Customer) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

func (c *Customer) Email() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.email
}

func (c *Customer) Phone() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phone
}

func (c *Customer) Address() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address
}

// SetName replaces the name if it is not blank.
func (c *Customer) SetName(name string) error {
	return c.set(FieldName, name, &c.name)
}

// SetEmail replaces the email if it contains "@".
func (c *Customer) SetEmail(email string) error {
	return c.set(FieldEmail, email, &c.email)
}

// SetPhone replaces the phone number if it is made of digits only.
func (c *Customer) SetPhone(phone string) error {
	return c.set(FieldPhone, phone, &c.phone)
}

// SetAddress replaces the address if it is not blank.
func (c *Customer) SetAddress(address string) error {
	return c.set(FieldAddress, address, &c.address)
}

func (c *Customer) set(field, value string, dst *string) error {
	if err := check(field, value); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	*dst = value
	return nil
}

// Snapshot is a point-in-time copy of a customer's fields.
type Snapshot struct {
	Document string `json:"document"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Snapshot copies the current field values.
func (c *Customer) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Document: c.document,
		Name:     c.name,
		Email:    c.email,
		Phone:    c.phone,
		Address:  c.address,
	}
}

// MarshalJSON encodes the customer's snapshot.
func (c *Customer) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

func check(field, value string) error {
	err := validate.Var(value, rules[field])
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return domain.NewValidationError(field, reason(verrs[0]))
	}
	return domain.NewValidationError(field, err.Error())
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "must not be empty"
	case "contains":
		return fmt.Sprintf("must contain %q", fe.Param())
	case "number":
		return "must contain only digits"
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}
