package events

import (
	"fmt"

	"github.com/mibanco/fintech/pkg/domain/customer"
	"github.com/mibanco/fintech/pkg/domain/product"
	"github.com/mibanco/fintech/pkg/money"
)

// CustomerRegistered is emitted when a new customer is stored.
type CustomerRegistered struct {
	Base
	Customer customer.Snapshot `json:"customer"`
}

func (e CustomerRegistered) Type() string { return EventTypeCustomerRegistered.String() }

func (e CustomerRegistered) String() string {
	return fmt.Sprintf("customer %s registered (%s)", e.Customer.Document, e.Customer.Name)
}

// CustomerUpdated is emitted after a customer's contact data changed.
type CustomerUpdated struct {
	Base
	Customer customer.Snapshot `json:"customer"`
}

func (e CustomerUpdated) Type() string { return EventTypeCustomerUpdated.String() }

func (e CustomerUpdated) String() string {
	return fmt.Sprintf("customer %s updated", e.Customer.Document)
}

// ProductOpened is emitted when a product is opened or issued.
type ProductOpened struct {
	Base
	Product product.Details `json:"product"`
}

func (e ProductOpened) Type() string { return EventTypeProductOpened.String() }

func (e ProductOpened) String() string {
	return fmt.Sprintf("%s %s opened for customer %s with balance %s",
		e.Product.Kind, e.Product.AccountNumber, e.Product.Customer, e.Product.Balance)
}

// Deposited is emitted after a successful deposit.
type Deposited struct {
	Base
	Amount  money.Money `json:"amount"`
	Balance money.Money `json:"balance"`
}

func (e Deposited) Type() string { return EventTypeDeposited.String() }

func (e Deposited) String() string {
	return fmt.Sprintf("deposit of %s to %s completed, new balance %s", e.Amount, e.AccountNumber, e.Balance)
}

// Withdrawn is emitted after a successful withdrawal.
type Withdrawn struct {
	Base
	Amount  money.Money `json:"amount"`
	Balance money.Money `json:"balance"`
}

func (e Withdrawn) Type() string { return EventTypeWithdrawn.String() }

func (e Withdrawn) String() string {
	return fmt.Sprintf("withdrawal of %s from %s completed, remaining balance %s", e.Amount, e.AccountNumber, e.Balance)
}

// WithdrawalDeclined is emitted when a checking account refuses a
// withdrawal beyond its overdraft limit.
type WithdrawalDeclined struct {
	Base
	Amount  money.Money `json:"amount"`
	Balance money.Money `json:"balance"`
}

func (e WithdrawalDeclined) Type() string { return EventTypeWithdrawalDeclined.String() }

func (e WithdrawalDeclined) String() string {
	return fmt.Sprintf("withdrawal of %s from %s declined: insufficient funds including overdraft, balance %s",
		e.Amount, e.AccountNumber, e.Balance)
}

// Transferred is emitted after funds moved between two products.
// AccountNumber holds the source account.
type Transferred struct {
	Base
	Destination        string      `json:"destination"`
	Amount             money.Money `json:"amount"`
	SourceBalance      money.Money `json:"source_balance"`
	DestinationBalance money.Money `json:"destination_balance"`
}

func (e Transferred) Type() string { return EventTypeTransferred.String() }

func (e Transferred) String() string {
	return fmt.Sprintf("transfer of %s from %s to %s completed, balances %s / %s",
		e.Amount, e.AccountNumber, e.Destination, e.SourceBalance, e.DestinationBalance)
}

// InterestAccrued carries the record of one monthly interest cycle.
type InterestAccrued struct {
	Base
	Accrual product.Accrual `json:"accrual"`
}

func (e InterestAccrued) Type() string { return EventTypeInterestAccrued.String() }

func (e InterestAccrued) String() string { return e.Accrual.String() }

// Charged is emitted after a successful credit card purchase.
type Charged struct {
	Base
	Amount      money.Money `json:"amount"`
	UsedBalance money.Money `json:"used_balance"`
}

func (e Charged) Type() string { return EventTypeCharged.String() }

func (e Charged) String() string {
	return fmt.Sprintf("purchase of %s on card %s approved, used balance %s", e.Amount, e.AccountNumber, e.UsedBalance)
}

// Paid is emitted after a credit card payment.
type Paid struct {
	Base
	Amount      money.Money `json:"amount"`
	UsedBalance money.Money `json:"used_balance"`
}

func (e Paid) Type() string { return EventTypePaid.String() }

func (e Paid) String() string {
	return fmt.Sprintf("payment of %s to card %s applied, used balance %s", e.Amount, e.AccountNumber, e.UsedBalance)
}
