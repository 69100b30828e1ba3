package product

import (
	"fmt"

	"github.com/mibanco/fintech/pkg/money"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// Accrual records one applied interest cycle.
// For credit cards Balance holds the resulting used balance.
type Accrual struct {
	AccountNumber string          `json:"account_number"`
	Kind          Kind            `json:"kind"`
	Rate          decimal.Decimal `json:"rate"`
	Interest      money.Money     `json:"interest"`
	Balance       money.Money     `json:"balance"`
}

func (a Accrual) String() string {
	switch a.Kind {
	case KindCreditCard:
		return fmt.Sprintf("credit card %s: interest added %s, used balance %s",
			a.AccountNumber, a.Interest, a.Balance)
	case KindCertificate:
		return fmt.Sprintf("certificate %s: interest accrued this month %s, balance %s",
			a.AccountNumber, a.Interest, a.Balance)
	default:
		return fmt.Sprintf("%s account %s: interest added %s, balance %s",
			a.Kind, a.AccountNumber, a.Interest, a.Balance)
	}
}
