package product

import (
	"fmt"

	"github.com/mibanco/fintech/pkg/domain"
	"github.com/mibanco/fintech/pkg/money"
)

// transfer withdraws amount from src under src's own withdraw policy and
// deposits it into dst. Both locks are held for the whole operation and are
// taken in account-number order. If the deposit fails, src's balance is put
// back to its value before the withdrawal.
func transfer(src, dst Product, amount money.Money) error {
	if src == nil || src.base() == nil {
		return domain.NewValidationError("source", "is required")
	}
	if dst == nil || dst.base() == nil {
		return domain.NewValidationError("destination", "is required")
	}
	if src.AccountNumber() == dst.AccountNumber() {
		return domain.NewValidationError("destination", "must differ from the source account")
	}
	if err := requirePositive(amount); err != nil {
		return err
	}

	from, to := src.base(), dst.base()
	first, second := from, to
	if second.number < first.number {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	before := from.balance
	ok, err := src.withdrawLocked(amount)
	if err != nil {
		return fmt.Errorf("transfer from %s: %w", from.number, err)
	}
	if !ok {
		return fmt.Errorf("transfer from %s: %w: overdraft limit reached",
			from.number, domain.ErrInsufficientFunds)
	}
	if err := to.depositLocked(amount); err != nil {
		from.balance = before
		return fmt.Errorf("transfer to %s: %w", to.number, err)
	}
	return nil
}
