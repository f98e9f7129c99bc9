package payment

import (
	"time"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
)

// CustomerCredit is a read-only snapshot of a customer's credit state,
// fetched from the client catalog and treated as immutable for the
// duration of one transaction.
type CustomerCredit struct {
	CustomerID id.ID
	Limit      types.Money
	Balance    types.Money
	Days       int
	UpdatedAt  time.Time
}

// Available is the remaining credit: limit minus amount already owed.
func (c CustomerCredit) Available() types.Money {
	return c.Limit.Sub(c.Balance)
}

// ExpiredAt reports whether the credit grace period has run out.
func (c CustomerCredit) ExpiredAt(now time.Time) bool {
	deadline := c.UpdatedAt.AddDate(0, 0, c.Days)
	return now.After(deadline)
}

// CheckCredit validates a credit-method entry against the customer's
// credit snapshot. Non-credit entries are always allowed. The check runs
// both when the operator adds the entry and again at document issue, since
// the snapshot can go stale between the two moments.
func CheckCredit(entry Entry, credit CustomerCredit, cartTotal types.Money, now time.Time) error {
	if !entry.IsCredit {
		return nil
	}
	if credit.ExpiredAt(now) {
		return apperror.NewCreditExpired(credit.CustomerID.String())
	}
	if credit.Available().LessThan(cartTotal) {
		return apperror.NewInsufficientCredit(
			credit.CustomerID.String(),
			cartTotal.String(),
			credit.Available().String(),
		)
	}
	return nil
}
