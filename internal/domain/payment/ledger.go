// Package payment implements the payment collection ledger and the credit
// eligibility check for sales.
package payment

import (
	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
)

// Entry is one recorded payment during collection.
type Entry struct {
	MethodID       id.ID       `json:"methodId"`
	MethodLabel    string      `json:"methodLabel"`
	IsCredit       bool        `json:"isCredit"`
	HomeAmount     types.Money `json:"homeAmount"`
	OriginalAmount types.Money `json:"originalAmount"`
	CurrencyAbbr   string      `json:"currencyAbbr"`
}

// Ledger accumulates payment entries against a target total, scoped to one
// cart/transaction.
type Ledger struct {
	entries []Entry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// CanAcceptMore reports whether another entry may be collected. Callers
// must check this before opening the amount-entry flow; Add itself does not
// enforce it, overpayment on the final entry is valid (cash back).
func (l *Ledger) CanAcceptMore(cartTotal types.Money) bool {
	return l.TotalReceived().LessThan(cartTotal)
}

// Add appends an entry. The only arithmetic validation is that the
// home-currency amount is not negative.
func (l *Ledger) Add(entry Entry) error {
	if entry.HomeAmount.IsNegative() {
		return apperror.NewValidation("payment amount cannot be negative").
			WithDetail("homeAmount", entry.HomeAmount.String())
	}
	l.entries = append(l.entries, entry)
	return nil
}

// RemoveAt deletes the entry at the given index. Out-of-range indexes are
// a no-op.
func (l *Ledger) RemoveAt(index int) {
	if index < 0 || index >= len(l.entries) {
		return
	}
	l.entries = append(l.entries[:index], l.entries[index+1:]...)
}

// Entries returns a copy of the recorded entries in insertion order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// TotalReceived is the sum of home-currency amounts, rounded to 2 places.
func (l *Ledger) TotalReceived() types.Money {
	sum := types.Zero()
	for _, e := range l.entries {
		sum = sum.Add(e.HomeAmount)
	}
	return types.Round2(sum)
}

// Change is TotalReceived minus the cart total, rounded to 2 places.
// Negative means the operator still owes; callers gate confirmation on
// Change >= 0, never on exact zero.
func (l *Ledger) Change(cartTotal types.Money) types.Money {
	return types.Round2(l.TotalReceived().Sub(cartTotal))
}

// IsSettled reports whether the received amount covers the total.
func (l *Ledger) IsSettled(cartTotal types.Money) bool {
	return l.TotalReceived().GreaterThanOrEqual(cartTotal)
}

// Reset clears all entries (cancel, new transaction, successful submit).
func (l *Ledger) Reset() {
	l.entries = nil
}
