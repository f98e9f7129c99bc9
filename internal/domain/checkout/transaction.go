package checkout

import (
	"puntoventa/internal/core/apperror"
	"puntoventa/internal/domain/cart"
	"puntoventa/internal/domain/payment"
)

// Phase is the lifecycle stage of one open transaction.
type Phase string

const (
	PhaseCartBuilding      Phase = "cart_building"
	PhasePaymentCollecting Phase = "payment_collecting"
	PhaseConfirmed         Phase = "confirmed"
)

// Transaction couples one cart with one payment ledger and enforces the
// legal phase transitions. Exactly one instance is active per open screen;
// there is no concurrent mutation, so no locking.
type Transaction struct {
	Cart   *cart.Cart
	Ledger *payment.Ledger
	phase  Phase
}

// NewTransaction starts a fresh transaction in the given mode.
func NewTransaction(mode cart.Mode) *Transaction {
	return &Transaction{
		Cart:   cart.New(mode),
		Ledger: payment.NewLedger(),
		phase:  PhaseCartBuilding,
	}
}

// Phase returns the current phase.
func (t *Transaction) Phase() Phase {
	return t.phase
}

// BeginPayment opens payment collection. Rejected once the received amount
// already covers the total.
func (t *Transaction) BeginPayment() error {
	if t.phase == PhaseConfirmed {
		return apperror.NewBusinessRule(apperror.CodePaymentComplete, "transaction already confirmed")
	}
	if !t.Ledger.CanAcceptMore(t.Cart.Total()) && t.Ledger.Len() > 0 {
		return apperror.NewPaymentComplete()
	}
	t.phase = PhasePaymentCollecting
	return nil
}

// CancelPayment returns to cart building. Cart and ledger stay intact, so
// partially entered payments survive a close-and-reopen cycle.
func (t *Transaction) CancelPayment() {
	if t.phase == PhasePaymentCollecting {
		t.phase = PhaseCartBuilding
	}
}

// Confirm marks the transaction confirmed. Requires the received amount to
// cover the total; overpayment is valid (change is returned in cash).
func (t *Transaction) Confirm() error {
	if t.phase == PhaseConfirmed {
		return apperror.NewBusinessRule(apperror.CodePaymentComplete, "transaction already confirmed")
	}
	if !t.Ledger.IsSettled(t.Cart.Total()) {
		return apperror.NewBusinessRule(apperror.CodePaymentIncomplete,
			"received amount does not cover the total")
	}
	t.phase = PhaseConfirmed
	return nil
}

// StartNew resets cart, ledger and phase for the next transaction.
func (t *Transaction) StartNew() {
	t.Cart.Clear()
	t.Ledger.Reset()
	t.phase = PhaseCartBuilding
}
