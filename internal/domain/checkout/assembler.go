// Package checkout assembles submission payloads and governs the phase
// transitions of one in-progress transaction.
package checkout

import (
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/cart"
	"puntoventa/internal/domain/payment"
)

// Intent selects what the submission does with the document status.
type Intent string

const (
	// IntentFinalize issues the document immediately.
	IntentFinalize Intent = "finalize"
	// IntentHold saves the document as pending; payments may be empty and
	// the document can later be reopened, edited and finalized.
	IntentHold Intent = "hold"
)

// Line is one line item of the submission payload. The serialization
// boundary maps it to mode-specific field names (cost* for purchases,
// price* for sales).
type Line struct {
	ProductID id.ID       `json:"productId"`
	Quantity  int         `json:"quantity"`
	UnitBase  types.Money `json:"unitBase"`
	UnitFinal types.Money `json:"unitFinal"`
}

// Payload is the assembled submission for one sale or purchase.
type Payload struct {
	Mode           cart.Mode       `json:"mode"`
	Intent         Intent          `json:"intent"`
	CounterpartyID id.ID           `json:"counterpartyId"`
	StoreID        id.ID           `json:"storeId"`
	RegisterID     id.ID           `json:"registerId"`
	Lines          []Line          `json:"lines"`
	Payments       []payment.Entry `json:"payments"`
	Subtotal       types.Money     `json:"subtotal"`
	TaxTotal       types.Money     `json:"taxTotal"`
	Total          types.Money     `json:"total"`
	Received       types.Money     `json:"importeRecibido"`
	Change         types.Money     `json:"cambio"`
}

// BuildSubmitPayload maps the cart and ledger into a submission payload.
// Assembly is a pure mapping and never fails; rule checks (received covers
// total, credit eligibility) belong to the document services.
func BuildSubmitPayload(c *cart.Cart, l *payment.Ledger, storeID, registerID, counterpartyID id.ID, intent Intent) Payload {
	items := c.Items()
	lines := make([]Line, len(items))
	for i, item := range items {
		lines[i] = Line{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitBase:  item.UnitBase,
			UnitFinal: item.UnitFinal,
		}
	}

	total := c.Total()
	return Payload{
		Mode:           c.Mode(),
		Intent:         intent,
		CounterpartyID: counterpartyID,
		StoreID:        storeID,
		RegisterID:     registerID,
		Lines:          lines,
		Payments:       l.Entries(),
		Subtotal:       c.Subtotal(),
		TaxTotal:       c.TaxTotal(),
		Total:          total,
		Received:       l.TotalReceived(),
		Change:         l.Change(total),
	}
}
