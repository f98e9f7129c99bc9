// Package sale provides the Sale document (venta): a finalized or pending
// sale with its line items, collected payments and derived totals.
package sale

import (
	"context"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/checkout"
	"puntoventa/internal/domain/payment"
)

// Sale represents a sale document.
type Sale struct {
	entity.Document

	// ClientID is the customer
	ClientID id.ID `db:"client_id" json:"clientId"`

	// Totals (recalculated from lines and payments, stored for queries)
	Subtotal types.Money `db:"subtotal" json:"subtotal"`
	TaxTotal types.Money `db:"tax_total" json:"taxTotal"`
	Total    types.Money `db:"total" json:"total"`
	Received types.Money `db:"received" json:"importeRecibido"`
	Change   types.Money `db:"change" json:"cambio"`

	// Table parts
	Lines    []Line    `db:"-" json:"productos"`
	Payments []Payment `db:"-" json:"formasPago"`
}

// Line is one sold product.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID  id.ID       `db:"product_id" json:"productoId"`
	Quantity   int         `db:"quantity" json:"cantidad"`
	PriceBase  types.Money `db:"price_base" json:"precioBase"`
	PriceFinal types.Money `db:"price_final" json:"precioFinal"`
	Amount     types.Money `db:"amount" json:"importe"`
}

// Payment is one collected payment entry.
type Payment struct {
	PaymentID id.ID `db:"payment_id" json:"paymentId"`
	LineNo    int   `db:"line_no" json:"lineNo"`

	MethodID       id.ID       `db:"method_id" json:"methodId"`
	MethodLabel    string      `db:"method_label" json:"formaPago"`
	IsCredit       bool        `db:"is_credit" json:"isCredit"`
	HomeAmount     types.Money `db:"home_amount" json:"importe"`
	OriginalAmount types.Money `db:"original_amount" json:"importeOriginal"`
	CurrencyAbbr   string      `db:"currency_abbr" json:"moneda"`
}

// Entry converts the stored payment back to a ledger entry, used when the
// credit check re-runs at issue time.
func (p Payment) Entry() payment.Entry {
	return payment.Entry{
		MethodID:       p.MethodID,
		MethodLabel:    p.MethodLabel,
		IsCredit:       p.IsCredit,
		HomeAmount:     p.HomeAmount,
		OriginalAmount: p.OriginalAmount,
		CurrencyAbbr:   p.CurrencyAbbr,
	}
}

// NewSale creates a new pending sale document.
func NewSale(clientID, storeID, registerID id.ID) *Sale {
	return &Sale{
		Document: entity.NewDocument(storeID, registerID),
		ClientID: clientID,
		Lines:    make([]Line, 0),
		Payments: make([]Payment, 0),
	}
}

// FromPayload builds a sale from an assembled checkout payload.
func FromPayload(p checkout.Payload) *Sale {
	s := NewSale(p.CounterpartyID, p.StoreID, p.RegisterID)
	for _, line := range p.Lines {
		s.AddLine(line.ProductID, line.Quantity, line.UnitBase, line.UnitFinal)
	}
	for _, entry := range p.Payments {
		s.AddPayment(entry)
	}
	return s
}

// AddLine appends a sold product and recalculates totals.
func (s *Sale) AddLine(productID id.ID, quantity int, priceBase, priceFinal types.Money) {
	qty := types.NewMoney(float64(quantity))
	s.Lines = append(s.Lines, Line{
		LineID:     id.New(),
		LineNo:     len(s.Lines) + 1,
		ProductID:  productID,
		Quantity:   quantity,
		PriceBase:  priceBase,
		PriceFinal: priceFinal,
		Amount:     types.Round2(priceFinal.Mul(qty)),
	})
	s.recalculateTotals()
}

// AddPayment appends a collected payment and recalculates totals.
func (s *Sale) AddPayment(entry payment.Entry) {
	s.Payments = append(s.Payments, Payment{
		PaymentID:      id.New(),
		LineNo:         len(s.Payments) + 1,
		MethodID:       entry.MethodID,
		MethodLabel:    entry.MethodLabel,
		IsCredit:       entry.IsCredit,
		HomeAmount:     entry.HomeAmount,
		OriginalAmount: entry.OriginalAmount,
		CurrencyAbbr:   entry.CurrencyAbbr,
	})
	s.recalculateTotals()
}

// RemovePayment deletes the payment at the given index and renumbers the
// rest. Out-of-range indexes are a no-op.
func (s *Sale) RemovePayment(index int) {
	if index < 0 || index >= len(s.Payments) {
		return
	}
	s.Payments = append(s.Payments[:index], s.Payments[index+1:]...)
	for i := range s.Payments {
		s.Payments[i].LineNo = i + 1
	}
	s.recalculateTotals()
}

func (s *Sale) recalculateTotals() {
	subtotal := types.Zero()
	total := types.Zero()
	for _, line := range s.Lines {
		qty := types.NewMoney(float64(line.Quantity))
		subtotal = subtotal.Add(line.PriceBase.Mul(qty))
		total = total.Add(line.PriceFinal.Mul(qty))
	}
	s.Subtotal = types.Round2(subtotal)
	s.Total = types.Round2(total)
	s.TaxTotal = types.Round2(total.Sub(subtotal))

	received := types.Zero()
	for _, p := range s.Payments {
		received = received.Add(p.HomeAmount)
	}
	s.Received = types.Round2(received)
	s.Change = types.Round2(received.Sub(total))
}

// IsSettled reports whether collected payments cover the total.
func (s *Sale) IsSettled() bool {
	return s.Received.GreaterThanOrEqual(s.Total)
}

// CreditAmount is the portion of the received amount paid by credit.
func (s *Sale) CreditAmount() types.Money {
	sum := types.Zero()
	for _, p := range s.Payments {
		if p.IsCredit {
			sum = sum.Add(p.HomeAmount)
		}
	}
	return types.Round2(sum)
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(s.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	if len(s.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "productos")
	}

	for _, line := range s.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "productos").
				WithDetail("lineNo", line.LineNo)
		}
		if line.Quantity < 1 {
			return apperror.NewValidation("quantity must be at least 1").
				WithDetail("field", "productos").
				WithDetail("lineNo", line.LineNo)
		}
		if line.PriceFinal.LessThan(line.PriceBase) {
			return apperror.NewValidation("price final cannot be below price base").
				WithDetail("field", "productos").
				WithDetail("lineNo", line.LineNo)
		}
	}

	for _, p := range s.Payments {
		if p.HomeAmount.IsNegative() {
			return apperror.NewValidation("payment amount cannot be negative").
				WithDetail("field", "formasPago").
				WithDetail("lineNo", p.LineNo)
		}
	}

	return nil
}
