// Package purchase provides the Purchase document (compra): incoming goods
// from a supplier with line items, registered payments and derived totals.
package purchase

import (
	"context"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/checkout"
	"puntoventa/internal/domain/payment"
)

// Purchase represents a purchase document.
type Purchase struct {
	entity.Document

	// SupplierID is the vendor
	SupplierID id.ID `db:"supplier_id" json:"supplierId"`

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

// Line is one purchased product.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID id.ID       `db:"product_id" json:"productoId"`
	Quantity  int         `db:"quantity" json:"cantidad"`
	CostBase  types.Money `db:"cost_base" json:"costoBase"`
	CostFinal types.Money `db:"cost_final" json:"costoFinal"`
	Amount    types.Money `db:"amount" json:"importe"`
}

// Payment is one registered payment entry.
type Payment struct {
	PaymentID id.ID `db:"payment_id" json:"paymentId"`
	LineNo    int   `db:"line_no" json:"lineNo"`

	MethodID       id.ID       `db:"method_id" json:"methodId"`
	MethodLabel    string      `db:"method_label" json:"formaPago"`
	HomeAmount     types.Money `db:"home_amount" json:"importe"`
	OriginalAmount types.Money `db:"original_amount" json:"importeOriginal"`
	CurrencyAbbr   string      `db:"currency_abbr" json:"moneda"`
}

// NewPurchase creates a new pending purchase document.
func NewPurchase(supplierID, storeID, registerID id.ID) *Purchase {
	return &Purchase{
		Document:   entity.NewDocument(storeID, registerID),
		SupplierID: supplierID,
		Lines:      make([]Line, 0),
		Payments:   make([]Payment, 0),
	}
}

// FromPayload builds a purchase from an assembled checkout payload.
func FromPayload(p checkout.Payload) *Purchase {
	doc := NewPurchase(p.CounterpartyID, p.StoreID, p.RegisterID)
	for _, line := range p.Lines {
		doc.AddLine(line.ProductID, line.Quantity, line.UnitBase, line.UnitFinal)
	}
	for _, entry := range p.Payments {
		doc.AddPayment(entry)
	}
	return doc
}

// AddLine appends a purchased product and recalculates totals.
func (p *Purchase) AddLine(productID id.ID, quantity int, costBase, costFinal types.Money) {
	qty := types.NewMoney(float64(quantity))
	p.Lines = append(p.Lines, Line{
		LineID:    id.New(),
		LineNo:    len(p.Lines) + 1,
		ProductID: productID,
		Quantity:  quantity,
		CostBase:  costBase,
		CostFinal: costFinal,
		Amount:    types.Round2(costFinal.Mul(qty)),
	})
	p.recalculateTotals()
}

// AddPayment appends a registered payment and recalculates totals.
func (p *Purchase) AddPayment(entry payment.Entry) {
	p.Payments = append(p.Payments, Payment{
		PaymentID:      id.New(),
		LineNo:         len(p.Payments) + 1,
		MethodID:       entry.MethodID,
		MethodLabel:    entry.MethodLabel,
		HomeAmount:     entry.HomeAmount,
		OriginalAmount: entry.OriginalAmount,
		CurrencyAbbr:   entry.CurrencyAbbr,
	})
	p.recalculateTotals()
}

// RemovePayment deletes the payment at the given index and renumbers the
// rest. Out-of-range indexes are a no-op.
func (p *Purchase) RemovePayment(index int) {
	if index < 0 || index >= len(p.Payments) {
		return
	}
	p.Payments = append(p.Payments[:index], p.Payments[index+1:]...)
	for i := range p.Payments {
		p.Payments[i].LineNo = i + 1
	}
	p.recalculateTotals()
}

func (p *Purchase) recalculateTotals() {
	subtotal := types.Zero()
	total := types.Zero()
	for _, line := range p.Lines {
		qty := types.NewMoney(float64(line.Quantity))
		subtotal = subtotal.Add(line.CostBase.Mul(qty))
		total = total.Add(line.CostFinal.Mul(qty))
	}
	p.Subtotal = types.Round2(subtotal)
	p.Total = types.Round2(total)
	p.TaxTotal = types.Round2(total.Sub(subtotal))

	received := types.Zero()
	for _, pay := range p.Payments {
		received = received.Add(pay.HomeAmount)
	}
	p.Received = types.Round2(received)
	p.Change = types.Round2(received.Sub(total))
}

// IsSettled reports whether registered payments cover the total.
func (p *Purchase) IsSettled() bool {
	return p.Received.GreaterThanOrEqual(p.Total)
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(p.SupplierID) {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}

	if len(p.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "productos")
	}

	for _, line := range p.Lines {
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
		if line.CostFinal.LessThan(line.CostBase) {
			return apperror.NewValidation("cost final cannot be below cost base").
				WithDetail("field", "productos").
				WithDetail("lineNo", line.LineNo)
		}
	}

	for _, pay := range p.Payments {
		if pay.HomeAmount.IsNegative() {
			return apperror.NewValidation("payment amount cannot be negative").
				WithDetail("field", "formasPago").
				WithDetail("lineNo", pay.LineNo)
		}
	}

	return nil
}
