package dto

import (
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/documents/purchase"
	"puntoventa/internal/domain/payment"
)

// PurchaseLineRequest is one purchased product row.
type PurchaseLineRequest struct {
	ProductID id.ID       `json:"productoId" binding:"required"`
	Quantity  int         `json:"cantidad" binding:"required,min=1"`
	CostBase  types.Money `json:"costoBase"`
	CostFinal types.Money `json:"costoFinal"`
}

// PurchasePaymentRequest is one registered payment row.
type PurchasePaymentRequest struct {
	MethodID       id.ID       `json:"methodId" binding:"required"`
	MethodLabel    string      `json:"formaPago"`
	HomeAmount     types.Money `json:"importe"`
	OriginalAmount types.Money `json:"importeOriginal"`
	CurrencyAbbr   string      `json:"moneda"`
}

func (r PurchasePaymentRequest) entry() payment.Entry {
	return payment.Entry{
		MethodID:       r.MethodID,
		MethodLabel:    r.MethodLabel,
		HomeAmount:     r.HomeAmount,
		OriginalAmount: r.OriginalAmount,
		CurrencyAbbr:   r.CurrencyAbbr,
	}
}

// CreatePurchaseRequest creates a pending purchase document directly.
type CreatePurchaseRequest struct {
	SupplierID id.ID                    `json:"supplierId" binding:"required"`
	StoreID    id.ID                    `json:"storeId" binding:"required"`
	RegisterID id.ID                    `json:"registerId" binding:"required"`
	Comment    string                   `json:"comment"`
	Lines      []PurchaseLineRequest    `json:"productos" binding:"required,min=1"`
	Payments   []PurchasePaymentRequest `json:"formasPago"`
}

// ToEntity builds the document, recomputing line amounts and totals.
func (r *CreatePurchaseRequest) ToEntity() *purchase.Purchase {
	doc := purchase.NewPurchase(r.SupplierID, r.StoreID, r.RegisterID)
	doc.Comment = r.Comment
	for _, line := range r.Lines {
		doc.AddLine(line.ProductID, line.Quantity, line.CostBase, line.CostFinal)
	}
	for _, pay := range r.Payments {
		doc.AddPayment(pay.entry())
	}
	return doc
}

// UpdatePurchaseRequest replaces a pending purchase's content.
type UpdatePurchaseRequest struct {
	SupplierID id.ID                    `json:"supplierId" binding:"required"`
	Comment    string                   `json:"comment"`
	Lines      []PurchaseLineRequest    `json:"productos" binding:"required,min=1"`
	Payments   []PurchasePaymentRequest `json:"formasPago"`
	Version    int                      `json:"version" binding:"required"`
}

// ApplyTo rebuilds the document parts so totals stay derived.
func (r *UpdatePurchaseRequest) ApplyTo(doc *purchase.Purchase) {
	doc.SupplierID = r.SupplierID
	doc.Comment = r.Comment
	doc.Version = r.Version

	doc.Lines = doc.Lines[:0]
	doc.Payments = doc.Payments[:0]
	for _, line := range r.Lines {
		doc.AddLine(line.ProductID, line.Quantity, line.CostBase, line.CostFinal)
	}
	for _, pay := range r.Payments {
		doc.AddPayment(pay.entry())
	}
}
