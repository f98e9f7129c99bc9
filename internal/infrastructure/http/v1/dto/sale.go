package dto

import (
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/documents/sale"
	"puntoventa/internal/domain/payment"
)

// SaleLineRequest is one sold product row.
type SaleLineRequest struct {
	ProductID  id.ID       `json:"productoId" binding:"required"`
	Quantity   int         `json:"cantidad" binding:"required,min=1"`
	PriceBase  types.Money `json:"precioBase"`
	PriceFinal types.Money `json:"precioFinal"`
}

// SalePaymentRequest is one collected payment row.
type SalePaymentRequest struct {
	MethodID       id.ID       `json:"methodId" binding:"required"`
	MethodLabel    string      `json:"formaPago"`
	IsCredit       bool        `json:"isCredit"`
	HomeAmount     types.Money `json:"importe"`
	OriginalAmount types.Money `json:"importeOriginal"`
	CurrencyAbbr   string      `json:"moneda"`
}

func (r SalePaymentRequest) entry() payment.Entry {
	return payment.Entry{
		MethodID:       r.MethodID,
		MethodLabel:    r.MethodLabel,
		IsCredit:       r.IsCredit,
		HomeAmount:     r.HomeAmount,
		OriginalAmount: r.OriginalAmount,
		CurrencyAbbr:   r.CurrencyAbbr,
	}
}

// CreateSaleRequest creates a pending sale document directly, with
// fully specified lines. Totals are always recomputed server-side.
type CreateSaleRequest struct {
	ClientID   id.ID                `json:"clientId" binding:"required"`
	StoreID    id.ID                `json:"storeId" binding:"required"`
	RegisterID id.ID                `json:"registerId" binding:"required"`
	Comment    string               `json:"comment"`
	Lines      []SaleLineRequest    `json:"productos" binding:"required,min=1"`
	Payments   []SalePaymentRequest `json:"formasPago"`
}

// ToEntity builds the document, recomputing line amounts and totals.
func (r *CreateSaleRequest) ToEntity() *sale.Sale {
	doc := sale.NewSale(r.ClientID, r.StoreID, r.RegisterID)
	doc.Comment = r.Comment
	for _, line := range r.Lines {
		doc.AddLine(line.ProductID, line.Quantity, line.PriceBase, line.PriceFinal)
	}
	for _, pay := range r.Payments {
		doc.AddPayment(pay.entry())
	}
	return doc
}

// UpdateSaleRequest replaces a pending sale's content.
type UpdateSaleRequest struct {
	ClientID   id.ID                `json:"clientId" binding:"required"`
	Comment    string               `json:"comment"`
	Lines      []SaleLineRequest    `json:"productos" binding:"required,min=1"`
	Payments   []SalePaymentRequest `json:"formasPago"`
	Version    int                  `json:"version" binding:"required"`
}

// ApplyTo rebuilds the document parts so totals stay derived.
func (r *UpdateSaleRequest) ApplyTo(doc *sale.Sale) {
	doc.ClientID = r.ClientID
	doc.Comment = r.Comment
	doc.Version = r.Version

	doc.Lines = doc.Lines[:0]
	doc.Payments = doc.Payments[:0]
	for _, line := range r.Lines {
		doc.AddLine(line.ProductID, line.Quantity, line.PriceBase, line.PriceFinal)
	}
	for _, pay := range r.Payments {
		doc.AddPayment(pay.entry())
	}
}
