package entity

import (
	"context"
	"time"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
)

// DocumentStatus is the lifecycle state of a business document.
type DocumentStatus string

const (
	// StatusPending marks a document saved without being finalized.
	// It can be reopened, edited and later issued.
	StatusPending DocumentStatus = "pending"

	// StatusIssued marks a finalized (emitted) document.
	// The pending -> issued transition is one-way; cancellation is a
	// distinct external operation, not an un-issue.
	StatusIssued DocumentStatus = "issued"
)

// Document is the base type for business transactions.
// Examples: Sale (venta), Purchase (compra).
type Document struct {
	BaseDocument

	// Folio is the sequential human-facing document number,
	// scoped to the register (caja) it was produced at.
	Folio string `db:"folio" json:"folio"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Status is pending or issued
	Status DocumentStatus `db:"status" json:"status"`

	// StoreID is the store (tienda) this document belongs to
	StoreID id.ID `db:"store_id" json:"storeId"`

	// RegisterID is the register (caja/mostrador) scoping the folio
	RegisterID id.ID `db:"register_id" json:"registerId"`

	// Comment is an optional user comment
	Comment string `db:"comment" json:"comment,omitempty"`
}

// NewDocument creates a new pending Document with generated ID.
func NewDocument(storeID, registerID id.ID) Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Date:         time.Now().UTC(),
		Status:       StatusPending,
		StoreID:      storeID,
		RegisterID:   registerID,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if id.IsNil(d.StoreID) {
		return apperror.NewValidation("store is required").
			WithDetail("field", "storeId")
	}

	if id.IsNil(d.RegisterID) {
		return apperror.NewValidation("register is required").
			WithDetail("field", "registerId")
	}

	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	return nil
}

// CanModify checks if document can be modified.
// Issued documents are immutable through this engine.
func (d *Document) CanModify() error {
	if d.Status == StatusIssued {
		return apperror.NewDocumentIssued(d.ID.String())
	}
	return nil
}

// IsIssued returns true if the document has been finalized.
func (d *Document) IsIssued() bool {
	return d.Status == StatusIssued
}

// MarkIssued finalizes the document. One-way transition.
func (d *Document) MarkIssued() {
	d.Status = StatusIssued
	d.Touch()
}

// IsBackdated checks if document date is in the past.
func (d *Document) IsBackdated() bool {
	return d.Date.Before(time.Now().UTC().Truncate(24 * time.Hour))
}
