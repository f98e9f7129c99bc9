// Package supplier provides the Supplier catalog: purchase counterparties.
package supplier

import (
	"context"

	"puntoventa/internal/core/entity"
)

// Supplier represents a vendor products are purchased from.
type Supplier struct {
	entity.Catalog

	RFC     *string `db:"rfc" json:"rfc,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`
}

// NewSupplier creates a new Supplier with required fields.
func NewSupplier(code, name string) *Supplier {
	return &Supplier{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	return s.Catalog.Validate(ctx)
}
