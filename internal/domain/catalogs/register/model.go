// Package register provides the Register catalog: point-of-sale tills
// (cajas) belonging to a store. A register scopes folio sequencing.
package register

import (
	"context"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/id"
)

// Register represents a till within a store.
type Register struct {
	entity.Catalog

	// StoreID is the store this register belongs to
	StoreID id.ID `db:"store_id" json:"storeId"`

	// IsActive marks the register as usable for new transactions
	IsActive bool `db:"is_active" json:"isActive"`
}

// NewRegister creates a new Register with required fields.
func NewRegister(code, name string, storeID id.ID) *Register {
	return &Register{
		Catalog:  entity.NewCatalog(code, name),
		StoreID:  storeID,
		IsActive: true,
	}
}

// Validate implements entity.Validatable interface.
func (r *Register) Validate(ctx context.Context) error {
	if err := r.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(r.StoreID) {
		return apperror.NewValidation("register must belong to a store").
			WithDetail("field", "storeId")
	}

	return nil
}
