// Package tax provides the Tax catalog: named tax rates applied to
// product prices and costs.
package tax

import (
	"context"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/types"
)

// Tax represents a tax rate.
type Tax struct {
	entity.Catalog

	// Percent is the rate as a whole number (16 means 16%)
	Percent types.Money `db:"percent" json:"percent"`
}

// NewTax creates a new Tax with required fields.
func NewTax(code, name string, percent types.Money) *Tax {
	return &Tax{
		Catalog: entity.NewCatalog(code, name),
		Percent: percent,
	}
}

// Validate implements entity.Validatable interface.
func (t *Tax) Validate(ctx context.Context) error {
	if err := t.Catalog.Validate(ctx); err != nil {
		return err
	}

	if t.Percent.IsNegative() {
		return apperror.NewValidation("tax percent cannot be negative").
			WithDetail("field", "percent").
			WithDetail("value", t.Percent.String())
	}
	if t.Percent.GreaterThan(types.NewMoney(100)) {
		return apperror.NewValidation("tax percent cannot exceed 100").
			WithDetail("field", "percent").
			WithDetail("value", t.Percent.String())
	}

	return nil
}

// Rate returns the percent as a fraction (16 -> 0.16).
func (t *Tax) Rate() types.Money {
	return t.Percent.Div(types.NewMoney(100))
}
