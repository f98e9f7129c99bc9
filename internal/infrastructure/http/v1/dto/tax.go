package dto

import (
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/catalogs/tax"
)

// CreateTaxRequest creates a tax rate.
type CreateTaxRequest struct {
	Code    string      `json:"code" binding:"required"`
	Name    string      `json:"name" binding:"required"`
	Percent types.Money `json:"percent"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateTaxRequest) ToEntity() *tax.Tax {
	return tax.NewTax(r.Code, r.Name, r.Percent)
}

// UpdateTaxRequest updates a tax rate. Version enables optimistic locking.
type UpdateTaxRequest struct {
	Code    string      `json:"code" binding:"required"`
	Name    string      `json:"name" binding:"required"`
	Percent types.Money `json:"percent"`
	Version int         `json:"version" binding:"required"`
}

// ApplyTo copies request fields onto an existing entity.
func (r *UpdateTaxRequest) ApplyTo(t *tax.Tax) {
	t.Code = r.Code
	t.Name = r.Name
	t.Percent = r.Percent
	t.Version = r.Version
}
