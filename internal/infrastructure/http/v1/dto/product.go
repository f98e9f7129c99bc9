package dto

import (
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/catalogs/product"
)

// CreateProductRequest creates a product. Base prices are mandatory;
// final prices are recomputed server-side from the assigned tax.
type CreateProductRequest struct {
	Code       string      `json:"code" binding:"required"`
	Name       string      `json:"name" binding:"required"`
	Barcode    *string     `json:"barcode"`
	CostBase   types.Money `json:"costBase"`
	PriceBase  types.Money `json:"priceBase"`
	TaxID      *string     `json:"taxId"`
	CategoryID *string     `json:"categoryId"`
	Stock      int         `json:"stock"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateProductRequest) ToEntity() (*product.Product, error) {
	p := product.NewProduct(r.Code, r.Name)
	p.Barcode = r.Barcode
	p.CostBase = r.CostBase
	p.PriceBase = r.PriceBase
	p.Stock = r.Stock

	if r.TaxID != nil && *r.TaxID != "" {
		taxID, err := id.Parse(*r.TaxID)
		if err != nil {
			return nil, err
		}
		p.TaxID = &taxID
	}
	if r.CategoryID != nil && *r.CategoryID != "" {
		categoryID, err := id.Parse(*r.CategoryID)
		if err != nil {
			return nil, err
		}
		p.CategoryID = &categoryID
	}
	return p, nil
}

// UpdateProductRequest updates a product.
type UpdateProductRequest struct {
	Code       string      `json:"code" binding:"required"`
	Name       string      `json:"name" binding:"required"`
	Barcode    *string     `json:"barcode"`
	CostBase   types.Money `json:"costBase"`
	PriceBase  types.Money `json:"priceBase"`
	TaxID      *string     `json:"taxId"`
	CategoryID *string     `json:"categoryId"`
	Stock      int         `json:"stock"`
	Version    int         `json:"version" binding:"required"`
}

// ApplyTo copies request fields onto an existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) error {
	p.Code = r.Code
	p.Name = r.Name
	p.Barcode = r.Barcode
	p.CostBase = r.CostBase
	p.PriceBase = r.PriceBase
	p.Stock = r.Stock
	p.Version = r.Version

	p.TaxID = nil
	if r.TaxID != nil && *r.TaxID != "" {
		taxID, err := id.Parse(*r.TaxID)
		if err != nil {
			return err
		}
		p.TaxID = &taxID
	}

	p.CategoryID = nil
	if r.CategoryID != nil && *r.CategoryID != "" {
		categoryID, err := id.Parse(*r.CategoryID)
		if err != nil {
			return err
		}
		p.CategoryID = &categoryID
	}
	return nil
}
