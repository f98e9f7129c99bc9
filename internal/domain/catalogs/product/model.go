// Package product provides the Product catalog: sellable items with a
// cost and price pair, each kept as tax-exclusive base and tax-inclusive
// final amounts.
package product

import (
	"context"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/cart"
	"puntoventa/internal/domain/pricing"
)

// Product represents a catalog item.
type Product struct {
	entity.Catalog

	// Barcode is the scannable code, optional
	Barcode *string `db:"barcode" json:"barcode,omitempty"`

	// CostBase / CostFinal is the purchase cost pair
	CostBase  types.Money `db:"cost_base" json:"costBase"`
	CostFinal types.Money `db:"cost_final" json:"costFinal"`

	// PriceBase / PriceFinal is the sale price pair
	PriceBase  types.Money `db:"price_base" json:"priceBase"`
	PriceFinal types.Money `db:"price_final" json:"priceFinal"`

	// TaxID references the applied tax; nil means "no tax", a valid state
	TaxID *id.ID `db:"tax_id" json:"taxId,omitempty"`

	// CategoryID references the product category; nil means "no
	// category", equally valid
	CategoryID *id.ID `db:"category_id" json:"categoryId,omitempty"`

	// Stock is the on-hand quantity
	Stock int `db:"stock" json:"stock"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string) *Product {
	return &Product{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	for field, amount := range map[string]types.Money{
		"costBase":   p.CostBase,
		"costFinal":  p.CostFinal,
		"priceBase":  p.PriceBase,
		"priceFinal": p.PriceFinal,
	} {
		if amount.IsNegative() {
			return apperror.NewValidation("amount cannot be negative").
				WithDetail("field", field).
				WithDetail("value", amount.String())
		}
	}

	if p.CostFinal.LessThan(p.CostBase) {
		return apperror.NewValidation("cost final cannot be below cost base").
			WithDetail("costBase", p.CostBase.String()).
			WithDetail("costFinal", p.CostFinal.String())
	}
	if p.PriceFinal.LessThan(p.PriceBase) {
		return apperror.NewValidation("price final cannot be below price base").
			WithDetail("priceBase", p.PriceBase.String()).
			WithDetail("priceFinal", p.PriceFinal.String())
	}

	return nil
}

// ApplyTax recomputes both final amounts from the base amounts and the
// given tax percent. Nil percent means no tax, finals equal bases.
func (p *Product) ApplyTax(percent *types.Money) {
	rate := pricing.TaxRateOrZero(percent)
	p.CostFinal = pricing.ComputeFinal(p.CostBase, rate)
	p.PriceFinal = pricing.ComputeFinal(p.PriceBase, rate)
}

// CartSnapshot returns the read-only view the cart engine consumes.
func (p *Product) CartSnapshot() cart.Product {
	return cart.Product{
		ID:         p.ID,
		Name:       p.Name,
		CostBase:   p.CostBase,
		CostFinal:  p.CostFinal,
		PriceBase:  p.PriceBase,
		PriceFinal: p.PriceFinal,
	}
}
