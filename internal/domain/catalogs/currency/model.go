// Package currency provides the Currency catalog: monetary units with
// exchange rates against the home currency.
package currency

import (
	"context"
	"regexp"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/pricing"
)

// Currency represents a monetary unit.
type Currency struct {
	entity.Catalog

	// Abbreviation is the short code shown on payment entries (e.g., "MXN", "USD")
	Abbreviation string `db:"abbreviation" json:"abbreviation"`

	// Symbol is the currency symbol (e.g., "$", "€")
	Symbol *string `db:"symbol" json:"symbol,omitempty"`

	// ExchangeRate converts one unit of this currency to home currency
	ExchangeRate types.Money `db:"exchange_rate" json:"exchangeRate"`

	// IsBase indicates the home (accounting) currency; its rate is fixed at 1
	IsBase bool `db:"is_base" json:"isBase"`
}

// NewCurrency creates a new Currency with required fields.
func NewCurrency(code, name, abbreviation string, exchangeRate types.Money) *Currency {
	return &Currency{
		Catalog:      entity.NewCatalog(code, name),
		Abbreviation: abbreviation,
		ExchangeRate: exchangeRate,
	}
}

var abbreviationRe = regexp.MustCompile(`^[A-Z]{2,5}$`)

// Validate implements entity.Validatable interface.
func (c *Currency) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !abbreviationRe.MatchString(c.Abbreviation) {
		return apperror.NewValidation("abbreviation must be 2-5 uppercase letters").
			WithDetail("field", "abbreviation").
			WithDetail("value", c.Abbreviation)
	}

	if !c.ExchangeRate.IsPositive() {
		return apperror.NewValidation("exchange rate must be positive").
			WithDetail("field", "exchangeRate").
			WithDetail("value", c.ExchangeRate.String())
	}

	if c.IsBase && !c.ExchangeRate.Equal(types.One()) {
		return apperror.NewValidation("base currency exchange rate must be 1").
			WithDetail("field", "exchangeRate")
	}

	return nil
}

// ToHome converts an amount entered in this currency to home currency.
func (c *Currency) ToHome(amount types.Money) types.Money {
	return pricing.Convert(amount, c.ExchangeRate)
}
