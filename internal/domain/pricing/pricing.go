// Package pricing provides money/tax arithmetic and currency conversion.
//
// All amounts are decimal. Rounding to 2 places happens only at the
// boundaries defined here; callers keep intermediate sums at full precision.
package pricing

import (
	"puntoventa/internal/core/types"
)

// ComputeFinal derives a tax-inclusive amount from a base amount and a tax
// rate expressed as a fraction (0.15 for 15%).
func ComputeFinal(base, taxRate types.Money) types.Money {
	return types.Round2(base.Mul(types.One().Add(taxRate)))
}

// BaseFromFinal derives the tax-exclusive amount from a tax-inclusive one.
// Used when importing legacy records that store only the final amount.
func BaseFromFinal(final, taxRate types.Money) types.Money {
	divisor := types.One().Add(taxRate)
	if divisor.IsZero() {
		return final
	}
	return types.Round2(final.Div(divisor))
}

// Convert converts an amount entered in a foreign currency to its
// home-currency equivalent using the supplied exchange rate.
func Convert(entered, exchangeRate types.Money) types.Money {
	return types.Round2(entered.Mul(exchangeRate))
}

// TaxRateOrZero returns the rate for an optional tax percent. A product
// without a tax reference is a valid state and yields rate 0.
// Percent is stored as a whole number (15 means 15%).
func TaxRateOrZero(percent *types.Money) types.Money {
	if percent == nil {
		return types.Zero()
	}
	return percent.Div(types.NewMoney(100))
}
