package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
)

func TestProductValidate_NoTaxNoCategory(t *testing.T) {
	p := NewProduct("P-001", "Refresco")
	p.CostBase = types.MustMoney("10")
	p.PriceBase = types.MustMoney("15")
	p.ApplyTax(nil)

	require.NoError(t, p.Validate(context.Background()))
	assert.Nil(t, p.TaxID, "no tax is a valid state")
	assert.Nil(t, p.CategoryID, "no category is a valid state")
	assert.True(t, p.CostFinal.Equal(p.CostBase))
	assert.True(t, p.PriceFinal.Equal(p.PriceBase))
}

func TestProductValidate_CategoryAssignment(t *testing.T) {
	p := NewProduct("P-001", "Refresco")
	categoryID := id.New()
	p.CategoryID = &categoryID

	require.NoError(t, p.Validate(context.Background()))
}

func TestProductValidate_NegativeAmount(t *testing.T) {
	p := NewProduct("P-001", "Refresco")
	p.PriceBase = types.MustMoney("-1")

	assert.Error(t, p.Validate(context.Background()))
}

func TestApplyTax_RecomputesFinals(t *testing.T) {
	p := NewProduct("P-001", "Refresco")
	p.CostBase = types.MustMoney("100")
	p.PriceBase = types.MustMoney("200")

	percent := types.MustMoney("16")
	p.ApplyTax(&percent)

	assert.True(t, p.CostFinal.Equal(types.MustMoney("116.00")), "got %s", p.CostFinal)
	assert.True(t, p.PriceFinal.Equal(types.MustMoney("232.00")), "got %s", p.PriceFinal)
}
