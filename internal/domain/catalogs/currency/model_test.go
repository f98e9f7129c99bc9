package currency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/types"
)

func TestCurrency_Validate(t *testing.T) {
	ctx := context.Background()

	c := NewCurrency("USD", "Dólar americano", "USD", types.MustMoney("17.35"))
	require.NoError(t, c.Validate(ctx))

	bad := NewCurrency("usd", "Dólar", "usd", types.MustMoney("17.35"))
	assert.Error(t, bad.Validate(ctx))

	zeroRate := NewCurrency("EUR", "Euro", "EUR", types.Zero())
	assert.Error(t, zeroRate.Validate(ctx))

	base := NewCurrency("MXN", "Peso mexicano", "MXN", types.One())
	base.IsBase = true
	require.NoError(t, base.Validate(ctx))

	base.ExchangeRate = types.MustMoney("2")
	assert.Error(t, base.Validate(ctx))
}

func TestCurrency_ToHome(t *testing.T) {
	c := NewCurrency("USD", "Dólar americano", "USD", types.MustMoney("25.50"))
	assert.Equal(t, "1275", c.ToHome(types.MustMoney("50")).String())
}
