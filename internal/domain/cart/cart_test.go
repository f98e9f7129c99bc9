package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
)

func testProduct(name string) Product {
	return Product{
		ID:         id.New(),
		Name:       name,
		CostBase:   types.MustMoney("80"),
		CostFinal:  types.MustMoney("92"),
		PriceBase:  types.MustMoney("100"),
		PriceFinal: types.MustMoney("115"),
	}
}

func TestAddOrIncrement_NoDuplicateRows(t *testing.T) {
	c := New(ModeSale)
	p := testProduct("Refresco")

	for i := 0; i < 5; i++ {
		c.AddOrIncrement(p)
	}

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 5, c.Items()[0].Quantity)
}

func TestAddOrIncrement_ModeSelectsPricePair(t *testing.T) {
	p := testProduct("Harina")

	sale := New(ModeSale)
	sale.AddOrIncrement(p)
	assert.Equal(t, "100", sale.Items()[0].UnitBase.String())
	assert.Equal(t, "115", sale.Items()[0].UnitFinal.String())

	purchase := New(ModePurchase)
	purchase.AddOrIncrement(p)
	assert.Equal(t, "80", purchase.Items()[0].UnitBase.String())
	assert.Equal(t, "92", purchase.Items()[0].UnitFinal.String())
}

func TestAddOrIncrement_PreservesInsertionOrder(t *testing.T) {
	c := New(ModeSale)
	first := testProduct("Primero")
	second := testProduct("Segundo")

	c.AddOrIncrement(first)
	c.AddOrIncrement(second)
	c.AddOrIncrement(first) // increments, does not reorder

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Primero", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Segundo", items[1].Name)
}

func TestSetQuantity(t *testing.T) {
	c := New(ModeSale)
	p := testProduct("Leche")
	c.AddOrIncrement(p)

	require.NoError(t, c.SetQuantity(p.ID, 7))
	assert.Equal(t, 7, c.Items()[0].Quantity)

	// Zero and negatives clamp to 1; removal goes through Remove.
	require.NoError(t, c.SetQuantity(p.ID, 0))
	assert.Equal(t, 1, c.Items()[0].Quantity)
	require.NoError(t, c.SetQuantity(p.ID, -3))
	assert.Equal(t, 1, c.Items()[0].Quantity)

	err := c.SetQuantity(id.New(), 2)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRemove_Idempotent(t *testing.T) {
	c := New(ModeSale)
	p := testProduct("Pan")
	c.AddOrIncrement(p)

	c.Remove(p.ID)
	assert.True(t, c.IsEmpty())

	c.Remove(p.ID) // absent, no-op
	assert.True(t, c.IsEmpty())
}

func TestTotals_EndToEndScenario(t *testing.T) {
	// One line: base 100, 15% tax => final 115, quantity 2.
	c := New(ModeSale)
	p := testProduct("Articulo")
	c.AddOrIncrement(p)
	require.NoError(t, c.SetQuantity(p.ID, 2))

	assert.Equal(t, "200", c.Subtotal().String())
	assert.Equal(t, "30", c.TaxTotal().String())
	assert.Equal(t, "230", c.Total().String())
}

func TestTotals_SubtotalPlusTaxEqualsTotal(t *testing.T) {
	c := New(ModeSale)

	products := []Product{
		{ID: id.New(), Name: "A", PriceBase: types.MustMoney("10.33"), PriceFinal: types.MustMoney("11.98")},
		{ID: id.New(), Name: "B", PriceBase: types.MustMoney("7.77"), PriceFinal: types.MustMoney("9.01")},
		{ID: id.New(), Name: "C", PriceBase: types.MustMoney("150.00"), PriceFinal: types.MustMoney("150.00")},
	}
	for _, p := range products {
		c.AddOrIncrement(p)
	}
	require.NoError(t, c.SetQuantity(products[0].ID, 3))
	require.NoError(t, c.SetQuantity(products[1].ID, 11))
	c.Remove(products[2].ID)

	sum := c.Subtotal().Add(c.TaxTotal())
	assert.True(t, c.Total().Equal(sum),
		"total %s != subtotal+tax %s", c.Total(), sum)
}

func TestTotals_RecomputedOnEveryRead(t *testing.T) {
	c := New(ModeSale)
	p := testProduct("Cafe")
	c.AddOrIncrement(p)
	first := c.Total()

	require.NoError(t, c.SetQuantity(p.ID, 4))
	assert.True(t, c.Total().Equal(first.Mul(types.NewMoney(4))))
}

func TestClear(t *testing.T) {
	c := New(ModePurchase)
	c.AddOrIncrement(testProduct("X"))
	c.AddOrIncrement(testProduct("Y"))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}
