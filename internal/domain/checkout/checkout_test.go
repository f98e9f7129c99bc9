package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/cart"
	"puntoventa/internal/domain/payment"
)

func saleCartWithOneItem(t *testing.T) (*cart.Cart, cart.Product) {
	t.Helper()
	p := cart.Product{
		ID:         id.New(),
		Name:       "Articulo",
		PriceBase:  types.MustMoney("100"),
		PriceFinal: types.MustMoney("115"),
	}
	c := cart.New(cart.ModeSale)
	c.AddOrIncrement(p)
	require.NoError(t, c.SetQuantity(p.ID, 2))
	return c, p
}

func TestBuildSubmitPayload(t *testing.T) {
	c, p := saleCartWithOneItem(t)
	l := payment.NewLedger()
	require.NoError(t, l.Add(payment.Entry{
		MethodLabel:    "EFECTIVO",
		HomeAmount:     types.MustMoney("230.00"),
		OriginalAmount: types.MustMoney("230.00"),
		CurrencyAbbr:   "MXN",
	}))

	storeID, registerID, clientID := id.New(), id.New(), id.New()
	payload := BuildSubmitPayload(c, l, storeID, registerID, clientID, IntentFinalize)

	assert.Equal(t, cart.ModeSale, payload.Mode)
	assert.Equal(t, clientID, payload.CounterpartyID)
	assert.Equal(t, storeID, payload.StoreID)
	assert.Equal(t, registerID, payload.RegisterID)

	require.Len(t, payload.Lines, 1)
	assert.Equal(t, p.ID, payload.Lines[0].ProductID)
	assert.Equal(t, 2, payload.Lines[0].Quantity)
	assert.Equal(t, "100", payload.Lines[0].UnitBase.String())
	assert.Equal(t, "115", payload.Lines[0].UnitFinal.String())

	require.Len(t, payload.Payments, 1)
	assert.Equal(t, "200", payload.Subtotal.String())
	assert.Equal(t, "30", payload.TaxTotal.String())
	assert.Equal(t, "230", payload.Total.String())
	assert.Equal(t, "230", payload.Received.String())
	assert.True(t, payload.Change.IsZero())
}

func TestBuildSubmitPayload_HoldAllowsEmptyPayments(t *testing.T) {
	c, _ := saleCartWithOneItem(t)
	payload := BuildSubmitPayload(c, payment.NewLedger(), id.New(), id.New(), id.New(), IntentHold)

	assert.Equal(t, IntentHold, payload.Intent)
	assert.Empty(t, payload.Payments)
	assert.True(t, payload.Received.IsZero())
	assert.True(t, payload.Change.IsNegative())
}

func TestTransaction_PhaseFlow(t *testing.T) {
	tx := NewTransaction(cart.ModeSale)
	p := cart.Product{ID: id.New(), Name: "X", PriceBase: types.MustMoney("100"), PriceFinal: types.MustMoney("100")}
	tx.Cart.AddOrIncrement(p)

	assert.Equal(t, PhaseCartBuilding, tx.Phase())

	require.NoError(t, tx.BeginPayment())
	assert.Equal(t, PhasePaymentCollecting, tx.Phase())

	// Cancel keeps cart and ledger intact.
	require.NoError(t, tx.Ledger.Add(payment.Entry{MethodLabel: "EFECTIVO", HomeAmount: types.MustMoney("40")}))
	tx.CancelPayment()
	assert.Equal(t, PhaseCartBuilding, tx.Phase())
	assert.Equal(t, 1, tx.Cart.Len())
	assert.Equal(t, 1, tx.Ledger.Len())

	// Reopen and settle.
	require.NoError(t, tx.BeginPayment())
	require.NoError(t, tx.Ledger.Add(payment.Entry{MethodLabel: "EFECTIVO", HomeAmount: types.MustMoney("60")}))
	require.NoError(t, tx.Confirm())
	assert.Equal(t, PhaseConfirmed, tx.Phase())

	// No re-confirmation.
	assert.Error(t, tx.Confirm())
}

func TestTransaction_ConfirmRequiresFullPayment(t *testing.T) {
	tx := NewTransaction(cart.ModeSale)
	p := cart.Product{ID: id.New(), Name: "X", PriceBase: types.MustMoney("100"), PriceFinal: types.MustMoney("100")}
	tx.Cart.AddOrIncrement(p)

	require.NoError(t, tx.BeginPayment())
	require.NoError(t, tx.Ledger.Add(payment.Entry{MethodLabel: "EFECTIVO", HomeAmount: types.MustMoney("99.99")}))

	err := tx.Confirm()
	require.Error(t, err)
	assert.Equal(t, PhasePaymentCollecting, tx.Phase())
}

func TestTransaction_BeginPaymentRejectedWhenSettled(t *testing.T) {
	tx := NewTransaction(cart.ModeSale)
	p := cart.Product{ID: id.New(), Name: "X", PriceBase: types.MustMoney("50"), PriceFinal: types.MustMoney("50")}
	tx.Cart.AddOrIncrement(p)

	require.NoError(t, tx.BeginPayment())
	require.NoError(t, tx.Ledger.Add(payment.Entry{MethodLabel: "EFECTIVO", HomeAmount: types.MustMoney("50")}))
	tx.CancelPayment()

	err := tx.BeginPayment()
	require.Error(t, err)
}

func TestTransaction_StartNewResetsEverything(t *testing.T) {
	tx := NewTransaction(cart.ModePurchase)
	p := cart.Product{ID: id.New(), Name: "X", CostBase: types.MustMoney("10"), CostFinal: types.MustMoney("10")}
	tx.Cart.AddOrIncrement(p)
	require.NoError(t, tx.BeginPayment())
	require.NoError(t, tx.Ledger.Add(payment.Entry{MethodLabel: "EFECTIVO", HomeAmount: types.MustMoney("10")}))
	require.NoError(t, tx.Confirm())

	tx.StartNew()
	assert.Equal(t, PhaseCartBuilding, tx.Phase())
	assert.True(t, tx.Cart.IsEmpty())
	assert.Equal(t, 0, tx.Ledger.Len())
}
