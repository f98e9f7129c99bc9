package sale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/cart"
	"puntoventa/internal/domain/checkout"
	"puntoventa/internal/domain/payment"
)

func testSale(t *testing.T) *Sale {
	t.Helper()
	s := NewSale(id.New(), id.New(), id.New())
	s.AddLine(id.New(), 2, types.MustMoney("100"), types.MustMoney("115"))
	return s
}

func TestSale_Totals(t *testing.T) {
	s := testSale(t)

	assert.Equal(t, "200", s.Subtotal.String())
	assert.Equal(t, "30", s.TaxTotal.String())
	assert.Equal(t, "230", s.Total.String())
	assert.False(t, s.IsSettled())

	s.AddPayment(payment.Entry{MethodLabel: "EFECTIVO", HomeAmount: types.MustMoney("250"), OriginalAmount: types.MustMoney("250"), CurrencyAbbr: "MXN"})
	assert.Equal(t, "250", s.Received.String())
	assert.Equal(t, "20", s.Change.String())
	assert.True(t, s.IsSettled())
}

func TestSale_CreditAmount(t *testing.T) {
	s := testSale(t)
	s.AddPayment(payment.Entry{MethodLabel: "EFECTIVO", HomeAmount: types.MustMoney("100")})
	s.AddPayment(payment.Entry{MethodLabel: "CREDITO", IsCredit: true, HomeAmount: types.MustMoney("130")})

	assert.Equal(t, "130", s.CreditAmount().String())
	assert.True(t, s.IsSettled())
}

func TestSale_RemovePayment(t *testing.T) {
	s := testSale(t)
	s.AddPayment(payment.Entry{MethodLabel: "EFECTIVO", HomeAmount: types.MustMoney("100")})
	s.AddPayment(payment.Entry{MethodLabel: "TARJETA", HomeAmount: types.MustMoney("130")})

	s.RemovePayment(0)
	require.Len(t, s.Payments, 1)
	assert.Equal(t, "TARJETA", s.Payments[0].MethodLabel)
	assert.Equal(t, 1, s.Payments[0].LineNo)
	assert.Equal(t, "130", s.Received.String())

	s.RemovePayment(9) // out of range, no-op
	assert.Len(t, s.Payments, 1)
}

func TestSale_Validate(t *testing.T) {
	ctx := context.Background()

	s := testSale(t)
	require.NoError(t, s.Validate(ctx))

	empty := NewSale(id.New(), id.New(), id.New())
	assert.Error(t, empty.Validate(ctx))

	noClient := NewSale(id.Nil(), id.New(), id.New())
	noClient.AddLine(id.New(), 1, types.MustMoney("10"), types.MustMoney("10"))
	assert.Error(t, noClient.Validate(ctx))
}

func TestSale_CanModifyAfterIssue(t *testing.T) {
	s := testSale(t)
	require.NoError(t, s.CanModify())

	s.MarkIssued()
	assert.True(t, s.IsIssued())
	assert.Error(t, s.CanModify())
}

func TestSale_FromPayload(t *testing.T) {
	c := cart.New(cart.ModeSale)
	p := cart.Product{ID: id.New(), Name: "Articulo", PriceBase: types.MustMoney("100"), PriceFinal: types.MustMoney("115")}
	c.AddOrIncrement(p)
	require.NoError(t, c.SetQuantity(p.ID, 2))

	l := payment.NewLedger()
	require.NoError(t, l.Add(payment.Entry{MethodLabel: "EFECTIVO", HomeAmount: types.MustMoney("230")}))

	clientID := id.New()
	payload := checkout.BuildSubmitPayload(c, l, id.New(), id.New(), clientID, checkout.IntentFinalize)

	s := FromPayload(payload)
	assert.Equal(t, clientID, s.ClientID)
	require.Len(t, s.Lines, 1)
	assert.Equal(t, 2, s.Lines[0].Quantity)
	assert.Equal(t, "230", s.Total.String())
	assert.True(t, s.IsSettled())
	assert.True(t, s.Change.IsZero())
}
