package purchase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/payment"
)

func testPurchase(t *testing.T) *Purchase {
	t.Helper()
	p := NewPurchase(id.New(), id.New(), id.New())
	p.AddLine(id.New(), 10, types.MustMoney("80"), types.MustMoney("92.80"))
	return p
}

func TestPurchase_Totals(t *testing.T) {
	p := testPurchase(t)

	assert.Equal(t, "800", p.Subtotal.String())
	assert.Equal(t, "128", p.TaxTotal.String())
	assert.Equal(t, "928", p.Total.String())

	p.AddPayment(payment.Entry{MethodLabel: "TRANSFERENCIA", HomeAmount: types.MustMoney("928")})
	assert.True(t, p.IsSettled())
	assert.True(t, p.Change.IsZero())
}

func TestPurchase_RemovePayment(t *testing.T) {
	p := testPurchase(t)
	p.AddPayment(payment.Entry{MethodLabel: "EFECTIVO", HomeAmount: types.MustMoney("500")})
	p.AddPayment(payment.Entry{MethodLabel: "TRANSFERENCIA", HomeAmount: types.MustMoney("428")})
	require.True(t, p.IsSettled())

	p.RemovePayment(1)
	require.Len(t, p.Payments, 1)
	assert.Equal(t, "500", p.Received.String())
	assert.False(t, p.IsSettled())
}

func TestPurchase_Validate(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, testPurchase(t).Validate(ctx))

	noSupplier := NewPurchase(id.Nil(), id.New(), id.New())
	noSupplier.AddLine(id.New(), 1, types.MustMoney("10"), types.MustMoney("10"))
	assert.Error(t, noSupplier.Validate(ctx))

	empty := NewPurchase(id.New(), id.New(), id.New())
	assert.Error(t, empty.Validate(ctx))
}
