package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/types"
)

func cashEntry(amount string) Entry {
	return Entry{
		MethodLabel:    "EFECTIVO",
		HomeAmount:     types.MustMoney(amount),
		OriginalAmount: types.MustMoney(amount),
		CurrencyAbbr:   "MXN",
	}
}

func TestLedger_ExactPayment(t *testing.T) {
	l := NewLedger()
	total := types.MustMoney("230.00")

	require.True(t, l.CanAcceptMore(total))
	require.NoError(t, l.Add(cashEntry("230.00")))

	assert.False(t, l.CanAcceptMore(total))
	assert.True(t, l.Change(total).IsZero())
	assert.True(t, l.IsSettled(total))
}

func TestLedger_Overpayment(t *testing.T) {
	l := NewLedger()
	total := types.MustMoney("100.00")

	require.NoError(t, l.Add(cashEntry("150.00")))

	assert.Equal(t, "50", l.Change(total).String())
	assert.False(t, l.CanAcceptMore(total))
	assert.True(t, l.IsSettled(total))
}

func TestLedger_PartialPayment(t *testing.T) {
	l := NewLedger()
	total := types.MustMoney("100.00")

	require.NoError(t, l.Add(cashEntry("60.00")))

	assert.True(t, l.CanAcceptMore(total))
	assert.True(t, l.Change(total).IsNegative())
	assert.False(t, l.IsSettled(total))

	require.NoError(t, l.Add(cashEntry("40.00")))
	assert.False(t, l.CanAcceptMore(total))
	assert.True(t, l.Change(total).IsZero())
}

func TestLedger_RejectsNegativeAmount(t *testing.T) {
	l := NewLedger()
	err := l.Add(cashEntry("-5.00"))
	require.Error(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestLedger_ForeignCurrencyEntry(t *testing.T) {
	// 50 USD at 25.50 converts to 1275.00 home; the ledger records both.
	l := NewLedger()
	entry := Entry{
		MethodLabel:    "EFECTIVO",
		HomeAmount:     types.MustMoney("1275.00"),
		OriginalAmount: types.MustMoney("50"),
		CurrencyAbbr:   "USD",
	}
	require.NoError(t, l.Add(entry))

	got := l.Entries()[0]
	assert.Equal(t, "50", got.OriginalAmount.String())
	assert.Equal(t, "1275", got.HomeAmount.String())
	assert.Equal(t, "USD", got.CurrencyAbbr)
}

func TestLedger_RemoveAt(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(cashEntry("10.00")))
	require.NoError(t, l.Add(cashEntry("20.00")))

	l.RemoveAt(0)
	require.Equal(t, 1, l.Len())
	assert.Equal(t, "20", l.TotalReceived().String())

	// Out of range is a no-op.
	l.RemoveAt(5)
	l.RemoveAt(-1)
	assert.Equal(t, 1, l.Len())
}

func TestLedger_Reset(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Add(cashEntry("10.00")))

	l.Reset()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.TotalReceived().IsZero())
}
