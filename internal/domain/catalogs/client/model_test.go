package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/types"
)

func clientWithCredit(limit, balance string, days int) *Client {
	c := NewClient("CLI001", "Cliente de prueba")
	c.CreditLimit = types.MustMoney(limit)
	c.CreditBalance = types.MustMoney(balance)
	c.CreditDays = days
	return c
}

func TestClient_Validate(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, clientWithCredit("1000", "200", 30).Validate(ctx))

	bad := clientWithCredit("1000", "200", 30)
	bad.CreditLimit = types.MustMoney("-1")
	assert.Error(t, bad.Validate(ctx))

	bad = clientWithCredit("1000", "200", -5)
	assert.Error(t, bad.Validate(ctx))
}

func TestClient_CreditSnapshot(t *testing.T) {
	c := clientWithCredit("1000", "800", 30)
	snap := c.CreditSnapshot()

	assert.Equal(t, c.ID, snap.CustomerID)
	assert.Equal(t, "200", snap.Available().String())
	assert.Equal(t, 30, snap.Days)
}

func TestClient_ChargeAndPayment(t *testing.T) {
	now := time.Now()
	c := clientWithCredit("1000", "0", 30)

	require.NoError(t, c.AddCharge(types.MustMoney("300"), now))
	assert.Equal(t, "300", c.CreditBalance.String())

	// Payment cannot exceed what is owed.
	err := c.RegisterPayment(types.MustMoney("400"), now)
	assert.Error(t, err)

	require.NoError(t, c.RegisterPayment(types.MustMoney("100"), now))
	assert.Equal(t, "200", c.CreditBalance.String())

	// Non-positive amounts are rejected.
	assert.Error(t, c.AddCharge(types.Zero(), now))
	assert.Error(t, c.RegisterPayment(types.Zero(), now))
}

func TestClient_RegisterPayment_NoBalance(t *testing.T) {
	c := clientWithCredit("1000", "0", 30)
	err := c.RegisterPayment(types.MustMoney("50"), time.Now())
	assert.Error(t, err)
}
