package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
)

func creditEntry(amount string) Entry {
	return Entry{
		MethodLabel:    "CREDITO",
		IsCredit:       true,
		HomeAmount:     types.MustMoney(amount),
		OriginalAmount: types.MustMoney(amount),
		CurrencyAbbr:   "MXN",
	}
}

func TestCheckCredit_InsufficientCredit(t *testing.T) {
	now := time.Now()
	credit := CustomerCredit{
		CustomerID: id.New(),
		Limit:      types.MustMoney("1000"),
		Balance:    types.MustMoney("800"),
		Days:       30,
		UpdatedAt:  now,
	}

	err := CheckCredit(creditEntry("300"), credit, types.MustMoney("300"), now)
	require.Error(t, err)
	assert.True(t, apperror.IsBusinessRule(err, apperror.CodeInsufficientCredit))
}

func TestCheckCredit_Expired(t *testing.T) {
	now := time.Now()
	// Plenty of credit available, but the grace period ran out.
	credit := CustomerCredit{
		CustomerID: id.New(),
		Limit:      types.MustMoney("10000"),
		Balance:    types.Zero(),
		Days:       15,
		UpdatedAt:  now.AddDate(0, 0, -16),
	}

	err := CheckCredit(creditEntry("100"), credit, types.MustMoney("100"), now)
	require.Error(t, err)
	assert.True(t, apperror.IsBusinessRule(err, apperror.CodeCreditExpired))
}

func TestCheckCredit_Allowed(t *testing.T) {
	now := time.Now()
	credit := CustomerCredit{
		CustomerID: id.New(),
		Limit:      types.MustMoney("1000"),
		Balance:    types.MustMoney("200"),
		Days:       30,
		UpdatedAt:  now.AddDate(0, 0, -5),
	}

	assert.NoError(t, CheckCredit(creditEntry("500"), credit, types.MustMoney("500"), now))
}

func TestCheckCredit_NonCreditEntryAlwaysAllowed(t *testing.T) {
	now := time.Now()
	// Expired and over-limit, but the entry is cash.
	credit := CustomerCredit{
		CustomerID: id.New(),
		Limit:      types.Zero(),
		Balance:    types.MustMoney("500"),
		Days:       1,
		UpdatedAt:  now.AddDate(0, 0, -10),
	}

	assert.NoError(t, CheckCredit(cashEntry("100.00"), credit, types.MustMoney("100"), now))
}

func TestCustomerCredit_Available(t *testing.T) {
	credit := CustomerCredit{
		Limit:   types.MustMoney("1000"),
		Balance: types.MustMoney("800"),
	}
	assert.Equal(t, "200", credit.Available().String())
}
