package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/cart"
	"puntoventa/internal/domain/catalogs/currency"
	"puntoventa/internal/domain/catalogs/paymentmethod"
	"puntoventa/internal/domain/catalogs/product"
)

type fakeProducts map[id.ID]*product.Product

func (f fakeProducts) GetByID(_ context.Context, productID id.ID) (*product.Product, error) {
	p, ok := f[productID]
	if !ok {
		return nil, apperror.NewNotFound("product", productID)
	}
	return p, nil
}

type fakeMethods map[id.ID]*paymentmethod.Method

func (f fakeMethods) GetByID(_ context.Context, methodID id.ID) (*paymentmethod.Method, error) {
	m, ok := f[methodID]
	if !ok {
		return nil, apperror.NewNotFound("payment method", methodID)
	}
	return m, nil
}

type fakeCurrencies struct {
	base   *currency.Currency
	byAbbr map[string]*currency.Currency
}

func (f fakeCurrencies) FindByAbbreviation(_ context.Context, abbreviation string) (*currency.Currency, error) {
	c, ok := f.byAbbr[abbreviation]
	if !ok {
		return nil, apperror.NewNotFound("currency", abbreviation)
	}
	return c, nil
}

func (f fakeCurrencies) GetBase(_ context.Context) (*currency.Currency, error) {
	return f.base, nil
}

func assemblerFixture(t *testing.T) (*Service, *product.Product, *paymentmethod.Method) {
	t.Helper()

	p := product.NewProduct("P-001", "Refresco")
	p.PriceBase = types.MustMoney("100")
	p.PriceFinal = types.MustMoney("116")

	cash := paymentmethod.NewMethod("EFE", "Efectivo")

	mxn := currency.NewCurrency("MXN", "Peso", "MXN", types.MustMoney("1"))
	mxn.IsBase = true
	usd := currency.NewCurrency("USD", "Dolar", "USD", types.MustMoney("17.50"))

	svc := NewService(
		fakeProducts{p.ID: p},
		fakeMethods{cash.ID: cash},
		fakeCurrencies{base: mxn, byAbbr: map[string]*currency.Currency{"MXN": mxn, "USD": usd}},
	)
	return svc, p, cash
}

func TestAssemble_ResolvesAmountsFromCatalogs(t *testing.T) {
	svc, p, cash := assemblerFixture(t)
	ctx := context.Background()

	payload, err := svc.Assemble(ctx, SubmitInput{
		Mode:           cart.ModeSale,
		CounterpartyID: id.New(),
		StoreID:        id.New(),
		RegisterID:     id.New(),
		Lines:          []SubmitLine{{ProductID: p.ID, Quantity: 3}},
		Payments:       []SubmitPayment{{MethodID: cash.ID, OriginalAmount: types.MustMoney("348")}},
	})
	require.NoError(t, err)

	assert.Equal(t, IntentFinalize, payload.Intent, "empty intent defaults to finalize")
	require.Len(t, payload.Lines, 1)
	assert.Equal(t, 3, payload.Lines[0].Quantity)
	assert.True(t, payload.Total.Equal(types.MustMoney("348")), "total is 3 x catalog price, got %s", payload.Total)

	require.Len(t, payload.Payments, 1)
	entry := payload.Payments[0]
	assert.Equal(t, cash.Name, entry.MethodLabel)
	assert.Equal(t, "MXN", entry.CurrencyAbbr, "no currency given means home currency")
	assert.True(t, entry.HomeAmount.Equal(types.MustMoney("348")))
	assert.False(t, entry.IsCredit)
}

func TestAssemble_MergesDuplicateLines(t *testing.T) {
	svc, p, _ := assemblerFixture(t)

	orders := [][]SubmitLine{
		{{ProductID: p.ID, Quantity: 2}, {ProductID: p.ID, Quantity: 1}},
		{{ProductID: p.ID, Quantity: 1}, {ProductID: p.ID, Quantity: 2}},
	}

	for _, lines := range orders {
		payload, err := svc.Assemble(context.Background(), SubmitInput{
			Mode:  cart.ModeSale,
			Lines: lines,
		})
		require.NoError(t, err)

		require.Len(t, payload.Lines, 1, "duplicate products merge into one line")
		assert.Equal(t, 3, payload.Lines[0].Quantity, "quantities sum regardless of order")
	}
}

func TestAssemble_ConvertsForeignPayments(t *testing.T) {
	svc, p, cash := assemblerFixture(t)

	payload, err := svc.Assemble(context.Background(), SubmitInput{
		Mode:  cart.ModeSale,
		Lines: []SubmitLine{{ProductID: p.ID, Quantity: 1}},
		Payments: []SubmitPayment{
			{MethodID: cash.ID, OriginalAmount: types.MustMoney("10"), CurrencyAbbr: "USD"},
		},
	})
	require.NoError(t, err)

	require.Len(t, payload.Payments, 1)
	entry := payload.Payments[0]
	assert.Equal(t, "USD", entry.CurrencyAbbr)
	assert.True(t, entry.OriginalAmount.Equal(types.MustMoney("10")))
	assert.True(t, entry.HomeAmount.Equal(types.MustMoney("175.00")), "converted at the catalog rate, got %s", entry.HomeAmount)
}

func TestAssemble_RejectsNegativePayment(t *testing.T) {
	svc, p, cash := assemblerFixture(t)

	_, err := svc.Assemble(context.Background(), SubmitInput{
		Mode:     cart.ModeSale,
		Lines:    []SubmitLine{{ProductID: p.ID, Quantity: 1}},
		Payments: []SubmitPayment{{MethodID: cash.ID, OriginalAmount: types.MustMoney("-5")}},
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestAssemble_UnknownProductFails(t *testing.T) {
	svc, _, _ := assemblerFixture(t)

	_, err := svc.Assemble(context.Background(), SubmitInput{
		Mode:  cart.ModeSale,
		Lines: []SubmitLine{{ProductID: id.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
