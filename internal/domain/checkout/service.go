package checkout

import (
	"context"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/cart"
	"puntoventa/internal/domain/catalogs/currency"
	"puntoventa/internal/domain/catalogs/paymentmethod"
	"puntoventa/internal/domain/catalogs/product"
	"puntoventa/internal/domain/payment"
)

// ProductSource resolves products for cart assembly.
type ProductSource interface {
	GetByID(ctx context.Context, productID id.ID) (*product.Product, error)
}

// MethodSource resolves payment methods for ledger assembly.
type MethodSource interface {
	GetByID(ctx context.Context, methodID id.ID) (*paymentmethod.Method, error)
}

// CurrencySource resolves currencies for amount conversion.
type CurrencySource interface {
	FindByAbbreviation(ctx context.Context, abbreviation string) (*currency.Currency, error)
	GetBase(ctx context.Context) (*currency.Currency, error)
}

// Service assembles submission payloads from catalog data. Unit amounts
// and currency conversions always come from the catalogs at assembly
// time; client-supplied amounts are never trusted.
type Service struct {
	products   ProductSource
	methods    MethodSource
	currencies CurrencySource
}

// NewService creates the checkout assembler.
func NewService(products ProductSource, methods MethodSource, currencies CurrencySource) *Service {
	return &Service{
		products:   products,
		methods:    methods,
		currencies: currencies,
	}
}

// SubmitLine is one requested line: a product and how many.
type SubmitLine struct {
	ProductID id.ID
	Quantity  int
}

// SubmitPayment is one requested payment: a method and the amount as
// entered, in the given currency. Empty currency means home currency.
type SubmitPayment struct {
	MethodID       id.ID
	OriginalAmount types.Money
	CurrencyAbbr   string
}

// SubmitInput is the raw submission before catalog resolution.
type SubmitInput struct {
	Mode           cart.Mode
	Intent         Intent
	CounterpartyID id.ID
	StoreID        id.ID
	RegisterID     id.ID
	Lines          []SubmitLine
	Payments       []SubmitPayment
}

// Assemble resolves the input against the catalogs and builds the
// submission payload: lines go through the cart engine (merge on
// duplicates, unit amounts from the product snapshot), payments through
// the ledger (conversion to home currency at the current rate).
func (s *Service) Assemble(ctx context.Context, in SubmitInput) (Payload, error) {
	if in.Intent == "" {
		in.Intent = IntentFinalize
	}

	// Accumulate requested quantities first so duplicate product lines
	// sum up regardless of their order in the request.
	requested := make(map[id.ID]int)
	order := make([]id.ID, 0, len(in.Lines))
	for _, line := range in.Lines {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		if _, seen := requested[line.ProductID]; !seen {
			order = append(order, line.ProductID)
		}
		requested[line.ProductID] += qty
	}

	c := cart.New(in.Mode)
	for _, productID := range order {
		p, err := s.products.GetByID(ctx, productID)
		if err != nil {
			return Payload{}, err
		}

		snap := p.CartSnapshot()
		c.AddOrIncrement(snap)
		if qty := requested[productID]; qty > 1 {
			if err := c.SetQuantity(snap.ID, qty); err != nil {
				return Payload{}, err
			}
		}
	}

	ledger := payment.NewLedger()
	for _, pay := range in.Payments {
		entry, err := s.resolvePayment(ctx, pay)
		if err != nil {
			return Payload{}, err
		}
		if err := ledger.Add(entry); err != nil {
			return Payload{}, err
		}
	}

	return BuildSubmitPayload(c, ledger, in.StoreID, in.RegisterID, in.CounterpartyID, in.Intent), nil
}

func (s *Service) resolvePayment(ctx context.Context, pay SubmitPayment) (payment.Entry, error) {
	method, err := s.methods.GetByID(ctx, pay.MethodID)
	if err != nil {
		return payment.Entry{}, err
	}

	var curr *currency.Currency
	if pay.CurrencyAbbr == "" {
		curr, err = s.currencies.GetBase(ctx)
	} else {
		curr, err = s.currencies.FindByAbbreviation(ctx, pay.CurrencyAbbr)
	}
	if err != nil {
		return payment.Entry{}, err
	}

	if pay.OriginalAmount.IsNegative() {
		return payment.Entry{}, apperror.NewValidation("payment amount cannot be negative").
			WithDetail("methodId", pay.MethodID.String())
	}

	return payment.Entry{
		MethodID:       method.ID,
		MethodLabel:    method.Name,
		IsCredit:       method.IsCredit,
		HomeAmount:     curr.ToHome(pay.OriginalAmount),
		OriginalAmount: pay.OriginalAmount,
		CurrencyAbbr:   curr.Abbreviation,
	}, nil
}
