package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/domain/catalogs/paymentmethod"
	"puntoventa/internal/infrastructure/storage/postgres"
)

const paymentMethodTable = "cat_payment_methods"

// PaymentMethodRepo implements paymentmethod.Repository.
type PaymentMethodRepo struct {
	*BaseCatalogRepo[*paymentmethod.Method]
}

// NewPaymentMethodRepo creates a new payment method repository.
func NewPaymentMethodRepo(txManager *postgres.TxManager) *PaymentMethodRepo {
	return &PaymentMethodRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*paymentmethod.Method](
			txManager,
			paymentMethodTable,
			postgres.ExtractDBColumns[paymentmethod.Method](),
			func() *paymentmethod.Method { return &paymentmethod.Method{} },
		),
	}
}

// FindByClave retrieves a method by its unique clave.
func (r *PaymentMethodRepo) FindByClave(ctx context.Context, clave string) (*paymentmethod.Method, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"clave": clave}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var m paymentmethod.Method
	if err := pgxscan.Get(ctx, r.Querier(ctx), &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("payment method", clave)
		}
		return nil, fmt.Errorf("find by clave: %w", err)
	}

	return &m, nil
}
