package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"puntoventa/internal/core/id"
	"puntoventa/internal/domain/catalogs/register"
	"puntoventa/internal/infrastructure/storage/postgres"
)

const registerTable = "cat_registers"

// RegisterRepo implements register.Repository.
type RegisterRepo struct {
	*BaseCatalogRepo[*register.Register]
}

// NewRegisterRepo creates a new register repository.
func NewRegisterRepo(txManager *postgres.TxManager) *RegisterRepo {
	return &RegisterRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*register.Register](
			txManager,
			registerTable,
			postgres.ExtractDBColumns[register.Register](),
			func() *register.Register { return &register.Register{} },
		),
	}
}

// ListByStore retrieves the registers of one store.
func (r *RegisterRepo) ListByStore(ctx context.Context, storeID id.ID) ([]*register.Register, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"store_id": storeID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("code ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*register.Register
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list by store: %w", err)
	}

	return items, nil
}
