package catalog_repo

import (
	"puntoventa/internal/domain/catalogs/store"
	"puntoventa/internal/infrastructure/storage/postgres"
)

const storeTable = "cat_stores"

// StoreRepo implements store.Repository.
type StoreRepo struct {
	*BaseCatalogRepo[*store.Store]
}

// NewStoreRepo creates a new store repository.
func NewStoreRepo(txManager *postgres.TxManager) *StoreRepo {
	return &StoreRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*store.Store](
			txManager,
			storeTable,
			postgres.ExtractDBColumns[store.Store](),
			func() *store.Store { return &store.Store{} },
		),
	}
}
