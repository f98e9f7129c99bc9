package catalog_repo

import (
	"puntoventa/internal/domain/catalogs/tax"
	"puntoventa/internal/infrastructure/storage/postgres"
)

const taxTable = "cat_taxes"

// TaxRepo implements tax.Repository.
type TaxRepo struct {
	*BaseCatalogRepo[*tax.Tax]
}

// NewTaxRepo creates a new tax repository.
func NewTaxRepo(txManager *postgres.TxManager) *TaxRepo {
	return &TaxRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*tax.Tax](
			txManager,
			taxTable,
			postgres.ExtractDBColumns[tax.Tax](),
			func() *tax.Tax { return &tax.Tax{} },
		),
	}
}
