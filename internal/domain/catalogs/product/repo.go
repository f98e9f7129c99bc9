package product

import (
	"context"

	"puntoventa/internal/core/id"
	"puntoventa/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindByBarcode retrieves a product by its scannable code.
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// AdjustStock changes the on-hand quantity by delta (negative for
	// issues). Runs inside the caller's transaction.
	AdjustStock(ctx context.Context, productID id.ID, delta int) error
}
