package register

import (
	"context"

	"puntoventa/internal/core/id"
	"puntoventa/internal/domain"
)

// Repository defines the interface for Register persistence.
type Repository interface {
	domain.CatalogRepository[*Register]

	// ListByStore retrieves the registers of one store.
	ListByStore(ctx context.Context, storeID id.ID) ([]*Register, error)
}
