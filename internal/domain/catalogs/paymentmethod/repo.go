package paymentmethod

import (
	"context"

	"puntoventa/internal/domain"
)

// Repository defines the interface for payment Method persistence.
type Repository interface {
	domain.CatalogRepository[*Method]

	// FindByClave retrieves a method by its unique clave.
	FindByClave(ctx context.Context, clave string) (*Method, error)
}
