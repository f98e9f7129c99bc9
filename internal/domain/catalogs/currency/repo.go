package currency

import (
	"context"

	"puntoventa/internal/domain"
)

// Repository defines the interface for Currency persistence.
type Repository interface {
	domain.CatalogRepository[*Currency]

	// FindByAbbreviation retrieves currency by its unique abbreviation.
	FindByAbbreviation(ctx context.Context, abbreviation string) (*Currency, error)

	// GetBase retrieves the home currency.
	GetBase(ctx context.Context) (*Currency, error)

	// ClearBase clears the base flag on all currencies (before setting a new base).
	ClearBase(ctx context.Context) error
}
