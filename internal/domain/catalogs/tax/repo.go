package tax

import (
	"puntoventa/internal/domain"
)

// Repository defines the interface for Tax persistence.
type Repository interface {
	domain.CatalogRepository[*Tax]
}
