package client

import (
	"context"

	"puntoventa/internal/core/id"
	"puntoventa/internal/domain"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	domain.CatalogRepository[*Client]

	// GetForUpdate retrieves a client with a row lock, used by credit
	// balance mutations inside a transaction.
	GetForUpdate(ctx context.Context, id id.ID) (*Client, error)
}
