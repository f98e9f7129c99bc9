// Package store provides the Store catalog: physical locations (tiendas)
// that registers belong to.
package store

import (
	"context"

	"puntoventa/internal/core/entity"
)

// Store represents a physical location.
type Store struct {
	entity.Catalog

	Address *string `db:"address" json:"address,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
}

// NewStore creates a new Store with required fields.
func NewStore(code, name string) *Store {
	return &Store{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (s *Store) Validate(ctx context.Context) error {
	return s.Catalog.Validate(ctx)
}
