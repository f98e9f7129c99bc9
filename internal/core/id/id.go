// Package id provides time-ordered UUID identifiers for all entities.
package id

import "github.com/google/uuid"

// ID identifies every catalog and document row.
type ID = uuid.UUID

// New generates a UUIDv7. The embedded timestamp keeps inserts roughly
// ordered, which helps B-tree locality in Postgres.
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// V7 only fails if the random source does; fall back to V4
		return uuid.New()
	}
	return id
}

// Parse converts a string to an ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts a string to an ID, panicking on error. For tests
// and fixed seed values only.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns the zero ID.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether id is the zero ID.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
