// Package tx defines the transaction boundary the domain services depend
// on. The Postgres implementation lives in infrastructure/storage/postgres.
package tx

import "context"

// Manager runs a function inside a database transaction.
type Manager interface {
	// RunInTransaction executes fn within a transaction: rollback when fn
	// returns an error, commit otherwise. Nested calls join the
	// transaction already held by ctx.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager extends Manager for queries that never modify data.
type ReadOnlyManager interface {
	Manager

	// ReadOnly executes fn in a read-only transaction; writes inside fn
	// fail at the database.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
