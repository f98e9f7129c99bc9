package handlers

import (
	"context"

	"puntoventa/internal/core/id"
	"puntoventa/internal/infrastructure/storage/postgres"
)

// HistoryReader reads the audit trail of a document.
type HistoryReader interface {
	GetEntityHistory(ctx context.Context, entityType string, entityID id.ID, limit int) ([]postgres.AuditEntry, error)
}
