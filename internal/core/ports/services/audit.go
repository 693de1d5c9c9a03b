package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// AuditSink receives audit records for actions that change ledger state.
// Implementations must not fail the business operation.
type AuditSink interface {
	Record(ctx context.Context, rec domain.AuditRecord)
}
