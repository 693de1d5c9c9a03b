package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// ReconciliationSvcFacade verifies cached aggregates against the journal.
type ReconciliationSvcFacade interface {
	// Reconcile recomputes item stock quantities and party dues from first
	// principles, applies corrections within policy, and reports anything
	// it could not fix. Honors ctx cancellation between entities.
	Reconcile(ctx context.Context, businessID string, scope domain.ReconScope, actor string) (*domain.ReconciliationReport, error)
}
