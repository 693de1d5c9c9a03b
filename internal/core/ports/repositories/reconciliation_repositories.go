package repositories

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconciliationRepository provides the reads and the per-entity atomic
// corrections the reconciliation engine needs. Each correction is its own
// unit of work so a cancelled sweep leaves applied corrections committed.
type ReconciliationRepository interface {
	// ListActiveItems returns all active items with their cached stock quantity.
	ListActiveItems(ctx context.Context, businessID string) ([]domain.Item, error)

	// SumStockMovements recomputes per-item stock from the movement stream:
	// sum of IN quantities minus sum of OUT quantities.
	SumStockMovements(ctx context.Context, businessID string) (map[string]decimal.Decimal, error)

	// ApplyStockCorrection inserts an AUDIT_CORRECTION stock movement and
	// overwrites the item's cached quantity with the calculated value in one
	// atomic unit.
	ApplyStockCorrection(ctx context.Context, movement domain.StockMovement, calculated decimal.Decimal, actor string, now time.Time) error

	// ListActiveParties returns all active parties with their cached dues.
	ListActiveParties(ctx context.Context, businessID string) ([]domain.Party, error)

	// SumOutstandingByParty recomputes per-party dues from the journal
	// entries on each party's ledger account: debits minus credits for
	// customers, credits minus debits for suppliers.
	SumOutstandingByParty(ctx context.Context, businessID string) (map[string]decimal.Decimal, error)

	// OverwritePartyDues replaces a party's cached dues with the calculated
	// value.
	OverwritePartyDues(ctx context.Context, partyID string, calculated decimal.Decimal, actor string, now time.Time) error

	// TrialBalanceVariance returns sum(debit) - sum(credit) across the whole
	// journal of the business.
	TrialBalanceVariance(ctx context.Context, businessID string) (decimal.Decimal, error)
}
