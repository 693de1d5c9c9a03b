package repositories

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository provides read-only aggregations over the journal and
// chart of accounts. Reports are pure functions of these reads; nothing here
// mutates state.
type ReportingRepository interface {
	// GetAccountMovements returns per-account debit/credit sums for entries
	// dated on or before asOf, including the account's opening balance when
	// its opening date falls inside the window.
	GetAccountMovements(ctx context.Context, businessID string, asOf time.Time) ([]domain.AccountMovement, error)

	// GetAccountMovementsInRange returns per-account sums for entries dated
	// within [from, to]. Opening balances are not included.
	GetAccountMovementsInRange(ctx context.Context, businessID string, from, to time.Time) ([]domain.AccountMovement, error)

	// GetStockValue values stock on hand as of a date at item purchase rates.
	GetStockValue(ctx context.Context, businessID string, asOf time.Time) (decimal.Decimal, error)

	// GetCashEntries returns journal lines on cash/bank accounts within
	// [from, to], enriched with the owning transaction's semantics.
	GetCashEntries(ctx context.Context, businessID string, from, to time.Time) ([]domain.CashEntry, error)

	// GetCashBalance returns the combined cash/bank balance as of a date,
	// opening balances included.
	GetCashBalance(ctx context.Context, businessID string, asOf time.Time) (decimal.Decimal, error)
}
