package services

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// ReportingSvcFacade produces financial statements from the journal.
type ReportingSvcFacade interface {
	// GetTrialBalance lists per-account debit and credit totals as of a date.
	GetTrialBalance(ctx context.Context, businessID string, asOf time.Time) (*domain.TrialBalanceReport, error)

	// GetProfitAndLoss computes income, expenses and gross/net profit for a
	// period. Cost of goods sold is derived from opening stock, net
	// purchases and closing stock.
	GetProfitAndLoss(ctx context.Context, businessID string, from, to time.Time) (*domain.PAndLReport, error)

	// GetBalanceSheet lists assets, liabilities and equity as of a date,
	// folding unappropriated profit into equity as retained earnings.
	GetBalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheetReport, error)

	// GetCashFlow buckets cash and bank movements into operating, investing
	// and financing activities for a period.
	GetCashFlow(ctx context.Context, businessID string, from, to time.Time) (*domain.CashFlowReport, error)
}
