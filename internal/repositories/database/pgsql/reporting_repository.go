package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregations.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) scanMovements(ctx context.Context, query string, args ...interface{}) ([]domain.AccountMovement, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query account movements", err)
	}
	defer rows.Close()

	movements := []domain.AccountMovement{}
	for rows.Next() {
		var m domain.AccountMovement
		var group, accType string
		if err := rows.Scan(&m.AccountID, &m.Name, &group, &accType, &m.Debit, &m.Credit, &m.OpeningBalance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account movement row", err)
		}
		m.Group = domain.AccountGroup(group)
		m.Type = domain.AccountType(accType)
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating account movement rows", err)
	}
	return movements, nil
}

// GetAccountMovements returns per-account sums for entries dated on or before
// asOf, opening balances included when their date falls in the window.
func (r *PgxReportingRepository) GetAccountMovements(ctx context.Context, businessID string, asOf time.Time) ([]domain.AccountMovement, error) {
	query := `
		SELECT a.account_id, a.name, a.account_group, a.account_type,
		       COALESCE(SUM(je.debit), 0),
		       COALESCE(SUM(je.credit), 0),
		       CASE WHEN a.opening_balance_date <= $2 THEN a.opening_balance ELSE 0 END
		FROM accounts a
		LEFT JOIN journal_entries je
		       ON je.account_id = a.account_id AND je.entry_date <= $2
		WHERE a.business_id = $1
		GROUP BY a.account_id, a.name, a.account_group, a.account_type,
		         a.opening_balance, a.opening_balance_date
		ORDER BY a.name;
	`
	return r.scanMovements(ctx, query, businessID, asOf)
}

// GetAccountMovementsInRange returns per-account sums for entries dated
// within [from, to].
func (r *PgxReportingRepository) GetAccountMovementsInRange(ctx context.Context, businessID string, from, to time.Time) ([]domain.AccountMovement, error) {
	query := `
		SELECT a.account_id, a.name, a.account_group, a.account_type,
		       COALESCE(SUM(je.debit), 0),
		       COALESCE(SUM(je.credit), 0),
		       0
		FROM accounts a
		LEFT JOIN journal_entries je
		       ON je.account_id = a.account_id AND je.entry_date BETWEEN $2 AND $3
		WHERE a.business_id = $1
		GROUP BY a.account_id, a.name, a.account_group, a.account_type
		ORDER BY a.name;
	`
	return r.scanMovements(ctx, query, businessID, from, to)
}

// GetStockValue values stock on hand as of a date at item purchase rates.
func (r *PgxReportingRepository) GetStockValue(ctx context.Context, businessID string, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(s.qty * i.purchase_rate), 0)
		FROM (
			SELECT item_id, SUM(quantity) AS qty
			FROM stock_movements
			WHERE business_id = $1 AND movement_date <= $2
			GROUP BY item_id
		) s
		JOIN items i ON i.item_id = s.item_id;
	`
	var value decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, businessID, asOf).Scan(&value); err != nil {
		return decimal.Zero, apperrors.NewTransientError("failed to value stock", err)
	}
	return value, nil
}

// GetCashEntries returns cash/bank journal lines within [from, to], each
// flagged with whether its transaction touches fixed-asset or financing
// accounts.
func (r *PgxReportingRepository) GetCashEntries(ctx context.Context, businessID string, from, to time.Time) ([]domain.CashEntry, error) {
	query := `
		SELECT je.entry_date,
		       je.debit - je.credit,
		       t.txn_type,
		       EXISTS (
		           SELECT 1 FROM journal_entries je2
		           JOIN accounts a2 ON a2.account_id = je2.account_id
		           WHERE je2.transaction_id = je.transaction_id
		             AND a2.account_type = 'FIXED_ASSET'
		       ),
		       EXISTS (
		           SELECT 1 FROM journal_entries je2
		           JOIN accounts a2 ON a2.account_id = je2.account_id
		           WHERE je2.transaction_id = je.transaction_id
		             AND a2.account_type IN ('CAPITAL', 'LOAN')
		       )
		FROM journal_entries je
		JOIN accounts a ON a.account_id = je.account_id
		JOIN transactions t ON t.transaction_id = je.transaction_id
		WHERE je.business_id = $1
		  AND a.account_type IN ('CASH', 'BANK')
		  AND je.entry_date BETWEEN $2 AND $3
		ORDER BY je.entry_date, je.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query cash entries", err)
	}
	defer rows.Close()

	entries := []domain.CashEntry{}
	for rows.Next() {
		var e domain.CashEntry
		var txnType string
		if err := rows.Scan(&e.Date, &e.Amount, &txnType, &e.HasFixedAssetLeg, &e.HasFinancingLeg); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash entry row", err)
		}
		e.TxnType = domain.TransactionType(txnType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating cash entry rows", err)
	}
	return entries, nil
}

// GetCashBalance returns the combined cash/bank balance as of a date, opening
// balances included.
func (r *PgxReportingRepository) GetCashBalance(ctx context.Context, businessID string, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE((
		           SELECT SUM(a.opening_balance)
		           FROM accounts a
		           WHERE a.business_id = $1
		             AND a.account_type IN ('CASH', 'BANK')
		             AND a.opening_balance_date <= $2
		       ), 0)
		     + COALESCE((
		           SELECT SUM(je.debit - je.credit)
		           FROM journal_entries je
		           JOIN accounts a ON a.account_id = je.account_id
		           WHERE je.business_id = $1
		             AND a.account_type IN ('CASH', 'BANK')
		             AND je.entry_date <= $2
		       ), 0);
	`
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, businessID, asOf).Scan(&balance); err != nil {
		return decimal.Zero, apperrors.NewTransientError("failed to compute cash balance", err)
	}
	return balance, nil
}
