package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/bizbooks/bizbooks_backend/internal/utils/mapping"
)

type PgxReconciliationRepository struct {
	BaseRepository
}

// newPgxReconciliationRepository creates a new repository for consistency
// checks and corrections.
func newPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepository {
	return &PgxReconciliationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReconciliationRepository = (*PgxReconciliationRepository)(nil)

// ListActiveItems returns all active items with their cached stock quantity.
func (r *PgxReconciliationRepository) ListActiveItems(ctx context.Context, businessID string) ([]domain.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE business_id = $1 AND is_active = TRUE
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query active items", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row", err)
		}
		items = append(items, mapping.ToDomainItem(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating item rows", err)
	}
	return items, nil
}

// SumStockMovements recomputes per-item stock from the full movement stream.
func (r *PgxReconciliationRepository) SumStockMovements(ctx context.Context, businessID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT item_id, COALESCE(SUM(quantity), 0)
		FROM stock_movements
		WHERE business_id = $1
		GROUP BY item_id;
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to sum stock movements", err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var itemID string
		var sum decimal.Decimal
		if err := rows.Scan(&itemID, &sum); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock sum row", err)
		}
		sums[itemID] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating stock sum rows", err)
	}
	return sums, nil
}

// ApplyStockCorrection writes the AUDIT_CORRECTION movement and overwrites
// the cached quantity in one database transaction, so the movement stream
// always explains the cached value.
func (r *PgxReconciliationRepository) ApplyStockCorrection(ctx context.Context, movement domain.StockMovement, calculated decimal.Decimal, actor string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelStockMovement(movement)
	insertQuery := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	if _, err := tx.Exec(ctx, insertQuery,
		m.MovementID,
		m.BusinessID,
		m.ItemID,
		m.Quantity,
		m.Direction,
		m.Reason,
		m.TransactionID,
		m.MovementDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	); err != nil {
		return apperrors.NewTransientError("failed to insert correction movement for item "+m.ItemID, err)
	}

	updateQuery := `
		UPDATE items
		SET stock_qty = $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery, m.ItemID, calculated, now, actor)
	if err != nil {
		return apperrors.NewTransientError("failed to overwrite stock for item "+m.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + m.ItemID + " not found")
	}

	return r.Commit(ctx, tx)
}

// ListActiveParties returns all active parties with their cached dues.
func (r *PgxReconciliationRepository) ListActiveParties(ctx context.Context, businessID string) ([]domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE business_id = $1 AND is_active = TRUE
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query active parties", err)
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party row", err)
		}
		parties = append(parties, mapping.ToDomainParty(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating party rows", err)
	}
	return parties, nil
}

// SumOutstandingByParty recomputes dues from each party's ledger entries.
// The sign convention matches the posting engine: debits grow customer dues,
// credits grow supplier dues.
func (r *PgxReconciliationRepository) SumOutstandingByParty(ctx context.Context, businessID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT p.party_id,
		       COALESCE(SUM(
		           CASE WHEN p.kind = 'SUPPLIER'
		                THEN je.credit - je.debit
		                ELSE je.debit - je.credit
		           END
		       ), 0)
		FROM parties p
		LEFT JOIN journal_entries je ON je.account_id = p.account_id
		WHERE p.business_id = $1
		GROUP BY p.party_id;
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to sum party ledgers", err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var partyID string
		var sum decimal.Decimal
		if err := rows.Scan(&partyID, &sum); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party ledger sum row", err)
		}
		sums[partyID] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating party ledger sum rows", err)
	}
	return sums, nil
}

// OverwritePartyDues replaces a party's cached dues with the calculated value.
func (r *PgxReconciliationRepository) OverwritePartyDues(ctx context.Context, partyID string, calculated decimal.Decimal, actor string, now time.Time) error {
	query := `
		UPDATE parties
		SET total_dues = $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, partyID, calculated, now, actor)
	if err != nil {
		return apperrors.NewTransientError("failed to overwrite dues for party "+partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("party " + partyID + " not found")
	}
	return nil
}

// TrialBalanceVariance returns sum(debit) - sum(credit) across the journal.
func (r *PgxReconciliationRepository) TrialBalanceVariance(ctx context.Context, businessID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(debit), 0) - COALESCE(SUM(credit), 0)
		FROM journal_entries
		WHERE business_id = $1;
	`
	var variance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, businessID).Scan(&variance); err != nil {
		return decimal.Zero, apperrors.NewTransientError("failed to compute trial balance variance", err)
	}
	return variance, nil
}
