package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/bizbooks/bizbooks_backend/internal/models"
	"github.com/bizbooks/bizbooks_backend/internal/utils/mapping"
	"github.com/bizbooks/bizbooks_backend/internal/utils/pagination"
)

type PgxPostingRepository struct {
	BaseRepository
}

// newPgxPostingRepository creates a new repository for transactions, journal
// entries and stock movements.
func newPgxPostingRepository(pool *pgxpool.Pool) portsrepo.PostingRepositoryWithTx {
	return &PgxPostingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PostingRepositoryWithTx = (*PgxPostingRepository)(nil)

const transactionColumns = `
	transaction_id, business_id, txn_type, txn_date, party_id,
	subtotal, tax_amount, total, amount_paid, payment_mode, payment_status,
	narration, is_reversed, reversed_by_transaction_id,
	created_at, created_by, last_updated_at, last_updated_by
`

const entryColumns = `
	entry_id, transaction_id, business_id, account_id, entry_date,
	debit, credit, narration, is_reversal, reverses_entry_id,
	created_at, created_by, last_updated_at, last_updated_by
`

const movementColumns = `
	movement_id, business_id, item_id, quantity, direction, reason,
	transaction_id, movement_date,
	created_at, created_by, last_updated_at, last_updated_by
`

// SavePosting persists the full posting in one database transaction: the
// envelope, the journal entries, the stock movements, and in-place increments
// on item stock and party dues. Partial writes never become visible.
func (r *PgxPostingRepository) SavePosting(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry, movements []domain.StockMovement, stockDeltas map[string]decimal.Decimal, duesDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}
	if err := insertEntriesAndMovements(ctx, tx, entries, movements); err != nil {
		return err
	}
	if err := applyAggregateDeltas(ctx, tx, stockDeltas, duesDeltas, txn.LastUpdatedBy, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveReversal persists the mirror posting and flags the original as reversed
// in the same database transaction. The conditional update doubles as a guard
// against two concurrent reversals of the same original.
func (r *PgxPostingRepository) SaveReversal(ctx context.Context, reversal domain.Transaction, entries []domain.JournalEntry, movements []domain.StockMovement, stockDeltas map[string]decimal.Decimal, duesDeltas map[string]decimal.Decimal, voucher domain.ReversalVoucher) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	flagQuery := `
		UPDATE transactions
		SET is_reversed = TRUE, reversed_by_transaction_id = $2,
		    last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1 AND is_reversed = FALSE;
	`
	tag, err := tx.Exec(ctx, flagQuery,
		voucher.OriginalTransactionID,
		reversal.TransactionID,
		reversal.LastUpdatedAt,
		reversal.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewTransientError("failed to flag transaction "+voucher.OriginalTransactionID+" as reversed", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "transaction "+voucher.OriginalTransactionID+" is already reversed", apperrors.ErrAlreadyReversed)
	}

	if err := insertTransaction(ctx, tx, reversal); err != nil {
		return err
	}
	if err := insertEntriesAndMovements(ctx, tx, entries, movements); err != nil {
		return err
	}
	if err := applyAggregateDeltas(ctx, tx, stockDeltas, duesDeltas, reversal.LastUpdatedBy, reversal); err != nil {
		return err
	}

	voucherQuery := `
		INSERT INTO reversal_vouchers (
			voucher_id, business_id, original_transaction_id, reversal_transaction_id,
			reason, actor, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	mv := mapping.ToModelReversalVoucher(voucher)
	if _, err := tx.Exec(ctx, voucherQuery,
		mv.VoucherID,
		mv.BusinessID,
		mv.OriginalTransactionID,
		mv.ReversalTransactionID,
		mv.Reason,
		mv.Actor,
		mv.CreatedAt,
	); err != nil {
		return apperrors.NewTransientError("failed to insert reversal voucher "+mv.VoucherID, err)
	}

	return r.Commit(ctx, tx)
}

func insertTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.BusinessID,
		m.TxnType,
		m.TxnDate,
		m.PartyID,
		m.Subtotal,
		m.TaxAmount,
		m.Total,
		m.AmountPaid,
		m.PaymentMode,
		m.PaymentStatus,
		m.Narration,
		m.IsReversed,
		m.ReversedByTransactionID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.NewAppError(409, "transaction "+m.TransactionID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewTransientError("failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

func insertEntriesAndMovements(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry, movements []domain.StockMovement) error {
	if len(entries) == 0 && len(movements) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	for _, e := range entries {
		m := mapping.ToModelJournalEntry(e)
		batch.Queue(entryQuery,
			m.EntryID,
			m.TransactionID,
			m.BusinessID,
			m.AccountID,
			m.EntryDate,
			m.Debit,
			m.Credit,
			m.Narration,
			m.IsReversal,
			m.ReversesEntryID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	movementQuery := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, mv := range movements {
		m := mapping.ToModelStockMovement(mv)
		batch.Queue(movementQuery,
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
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewTransientError("failed to execute entry/movement batch", err)
	}
	return nil
}

// applyAggregateDeltas increments the cached aggregates in place. The
// increments commute, so concurrent postings touching the same item or party
// serialize at row level without lost updates.
func applyAggregateDeltas(ctx context.Context, tx pgx.Tx, stockDeltas, duesDeltas map[string]decimal.Decimal, actor string, txn domain.Transaction) error {
	stockQuery := `
		UPDATE items
		SET stock_qty = stock_qty + $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1;
	`
	for itemID, delta := range stockDeltas {
		tag, err := tx.Exec(ctx, stockQuery, itemID, delta, txn.LastUpdatedAt, actor)
		if err != nil {
			return apperrors.NewTransientError("failed to update stock for item "+itemID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("item " + itemID + " not found")
		}
	}

	duesQuery := `
		UPDATE parties
		SET total_dues = total_dues + $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $1;
	`
	for partyID, delta := range duesDeltas {
		tag, err := tx.Exec(ctx, duesQuery, partyID, delta, txn.LastUpdatedAt, actor)
		if err != nil {
			return apperrors.NewTransientError("failed to update dues for party "+partyID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("party " + partyID + " not found")
		}
	}
	return nil
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.BusinessID,
		&m.TxnType,
		&m.TxnDate,
		&m.PartyID,
		&m.Subtotal,
		&m.TaxAmount,
		&m.Total,
		&m.AmountPaid,
		&m.PaymentMode,
		&m.PaymentStatus,
		&m.Narration,
		&m.IsReversed,
		&m.ReversedByTransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindTransactionByID retrieves a transaction envelope by its identifier.
func (r *PgxPostingRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewTransientError("failed to find transaction by ID "+transactionID, err)
	}
	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// FindEntriesByTransactionID retrieves all journal entries of a transaction.
func (r *PgxPostingRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE transaction_id = $1
		ORDER BY created_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query entries for transaction "+transactionID, err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.TransactionID,
			&m.BusinessID,
			&m.AccountID,
			&m.EntryDate,
			&m.Debit,
			&m.Credit,
			&m.Narration,
			&m.IsReversal,
			&m.ReversesEntryID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating journal entry rows", err)
	}
	return mapping.ToDomainJournalEntrySlice(entries), nil
}

// FindMovementsByTransactionID retrieves all stock movements referencing a transaction.
func (r *PgxPostingRepository) FindMovementsByTransactionID(ctx context.Context, transactionID string) ([]domain.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE transaction_id = $1
		ORDER BY created_at, movement_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query movements for transaction "+transactionID, err)
	}
	defer rows.Close()

	movements := []models.StockMovement{}
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(
			&m.MovementID,
			&m.BusinessID,
			&m.ItemID,
			&m.Quantity,
			&m.Direction,
			&m.Reason,
			&m.TransactionID,
			&m.MovementDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock movement row", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating stock movement rows", err)
	}
	return mapping.ToDomainStockMovementSlice(movements), nil
}

// FindReversalVoucher retrieves the voucher for an original transaction, if any.
func (r *PgxPostingRepository) FindReversalVoucher(ctx context.Context, originalTransactionID string) (*domain.ReversalVoucher, error) {
	query := `
		SELECT voucher_id, business_id, original_transaction_id, reversal_transaction_id,
		       reason, actor, created_at
		FROM reversal_vouchers
		WHERE original_transaction_id = $1;
	`
	var m models.ReversalVoucher
	err := r.Pool.QueryRow(ctx, query, originalTransactionID).Scan(
		&m.VoucherID,
		&m.BusinessID,
		&m.OriginalTransactionID,
		&m.ReversalTransactionID,
		&m.Reason,
		&m.Actor,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewTransientError("failed to find reversal voucher for "+originalTransactionID, err)
	}
	voucher := mapping.ToDomainReversalVoucher(m)
	return &voucher, nil
}

// ListTransactions retrieves a paginated list of transactions for a business
// using token-based keyset pagination, newest first. When includeReversals is
// false both the reversal vouchers' transactions and the originals they
// cancelled are hidden.
func (r *PgxPostingRepository) ListTransactions(ctx context.Context, businessID string, limit int, nextToken *string, includeReversals bool) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether a next page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE business_id = $1`
	args := []interface{}{businessID}
	if !includeReversals {
		query += ` AND txn_type <> 'REVERSAL' AND is_reversed = FALSE`
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (txn_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += ` ORDER BY txn_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewTransientError("failed to query transactions", err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		txns = append(txns, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewTransientError("error iterating transaction rows", err)
	}

	var newNextToken *string
	if len(txns) == fetchLimit {
		last := txns[limit-1]
		token := pagination.EncodeToken(last.TxnDate, last.CreatedAt)
		newNextToken = &token
		txns = txns[:limit]
	}

	out := make([]domain.Transaction, len(txns))
	for i, m := range txns {
		out[i] = mapping.ToDomainTransaction(m)
	}
	return out, newNextToken, nil
}

// ListEntriesByAccountID retrieves a paginated account statement, newest first.
func (r *PgxPostingRepository) ListEntriesByAccountID(ctx context.Context, businessID, accountID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE business_id = $1 AND account_id = $2`
	args := []interface{}{businessID, accountID}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (entry_date, created_at) < ($3, $4)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += ` ORDER BY entry_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewTransientError("failed to query account entries", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.TransactionID,
			&m.BusinessID,
			&m.AccountID,
			&m.EntryDate,
			&m.Debit,
			&m.Credit,
			&m.Narration,
			&m.IsReversal,
			&m.ReversesEntryID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewTransientError("error iterating journal entry rows", err)
	}

	var newNextToken *string
	if len(entries) == fetchLimit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		newNextToken = &token
		entries = entries[:limit]
	}

	return mapping.ToDomainJournalEntrySlice(entries), newNextToken, nil
}

