package repositories

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingWriter persists complete postings. Every method commits its writes
// as a single atomic unit: either all of {transaction, journal entries,
// stock movements, cached-aggregate increments} land, or none do.
type PostingWriter interface {
	// SavePosting persists a transaction with its entries and stock movements,
	// applying the given cached-aggregate increments (item stock quantity and
	// party dues) as atomic in-place increments in the same unit of work.
	SavePosting(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry, movements []domain.StockMovement, stockDeltas map[string]decimal.Decimal, duesDeltas map[string]decimal.Decimal) error

	// SaveReversal persists a reversal transaction with its mirror entries,
	// inverse stock movements and aggregate increments, writes the reversal
	// voucher, and flags the original transaction as reversed with a pointer
	// to the reversal — all in one atomic unit. The original row is otherwise
	// untouched.
	SaveReversal(ctx context.Context, reversal domain.Transaction, entries []domain.JournalEntry, movements []domain.StockMovement, stockDeltas map[string]decimal.Decimal, duesDeltas map[string]decimal.Decimal, voucher domain.ReversalVoucher) error
}

// TransactionReader defines read operations for posted transactions and
// their journal lines.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction envelope by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindEntriesByTransactionID retrieves all journal entries of a transaction.
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)

	// FindMovementsByTransactionID retrieves all stock movements referencing a transaction.
	FindMovementsByTransactionID(ctx context.Context, transactionID string) ([]domain.StockMovement, error)

	// FindReversalVoucher retrieves the voucher for an original transaction, if any.
	FindReversalVoucher(ctx context.Context, originalTransactionID string) (*domain.ReversalVoucher, error)

	// ListTransactions retrieves a paginated list of transactions for a
	// business using token-based pagination, newest first.
	ListTransactions(ctx context.Context, businessID string, limit int, nextToken *string, includeReversals bool) ([]domain.Transaction, *string, error)

	// ListEntriesByAccountID retrieves a paginated account statement.
	ListEntriesByAccountID(ctx context.Context, businessID, accountID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// PostingRepositoryFacade combines posting persistence and reads.
type PostingRepositoryFacade interface {
	PostingWriter
	TransactionReader
}

// PostingRepositoryWithTx extends PostingRepositoryFacade with transaction capabilities.
type PostingRepositoryWithTx interface {
	PostingRepositoryFacade
	TransactionManager
}
