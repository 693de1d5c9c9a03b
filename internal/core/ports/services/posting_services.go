package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// PostingWriterSvc converts business events into balanced, committed postings.
type PostingWriterSvc interface {
	// Post derives the canonical journal entries and stock deltas for the
	// event and commits them atomically. Returns apperrors.ErrValidation for
	// malformed events, apperrors.ErrImbalance when the derived entries do
	// not balance within tolerance.
	Post(ctx context.Context, businessID string, req dto.PostTransactionRequest, actor string) (*domain.PostedTransaction, error)
}

// PostingReaderSvc reads back posted transactions.
type PostingReaderSvc interface {
	// GetTransaction retrieves a transaction with its entries and movements.
	GetTransaction(ctx context.Context, businessID string, transactionID string) (*domain.PostedTransaction, error)

	// ListTransactions retrieves a paginated list of transactions.
	ListTransactions(ctx context.Context, businessID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListAccountEntries retrieves the paginated statement of one account.
	ListAccountEntries(ctx context.Context, businessID string, accountID string, params dto.ListAccountEntriesParams) (*dto.ListAccountEntriesResponse, error)
}

// PostingSvcFacade combines posting write and read operations.
type PostingSvcFacade interface {
	PostingWriterSvc
	PostingReaderSvc
}
