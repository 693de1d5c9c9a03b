package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// AccountReaderSvc reads ledger accounts.
type AccountReaderSvc interface {
	GetAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error)
}

// AccountWriterSvc manages the account registry.
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, actor string) (*domain.Account, error)

	// GetOrCreateAccount returns the account with the given type and name,
	// creating it on first use so postings never fail on a missing ledger.
	GetOrCreateAccount(ctx context.Context, businessID string, accType domain.AccountType, name string, actor string) (*domain.Account, error)

	// DeactivateAccount soft-deletes an account. System accounts cannot be
	// deactivated.
	DeactivateAccount(ctx context.Context, businessID string, accountID string, actor string) error
}

// AccountSvcFacade combines account read and write operations.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
