package repositories

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByTypeAndName retrieves the account of a given type and name
	// within a business. Used by the posting engine's lazy account resolution.
	FindAccountByTypeAndName(ctx context.Context, businessID string, accountType domain.AccountType, name string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts for a business, active ones first.
	ListAccounts(ctx context.Context, businessID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive. Accounts are never deleted.
	DeactivateAccount(ctx context.Context, accountID string, actor string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
