package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/bizbooks/bizbooks_backend/internal/models"
	"github.com/bizbooks/bizbooks_backend/internal/utils/mapping"
)

const uniqueViolationCode = "23505"

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `
	account_id, business_id, name, account_group, account_type,
	opening_balance, opening_balance_date, is_system, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.BusinessID,
		&m.Name,
		&m.AccountGroup,
		&m.AccountType,
		&m.OpeningBalance,
		&m.OpeningBalanceDate,
		&m.IsSystem,
		&m.IsActive,
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

// SaveAccount persists a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.BusinessID,
		m.Name,
		m.AccountGroup,
		m.AccountType,
		m.OpeningBalance,
		m.OpeningBalanceDate,
		m.IsSystem,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.NewAppError(409, "account already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewTransientError("failed to insert account "+m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves a specific account by its unique identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewTransientError("failed to find account by ID "+accountID, err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// FindAccountByTypeAndName retrieves the account of a given type and name
// within a business.
func (r *PgxAccountRepository) FindAccountByTypeAndName(ctx context.Context, businessID string, accountType domain.AccountType, name string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1 AND account_type = $2 AND name = $3;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, businessID, string(accountType), name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewTransientError("failed to find account "+name, err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query accounts by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		result[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating account rows", err)
	}
	for _, id := range accountIDs {
		if _, ok := result[id]; !ok {
			return nil, apperrors.NewNotFoundError("account " + id + " not found")
		}
	}
	return result, nil
}

// ListAccounts retrieves accounts for a business, active ones first.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, businessID string, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1
		ORDER BY is_active DESC, name ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating account rows", err)
	}
	return accounts, nil
}

// DeactivateAccount marks an account as inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, actor string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, now, actor)
	if err != nil {
		return apperrors.NewTransientError("failed to deactivate account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
