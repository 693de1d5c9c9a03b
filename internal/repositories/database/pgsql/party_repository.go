package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/bizbooks/bizbooks_backend/internal/models"
	"github.com/bizbooks/bizbooks_backend/internal/utils/mapping"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for counterparty data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `
	party_id, business_id, name, kind, phone, account_id, total_dues, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanParty(row pgx.Row) (*models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID,
		&m.BusinessID,
		&m.Name,
		&m.Kind,
		&m.Phone,
		&m.AccountID,
		&m.TotalDues,
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

// SaveParty persists a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID,
		m.BusinessID,
		m.Name,
		m.Kind,
		m.Phone,
		m.AccountID,
		m.TotalDues,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.NewAppError(409, "party already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewTransientError("failed to insert party "+m.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by its identifier.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`
	m, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewTransientError("failed to find party by ID "+partyID, err)
	}
	party := mapping.ToDomainParty(*m)
	return &party, nil
}

// ListParties retrieves parties for a business, active ones first.
func (r *PgxPartyRepository) ListParties(ctx context.Context, businessID string, limit int, offset int) ([]domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE business_id = $1
		ORDER BY is_active DESC, name ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query parties", err)
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
