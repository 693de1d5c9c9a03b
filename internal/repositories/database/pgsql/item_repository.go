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

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for item catalog data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

const itemColumns = `
	item_id, business_id, name, unit, purchase_rate, sale_rate, stock_qty, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanItem(row pgx.Row) (*models.Item, error) {
	var m models.Item
	err := row.Scan(
		&m.ItemID,
		&m.BusinessID,
		&m.Name,
		&m.Unit,
		&m.PurchaseRate,
		&m.SaleRate,
		&m.StockQty,
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

// SaveItem persists a new item.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.BusinessID,
		m.Name,
		m.Unit,
		m.PurchaseRate,
		m.SaleRate,
		m.StockQty,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.NewAppError(409, "item already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewTransientError("failed to insert item "+m.ItemID, err)
	}
	return nil
}

// FindItemByID retrieves an item by its identifier.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1;`
	m, err := scanItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewTransientError("failed to find item by ID "+itemID, err)
	}
	item := mapping.ToDomainItem(*m)
	return &item, nil
}

// FindItemsByIDs retrieves multiple items by their IDs.
func (r *PgxItemRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	if len(itemIDs) == 0 {
		return map[string]domain.Item{}, nil
	}
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query items by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Item, len(itemIDs))
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row", err)
		}
		result[m.ItemID] = mapping.ToDomainItem(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewTransientError("error iterating item rows", err)
	}
	return result, nil
}

// ListItems retrieves items for a business, active ones first.
func (r *PgxItemRepository) ListItems(ctx context.Context, businessID string, limit int, offset int) ([]domain.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE business_id = $1
		ORDER BY is_active DESC, name ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to query items", err)
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
