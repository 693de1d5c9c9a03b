package repositories

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// PartyRepositoryFacade defines persistence operations for counterparties.
// Cached dues are only ever written through atomic increments co-committed
// with postings (PostingWriter) or through reconciliation corrections
// (ReconciliationRepository), never directly here.
type PartyRepositoryFacade interface {
	SaveParty(ctx context.Context, party domain.Party) error
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, businessID string, limit int, offset int) ([]domain.Party, error)
}

// ItemRepositoryFacade defines persistence operations for stockable items.
// Cached stock quantity follows the same write discipline as party dues.
type ItemRepositoryFacade interface {
	SaveItem(ctx context.Context, item domain.Item) error
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error)
	ListItems(ctx context.Context, businessID string, limit int, offset int) ([]domain.Item, error)
}
