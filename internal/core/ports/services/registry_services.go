package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// PartySvcFacade manages customers and suppliers.
type PartySvcFacade interface {
	CreateParty(ctx context.Context, businessID string, req dto.CreatePartyRequest, actor string) (*domain.Party, error)
	GetPartyByID(ctx context.Context, businessID string, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, businessID string, kind *domain.PartyKind) ([]domain.Party, error)
}

// ItemSvcFacade manages the item catalog.
type ItemSvcFacade interface {
	CreateItem(ctx context.Context, businessID string, req dto.CreateItemRequest, actor string) (*domain.Item, error)
	GetItemByID(ctx context.Context, businessID string, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context, businessID string) ([]domain.Item, error)
}
