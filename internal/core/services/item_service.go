package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// itemService manages the item catalog.
type itemService struct {
	BaseService
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func (s *itemService) CreateItem(ctx context.Context, businessID string, req dto.CreateItemRequest, actor string) (*domain.Item, error) {
	if req.PurchaseRate.IsNegative() || req.SaleRate.IsNegative() {
		return nil, apperrors.NewAppError(400, "item rates must not be negative", apperrors.ErrValidation)
	}
	now := time.Now()
	item := domain.Item{
		ItemID:       uuid.NewString(),
		BusinessID:   businessID,
		Name:         req.Name,
		Unit:         req.Unit,
		PurchaseRate: req.PurchaseRate,
		SaleRate:     req.SaleRate,
		StockQty:     decimal.Zero,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "failed to save item", "name", req.Name)
		return nil, err
	}
	s.LogInfo(ctx, "item created", "itemID", item.ItemID, "name", req.Name)
	return &item, nil
}

func (s *itemService) GetItemByID(ctx context.Context, businessID string, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.BusinessID != businessID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", itemID))
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, businessID string) ([]domain.Item, error) {
	return s.itemRepo.ListItems(ctx, businessID, 500, 0)
}
