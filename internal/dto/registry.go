package dto

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest registers a customer or supplier.
type CreatePartyRequest struct {
	Name  string `json:"name" binding:"required"`
	Kind  string `json:"kind" binding:"required,oneof=CUSTOMER SUPPLIER"`
	Phone string `json:"phone"`
}

// PartyResponse is the counterparty in API responses.
type PartyResponse struct {
	PartyID   string          `json:"partyID"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Phone     string          `json:"phone"`
	AccountID string          `json:"accountID"`
	TotalDues decimal.Decimal `json:"totalDues"`
	IsActive  bool            `json:"isActive"`
}

// ToPartyResponse converts a domain.Party.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:   p.PartyID,
		Name:      p.Name,
		Kind:      string(p.Kind),
		Phone:     p.Phone,
		AccountID: p.AccountID,
		TotalDues: p.TotalDues,
		IsActive:  p.IsActive,
	}
}

// CreateItemRequest registers a stockable item.
type CreateItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	Unit         string          `json:"unit"`
	PurchaseRate decimal.Decimal `json:"purchaseRate"`
	SaleRate     decimal.Decimal `json:"saleRate"`
}

// ItemResponse is the item in API responses.
type ItemResponse struct {
	ItemID       string          `json:"itemID"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	PurchaseRate decimal.Decimal `json:"purchaseRate"`
	SaleRate     decimal.Decimal `json:"saleRate"`
	StockQty     decimal.Decimal `json:"stockQty"`
	IsActive     bool            `json:"isActive"`
}

// ToItemResponse converts a domain.Item.
func ToItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:       i.ItemID,
		Name:         i.Name,
		Unit:         i.Unit,
		PurchaseRate: i.PurchaseRate,
		SaleRate:     i.SaleRate,
		StockQty:     i.StockQty,
		IsActive:     i.IsActive,
	}
}
