package domain

import "github.com/shopspring/decimal"

// Item is a stockable product. StockQty is a cached, eventually-reconciled
// rollup of the item's StockMovement stream.
type Item struct {
	ItemID       string          `json:"itemID"`
	BusinessID   string          `json:"businessID"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	PurchaseRate decimal.Decimal `json:"purchaseRate"`
	SaleRate     decimal.Decimal `json:"saleRate"`
	StockQty     decimal.Decimal `json:"stockQty"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
