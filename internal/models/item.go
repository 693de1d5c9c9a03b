package models

import "github.com/shopspring/decimal"

// Item is the items table row.
type Item struct {
	ItemID       string          `db:"item_id"`
	BusinessID   string          `db:"business_id"`
	Name         string          `db:"name"`
	Unit         string          `db:"unit"`
	PurchaseRate decimal.Decimal `db:"purchase_rate"`
	SaleRate     decimal.Decimal `db:"sale_rate"`
	StockQty     decimal.Decimal `db:"stock_qty"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
