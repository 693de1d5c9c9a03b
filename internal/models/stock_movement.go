package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement is the stock_movements table row. Append-only.
type StockMovement struct {
	MovementID    string          `db:"movement_id"`
	BusinessID    string          `db:"business_id"`
	ItemID        string          `db:"item_id"`
	Quantity      decimal.Decimal `db:"quantity"`
	Direction     string          `db:"direction"`
	Reason        string          `db:"reason"`
	TransactionID string          `db:"transaction_id"`
	MovementDate  time.Time       `db:"movement_date"`
	AuditFields
}
