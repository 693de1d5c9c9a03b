package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockDirection is the flow direction of a stock movement.
type StockDirection string

const (
	StockIn  StockDirection = "IN"
	StockOut StockDirection = "OUT"
)

// StockReason classifies why a movement happened.
type StockReason string

const (
	ReasonSale            StockReason = "SALE"
	ReasonPurchase        StockReason = "PURCHASE"
	ReasonReturnIn        StockReason = "RETURN_IN"
	ReasonReturnOut       StockReason = "RETURN_OUT"
	ReasonOpeningStock    StockReason = "OPENING_STOCK"
	ReasonAuditCorrection StockReason = "AUDIT_CORRECTION"
	ReasonReversal        StockReason = "REVERSAL"
)

// StockMovement is one append-only quantity delta for an item. The cached
// stock quantity on the item record is a materialized rollup of this stream.
type StockMovement struct {
	MovementID    string          `json:"movementID"`
	BusinessID    string          `json:"businessID"`
	ItemID        string          `json:"itemID"`
	Quantity      decimal.Decimal `json:"quantity"` // signed: positive IN, negative OUT
	Direction     StockDirection  `json:"direction"`
	Reason        StockReason     `json:"reason"`
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	AuditFields
}
