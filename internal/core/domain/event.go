package domain

import "github.com/shopspring/decimal"

// LineItem is one item line of a business event (sale, purchase, return,
// opening stock).
type LineItem struct {
	ItemID   string          `json:"itemID"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitRate decimal.Decimal `json:"unitRate"`
	TaxRate  decimal.Decimal `json:"taxRate"` // percentage, informational
}

// Value is quantity times unit rate.
func (l LineItem) Value() decimal.Decimal {
	return l.Quantity.Mul(l.UnitRate)
}

// TaxComponent is one named tax leg of an event, e.g. CGST/SGST/IGST.
type TaxComponent struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PostingEvent is the normalized business event the Posting Engine consumes.
type PostingEvent struct {
	Transaction   Transaction
	LineItems     []LineItem
	TaxComponents []TaxComponent
}
