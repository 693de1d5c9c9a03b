package domain

import "github.com/shopspring/decimal"

// PartyKind distinguishes customers from suppliers.
type PartyKind string

const (
	Customer PartyKind = "CUSTOMER"
	Supplier PartyKind = "SUPPLIER"
)

// Party is a counterparty (customer or supplier). TotalDues is a cached,
// eventually-reconciled rollup of outstanding amounts across the party's
// unpaid and partially-paid transactions; the journal remains the source of
// truth.
type Party struct {
	PartyID    string          `json:"partyID"`
	BusinessID string          `json:"businessID"`
	Name       string          `json:"name"`
	Kind       PartyKind       `json:"kind"`
	Phone      string          `json:"phone"`
	AccountID  string          `json:"accountID"` // ledger account backing this party
	TotalDues  decimal.Decimal `json:"totalDues"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}
