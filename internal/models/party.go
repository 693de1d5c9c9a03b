package models

import "github.com/shopspring/decimal"

// Party is the parties table row.
type Party struct {
	PartyID    string          `db:"party_id"`
	BusinessID string          `db:"business_id"`
	Name       string          `db:"name"`
	Kind       string          `db:"kind"`
	Phone      string          `db:"phone"`
	AccountID  string          `db:"account_id"`
	TotalDues  decimal.Decimal `db:"total_dues"`
	IsActive   bool            `db:"is_active"`
	AuditFields
}
