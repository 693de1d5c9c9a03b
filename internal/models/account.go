package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountGroup mirrors domain.AccountGroup at the storage layer.
type AccountGroup string

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

// Account is the accounts table row.
type Account struct {
	AccountID          string          `db:"account_id"`
	BusinessID         string          `db:"business_id"`
	Name               string          `db:"name"`
	AccountGroup       AccountGroup    `db:"account_group"`
	AccountType        AccountType     `db:"account_type"`
	OpeningBalance     decimal.Decimal `db:"opening_balance"`
	OpeningBalanceDate time.Time       `db:"opening_balance_date"`
	IsSystem           bool            `db:"is_system"`
	IsActive           bool            `db:"is_active"`
	AuditFields
}
