package dto

import (
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest creates a chart-of-accounts entry, typically during
// opening-balance bootstrap.
type CreateAccountRequest struct {
	Name               string          `json:"name" binding:"required"`
	Type               string          `json:"type" binding:"required"`
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	OpeningBalanceDate *time.Time      `json:"openingBalanceDate"`
}

// AccountResponse is the chart-of-accounts entry in API responses.
type AccountResponse struct {
	AccountID          string          `json:"accountID"`
	Name               string          `json:"name"`
	Group              string          `json:"group"`
	Type               string          `json:"type"`
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	OpeningBalanceDate time.Time       `json:"openingBalanceDate"`
	IsSystem           bool            `json:"isSystem"`
	IsActive           bool            `json:"isActive"`
}

// ToAccountResponse converts a domain.Account.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:          a.AccountID,
		Name:               a.Name,
		Group:              string(a.Group),
		Type:               string(a.Type),
		OpeningBalance:     a.OpeningBalance,
		OpeningBalanceDate: a.OpeningBalanceDate,
		IsSystem:           a.IsSystem,
		IsActive:           a.IsActive,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
