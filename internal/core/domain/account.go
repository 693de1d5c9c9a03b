package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountGroup is the fundamental accounting classification of an account.
type AccountGroup string

const (
	Asset     AccountGroup = "ASSET"
	Liability AccountGroup = "LIABILITY"
	Equity    AccountGroup = "EQUITY"
	Income    AccountGroup = "INCOME"
	Expense   AccountGroup = "EXPENSE"
)

// NormalSide reports whether balances of this group are conventionally
// expressed as debits. Assets and expenses are debit-normal; liabilities,
// equity and income are credit-normal.
func (g AccountGroup) DebitNormal() bool {
	return g == Asset || g == Expense
}

// AccountType is the finer classification within a group. It drives lazy
// account creation and report classification.
type AccountType string

const (
	AccountCash           AccountType = "CASH"
	AccountBank           AccountType = "BANK"
	AccountCustomer       AccountType = "CUSTOMER"
	AccountSupplier       AccountType = "SUPPLIER"
	AccountStock          AccountType = "STOCK"
	AccountCapital        AccountType = "CAPITAL"
	AccountTaxInput       AccountType = "TAX_INPUT"
	AccountTaxOutput      AccountType = "TAX_OUTPUT"
	AccountFixedAsset     AccountType = "FIXED_ASSET"
	AccountSales          AccountType = "SALES"
	AccountSalesReturn    AccountType = "SALES_RETURN"
	AccountPurchase       AccountType = "PURCHASE"
	AccountPurchaseReturn AccountType = "PURCHASE_RETURN"
	AccountExpenseGeneral AccountType = "EXPENSE_GENERAL"
	AccountLoan           AccountType = "LOAN"
	AccountOpeningEquity  AccountType = "OPENING_EQUITY"
)

// Group returns the accounting group an account type belongs to.
func (t AccountType) Group() AccountGroup {
	switch t {
	case AccountCash, AccountBank, AccountCustomer, AccountStock, AccountFixedAsset, AccountTaxInput:
		return Asset
	case AccountSupplier, AccountTaxOutput, AccountLoan:
		return Liability
	case AccountCapital, AccountOpeningEquity:
		return Equity
	case AccountSales, AccountSalesReturn:
		return Income
	case AccountPurchase, AccountPurchaseReturn, AccountExpenseGeneral:
		return Expense
	}
	return ""
}

// Account is a chart-of-accounts entry: a named bucket accumulating debits
// and credits. Accounts are never deleted, only deactivated.
type Account struct {
	AccountID          string          `json:"accountID"`
	BusinessID         string          `json:"businessID"`
	Name               string          `json:"name"`
	Group              AccountGroup    `json:"group"`
	Type               AccountType     `json:"type"`
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	OpeningBalanceDate time.Time       `json:"openingBalanceDate"`
	IsSystem           bool            `json:"isSystem"`
	IsActive           bool            `json:"isActive"`
	AuditFields
}
