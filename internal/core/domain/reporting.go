package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountMovement is the per-account aggregation row the reporting
// repository returns: total debits and credits over the queried window plus
// the account's opening balance when the window covers it.
type AccountMovement struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Group          AccountGroup    `json:"group"`
	Type           AccountType     `json:"type"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// CashEntry is one journal line on a cash/bank account, enriched with the
// owning transaction's semantics for activity bucketing.
type CashEntry struct {
	Date             time.Time       `json:"date"`
	Amount           decimal.Decimal `json:"amount"` // signed: debit positive
	TxnType          TransactionType `json:"txnType"`
	HasFixedAssetLeg bool            `json:"hasFixedAssetLeg"`
	HasFinancingLeg  bool            `json:"hasFinancingLeg"`
}

// Activity infers the cash-flow bucket for the entry. Transactions touching
// fixed-asset accounts are investing; those touching capital or loan accounts
// are financing; everything else is operating.
func (e CashEntry) Activity() CashActivity {
	if e.HasFixedAssetLeg {
		return Investing
	}
	if e.HasFinancingLeg {
		return Financing
	}
	return Operating
}

// TrialBalanceRow is a single account line in a trial balance.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	Group       AccountGroup    `json:"group"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account's balance as of a date and verifies
// the double-entry invariant globally.
type TrialBalanceReport struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Difference  decimal.Decimal   `json:"difference"`
	IsBalanced  bool              `json:"isBalanced"`
}

// AccountAmount is an account with its net amount for financial statements.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// PAndLReport is a profit and loss statement for a period.
type PAndLReport struct {
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
	Revenue           []AccountAmount `json:"revenue"`
	NetRevenue        decimal.Decimal `json:"netRevenue"`
	OpeningStockValue decimal.Decimal `json:"openingStockValue"`
	NetPurchases      decimal.Decimal `json:"netPurchases"`
	ClosingStockValue decimal.Decimal `json:"closingStockValue"`
	COGS              decimal.Decimal `json:"cogs"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	OperatingExpenses []AccountAmount `json:"operatingExpenses"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport classifies every non-zero balance as of a date.
// RetainedEarnings is the computed plug so Assets = Liabilities + Equity
// holds by construction; IsBalanced re-verifies the equality independently.
type BalanceSheetReport struct {
	AsOf                time.Time       `json:"asOf"`
	CurrentAssets       []AccountAmount `json:"currentAssets"`
	FixedAssets         []AccountAmount `json:"fixedAssets"`
	ClosingStockValue   decimal.Decimal `json:"closingStockValue"`
	CurrentLiabilities  []AccountAmount `json:"currentLiabilities"`
	LongTermLiabilities []AccountAmount `json:"longTermLiabilities"`
	Equity              []AccountAmount `json:"equity"`
	RetainedEarnings    decimal.Decimal `json:"retainedEarnings"`
	TotalAssets         decimal.Decimal `json:"totalAssets"`
	TotalLiabilities    decimal.Decimal `json:"totalLiabilities"`
	TotalEquity         decimal.Decimal `json:"totalEquity"`
	IsBalanced          bool            `json:"isBalanced"`
}

// CashActivity is a cash-flow bucket.
type CashActivity string

const (
	Operating CashActivity = "OPERATING"
	Investing CashActivity = "INVESTING"
	Financing CashActivity = "FINANCING"
)

// CashFlowReport buckets cash/bank movements for a period and reconciles
// the net change against actual opening and closing cash balances.
type CashFlowReport struct {
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	Operating      decimal.Decimal `json:"operating"`
	Investing      decimal.Decimal `json:"investing"`
	Financing      decimal.Decimal `json:"financing"`
	NetChange      decimal.Decimal `json:"netChange"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Reconciles     bool            `json:"reconciles"`
}
