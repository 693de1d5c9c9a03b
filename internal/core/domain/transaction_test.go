package domain_test

import (
	"testing"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Outstanding(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        decimal.Decimal
	}{
		{
			name: "unpaid owes everything",
			transaction: domain.Transaction{
				Total:         decimal.NewFromInt(1180),
				PaymentStatus: domain.Unpaid,
			},
			want: decimal.NewFromInt(1180),
		},
		{
			name: "partial owes the remainder",
			transaction: domain.Transaction{
				Total:         decimal.NewFromInt(1180),
				AmountPaid:    decimal.NewFromInt(500),
				PaymentStatus: domain.Partial,
			},
			want: decimal.NewFromInt(680),
		},
		{
			name: "paid owes nothing",
			transaction: domain.Transaction{
				Total:         decimal.NewFromInt(1180),
				AmountPaid:    decimal.NewFromInt(1180),
				PaymentStatus: domain.Paid,
			},
			want: decimal.Zero,
		},
		{
			name: "cancelled owes nothing",
			transaction: domain.Transaction{
				Total:         decimal.NewFromInt(1180),
				PaymentStatus: domain.Cancelled,
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.transaction.Outstanding().Equal(tt.want))
		})
	}
}

func TestTransactionType_Financial(t *testing.T) {
	assert.True(t, domain.Sale.Financial())
	assert.True(t, domain.OpeningBalance.Financial())
	assert.True(t, domain.Reversal.Financial())
	assert.False(t, domain.Quotation.Financial())
	assert.False(t, domain.DeliveryNote.Financial())
}

func TestTransactionType_MoneyTransfer(t *testing.T) {
	assert.True(t, domain.PaymentIn.MoneyTransfer())
	assert.True(t, domain.PaymentOut.MoneyTransfer())
	assert.True(t, domain.Advance.MoneyTransfer())
	assert.False(t, domain.Sale.MoneyTransfer())
	assert.False(t, domain.OpeningBalance.MoneyTransfer())
}

func TestPaymentMode_SettlesToBank(t *testing.T) {
	assert.False(t, domain.ModeCash.SettlesToBank())
	assert.True(t, domain.ModeBank.SettlesToBank())
	assert.True(t, domain.ModeUPI.SettlesToBank())
	assert.True(t, domain.ModeCard.SettlesToBank())
}

func TestAccountType_Group(t *testing.T) {
	assert.Equal(t, domain.Asset, domain.AccountCash.Group())
	assert.Equal(t, domain.Asset, domain.AccountTaxInput.Group())
	assert.Equal(t, domain.Liability, domain.AccountSupplier.Group())
	assert.Equal(t, domain.Liability, domain.AccountTaxOutput.Group())
	assert.Equal(t, domain.Equity, domain.AccountOpeningEquity.Group())
	assert.Equal(t, domain.Income, domain.AccountSalesReturn.Group())
	assert.Equal(t, domain.Expense, domain.AccountPurchase.Group())
	assert.Equal(t, domain.AccountGroup(""), domain.AccountType("BOGUS").Group())
}

func TestAccountGroup_DebitNormal(t *testing.T) {
	assert.True(t, domain.Asset.DebitNormal())
	assert.True(t, domain.Expense.DebitNormal())
	assert.False(t, domain.Liability.DebitNormal())
	assert.False(t, domain.Equity.DebitNormal())
	assert.False(t, domain.Income.DebitNormal())
}

func TestCashEntry_Activity(t *testing.T) {
	assert.Equal(t, domain.Operating, domain.CashEntry{TxnType: domain.Sale}.Activity())
	assert.Equal(t, domain.Investing, domain.CashEntry{TxnType: domain.PaymentOut, HasFixedAssetLeg: true}.Activity())
	assert.Equal(t, domain.Financing, domain.CashEntry{TxnType: domain.PaymentIn, HasFinancingLeg: true}.Activity())
	// Fixed-asset legs win when a transaction touches both.
	assert.Equal(t, domain.Investing, domain.CashEntry{HasFixedAssetLeg: true, HasFinancingLeg: true}.Activity())
}
