package accounting_test

import (
	"testing"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(debit, credit float64) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID: "e1",
		Debit:   decimal.NewFromFloat(debit),
		Credit:  decimal.NewFromFloat(credit),
	}
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, accounting.WithinTolerance(decimal.NewFromFloat(100.00), decimal.NewFromFloat(100.01), accounting.MoneyTolerance))
	assert.True(t, accounting.WithinTolerance(decimal.NewFromFloat(100.01), decimal.NewFromFloat(100.00), accounting.MoneyTolerance))
	assert.False(t, accounting.WithinTolerance(decimal.NewFromFloat(100.00), decimal.NewFromFloat(100.02), accounting.MoneyTolerance))
	assert.True(t, accounting.WithinTolerance(decimal.NewFromFloat(5.0005), decimal.NewFromFloat(5.0010), accounting.StockTolerance))
}

func TestValidateEntriesBalance(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.JournalEntry
		wantErr bool
	}{
		{
			name:    "balanced pair",
			entries: []domain.JournalEntry{entry(100, 0), entry(0, 100)},
		},
		{
			name:    "balanced within tolerance",
			entries: []domain.JournalEntry{entry(100.00, 0), entry(0, 100.01)},
		},
		{
			name:    "imbalanced",
			entries: []domain.JournalEntry{entry(100, 0), entry(0, 99.50)},
			wantErr: true,
		},
		{
			name:    "single entry",
			entries: []domain.JournalEntry{entry(100, 0)},
			wantErr: true,
		},
		{
			name:    "no entries",
			entries: nil,
			wantErr: true,
		},
		{
			name:    "both sides set on one entry",
			entries: []domain.JournalEntry{entry(100, 100), entry(0, 0)},
			wantErr: true,
		},
		{
			name:    "negative amount",
			entries: []domain.JournalEntry{entry(-100, 0), entry(0, -100)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateEntriesBalance(tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignedAmount(t *testing.T) {
	debit := entry(100, 0)
	credit := entry(0, 100)

	got, err := accounting.SignedAmount(debit, domain.Asset)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)))

	got, err = accounting.SignedAmount(credit, domain.Asset)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(-100)))

	got, err = accounting.SignedAmount(debit, domain.Income)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(-100)))

	got, err = accounting.SignedAmount(credit, domain.Liability)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)))

	_, err = accounting.SignedAmount(debit, domain.AccountGroup("NONSENSE"))
	assert.Error(t, err)
}

func TestColumnFor(t *testing.T) {
	debitCol, creditCol := accounting.ColumnFor(domain.Asset, decimal.NewFromInt(500))
	assert.True(t, debitCol.Equal(decimal.NewFromInt(500)))
	assert.True(t, creditCol.IsZero())

	// Negative balance flips the column.
	debitCol, creditCol = accounting.ColumnFor(domain.Asset, decimal.NewFromInt(-500))
	assert.True(t, debitCol.IsZero())
	assert.True(t, creditCol.Equal(decimal.NewFromInt(500)))

	debitCol, creditCol = accounting.ColumnFor(domain.Income, decimal.NewFromInt(1000))
	assert.True(t, debitCol.IsZero())
	assert.True(t, creditCol.Equal(decimal.NewFromInt(1000)))

	debitCol, creditCol = accounting.ColumnFor(domain.Income, decimal.NewFromInt(-300))
	assert.True(t, debitCol.Equal(decimal.NewFromInt(300)))
	assert.True(t, creditCol.IsZero())
}
