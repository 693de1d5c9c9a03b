package accounting

import (
	"fmt"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyTolerance absorbs fixed-point rounding on currency amounts (one
// cent/paisa).
var MoneyTolerance = decimal.NewFromFloat(0.01)

// StockTolerance absorbs float rounding on quantities.
var StockTolerance = decimal.NewFromFloat(0.001)

// WithinTolerance reports whether |a-b| is inside the given tolerance.
func WithinTolerance(a, b, tolerance decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tolerance)
}

// SignedAmount applies the accounting convention to an entry: debits increase
// debit-normal (asset/expense) accounts and decrease credit-normal ones.
//
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/INCOME -> Negative (-)
// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
func SignedAmount(entry domain.JournalEntry, group domain.AccountGroup) (decimal.Decimal, error) {
	net := entry.Debit.Sub(entry.Credit)
	switch group {
	case domain.Asset, domain.Expense:
		return net, nil
	case domain.Liability, domain.Equity, domain.Income:
		return net.Neg(), nil
	}
	return decimal.Zero, fmt.Errorf("unknown account group '%s' for account ID %s", group, entry.AccountID)
}

// ValidateEntriesBalance checks the double-entry invariant for one
// transaction's entries: the sum of debits must equal the sum of credits
// within MoneyTolerance, every entry must carry a non-negative amount on
// exactly one side, and at least two entries must be present.
func ValidateEntriesBalance(entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("transaction must have at least two journal entries, got %d", len(entries))
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, e := range entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return fmt.Errorf("entry %s has a negative amount", e.EntryID)
		}
		if e.Debit.IsZero() == e.Credit.IsZero() {
			return fmt.Errorf("entry %s must have exactly one of debit/credit non-zero", e.EntryID)
		}
		debits = debits.Add(e.Debit)
		credits = credits.Add(e.Credit)
	}

	if !WithinTolerance(debits, credits, MoneyTolerance) {
		return fmt.Errorf("debits sum %s does not equal credits sum %s", debits.String(), credits.String())
	}
	return nil
}

// ColumnFor routes a signed net balance to the debit or credit column of a
// trial balance based on the account group's normal side. A negative result
// flips the column.
func ColumnFor(group domain.AccountGroup, signedBalance decimal.Decimal) (debitCol, creditCol decimal.Decimal) {
	if group.DebitNormal() {
		if signedBalance.IsNegative() {
			return decimal.Zero, signedBalance.Neg()
		}
		return signedBalance, decimal.Zero
	}
	if signedBalance.IsNegative() {
		return signedBalance.Neg(), decimal.Zero
	}
	return decimal.Zero, signedBalance
}
