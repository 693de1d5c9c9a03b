package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a single debit-or-credit line belonging to a balanced
// transaction. Exactly one of Debit/Credit is non-zero in well-formed data.
// Entries are immutable once written; a correction is always a new reversal
// entry, never an edit.
type JournalEntry struct {
	EntryID        string          `json:"entryID"`
	TransactionID  string          `json:"transactionID"`
	BusinessID     string          `json:"businessID"`
	AccountID      string          `json:"accountID"`
	Date           time.Time       `json:"date"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Narration      string          `json:"narration"`
	IsReversal     bool            `json:"isReversal"`
	ReversesEntryID *string        `json:"reversesEntryID,omitempty"`
	AuditFields
}

// Amount returns the magnitude of the entry regardless of side.
func (e JournalEntry) Amount() decimal.Decimal {
	if e.Debit.IsZero() {
		return e.Credit
	}
	return e.Debit
}
