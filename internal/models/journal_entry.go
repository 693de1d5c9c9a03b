package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the journal_entries table row. The table is append-only;
// rows are never updated in place.
type JournalEntry struct {
	EntryID         string          `db:"entry_id"`
	TransactionID   string          `db:"transaction_id"`
	BusinessID      string          `db:"business_id"`
	AccountID       string          `db:"account_id"`
	EntryDate       time.Time       `db:"entry_date"`
	Debit           decimal.Decimal `db:"debit"`
	Credit          decimal.Decimal `db:"credit"`
	Narration       string          `db:"narration"`
	IsReversal      bool            `db:"is_reversal"`
	ReversesEntryID *string         `db:"reverses_entry_id"`
	AuditFields
}
