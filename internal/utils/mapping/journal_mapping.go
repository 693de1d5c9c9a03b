package mapping

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/models"
)

// ToModelJournalEntry converts a domain.JournalEntry for DB storage.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.EntryID,
		TransactionID:   d.TransactionID,
		BusinessID:      d.BusinessID,
		AccountID:       d.AccountID,
		EntryDate:       d.Date,
		Debit:           d.Debit,
		Credit:          d.Credit,
		Narration:       d.Narration,
		IsReversal:      d.IsReversal,
		ReversesEntryID: d.ReversesEntryID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a journal_entries row to the domain type.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		TransactionID:   m.TransactionID,
		BusinessID:      m.BusinessID,
		AccountID:       m.AccountID,
		Date:            m.EntryDate,
		Debit:           m.Debit,
		Credit:          m.Credit,
		Narration:       m.Narration,
		IsReversal:      m.IsReversal,
		ReversesEntryID: m.ReversesEntryID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntrySlice converts a slice of journal entry rows.
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainJournalEntry(m)
	}
	return out
}
