package mapping

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction for DB storage.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:           d.TransactionID,
		BusinessID:              d.BusinessID,
		TxnType:                 string(d.Type),
		TxnDate:                 d.Date,
		PartyID:                 d.PartyID,
		Subtotal:                d.Subtotal,
		TaxAmount:               d.TaxAmount,
		Total:                   d.Total,
		AmountPaid:              d.AmountPaid,
		PaymentMode:             string(d.PaymentMode),
		PaymentStatus:           string(d.PaymentStatus),
		Narration:               d.Narration,
		IsReversed:              d.IsReversed,
		ReversedByTransactionID: d.ReversedByTransactionID,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a transactions row to the domain type.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:           m.TransactionID,
		BusinessID:              m.BusinessID,
		Type:                    domain.TransactionType(m.TxnType),
		Date:                    m.TxnDate,
		PartyID:                 m.PartyID,
		Subtotal:                m.Subtotal,
		TaxAmount:               m.TaxAmount,
		Total:                   m.Total,
		AmountPaid:              m.AmountPaid,
		PaymentMode:             domain.PaymentMode(m.PaymentMode),
		PaymentStatus:           domain.PaymentStatus(m.PaymentStatus),
		Narration:               m.Narration,
		IsReversed:              m.IsReversed,
		ReversedByTransactionID: m.ReversedByTransactionID,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}
