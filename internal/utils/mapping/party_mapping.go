package mapping

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/models"
)

// ToModelParty converts a domain.Party for DB storage.
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:     d.PartyID,
		BusinessID:  d.BusinessID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		Phone:       d.Phone,
		AccountID:   d.AccountID,
		TotalDues:   d.TotalDues,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a parties row to the domain type.
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:     m.PartyID,
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		Kind:        domain.PartyKind(m.Kind),
		Phone:       m.Phone,
		AccountID:   m.AccountID,
		TotalDues:   m.TotalDues,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelItem converts a domain.Item for DB storage.
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:       d.ItemID,
		BusinessID:   d.BusinessID,
		Name:         d.Name,
		Unit:         d.Unit,
		PurchaseRate: d.PurchaseRate,
		SaleRate:     d.SaleRate,
		StockQty:     d.StockQty,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts an items row to the domain type.
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:       m.ItemID,
		BusinessID:   m.BusinessID,
		Name:         m.Name,
		Unit:         m.Unit,
		PurchaseRate: m.PurchaseRate,
		SaleRate:     m.SaleRate,
		StockQty:     m.StockQty,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelReversalVoucher converts a domain.ReversalVoucher for DB storage.
func ToModelReversalVoucher(d domain.ReversalVoucher) models.ReversalVoucher {
	return models.ReversalVoucher{
		VoucherID:             d.VoucherID,
		BusinessID:            d.BusinessID,
		OriginalTransactionID: d.OriginalTransactionID,
		ReversalTransactionID: d.ReversalTransactionID,
		Reason:                d.Reason,
		Actor:                 d.Actor,
		CreatedAt:             d.CreatedAt,
	}
}

// ToDomainReversalVoucher converts a reversal_vouchers row to the domain type.
func ToDomainReversalVoucher(m models.ReversalVoucher) domain.ReversalVoucher {
	return domain.ReversalVoucher{
		VoucherID:             m.VoucherID,
		BusinessID:            m.BusinessID,
		OriginalTransactionID: m.OriginalTransactionID,
		ReversalTransactionID: m.ReversalTransactionID,
		Reason:                m.Reason,
		Actor:                 m.Actor,
		CreatedAt:             m.CreatedAt,
	}
}
