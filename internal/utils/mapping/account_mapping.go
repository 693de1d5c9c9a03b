package mapping

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/models"
)

// ToModelAccount converts a domain.Account for DB storage.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:          d.AccountID,
		BusinessID:         d.BusinessID,
		Name:               d.Name,
		AccountGroup:       models.AccountGroup(d.Group),
		AccountType:        models.AccountType(d.Type),
		OpeningBalance:     d.OpeningBalance,
		OpeningBalanceDate: d.OpeningBalanceDate,
		IsSystem:           d.IsSystem,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts an accounts row to the domain type.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:          m.AccountID,
		BusinessID:         m.BusinessID,
		Name:               m.Name,
		Group:              domain.AccountGroup(m.AccountGroup),
		Type:               domain.AccountType(m.AccountType),
		OpeningBalance:     m.OpeningBalance,
		OpeningBalanceDate: m.OpeningBalanceDate,
		IsSystem:           m.IsSystem,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
