package mapping

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/models"
)

// ToModelStockMovement converts a domain.StockMovement for DB storage.
func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		MovementID:    d.MovementID,
		BusinessID:    d.BusinessID,
		ItemID:        d.ItemID,
		Quantity:      d.Quantity,
		Direction:     string(d.Direction),
		Reason:        string(d.Reason),
		TransactionID: d.TransactionID,
		MovementDate:  d.Date,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockMovement converts a stock_movements row to the domain type.
func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID:    m.MovementID,
		BusinessID:    m.BusinessID,
		ItemID:        m.ItemID,
		Quantity:      m.Quantity,
		Direction:     domain.StockDirection(m.Direction),
		Reason:        domain.StockReason(m.Reason),
		TransactionID: m.TransactionID,
		Date:          m.MovementDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStockMovementSlice converts a slice of stock movement rows.
func ToDomainStockMovementSlice(ms []models.StockMovement) []domain.StockMovement {
	out := make([]domain.StockMovement, len(ms))
	for i, m := range ms {
		out[i] = ToDomainStockMovement(m)
	}
	return out
}
