package dto

import (
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// ReverseTransactionRequest asks for a posted transaction to be reversed.
type ReverseTransactionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ReversalVoucherResponse is the audit record of a reversal.
type ReversalVoucherResponse struct {
	VoucherID             string    `json:"voucherID"`
	OriginalTransactionID string    `json:"originalTransactionID"`
	ReversalTransactionID string    `json:"reversalTransactionID"`
	Reason                string    `json:"reason"`
	Actor                 string    `json:"actor"`
	CreatedAt             time.Time `json:"createdAt"`
}

// ToReversalVoucherResponse converts a domain.ReversalVoucher.
func ToReversalVoucherResponse(v *domain.ReversalVoucher) ReversalVoucherResponse {
	return ReversalVoucherResponse{
		VoucherID:             v.VoucherID,
		OriginalTransactionID: v.OriginalTransactionID,
		ReversalTransactionID: v.ReversalTransactionID,
		Reason:                v.Reason,
		Actor:                 v.Actor,
		CreatedAt:             v.CreatedAt,
	}
}
