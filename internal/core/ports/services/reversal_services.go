package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// ReversalSvcFacade cancels posted transactions by emitting mirror entries.
type ReversalSvcFacade interface {
	// Reverse negates a posted transaction: every journal entry is mirrored
	// with debit and credit swapped, every stock movement with quantity
	// negated, and a reversal voucher links the pair. Returns
	// apperrors.ErrAlreadyReversed when the target was already reversed and
	// apperrors.ErrValidation when it cannot be reversed at all.
	Reverse(ctx context.Context, businessID string, transactionID string, reason string, actor string) (*domain.ReversalVoucher, error)

	// GetVoucher retrieves the reversal voucher for a reversed transaction.
	GetVoucher(ctx context.Context, businessID string, transactionID string) (*domain.ReversalVoucher, error)
}
