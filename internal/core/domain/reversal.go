package domain

import "time"

// ReversalVoucher is the audit record proving why a reversal happened,
// separate from the mechanical reversing entries themselves.
type ReversalVoucher struct {
	VoucherID             string    `json:"voucherID"`
	BusinessID            string    `json:"businessID"`
	OriginalTransactionID string    `json:"originalTransactionID"`
	ReversalTransactionID string    `json:"reversalTransactionID"`
	Reason                string    `json:"reason"`
	Actor                 string    `json:"actor"`
	CreatedAt             time.Time `json:"createdAt"`
}
