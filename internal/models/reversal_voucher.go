package models

import "time"

// ReversalVoucher is the reversal_vouchers table row.
type ReversalVoucher struct {
	VoucherID             string    `db:"voucher_id"`
	BusinessID            string    `db:"business_id"`
	OriginalTransactionID string    `db:"original_transaction_id"`
	ReversalTransactionID string    `db:"reversal_transaction_id"`
	Reason                string    `db:"reason"`
	Actor                 string    `db:"actor"`
	CreatedAt             time.Time `db:"created_at"`
}
