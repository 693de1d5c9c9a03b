package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row.
type Transaction struct {
	TransactionID           string          `db:"transaction_id"`
	BusinessID              string          `db:"business_id"`
	TxnType                 string          `db:"txn_type"`
	TxnDate                 time.Time       `db:"txn_date"`
	PartyID                 *string         `db:"party_id"`
	Subtotal                decimal.Decimal `db:"subtotal"`
	TaxAmount               decimal.Decimal `db:"tax_amount"`
	Total                   decimal.Decimal `db:"total"`
	AmountPaid              decimal.Decimal `db:"amount_paid"`
	PaymentMode             string          `db:"payment_mode"`
	PaymentStatus           string          `db:"payment_status"`
	Narration               string          `db:"narration"`
	IsReversed              bool            `db:"is_reversed"`
	ReversedByTransactionID *string         `db:"reversed_by_transaction_id"`
	AuditFields
}
