package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the business event a transaction records.
type TransactionType string

const (
	Sale           TransactionType = "SALE"
	Purchase       TransactionType = "PURCHASE"
	SaleReturn     TransactionType = "SALE_RETURN"
	PurchaseReturn TransactionType = "PURCHASE_RETURN"
	PaymentIn      TransactionType = "PAYMENT_IN"
	PaymentOut     TransactionType = "PAYMENT_OUT"
	OpeningBalance TransactionType = "OPENING_BALANCE"
	Reversal       TransactionType = "REVERSAL"
	Advance        TransactionType = "ADVANCE"

	// Non-financial document types. Accepted at intake but generate no
	// journal entries and no stock movements.
	Quotation    TransactionType = "QUOTATION"
	DeliveryNote TransactionType = "DELIVERY_NOTE"
)

// Financial reports whether a transaction type produces journal entries.
func (t TransactionType) Financial() bool {
	switch t {
	case Quotation, DeliveryNote:
		return false
	}
	return true
}

// MoneyTransfer reports whether the type moves money only, with no
// subtotal/tax breakdown behind the total.
func (t TransactionType) MoneyTransfer() bool {
	switch t {
	case PaymentIn, PaymentOut, Advance:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of a transaction.
type PaymentStatus string

const (
	Paid      PaymentStatus = "PAID"
	Unpaid    PaymentStatus = "UNPAID"
	Partial   PaymentStatus = "PARTIAL"
	Cancelled PaymentStatus = "CANCELLED"
)

// PaymentMode declares how money moved. UPI and card settle into the bank
// ledger; cash settles into the cash ledger.
type PaymentMode string

const (
	ModeCash PaymentMode = "CASH"
	ModeBank PaymentMode = "BANK"
	ModeUPI  PaymentMode = "UPI"
	ModeCard PaymentMode = "CARD"
)

// SettlesToBank reports whether the mode routes value through the bank account.
func (m PaymentMode) SettlesToBank() bool {
	return m == ModeBank || m == ModeUPI || m == ModeCard
}

// Transaction is the envelope for one business event. Its journal entries
// must always balance. Edits are modeled as reverse-then-repost; a posted
// transaction is never mutated beyond its reversal linkage.
type Transaction struct {
	TransactionID           string          `json:"transactionID"`
	BusinessID              string          `json:"businessID"`
	Type                    TransactionType `json:"type"`
	Date                    time.Time       `json:"date"`
	PartyID                 *string         `json:"partyID,omitempty"`
	Subtotal                decimal.Decimal `json:"subtotal"`
	TaxAmount               decimal.Decimal `json:"taxAmount"`
	Total                   decimal.Decimal `json:"total"`
	AmountPaid              decimal.Decimal `json:"amountPaid"`
	PaymentMode             PaymentMode     `json:"paymentMode"`
	PaymentStatus           PaymentStatus   `json:"paymentStatus"`
	Narration               string          `json:"narration"`
	IsReversed              bool            `json:"isReversed"`
	ReversedByTransactionID *string         `json:"reversedByTransactionID,omitempty"`
	AuditFields
}

// Outstanding is the unsettled portion of the transaction total.
func (t Transaction) Outstanding() decimal.Decimal {
	switch t.PaymentStatus {
	case Unpaid:
		return t.Total
	case Partial:
		return t.Total.Sub(t.AmountPaid)
	}
	return decimal.Zero
}

// PostedTransaction bundles the committed transaction with everything the
// posting produced in the same atomic unit.
type PostedTransaction struct {
	Transaction    Transaction     `json:"transaction"`
	Entries        []JournalEntry  `json:"entries"`
	StockMovements []StockMovement `json:"stockMovements"`
}
