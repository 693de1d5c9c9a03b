package dto

import (
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one item line of an incoming business event.
type LineItemRequest struct {
	ItemID   string          `json:"itemID" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	UnitRate decimal.Decimal `json:"unitRate"`
	TaxRate  decimal.Decimal `json:"taxRate"`
}

// TaxComponentRequest is one named tax leg (e.g. CGST, SGST, IGST).
type TaxComponentRequest struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// PostTransactionRequest is the normalized business event accepted by the
// posting endpoint.
type PostTransactionRequest struct {
	Type          string                `json:"type" binding:"required"`
	Date          time.Time             `json:"date" binding:"required"`
	PartyID       *string               `json:"partyID"`
	LineItems     []LineItemRequest     `json:"lineItems"`
	TaxComponents []TaxComponentRequest `json:"taxComponents"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TaxAmount     decimal.Decimal       `json:"taxAmount"`
	Total         decimal.Decimal       `json:"total" binding:"required"`
	AmountPaid    decimal.Decimal       `json:"amountPaid"`
	PaymentMode   string                `json:"paymentMode"`
	PaymentStatus string                `json:"paymentStatus"`
	Narration     string                `json:"narration"`
}

// JournalEntryResponse is one debit-or-credit line in API responses.
type JournalEntryResponse struct {
	EntryID    string          `json:"entryID"`
	AccountID  string          `json:"accountID"`
	Date       time.Time       `json:"date"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Narration  string          `json:"narration"`
	IsReversal bool            `json:"isReversal"`
}

// StockMovementResponse is one stock delta in API responses.
type StockMovementResponse struct {
	MovementID string          `json:"movementID"`
	ItemID     string          `json:"itemID"`
	Quantity   decimal.Decimal `json:"quantity"`
	Direction  string          `json:"direction"`
	Reason     string          `json:"reason"`
	Date       time.Time       `json:"date"`
}

// TransactionResponse is the transaction envelope in API responses.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	Date          time.Time       `json:"date"`
	PartyID       *string         `json:"partyID,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	PaymentMode   string          `json:"paymentMode"`
	PaymentStatus string          `json:"paymentStatus"`
	Narration     string          `json:"narration"`
	IsReversed    bool            `json:"isReversed"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// PostedTransactionResponse bundles the envelope with what the posting wrote.
type PostedTransactionResponse struct {
	Transaction    TransactionResponse     `json:"transaction"`
	Entries        []JournalEntryResponse  `json:"entries"`
	StockMovements []StockMovementResponse `json:"stockMovements"`
}

// ListTransactionsParams holds parameters for listing transactions.
type ListTransactionsParams struct {
	Limit            int     `form:"limit"`
	NextToken        *string `form:"nextToken"`
	IncludeReversals bool    `form:"includeReversals"`
}

// ListTransactionsResponse is a page of transactions plus a continuation token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ListAccountEntriesParams holds parameters for an account statement listing.
type ListAccountEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListAccountEntriesResponse is a page of an account's statement.
type ListAccountEntriesResponse struct {
	AccountID string                 `json:"accountID"`
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          string(t.Type),
		Date:          t.Date,
		PartyID:       t.PartyID,
		Subtotal:      t.Subtotal,
		TaxAmount:     t.TaxAmount,
		Total:         t.Total,
		AmountPaid:    t.AmountPaid,
		PaymentMode:   string(t.PaymentMode),
		PaymentStatus: string(t.PaymentStatus),
		Narration:     t.Narration,
		IsReversed:    t.IsReversed,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
	}
}

// ToJournalEntryResponses converts journal entries to response DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = JournalEntryResponse{
			EntryID:    e.EntryID,
			AccountID:  e.AccountID,
			Date:       e.Date,
			Debit:      e.Debit,
			Credit:     e.Credit,
			Narration:  e.Narration,
			IsReversal: e.IsReversal,
		}
	}
	return out
}

// ToStockMovementResponses converts stock movements to response DTOs.
func ToStockMovementResponses(movements []domain.StockMovement) []StockMovementResponse {
	out := make([]StockMovementResponse, len(movements))
	for i, m := range movements {
		out[i] = StockMovementResponse{
			MovementID: m.MovementID,
			ItemID:     m.ItemID,
			Quantity:   m.Quantity,
			Direction:  string(m.Direction),
			Reason:     string(m.Reason),
			Date:       m.Date,
		}
	}
	return out
}

// ToPostedTransactionResponse converts a posted transaction bundle.
func ToPostedTransactionResponse(p *domain.PostedTransaction) PostedTransactionResponse {
	return PostedTransactionResponse{
		Transaction:    ToTransactionResponse(&p.Transaction),
		Entries:        ToJournalEntryResponses(p.Entries),
		StockMovements: ToStockMovementResponses(p.StockMovements),
	}
}
