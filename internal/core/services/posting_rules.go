package services

import (
	"fmt"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Side is the column an intent posts to.
type Side string

const (
	DebitSide  Side = "DEBIT"
	CreditSide Side = "CREDIT"
)

// AccountRole is a symbolic reference to a ledger account. Roles are resolved
// to concrete account IDs at posting time, creating the account on first use.
type AccountRole string

const (
	RoleCash           AccountRole = "CASH"
	RoleBank           AccountRole = "BANK"
	RoleParty          AccountRole = "PARTY"
	RoleSales          AccountRole = "SALES"
	RoleSalesReturn    AccountRole = "SALES_RETURN"
	RolePurchase       AccountRole = "PURCHASE"
	RolePurchaseReturn AccountRole = "PURCHASE_RETURN"
	RoleTaxOutput      AccountRole = "TAX_OUTPUT"
	RoleTaxInput       AccountRole = "TAX_INPUT"
	RoleStock          AccountRole = "STOCK"
	RoleOpeningEquity  AccountRole = "OPENING_EQUITY"
)

// EntryIntent is one not-yet-resolved journal line: which account role, which
// side, how much. TaxName carries the component name for tax roles so each
// component (CGST, SGST, IGST) lands in its own ledger.
type EntryIntent struct {
	Role    AccountRole
	TaxName string
	Side    Side
	Amount  decimal.Decimal
}

// StockIntent is one not-yet-persisted stock delta derived from a line item.
type StockIntent struct {
	ItemID    string
	Quantity  decimal.Decimal
	Direction domain.StockDirection
	Reason    domain.StockReason
}

// EntryRule derives the journal and stock intents for one transaction type.
// partyKind is nil when the event names no party.
type EntryRule func(ev domain.PostingEvent, partyKind *domain.PartyKind) ([]EntryIntent, []StockIntent, error)

var entryRules = map[domain.TransactionType]EntryRule{
	domain.Sale:           saleRule,
	domain.Purchase:       purchaseRule,
	domain.SaleReturn:     saleReturnRule,
	domain.PurchaseReturn: purchaseReturnRule,
	domain.PaymentIn:      paymentInRule,
	domain.PaymentOut:     paymentOutRule,
	domain.Advance:        advanceRule,
	domain.OpeningBalance: openingBalanceRule,
}

// RuleFor returns the entry rule for a transaction type, or an error when the
// type has no posting semantics (non-financial documents, reversals).
func RuleFor(txnType domain.TransactionType) (EntryRule, error) {
	rule, ok := entryRules[txnType]
	if !ok {
		return nil, apperrors.NewAppError(400, fmt.Sprintf("transaction type %s cannot be posted directly", txnType), apperrors.ErrValidation)
	}
	return rule, nil
}

func saleRule(ev domain.PostingEvent, _ *domain.PartyKind) ([]EntryIntent, []StockIntent, error) {
	intents := []EntryIntent{{Role: RoleSales, Side: CreditSide, Amount: ev.Transaction.Subtotal}}
	intents = append(intents, taxIntents(ev, RoleTaxOutput, CreditSide)...)
	settle, err := settlementIntents(ev.Transaction, DebitSide)
	if err != nil {
		return nil, nil, err
	}
	return append(intents, settle...), stockIntents(ev, domain.StockOut, domain.ReasonSale), nil
}

func purchaseRule(ev domain.PostingEvent, _ *domain.PartyKind) ([]EntryIntent, []StockIntent, error) {
	intents := []EntryIntent{{Role: RolePurchase, Side: DebitSide, Amount: ev.Transaction.Subtotal}}
	intents = append(intents, taxIntents(ev, RoleTaxInput, DebitSide)...)
	settle, err := settlementIntents(ev.Transaction, CreditSide)
	if err != nil {
		return nil, nil, err
	}
	return append(intents, settle...), stockIntents(ev, domain.StockIn, domain.ReasonPurchase), nil
}

func saleReturnRule(ev domain.PostingEvent, _ *domain.PartyKind) ([]EntryIntent, []StockIntent, error) {
	intents := []EntryIntent{{Role: RoleSalesReturn, Side: DebitSide, Amount: ev.Transaction.Subtotal}}
	intents = append(intents, taxIntents(ev, RoleTaxOutput, DebitSide)...)
	settle, err := settlementIntents(ev.Transaction, CreditSide)
	if err != nil {
		return nil, nil, err
	}
	return append(intents, settle...), stockIntents(ev, domain.StockIn, domain.ReasonReturnIn), nil
}

func purchaseReturnRule(ev domain.PostingEvent, _ *domain.PartyKind) ([]EntryIntent, []StockIntent, error) {
	intents := []EntryIntent{{Role: RolePurchaseReturn, Side: CreditSide, Amount: ev.Transaction.Subtotal}}
	intents = append(intents, taxIntents(ev, RoleTaxInput, CreditSide)...)
	settle, err := settlementIntents(ev.Transaction, DebitSide)
	if err != nil {
		return nil, nil, err
	}
	return append(intents, settle...), stockIntents(ev, domain.StockOut, domain.ReasonReturnOut), nil
}

func paymentInRule(ev domain.PostingEvent, _ *domain.PartyKind) ([]EntryIntent, []StockIntent, error) {
	if ev.Transaction.PartyID == nil {
		return nil, nil, apperrors.NewAppError(400, "payment requires a party", apperrors.ErrValidation)
	}
	return []EntryIntent{
		{Role: moneyRole(ev.Transaction.PaymentMode), Side: DebitSide, Amount: ev.Transaction.Total},
		{Role: RoleParty, Side: CreditSide, Amount: ev.Transaction.Total},
	}, nil, nil
}

func paymentOutRule(ev domain.PostingEvent, _ *domain.PartyKind) ([]EntryIntent, []StockIntent, error) {
	if ev.Transaction.PartyID == nil {
		return nil, nil, apperrors.NewAppError(400, "payment requires a party", apperrors.ErrValidation)
	}
	return []EntryIntent{
		{Role: RoleParty, Side: DebitSide, Amount: ev.Transaction.Total},
		{Role: moneyRole(ev.Transaction.PaymentMode), Side: CreditSide, Amount: ev.Transaction.Total},
	}, nil, nil
}

// advanceRule routes by party kind: money received from a customer before a
// sale credits the customer ledger into negative dues; money paid to a
// supplier before a purchase debits the supplier ledger.
func advanceRule(ev domain.PostingEvent, partyKind *domain.PartyKind) ([]EntryIntent, []StockIntent, error) {
	if ev.Transaction.PartyID == nil || partyKind == nil {
		return nil, nil, apperrors.NewAppError(400, "advance requires a party", apperrors.ErrValidation)
	}
	if *partyKind == domain.Supplier {
		return paymentOutRule(ev, partyKind)
	}
	return paymentInRule(ev, partyKind)
}

// openingBalanceRule establishes opening positions against opening equity:
// valued line items seed the stock ledger, a party total seeds that party's
// opening dues.
func openingBalanceRule(ev domain.PostingEvent, partyKind *domain.PartyKind) ([]EntryIntent, []StockIntent, error) {
	var intents []EntryIntent
	var stocks []StockIntent
	if len(ev.LineItems) > 0 {
		value := decimal.Zero
		for _, li := range ev.LineItems {
			value = value.Add(li.Value())
		}
		intents = append(intents,
			EntryIntent{Role: RoleStock, Side: DebitSide, Amount: value},
			EntryIntent{Role: RoleOpeningEquity, Side: CreditSide, Amount: value},
		)
		stocks = stockIntents(ev, domain.StockIn, domain.ReasonOpeningStock)
	}
	if ev.Transaction.PartyID != nil {
		if partyKind == nil {
			return nil, nil, apperrors.NewAppError(400, "unknown party for opening balance", apperrors.ErrValidation)
		}
		partySide, equitySide := DebitSide, CreditSide
		if *partyKind == domain.Supplier {
			partySide, equitySide = CreditSide, DebitSide
		}
		intents = append(intents,
			EntryIntent{Role: RoleParty, Side: partySide, Amount: ev.Transaction.Total},
			EntryIntent{Role: RoleOpeningEquity, Side: equitySide, Amount: ev.Transaction.Total},
		)
	}
	if len(intents) == 0 {
		return nil, nil, apperrors.NewAppError(400, "opening balance requires line items or a party", apperrors.ErrValidation)
	}
	return intents, stocks, nil
}

// settlementIntents produces the money-side legs of a trading transaction.
// moneySide is the side cash/bank and receivable legs post to. A partial
// payment splits into a cash/bank leg and a party leg so the party ledger
// carries exactly the outstanding amount.
func settlementIntents(t domain.Transaction, moneySide Side) ([]EntryIntent, error) {
	switch t.PaymentStatus {
	case domain.Paid:
		return []EntryIntent{{Role: moneyRole(t.PaymentMode), Side: moneySide, Amount: t.Total}}, nil
	case domain.Unpaid:
		if t.PartyID == nil {
			return nil, apperrors.NewAppError(400, "credit transaction requires a party", apperrors.ErrValidation)
		}
		return []EntryIntent{{Role: RoleParty, Side: moneySide, Amount: t.Total}}, nil
	case domain.Partial:
		if t.PartyID == nil {
			return nil, apperrors.NewAppError(400, "partially paid transaction requires a party", apperrors.ErrValidation)
		}
		if t.AmountPaid.LessThanOrEqual(decimal.Zero) || t.AmountPaid.GreaterThanOrEqual(t.Total) {
			return nil, apperrors.NewAppError(400, "partial payment must be between zero and total", apperrors.ErrValidation)
		}
		return []EntryIntent{
			{Role: moneyRole(t.PaymentMode), Side: moneySide, Amount: t.AmountPaid},
			{Role: RoleParty, Side: moneySide, Amount: t.Total.Sub(t.AmountPaid)},
		}, nil
	}
	return nil, apperrors.NewAppError(400, fmt.Sprintf("unsupported payment status %s", t.PaymentStatus), apperrors.ErrValidation)
}

func moneyRole(mode domain.PaymentMode) AccountRole {
	if mode.SettlesToBank() {
		return RoleBank
	}
	return RoleCash
}

func taxIntents(ev domain.PostingEvent, role AccountRole, side Side) []EntryIntent {
	intents := make([]EntryIntent, 0, len(ev.TaxComponents))
	for _, tc := range ev.TaxComponents {
		if tc.Amount.IsZero() {
			continue
		}
		intents = append(intents, EntryIntent{Role: role, TaxName: tc.Name, Side: side, Amount: tc.Amount})
	}
	return intents
}

func stockIntents(ev domain.PostingEvent, dir domain.StockDirection, reason domain.StockReason) []StockIntent {
	out := make([]StockIntent, 0, len(ev.LineItems))
	for _, li := range ev.LineItems {
		qty := li.Quantity
		if dir == domain.StockOut {
			qty = qty.Neg()
		}
		out = append(out, StockIntent{ItemID: li.ItemID, Quantity: qty, Direction: dir, Reason: reason})
	}
	return out
}
