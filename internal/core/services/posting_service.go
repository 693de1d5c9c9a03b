package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
)

// postingService turns business events into balanced journal postings.
type postingService struct {
	BaseService
	postingRepo portsrepo.PostingRepositoryWithTx
	partyRepo   portsrepo.PartyRepositoryFacade
	itemRepo    portsrepo.ItemRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	audit       portssvc.AuditSink
}

// NewPostingService creates a new PostingService.
func NewPostingService(postingRepo portsrepo.PostingRepositoryWithTx, partyRepo portsrepo.PartyRepositoryFacade, itemRepo portsrepo.ItemRepositoryFacade, accountSvc portssvc.AccountSvcFacade, audit portssvc.AuditSink) portssvc.PostingSvcFacade {
	return &postingService{
		postingRepo: postingRepo,
		partyRepo:   partyRepo,
		itemRepo:    itemRepo,
		accountSvc:  accountSvc,
		audit:       audit,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// Post validates the event, derives its double entries and stock deltas from
// the rule for its transaction type, and commits everything atomically.
func (s *postingService) Post(ctx context.Context, businessID string, req dto.PostTransactionRequest, actor string) (*domain.PostedTransaction, error) {
	ev, err := s.buildEvent(businessID, req, actor)
	if err != nil {
		return nil, err
	}

	// Non-financial documents persist the envelope only: no entries, no
	// stock movements, no aggregate changes.
	if !ev.Transaction.Type.Financial() {
		if err := s.postingRepo.SavePosting(ctx, ev.Transaction, nil, nil, nil, nil); err != nil {
			s.LogError(ctx, err, "failed to save document", "transactionID", ev.Transaction.TransactionID)
			return nil, err
		}
		s.recordAudit(ctx, actor, "POST", ev.Transaction.TransactionID, nil, ev.Transaction)
		return &domain.PostedTransaction{Transaction: ev.Transaction}, nil
	}

	party, err := s.resolveParty(ctx, businessID, ev.Transaction.PartyID)
	if err != nil {
		return nil, err
	}
	var partyKind *domain.PartyKind
	if party != nil {
		partyKind = &party.Kind
	}

	rule, err := RuleFor(ev.Transaction.Type)
	if err != nil {
		return nil, err
	}
	intents, stockIntents, err := rule(*ev, partyKind)
	if err != nil {
		return nil, err
	}

	entries, err := s.resolveEntries(ctx, *ev, intents, party, actor)
	if err != nil {
		return nil, err
	}
	if err := accounting.ValidateEntriesBalance(entries); err != nil {
		s.LogError(ctx, err, "derived entries do not balance", "transactionID", ev.Transaction.TransactionID, "type", string(ev.Transaction.Type))
		return nil, apperrors.NewAppError(500, "derived entries do not balance", fmt.Errorf("%w: %w", apperrors.ErrImbalance, err))
	}

	movements, stockDeltas, err := s.resolveMovements(ctx, *ev, stockIntents, actor)
	if err != nil {
		return nil, err
	}
	duesDeltas := duesDeltasFor(entries, party)

	if err := s.postingRepo.SavePosting(ctx, ev.Transaction, entries, movements, stockDeltas, duesDeltas); err != nil {
		s.LogError(ctx, err, "failed to save posting", "transactionID", ev.Transaction.TransactionID)
		return nil, err
	}

	s.LogInfo(ctx, "transaction posted",
		"transactionID", ev.Transaction.TransactionID,
		"type", string(ev.Transaction.Type),
		"total", ev.Transaction.Total.String(),
		"entries", len(entries),
		"movements", len(movements))
	s.recordAudit(ctx, actor, "POST", ev.Transaction.TransactionID, nil, ev.Transaction)

	return &domain.PostedTransaction{Transaction: ev.Transaction, Entries: entries, StockMovements: movements}, nil
}

// buildEvent normalizes the request into a domain event and validates shape
// invariants that do not need storage.
func (s *postingService) buildEvent(businessID string, req dto.PostTransactionRequest, actor string) (*domain.PostingEvent, error) {
	txnType := domain.TransactionType(req.Type)
	if txnType == domain.Reversal {
		return nil, apperrors.NewAppError(400, "reversals are created through the reversal endpoint", apperrors.ErrValidation)
	}
	if _, financialRule := entryRules[txnType]; !financialRule && txnType.Financial() {
		return nil, apperrors.NewAppError(400, fmt.Sprintf("unknown transaction type %s", req.Type), apperrors.ErrValidation)
	}
	if req.Total.IsNegative() || req.Subtotal.IsNegative() || req.TaxAmount.IsNegative() || req.AmountPaid.IsNegative() {
		return nil, apperrors.NewAppError(400, "amounts must not be negative", apperrors.ErrValidation)
	}
	// Payments and advances carry a bare total; only goods-backed types
	// declare a subtotal/tax breakdown worth checking.
	if txnType.Financial() && txnType != domain.OpeningBalance && !txnType.MoneyTransfer() {
		if !accounting.WithinTolerance(req.Subtotal.Add(req.TaxAmount), req.Total, accounting.MoneyTolerance) {
			return nil, apperrors.NewAppError(400, "subtotal plus tax must equal total", apperrors.ErrValidation)
		}
	}

	taxFromComponents := decimal.Zero
	for _, tc := range req.TaxComponents {
		if tc.Amount.IsNegative() {
			return nil, apperrors.NewAppError(400, "tax component amounts must not be negative", apperrors.ErrValidation)
		}
		taxFromComponents = taxFromComponents.Add(tc.Amount)
	}
	if len(req.TaxComponents) > 0 && !accounting.WithinTolerance(taxFromComponents, req.TaxAmount, accounting.MoneyTolerance) {
		return nil, apperrors.NewAppError(400, "tax components must sum to the tax amount", apperrors.ErrValidation)
	}
	// No components named: the whole tax amount posts to a single ledger.
	taxComponents := make([]domain.TaxComponent, 0, len(req.TaxComponents))
	for _, tc := range req.TaxComponents {
		taxComponents = append(taxComponents, domain.TaxComponent{Name: tc.Name, Amount: tc.Amount})
	}
	if len(taxComponents) == 0 && req.TaxAmount.IsPositive() {
		taxComponents = append(taxComponents, domain.TaxComponent{Amount: req.TaxAmount})
	}

	lineItems := make([]domain.LineItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		if !li.Quantity.IsPositive() {
			return nil, apperrors.NewAppError(400, fmt.Sprintf("line item %s quantity must be positive", li.ItemID), apperrors.ErrValidation)
		}
		lineItems = append(lineItems, domain.LineItem{
			ItemID:   li.ItemID,
			Quantity: li.Quantity,
			UnitRate: li.UnitRate,
			TaxRate:  li.TaxRate,
		})
	}

	status := domain.PaymentStatus(req.PaymentStatus)
	if status == "" {
		status = domain.Paid
	}
	mode := domain.PaymentMode(req.PaymentMode)
	if mode == "" {
		mode = domain.ModeCash
	}

	now := time.Now()
	return &domain.PostingEvent{
		Transaction: domain.Transaction{
			TransactionID: uuid.NewString(),
			BusinessID:    businessID,
			Type:          txnType,
			Date:          req.Date,
			PartyID:       req.PartyID,
			Subtotal:      req.Subtotal,
			TaxAmount:     req.TaxAmount,
			Total:         req.Total,
			AmountPaid:    req.AmountPaid,
			PaymentMode:   mode,
			PaymentStatus: status,
			Narration:     req.Narration,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor,
				LastUpdatedAt: now,
				LastUpdatedBy: actor,
			},
		},
		LineItems:     lineItems,
		TaxComponents: taxComponents,
	}, nil
}

func (s *postingService) resolveParty(ctx context.Context, businessID string, partyID *string) (*domain.Party, error) {
	if partyID == nil {
		return nil, nil
	}
	party, err := s.partyRepo.FindPartyByID(ctx, *partyID)
	if err != nil {
		return nil, err
	}
	if party.BusinessID != businessID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("party %s not found", *partyID))
	}
	return party, nil
}

// resolveEntries maps intents to concrete journal entries, creating role
// accounts on first use so a posting never fails on a missing ledger.
func (s *postingService) resolveEntries(ctx context.Context, ev domain.PostingEvent, intents []EntryIntent, party *domain.Party, actor string) ([]domain.JournalEntry, error) {
	now := time.Now()
	entries := make([]domain.JournalEntry, 0, len(intents))
	for _, in := range intents {
		accountID, err := s.accountIDForRole(ctx, ev.Transaction.BusinessID, in, party, actor)
		if err != nil {
			return nil, err
		}
		entry := domain.JournalEntry{
			EntryID:       uuid.NewString(),
			TransactionID: ev.Transaction.TransactionID,
			BusinessID:    ev.Transaction.BusinessID,
			AccountID:     accountID,
			Date:          ev.Transaction.Date,
			Narration:     ev.Transaction.Narration,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor,
				LastUpdatedAt: now,
				LastUpdatedBy: actor,
			},
		}
		if in.Side == DebitSide {
			entry.Debit = in.Amount
			entry.Credit = decimal.Zero
		} else {
			entry.Debit = decimal.Zero
			entry.Credit = in.Amount
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *postingService) accountIDForRole(ctx context.Context, businessID string, in EntryIntent, party *domain.Party, actor string) (string, error) {
	if in.Role == RoleParty {
		if party == nil {
			return "", apperrors.NewAppError(400, "transaction references a party ledger but names no party", apperrors.ErrValidation)
		}
		return party.AccountID, nil
	}
	accType, name := roleAccount(in)
	account, err := s.accountSvc.GetOrCreateAccount(ctx, businessID, accType, name, actor)
	if err != nil {
		return "", err
	}
	return account.AccountID, nil
}

// roleAccount names the well-known ledger an intent role resolves to.
func roleAccount(in EntryIntent) (domain.AccountType, string) {
	switch in.Role {
	case RoleCash:
		return domain.AccountCash, "Cash"
	case RoleBank:
		return domain.AccountBank, "Bank"
	case RoleSales:
		return domain.AccountSales, "Sales"
	case RoleSalesReturn:
		return domain.AccountSalesReturn, "Sales Returns"
	case RolePurchase:
		return domain.AccountPurchase, "Purchases"
	case RolePurchaseReturn:
		return domain.AccountPurchaseReturn, "Purchase Returns"
	case RoleStock:
		return domain.AccountStock, "Stock In Hand"
	case RoleOpeningEquity:
		return domain.AccountOpeningEquity, "Opening Balance Equity"
	case RoleTaxOutput:
		if in.TaxName != "" {
			return domain.AccountTaxOutput, in.TaxName + " Output"
		}
		return domain.AccountTaxOutput, "Output Tax"
	case RoleTaxInput:
		if in.TaxName != "" {
			return domain.AccountTaxInput, in.TaxName + " Input"
		}
		return domain.AccountTaxInput, "Input Tax"
	}
	return domain.AccountExpenseGeneral, "General Expenses"
}

// resolveMovements builds the stock movements and the per-item aggregate
// increments. Overselling is allowed; negative projected stock only logs a
// warning since the reconciliation pass catches real drift.
func (s *postingService) resolveMovements(ctx context.Context, ev domain.PostingEvent, intents []StockIntent, actor string) ([]domain.StockMovement, map[string]decimal.Decimal, error) {
	if len(intents) == 0 {
		return nil, nil, nil
	}
	itemIDs := make([]string, 0, len(intents))
	for _, in := range intents {
		itemIDs = append(itemIDs, in.ItemID)
	}
	items, err := s.itemRepo.FindItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	movements := make([]domain.StockMovement, 0, len(intents))
	deltas := make(map[string]decimal.Decimal, len(intents))
	for _, in := range intents {
		item, ok := items[in.ItemID]
		if !ok || item.BusinessID != ev.Transaction.BusinessID {
			return nil, nil, apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", in.ItemID))
		}
		if projected := item.StockQty.Add(in.Quantity); projected.IsNegative() {
			s.LogWarn(ctx, "posting drives item stock negative",
				"itemID", in.ItemID,
				"projectedQty", projected.String(),
				"transactionID", ev.Transaction.TransactionID)
		}
		movements = append(movements, domain.StockMovement{
			MovementID:    uuid.NewString(),
			BusinessID:    ev.Transaction.BusinessID,
			ItemID:        in.ItemID,
			Quantity:      in.Quantity,
			Direction:     in.Direction,
			Reason:        in.Reason,
			TransactionID: ev.Transaction.TransactionID,
			Date:          ev.Transaction.Date,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor,
				LastUpdatedAt: now,
				LastUpdatedBy: actor,
			},
		})
		deltas[in.ItemID] = deltas[in.ItemID].Add(in.Quantity)
	}
	return movements, deltas, nil
}

// duesDeltasFor derives the cached-dues increment from the entries landing on
// the party's ledger. Customer dues grow with debits, supplier dues with
// credits.
func duesDeltasFor(entries []domain.JournalEntry, party *domain.Party) map[string]decimal.Decimal {
	if party == nil {
		return nil
	}
	net := decimal.Zero
	for _, e := range entries {
		if e.AccountID == party.AccountID {
			net = net.Add(e.Debit).Sub(e.Credit)
		}
	}
	if net.IsZero() {
		return nil
	}
	if party.Kind == domain.Supplier {
		net = net.Neg()
	}
	return map[string]decimal.Decimal{party.PartyID: net}
}

func (s *postingService) recordAudit(ctx context.Context, actor, action, entityID string, before, after any) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, domain.AuditRecord{
		Actor:      actor,
		Action:     action,
		EntityType: "TRANSACTION",
		EntityID:   entityID,
		Before:     before,
		After:      after,
		At:         time.Now(),
	})
}

// GetTransaction retrieves a transaction with its entries and movements.
func (s *postingService) GetTransaction(ctx context.Context, businessID string, transactionID string) (*domain.PostedTransaction, error) {
	txn, err := s.postingRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.BusinessID != businessID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
	}
	entries, err := s.postingRepo.FindEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	movements, err := s.postingRepo.FindMovementsByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return &domain.PostedTransaction{Transaction: *txn, Entries: entries, StockMovements: movements}, nil
}

// ListTransactions retrieves a paginated list of transactions, newest first.
func (s *postingService) ListTransactions(ctx context.Context, businessID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	txns, nextToken, err := s.postingRepo.ListTransactions(ctx, businessID, limit, params.NextToken, params.IncludeReversals)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		out[i] = dto.ToTransactionResponse(&txns[i])
	}
	return &dto.ListTransactionsResponse{Transactions: out, NextToken: nextToken}, nil
}

// ListAccountEntries retrieves the paginated statement of one account, newest
// first. The account lookup doubles as the business ownership check.
func (s *postingService) ListAccountEntries(ctx context.Context, businessID string, accountID string, params dto.ListAccountEntriesParams) (*dto.ListAccountEntriesResponse, error) {
	acc, err := s.accountSvc.GetAccountByID(ctx, businessID, accountID)
	if err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	entries, nextToken, err := s.postingRepo.ListEntriesByAccountID(ctx, businessID, acc.AccountID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListAccountEntriesResponse{
		AccountID: acc.AccountID,
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
