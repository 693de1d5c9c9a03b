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
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
)

// reversalService cancels posted transactions with mirror entries.
type reversalService struct {
	BaseService
	postingRepo portsrepo.PostingRepositoryWithTx
	partyRepo   portsrepo.PartyRepositoryFacade
	audit       portssvc.AuditSink
}

// NewReversalService creates a new ReversalService.
func NewReversalService(postingRepo portsrepo.PostingRepositoryWithTx, partyRepo portsrepo.PartyRepositoryFacade, audit portssvc.AuditSink) portssvc.ReversalSvcFacade {
	return &reversalService{postingRepo: postingRepo, partyRepo: partyRepo, audit: audit}
}

var _ portssvc.ReversalSvcFacade = (*reversalService)(nil)

// Reverse builds the mirror image of a posted transaction: each journal entry
// with debit and credit swapped, each stock movement negated, each cached
// aggregate decremented by what the original added. The pair nets to zero on
// every account and every item while both stay visible in the journal.
func (s *reversalService) Reverse(ctx context.Context, businessID string, transactionID string, reason string, actor string) (*domain.ReversalVoucher, error) {
	original, err := s.postingRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if original.BusinessID != businessID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
	}
	if original.IsReversed {
		return nil, apperrors.NewAppError(409, fmt.Sprintf("transaction %s is already reversed", transactionID), apperrors.ErrAlreadyReversed)
	}
	if original.Type == domain.Reversal {
		return nil, apperrors.NewAppError(400, "a reversal cannot itself be reversed; repost the original instead", apperrors.ErrValidation)
	}

	entries, err := s.postingRepo.FindEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	movements, err := s.postingRepo.FindMovementsByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	// Negated totals so period sums over envelopes cancel out the pair.
	reversal := domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    businessID,
		Type:          domain.Reversal,
		Date:          now,
		PartyID:       original.PartyID,
		Subtotal:      original.Subtotal.Neg(),
		TaxAmount:     original.TaxAmount.Neg(),
		Total:         original.Total.Neg(),
		AmountPaid:    original.AmountPaid.Neg(),
		PaymentMode:   original.PaymentMode,
		PaymentStatus: domain.Cancelled,
		Narration:     fmt.Sprintf("Reversal of %s: %s", transactionID, reason),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	mirrorEntries := make([]domain.JournalEntry, len(entries))
	for i, e := range entries {
		originalEntryID := e.EntryID
		mirrorEntries[i] = domain.JournalEntry{
			EntryID:         uuid.NewString(),
			TransactionID:   reversal.TransactionID,
			BusinessID:      businessID,
			AccountID:       e.AccountID,
			Date:            now,
			Debit:           e.Credit,
			Credit:          e.Debit,
			Narration:       reversal.Narration,
			IsReversal:      true,
			ReversesEntryID: &originalEntryID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor,
				LastUpdatedAt: now,
				LastUpdatedBy: actor,
			},
		}
	}
	if len(mirrorEntries) > 0 {
		if err := accounting.ValidateEntriesBalance(mirrorEntries); err != nil {
			s.LogError(ctx, err, "mirror entries do not balance", "transactionID", transactionID)
			return nil, apperrors.NewAppError(500, "mirror entries do not balance", fmt.Errorf("%w: %w", apperrors.ErrImbalance, err))
		}
	}

	mirrorMovements := make([]domain.StockMovement, len(movements))
	stockDeltas := make(map[string]decimal.Decimal, len(movements))
	for i, m := range movements {
		dir := domain.StockIn
		if m.Quantity.IsPositive() {
			dir = domain.StockOut
		}
		mirrorMovements[i] = domain.StockMovement{
			MovementID:    uuid.NewString(),
			BusinessID:    businessID,
			ItemID:        m.ItemID,
			Quantity:      m.Quantity.Neg(),
			Direction:     dir,
			Reason:        domain.ReasonReversal,
			TransactionID: reversal.TransactionID,
			Date:          now,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor,
				LastUpdatedAt: now,
				LastUpdatedBy: actor,
			},
		}
		stockDeltas[m.ItemID] = stockDeltas[m.ItemID].Sub(m.Quantity)
	}

	duesDeltas, err := s.duesDeltasForReversal(ctx, businessID, original, entries)
	if err != nil {
		return nil, err
	}

	voucher := domain.ReversalVoucher{
		VoucherID:             uuid.NewString(),
		BusinessID:            businessID,
		OriginalTransactionID: transactionID,
		ReversalTransactionID: reversal.TransactionID,
		Reason:                reason,
		Actor:                 actor,
		CreatedAt:             now,
	}

	if err := s.postingRepo.SaveReversal(ctx, reversal, mirrorEntries, mirrorMovements, stockDeltas, duesDeltas, voucher); err != nil {
		s.LogError(ctx, err, "failed to save reversal", "transactionID", transactionID)
		return nil, err
	}

	s.LogInfo(ctx, "transaction reversed",
		"transactionID", transactionID,
		"reversalTransactionID", reversal.TransactionID,
		"reason", reason)
	if s.audit != nil {
		s.audit.Record(ctx, domain.AuditRecord{
			Actor:      actor,
			Action:     "REVERSE",
			EntityType: "TRANSACTION",
			EntityID:   transactionID,
			Before:     original,
			After:      voucher,
			At:         now,
		})
	}
	return &voucher, nil
}

// duesDeltasForReversal undoes the original's effect on the party's cached
// dues: the mirror swaps debit and credit, so the increment is the negation
// of what the original posting applied.
func (s *reversalService) duesDeltasForReversal(ctx context.Context, businessID string, original *domain.Transaction, entries []domain.JournalEntry) (map[string]decimal.Decimal, error) {
	if original.PartyID == nil {
		return nil, nil
	}
	party, err := s.partyRepo.FindPartyByID(ctx, *original.PartyID)
	if err != nil {
		return nil, err
	}
	if party.BusinessID != businessID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("party %s not found", *original.PartyID))
	}
	deltas := duesDeltasFor(entries, party)
	if deltas == nil {
		return nil, nil
	}
	for k, v := range deltas {
		deltas[k] = v.Neg()
	}
	return deltas, nil
}

// GetVoucher retrieves the reversal voucher for a reversed transaction.
func (s *reversalService) GetVoucher(ctx context.Context, businessID string, transactionID string) (*domain.ReversalVoucher, error) {
	voucher, err := s.postingRepo.FindReversalVoucher(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if voucher.BusinessID != businessID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no reversal voucher for transaction %s", transactionID))
	}
	return voucher, nil
}
