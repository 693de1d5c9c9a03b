package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
)

var (
	severityModerateLimit = decimal.NewFromInt(5)
	severityMinorLimit    = decimal.NewFromInt(1)
)

// reconciliationService verifies cached aggregates against recomputed truth
// and repairs them within policy.
type reconciliationService struct {
	BaseService
	reconRepo portsrepo.ReconciliationRepository
	audit     portssvc.AuditSink
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(reconRepo portsrepo.ReconciliationRepository, audit portssvc.AuditSink) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{reconRepo: reconRepo, audit: audit}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// Reconcile runs the selected checks. Corrections are applied per entity in
// their own atomic units; cancellation between entities keeps whatever was
// already fixed. Stock severity policy: variances under 1 unit are noise
// absorbed by tolerance, 1 to 5 units are auto-corrected, above 5 units the
// engine only alerts. Party dues beyond tolerance are always overwritten from
// the ledger. Any trial balance variance marks the ledger corrupted.
func (s *reconciliationService) Reconcile(ctx context.Context, businessID string, scope domain.ReconScope, actor string) (*domain.ReconciliationReport, error) {
	report := &domain.ReconciliationReport{
		BusinessID:    businessID,
		Scope:         scope,
		RanAt:         time.Now(),
		TrialVariance: decimal.Zero,
	}

	if scope == domain.ScopeAll || scope == domain.ScopeStock {
		if err := s.reconcileStock(ctx, businessID, actor, report); err != nil {
			return report, err
		}
	}
	if scope == domain.ScopeAll || scope == domain.ScopeParties {
		if err := s.reconcileParties(ctx, businessID, actor, report); err != nil {
			return report, err
		}
	}
	if scope == domain.ScopeAll || scope == domain.ScopeTrialBalance {
		if err := s.checkTrialBalance(ctx, businessID, report); err != nil {
			return report, err
		}
	}

	report.Status = verdict(report)
	s.LogInfo(ctx, "reconciliation finished",
		"businessID", businessID,
		"scope", string(scope),
		"itemsChecked", report.ItemsChecked,
		"partiesChecked", report.PartiesChecked,
		"discrepancies", len(report.Discrepancies),
		"corrections", len(report.Corrections),
		"status", string(report.Status))
	return report, nil
}

func (s *reconciliationService) reconcileStock(ctx context.Context, businessID, actor string, report *domain.ReconciliationReport) error {
	items, err := s.reconRepo.ListActiveItems(ctx, businessID)
	if err != nil {
		return err
	}
	calculated, err := s.reconRepo.SumStockMovements(ctx, businessID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.ItemsChecked++

		expected := calculated[item.ItemID]
		variance := item.StockQty.Sub(expected)
		if accounting.WithinTolerance(item.StockQty, expected, accounting.StockTolerance) {
			continue
		}

		severity := classify(variance)
		disc := domain.Discrepancy{
			Kind:        domain.StockDiscrepancy,
			EntityID:    item.ItemID,
			EntityName:  item.Name,
			Expected:    expected,
			Actual:      item.StockQty,
			Variance:    variance,
			Severity:    severity,
			Explanation: fmt.Sprintf("cached stock %s, movements sum to %s", item.StockQty.String(), expected.String()),
		}

		if severity == domain.SeverityMajor {
			s.LogWarn(ctx, "major stock discrepancy, manual review required",
				"itemID", item.ItemID, "variance", variance.String())
			report.Discrepancies = append(report.Discrepancies, disc)
			continue
		}

		now := time.Now()
		correctionQty := expected.Sub(item.StockQty)
		dir := domain.StockIn
		if correctionQty.IsNegative() {
			dir = domain.StockOut
		}
		movement := domain.StockMovement{
			MovementID: uuid.NewString(),
			BusinessID: businessID,
			ItemID:     item.ItemID,
			Quantity:   correctionQty,
			Direction:  dir,
			Reason:     domain.ReasonAuditCorrection,
			Date:       now,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor,
				LastUpdatedAt: now,
				LastUpdatedBy: actor,
			},
		}
		if err := s.reconRepo.ApplyStockCorrection(ctx, movement, expected, actor, now); err != nil {
			s.LogError(ctx, err, "failed to apply stock correction", "itemID", item.ItemID)
			return err
		}
		disc.Corrected = true
		report.Discrepancies = append(report.Discrepancies, disc)
		report.Corrections = append(report.Corrections, domain.Correction{
			Kind:       domain.StockDiscrepancy,
			EntityID:   item.ItemID,
			Before:     item.StockQty,
			After:      expected,
			MovementID: movement.MovementID,
			AppliedAt:  now,
		})
		s.recordCorrection(ctx, actor, "STOCK_CORRECTION", item.ItemID, item.StockQty, expected)
	}
	return nil
}

func (s *reconciliationService) reconcileParties(ctx context.Context, businessID, actor string, report *domain.ReconciliationReport) error {
	parties, err := s.reconRepo.ListActiveParties(ctx, businessID)
	if err != nil {
		return err
	}
	calculated, err := s.reconRepo.SumOutstandingByParty(ctx, businessID)
	if err != nil {
		return err
	}

	for _, party := range parties {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.PartiesChecked++

		expected := calculated[party.PartyID]
		variance := party.TotalDues.Sub(expected)
		if accounting.WithinTolerance(party.TotalDues, expected, accounting.MoneyTolerance) {
			continue
		}

		// Dues have no severity gate: the party ledger is authoritative, so
		// any drift beyond tolerance is overwritten, however large.
		severity := classify(variance)
		if severity == domain.SeverityMajor {
			s.LogWarn(ctx, "major dues discrepancy, overwriting from ledger",
				"partyID", party.PartyID, "variance", variance.String())
		}

		now := time.Now()
		if err := s.reconRepo.OverwritePartyDues(ctx, party.PartyID, expected, actor, now); err != nil {
			s.LogError(ctx, err, "failed to correct party dues", "partyID", party.PartyID)
			return err
		}
		report.Discrepancies = append(report.Discrepancies, domain.Discrepancy{
			Kind:        domain.PartyDiscrepancy,
			EntityID:    party.PartyID,
			EntityName:  party.Name,
			Expected:    expected,
			Actual:      party.TotalDues,
			Variance:    variance,
			Severity:    severity,
			Explanation: fmt.Sprintf("cached dues %s, outstanding transactions sum to %s", party.TotalDues.String(), expected.String()),
			Corrected:   true,
		})
		report.Corrections = append(report.Corrections, domain.Correction{
			Kind:      domain.PartyDiscrepancy,
			EntityID:  party.PartyID,
			Before:    party.TotalDues,
			After:     expected,
			AppliedAt: now,
		})
		s.recordCorrection(ctx, actor, "DUES_CORRECTION", party.PartyID, party.TotalDues, expected)
	}
	return nil
}

// checkTrialBalance never auto-corrects: a non-zero variance means the
// journal itself broke the double-entry invariant.
func (s *reconciliationService) checkTrialBalance(ctx context.Context, businessID string, report *domain.ReconciliationReport) error {
	variance, err := s.reconRepo.TrialBalanceVariance(ctx, businessID)
	if err != nil {
		return err
	}
	report.TrialVariance = variance
	if accounting.WithinTolerance(variance, decimal.Zero, accounting.MoneyTolerance) {
		return nil
	}
	s.LogError(ctx, fmt.Errorf("trial balance variance %s", variance.String()),
		"journal violates double-entry invariant", "businessID", businessID)
	report.Discrepancies = append(report.Discrepancies, domain.Discrepancy{
		Kind:        domain.TrialBalanceDiscrepancy,
		EntityID:    businessID,
		Expected:    decimal.Zero,
		Actual:      variance,
		Variance:    variance,
		Severity:    domain.SeverityMajor,
		Explanation: "sum of debits does not equal sum of credits across the journal",
	})
	return nil
}

// classify buckets a variance magnitude. Boundaries land in the stricter
// class: exactly 1 is moderate, exactly 5 is moderate, above 5 is major.
func classify(variance decimal.Decimal) domain.DiscrepancySeverity {
	abs := variance.Abs()
	switch {
	case abs.LessThan(severityMinorLimit):
		return domain.SeverityMinor
	case abs.LessThanOrEqual(severityModerateLimit):
		return domain.SeverityModerate
	default:
		return domain.SeverityMajor
	}
}

func verdict(report *domain.ReconciliationReport) domain.HealthStatus {
	if !report.TrialVariance.IsZero() && !accounting.WithinTolerance(report.TrialVariance, decimal.Zero, accounting.MoneyTolerance) {
		return domain.Corrupted
	}
	majorPending := false
	for _, d := range report.Discrepancies {
		if d.Severity == domain.SeverityMajor && !d.Corrected {
			majorPending = true
		}
	}
	if majorPending {
		return domain.AlertsPending
	}
	if len(report.Corrections) > 0 {
		return domain.Corrected
	}
	return domain.Healthy
}

func (s *reconciliationService) recordCorrection(ctx context.Context, actor, action, entityID string, before, after decimal.Decimal) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, domain.AuditRecord{
		Actor:      actor,
		Action:     action,
		EntityType: "AGGREGATE",
		EntityID:   entityID,
		Before:     before,
		After:      after,
		At:         time.Now(),
	})
}
