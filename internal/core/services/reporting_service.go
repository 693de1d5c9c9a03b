package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
)

// reportingService assembles financial statements from journal aggregations.
// All methods are read-only.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetTrialBalance lists every account's net balance as of a date, routed to
// its normal-side column, and verifies the global double-entry invariant.
func (s *reportingService) GetTrialBalance(ctx context.Context, businessID string, asOf time.Time) (*domain.TrialBalanceReport, error) {
	movements, err := s.reportingRepo.GetAccountMovements(ctx, businessID, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.TrialBalanceReport{
		AsOf:        asOf,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, m := range movements {
		balance := normalBalance(m)
		if balance.IsZero() {
			continue
		}
		debitCol, creditCol := accounting.ColumnFor(m.Group, balance)
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:   m.AccountID,
			AccountName: m.Name,
			Group:       m.Group,
			Debit:       debitCol,
			Credit:      creditCol,
		})
		report.TotalDebit = report.TotalDebit.Add(debitCol)
		report.TotalCredit = report.TotalCredit.Add(creditCol)
	}
	report.Difference = report.TotalDebit.Sub(report.TotalCredit)
	report.IsBalanced = accounting.WithinTolerance(report.TotalDebit, report.TotalCredit, accounting.MoneyTolerance)
	if !report.IsBalanced {
		s.LogWarn(ctx, "trial balance does not balance",
			"businessID", businessID,
			"difference", report.Difference.String())
	}
	return report, nil
}

// normalBalance nets an account's movements onto its normal side, opening
// balance included.
func normalBalance(m domain.AccountMovement) decimal.Decimal {
	if m.Group.DebitNormal() {
		return m.OpeningBalance.Add(m.Debit).Sub(m.Credit)
	}
	return m.OpeningBalance.Add(m.Credit).Sub(m.Debit)
}

// GetProfitAndLoss computes the trading result for a period. Cost of goods
// sold uses the periodic inventory method: opening stock plus net purchases
// minus closing stock, with stock valued at purchase rates.
func (s *reportingService) GetProfitAndLoss(ctx context.Context, businessID string, from, to time.Time) (*domain.PAndLReport, error) {
	movements, err := s.reportingRepo.GetAccountMovementsInRange(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}
	openingStock, err := s.reportingRepo.GetStockValue(ctx, businessID, from.Add(-time.Nanosecond))
	if err != nil {
		return nil, err
	}
	closingStock, err := s.reportingRepo.GetStockValue(ctx, businessID, to)
	if err != nil {
		return nil, err
	}

	report := &domain.PAndLReport{
		From:              from,
		To:                to,
		NetRevenue:        decimal.Zero,
		OpeningStockValue: openingStock,
		NetPurchases:      decimal.Zero,
		ClosingStockValue: closingStock,
		TotalExpenses:     decimal.Zero,
	}
	for _, m := range movements {
		switch {
		case m.Group == domain.Income:
			// Sales returns carry debit balances and subtract naturally.
			net := m.Credit.Sub(m.Debit)
			if net.IsZero() {
				continue
			}
			report.Revenue = append(report.Revenue, domain.AccountAmount{AccountID: m.AccountID, Name: m.Name, NetAmount: net})
			report.NetRevenue = report.NetRevenue.Add(net)
		case m.Type == domain.AccountPurchase || m.Type == domain.AccountPurchaseReturn:
			report.NetPurchases = report.NetPurchases.Add(m.Debit).Sub(m.Credit)
		case m.Group == domain.Expense:
			net := m.Debit.Sub(m.Credit)
			if net.IsZero() {
				continue
			}
			report.OperatingExpenses = append(report.OperatingExpenses, domain.AccountAmount{AccountID: m.AccountID, Name: m.Name, NetAmount: net})
			report.TotalExpenses = report.TotalExpenses.Add(net)
		}
	}

	report.COGS = report.OpeningStockValue.Add(report.NetPurchases).Sub(report.ClosingStockValue)
	report.GrossProfit = report.NetRevenue.Sub(report.COGS)
	report.NetProfit = report.GrossProfit.Sub(report.TotalExpenses)
	return report, nil
}

// GetBalanceSheet classifies every non-zero balance as of a date. Stock on
// hand comes from item valuation rather than the stock ledger so the sheet
// reflects actual quantities; retained earnings is the plug that makes
// assets equal liabilities plus equity.
func (s *reportingService) GetBalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	movements, err := s.reportingRepo.GetAccountMovements(ctx, businessID, asOf)
	if err != nil {
		return nil, err
	}
	stockValue, err := s.reportingRepo.GetStockValue(ctx, businessID, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:              asOf,
		ClosingStockValue: stockValue,
		TotalAssets:       stockValue,
		TotalLiabilities:  decimal.Zero,
		TotalEquity:       decimal.Zero,
	}
	equityListed := decimal.Zero
	for _, m := range movements {
		balance := normalBalance(m)
		if balance.IsZero() {
			continue
		}
		amount := domain.AccountAmount{AccountID: m.AccountID, Name: m.Name, NetAmount: balance}
		switch {
		case m.Type == domain.AccountStock:
			// Valued separately from item quantities.
		case m.Type == domain.AccountFixedAsset:
			report.FixedAssets = append(report.FixedAssets, amount)
			report.TotalAssets = report.TotalAssets.Add(balance)
		case m.Group == domain.Asset:
			report.CurrentAssets = append(report.CurrentAssets, amount)
			report.TotalAssets = report.TotalAssets.Add(balance)
		case m.Type == domain.AccountLoan:
			report.LongTermLiabilities = append(report.LongTermLiabilities, amount)
			report.TotalLiabilities = report.TotalLiabilities.Add(balance)
		case m.Group == domain.Liability:
			report.CurrentLiabilities = append(report.CurrentLiabilities, amount)
			report.TotalLiabilities = report.TotalLiabilities.Add(balance)
		case m.Group == domain.Equity:
			report.Equity = append(report.Equity, amount)
			equityListed = equityListed.Add(balance)
		}
	}

	report.RetainedEarnings = report.TotalAssets.Sub(report.TotalLiabilities).Sub(equityListed)
	report.TotalEquity = equityListed.Add(report.RetainedEarnings)
	report.IsBalanced = accounting.WithinTolerance(report.TotalAssets, report.TotalLiabilities.Add(report.TotalEquity), accounting.MoneyTolerance)
	return report, nil
}

// GetCashFlow buckets every cash/bank journal line of the period and checks
// the bucketed net change against actual opening and closing balances.
func (s *reportingService) GetCashFlow(ctx context.Context, businessID string, from, to time.Time) (*domain.CashFlowReport, error) {
	entries, err := s.reportingRepo.GetCashEntries(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}
	opening, err := s.reportingRepo.GetCashBalance(ctx, businessID, from.Add(-time.Nanosecond))
	if err != nil {
		return nil, err
	}
	closing, err := s.reportingRepo.GetCashBalance(ctx, businessID, to)
	if err != nil {
		return nil, err
	}

	report := &domain.CashFlowReport{
		From:           from,
		To:             to,
		Operating:      decimal.Zero,
		Investing:      decimal.Zero,
		Financing:      decimal.Zero,
		OpeningBalance: opening,
		ClosingBalance: closing,
	}
	for _, e := range entries {
		switch e.Activity() {
		case domain.Investing:
			report.Investing = report.Investing.Add(e.Amount)
		case domain.Financing:
			report.Financing = report.Financing.Add(e.Amount)
		default:
			report.Operating = report.Operating.Add(e.Amount)
		}
	}
	report.NetChange = report.Operating.Add(report.Investing).Add(report.Financing)
	report.Reconciles = accounting.WithinTolerance(opening.Add(report.NetChange), closing, accounting.MoneyTolerance)
	if !report.Reconciles {
		s.LogWarn(ctx, "cash flow does not reconcile with cash balances",
			"businessID", businessID,
			"netChange", report.NetChange.String())
	}
	return report, nil
}
