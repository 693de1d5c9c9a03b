package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade
	businessID        string
	asOf              time.Time
	from              time.Time
	to                time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
	suite.businessID = uuid.NewString()
	suite.asOf = time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	suite.from = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.to = suite.asOf
}

func movement(name string, accType domain.AccountType, debit, credit, opening int64) domain.AccountMovement {
	return domain.AccountMovement{
		AccountID:      uuid.NewString(),
		Name:           name,
		Group:          accType.Group(),
		Type:           accType,
		Debit:          decimal.NewFromInt(debit),
		Credit:         decimal.NewFromInt(credit),
		OpeningBalance: decimal.NewFromInt(opening),
	}
}

func (suite *ReportingServiceTestSuite) TestGetTrialBalance_BalancedBook() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetAccountMovements", ctx, suite.businessID, suite.asOf).
		Return([]domain.AccountMovement{
			movement("Cash", domain.AccountCash, 500, 0, 0),
			movement("Sharma Traders", domain.AccountCustomer, 680, 0, 0),
			movement("Sales", domain.AccountSales, 0, 1000, 0),
			movement("GST Output", domain.AccountTaxOutput, 0, 180, 0),
			movement("Dormant", domain.AccountBank, 0, 0, 0),
		}, nil).Once()

	report, err := suite.service.GetTrialBalance(ctx, suite.businessID, suite.asOf)

	suite.Require().NoError(err)
	suite.Len(report.Rows, 4, "zero-balance accounts are skipped")
	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(1180)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(1180)))
	suite.True(report.Difference.IsZero())
	suite.True(report.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestGetTrialBalance_NegativeBalanceFlipsColumn() {
	ctx := context.Background()
	// An income account with a net debit balance (heavy returns) shows up in
	// the debit column, offset here by a debit-normal account gone negative.
	suite.mockReportingRepo.On("GetAccountMovements", ctx, suite.businessID, suite.asOf).
		Return([]domain.AccountMovement{
			movement("Sales Returns", domain.AccountSalesReturn, 300, 0, 0),
			movement("Cash", domain.AccountCash, 0, 300, 0),
		}, nil).Once()

	report, err := suite.service.GetTrialBalance(ctx, suite.businessID, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)
	// Sales Returns is Income group but Expense-like in balance: its
	// Income-group balance of -300 flips to the debit column.
	suite.True(report.Rows[0].Debit.Equal(decimal.NewFromInt(300)))
	suite.True(report.Rows[0].Credit.IsZero())
	suite.True(report.Rows[1].Credit.Equal(decimal.NewFromInt(300)))
	suite.True(report.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestGetTrialBalance_IncludesOpeningBalances() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetAccountMovements", ctx, suite.businessID, suite.asOf).
		Return([]domain.AccountMovement{
			movement("Cash", domain.AccountCash, 100, 0, 900),
			movement("Opening Balance Equity", domain.AccountOpeningEquity, 0, 100, 900),
		}, nil).Once()

	report, err := suite.service.GetTrialBalance(ctx, suite.businessID, suite.asOf)

	suite.Require().NoError(err)
	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(1000)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(1000)))
}

func (suite *ReportingServiceTestSuite) TestGetProfitAndLoss_PeriodicInventoryCOGS() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetAccountMovementsInRange", ctx, suite.businessID, suite.from, suite.to).
		Return([]domain.AccountMovement{
			movement("Sales", domain.AccountSales, 0, 10000, 0),
			movement("Sales Returns", domain.AccountSalesReturn, 500, 0, 0),
			movement("Purchases", domain.AccountPurchase, 4000, 0, 0),
			movement("Purchase Returns", domain.AccountPurchaseReturn, 0, 300, 0),
			movement("Rent", domain.AccountExpenseGeneral, 200, 0, 0),
			movement("Cash", domain.AccountCash, 9000, 200, 0),
		}, nil).Once()
	suite.mockReportingRepo.On("GetStockValue", ctx, suite.businessID, suite.from.Add(-time.Nanosecond)).
		Return(decimal.NewFromInt(500), nil).Once()
	suite.mockReportingRepo.On("GetStockValue", ctx, suite.businessID, suite.to).
		Return(decimal.NewFromInt(2100), nil).Once()

	report, err := suite.service.GetProfitAndLoss(ctx, suite.businessID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.NetRevenue.Equal(decimal.NewFromInt(9500)), "returns subtract from revenue")
	suite.True(report.NetPurchases.Equal(decimal.NewFromInt(3700)))
	suite.True(report.OpeningStockValue.Equal(decimal.NewFromInt(500)))
	suite.True(report.ClosingStockValue.Equal(decimal.NewFromInt(2100)))
	suite.True(report.COGS.Equal(decimal.NewFromInt(2100)), "opening + net purchases - closing")
	suite.True(report.GrossProfit.Equal(decimal.NewFromInt(7400)))
	suite.True(report.TotalExpenses.Equal(decimal.NewFromInt(200)))
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(7200)))
}

func (suite *ReportingServiceTestSuite) TestGetBalanceSheet_RetainedEarningsPlug() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetAccountMovements", ctx, suite.businessID, suite.asOf).
		Return([]domain.AccountMovement{
			movement("Cash", domain.AccountCash, 1000, 0, 0),
			movement("Stock In Hand", domain.AccountStock, 800, 0, 0),
			movement("Machinery", domain.AccountFixedAsset, 5000, 0, 0),
			movement("Gupta Wholesale", domain.AccountSupplier, 0, 2000, 0),
			movement("Bank Loan", domain.AccountLoan, 0, 3000, 0),
			movement("Capital", domain.AccountCapital, 0, 1500, 0),
		}, nil).Once()
	suite.mockReportingRepo.On("GetStockValue", ctx, suite.businessID, suite.asOf).
		Return(decimal.NewFromInt(900), nil).Once()

	report, err := suite.service.GetBalanceSheet(ctx, suite.businessID, suite.asOf)

	suite.Require().NoError(err)
	// Stock comes from item valuation, not the stock ledger balance.
	suite.True(report.ClosingStockValue.Equal(decimal.NewFromInt(900)))
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(6900)))
	suite.Len(report.CurrentAssets, 1)
	suite.Len(report.FixedAssets, 1)
	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(5000)))
	suite.Len(report.CurrentLiabilities, 1)
	suite.Len(report.LongTermLiabilities, 1)
	suite.True(report.RetainedEarnings.Equal(decimal.NewFromInt(400)))
	suite.True(report.TotalEquity.Equal(decimal.NewFromInt(1900)))
	suite.True(report.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestGetCashFlow_BucketsActivities() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetCashEntries", ctx, suite.businessID, suite.from, suite.to).
		Return([]domain.CashEntry{
			{Amount: decimal.NewFromInt(1000), TxnType: domain.Sale},
			{Amount: decimal.NewFromInt(-5000), TxnType: domain.PaymentOut, HasFixedAssetLeg: true},
			{Amount: decimal.NewFromInt(3000), TxnType: domain.PaymentIn, HasFinancingLeg: true},
		}, nil).Once()
	suite.mockReportingRepo.On("GetCashBalance", ctx, suite.businessID, suite.from.Add(-time.Nanosecond)).
		Return(decimal.NewFromInt(2000), nil).Once()
	suite.mockReportingRepo.On("GetCashBalance", ctx, suite.businessID, suite.to).
		Return(decimal.NewFromInt(1000), nil).Once()

	report, err := suite.service.GetCashFlow(ctx, suite.businessID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.Operating.Equal(decimal.NewFromInt(1000)))
	suite.True(report.Investing.Equal(decimal.NewFromInt(-5000)))
	suite.True(report.Financing.Equal(decimal.NewFromInt(3000)))
	suite.True(report.NetChange.Equal(decimal.NewFromInt(-1000)))
	suite.True(report.Reconciles)
}

func (suite *ReportingServiceTestSuite) TestGetCashFlow_FlagsUnreconciledBalances() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetCashEntries", ctx, suite.businessID, suite.from, suite.to).
		Return([]domain.CashEntry{{Amount: decimal.NewFromInt(100), TxnType: domain.Sale}}, nil).Once()
	suite.mockReportingRepo.On("GetCashBalance", ctx, suite.businessID, suite.from.Add(-time.Nanosecond)).
		Return(decimal.NewFromInt(0), nil).Once()
	suite.mockReportingRepo.On("GetCashBalance", ctx, suite.businessID, suite.to).
		Return(decimal.NewFromInt(500), nil).Once()

	report, err := suite.service.GetCashFlow(ctx, suite.businessID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.False(report.Reconciles)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
