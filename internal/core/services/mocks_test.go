package services_test

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PostingRepository ---

type MockPostingRepository struct {
	mock.Mock
}

var _ portsrepo.PostingRepositoryWithTx = (*MockPostingRepository)(nil)

func (m *MockPostingRepository) SavePosting(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry, movements []domain.StockMovement, stockDeltas map[string]decimal.Decimal, duesDeltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, entries, movements, stockDeltas, duesDeltas)
	return args.Error(0)
}

func (m *MockPostingRepository) SaveReversal(ctx context.Context, reversal domain.Transaction, entries []domain.JournalEntry, movements []domain.StockMovement, stockDeltas map[string]decimal.Decimal, duesDeltas map[string]decimal.Decimal, voucher domain.ReversalVoucher) error {
	args := m.Called(ctx, reversal, entries, movements, stockDeltas, duesDeltas, voucher)
	return args.Error(0)
}

func (m *MockPostingRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockPostingRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockPostingRepository) FindMovementsByTransactionID(ctx context.Context, transactionID string) ([]domain.StockMovement, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockPostingRepository) FindReversalVoucher(ctx context.Context, originalTransactionID string) (*domain.ReversalVoucher, error) {
	args := m.Called(ctx, originalTransactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReversalVoucher), args.Error(1)
}

func (m *MockPostingRepository) ListTransactions(ctx context.Context, businessID string, limit int, nextToken *string, includeReversals bool) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, businessID, limit, nextToken, includeReversals)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockPostingRepository) ListEntriesByAccountID(ctx context.Context, businessID, accountID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, businessID, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockPostingRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPostingRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPostingRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByTypeAndName(ctx context.Context, businessID string, accountType domain.AccountType, name string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountType, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, businessID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, actor string, now time.Time) error {
	args := m.Called(ctx, accountID, actor, now)
	return args.Error(0)
}

// --- Mock PartyRepository ---

type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, businessID string, limit int, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

// --- Mock ItemRepository ---

type MockItemRepository struct {
	mock.Mock
}

var _ portsrepo.ItemRepositoryFacade = (*MockItemRepository)(nil)

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context, businessID string, limit int, offset int) ([]domain.Item, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

// --- Mock ReconciliationRepository ---

type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepository = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) ListActiveItems(ctx context.Context, businessID string) ([]domain.Item, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockReconciliationRepository) SumStockMovements(ctx context.Context, businessID string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockReconciliationRepository) ApplyStockCorrection(ctx context.Context, movement domain.StockMovement, calculated decimal.Decimal, actor string, now time.Time) error {
	args := m.Called(ctx, movement, calculated, actor, now)
	return args.Error(0)
}

func (m *MockReconciliationRepository) ListActiveParties(ctx context.Context, businessID string) ([]domain.Party, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockReconciliationRepository) SumOutstandingByParty(ctx context.Context, businessID string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockReconciliationRepository) OverwritePartyDues(ctx context.Context, partyID string, calculated decimal.Decimal, actor string, now time.Time) error {
	args := m.Called(ctx, partyID, calculated, actor, now)
	return args.Error(0)
}

func (m *MockReconciliationRepository) TrialBalanceVariance(ctx context.Context, businessID string) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetAccountMovements(ctx context.Context, businessID string, asOf time.Time) ([]domain.AccountMovement, error) {
	args := m.Called(ctx, businessID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountMovement), args.Error(1)
}

func (m *MockReportingRepository) GetAccountMovementsInRange(ctx context.Context, businessID string, from, to time.Time) ([]domain.AccountMovement, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountMovement), args.Error(1)
}

func (m *MockReportingRepository) GetStockValue(ctx context.Context, businessID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetCashEntries(ctx context.Context, businessID string, from, to time.Time) ([]domain.CashEntry, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashEntry), args.Error(1)
}

func (m *MockReportingRepository) GetCashBalance(ctx context.Context, businessID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock AccountService (as used by PostingService) ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, actor string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetOrCreateAccount(ctx context.Context, businessID string, accType domain.AccountType, name string, actor string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accType, name, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, businessID string, accountID string, actor string) error {
	args := m.Called(ctx, businessID, accountID, actor)
	return args.Error(0)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock AuditSink ---

type MockAuditSink struct {
	mock.Mock
}

var _ portssvc.AuditSink = (*MockAuditSink)(nil)

func (m *MockAuditSink) Record(ctx context.Context, rec domain.AuditRecord) {
	m.Called(ctx, rec)
}
