package services_test

import (
	"context"
	"testing"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/core/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	businessID      string
	actor           string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.businessID = uuid.NewString()
	suite.actor = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByTypeAndName", ctx, suite.businessID, domain.AccountBank, "HDFC Current").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.businessID, dto.CreateAccountRequest{
		Name:           "HDFC Current",
		Type:           string(domain.AccountBank),
		OpeningBalance: decimal.NewFromInt(25000),
	}, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Asset, account.Group)
	suite.True(account.OpeningBalance.Equal(decimal.NewFromInt(25000)))
	suite.True(account.IsActive)
	suite.False(account.IsSystem)
	suite.Equal(suite.actor, account.CreatedBy)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownTypeRejected() {
	_, err := suite.service.CreateAccount(context.Background(), suite.businessID, dto.CreateAccountRequest{
		Name: "Mystery",
		Type: "WAREHOUSE",
	}, suite.actor)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateConflict() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: uuid.NewString(), BusinessID: suite.businessID, Name: "Cash", Type: domain.AccountCash}
	suite.mockAccountRepo.On("FindAccountByTypeAndName", ctx, suite.businessID, domain.AccountCash, "Cash").
		Return(existing, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.businessID, dto.CreateAccountRequest{
		Name: "Cash",
		Type: string(domain.AccountCash),
	}, suite.actor)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestGetOrCreateAccount_ReturnsExisting() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: uuid.NewString(), BusinessID: suite.businessID, Name: "Sales", Type: domain.AccountSales}
	suite.mockAccountRepo.On("FindAccountByTypeAndName", ctx, suite.businessID, domain.AccountSales, "Sales").
		Return(existing, nil).Once()

	account, err := suite.service.GetOrCreateAccount(ctx, suite.businessID, domain.AccountSales, "Sales", suite.actor)
	suite.Require().NoError(err)
	suite.Equal(existing.AccountID, account.AccountID)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestGetOrCreateAccount_CreatesSystemAccountOnFirstUse() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByTypeAndName", ctx, suite.businessID, domain.AccountSales, "Sales").
		Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.Account
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Account) }).Return(nil).Once()

	account, err := suite.service.GetOrCreateAccount(ctx, suite.businessID, domain.AccountSales, "Sales", suite.actor)

	suite.Require().NoError(err)
	suite.True(account.IsSystem, "role ledgers are system accounts")
	suite.True(account.IsActive)
	suite.Equal(domain.Income, account.Group)
	suite.Equal(saved.AccountID, account.AccountID)
}

func (suite *AccountServiceTestSuite) TestGetOrCreateAccount_LosingRaceReadsBack() {
	ctx := context.Background()
	winner := &domain.Account{AccountID: uuid.NewString(), BusinessID: suite.businessID, Name: "Cash", Type: domain.AccountCash, IsSystem: true}
	suite.mockAccountRepo.On("FindAccountByTypeAndName", ctx, suite.businessID, domain.AccountCash, "Cash").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicate).Once()
	suite.mockAccountRepo.On("FindAccountByTypeAndName", ctx, suite.businessID, domain.AccountCash, "Cash").
		Return(winner, nil).Once()

	account, err := suite.service.GetOrCreateAccount(ctx, suite.businessID, domain.AccountCash, "Cash", suite.actor)
	suite.Require().NoError(err)
	suite.Equal(winner.AccountID, account.AccountID)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_SystemAccountRefused() {
	ctx := context.Background()
	system := &domain.Account{AccountID: uuid.NewString(), BusinessID: suite.businessID, IsSystem: true}
	suite.mockAccountRepo.On("FindAccountByID", ctx, system.AccountID).Return(system, nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.businessID, system.AccountID, suite.actor)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount")
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), BusinessID: suite.businessID}
	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", ctx, account.AccountID, suite.actor, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.businessID, account.AccountID, suite.actor)
	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_OtherBusinessNotFound() {
	ctx := context.Background()
	foreign := &domain.Account{AccountID: uuid.NewString(), BusinessID: uuid.NewString()}
	suite.mockAccountRepo.On("FindAccountByID", ctx, foreign.AccountID).Return(foreign, nil).Once()

	_, err := suite.service.GetAccountByID(ctx, suite.businessID, foreign.AccountID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
