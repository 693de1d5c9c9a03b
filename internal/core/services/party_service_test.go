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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PartyServiceTestSuite struct {
	suite.Suite
	mockPartyRepo  *MockPartyRepository
	mockAccountSvc *MockAccountService
	service        portssvc.PartySvcFacade
	businessID     string
	actor          string
}

func (suite *PartyServiceTestSuite) SetupTest() {
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewPartyService(suite.mockPartyRepo, suite.mockAccountSvc)
	suite.businessID = uuid.NewString()
	suite.actor = uuid.NewString()
}

func (suite *PartyServiceTestSuite) TestCreateParty_SupplierGetsSupplierLedger() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.mockAccountSvc.On("GetOrCreateAccount", ctx, suite.businessID, domain.AccountSupplier, "Gupta Wholesale", suite.actor).
		Return(&domain.Account{AccountID: accountID, BusinessID: suite.businessID, Name: "Gupta Wholesale"}, nil).Once()
	suite.mockPartyRepo.On("SaveParty", ctx, mock.AnythingOfType("domain.Party")).Return(nil).Once()

	party, err := suite.service.CreateParty(ctx, suite.businessID, dto.CreatePartyRequest{
		Name: "Gupta Wholesale",
		Kind: string(domain.Supplier),
	}, suite.actor)

	suite.Require().NoError(err)
	suite.Equal(domain.Supplier, party.Kind)
	suite.Equal(accountID, party.AccountID)
	suite.True(party.TotalDues.IsZero())
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestCreateParty_UnknownKindRejected() {
	ctx := context.Background()

	_, err := suite.service.CreateParty(ctx, suite.businessID, dto.CreatePartyRequest{
		Name: "Mystery Trader",
		Kind: "BROKER",
	}, suite.actor)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "GetOrCreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "SaveParty", mock.Anything, mock.Anything)
}

func TestPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
