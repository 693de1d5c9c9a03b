package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReversalServiceTestSuite struct {
	suite.Suite
	mockPostingRepo *MockPostingRepository
	mockPartyRepo   *MockPartyRepository
	mockAudit       *MockAuditSink
	service         portssvc.ReversalSvcFacade
	businessID      string
	actor           string
	customer        domain.Party
	original        domain.Transaction
	entries         []domain.JournalEntry
	movements       []domain.StockMovement
}

func (suite *ReversalServiceTestSuite) SetupTest() {
	suite.mockPostingRepo = new(MockPostingRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockAudit = new(MockAuditSink)
	suite.service = services.NewReversalService(suite.mockPostingRepo, suite.mockPartyRepo, suite.mockAudit)

	suite.businessID = uuid.NewString()
	suite.actor = uuid.NewString()
	suite.customer = domain.Party{
		PartyID:    uuid.NewString(),
		BusinessID: suite.businessID,
		Kind:       domain.Customer,
		AccountID:  uuid.NewString(),
	}

	// A posted credit sale: debit customer 1180, credit sales 1000,
	// credit tax 180, two widgets out of stock.
	salesAccountID := uuid.NewString()
	taxAccountID := uuid.NewString()
	suite.original = domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    suite.businessID,
		Type:          domain.Sale,
		Date:          time.Now().Add(-24 * time.Hour),
		PartyID:       &suite.customer.PartyID,
		Subtotal:      decimal.NewFromInt(1000),
		TaxAmount:     decimal.NewFromInt(180),
		Total:         decimal.NewFromInt(1180),
		PaymentStatus: domain.Unpaid,
	}
	suite.entries = []domain.JournalEntry{
		{EntryID: uuid.NewString(), TransactionID: suite.original.TransactionID, BusinessID: suite.businessID, AccountID: suite.customer.AccountID, Debit: decimal.NewFromInt(1180), Credit: decimal.Zero},
		{EntryID: uuid.NewString(), TransactionID: suite.original.TransactionID, BusinessID: suite.businessID, AccountID: salesAccountID, Debit: decimal.Zero, Credit: decimal.NewFromInt(1000)},
		{EntryID: uuid.NewString(), TransactionID: suite.original.TransactionID, BusinessID: suite.businessID, AccountID: taxAccountID, Debit: decimal.Zero, Credit: decimal.NewFromInt(180)},
	}
	suite.movements = []domain.StockMovement{
		{MovementID: uuid.NewString(), BusinessID: suite.businessID, ItemID: "item-1", Quantity: decimal.NewFromInt(-2), Direction: domain.StockOut, Reason: domain.ReasonSale, TransactionID: suite.original.TransactionID},
	}
}

func (suite *ReversalServiceTestSuite) TestReverse_ProducesMirrorThatNetsToZero() {
	ctx := context.Background()
	txnID := suite.original.TransactionID
	suite.mockPostingRepo.On("FindTransactionByID", ctx, txnID).Return(&suite.original, nil).Once()
	suite.mockPostingRepo.On("FindEntriesByTransactionID", ctx, txnID).Return(suite.entries, nil).Once()
	suite.mockPostingRepo.On("FindMovementsByTransactionID", ctx, txnID).Return(suite.movements, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, suite.customer.PartyID).Return(&suite.customer, nil).Once()

	var savedReversal domain.Transaction
	var mirrorEntries []domain.JournalEntry
	var mirrorMovements []domain.StockMovement
	var stockDeltas, duesDeltas map[string]decimal.Decimal
	var savedVoucher domain.ReversalVoucher
	suite.mockPostingRepo.On("SaveReversal", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("domain.ReversalVoucher")).
		Run(func(args mock.Arguments) {
			savedReversal = args.Get(1).(domain.Transaction)
			mirrorEntries = args.Get(2).([]domain.JournalEntry)
			mirrorMovements = args.Get(3).([]domain.StockMovement)
			stockDeltas = args.Get(4).(map[string]decimal.Decimal)
			duesDeltas = args.Get(5).(map[string]decimal.Decimal)
			savedVoucher = args.Get(6).(domain.ReversalVoucher)
		}).Return(nil).Once()
	suite.mockAudit.On("Record", mock.Anything, mock.AnythingOfType("domain.AuditRecord")).Once()

	voucher, err := suite.service.Reverse(ctx, suite.businessID, txnID, "wrong customer", suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.Equal(txnID, voucher.OriginalTransactionID)
	suite.Equal(savedVoucher.VoucherID, voucher.VoucherID)
	suite.Equal("wrong customer", voucher.Reason)

	suite.Equal(domain.Reversal, savedReversal.Type)
	suite.Equal(domain.Cancelled, savedReversal.PaymentStatus)
	suite.Equal(savedReversal.TransactionID, voucher.ReversalTransactionID)
	suite.True(savedReversal.Subtotal.Equal(decimal.NewFromInt(-1000)), "reversal envelope negates the original totals")
	suite.True(savedReversal.TaxAmount.Equal(decimal.NewFromInt(-180)))
	suite.True(savedReversal.Total.Equal(decimal.NewFromInt(-1180)))
	suite.True(savedReversal.AmountPaid.Equal(suite.original.AmountPaid.Neg()))

	suite.Require().Len(mirrorEntries, 3)
	for i, mirror := range mirrorEntries {
		orig := suite.entries[i]
		suite.True(mirror.Debit.Equal(orig.Credit), "debit and credit swap")
		suite.True(mirror.Credit.Equal(orig.Debit))
		suite.Equal(orig.AccountID, mirror.AccountID)
		suite.True(mirror.IsReversal)
		suite.Require().NotNil(mirror.ReversesEntryID)
		suite.Equal(orig.EntryID, *mirror.ReversesEntryID)
		// Original plus mirror nets to zero on the account.
		suite.True(orig.Debit.Sub(orig.Credit).Add(mirror.Debit.Sub(mirror.Credit)).IsZero())
	}

	suite.Require().Len(mirrorMovements, 1)
	suite.True(mirrorMovements[0].Quantity.Equal(decimal.NewFromInt(2)))
	suite.Equal(domain.StockIn, mirrorMovements[0].Direction)
	suite.Equal(domain.ReasonReversal, mirrorMovements[0].Reason)
	suite.True(stockDeltas["item-1"].Equal(decimal.NewFromInt(2)))

	suite.Require().Len(duesDeltas, 1)
	suite.True(duesDeltas[suite.customer.PartyID].Equal(decimal.NewFromInt(-1180)), "reversal takes the dues back out")

	suite.mockPostingRepo.AssertExpectations(suite.T())
}

func (suite *ReversalServiceTestSuite) TestReverse_AlreadyReversedConflict() {
	ctx := context.Background()
	reversed := suite.original
	reversed.IsReversed = true
	suite.mockPostingRepo.On("FindTransactionByID", ctx, reversed.TransactionID).Return(&reversed, nil).Once()

	_, err := suite.service.Reverse(ctx, suite.businessID, reversed.TransactionID, "twice", suite.actor)
	suite.ErrorIs(err, apperrors.ErrAlreadyReversed)
	suite.mockPostingRepo.AssertNotCalled(suite.T(), "SaveReversal")
}

func (suite *ReversalServiceTestSuite) TestReverse_ReversalOfReversalRejected() {
	ctx := context.Background()
	rev := suite.original
	rev.Type = domain.Reversal
	suite.mockPostingRepo.On("FindTransactionByID", ctx, rev.TransactionID).Return(&rev, nil).Once()

	_, err := suite.service.Reverse(ctx, suite.businessID, rev.TransactionID, "undo the undo", suite.actor)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReversalServiceTestSuite) TestReverse_OtherBusinessNotFound() {
	ctx := context.Background()
	foreign := suite.original
	foreign.BusinessID = uuid.NewString()
	suite.mockPostingRepo.On("FindTransactionByID", ctx, foreign.TransactionID).Return(&foreign, nil).Once()

	_, err := suite.service.Reverse(ctx, suite.businessID, foreign.TransactionID, "nope", suite.actor)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReversalServiceTestSuite) TestGetVoucher() {
	ctx := context.Background()
	voucher := &domain.ReversalVoucher{
		VoucherID:             uuid.NewString(),
		BusinessID:            suite.businessID,
		OriginalTransactionID: suite.original.TransactionID,
		ReversalTransactionID: uuid.NewString(),
	}
	suite.mockPostingRepo.On("FindReversalVoucher", ctx, suite.original.TransactionID).Return(voucher, nil).Once()

	got, err := suite.service.GetVoucher(ctx, suite.businessID, suite.original.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(voucher.VoucherID, got.VoucherID)
}

func TestReversalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReversalServiceTestSuite))
}
