package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
)

// --- Mock DebtRepository ---
type MockDebtRepository struct {
	mock.Mock
}

var _ portsrepo.DebtRepositoryFacade = (*MockDebtRepository)(nil)

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.CompanyDebt, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyDebt), args.Error(1)
}

func (m *MockDebtRepository) ListDebtsByStaff(ctx context.Context, staff domain.StaffRef) ([]domain.CompanyDebt, error) {
	args := m.Called(ctx, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyDebt), args.Error(1)
}

func (m *MockDebtRepository) ListDebtHistory(ctx context.Context, debtID string) ([]domain.DebtHistoryEntry, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtHistoryEntry), args.Error(1)
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.CompanyDebt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) AppendEntryAndUpdateDebt(ctx context.Context, entry domain.DebtHistoryEntry, newOriginal, newOutstanding decimal.Decimal, newStatus domain.DebtStatus, updatedBy string) error {
	args := m.Called(ctx, entry, newOriginal, newOutstanding, newStatus, updatedBy)
	return args.Error(0)
}

// --- Test Suite Setup ---
type DebtServiceTestSuite struct {
	suite.Suite
	mockDebtRepo *MockDebtRepository
	mockStaffSvc *MockStaffService
	service      portssvc.DebtSvcFacade
	staff        domain.StaffRef
	debt         domain.CompanyDebt
	actorUserID  string
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockStaffSvc = new(MockStaffService)
	suite.service = services.NewDebtService(suite.mockDebtRepo, suite.mockStaffSvc)

	suite.staff = domain.StaffRef{Kind: domain.StaffKindUser, ID: uuid.NewString()}
	suite.actorUserID = uuid.NewString()

	suite.debt = domain.CompanyDebt{
		DebtID:         uuid.NewString(),
		Staff:          suite.staff,
		OriginalAmount: decimal.NewFromInt(1000),
		Outstanding:    decimal.NewFromInt(1000),
		DebtType:       domain.OwedToCompany,
		Status:         domain.DebtPending,
	}
}

// --- CreateDebt ---

func (suite *DebtServiceTestSuite) TestCreateDebt_Success() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{
		Amount:   decimal.NewFromInt(1000),
		DebtType: domain.OwedToCompany,
		Reason:   "till shortage",
	}

	suite.mockStaffSvc.On("ResolveStaff", ctx, suite.staff).Return(nil).Once()
	suite.mockDebtRepo.On("SaveDebt", ctx, mock.AnythingOfType("domain.CompanyDebt")).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, suite.staff, req, suite.actorUserID)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), debt.DebtID)
	assert.Equal(suite.T(), domain.DebtPending, debt.Status)
	assert.True(suite.T(), debt.Outstanding.Equal(debt.OriginalAmount))
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{Amount: decimal.Zero, DebtType: domain.OwedToCompany}

	suite.mockStaffSvc.On("ResolveStaff", ctx, suite.staff).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, suite.staff, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), debt)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt")
}

func (suite *DebtServiceTestSuite) TestCreateDebt_UnknownType() {
	ctx := context.Background()
	req := dto.CreateDebtRequest{Amount: decimal.NewFromInt(50), DebtType: "owed_to_mars"}

	suite.mockStaffSvc.On("ResolveStaff", ctx, suite.staff).Return(nil).Once()

	debt, err := suite.service.CreateDebt(ctx, suite.staff, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), debt)
}

// --- ReconcileDebt ---

func (suite *DebtServiceTestSuite) TestReconcileDebt_PartialPayment() {
	ctx := context.Background()
	req := dto.AppendDebtEntryRequest{
		Amount:          decimal.NewFromInt(400),
		TransactionType: domain.DebtTxnPayment,
		Reason:          "cash repayment",
	}

	suite.mockDebtRepo.On("FindDebtByID", ctx, suite.debt.DebtID).Return(&suite.debt, nil).Once()
	suite.mockDebtRepo.On("AppendEntryAndUpdateDebt", ctx, mock.AnythingOfType("domain.DebtHistoryEntry"),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(1000)) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(600)) }),
		domain.DebtPartiallyPaid, suite.actorUserID).Return(nil).Once()

	resp, err := suite.service.ReconcileDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.UpdatedBalance.Equal(decimal.NewFromInt(600)), "balance: %s", resp.UpdatedBalance)
	assert.Equal(suite.T(), domain.DebtPartiallyPaid, resp.UpdatedStatus)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestReconcileDebt_FullPayment() {
	ctx := context.Background()
	req := dto.AppendDebtEntryRequest{
		Amount:          decimal.NewFromInt(1000),
		TransactionType: domain.DebtTxnPayment,
	}

	suite.mockDebtRepo.On("FindDebtByID", ctx, suite.debt.DebtID).Return(&suite.debt, nil).Once()
	suite.mockDebtRepo.On("AppendEntryAndUpdateDebt", ctx, mock.AnythingOfType("domain.DebtHistoryEntry"),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(1000)) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.IsZero() }),
		domain.DebtPaid, suite.actorUserID).Return(nil).Once()

	resp, err := suite.service.ReconcileDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.UpdatedBalance.IsZero())
	assert.Equal(suite.T(), domain.DebtPaid, resp.UpdatedStatus)
}

func (suite *DebtServiceTestSuite) TestReconcileDebt_AdditionalDebt() {
	ctx := context.Background()
	req := dto.AppendDebtEntryRequest{
		Amount:          decimal.NewFromInt(250),
		TransactionType: domain.DebtTxnAdditionalDebt,
	}

	// Original grows with the balance so the debt stays pending rather
	// than reading as partially paid.
	suite.mockDebtRepo.On("FindDebtByID", ctx, suite.debt.DebtID).Return(&suite.debt, nil).Once()
	suite.mockDebtRepo.On("AppendEntryAndUpdateDebt", ctx, mock.AnythingOfType("domain.DebtHistoryEntry"),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(1250)) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(1250)) }),
		domain.DebtPending, suite.actorUserID).Return(nil).Once()

	resp, err := suite.service.ReconcileDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.UpdatedBalance.Equal(decimal.NewFromInt(1250)))
	assert.Equal(suite.T(), domain.DebtPending, resp.UpdatedStatus)
}

func (suite *DebtServiceTestSuite) TestReconcileDebt_AdditionalDebtAfterPartialPayment() {
	ctx := context.Background()
	suite.debt.Outstanding = decimal.NewFromInt(600)
	suite.debt.Status = domain.DebtPartiallyPaid
	req := dto.AppendDebtEntryRequest{
		Amount:          decimal.NewFromInt(500),
		TransactionType: domain.DebtTxnAdditionalDebt,
	}

	suite.mockDebtRepo.On("FindDebtByID", ctx, suite.debt.DebtID).Return(&suite.debt, nil).Once()
	suite.mockDebtRepo.On("AppendEntryAndUpdateDebt", ctx, mock.AnythingOfType("domain.DebtHistoryEntry"),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(1500)) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(1100)) }),
		domain.DebtPartiallyPaid, suite.actorUserID).Return(nil).Once()

	resp, err := suite.service.ReconcileDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.UpdatedBalance.Equal(decimal.NewFromInt(1100)))
	assert.Equal(suite.T(), domain.DebtPartiallyPaid, resp.UpdatedStatus)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestReconcileDebt_OverpaymentRejected() {
	ctx := context.Background()
	req := dto.AppendDebtEntryRequest{
		Amount:          decimal.NewFromInt(1500),
		TransactionType: domain.DebtTxnPayment,
	}

	suite.mockDebtRepo.On("FindDebtByID", ctx, suite.debt.DebtID).Return(&suite.debt, nil).Once()

	resp, err := suite.service.ReconcileDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "AppendEntryAndUpdateDebt")
}

func (suite *DebtServiceTestSuite) TestReconcileDebt_GiftOnStaffDebtRejected() {
	ctx := context.Background()
	req := dto.AppendDebtEntryRequest{
		Amount:          decimal.NewFromInt(100),
		TransactionType: domain.DebtTxnGift,
	}

	suite.mockDebtRepo.On("FindDebtByID", ctx, suite.debt.DebtID).Return(&suite.debt, nil).Once()

	resp, err := suite.service.ReconcileDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.Error(suite.T(), err, "gift entries apply only to debts owed by the company")
	assert.Nil(suite.T(), resp)
}

func (suite *DebtServiceTestSuite) TestReconcileDebt_WrittenOffIsTerminal() {
	ctx := context.Background()
	suite.debt.Status = domain.DebtWrittenOff
	suite.debt.Outstanding = decimal.Zero
	req := dto.AppendDebtEntryRequest{
		Amount:          decimal.NewFromInt(100),
		TransactionType: domain.DebtTxnPayment,
	}

	suite.mockDebtRepo.On("FindDebtByID", ctx, suite.debt.DebtID).Return(&suite.debt, nil).Once()

	resp, err := suite.service.ReconcileDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "AppendEntryAndUpdateDebt")
}

func (suite *DebtServiceTestSuite) TestReconcileDebt_UnknownTransactionType() {
	ctx := context.Background()
	req := dto.AppendDebtEntryRequest{
		Amount:          decimal.NewFromInt(100),
		TransactionType: "barter",
	}

	resp, err := suite.service.ReconcileDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), resp)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "FindDebtByID")
}

// --- WriteOffDebt ---

func (suite *DebtServiceTestSuite) TestWriteOffDebt_Success() {
	ctx := context.Background()
	suite.debt.Outstanding = decimal.NewFromInt(600)
	suite.debt.Status = domain.DebtPartiallyPaid
	req := dto.WriteOffDebtRequest{Reason: "staff member left the country"}

	suite.mockDebtRepo.On("FindDebtByID", ctx, suite.debt.DebtID).Return(&suite.debt, nil).Once()
	suite.mockDebtRepo.On("AppendEntryAndUpdateDebt", ctx,
		mock.MatchedBy(func(e domain.DebtHistoryEntry) bool {
			return e.TransactionType == domain.DebtTxnAdjustment && e.Amount.Equal(decimal.NewFromInt(600))
		}),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(1000)) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.IsZero() }),
		domain.DebtWrittenOff, suite.actorUserID).Return(nil).Once()

	debt, err := suite.service.WriteOffDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.DebtWrittenOff, debt.Status)
	assert.True(suite.T(), debt.Outstanding.IsZero())
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestWriteOffDebt_NothingOutstanding() {
	ctx := context.Background()
	suite.debt.Outstanding = decimal.Zero
	suite.debt.Status = domain.DebtPaid
	req := dto.WriteOffDebtRequest{Reason: "cleanup"}

	suite.mockDebtRepo.On("FindDebtByID", ctx, suite.debt.DebtID).Return(&suite.debt, nil).Once()

	debt, err := suite.service.WriteOffDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	assert.Nil(suite.T(), debt)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "AppendEntryAndUpdateDebt")
}

func (suite *DebtServiceTestSuite) TestWriteOffDebt_AlreadyWrittenOff() {
	ctx := context.Background()
	suite.debt.Status = domain.DebtWrittenOff
	suite.debt.Outstanding = decimal.Zero
	req := dto.WriteOffDebtRequest{Reason: "duplicate"}

	suite.mockDebtRepo.On("FindDebtByID", ctx, suite.debt.DebtID).Return(&suite.debt, nil).Once()

	debt, err := suite.service.WriteOffDebt(ctx, suite.debt.DebtID, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	assert.Nil(suite.T(), debt)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "AppendEntryAndUpdateDebt")
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
