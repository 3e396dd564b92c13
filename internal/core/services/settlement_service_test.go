package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByStaff(ctx context.Context, staff domain.StaffRef, limit int, nextToken *string) ([]domain.PaymentRecord, *string, error) {
	args := m.Called(ctx, staff, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.PaymentRecord), returnedNextToken, args.Error(2)
}

func (m *MockPaymentRepository) SavePaymentAndMarkLoans(ctx context.Context, payment domain.PaymentRecord, loanIDs []string) error {
	args := m.Called(ctx, payment, loanIDs)
	return args.Error(0)
}

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

var _ portsrepo.LoanRepositoryFacade = (*MockLoanRepository)(nil)

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.LoanRecord, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanRecord), args.Error(1)
}

func (m *MockLoanRepository) ListLoansByStaff(ctx context.Context, staff domain.StaffRef, unpaidOnly bool) ([]domain.LoanRecord, error) {
	args := m.Called(ctx, staff, unpaidOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanRecord), args.Error(1)
}

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.LoanRecord) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) MarkLoansPaidInTx(ctx context.Context, tx pgx.Tx, staff domain.StaffRef, loanIDs []string, deductedDate time.Time, updatedBy string, updatedAt time.Time) (int64, error) {
	args := m.Called(ctx, tx, staff, loanIDs, deductedDate, updatedBy, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock StaffService ---
type MockStaffService struct {
	mock.Mock
}

var _ portssvc.StaffSvcFacade = (*MockStaffService)(nil)

func (m *MockStaffService) CreateStaffMember(ctx context.Context, req dto.CreateStaffMemberRequest, creatorUserID string) (*domain.StaffMember, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffMember), args.Error(1)
}

func (m *MockStaffService) GetStaffMemberByID(ctx context.Context, staffMemberID string) (*domain.StaffMember, error) {
	args := m.Called(ctx, staffMemberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffMember), args.Error(1)
}

func (m *MockStaffService) ListStaffMembers(ctx context.Context, limit, offset int) ([]domain.StaffMember, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffMember), args.Error(1)
}

func (m *MockStaffService) UpdateStaffMember(ctx context.Context, staffMemberID string, req dto.UpdateStaffMemberRequest, updaterUserID string) (*domain.StaffMember, error) {
	args := m.Called(ctx, staffMemberID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffMember), args.Error(1)
}

func (m *MockStaffService) DeleteStaffMember(ctx context.Context, staffMemberID string, deleterUserID string) error {
	args := m.Called(ctx, staffMemberID, deleterUserID)
	return args.Error(0)
}

func (m *MockStaffService) ResolveStaff(ctx context.Context, staff domain.StaffRef) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffService) GetCompensationProfile(ctx context.Context, staff domain.StaffRef) (*domain.CompensationProfile, error) {
	args := m.Called(ctx, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompensationProfile), args.Error(1)
}

func (m *MockStaffService) UpdateSalaryStructure(ctx context.Context, staff domain.StaffRef, req dto.UpdateSalaryStructureRequest, updaterUserID string) (*domain.CompensationProfile, error) {
	args := m.Called(ctx, staff, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompensationProfile), args.Error(1)
}

func (m *MockStaffService) ListSalaryStructureHistory(ctx context.Context, staff domain.StaffRef) ([]domain.CompensationProfile, error) {
	args := m.Called(ctx, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompensationProfile), args.Error(1)
}

// --- Test Suite Setup ---
type SettlementServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockLoanRepo    *MockLoanRepository
	mockStaffSvc    *MockStaffService
	service         portssvc.SettlementSvcFacade
	staff           domain.StaffRef
	profile         domain.CompensationProfile
	unpaidLoans     []domain.LoanRecord
	actorUserID     string
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockStaffSvc = new(MockStaffService)
	suite.service = services.NewSettlementService(suite.mockPaymentRepo, suite.mockLoanRepo, suite.mockStaffSvc)

	suite.staff = domain.StaffRef{Kind: domain.StaffKindStaffMember, ID: uuid.NewString()}
	suite.actorUserID = uuid.NewString()

	suite.profile = domain.CompensationProfile{
		ProfileID:       uuid.NewString(),
		Staff:           suite.staff,
		BaseSalary:      decimal.NewFromInt(5000),
		Allowances:      decimal.NewFromInt(500),
		OtherDeductions: decimal.NewFromInt(100),
		TaxRate:         decimal.NewFromInt(10),
		PensionRate:     decimal.NewFromInt(5),
		SalaryType:      domain.SalaryMonthly,
		Version:         1,
		IsCurrent:       true,
	}
	suite.unpaidLoans = []domain.LoanRecord{
		{LoanID: uuid.NewString(), Staff: suite.staff, Amount: decimal.NewFromInt(200), LoanDate: time.Now().AddDate(0, -1, 0)},
		{LoanID: uuid.NewString(), Staff: suite.staff, Amount: decimal.NewFromInt(100), LoanDate: time.Now().AddDate(0, 0, -10)},
	}
}

func (suite *SettlementServiceTestSuite) settleRequest() dto.SettlePaymentRequest {
	return dto.SettlePaymentRequest{
		SalaryPeriod:  "2026-08",
		PaymentDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		PaymentMethod: domain.PaymentBankTransfer,
	}
}

// --- PreviewSettlement ---

func (suite *SettlementServiceTestSuite) TestPreviewSettlement_Success() {
	ctx := context.Background()
	suite.mockStaffSvc.On("GetCompensationProfile", ctx, suite.staff).Return(&suite.profile, nil).Once()
	suite.mockLoanRepo.On("ListLoansByStaff", ctx, suite.staff, true).Return(suite.unpaidLoans, nil).Once()

	result, loans, err := suite.service.PreviewSettlement(ctx, suite.staff, nil)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), loans, 2)
	// gross 5500, tax 550, pension 275, other 100, loans 300 -> total 1225, net 4275
	assert.True(suite.T(), result.GrossAmount.Equal(decimal.NewFromInt(5500)), "gross: %s", result.GrossAmount)
	assert.True(suite.T(), result.TaxAmount.Equal(decimal.NewFromInt(550)), "tax: %s", result.TaxAmount)
	assert.True(suite.T(), result.PensionAmount.Equal(decimal.NewFromInt(275)), "pension: %s", result.PensionAmount)
	assert.True(suite.T(), result.LoanDeduction.Equal(decimal.NewFromInt(300)), "loans: %s", result.LoanDeduction)
	assert.True(suite.T(), result.TotalDeductions.Equal(decimal.NewFromInt(1225)), "total: %s", result.TotalDeductions)
	assert.True(suite.T(), result.NetAmount.Equal(decimal.NewFromInt(4275)), "net: %s", result.NetAmount)

	suite.mockStaffSvc.AssertExpectations(suite.T())
	suite.mockLoanRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePaymentAndMarkLoans")
}

func (suite *SettlementServiceTestSuite) TestPreviewSettlement_NegativeNetAllowed() {
	ctx := context.Background()
	heavyLoans := []domain.LoanRecord{
		{LoanID: uuid.NewString(), Staff: suite.staff, Amount: decimal.NewFromInt(9000)},
	}
	suite.mockStaffSvc.On("GetCompensationProfile", ctx, suite.staff).Return(&suite.profile, nil).Once()
	suite.mockLoanRepo.On("ListLoansByStaff", ctx, suite.staff, true).Return(heavyLoans, nil).Once()

	result, _, err := suite.service.PreviewSettlement(ctx, suite.staff, nil)

	assert.NoError(suite.T(), err, "a negative net is a valid preview")
	assert.True(suite.T(), result.NetAmount.IsNegative())
}

func (suite *SettlementServiceTestSuite) TestPreviewSettlement_Overrides() {
	ctx := context.Background()
	zero := decimal.Zero
	overrides := &domain.SettlementOverrides{TaxRate: &zero, PensionRate: &zero, OtherDeductions: &zero}
	suite.mockStaffSvc.On("GetCompensationProfile", ctx, suite.staff).Return(&suite.profile, nil).Once()
	suite.mockLoanRepo.On("ListLoansByStaff", ctx, suite.staff, true).Return([]domain.LoanRecord{}, nil).Once()

	result, _, err := suite.service.PreviewSettlement(ctx, suite.staff, overrides)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.NetAmount.Equal(decimal.NewFromInt(5500)), "net with all deductions overridden to zero: %s", result.NetAmount)
}

// --- SettlePayment ---

func (suite *SettlementServiceTestSuite) TestSettlePayment_Success() {
	ctx := context.Background()
	req := suite.settleRequest()
	expectedLoanIDs := []string{suite.unpaidLoans[0].LoanID, suite.unpaidLoans[1].LoanID}

	suite.mockStaffSvc.On("GetCompensationProfile", ctx, suite.staff).Return(&suite.profile, nil).Once()
	suite.mockLoanRepo.On("ListLoansByStaff", ctx, suite.staff, true).Return(suite.unpaidLoans, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentAndMarkLoans", ctx, mock.AnythingOfType("domain.PaymentRecord"), expectedLoanIDs).Return(nil).Once()

	payment, err := suite.service.SettlePayment(ctx, suite.staff, req, suite.actorUserID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), payment)
	assert.NotEmpty(suite.T(), payment.PaymentID)
	assert.Equal(suite.T(), suite.staff, payment.Staff)
	assert.Equal(suite.T(), domain.PaymentCompleted, payment.Status)
	assert.Equal(suite.T(), "2026-08", payment.SalaryPeriod)
	assert.True(suite.T(), payment.NetAmount.Equal(decimal.NewFromInt(4275)), "net: %s", payment.NetAmount)
	assert.True(suite.T(), payment.LoanDeduction.Equal(decimal.NewFromInt(300)), "loan deduction: %s", payment.LoanDeduction)
	assert.Equal(suite.T(), suite.actorUserID, payment.CreatedBy)

	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSettlePayment_NoUnpaidLoans() {
	ctx := context.Background()
	req := suite.settleRequest()

	suite.mockStaffSvc.On("GetCompensationProfile", ctx, suite.staff).Return(&suite.profile, nil).Once()
	suite.mockLoanRepo.On("ListLoansByStaff", ctx, suite.staff, true).Return([]domain.LoanRecord{}, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentAndMarkLoans", ctx, mock.AnythingOfType("domain.PaymentRecord"), []string{}).Return(nil).Once()

	payment, err := suite.service.SettlePayment(ctx, suite.staff, req, suite.actorUserID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), payment.LoanDeduction.IsZero())
	assert.True(suite.T(), payment.NetAmount.Equal(decimal.NewFromInt(4575)), "net without loans: %s", payment.NetAmount)
}

func (suite *SettlementServiceTestSuite) TestSettlePayment_NegativeNetRejected() {
	ctx := context.Background()
	req := suite.settleRequest()
	heavyLoans := []domain.LoanRecord{
		{LoanID: uuid.NewString(), Staff: suite.staff, Amount: decimal.NewFromInt(9000)},
	}

	suite.mockStaffSvc.On("GetCompensationProfile", ctx, suite.staff).Return(&suite.profile, nil).Once()
	suite.mockLoanRepo.On("ListLoansByStaff", ctx, suite.staff, true).Return(heavyLoans, nil).Once()

	payment, err := suite.service.SettlePayment(ctx, suite.staff, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSettlement)
	assert.Nil(suite.T(), payment)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePaymentAndMarkLoans")
}

func (suite *SettlementServiceTestSuite) TestSettlePayment_InvalidOverrideRejected() {
	ctx := context.Background()
	req := suite.settleRequest()
	badRate := decimal.NewFromInt(150)
	req.Overrides = &dto.SettlementOverridesRequest{TaxRate: &badRate}

	suite.mockStaffSvc.On("GetCompensationProfile", ctx, suite.staff).Return(&suite.profile, nil).Once()
	suite.mockLoanRepo.On("ListLoansByStaff", ctx, suite.staff, true).Return([]domain.LoanRecord{}, nil).Once()

	payment, err := suite.service.SettlePayment(ctx, suite.staff, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSettlement)
	assert.Nil(suite.T(), payment)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePaymentAndMarkLoans")
}

func (suite *SettlementServiceTestSuite) TestSettlePayment_UnknownPaymentMethod() {
	ctx := context.Background()
	req := suite.settleRequest()
	req.PaymentMethod = "Barter"

	payment, err := suite.service.SettlePayment(ctx, suite.staff, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Nil(suite.T(), payment)
	suite.mockStaffSvc.AssertNotCalled(suite.T(), "GetCompensationProfile")
}

func (suite *SettlementServiceTestSuite) TestSettlePayment_ConcurrentModification() {
	ctx := context.Background()
	req := suite.settleRequest()

	suite.mockStaffSvc.On("GetCompensationProfile", ctx, suite.staff).Return(&suite.profile, nil).Once()
	suite.mockLoanRepo.On("ListLoansByStaff", ctx, suite.staff, true).Return(suite.unpaidLoans, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentAndMarkLoans", ctx, mock.AnythingOfType("domain.PaymentRecord"), mock.Anything).
		Return(apperrors.ErrConcurrentModification).Once()

	payment, err := suite.service.SettlePayment(ctx, suite.staff, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConcurrentModification)
	assert.Nil(suite.T(), payment)
}

func (suite *SettlementServiceTestSuite) TestSettlePayment_RepoFailure() {
	ctx := context.Background()
	req := suite.settleRequest()
	dbErr := errors.New("db connection lost")

	suite.mockStaffSvc.On("GetCompensationProfile", ctx, suite.staff).Return(&suite.profile, nil).Once()
	suite.mockLoanRepo.On("ListLoansByStaff", ctx, suite.staff, true).Return(suite.unpaidLoans, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentAndMarkLoans", ctx, mock.AnythingOfType("domain.PaymentRecord"), mock.Anything).
		Return(dbErr).Once()

	payment, err := suite.service.SettlePayment(ctx, suite.staff, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, dbErr)
	assert.Nil(suite.T(), payment)
}

func (suite *SettlementServiceTestSuite) TestSettlePayment_MissingProfile() {
	ctx := context.Background()
	req := suite.settleRequest()

	suite.mockStaffSvc.On("GetCompensationProfile", ctx, suite.staff).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.SettlePayment(ctx, suite.staff, req, suite.actorUserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	assert.Nil(suite.T(), payment)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "ListLoansByStaff")
}

// --- ListPayments ---

func (suite *SettlementServiceTestSuite) TestListPayments_DefaultLimit() {
	ctx := context.Background()
	suite.mockStaffSvc.On("ResolveStaff", ctx, suite.staff).Return(nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByStaff", ctx, suite.staff, 20, (*string)(nil)).
		Return([]domain.PaymentRecord{}, nil, nil).Once()

	resp, err := suite.service.ListPayments(ctx, suite.staff, dto.ListPaymentsParams{})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Nil(suite.T(), resp.NextToken)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestListPayments_TokenPassthrough() {
	ctx := context.Background()
	token := "opaque-cursor"
	suite.mockStaffSvc.On("ResolveStaff", ctx, suite.staff).Return(nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByStaff", ctx, suite.staff, 5, &token).
		Return([]domain.PaymentRecord{{PaymentID: uuid.NewString()}}, "next-cursor", nil).Once()

	resp, err := suite.service.ListPayments(ctx, suite.staff, dto.ListPaymentsParams{Limit: 5, NextToken: &token})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Payments, 1)
	assert.NotNil(suite.T(), resp.NextToken)
	assert.Equal(suite.T(), "next-cursor", *resp.NextToken)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
