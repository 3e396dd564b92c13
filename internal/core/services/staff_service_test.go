package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
)

// MockStaffRepository is a mock for StaffRepositoryFacade.
type MockStaffRepository struct {
	mock.Mock
}

var _ portsrepo.StaffRepositoryFacade = (*MockStaffRepository)(nil)

func (m *MockStaffRepository) FindStaffMemberByID(ctx context.Context, staffMemberID string) (*domain.StaffMember, error) {
	args := m.Called(ctx, staffMemberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) ListStaffMembers(ctx context.Context, limit int, offset int) ([]domain.StaffMember, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) SaveStaffMember(ctx context.Context, member domain.StaffMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockStaffRepository) UpdateStaffMember(ctx context.Context, member domain.StaffMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockStaffRepository) MarkStaffMemberDeleted(ctx context.Context, staffMemberID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, staffMemberID, deletedBy, deletedAt)
	return args.Error(0)
}

func (m *MockStaffRepository) FindCurrentProfile(ctx context.Context, staff domain.StaffRef) (*domain.CompensationProfile, error) {
	args := m.Called(ctx, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompensationProfile), args.Error(1)
}

func (m *MockStaffRepository) ListProfileVersions(ctx context.Context, staff domain.StaffRef) ([]domain.CompensationProfile, error) {
	args := m.Called(ctx, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompensationProfile), args.Error(1)
}

func (m *MockStaffRepository) SupersedeProfile(ctx context.Context, profile domain.CompensationProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockUserRepository is a mock for UserRepositoryFacade.
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedBy, deletedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

type StaffServiceTestSuite struct {
	suite.Suite
	mockStaffRepo *MockStaffRepository
	mockUserRepo  *MockUserRepository
	service       portssvc.StaffSvcFacade
	ctx           context.Context
	staff         domain.StaffRef
	member        *domain.StaffMember
}

func (s *StaffServiceTestSuite) SetupTest() {
	s.mockStaffRepo = new(MockStaffRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewStaffService(s.mockStaffRepo, s.mockUserRepo)
	s.ctx = context.Background()
	s.staff = domain.StaffRef{Kind: domain.StaffKindStaffMember, ID: "staff-1"}
	s.member = &domain.StaffMember{StaffMemberID: "staff-1", Name: "Amina", Position: "Baker", IsActive: true}
}

func (s *StaffServiceTestSuite) salaryRequest() dto.UpdateSalaryStructureRequest {
	return dto.UpdateSalaryStructureRequest{
		BaseSalary:      decimal.NewFromInt(150000),
		Allowances:      decimal.NewFromInt(20000),
		OtherDeductions: decimal.NewFromInt(3000),
		TaxRate:         decimal.NewFromInt(5),
		PensionRate:     decimal.NewFromInt(8),
		SalaryType:      domain.SalaryMonthly,
	}
}

func (s *StaffServiceTestSuite) TestUpdateSalaryStructure_FirstVersion() {
	s.mockStaffRepo.On("FindStaffMemberByID", s.ctx, "staff-1").Return(s.member, nil)
	s.mockStaffRepo.On("FindCurrentProfile", s.ctx, s.staff).Return(nil, apperrors.ErrNotFound)
	s.mockStaffRepo.On("SupersedeProfile", s.ctx, mock.AnythingOfType("domain.CompensationProfile")).Return(nil)

	profile, err := s.service.UpdateSalaryStructure(s.ctx, s.staff, s.salaryRequest(), "admin-1")

	s.Require().NoError(err)
	s.Equal(1, profile.Version)
	s.True(profile.IsCurrent)
	s.Equal("admin-1", profile.CreatedBy)
	s.mockStaffRepo.AssertExpectations(s.T())
}

func (s *StaffServiceTestSuite) TestUpdateSalaryStructure_SupersedesCurrent() {
	current := &domain.CompensationProfile{
		ProfileID:  "prof-3",
		Staff:      s.staff,
		BaseSalary: decimal.NewFromInt(120000),
		Version:    3,
		IsCurrent:  true,
	}
	s.mockStaffRepo.On("FindStaffMemberByID", s.ctx, "staff-1").Return(s.member, nil)
	s.mockStaffRepo.On("FindCurrentProfile", s.ctx, s.staff).Return(current, nil)
	s.mockStaffRepo.On("SupersedeProfile", s.ctx, mock.MatchedBy(func(p domain.CompensationProfile) bool {
		return p.Version == 4 && p.IsCurrent && p.ProfileID != current.ProfileID &&
			p.BaseSalary.Equal(decimal.NewFromInt(150000))
	})).Return(nil)

	profile, err := s.service.UpdateSalaryStructure(s.ctx, s.staff, s.salaryRequest(), "admin-1")

	s.Require().NoError(err)
	s.Equal(4, profile.Version)
	s.mockStaffRepo.AssertExpectations(s.T())
}

func (s *StaffServiceTestSuite) TestUpdateSalaryStructure_RateOutOfRange() {
	req := s.salaryRequest()
	req.TaxRate = decimal.NewFromInt(120)
	s.mockStaffRepo.On("FindStaffMemberByID", s.ctx, "staff-1").Return(s.member, nil)

	_, err := s.service.UpdateSalaryStructure(s.ctx, s.staff, req, "admin-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockStaffRepo.AssertNotCalled(s.T(), "SupersedeProfile", mock.Anything, mock.Anything)
}

func (s *StaffServiceTestSuite) TestUpdateSalaryStructure_UnknownStaffKind() {
	badRef := domain.StaffRef{Kind: "contractor", ID: "c-1"}

	_, err := s.service.UpdateSalaryStructure(s.ctx, badRef, s.salaryRequest(), "admin-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockStaffRepo.AssertNotCalled(s.T(), "SupersedeProfile", mock.Anything, mock.Anything)
}

func (s *StaffServiceTestSuite) TestUpdateSalaryStructure_UserStaffResolvedViaUserRepo() {
	userRef := domain.StaffRef{Kind: domain.StaffKindUser, ID: "user-7"}
	s.mockUserRepo.On("FindUserByID", s.ctx, "user-7").Return(&domain.User{UserID: "user-7"}, nil)
	s.mockStaffRepo.On("FindCurrentProfile", s.ctx, userRef).Return(nil, apperrors.ErrNotFound)
	s.mockStaffRepo.On("SupersedeProfile", s.ctx, mock.AnythingOfType("domain.CompensationProfile")).Return(nil)

	profile, err := s.service.UpdateSalaryStructure(s.ctx, userRef, s.salaryRequest(), "admin-1")

	s.Require().NoError(err)
	s.Equal(userRef, profile.Staff)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *StaffServiceTestSuite) TestListSalaryStructureHistory() {
	versions := []domain.CompensationProfile{
		{ProfileID: "prof-2", Version: 2, IsCurrent: true},
		{ProfileID: "prof-1", Version: 1, IsCurrent: false},
	}
	s.mockStaffRepo.On("FindStaffMemberByID", s.ctx, "staff-1").Return(s.member, nil)
	s.mockStaffRepo.On("ListProfileVersions", s.ctx, s.staff).Return(versions, nil)

	history, err := s.service.ListSalaryStructureHistory(s.ctx, s.staff)

	s.Require().NoError(err)
	s.Len(history, 2)
	s.True(history[0].IsCurrent)
	s.False(history[1].IsCurrent)
}

func (s *StaffServiceTestSuite) TestGetCompensationProfile_NotFound() {
	s.mockStaffRepo.On("FindStaffMemberByID", s.ctx, "staff-1").Return(s.member, nil)
	s.mockStaffRepo.On("FindCurrentProfile", s.ctx, s.staff).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.GetCompensationProfile(s.ctx, s.staff)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestStaffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}
