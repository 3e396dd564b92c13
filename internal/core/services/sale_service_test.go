package services_test

import (
	"context"
	"testing"
	"time"

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

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.SaleRecord) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

// --- Test Suite Setup ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo *MockSaleRepository
	service      portssvc.SaleSvcFacade
	actorUserID  string
}

func (s *SaleServiceTestSuite) SetupTest() {
	s.mockSaleRepo = new(MockSaleRepository)
	s.service = services.NewSaleService(s.mockSaleRepo)
	s.actorUserID = "user-counter-1"
}

func TestSaleServiceSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

// --- RecordSale ---

func (s *SaleServiceTestSuite) TestRecordSale_ComputesTotals() {
	req := dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ItemName: "Sourdough Loaf", Quantity: 3, UnitPrice: decimal.NewFromFloat(4.50)},
			{ItemName: "Croissant", Quantity: 2, UnitPrice: decimal.NewFromFloat(2.25)},
		},
		PaymentMethod: domain.PaymentCash,
		SaleDate:      time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	s.mockSaleRepo.On("SaveSale", mock.Anything, mock.MatchedBy(func(sale domain.SaleRecord) bool {
		return sale.TotalAmount.Equal(decimal.NewFromFloat(18.00)) &&
			len(sale.Items) == 2 &&
			sale.Items[0].LineTotal.Equal(decimal.NewFromFloat(13.50)) &&
			sale.Items[1].LineTotal.Equal(decimal.NewFromFloat(4.50)) &&
			sale.Items[0].SaleID == sale.SaleID &&
			sale.Items[1].SaleID == sale.SaleID &&
			sale.CreatedBy == s.actorUserID
	})).Return(nil).Once()

	sale, err := s.service.RecordSale(context.Background(), req, s.actorUserID)

	s.Require().NoError(err)
	s.Require().NotNil(sale)
	assert.True(s.T(), sale.TotalAmount.Equal(decimal.NewFromFloat(18.00)))
	assert.NotEmpty(s.T(), sale.SaleID)
	s.mockSaleRepo.AssertExpectations(s.T())
}

func (s *SaleServiceTestSuite) TestRecordSale_IgnoresClientTotals() {
	// A tampered unit price still flows through the computed line total.
	req := dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ItemName: "Baguette", Quantity: 4, UnitPrice: decimal.NewFromFloat(1.333)},
		},
		PaymentMethod: domain.PaymentMobileMoney,
		SaleDate:      time.Now(),
	}

	s.mockSaleRepo.On("SaveSale", mock.Anything, mock.MatchedBy(func(sale domain.SaleRecord) bool {
		// 4 * 1.333 = 5.332, rounded to 5.33
		return sale.Items[0].LineTotal.Equal(decimal.NewFromFloat(5.33)) &&
			sale.TotalAmount.Equal(decimal.NewFromFloat(5.33))
	})).Return(nil).Once()

	_, err := s.service.RecordSale(context.Background(), req, s.actorUserID)

	s.Require().NoError(err)
	s.mockSaleRepo.AssertExpectations(s.T())
}

func (s *SaleServiceTestSuite) TestRecordSale_EmptyCart() {
	req := dto.RecordSaleRequest{
		Items:         []dto.SaleItemRequest{},
		PaymentMethod: domain.PaymentCash,
		SaleDate:      time.Now(),
	}

	_, err := s.service.RecordSale(context.Background(), req, s.actorUserID)

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.mockSaleRepo.AssertNotCalled(s.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (s *SaleServiceTestSuite) TestRecordSale_UnknownPaymentMethod() {
	req := dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ItemName: "Rye Loaf", Quantity: 1, UnitPrice: decimal.NewFromFloat(5.00)},
		},
		PaymentMethod: "Barter",
		SaleDate:      time.Now(),
	}

	_, err := s.service.RecordSale(context.Background(), req, s.actorUserID)

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.mockSaleRepo.AssertNotCalled(s.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (s *SaleServiceTestSuite) TestRecordSale_NegativeUnitPrice() {
	req := dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ItemName: "Bun", Quantity: 2, UnitPrice: decimal.NewFromFloat(-0.50)},
		},
		PaymentMethod: domain.PaymentCash,
		SaleDate:      time.Now(),
	}

	_, err := s.service.RecordSale(context.Background(), req, s.actorUserID)

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.mockSaleRepo.AssertNotCalled(s.T(), "SaveSale", mock.Anything, mock.Anything)
}

// --- ListSales ---

func (s *SaleServiceTestSuite) TestListSales_DefaultsToCurrentMonth() {
	s.mockSaleRepo.On("ListSales", mock.Anything,
		mock.MatchedBy(func(from time.Time) bool { return from.Day() == 1 }),
		mock.Anything, 20, 0).
		Return([]domain.SaleRecord{}, nil).Once()

	sales, err := s.service.ListSales(context.Background(), dto.ListSalesParams{})

	s.Require().NoError(err)
	assert.Empty(s.T(), sales)
	s.mockSaleRepo.AssertExpectations(s.T())
}

func (s *SaleServiceTestSuite) TestListSales_RejectsInvertedWindow() {
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.service.ListSales(context.Background(), dto.ListSalesParams{From: &from, To: &to})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.mockSaleRepo.AssertNotCalled(s.T(), "ListSales", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
