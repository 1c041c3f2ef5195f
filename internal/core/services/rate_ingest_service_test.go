package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fxease/currency_exchange_app/internal/apperrors"
	"github.com/fxease/currency_exchange_app/internal/core/domain"
	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
	"github.com/fxease/currency_exchange_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchLatestRates(ctx context.Context) (*domain.RateBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateBatch), args.Error(1)
}

func (m *MockRateProvider) FetchCurrencies(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func catalog() []domain.Currency {
	return []domain.Currency{
		{Code: "CZK", Name: "Czech Republic Koruna", Alias: "Czech koruna"},
		{Code: "EUR", Name: "Euro", Alias: "Euro"},
		{Code: "PLN", Name: "Polish Zloty", Alias: "Polish złoty"},
		{Code: "USD", Name: "United States Dollar", Alias: "US dollar"},
	}
}

func fetchedBatch() *domain.RateBatch {
	rates := make(map[string]decimal.Decimal, len(batchRates))
	for code, rate := range batchRates {
		rates[code] = rate
	}
	return &domain.RateBatch{
		Base:      baseCode,
		Timestamp: batchTimestamp,
		Rates:     rates,
	}
}

// --- Test Suite ---
type RateIngestServiceTestSuite struct {
	suite.Suite
	mockProvider     *MockRateProvider
	mockRateRepo     *MockRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.RateIngestSvcFacade
}

func (suite *RateIngestServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockRateProvider)
	suite.mockRateRepo = new(MockRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewRateIngestService(
		suite.mockProvider,
		suite.mockRateRepo,
		suite.mockCurrencyRepo,
		baseCode,
		3,
		time.Millisecond,
	)
}

// --- Test Cases ---

func (suite *RateIngestServiceTestSuite) TestIngestLatest_Success() {
	ctx := context.Background()

	suite.mockProvider.On("FetchLatestRates", ctx).Return(fetchedBatch(), nil).Once()
	suite.mockRateRepo.On("ExistsBatchAt", ctx, batchTimestamp).Return(false, nil).Once()
	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return(catalog(), nil).Once()
	suite.mockRateRepo.On("SaveRateBatch", ctx, mock.MatchedBy(func(records []domain.RateRecord) bool {
		if len(records) != 3 { // every known currency except the base
			return false
		}
		for _, rec := range records {
			if rec.Timestamp != batchTimestamp {
				return false
			}
			if rec.CurrencyCode == baseCode {
				return false
			}
			if !rec.Rate.Equal(batchRates[rec.CurrencyCode]) {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	ingested, err := suite.service.IngestLatest(ctx)

	suite.Require().NoError(err)
	suite.True(ingested)
	suite.mockProvider.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *RateIngestServiceTestSuite) TestIngestLatest_AlreadyIngested() {
	ctx := context.Background()

	suite.mockProvider.On("FetchLatestRates", ctx).Return(fetchedBatch(), nil).Once()
	suite.mockRateRepo.On("ExistsBatchAt", ctx, batchTimestamp).Return(true, nil).Once()

	ingested, err := suite.service.IngestLatest(ctx)

	suite.Require().NoError(err)
	suite.False(ingested, "re-ingesting a seen timestamp must be a no-op")
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRateBatch", mock.Anything, mock.Anything)
}

func (suite *RateIngestServiceTestSuite) TestIngestLatest_MissingCurrencyDiscardsBatch() {
	ctx := context.Background()
	batch := fetchedBatch()
	delete(batch.Rates, "PLN")

	suite.mockProvider.On("FetchLatestRates", ctx).Return(batch, nil).Once()
	suite.mockRateRepo.On("ExistsBatchAt", ctx, batchTimestamp).Return(false, nil).Once()
	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return(catalog(), nil).Once()

	ingested, err := suite.service.IngestLatest(ctx)

	suite.Require().Error(err)
	suite.False(ingested)
	suite.ErrorIs(err, apperrors.ErrIncompleteBatch)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRateBatch", mock.Anything, mock.Anything)
}

func (suite *RateIngestServiceTestSuite) TestIngestLatest_WrongBase() {
	ctx := context.Background()
	batch := fetchedBatch()
	batch.Base = "EUR"

	suite.mockProvider.On("FetchLatestRates", ctx).Return(batch, nil).Once()

	ingested, err := suite.service.IngestLatest(ctx)

	suite.Require().Error(err)
	suite.False(ingested)
	suite.ErrorIs(err, apperrors.ErrIncompleteBatch)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRateBatch", mock.Anything, mock.Anything)
}

func (suite *RateIngestServiceTestSuite) TestIngestLatest_RetryBudgetExhausted() {
	ctx := context.Background()

	suite.mockProvider.On("FetchLatestRates", ctx).Return(nil, context.DeadlineExceeded).Times(3)

	ingested, err := suite.service.IngestLatest(ctx)

	suite.Require().Error(err)
	suite.False(ingested)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.mockProvider.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRateBatch", mock.Anything, mock.Anything)
}

func (suite *RateIngestServiceTestSuite) TestIngestLatest_RecoversWithinRetryBudget() {
	ctx := context.Background()

	suite.mockProvider.On("FetchLatestRates", ctx).Return(nil, context.DeadlineExceeded).Twice()
	suite.mockProvider.On("FetchLatestRates", ctx).Return(fetchedBatch(), nil).Once()
	suite.mockRateRepo.On("ExistsBatchAt", ctx, batchTimestamp).Return(true, nil).Once()

	ingested, err := suite.service.IngestLatest(ctx)

	suite.Require().NoError(err)
	suite.False(ingested)
	suite.mockProvider.AssertExpectations(suite.T())
}

func TestRateIngestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateIngestServiceTestSuite))
}
