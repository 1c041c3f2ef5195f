package services_test

import (
	"context"
	"testing"

	"github.com/fxease/currency_exchange_app/internal/apperrors"
	"github.com/fxease/currency_exchange_app/internal/core/domain"
	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
	"github.com/fxease/currency_exchange_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const baseCode = "USD"

// Reference batch used across service tests.
var (
	batchTimestamp = int64(1575309600)
	batchRates     = map[string]decimal.Decimal{
		"CZK": decimal.RequireFromString("23.0653"),
		"EUR": decimal.RequireFromString("0.9029"),
		"PLN": decimal.RequireFromString("3.871849"),
	}
)

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindLatestRates(ctx context.Context, currencyCodes []string) ([]domain.RateRecord, error) {
	args := m.Called(ctx, currencyCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateRecord), args.Error(1)
}

func (m *MockRateRepository) ExistsBatchAt(ctx context.Context, timestamp int64) (bool, error) {
	args := m.Called(ctx, timestamp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRateRepository) SaveRateBatch(ctx context.Context, records []domain.RateRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func record(code string, ts int64) domain.RateRecord {
	return domain.RateRecord{CurrencyCode: code, Timestamp: ts, Rate: batchRates[code]}
}

// --- Test Suite ---
type PairResolverTestSuite struct {
	suite.Suite
	mockRepo *MockRateRepository
	resolver portssvc.PairResolverSvc
}

func (suite *PairResolverTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateRepository)
	suite.resolver = services.NewPairResolver(suite.mockRepo, baseCode)
}

// --- Test Cases ---

func (suite *PairResolverTestSuite) TestResolve_TwoNonBaseCodes() {
	ctx := context.Background()

	suite.mockRepo.On("FindLatestRates", ctx, []string{"EUR", "CZK"}).
		Return([]domain.RateRecord{record("CZK", batchTimestamp), record("EUR", batchTimestamp)}, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "EUR", "CZK")

	suite.Require().NoError(err)
	suite.True(pair.SourceRate.Equal(batchRates["EUR"]))
	suite.True(pair.TargetRate.Equal(batchRates["CZK"]))
	suite.Equal(batchTimestamp, pair.Timestamp)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairResolverTestSuite) TestResolve_BaseAsSource() {
	ctx := context.Background()

	suite.mockRepo.On("FindLatestRates", ctx, []string{"CZK"}).
		Return([]domain.RateRecord{record("CZK", batchTimestamp)}, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, baseCode, "CZK")

	suite.Require().NoError(err)
	suite.True(pair.SourceRate.Equal(decimal.NewFromInt(1)), "base side rate must be exactly 1")
	suite.True(pair.TargetRate.Equal(batchRates["CZK"]))
	suite.Equal(batchTimestamp, pair.Timestamp)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairResolverTestSuite) TestResolve_BaseAsTarget() {
	ctx := context.Background()

	suite.mockRepo.On("FindLatestRates", ctx, []string{"EUR"}).
		Return([]domain.RateRecord{record("EUR", batchTimestamp)}, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "EUR", baseCode)

	suite.Require().NoError(err)
	suite.True(pair.SourceRate.Equal(batchRates["EUR"]))
	suite.True(pair.TargetRate.Equal(decimal.NewFromInt(1)), "base side rate must be exactly 1")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairResolverTestSuite) TestResolve_BaseToBase_NoStoreAccess() {
	ctx := context.Background()

	pair, err := suite.resolver.Resolve(ctx, baseCode, baseCode)

	suite.Require().NoError(err)
	suite.True(pair.SourceRate.Equal(decimal.NewFromInt(1)))
	suite.True(pair.TargetRate.Equal(decimal.NewFromInt(1)))
	suite.NotZero(pair.Timestamp)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindLatestRates", mock.Anything, mock.Anything)
}

func (suite *PairResolverTestSuite) TestResolve_UnknownCode() {
	ctx := context.Background()

	// AAA has no stored rate: only CZK comes back.
	suite.mockRepo.On("FindLatestRates", ctx, []string{"AAA", "CZK"}).
		Return([]domain.RateRecord{record("CZK", batchTimestamp)}, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "AAA", "CZK")

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrInvalidCurrency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairResolverTestSuite) TestResolve_EmptyStore() {
	ctx := context.Background()

	suite.mockRepo.On("FindLatestRates", ctx, []string{"EUR", "CZK"}).
		Return([]domain.RateRecord{}, nil).Once()

	_, err := suite.resolver.Resolve(ctx, "EUR", "CZK")

	suite.ErrorIs(err, apperrors.ErrInvalidCurrency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairResolverTestSuite) TestResolve_TornBatch() {
	ctx := context.Background()

	// EUR and CZK latest records come from different ingestion batches.
	suite.mockRepo.On("FindLatestRates", ctx, []string{"EUR", "CZK"}).
		Return([]domain.RateRecord{record("CZK", batchTimestamp), record("EUR", batchTimestamp+86400)}, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "EUR", "CZK")

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrDataInconsistency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairResolverTestSuite) TestResolve_SingleLookupSkipsConsistencyCheck() {
	ctx := context.Background()

	// One side is the base: nothing to compare the timestamp against.
	suite.mockRepo.On("FindLatestRates", ctx, []string{"PLN"}).
		Return([]domain.RateRecord{record("PLN", batchTimestamp)}, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, baseCode, "PLN")

	suite.Require().NoError(err)
	suite.Equal(batchTimestamp, pair.Timestamp)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairResolverTestSuite) TestResolve_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FindLatestRates", ctx, []string{"EUR", "CZK"}).
		Return(nil, context.DeadlineExceeded).Once()

	_, err := suite.resolver.Resolve(ctx, "EUR", "CZK")

	suite.Require().Error(err)
	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PairResolverTestSuite) TestResolve_RoundTripRate() {
	ctx := context.Background()

	suite.mockRepo.On("FindLatestRates", ctx, []string{"EUR", "CZK"}).
		Return([]domain.RateRecord{record("CZK", batchTimestamp), record("EUR", batchTimestamp)}, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "EUR", "CZK")

	suite.Require().NoError(err)
	expected := batchRates["CZK"].Div(batchRates["EUR"])
	suite.True(pair.Rate().Equal(expected), "pair rate must equal rates[target]/rates[source]")
}

func TestPairResolverTestSuite(t *testing.T) {
	suite.Run(t, new(PairResolverTestSuite))
}
