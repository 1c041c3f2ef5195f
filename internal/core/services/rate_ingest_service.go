package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fxease/currency_exchange_app/internal/apperrors"
	"github.com/fxease/currency_exchange_app/internal/core/domain"
	portsprov "github.com/fxease/currency_exchange_app/internal/core/ports/providers"
	portsrepo "github.com/fxease/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
)

// rateIngestService fetches fresh rates from the provider and stores them
// as one atomic batch. It runs on the scheduled ingestion path only, never
// on a request-serving path.
type rateIngestService struct {
	provider     portsprov.RateProvider
	rateRepo     portsrepo.RateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	baseCode     string
	maxRetries   int
	retryPause   time.Duration
}

// NewRateIngestService creates a RateIngestSvcFacade.
func NewRateIngestService(
	provider portsprov.RateProvider,
	rateRepo portsrepo.RateRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	baseCode string,
	maxRetries int,
	retryPause time.Duration,
) portssvc.RateIngestSvcFacade {
	return &rateIngestService{
		provider:     provider,
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
		baseCode:     baseCode,
		maxRetries:   maxRetries,
		retryPause:   retryPause,
	}
}

func (s *rateIngestService) IngestLatest(ctx context.Context) (bool, error) {
	batch, err := s.fetchWithRetry(ctx)
	if err != nil {
		return false, err
	}

	if batch.Base != s.baseCode {
		return false, fmt.Errorf("%w: provider base %s, expected %s", apperrors.ErrIncompleteBatch, batch.Base, s.baseCode)
	}

	// Idempotent re-ingestion guard: a batch with this timestamp was
	// already written, nothing to do.
	exists, err := s.rateRepo.ExistsBatchAt(ctx, batch.Timestamp)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing batch at %d: %w", batch.Timestamp, err)
	}
	if exists {
		return false, nil
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list known currencies: %w", err)
	}

	// Completeness guard: every known currency except the base must be in
	// the fetched data, otherwise the whole batch is discarded.
	records := make([]domain.RateRecord, 0, len(currencies))
	for _, currency := range currencies {
		if currency.Code == s.baseCode {
			continue
		}
		rate, ok := batch.Rates[currency.Code]
		if !ok {
			return false, fmt.Errorf("%w: no rate for %s at %d", apperrors.ErrIncompleteBatch, currency.Code, batch.Timestamp)
		}
		records = append(records, domain.RateRecord{
			CurrencyCode: currency.Code,
			Timestamp:    batch.Timestamp,
			Rate:         rate,
		})
	}

	if len(records) == 0 {
		return false, nil
	}

	// All-or-nothing: a crash mid-batch must leave either zero or all of
	// the batch's records visible to readers.
	if err := s.rateRepo.SaveRateBatch(ctx, records); err != nil {
		return false, fmt.Errorf("failed to save rate batch at %d: %w", batch.Timestamp, err)
	}

	return true, nil
}

// fetchWithRetry calls the provider up to maxRetries times with a fixed
// pause between attempts. The pause honors ctx so shutdown is not blocked.
func (s *rateIngestService) fetchWithRetry(ctx context.Context) (*domain.RateBatch, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		batch, err := s.provider.FetchLatestRates(ctx)
		if err == nil {
			return batch, nil
		}
		lastErr = err

		if attempt == s.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryPause):
		}
	}
	return nil, fmt.Errorf("%w: %d attempts failed, last error: %v", apperrors.ErrUpstreamUnavailable, s.maxRetries, lastErr)
}
