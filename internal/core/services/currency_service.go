package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxease/currency_exchange_app/internal/apperrors"
	"github.com/fxease/currency_exchange_app/internal/core/domain"
	portsprov "github.com/fxease/currency_exchange_app/internal/core/ports/providers"
	portsrepo "github.com/fxease/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
)

// currencyService serves the currency catalog and keeps it in sync with
// the provider's list, restricted to the configured allow-list.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	provider     portsprov.RateProvider
	// activeCurrencies maps the provider's full currency name to the
	// customer-facing alias. Only names present here are ever synced.
	activeCurrencies map[string]string
}

// NewCurrencyService creates a CurrencySvcFacade.
func NewCurrencyService(
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	provider portsprov.RateProvider,
	activeCurrencies map[string]string,
) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo:     currencyRepo,
		provider:         provider,
		activeCurrencies: activeCurrencies,
	}
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code %s: %w", currencyCode, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// SyncCurrencies intersects the provider's currency list with the
// allow-list and inserts any not-yet-known currency. The catalog is
// append-only: existing entries are never touched. Returns the number of
// currencies created.
func (s *currencyService) SyncCurrencies(ctx context.Context) (int, error) {
	listed, err := s.provider.FetchCurrencies(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch provider currency list: %w", err)
	}

	created := 0
	for code, name := range listed {
		alias, active := s.activeCurrencies[name]
		if !active {
			continue
		}

		_, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
		if err == nil {
			continue // already known
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return created, fmt.Errorf("failed to check currency %s: %w", code, err)
		}

		currency := domain.Currency{Code: code, Name: name, Alias: alias}
		if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue // raced with another sync, fine
			}
			return created, fmt.Errorf("failed to save currency %s: %w", code, err)
		}
		created++
	}

	return created, nil
}
