package providers

import (
	"context"

	"github.com/fxease/currency_exchange_app/internal/core/domain"
)

// RateProvider is the outbound port to the upstream exchange-rate service.
type RateProvider interface {
	// FetchLatestRates returns the provider's current rates against its
	// base currency, stamped with the provider's observation time.
	FetchLatestRates(ctx context.Context) (*domain.RateBatch, error)

	// FetchCurrencies returns the provider's full currency list as a
	// code -> full name mapping.
	FetchCurrencies(ctx context.Context) (map[string]string, error)
}
