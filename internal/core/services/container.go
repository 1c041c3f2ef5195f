package services

import (
	portsprov "github.com/fxease/currency_exchange_app/internal/core/ports/providers"
	portsrepo "github.com/fxease/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
	"github.com/fxease/currency_exchange_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider portsprov.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo, provider, cfg.ActiveCurrencies)

	resolver := NewPairResolver(repos.RateRepo, cfg.BaseCurrencyCode)
	container.Conversion = NewConversionService(resolver)

	container.RateIngest = NewRateIngestService(
		provider,
		repos.RateRepo,
		repos.CurrencyRepo,
		cfg.BaseCurrencyCode,
		cfg.FetchMaxRetries,
		cfg.FetchRetryPause,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade   = (*currencyService)(nil)
	_ portssvc.ConversionSvcFacade = (*conversionService)(nil)
	_ portssvc.RateIngestSvcFacade = (*rateIngestService)(nil)
	_ portssvc.PairResolverSvc     = (*pairResolver)(nil)
)
