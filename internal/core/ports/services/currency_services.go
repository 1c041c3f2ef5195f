package services

import (
	"context"

	"github.com/fxease/currency_exchange_app/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for the currency catalog
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySyncSvc defines the catalog synchronization operation
type CurrencySyncSvc interface {
	// SyncCurrencies fetches the provider's currency list, intersects it
	// with the configured allow-list and inserts any not-yet-known
	// currency. Existing entries are never updated or removed.
	SyncCurrencies(ctx context.Context) (int, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencySyncSvc
}
