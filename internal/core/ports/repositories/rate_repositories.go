package repositories

import (
	"context"

	"github.com/fxease/currency_exchange_app/internal/core/domain"
)

// RateReader defines read operations for stored currency rates
type RateReader interface {
	// FindLatestRates retrieves, for each requested code, the most recent
	// RateRecord (highest timestamp). Codes without any record are simply
	// absent from the result; callers decide whether that is an error.
	FindLatestRates(ctx context.Context, currencyCodes []string) ([]domain.RateRecord, error)
}

// RateWriter defines write operations for stored currency rates
type RateWriter interface {
	// ExistsBatchAt reports whether any RateRecord was already written with
	// the given observation timestamp.
	ExistsBatchAt(ctx context.Context, timestamp int64) (bool, error)

	// SaveRateBatch persists all records of one ingestion batch in a single
	// transaction. Either every record becomes visible or none does.
	SaveRateBatch(ctx context.Context, records []domain.RateRecord) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
// This is a facade for clients that need access to all operations
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
