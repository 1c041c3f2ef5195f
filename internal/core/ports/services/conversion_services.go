package services

import (
	"context"

	"github.com/fxease/currency_exchange_app/internal/core/domain"
)

// PairResolverSvc resolves the latest stored rates for a currency pair.
type PairResolverSvc interface {
	// Resolve returns the normalized rate tuple for the pair. It fails with
	// apperrors.ErrInvalidCurrency if either non-base code has no stored
	// rate, and with apperrors.ErrDataInconsistency if the two latest
	// records disagree on timestamp.
	Resolve(ctx context.Context, sourceCode, targetCode string) (*domain.PairRate, error)
}

// ConversionSvcFacade converts amounts between currencies.
type ConversionSvcFacade interface {
	// Convert parses rawAmount (accepting '.' or ',' as decimal separator)
	// and converts it from sourceCode to targetCode using the latest
	// stored rates. Fails with apperrors.ErrInvalidAmount on unparseable
	// input; resolver errors propagate unchanged.
	Convert(ctx context.Context, rawAmount, sourceCode, targetCode string) (*domain.Conversion, error)
}
