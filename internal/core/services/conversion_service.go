package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fxease/currency_exchange_app/internal/apperrors"
	"github.com/fxease/currency_exchange_app/internal/core/domain"
	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// conversionService converts amounts between currencies using the latest
// stored rates. It is read-only and safe for concurrent use.
type conversionService struct {
	resolver portssvc.PairResolverSvc
	now      func() time.Time
}

// NewConversionService creates a ConversionSvcFacade backed by the given resolver.
func NewConversionService(resolver portssvc.PairResolverSvc) portssvc.ConversionSvcFacade {
	return &conversionService{
		resolver: resolver,
		now:      time.Now,
	}
}

func (s *conversionService) Convert(ctx context.Context, rawAmount, sourceCode, targetCode string) (*domain.Conversion, error) {
	// Clients send both ',' and '.' as decimal separator.
	amount, err := decimal.NewFromString(strings.ReplaceAll(rawAmount, ",", "."))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidAmount, rawAmount)
	}

	// Same-currency shortcut: rate is exactly 1 and no store access
	// happens, so the conversion cannot fail even with an empty store.
	if sourceCode == targetCode {
		return &domain.Conversion{
			Amount:     amount,
			SourceCode: sourceCode,
			TargetCode: targetCode,
			Rate:       decimal.NewFromInt(1),
			Timestamp:  s.now().Unix(),
			Result:     amount,
		}, nil
	}

	pair, err := s.resolver.Resolve(ctx, sourceCode, targetCode)
	if err != nil {
		return nil, err
	}

	rate := pair.Rate()
	return &domain.Conversion{
		Amount:     amount,
		SourceCode: sourceCode,
		TargetCode: targetCode,
		Rate:       rate,
		Timestamp:  pair.Timestamp,
		Result:     amount.Mul(rate),
	}, nil
}
