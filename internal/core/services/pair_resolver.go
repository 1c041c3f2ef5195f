package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fxease/currency_exchange_app/internal/apperrors"
	"github.com/fxease/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/fxease/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// pairResolver resolves the latest stored rates for a currency pair and
// validates them before any conversion arithmetic happens. Ingestion can
// die mid-batch under a process crash; the timestamp-equality check below
// is the sole defense against converting with mismatched-era rates.
type pairResolver struct {
	rateRepo portsrepo.RateReader
	baseCode string
	now      func() time.Time
}

// NewPairResolver creates a PairResolverSvc for the given base currency.
func NewPairResolver(rateRepo portsrepo.RateReader, baseCode string) portssvc.PairResolverSvc {
	return &pairResolver{
		rateRepo: rateRepo,
		baseCode: baseCode,
		now:      time.Now,
	}
}

func (r *pairResolver) Resolve(ctx context.Context, sourceCode, targetCode string) (*domain.PairRate, error) {
	// Working set: the pair minus the base currency. The base is implicitly
	// valid with rate 1 and never looked up. A set, so source == target
	// collapses to a single lookup.
	lookup := make([]string, 0, 2)
	for _, code := range []string{sourceCode, targetCode} {
		if code != r.baseCode && !contains(lookup, code) {
			lookup = append(lookup, code)
		}
	}

	one := decimal.NewFromInt(1)

	if len(lookup) == 0 {
		// Both sides are the base currency. Nothing to fetch, nothing that
		// can fail; the rates are current by definition.
		return &domain.PairRate{
			SourceRate: one,
			TargetRate: one,
			Timestamp:  r.now().Unix(),
		}, nil
	}

	records, err := r.rateRepo.FindLatestRates(ctx, lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest rates for pair %s/%s: %w", sourceCode, targetCode, err)
	}

	// Fewer records than requested codes means at least one side is
	// unknown or mistyped.
	if len(records) < len(lookup) {
		return nil, fmt.Errorf("%w: source %s or target %s has no stored rate", apperrors.ErrInvalidCurrency, sourceCode, targetCode)
	}

	// With two looked-up codes, both records must come from the same
	// ingestion batch. A single-code lookup has nothing to compare against.
	if len(records) > 1 && records[0].Timestamp != records[1].Timestamp {
		return nil, fmt.Errorf("%w: %s at %d vs %s at %d",
			apperrors.ErrDataInconsistency,
			records[0].CurrencyCode, records[0].Timestamp,
			records[1].CurrencyCode, records[1].Timestamp,
		)
	}

	rates := map[string]decimal.Decimal{r.baseCode: one}
	for _, rec := range records {
		rates[rec.CurrencyCode] = rec.Rate
	}

	return &domain.PairRate{
		SourceRate: rates[sourceCode],
		TargetRate: rates[targetCode],
		Timestamp:  records[0].Timestamp,
	}, nil
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
