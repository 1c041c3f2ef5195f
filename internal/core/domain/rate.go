package domain

import "github.com/shopspring/decimal"

// RateRecord stores the rate of one currency against the base currency as
// observed at a specific moment: 1 unit of base equals Rate units of
// CurrencyCode. All records written in one ingestion cycle share a
// timestamp; "latest" is the record with the highest timestamp per code.
type RateRecord struct {
	CurrencyCode string          `json:"currencyCode"` // FK -> Currency.code
	Timestamp    int64           `json:"timestamp"`    // epoch seconds, provider's observation time
	Rate         decimal.Decimal `json:"rate"`
}

// RateBatch is one fetch from the upstream provider: all rates against
// Base observed at Timestamp.
type RateBatch struct {
	Base      string                     `json:"base"`
	Timestamp int64                      `json:"timestamp"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

// PairRate holds the normalized inputs to a conversion. The base
// currency's own rate is exactly 1. Both rates carry the same timestamp;
// the resolver guarantees this before a PairRate is ever constructed.
type PairRate struct {
	SourceRate decimal.Decimal `json:"sourceRate"`
	TargetRate decimal.Decimal `json:"targetRate"`
	Timestamp  int64           `json:"timestamp"`
}

// Rate returns the effective conversion rate from source to target.
func (p PairRate) Rate() decimal.Decimal {
	return p.TargetRate.Div(p.SourceRate)
}
