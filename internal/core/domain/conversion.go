package domain

import "github.com/shopspring/decimal"

// Conversion is the outcome of converting an amount between two currencies.
type Conversion struct {
	Amount     decimal.Decimal `json:"amount"`
	SourceCode string          `json:"sourceCode"`
	TargetCode string          `json:"targetCode"`
	Rate       decimal.Decimal `json:"rate"`
	Timestamp  int64           `json:"timestamp"` // observation time of the rates used
	Result     decimal.Decimal `json:"result"`
}
