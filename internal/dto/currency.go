package dto

import "github.com/fxease/currency_exchange_app/internal/core/domain"

// CurrencyResponse defines the data returned for a catalog currency.
type CurrencyResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Alias string `json:"alias"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:  curr.Code,
		Name:  curr.Name,
		Alias: curr.Alias,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr) // Reuse the single converter
	}
	return res
}
