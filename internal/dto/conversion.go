package dto

import "github.com/fxease/currency_exchange_app/internal/core/domain"

// ConvertPathParams binds the /convert/:amount/:source/:target path segments.
// Amount is kept raw: parsing (including the ','/'.' separator tolerance)
// belongs to the conversion service.
type ConvertPathParams struct {
	Amount string `uri:"amount" binding:"required"`
	Source string `uri:"source" binding:"required,currencycode"`
	Target string `uri:"target" binding:"required,currencycode"`
}

// ConvertRequestEcho echoes the parsed request back to the client.
type ConvertRequestEcho struct {
	Query  string  `json:"query"`
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

// ConvertMeta carries the rate and its observation timestamp.
type ConvertMeta struct {
	Timestamp int64   `json:"timestamp"`
	Rate      float64 `json:"rate"`
}

// ConvertResponse defines the data returned for a successful conversion.
type ConvertResponse struct {
	Request  ConvertRequestEcho `json:"request"`
	Meta     ConvertMeta        `json:"meta"`
	Response float64            `json:"response"`
}

// ErrorResponse is the stable error shape for the conversion API. Message
// is a machine-readable tag; Description is for humans.
type ErrorResponse struct {
	Error       bool   `json:"error"`
	Status      int    `json:"status"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// ToConvertResponse converts a domain.Conversion to ConvertResponse DTO
func ToConvertResponse(conv *domain.Conversion, query string) ConvertResponse {
	return ConvertResponse{
		Request: ConvertRequestEcho{
			Query:  query,
			Amount: conv.Amount.InexactFloat64(),
			From:   conv.SourceCode,
			To:     conv.TargetCode,
		},
		Meta: ConvertMeta{
			Timestamp: conv.Timestamp,
			Rate:      conv.Rate.InexactFloat64(),
		},
		Response: conv.Result.InexactFloat64(),
	}
}
