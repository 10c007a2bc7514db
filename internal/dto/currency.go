package dto

import (
	"time"

	"github.com/sokonihub/sokoni_gateway/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode   string  `json:"currencyCode"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Precision      int     `json:"precision"`
	SymbolPosition string  `json:"symbolPosition"`
	IsBase         bool    `json:"isBase"`
	RateToBase     float64 `json:"rateToBase"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:   curr.CurrencyCode,
		Symbol:         curr.Symbol,
		Name:           curr.Name,
		Precision:      curr.Precision,
		SymbolPosition: string(curr.SymbolPosition),
		IsBase:         curr.CurrencyCode == domain.BaseCurrencyCode,
		RateToBase:     curr.RateToBase,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}

// RateSnapshotResponse describes the rate snapshot currently serving conversions.
type RateSnapshotResponse struct {
	BaseCode  string             `json:"baseCode"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
	Stale     bool               `json:"stale"`
	LastError string             `json:"lastError,omitempty"`
}

// ConvertResponse is the result of a conversion query.
type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
	Rate      float64 `json:"rate"`
	Formatted string  `json:"formatted"`
}

// SetCurrencyPreferenceRequest selects the display currency.
type SetCurrencyPreferenceRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,uppercase"`
}

// CurrencyPreferenceResponse reports the persisted display currency.
type CurrencyPreferenceResponse struct {
	CurrencyCode string `json:"currencyCode"`
}
