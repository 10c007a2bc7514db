package domain

import "time"

// SymbolPosition controls whether a currency symbol renders before or after the amount.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// Currency represents one supported currency. Currencies are statically
// configured; they are never created or destroyed at runtime.
type Currency struct {
	CurrencyCode   string         `json:"currencyCode"` // Primary Key (e.g., "TZS")
	Symbol         string         `json:"symbol"`       // e.g., "TSh"
	Name           string         `json:"name"`         // e.g., "Tanzanian Shilling"
	RateToBase     float64        `json:"rateToBase"`   // static fallback: units of this currency per one base unit
	Precision      int            `json:"precision"`    // display decimal places
	SymbolPosition SymbolPosition `json:"symbolPosition"`
	ThousandsSep   string         `json:"thousandsSep"`
	DecimalSep     string         `json:"decimalSep"`
}

// RateSnapshot is a point-in-time view of exchange rates relative to the base
// currency. Rates map a currency code to the number of units of that currency
// per one base unit; the base currency's own rate is 1.0 by definition.
type RateSnapshot struct {
	BaseCode  string             `json:"baseCode"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

// Age returns how old the snapshot is at the given instant.
func (s RateSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// IsStale reports whether the snapshot has outlived the given cache duration.
// A zero snapshot (never fetched) is always stale.
func (s RateSnapshot) IsStale(now time.Time, cacheDuration time.Duration) bool {
	if s.FetchedAt.IsZero() {
		return true
	}
	return s.Age(now) > cacheDuration
}

// FormatOptions tweaks amount rendering in Format.
type FormatOptions struct {
	Compact  bool // 1.2M instead of 1,200,000
	ShowCode bool // append the ISO code after the symbolised amount
}
