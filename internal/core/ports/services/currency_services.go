package services

import (
	"context"

	"github.com/sokonihub/sokoni_gateway/internal/core/domain"
)

// CurrencyReaderSvc defines read operations against the currency table and
// the current rate snapshot.
type CurrencyReaderSvc interface {
	// ListCurrencies returns the static currency table.
	ListCurrencies() []domain.Currency

	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(currencyCode string) (*domain.Currency, error)

	// Snapshot returns the rate snapshot conversions are currently served from.
	Snapshot() domain.RateSnapshot

	// IsSnapshotStale reports whether the snapshot has outlived the cache
	// duration. Reads keep being served from it either way.
	IsSnapshotStale() bool

	// LastRefreshError returns the error recorded by the most recent refresh
	// attempt, or nil when it succeeded.
	LastRefreshError() error

	// SelectedCurrency returns the user's persisted display currency.
	SelectedCurrency() string
}

// CurrencyConverterSvc defines conversion and formatting operations.
type CurrencyConverterSvc interface {
	// Convert re-expresses an amount from one supported currency in another.
	Convert(amount float64, fromCode, toCode string) (float64, error)

	// GetExchangeRate returns the scalar multiplier from one currency to
	// another without converting an amount.
	GetExchangeRate(fromCode, toCode string) (float64, error)

	// Format renders an amount per the target currency's display rules.
	Format(amount float64, currencyCode string, opts domain.FormatOptions) (string, error)
}

// CurrencyWriterSvc defines state-changing operations.
type CurrencyWriterSvc interface {
	// SetSelectedCurrency validates and persists the display currency.
	SetSelectedCurrency(code string) error

	// RefreshRates forces a rate fetch. It settles without surfacing fetch
	// failures; the previous snapshot is retained on error.
	RefreshRates(ctx context.Context)

	// StartAutoRefresh runs the proactive refresh loop until ctx is cancelled.
	StartAutoRefresh(ctx context.Context)
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
	CurrencyWriterSvc
}
