package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sokonihub/sokoni_gateway/internal/apperrors"
	"github.com/sokonihub/sokoni_gateway/internal/core/domain"
	"github.com/sokonihub/sokoni_gateway/internal/core/ports"
	portssvc "github.com/sokonihub/sokoni_gateway/internal/core/ports/services"
	"github.com/sokonihub/sokoni_gateway/internal/utils"
)

// Versioned local-storage keys. The last-update timestamp lives under its own
// key so staleness checks never deserialize the full snapshot.
const (
	keySelectedCurrency = "sokoni.currency.selected.v1"
	keyRateSnapshot     = "sokoni.currency.rates.v1"
	keyRatesUpdatedAt   = "sokoni.currency.rates_updated_at.v1"
)

const (
	// DefaultCacheDuration is how long a snapshot serves conversions before a
	// background refresh is triggered.
	DefaultCacheDuration = time.Hour

	// DefaultRefreshInterval drives the proactive background refresh loop.
	DefaultRefreshInterval = 30 * time.Minute
)

// CurrencyService lets the UI display any base-currency price in the user's
// preferred currency. Rates are fetched lazily, cached and refreshed on a
// schedule; conversions never wait on the network.
type CurrencyService struct {
	kv       ports.LocalKV
	provider ports.RateProvider
	logger   *slog.Logger

	currencies map[string]domain.Currency
	base       string

	cacheDuration   time.Duration
	refreshInterval time.Duration

	mu         sync.RWMutex
	snapshot   domain.RateSnapshot
	selected   string
	refreshing bool
	lastErr    error

	now func() time.Time // swappable for tests
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// CurrencyOption customises a CurrencyService.
type CurrencyOption func(*CurrencyService)

// WithCacheDuration overrides how long a snapshot stays fresh.
func WithCacheDuration(d time.Duration) CurrencyOption {
	return func(s *CurrencyService) { s.cacheDuration = d }
}

// WithRefreshInterval overrides the proactive refresh cadence.
func WithRefreshInterval(d time.Duration) CurrencyOption {
	return func(s *CurrencyService) { s.refreshInterval = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) CurrencyOption {
	return func(s *CurrencyService) { s.now = now }
}

// NewCurrencyService builds the engine, loading any persisted snapshot and
// currency preference from the local store.
func NewCurrencyService(kv ports.LocalKV, provider ports.RateProvider, logger *slog.Logger, opts ...CurrencyOption) *CurrencyService {
	if logger == nil {
		logger = slog.Default()
	}

	table := make(map[string]domain.Currency)
	for _, c := range domain.SupportedCurrencies() {
		table[c.CurrencyCode] = c
	}

	s := &CurrencyService{
		kv:              kv,
		provider:        provider,
		logger:          logger,
		currencies:      table,
		base:            domain.BaseCurrencyCode,
		cacheDuration:   DefaultCacheDuration,
		refreshInterval: DefaultRefreshInterval,
		selected:        domain.BaseCurrencyCode,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	var snap domain.RateSnapshot
	if err := kv.Get(keyRateSnapshot, &snap); err == nil && snap.BaseCode == s.base {
		s.snapshot = snap
	}
	var selected string
	if err := kv.Get(keySelectedCurrency, &selected); err == nil {
		if _, ok := table[selected]; ok {
			s.selected = selected
		}
	}

	return s
}

// ListCurrencies returns the static currency table.
func (s *CurrencyService) ListCurrencies() []domain.Currency {
	return domain.SupportedCurrencies()
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *CurrencyService) GetCurrencyByCode(currencyCode string) (*domain.Currency, error) {
	c, ok := s.currencies[strings.ToUpper(currencyCode)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, currencyCode)
	}
	return &c, nil
}

// Snapshot returns the rate snapshot conversions are currently served from.
// The snapshot is replaced wholesale on refresh, never mutated in place, so
// callers always observe a single consistent view.
func (s *CurrencyService) Snapshot() domain.RateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// SelectedCurrency returns the user's persisted display currency.
func (s *CurrencyService) SelectedCurrency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SetSelectedCurrency validates the code against the configured table and
// persists the new preference. On an unsupported code the previous selection
// is left unchanged.
func (s *CurrencyService) SetSelectedCurrency(code string) error {
	code = strings.ToUpper(code)
	if _, ok := s.currencies[code]; !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, code)
	}

	s.mu.Lock()
	s.selected = code
	s.mu.Unlock()

	s.kv.SetDebounced(keySelectedCurrency, code)
	return nil
}

// rate returns units of code per one base unit under the given snapshot. The
// base currency is exactly 1.0 regardless of snapshot contents or staleness.
func (s *CurrencyService) rate(snap domain.RateSnapshot, code string) float64 {
	if code == s.base {
		return 1.0
	}
	if r, ok := snap.Rates[code]; ok && r > 0 {
		return r
	}
	return s.currencies[code].RateToBase
}

// Convert re-expresses amount from one supported currency in another. The
// identity conversion returns the amount unchanged with no floating-point
// drift. A stale snapshot still serves the conversion immediately while one
// background refresh is triggered.
func (s *CurrencyService) Convert(amount float64, fromCode, toCode string) (float64, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if _, ok := s.currencies[fromCode]; !ok {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, fromCode)
	}
	if _, ok := s.currencies[toCode]; !ok {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, toCode)
	}

	s.maybeRefresh()

	if fromCode == toCode {
		return amount, nil
	}

	snap := s.Snapshot()
	return amount / s.rate(snap, fromCode) * s.rate(snap, toCode), nil
}

// GetExchangeRate returns the scalar multiplier from one currency to another,
// e.g. for "1 USD ≈ 2,600 TZS" displays.
func (s *CurrencyService) GetExchangeRate(fromCode, toCode string) (float64, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if _, ok := s.currencies[fromCode]; !ok {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, fromCode)
	}
	if _, ok := s.currencies[toCode]; !ok {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, toCode)
	}
	if fromCode == toCode {
		return 1.0, nil
	}

	snap := s.Snapshot()
	return s.rate(snap, toCode) / s.rate(snap, fromCode), nil
}

// Format renders an amount per the target currency's precision, symbol,
// symbol position and separators. Rounding happens here and only here.
func (s *CurrencyService) Format(amount float64, currencyCode string, opts domain.FormatOptions) (string, error) {
	c, ok := s.currencies[strings.ToUpper(currencyCode)]
	if !ok {
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, currencyCode)
	}
	return utils.FormatAmount(amount, c, opts), nil
}

// maybeRefresh triggers one background refresh when the snapshot has gone
// stale. The in-flight claim is taken synchronously, so any number of
// conversions racing on a stale snapshot spawn exactly one refresh.
func (s *CurrencyService) maybeRefresh() {
	s.mu.Lock()
	if !s.snapshot.IsStale(s.now(), s.cacheDuration) || s.refreshing {
		s.mu.Unlock()
		return
	}
	s.refreshing = true
	s.mu.Unlock()

	go s.doRefresh(context.Background())
}

// RefreshRates forces a rate fetch regardless of staleness. At most one
// refresh is in flight at a time; a call while one is running returns
// immediately. Fetch failures are recorded, not surfaced: the previous
// snapshot keeps serving conversions.
func (s *CurrencyService) RefreshRates(ctx context.Context) {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return
	}
	s.refreshing = true
	s.mu.Unlock()

	s.doRefresh(ctx)
}

// doRefresh performs the fetch-validate-swap-persist cycle. The caller must
// have claimed the refreshing flag; doRefresh releases it.
func (s *CurrencyService) doRefresh(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	fetched, err := s.provider.FetchRates(ctx, s.base)
	if err != nil {
		s.logger.Warn("Rate refresh failed, keeping previous snapshot",
			slog.String("base", s.base), slog.String("error", err.Error()))
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return
	}

	snap := s.buildSnapshot(fetched)

	s.mu.Lock()
	s.snapshot = snap
	s.lastErr = nil
	s.mu.Unlock()

	s.kv.SetDebounced(keyRateSnapshot, snap)
	s.kv.SetDebounced(keyRatesUpdatedAt, snap.FetchedAt)

	s.logger.Info("Exchange rates refreshed",
		slog.String("base", s.base), slog.Int("rates", len(snap.Rates)))
}

// buildSnapshot validates fetched rates against the configured table. Unknown
// codes are dropped, non-positive rates fall back to the static table, and
// the base currency is pinned to 1.0 — a remote value for the base is never
// trusted.
func (s *CurrencyService) buildSnapshot(fetched map[string]float64) domain.RateSnapshot {
	rates := make(map[string]float64, len(s.currencies))
	for code, c := range s.currencies {
		if code == s.base {
			rates[code] = 1.0
			continue
		}
		if r, ok := fetched[code]; ok && r > 0 {
			rates[code] = r
		} else {
			rates[code] = c.RateToBase
		}
	}
	return domain.RateSnapshot{BaseCode: s.base, Rates: rates, FetchedAt: s.now()}
}

// IsSnapshotStale reports whether the current snapshot has outlived the
// cache duration.
func (s *CurrencyService) IsSnapshotStale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.IsStale(s.now(), s.cacheDuration)
}

// LastRefreshError returns the error recorded by the most recent refresh
// attempt, or nil when it succeeded.
func (s *CurrencyService) LastRefreshError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// StartAutoRefresh runs the proactive refresh loop until ctx is cancelled.
func (s *CurrencyService) StartAutoRefresh(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RefreshRates(ctx)
			}
		}
	}()
}
