package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sokonihub/sokoni_gateway/internal/apperrors"
	"github.com/sokonihub/sokoni_gateway/internal/core/domain"
	"github.com/sokonihub/sokoni_gateway/internal/core/services"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock

	mu      sync.Mutex
	calls   int
	release chan struct{} // when set, FetchRates blocks until closed
}

func (m *MockRateProvider) FetchRates(ctx context.Context, baseCode string) (map[string]float64, error) {
	m.mu.Lock()
	m.calls++
	release := m.release
	m.mu.Unlock()
	if release != nil {
		<-release
	}
	args := m.Called(ctx, baseCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockRateProvider) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// --- Fake LocalKV ---
type fakeLocalKV struct {
	mu   sync.Mutex
	data map[string]any
}

func newFakeLocalKV() *fakeLocalKV {
	return &fakeLocalKV{data: make(map[string]any)}
}

func (f *fakeLocalKV) SetDebounced(key string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

func (f *fakeLocalKV) SetImmediate(key string, value any) error {
	f.SetDebounced(key, value)
	return nil
}

func (f *fakeLocalKV) Get(key string, dest any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return apperrors.ErrNotFound
	}
	switch d := dest.(type) {
	case *string:
		*d = v.(string)
	case *domain.RateSnapshot:
		*d = v.(domain.RateSnapshot)
	default:
		return apperrors.ErrNotFound
	}
	return nil
}

func (f *fakeLocalKV) Remove(key string) { f.mu.Lock(); defer f.mu.Unlock(); delete(f.data, key) }

func (f *fakeLocalKV) FlushPendingWrites() {}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	kv       *fakeLocalKV
	provider *MockRateProvider
	service  *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.kv = newFakeLocalKV()
	suite.provider = new(MockRateProvider)
	suite.service = services.NewCurrencyService(suite.kv, suite.provider, nil)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestConvert_Identity() {
	for _, c := range suite.service.ListCurrencies() {
		got, err := suite.service.Convert(123.456, c.CurrencyCode, c.CurrencyCode)
		suite.Require().NoError(err)
		suite.Equal(123.456, got, "identity conversion must not drift for %s", c.CurrencyCode)
	}
}

func (suite *CurrencyServiceTestSuite) TestConvert_RoundTripWithinTolerance() {
	suite.provider.On("FetchRates", mock.Anything, domain.BaseCurrencyCode).
		Return(map[string]float64{"USD": 0.0004, "EUR": 0.00037, "KES": 0.052}, nil)
	suite.service.RefreshRates(context.Background())

	codes := []string{"TZS", "USD", "EUR", "KES"}
	for _, a := range codes {
		for _, b := range codes {
			converted, err := suite.service.Convert(1000, a, b)
			suite.Require().NoError(err)
			back, err := suite.service.Convert(converted, b, a)
			suite.Require().NoError(err)
			suite.InDelta(1000, back, 1e-9, "%s -> %s -> %s", a, b, a)
		}
	}
}

func (suite *CurrencyServiceTestSuite) TestConvert_UnsupportedCurrency() {
	_, err := suite.service.Convert(10, "XXX", "TZS")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
}

func (suite *CurrencyServiceTestSuite) TestGetExchangeRate_BaseExactness() {
	rate, err := suite.service.GetExchangeRate(domain.BaseCurrencyCode, domain.BaseCurrencyCode)
	suite.Require().NoError(err)
	suite.Equal(1.0, rate)
}

func (suite *CurrencyServiceTestSuite) TestGetExchangeRate_UsesSnapshot() {
	suite.provider.On("FetchRates", mock.Anything, domain.BaseCurrencyCode).
		Return(map[string]float64{"USD": 1.0 / 2600.0}, nil)
	suite.service.RefreshRates(context.Background())

	rate, err := suite.service.GetExchangeRate("USD", "TZS")
	suite.Require().NoError(err)
	suite.InDelta(2600, rate, 1e-6)
}

func (suite *CurrencyServiceTestSuite) TestRefreshRates_PinsBaseAndDropsBadRates() {
	suite.provider.On("FetchRates", mock.Anything, domain.BaseCurrencyCode).
		Return(map[string]float64{"TZS": 42.0, "USD": -5, "EUR": 0.00037}, nil)
	suite.service.RefreshRates(context.Background())

	snap := suite.service.Snapshot()
	suite.Equal(1.0, snap.Rates["TZS"], "remote base rate must never be trusted")
	suite.Equal(0.00037, snap.Rates["EUR"])
	suite.Greater(snap.Rates["USD"], 0.0, "non-positive rate falls back to static table")
}

func (suite *CurrencyServiceTestSuite) TestRefreshRates_FailureKeepsPreviousSnapshot() {
	suite.provider.On("FetchRates", mock.Anything, domain.BaseCurrencyCode).
		Return(map[string]float64{"USD": 0.0004}, nil).Once()
	suite.service.RefreshRates(context.Background())
	before := suite.service.Snapshot()

	suite.provider.On("FetchRates", mock.Anything, domain.BaseCurrencyCode).
		Return(nil, assert.AnError).Once()
	suite.service.RefreshRates(context.Background())

	suite.Equal(before.Rates, suite.service.Snapshot().Rates)
	suite.Error(suite.service.LastRefreshError())
}

func (suite *CurrencyServiceTestSuite) TestStaleSnapshot_TriggersExactlyOneRefresh() {
	// Freeze a snapshot two hours in the past, then let conversions race.
	past := time.Now().Add(-2 * time.Hour)
	service := services.NewCurrencyService(suite.kv, suite.provider, nil,
		services.WithClock(func() time.Time { return past }))
	suite.provider.On("FetchRates", mock.Anything, domain.BaseCurrencyCode).
		Return(map[string]float64{"USD": 0.0004}, nil)
	service.RefreshRates(context.Background())

	service = services.NewCurrencyService(suite.kv, suite.provider, nil)
	suite.provider.release = make(chan struct{})

	fetchesBefore := suite.provider.fetchCount()
	for i := 0; i < 10; i++ {
		_, err := service.Convert(100, "USD", "TZS")
		suite.Require().NoError(err)
	}
	close(suite.provider.release)

	suite.Eventually(func() bool {
		return suite.provider.fetchCount() == fetchesBefore+1
	}, time.Second, 5*time.Millisecond, "exactly one background refresh for a stale snapshot")

	// No extra fetches arrive after the in-flight one resolves.
	time.Sleep(20 * time.Millisecond)
	suite.Equal(fetchesBefore+1, suite.provider.fetchCount())
}

func (suite *CurrencyServiceTestSuite) TestSetSelectedCurrency_PersistsPreference() {
	suite.Require().NoError(suite.service.SetSelectedCurrency("usd"))
	suite.Equal("USD", suite.service.SelectedCurrency())

	var stored string
	suite.Require().NoError(suite.kv.Get("sokoni.currency.selected.v1", &stored))
	suite.Equal("USD", stored)
}

func (suite *CurrencyServiceTestSuite) TestSetSelectedCurrency_RejectsUnknownCode() {
	suite.Require().NoError(suite.service.SetSelectedCurrency("EUR"))

	err := suite.service.SetSelectedCurrency("ZZZ")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.Equal("EUR", suite.service.SelectedCurrency(), "previous selection preserved")
}

func (suite *CurrencyServiceTestSuite) TestNewCurrencyService_LoadsPersistedState() {
	suite.kv.SetDebounced("sokoni.currency.selected.v1", "EUR")
	suite.kv.SetDebounced("sokoni.currency.rates.v1", domain.RateSnapshot{
		BaseCode:  domain.BaseCurrencyCode,
		Rates:     map[string]float64{"TZS": 1, "EUR": 0.0004},
		FetchedAt: time.Now(),
	})

	service := services.NewCurrencyService(suite.kv, suite.provider, nil)
	suite.Equal("EUR", service.SelectedCurrency())
	suite.Equal(0.0004, service.Snapshot().Rates["EUR"])
}

func (suite *CurrencyServiceTestSuite) TestFormat() {
	cases := []struct {
		amount float64
		code   string
		opts   domain.FormatOptions
		want   string
	}{
		{2600123, "TZS", domain.FormatOptions{}, "TSh2,600,123"},
		{1234.5, "USD", domain.FormatOptions{}, "$1,234.50"},
		{1234.5, "EUR", domain.FormatOptions{}, "1.234,50€"},
		{1234.5, "USD", domain.FormatOptions{ShowCode: true}, "$1,234.50 USD"},
		{2600123, "TZS", domain.FormatOptions{Compact: true}, "TSh2.6M"},
		{4500, "USD", domain.FormatOptions{Compact: true}, "$4.5K"},
	}
	for _, tc := range cases {
		got, err := suite.service.Format(tc.amount, tc.code, tc.opts)
		suite.Require().NoError(err)
		suite.Equal(tc.want, got, "amount=%v code=%s", tc.amount, tc.code)
	}
}

func (suite *CurrencyServiceTestSuite) TestFormat_UnsupportedCurrency() {
	_, err := suite.service.Format(1, "???", domain.FormatOptions{})
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
