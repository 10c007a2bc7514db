package ports

import "context"

// RateProvider fetches exchange rates relative to the given base currency
// from the backend API. The returned map is code -> units per one base unit.
type RateProvider interface {
	FetchRates(ctx context.Context, baseCode string) (map[string]float64, error)
}

// BackendAPI covers the request-forwarding calls this gateway makes against
// the marketplace backend. The backend itself is an external collaborator;
// only the request/response contract matters here.
type BackendAPI interface {
	// IncrementViewCount forwards a product view-count increment. The bearer
	// token is optional and passed through untouched when present.
	IncrementViewCount(ctx context.Context, productID, bearerToken string) error
}
