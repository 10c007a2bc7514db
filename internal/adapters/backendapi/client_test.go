package backendapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokonihub/sokoni_gateway/internal/adapters/backendapi"
)

func TestFetchRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/currency/rates", r.URL.Path)
		assert.Equal(t, "TZS", r.URL.Query().Get("base"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"TZS","rates":{"USD":0.000385,"EUR":0.000355}}`))
	}))
	defer srv.Close()

	client := backendapi.NewClient(srv.URL, nil)
	rates, err := client.FetchRates(context.Background(), "TZS")
	require.NoError(t, err)
	assert.Equal(t, 0.000385, rates["USD"])
	assert.Equal(t, 0.000355, rates["EUR"])
}

func TestFetchRates_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := backendapi.NewClient(srv.URL, nil)
	_, err := client.FetchRates(context.Background(), "TZS")
	assert.Error(t, err)
}

func TestFetchRates_EmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"TZS","rates":{}}`))
	}))
	defer srv.Close()

	client := backendapi.NewClient(srv.URL, nil)
	_, err := client.FetchRates(context.Background(), "TZS")
	assert.Error(t, err)
}

func TestIncrementViewCount_ForwardsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := backendapi.NewClient(srv.URL, nil)
	require.NoError(t, client.IncrementViewCount(context.Background(), "prod-42", "tok-123"))
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/api/products/prod-42/views", gotPath)
}

func TestIncrementViewCount_NoToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client := backendapi.NewClient(srv.URL, nil)
	require.NoError(t, client.IncrementViewCount(context.Background(), "prod-42", ""))
	assert.Empty(t, gotAuth)
}
