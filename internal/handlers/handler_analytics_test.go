package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sokonihub/sokoni_gateway/internal/core/ports"
	"github.com/sokonihub/sokoni_gateway/internal/handlers"
	"github.com/sokonihub/sokoni_gateway/internal/utils"
)

// --- Mock BackendAPI ---
type MockBackendAPI struct {
	mock.Mock
	called chan struct{}
}

func newMockBackendAPI() *MockBackendAPI {
	return &MockBackendAPI{called: make(chan struct{}, 1)}
}

func (m *MockBackendAPI) IncrementViewCount(ctx context.Context, productID, bearerToken string) error {
	args := m.Called(ctx, productID, bearerToken)
	m.called <- struct{}{}
	return args.Error(0)
}

var _ ports.BackendAPI = (*MockBackendAPI)(nil)

func newAnalyticsRouter(backend ports.BackendAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	handlers.RegisterAnalyticsRoutes(v1, backend, &utils.PosthogClientWrapper{})
	return router
}

func postClick(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/analytics/click", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTrackClick_ForwardsProductView(t *testing.T) {
	backend := newMockBackendAPI()
	backend.On("IncrementViewCount", mock.Anything, "prod-42", "tok-123").Return(nil).Once()
	router := newAnalyticsRouter(backend)

	w := postClick(router, `{"event":"product_click","productId":"prod-42"}`,
		map[string]string{"Authorization": "Bearer tok-123"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	// The forward runs detached from the request; wait for it.
	select {
	case <-backend.called:
	case <-time.After(2 * time.Second):
		t.Fatal("view count forward never reached the backend")
	}
	backend.AssertExpectations(t)
}

func TestTrackClick_NoProductID(t *testing.T) {
	backend := newMockBackendAPI()
	router := newAnalyticsRouter(backend)

	w := postClick(router, `{"event":"banner_click"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	backend.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestTrackClick_MalformedPayloadStillSucceeds(t *testing.T) {
	backend := newMockBackendAPI()
	router := newAnalyticsRouter(backend)

	w := postClick(router, `{"productId":`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	backend.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestTrackClick_BackendFailureIsSwallowed(t *testing.T) {
	backend := newMockBackendAPI()
	backend.On("IncrementViewCount", mock.Anything, "prod-9", "").Return(assert.AnError).Once()
	router := newAnalyticsRouter(backend)

	w := postClick(router, `{"event":"product_click","productId":"prod-9"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	select {
	case <-backend.called:
	case <-time.After(2 * time.Second):
		t.Fatal("view count forward never attempted")
	}
}
