package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCardRouter mimics the card routes with the metrics middleware installed.
func newCardRouter(t *testing.T) (*gin.Engine, *Provider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("cardledger")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, provider.Shutdown(context.Background())) })

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "cardledger"))
	router.GET("/v1/cards/:id/balance", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"card_id": c.Param("id"), "balance": "10.00"})
	})
	router.POST("/v1/cards/transfer", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "insufficient_funds"})
	})
	return router, provider
}

func serve(router *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	t.Run("Success_RecordsRoutePatternNotCardID", func(t *testing.T) {
		router, provider := newCardRouter(t)

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/cards/0190a1b2-0000-7000-8000-000000000001/balance"))
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/cards/0190a1b2-0000-7000-8000-000000000002/balance"))

		body := scrape(t, provider)
		assert.Contains(t, body, "cardledger_http_requests_total")
		assert.Contains(t, body, "cardledger_http_request_duration_seconds")
		assert.Contains(t, body, `path="/v1/cards/:id/balance"`)
		assert.NotContains(t, body, "0190a1b2-0000-7000-8000-000000000001")
	})

	t.Run("Success_RecordsStatusCode", func(t *testing.T) {
		router, provider := newCardRouter(t)

		assert.Equal(t, http.StatusUnprocessableEntity, serve(router, http.MethodPost, "/v1/cards/transfer"))

		body := scrape(t, provider)
		assert.Contains(t, body, `status_code="422"`)
		assert.Contains(t, body, `method="POST"`)
	})

	t.Run("Success_UnmatchedRouteIsUnknown", func(t *testing.T) {
		router, provider := newCardRouter(t)

		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/v1/nowhere/abc"))

		body := scrape(t, provider)
		assert.Contains(t, body, `path="unknown"`)
		assert.NotContains(t, body, "/v1/nowhere/abc")
	})
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "unknown", sanitizePath(""))
	assert.Equal(t, "/v1/admin/cards/:id", sanitizePath("/v1/admin/cards/:id"))
}
