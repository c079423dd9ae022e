package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	userDomain "github.com/allisson/cardledger/internal/user/domain"
)

func newRateLimitedRouter(ctx context.Context, rps float64, burst int, principal *userDomain.Principal) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if principal != nil {
			c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))
		}
		c.Next()
	})
	router.Use(RateLimitMiddleware(ctx, rps, burst, discardLogger()))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("AllowsWithinBurstThenRejects", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		principal := &userDomain.Principal{UserID: uuid.Must(uuid.NewV7()), Role: userDomain.RoleUser}
		router := newRateLimitedRouter(ctx, 1, 2, principal)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	})

	t.Run("IndependentBucketsPerUser", func(t *testing.T) {
		store := &rateLimiterStore{rps: 1, burst: 1}
		first := store.getLimiter(uuid.Must(uuid.NewV7()))
		second := store.getLimiter(uuid.Must(uuid.NewV7()))

		assert.True(t, first.Allow())
		assert.False(t, first.Allow())
		assert.True(t, second.Allow())
	})

	t.Run("NoPrincipal", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		w := httptest.NewRecorder()
		newRateLimitedRouter(ctx, 10, 10, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimiterStore_EvictIdle(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}
	stale := uuid.Must(uuid.NewV7())
	fresh := uuid.Must(uuid.NewV7())

	store.getLimiter(stale)
	val, _ := store.limiters.Load(stale)
	val.(*rateLimiterEntry).lastAccess = time.Now().Add(-2 * limiterIdleTTL)
	store.getLimiter(fresh)

	store.evictIdle(time.Now().Add(-limiterIdleTTL))

	_, staleFound := store.limiters.Load(stale)
	_, freshFound := store.limiters.Load(fresh)
	assert.False(t, staleFound)
	assert.True(t, freshFound)
}

func TestRateLimiterStore_CleanupStopsOnCancel(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.cleanupStale(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine did not stop")
	}
}
