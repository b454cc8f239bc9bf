package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/time/rate"
)

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, time.Minute)
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() int {
		request := httptest.NewRequest(http.MethodPost, "/request-otp", nil)
		request.RemoteAddr = "203.0.113.7:51000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send(), "burst exhausted")
	assert.Equal(t, http.StatusTooManyRequests, send(), "caller stays blocked")

	t.Run("other clients are unaffected", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/request-otp", nil)
		request.RemoteAddr = "203.0.113.8:51000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestRateLimiter_SweepDropsIdleEntries(t *testing.T) {
	limiter := NewRateLimiter(5, time.Minute, time.Minute)
	now := time.Now()

	limiter.mu.Lock()
	limiter.limiters["203.0.113.1"] = &clientLimiter{
		limiter:  rate.NewLimiter(rate.Every(time.Minute), 5),
		lastSeen: now.Add(-2 * limiterIdleTTL),
	}
	limiter.limiters["203.0.113.2"] = &clientLimiter{
		limiter:  rate.NewLimiter(rate.Every(time.Minute), 5),
		lastSeen: now,
	}
	limiter.lastSweep = now.Add(-2 * limiterIdleTTL)
	limiter.sweep(now)
	limiter.mu.Unlock()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	_, staleKept := limiter.limiters["203.0.113.1"]
	_, freshKept := limiter.limiters["203.0.113.2"]
	assert.False(t, staleKept, "idle entry is pruned")
	assert.True(t, freshKept, "active entry survives the sweep")
	require.Equal(t, now, limiter.lastSweep)
}
