package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/api/middleware"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/config"
)

func rateLimitedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rm := middleware.NewRateLimiterMiddleware(cfg)
	r.Use(rm.Limit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimiter_AllowsWithinHardBucket(t *testing.T) {
	cfg := &config.Config{
		RateLimitSoftBucketSize: 2,
		RateLimitSoftRefillRate: 1,
		RateLimitHardBucketSize: 5,
		RateLimitHardRefillRate: 1,
	}
	r := rateLimitedRouter(cfg)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}

func TestRateLimiter_RejectsBeyondHardBucket(t *testing.T) {
	cfg := &config.Config{
		RateLimitSoftBucketSize: 1,
		RateLimitSoftRefillRate: 1,
		RateLimitHardBucketSize: 3,
		RateLimitHardRefillRate: 1,
	}
	r := rateLimitedRouter(cfg)

	var lastCode int
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(w, req)
		lastCode = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestRateLimiter_BucketsArePerClient(t *testing.T) {
	cfg := &config.Config{
		RateLimitSoftBucketSize: 1,
		RateLimitSoftRefillRate: 1,
		RateLimitHardBucketSize: 1,
		RateLimitHardRefillRate: 1,
	}
	r := rateLimitedRouter(cfg)

	first := httptest.NewRecorder()
	req1, _ := http.NewRequest("GET", "/ping", nil)
	req1.RemoteAddr = "10.0.0.3:1234"
	r.ServeHTTP(first, req1)
	assert.Equal(t, http.StatusOK, first.Code)

	// Same client again: bucket is drained.
	second := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/ping", nil)
	req2.RemoteAddr = "10.0.0.3:1234"
	r.ServeHTTP(second, req2)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// A different client has its own bucket.
	third := httptest.NewRecorder()
	req3, _ := http.NewRequest("GET", "/ping", nil)
	req3.RemoteAddr = "10.0.0.4:1234"
	r.ServeHTTP(third, req3)
	assert.Equal(t, http.StatusOK, third.Code)
}
