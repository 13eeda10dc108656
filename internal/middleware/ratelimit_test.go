// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(5, time.Minute)
	defer limiter.Stop()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/commits", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"

	middleware := RateLimitMiddleware(limiter)
	middleware(c)

	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	clientIP := "10.0.0.1:1234"
	middleware := RateLimitMiddleware(limiter)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("PUT", "/api/palette", nil)
		c.Request.RemoteAddr = clientIP

		middleware(c)

		if w.Code == 429 {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// Third request - should be rate limited
	w3 := httptest.NewRecorder()
	c3, _ := gin.CreateTestContext(w3)
	c3.Request = httptest.NewRequest("PUT", "/api/palette", nil)
	c3.Request.RemoteAddr = clientIP

	middleware(c3)

	if w3.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", w3.Code)
	}

	// Check headers
	if w3.Header().Get("X-RateLimit-Limit") != "2" {
		t.Errorf("Expected X-RateLimit-Limit: 2, got %s", w3.Header().Get("X-RateLimit-Limit"))
	}
	if w3.Header().Get("Retry-After") != "60" {
		t.Errorf("Expected Retry-After: 60, got %s", w3.Header().Get("Retry-After"))
	}
}

func TestRateLimitReadsNotLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	middleware := RateLimitMiddleware(limiter)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/palette", nil)
		c.Request.RemoteAddr = "10.0.0.1:1234"

		middleware(c)

		if w.Code == 429 {
			t.Error("GET should not be rate limited")
		}
	}
}

func TestRateLimitPerIP(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Fatal("first request from 10.0.0.1 should be allowed")
	}
	if ok, _ := limiter.Allow("10.0.0.1"); ok {
		t.Fatal("second request from 10.0.0.1 should be limited")
	}
	if ok, _ := limiter.Allow("10.0.0.2"); !ok {
		t.Fatal("other IPs have their own bucket")
	}
}

func TestRateLimitEvict(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	limiter.Allow("10.0.0.1")
	limiter.evict(time.Now().Add(time.Hour))

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	if len(limiter.buckets) != 0 {
		t.Errorf("expected stale bucket to be evicted, have %d", len(limiter.buckets))
	}
}
