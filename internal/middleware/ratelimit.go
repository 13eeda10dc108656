package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// TokenBucket implements a token bucket rate limiter
type TokenBucket struct {
	tokens   int
	capacity int
	refillAt time.Time
	interval time.Duration
	mu       sync.Mutex
}

// RateLimiter manages token buckets per IP
type RateLimiter struct {
	mu       sync.RWMutex
	buckets  map[string]*TokenBucket
	capacity int
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a new rate limiter. Call Stop to end its cleanup loop.
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	limiter := &RateLimiter{
		buckets:  make(map[string]*TokenBucket),
		capacity: capacity,
		interval: interval,
		done:     make(chan struct{}),
	}

	// Start cleanup goroutine
	go limiter.cleanup()

	return limiter
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

// cleanup removes old buckets every 5 minutes
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.evict(time.Now())
		}
	}
}

// evict drops buckets not refilled in 10 minutes
func (rl *RateLimiter) evict(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, bucket := range rl.buckets {
		bucket.mu.Lock()
		if now.Sub(bucket.refillAt) > 10*time.Minute {
			delete(rl.buckets, ip)
		}
		bucket.mu.Unlock()
	}
}

// Allow checks if a request should be allowed
func (rl *RateLimiter) Allow(ip string) (bool, int) {
	rl.mu.Lock()
	bucket, exists := rl.buckets[ip]
	if !exists {
		bucket = &TokenBucket{
			tokens:   rl.capacity,
			capacity: rl.capacity,
			refillAt: time.Now().Add(rl.interval),
			interval: rl.interval,
		}
		rl.buckets[ip] = bucket
	}
	rl.mu.Unlock()

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	// Refill tokens if interval has passed
	now := time.Now()
	if now.After(bucket.refillAt) {
		bucket.tokens = bucket.capacity
		bucket.refillAt = now.Add(bucket.interval)
	}

	// Try to consume a token
	if bucket.tokens > 0 {
		bucket.tokens--
		return true, bucket.tokens
	}

	return false, 0
}

// RateLimitMiddleware limits requests using the given methods, per client IP.
// With no methods, the state-changing ones are limited.
func RateLimitMiddleware(limiter *RateLimiter, methods ...string) gin.HandlerFunc {
	if len(methods) == 0 {
		methods = []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	}
	methodSet := make(map[string]bool)
	for _, m := range methods {
		methodSet[m] = true
	}

	return func(c *gin.Context) {
		if !methodSet[c.Request.Method] {
			c.Next()
			return
		}

		// Extract client IP
		clientIP := "unknown"
		if ip := extractIP(c); ip != nil {
			clientIP = ip.String()
		}

		// Check rate limit
		allowed, remaining := limiter.Allow(clientIP)

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.capacity))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			// Calculate retry-after (seconds until next refill)
			retryAfter := int(limiter.interval.Seconds())
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
