package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiterStore holds per-client limiters. It is constructed explicitly
// and injected into the middleware so tests can scope their own store
// instead of sharing process-wide state.
type RateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewRateLimiterStore builds a store allowing requestsPerMin per client key.
func NewRateLimiterStore(requestsPerMin int) *RateLimiterStore {
	if requestsPerMin <= 0 {
		requestsPerMin = 100
	}
	return &RateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMin)),
		burst:    requestsPerMin,
	}
}

// Limiter returns the rate limiter for a given key, creating one if it
// doesn't exist.
func (s *RateLimiterStore) Limiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[key] = limiter
	}
	return limiter
}

// Allow reports whether the keyed client may proceed.
func (s *RateLimiterStore) Allow(key string) bool {
	return s.Limiter(key).Allow()
}

// RateLimitMiddleware limits requests per client IP using the given store.
func RateLimitMiddleware(store *RateLimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ip := getClientIP(c)
		if !store.Allow(ip) {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
