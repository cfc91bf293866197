package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitorTTL is how long an idle client's limiter is kept
const visitorTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

// NewRateLimiter allows perMinute requests per client with the given burst
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Limit(float64(perMinute) / 60),
		burst:     burst,
		lastSweep: time.Now(),
	}
}

// Allow reports whether ip may make a request now
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) > visitorTTL {
		for key, v := range rl.visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(rl.visitors, key)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimit middleware limits requests per IP
func RateLimit(perMinute, burst int) gin.HandlerFunc {
	limiter := NewRateLimiter(perMinute, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !limiter.Allow(clientIP) {
			slog.Warn("rate limit exceeded",
				"client_ip", clientIP,
				"request_id", GetRequestID(c),
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
