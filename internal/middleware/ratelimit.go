package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"dayplanner/pkg/response"
)

// clientLimiters holds one token bucket per client IP. Idle entries are swept
// so a long-lived process does not accumulate limiters forever.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	stop     chan struct{}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiters(perMinute int) *clientLimiters {
	if perMinute <= 0 {
		perMinute = 30
	}
	cl := &clientLimiters{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
		stop:     make(chan struct{}),
	}
	go cl.sweep()
	return cl
}

// close stops the background sweep goroutine.
func (cl *clientLimiters) close() {
	close(cl.stop)
}

func (cl *clientLimiters) allow(clientIP string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	entry, ok := cl.limiters[clientIP]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(cl.rate, cl.burst)}
		cl.limiters[clientIP] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

func (cl *clientLimiters) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-cl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-30 * time.Minute)
			cl.mu.Lock()
			for ip, entry := range cl.limiters {
				if entry.lastSeen.Before(cutoff) {
					delete(cl.limiters, ip)
				}
			}
			cl.mu.Unlock()
		}
	}
}

// RateLimit throttles requests per client IP using a token bucket sized from
// the planner's chat_rate_per_min setting.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.chatLimiters.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests, slow down a little",
			})
			return
		}
		c.Next()
	}
}
