package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"contractapi/internal/metrics"
)

// limiterIdleTTL is how long a client bucket survives without requests.
const limiterIdleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer than
// limiterIdleTTL are evicted, at most once per TTL.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	metrics   *metrics.Metrics
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(rps float64, burst int, m *metrics.Metrics) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		clients: make(map[string]*client),
		now:     time.Now,
		limit:   rate.Limit(rps),
		burst:   burst,
		metrics: m,
	}
}

func (r *RateLimiter) limiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= limiterIdleTTL {
		for k, cl := range r.clients {
			if now.Sub(cl.lastSeen) >= limiterIdleTTL {
				delete(r.clients, k)
			}
		}
		r.lastSweep = now
	}

	cl, ok := r.clients[key]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// Handler rejects requests over the limit with 429 and the standard error body.
func (r *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r.limiter(c.IP()).Allow() {
			return c.Next()
		}
		r.metrics.RateLimited()
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"request_id": rid,
			"error": fiber.Map{
				"code":    "RATE_LIMITED",
				"message": "too many requests",
			},
		})
	}
}
