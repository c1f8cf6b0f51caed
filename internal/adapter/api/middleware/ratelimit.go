package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/openlot/leadhub/internal/adapter/metrics"
)

const rateLimitWindow = time.Second

// RateLimiter throttles requests per client IP. Counters live in Redis so
// the limit holds across replicas; when Redis is unreachable the limiter
// degrades to per-IP in-process token buckets instead of failing requests.
type RateLimiter struct {
	client  *redis.Client
	rps     float64
	burst   int
	logger  *slog.Logger
	metrics *metrics.APIMetrics

	mu       sync.Mutex
	fallback map[string]*rate.Limiter
}

// NewRateLimiter creates a limiter. client may be nil, in which case only
// the in-process fallback is used.
func NewRateLimiter(client *redis.Client, rps float64, burst int, logger *slog.Logger, m *metrics.APIMetrics) *RateLimiter {
	return &RateLimiter{
		client:   client,
		rps:      rps,
		burst:    burst,
		logger:   logger,
		metrics:  m,
		fallback: make(map[string]*rate.Limiter),
	}
}

// Handler wraps next with the rate limit check.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if !rl.allow(r.Context(), ip) {
			if rl.metrics != nil {
				rl.metrics.RateLimitedTotal.Inc()
			}
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ctx context.Context, ip string) bool {
	if rl.client != nil {
		allowed, err := rl.allowRedis(ctx, ip)
		if err == nil {
			return allowed
		}
		rl.logger.Warn("redis rate limiter unavailable, using in-process fallback", "error", err)
	}
	return rl.allowLocal(ip)
}

// allowRedis implements a fixed window: INCR the per-IP key and expire it
// with the window. The burst is the window budget.
func (rl *RateLimiter) allowRedis(ctx context.Context, ip string) (bool, error) {
	key := "ratelimit:" + ip

	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, key, rateLimitWindow).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(rl.burst), nil
}

func (rl *RateLimiter) allowLocal(ip string) bool {
	rl.mu.Lock()
	limiter, ok := rl.fallback[ip]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(rl.rps), rl.burst)
		rl.fallback[ip] = limiter
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
