package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/PrManiezzo/marmo/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterTTL             = 10 * time.Minute
)

// RateLimiter is a per-IP token bucket limiter.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limite   rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows porMinuto requests per minute per IP with the given burst.
// Stale entries are purged until ctx is cancelled.
func NewRateLimiter(ctx context.Context, porMinuto, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limite:   rate.Limit(float64(porMinuto) / 60.0),
		burst:    burst,
	}
	go rl.cleanup(ctx)
	return rl
}

func (rl *RateLimiter) limiterPara(ip string, agora time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limite, rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastSeen = agora
	return entry.limiter
}

// Allow reports whether ip may make a request now.
func (rl *RateLimiter) Allow(ip string) bool {
	return rl.limiterPara(ip, time.Now()).Allow()
}

func (rl *RateLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case agora := <-ticker.C:
			rl.mu.Lock()
			purged := 0
			for ip, entry := range rl.limiters {
				if agora.Sub(entry.lastSeen) > limiterTTL {
					delete(rl.limiters, ip)
					purged++
				}
			}
			restantes := len(rl.limiters)
			rl.mu.Unlock()
			if purged > 0 {
				log.Debug().Int("purged", purged).Int("remaining", restantes).Msg("rate limiter purged")
			}
		}
	}
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if rl.Allow(ip) {
			c.Next()
			return
		}
		retry := 1
		if rl.limite > 0 {
			retry = int(math.Ceil(1 / float64(rl.limite)))
		}
		log.Warn().Str("ip", ip).Int("retry_after", retry).Msg("rate limit exceeded")
		c.Header("Retry-After", strconv.Itoa(retry))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Muitas requisições. Tente novamente em instantes."))
	}
}
