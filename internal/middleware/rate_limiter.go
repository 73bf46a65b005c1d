package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"packingapp/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within one window.
type rateEntry struct {
	count     int
	windowEnd time.Time
}

// RateLimiter is a fixed-window limiter keyed by client IP.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*rateEntry
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*rateEntry),
	}
}

// Middleware rejects a client once it exceeds limit requests in the window.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, windowEnd := l.allow(c.ClientIP())
		if !allowed {
			c.Header("Retry-After", windowEnd.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &rateEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = entry
	}
	entry.count++
	return entry.count <= l.limit, entry.windowEnd
}

// Purge drops expired entries and returns how many were removed.
func (l *RateLimiter) Purge() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	purged := 0
	for ip, entry := range l.entries {
		if now.After(entry.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
	}
	return purged
}

// Run purges expired entries every interval until ctx is done.
func (l *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Purge(); n > 0 {
				log.Debug().Int("entries_purged", n).Msg("rate limiter purged")
			}
		}
	}
}
