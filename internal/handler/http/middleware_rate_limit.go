package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/app"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"golang.org/x/time/rate"
)

// clientTTL is how long an idle client's bucket is kept.
const clientTTL = 10 * time.Minute

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps one token bucket per client address.
type ipRateLimiter struct {
	rps   rate.Limit
	burst int

	mu        sync.Mutex
	clients   map[string]*rateLimitClient
	lastSweep time.Time
}

// newIPRateLimiter returns nil when rps or burst is not positive, which
// disables throttling.
func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}

	return &ipRateLimiter{
		rps:       rate.Limit(rps),
		burst:     burst,
		clients:   make(map[string]*rateLimitClient),
		lastSweep: time.Now(),
	}
}

func (l *ipRateLimiter) allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > clientTTL {
		for ip, c := range l.clients {
			if now.Sub(c.lastSeen) > clientTTL {
				delete(l.clients, ip)
			}
		}
		l.lastSweep = now
	}

	c, found := l.clients[clientIP]
	if !found {
		c = &rateLimitClient{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[clientIP] = c
	}
	c.lastSeen = now

	return c.limiter.Allow()
}

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		clientIP := remoteIP(r)
		if !h.limiter.allow(clientIP) {
			logger.FromRequest(r).Warn().Str("client", clientIP).Str("uri", r.RequestURI).Msg("rate limit exceeded")
			writeErrorMessage(w, http.StatusTooManyRequests, app.MsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
