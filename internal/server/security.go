package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

// SecurityHeadersMiddleware sets the fixed browser hardening headers on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range securityHeaders {
				w.Header().Set(h[0], h[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

type clientCounters struct {
	requests   int
	failedAuth int
}

// ClientGuard keeps per-IP request and failed admin login counts for a fixed
// window. All counters are dropped together when the window elapses.
type ClientGuard struct {
	mu          sync.Mutex
	clients     map[string]*clientCounters
	windowStart time.Time
	window      time.Duration
	maxRequests int
}

func NewClientGuard() *ClientGuard {
	return &ClientGuard{
		clients:     make(map[string]*clientCounters),
		windowStart: time.Now(),
		window:      RateLimitWindow,
		maxRequests: RateLimitMaxRequests,
	}
}

// counters must be called with mu held
func (g *ClientGuard) counters(ip string) *clientCounters {
	if time.Since(g.windowStart) > g.window {
		clear(g.clients)
		g.windowStart = time.Now()
	}
	c, ok := g.clients[ip]
	if !ok {
		c = &clientCounters{}
		g.clients[ip] = c
	}
	return c
}

// Allow counts a request from ip and reports whether it is within budget
func (g *ClientGuard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.counters(ip)
	c.requests++
	if c.requests <= g.maxRequests {
		return true
	}
	if c.requests%RateLimitLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", c.requests)
	}
	return false
}

// FailedAuth counts a rejected admin key and raises an alert once the
// client reaches FailedAuthAlertAfter in the current window
func (g *ClientGuard) FailedAuth(ip string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.counters(ip)
	c.failedAuth++
	if c.failedAuth >= FailedAuthAlertAfter {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", c.failedAuth)
	}
}

// RateLimitMiddleware answers 429 once a client exhausts its budget
func RateLimitMiddleware(trustedProxies []string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.Allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminAuthMiddleware requires HeaderAPIKey to match apiKey. An empty apiKey
// rejects every request, which keeps the admin routes closed when unconfigured.
func AdminAuthMiddleware(apiKey string, trustedProxies []string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAPIKey)
			if apiKey != "" && subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, trustedProxies)
			guard.FailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", provided != "")
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// clientIP returns the peer address, or the last X-Forwarded-For hop when the
// peer is one of trustedProxies
func clientIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, peer) {
		return peer
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}
