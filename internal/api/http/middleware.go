package http

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"kig-backend/internal/domain"
	"kig-backend/internal/logger"
	"kig-backend/internal/metrics"
	"kig-backend/internal/service"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs each request with its route, status and latency and
// feeds the same observations to the metrics collector.
func loggingMiddleware(collector *metrics.Collector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			elapsed := time.Since(start)
			collector.RecordRequest(r.Method, route, recorder.status, elapsed)
			logger.Info("Request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration_ms", elapsed.Milliseconds())
		})
	}
}

// authMiddleware resolves an optional bearer token into a user on the request
// context. It never rejects: handlers decide whether a user is required.
func authMiddleware(auth service.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if user, err := auth.UserFromToken(r.Context(), token); err == nil {
					r = r.WithContext(contextWithUser(r.Context(), user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireRole wraps a handler so it only runs for an authenticated user whose
// role ranks at or above the required one.
func requireRole(auth service.AuthService, required domain.UserRole, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !auth.HasPermission(user.Role, required) {
			writeError(w, http.StatusForbidden, "Insufficient permissions")
			return
		}
		next(w, r)
	}
}

type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newRateLimiter(perSecond float64, burst int) *rateLimiter {
	return &rateLimiter{
		visitors: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

func (l *rateLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.visitors[key]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.visitors[key] = limiter
	}
	return limiter
}

// limit throttles per client IP. Used on the credential endpoints to slow
// down password guessing.
func (l *rateLimiter) limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !l.limiterFor(host).Allow() {
			writeError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next(w, r)
	}
}
