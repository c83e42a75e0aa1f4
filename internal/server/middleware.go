package server

import (
	"net/http"
	"time"

	"github.com/agbru/fftmul/internal/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Server Options for Middleware Integration
// ─────────────────────────────────────────────────────────────────────────────

// WithRateLimiter sets a custom rate limiter for the server.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(s *Server) { s.rateLimiter = rl }
}

// WithSecurityConfig sets a custom security configuration for the server.
func WithSecurityConfig(config SecurityConfig) Option {
	return func(s *Server) { s.securityConfig = config }
}

// WithMaxDigits caps the combined operand length accepted by /multiply.
func WithMaxDigits(maxDigits int) Option {
	return func(s *Server) { s.securityConfig.MaxDigits = maxDigits }
}

// chain wraps a handler with security headers, rate limiting, metrics and
// request logging, outermost first.
func (s *Server) chain(h http.HandlerFunc) http.HandlerFunc {
	h = s.loggingMiddleware(h)
	h = s.metricsMiddleware(h)
	h = RateLimitMiddleware(s.rateLimiter, h)
	return SecurityMiddleware(s.securityConfig, h)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware tracks in-flight requests, status codes and latency.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r)
		s.metrics.ObserveRequest(r.URL.Path, rec.status, time.Since(start).Seconds())
	}
}

// loggingMiddleware logs the method, path, client and duration of every
// request.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		s.logger.Debug("request served",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.String("client", getClientIP(r)),
			logging.Duration("duration", time.Since(start)))
	}
}
