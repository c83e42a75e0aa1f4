package server

import (
	"net/http"
	"strings"

	"github.com/agbru/fftmul/internal/multiply"
)

// SecurityConfig holds the response header and request size policy.
type SecurityConfig struct {
	// EnableCORS enables Cross-Origin Resource Sharing headers.
	EnableCORS bool
	// AllowedOrigins lists allowed CORS origins. "*" allows all.
	AllowedOrigins []string
	// AllowedMethods lists the methods announced to CORS preflights.
	AllowedMethods []string
	// MaxDigits caps the combined operand length accepted by /multiply.
	MaxDigits int
}

// DefaultSecurityConfig returns the default security configuration.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxDigits:      multiply.MaxSafeDigits,
	}
}

// SecurityMiddleware sets hardening headers on every response and answers
// CORS preflight requests when CORS is enabled.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := matchOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type, Accept")
				h.Set("Access-Control-Max-Age", "86400")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next(w, r)
	}
}

// matchOrigin returns the first allowed entry matching origin, or "".
func matchOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return a
		}
	}
	return ""
}
