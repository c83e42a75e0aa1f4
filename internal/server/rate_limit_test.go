package server

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 3, CleanupInterval: time.Minute})
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "clients are limited independently")
}

func TestRateLimiterWindowReset(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 1})
	defer rl.Stop()

	assert.True(t, rl.Allow("c"))
	assert.False(t, rl.Allow("c"))

	rl.mu.Lock()
	rl.clients["c"].start = time.Now().Add(-2 * time.Minute)
	rl.mu.Unlock()
	assert.True(t, rl.Allow("c"))
}

func TestRateLimiterEvict(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(DefaultRateLimiterConfig())
	defer rl.Stop()

	rl.Allow("old")
	rl.Allow("new")
	rl.evict(time.Now().Add(3 * time.Minute))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.clients)
}

func TestRateLimiterConcurrent(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 50})
	defer rl.Stop()

	var mu sync.Mutex
	allowed := 0
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, allowed)
}

func TestRateLimiterStopIdempotent(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(DefaultRateLimiterConfig())
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": " 1.2.3.4 , 5.6.7.8"}, "9.9.9.9:1", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": " 4.3.2.1 "}, "9.9.9.9:1", "4.3.2.1"},
		{"ipv4 remote", nil, "127.0.0.1:8080", "127.0.0.1"},
		{"ipv6 remote", nil, "[::1]:8080", "::1"},
		{"no port", nil, "192.168.1.1", "192.168.1.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(r))
		})
	}
}
