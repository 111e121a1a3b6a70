package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)

	limiter.Allow("1.2.3.4")
	limiter.Allow("1.2.3.4")

	if limiter.Allow("1.2.3.4") {
		t.Error("third request within the window should be blocked")
	}
}

func TestRateLimiter_TracksKeysIndependently(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	limiter.Allow("1.2.3.4")

	if !limiter.Allow("5.6.7.8") {
		t.Error("a different key should not share the first key's budget")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	limiter := NewRateLimiter(1, 10*time.Millisecond)

	limiter.Allow("1.2.3.4")
	time.Sleep(20 * time.Millisecond)

	if !limiter.Allow("1.2.3.4") {
		t.Error("request after the window expired should be allowed")
	}
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/summary", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/summary", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Error("429 response should carry Retry-After")
	}
}

func TestRateLimitMiddleware_SetsRateHeaders(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	if rec.Header().Get("X-RateLimit-Limit") != "10" {
		t.Errorf("X-RateLimit-Limit = %s, want 10", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:    "falls back to RemoteAddr",
			headers: map[string]string{},
			remote:  "10.0.0.1:1234",
			want:    "10.0.0.1:1234",
		},
		{
			name:    "prefers X-Forwarded-For",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4"},
			remote:  "10.0.0.1:1234",
			want:    "1.2.3.4",
		},
		{
			name:    "takes first entry of X-Forwarded-For chain",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"},
			remote:  "10.0.0.1:1234",
			want:    "1.2.3.4",
		},
		{
			name:    "uses X-Real-IP when no X-Forwarded-For",
			headers: map[string]string{"X-Real-IP": "9.9.9.9"},
			remote:  "10.0.0.1:1234",
			want:    "9.9.9.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			if got := extractIP(req); got != tt.want {
				t.Errorf("extractIP() = %s, want %s", got, tt.want)
			}
		})
	}
}
