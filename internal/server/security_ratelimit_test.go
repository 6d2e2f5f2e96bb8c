package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attack/validate", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < RateLimitMaxRequests; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()
	assert.Equal(t, RateLimitMaxRequests+1, count)
}

func TestSuspiciousActivityDetector_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	detector := newDetector(time.Minute, 2, func() time.Time { return now })

	assert.True(t, detector.RecordRequest("10.0.0.1"))
	assert.True(t, detector.RecordRequest("10.0.0.1"))
	assert.False(t, detector.RecordRequest("10.0.0.1"))
	assert.True(t, detector.RecordRequest("10.0.0.2"), "limits are per IP")

	now = now.Add(2 * time.Minute)
	assert.True(t, detector.RecordRequest("10.0.0.1"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"Direct connection", "203.0.113.9:5000", "", nil, "203.0.113.9"},
		{"Untrusted proxy header ignored", "203.0.113.9:5000", "1.2.3.4", nil, "203.0.113.9"},
		{"Trusted proxy uses rightmost hop", "10.0.0.5:5000", "1.2.3.4, 5.6.7.8", []string{"10.0.0.5"}, "5.6.7.8"},
		{"Trusted proxy without header", "10.0.0.5:5000", "", []string{"10.0.0.5"}, "10.0.0.5"},
		{"Unparseable remote address", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}
