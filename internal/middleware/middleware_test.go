package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mergington-api/pkg/logger"
	"mergington-api/pkg/redis"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activities", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_ReusesValidInboundHeader(t *testing.T) {
	inbound := uuid.NewString()
	h := RequestID()(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.Header.Set("X-Request-ID", inbound)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, inbound, rec.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.Header.Set("X-Request-ID", "not a uuid\n")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not a uuid\n", rec.Header().Get("X-Request-ID"))
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name          string
		allowed       []string
		origin        string
		expectedAllow string
	}{
		{"any origin when unconfigured", nil, "http://school.test", "http://school.test"},
		{"listed origin", []string{"http://school.test"}, "http://school.test", "http://school.test"},
		{"unlisted origin", []string{"http://school.test"}, "http://evil.test", ""},
		{"wildcard", []string{"*"}, "http://other.test", "http://other.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CORS(DefaultCORSConfig(tt.allowed), logger.NewNop())(okHandler)

			req := httptest.NewRequest(http.MethodGet, "/activities", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS(DefaultCORSConfig(nil), logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/activities/Chess%20Club/signup", nil)
	req.Header.Set("Origin", "http://school.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}

func TestAccessLog_PassesThrough(t *testing.T) {
	h := RequestID()(AccessLog(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func newRedisLimiter(t *testing.T, limit int) (*miniredis.Miniredis, http.Handler) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := redis.NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cfg := RateLimitConfig{
		Limit:   limit,
		Window:  time.Minute,
		KeyFunc: client.KeyBuilder.KeySignupRateLimit,
	}
	return mr, RateLimit(client, cfg, logger.NewNop())(okHandler)
}

func signupFrom(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=a@x.edu", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	mr, h := newRedisLimiter(t, 2)

	assert.Equal(t, http.StatusOK, signupFrom(h, "10.0.0.1:1234").Code)

	rec := signupFrom(h, "10.0.0.1:5555")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = signupFrom(h, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"detail":"Too many requests"}`, rec.Body.String())
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// Other clients have their own window
	assert.Equal(t, http.StatusOK, signupFrom(h, "10.0.0.2:1234").Code)

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, signupFrom(h, "10.0.0.1:1234").Code)
}

func TestRateLimit_KeysAreHashed(t *testing.T) {
	mr, h := newRedisLimiter(t, 5)
	signupFrom(h, "192.168.1.50:1234")

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.NotContains(t, keys[0], "192.168.1.50")
	assert.Contains(t, keys[0], "signup:ratelimit:")
}

func TestRateLimit_NilCounterDisables(t *testing.T) {
	h := RateLimit(nil, RateLimitConfig{Limit: 1, Window: time.Minute}, logger.NewNop())(okHandler)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, signupFrom(h, "10.0.0.1:1").Code)
	}
}

type failingCounter struct{}

func (failingCounter) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	return 0, 0, stderrors.New("redis down")
}

func TestRateLimit_FailsOpen(t *testing.T) {
	cfg := RateLimitConfig{Limit: 1, Window: time.Minute, KeyFunc: func(s string) string { return s }}
	h := RateLimit(failingCounter{}, cfg, logger.NewNop())(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, signupFrom(h, "10.0.0.1:1").Code)
	}
}
