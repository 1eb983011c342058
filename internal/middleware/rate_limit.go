package middleware

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"mergington-api/internal/observability"
	"mergington-api/pkg/errors"
	"mergington-api/pkg/logger"
)

// WindowCounter is the store behind the rate limiter. *redis.Client implements it.
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimitConfig holds signup rate limiting configuration
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	// KeyFunc maps a hashed client IP to a counter key
	KeyFunc func(ipHash string) string
}

// RateLimit limits requests per client IP with a fixed window counter.
// A nil counter disables limiting. Store errors let the request through.
func RateLimit(counter WindowCounter, config RateLimitConfig, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if counter == nil || config.Limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := config.KeyFunc(hashIP(clientIP(r)))

			count, ttl, err := counter.IncrWindow(ctx, key, config.Window)
			if err != nil {
				log.WithError(err).Warn("Rate limit check failed, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

			if count > int64(config.Limit) {
				observability.RateLimitedRequests.Inc()
				log.WithFields(map[string]interface{}{
					"request_id":    GetRequestID(ctx),
					"request_count": count,
				}).Warn("Rate limit exceeded")

				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Round(time.Second)/time.Second)))
				if err := errors.NewRateLimitError("Too many requests").Write(w); err != nil {
					log.WithError(err).Error("Failed to encode rate limit response")
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the host part of RemoteAddr. chi's RealIP middleware has
// already applied proxy headers.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// hashIP keeps raw addresses out of Redis keys
func hashIP(ip string) string {
	hash := sha256.Sum256([]byte(ip))
	return fmt.Sprintf("%x", hash)[:16]
}
