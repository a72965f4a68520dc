package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/lamnguyen-dev/tilecat-backend/api/responses"
	pkgerrors "github.com/lamnguyen-dev/tilecat-backend/pkg/errors"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/logger"
)

// RateLimitStore is the counter surface the limiter needs. The redis client
// satisfies it.
type RateLimitStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RateLimitPolicy throttles a traffic surface per client IP within a rolling
// window. A zero window or limit disables the policy.
type RateLimitPolicy struct {
	Name   string
	Window time.Duration
	PerIP  int
}

func (p RateLimitPolicy) enabled() bool {
	return p.Window > 0 && p.PerIP > 0
}

func (p RateLimitPolicy) key(ip string) string {
	name := strings.ToLower(strings.TrimSpace(p.Name))
	if name == "" {
		name = "default"
	}
	return fmt.Sprintf("rl:ip:%s:%s", name, ip)
}

// RateLimit enforces the policy against the store. With a nil store or a
// disabled policy the middleware is a no-op, so environments without redis
// keep working.
func RateLimit(policy RateLimitPolicy, store RateLimitStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			count, err := store.IncrWithTTL(ctx, policy.key(ip), policy.Window)
			if err != nil {
				// A broken counter must not take the endpoint down.
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "policy", policy.Name), "rate_limit.store_unavailable")
				}
				next.ServeHTTP(w, r)
				return
			}
			if count > int64(policy.PerIP) {
				if logg != nil {
					logCtx := logg.WithFields(ctx, map[string]any{
						"policy":         policy.Name,
						"ip":             ip,
						"attempts":       count,
						"limit":          policy.PerIP,
						"window_seconds": int(policy.Window.Seconds()),
					})
					logg.Warn(logCtx, "rate_limit.blocked")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
