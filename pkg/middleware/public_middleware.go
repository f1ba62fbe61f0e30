package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/devfolio/pkg/cache"
	"github.com/devfolio/pkg/endpoint"
	"github.com/devfolio/pkg/limiter"
	"github.com/devfolio/pkg/portal"
)

// PublicMiddleware provides basic protections for public endpoints.
// It applies a simple in-memory rate limiter keyed by client IP and route,
// rejects reuse of a request ID within a TTL window, and validates the
// timestamp header when a client sends one.
type PublicMiddleware struct {
	clockSkew      time.Duration
	disallowFuture bool
	requestTTL     time.Duration
	rateLimiter    *limiter.MemoryLimiter
	requestCache   *cache.TTLCache
	now            func() time.Time
}

func MakePublicMiddleware() PublicMiddleware {
	return PublicMiddleware{
		clockSkew:      5 * time.Minute,
		disallowFuture: true,
		requestTTL:     5 * time.Minute,
		rateLimiter:    limiter.NewMemoryLimiter(1*time.Minute, 60),
		requestCache:   cache.NewTTLCache(),
		now:            time.Now,
	}
}

func (p PublicMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if err := p.GuardDependencies(); err != nil {
			return err
		}

		clientIP := portal.ParseClientIP(r)
		limiterKey := strings.Join([]string{clientIP, r.URL.Path}, "|")

		if p.rateLimiter.TooMany(limiterKey) {
			return endpoint.TooManyRequests("too many requests for: " + limiterKey)
		}

		p.rateLimiter.Fail(limiterKey)

		if ts := strings.TrimSpace(r.Header.Get(portal.TimestampHeader)); ts != "" {
			vt := NewValidTimestamp(ts, p.now)

			if err := vt.Validate(p.clockSkew, p.disallowFuture); err != nil {
				return err
			}
		}

		if reqID := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader)); reqID != "" {
			key := strings.Join([]string{limiterKey, reqID}, "|")

			if p.requestCache.UseOnce(key, p.requestTTL) {
				return endpoint.BadRequestError("duplicate request id: " + reqID)
			}
		}

		return next(w, r)
	}
}

func (p PublicMiddleware) GuardDependencies() *endpoint.ApiError {
	missing := []string{}

	if p.requestCache == nil {
		missing = append(missing, "requestCache")
	}

	if p.rateLimiter == nil {
		missing = append(missing, "rateLimiter")
	}

	if len(missing) > 0 {
		err := fmt.Errorf("public middleware missing dependencies: %s", strings.Join(missing, ","))
		return endpoint.LogInternalError("public middleware missing dependencies", err)
	}

	return nil
}
