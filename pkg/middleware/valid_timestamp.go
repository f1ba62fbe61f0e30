package middleware

import (
	"strconv"
	"time"

	"github.com/devfolio/pkg/endpoint"
)

// ValidTimestamp checks that a unix-seconds header value sits inside the
// accepted clock-skew window.
type ValidTimestamp struct {
	raw string
	now func() time.Time
}

func NewValidTimestamp(raw string, now func() time.Time) ValidTimestamp {
	if now == nil {
		now = time.Now
	}

	return ValidTimestamp{raw: raw, now: now}
}

func (v ValidTimestamp) Validate(clockSkew time.Duration, disallowFuture bool) *endpoint.ApiError {
	seconds, err := strconv.ParseInt(v.raw, 10, 64)

	if err != nil {
		return endpoint.BadRequestError("invalid timestamp header")
	}

	stamp := time.Unix(seconds, 0)
	now := v.now()

	if now.Sub(stamp) > clockSkew {
		return endpoint.BadRequestError("stale request timestamp")
	}

	if disallowFuture && stamp.Sub(now) > clockSkew {
		return endpoint.BadRequestError("request timestamp is in the future")
	}

	return nil
}
