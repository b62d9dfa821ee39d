package middleware

import (
	"momentum-tab/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route group.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. perMin <= 0 disables rate limiting.
func New(l log.Logger, perMin int) Middleware {
	mw := Middleware{l: l}
	if perMin > 0 {
		mw.limiter = newRateLimiter(perMin)
	}
	return mw
}
