package middleware

import (
	"golang.org/x/time/rate"

	"diary-agent/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. ratePerMin caps requests on the agent
// routes; zero or negative disables the limiter.
func New(l log.Logger, ratePerMin int) Middleware {
	var limiter *rate.Limiter
	if ratePerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), ratePerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
