package middleware

import (
	pkgLog "mindgarden-backend/pkg/log"
)

type Middleware struct {
	l               pkgLog.Logger
	rateLimitPerMin int
}

func New(l pkgLog.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
	}
}
