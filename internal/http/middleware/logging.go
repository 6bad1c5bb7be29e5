// Package middleware holds the HTTP middleware shared across routes.
package middleware

import (
	"net/http"
	"time"

	"guitar-storefront/internal/logger"
)

type options struct {
	skips map[string]struct{}
}

// Option configures the request logger.
type Option func(*options)

// WithSkips excludes the given paths from request logging. Used for noisy
// health endpoints.
func WithSkips(paths ...string) Option {
	return func(o *options) {
		for _, p := range paths {
			o.skips[p] = struct{}{}
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LogRequests logs method, path, status and duration for every request.
func LogRequests(opts ...Option) func(http.Handler) http.Handler {
	o := &options{skips: map[string]struct{}{}}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, skip := o.skips[r.URL.Path]; skip {
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			logger.Infof("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
