package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware rejects clients that have used up their bucket with
// 429 and a Retry-After header. It keys on RemoteAddr, which chi's RealIP
// middleware may already have replaced with the forwarded client address.
func RateLimitMiddleware(limiter *RateLimiter, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientKey(r)

			allowed, retryAfter := limiter.Allow(client)
			if !allowed {
				log.WithFields(logrus.Fields{
					"client": client,
					"path":   r.URL.Path,
				}).Warn("rate limit exceeded")
				seconds := int(math.Ceil(retryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
				writeError(w, log, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
