package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/digistorehq/digistore/api/web"
	"github.com/digistorehq/digistore/api/weberr"
	"github.com/digistorehq/digistore/rate"
)

// RateLimit throttles a route per remote address. The coupon apply
// endpoint sits behind it so codes cannot be enumerated.
func RateLimit(lm *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !lm.Check(ip) {
				return weberr.TooManyRequests(errors.New("rate limit exceeded for " + ip))
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
