package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/digistorehq/digistore/api/web"
	"github.com/digistorehq/digistore/api/weberr"
)

// Panics recovers handler panics and converts them into errors for
// the error middleware above it.
func Panics() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error) {

			defer func() {
				if rec := recover(); rec != nil {
					trace := debug.Stack()
					err = weberr.Wrap(
						fmt.Errorf("panic: %v", rec),
						weberr.WithFields(map[string]any{"trace": string(trace)}),
					)
					err = weberr.InternalError(err)
				}
			}()

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
