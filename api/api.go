// Package api is the HTTP facade over the shop engine: routing, the
// middleware chain and the request handlers.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/digistorehq/digistore/api/middleware"
	"github.com/digistorehq/digistore/api/web"
	"github.com/digistorehq/digistore/core/shop"
	"github.com/digistorehq/digistore/rate"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin string
	Log        logrus.FieldLogger
	Shop       *shop.Shop

	// Throttling for the coupon apply endpoint.
	CouponBurst    int
	CouponInterval time.Duration
	CouponExpiry   time.Duration
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	if cfg.CouponBurst == 0 {
		cfg.CouponBurst = 5
	}
	if cfg.CouponInterval == 0 {
		cfg.CouponInterval = time.Second
	}
	if cfg.CouponExpiry == 0 {
		cfg.CouponExpiry = 10 * time.Minute
	}
	limited := middleware.RateLimit(rate.NewLimiter(cfg.CouponBurst, cfg.CouponExpiry, rate.Every(cfg.CouponInterval)))

	s := cfg.Shop

	a.Handle(http.MethodGet, "/products/top-rated", handleTopRated(s))
	a.Handle(http.MethodGet, "/products/purchased", handlePurchased(s))
	a.Handle(http.MethodGet, "/products/{id}/reviews", handleListReviews(s))
	a.Handle(http.MethodPost, "/products/{id}/reviews", handleCreateReview(s))
	a.Handle(http.MethodGet, "/products/{id}", handleShowProduct(s))
	a.Handle(http.MethodGet, "/products", handleListProducts(s))
	a.Handle(http.MethodPost, "/products", handleCreateProduct(s))
	a.Handle(http.MethodPut, "/products/{id}/visibility", handleSetProductVisibility(s))

	a.Handle(http.MethodPost, "/products/{id}/modules", handleCreateModule(s))
	a.Handle(http.MethodPut, "/products/{id}/modules/{mid}", handleRenameModule(s))
	a.Handle(http.MethodDelete, "/products/{id}/modules/{mid}", handleDeleteModule(s))
	a.Handle(http.MethodPost, "/products/{id}/modules/{mid}/files", handleCreateFile(s))
	a.Handle(http.MethodDelete, "/products/{id}/modules/{mid}/files/{fid}", handleDeleteFile(s))

	a.Handle(http.MethodGet, "/cart", handleShowCart(s))
	a.Handle(http.MethodPut, "/cart/items", handleCreateCartItem(s))
	a.Handle(http.MethodPut, "/cart/items/{product_id}", handleUpdateCartItem(s))
	a.Handle(http.MethodDelete, "/cart/items/{product_id}", handleDeleteCartItem(s))

	a.Handle(http.MethodPost, "/coupons/apply", handleApplyCoupon(s), limited)
	a.Handle(http.MethodGet, "/coupons", handleListCoupons(s))
	a.Handle(http.MethodPost, "/coupons", handleCreateCoupon(s))
	a.Handle(http.MethodPost, "/checkout", handleCheckout(s))
	a.Handle(http.MethodGet, "/orders", handleListOrders(s))

	a.Handle(http.MethodPost, "/wishlist/{product_id}", handleToggleWishlist(s))
	a.Handle(http.MethodGet, "/wishlist", handleShowWishlist(s))

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
