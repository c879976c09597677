package api

import (
	"context"
	"net/http"

	"github.com/digistorehq/digistore/api/web"
	"github.com/digistorehq/digistore/api/weberr"
	"github.com/digistorehq/digistore/core/shop"
)

func handleToggleWishlist(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "product_id")
		if err != nil {
			return weberr.NotFound(err)
		}
		if _, ok := s.Product(id); !ok {
			return weberr.NotFound(shop.ErrUnknownProduct)
		}

		out := struct {
			Wishlisted bool `json:"wishlisted"`
		}{s.ToggleWishlist(id)}
		return web.Respond(ctx, w, out, http.StatusOK)
	}
}

func handleShowWishlist(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, s.Wishlist(), http.StatusOK)
	}
}
