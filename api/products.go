package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/digistorehq/digistore/api/web"
	"github.com/digistorehq/digistore/api/weberr"
	"github.com/digistorehq/digistore/core/review"
	"github.com/digistorehq/digistore/core/shop"
	"github.com/digistorehq/digistore/validate"
)

func handleListProducts(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, s.VisibleProducts(), http.StatusOK)
	}
}

func handleShowProduct(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		p, ok := s.ViewProduct(id)
		if !ok {
			return weberr.NotFound(shop.ErrUnknownProduct)
		}
		return web.Respond(ctx, w, p, http.StatusOK)
	}
}

func handleTopRated(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, s.TopRated(), http.StatusOK)
	}
}

func handlePurchased(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, s.PurchasedProducts(), http.StatusOK)
	}
}

func handleListReviews(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}
		if _, ok := s.Product(id); !ok {
			return weberr.NotFound(shop.ErrUnknownProduct)
		}
		return web.Respond(ctx, w, s.Reviews(id), http.StatusOK)
	}
}

func handleCreateReview(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}
		if _, ok := s.Product(id); !ok {
			return weberr.NotFound(shop.ErrUnknownProduct)
		}

		var payload struct {
			review.ReviewNew
			Name string `json:"name"`
		}
		if err := web.Decode(w, r, &payload); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}
		if err := validate.Check(payload.ReviewNew); err != nil {
			return weberr.Unprocessable(err)
		}

		rev := s.AddReview(id, payload.ReviewNew, payload.Name)
		return web.Respond(ctx, w, rev, http.StatusCreated)
	}
}
