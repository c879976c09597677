package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/digistorehq/digistore/api/web"
	"github.com/digistorehq/digistore/api/weberr"
	"github.com/digistorehq/digistore/core/catalog"
	"github.com/digistorehq/digistore/core/coupon"
	"github.com/digistorehq/digistore/core/shop"
	"github.com/digistorehq/digistore/money"
	"github.com/digistorehq/digistore/validate"
)

// Back-office endpoints. Auth is handled upstream of this service, so
// these routes are as open as the storefront ones.

func handleCreateProduct(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var np catalog.ProductNew
		if err := web.Decode(w, r, &np); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}
		if err := validate.Check(np); err != nil {
			return weberr.Unprocessable(err)
		}

		p, err := s.CreateProduct(np)
		if err != nil {
			if errors.Is(err, money.ErrMalformed) {
				return weberr.Unprocessable(err)
			}
			return err
		}
		return web.Respond(ctx, w, p, http.StatusCreated)
	}
}

func handleSetProductVisibility(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "id")
		if err != nil {
			return weberr.NotFound(err)
		}

		var payload struct {
			Visible bool `json:"isVisible"`
		}
		if err := web.Decode(w, r, &payload); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}

		if !s.SetProductVisibility(id, payload.Visible) {
			return weberr.NotFound(shop.ErrUnknownProduct)
		}
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func handleListCoupons(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, s.Coupons(), http.StatusOK)
	}
}

func handleCreateCoupon(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var nc coupon.CouponNew
		if err := web.Decode(w, r, &nc); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}
		if err := validate.Check(nc); err != nil {
			return weberr.Unprocessable(err)
		}

		c, err := s.CreateCoupon(nc)
		if err != nil {
			if errors.Is(err, shop.ErrDuplicateCode) {
				return weberr.Unprocessable(err)
			}
			return err
		}
		return web.Respond(ctx, w, c, http.StatusCreated)
	}
}
