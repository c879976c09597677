package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/digistorehq/digistore/api/web"
	"github.com/digistorehq/digistore/api/weberr"
	"github.com/digistorehq/digistore/core/coupon"
	"github.com/digistorehq/digistore/core/order"
	"github.com/digistorehq/digistore/core/shop"
	"github.com/digistorehq/digistore/validate"
)

func handleApplyCoupon(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var payload struct {
			Code string `json:"code" validate:"required"`
		}
		if err := web.Decode(w, r, &payload); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}
		if err := validate.Check(payload); err != nil {
			return weberr.Unprocessable(err)
		}

		c, err := s.ApplyCoupon(payload.Code)
		if err != nil {
			return couponError(err)
		}

		out := struct {
			Code  string      `json:"code"`
			Type  coupon.Type `json:"type"`
			Value int64       `json:"value"`
		}{c.Code, c.Type, c.Value}
		return web.Respond(ctx, w, out, http.StatusOK)
	}
}

// CheckoutInput commits either the whole cart or, when ProductID is
// set, a single direct purchase.
type CheckoutInput struct {
	ProductID  int    `json:"productId"`
	Quantity   int    `json:"quantity" validate:"omitempty,gte=1"`
	CouponCode string `json:"couponCode"`
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
}

func handleCheckout(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in CheckoutInput
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}
		if err := validate.Check(in); err != nil {
			return weberr.Unprocessable(err)
		}

		customer := order.Customer{Name: in.Name, Email: in.Email}

		var (
			ord order.Order
			err error
		)
		if in.ProductID != 0 {
			qty := in.Quantity
			if qty == 0 {
				qty = 1
			}
			ord, err = s.BuyNow(in.ProductID, qty, in.CouponCode, customer)
		} else {
			ord, err = s.CheckoutCart(in.CouponCode, customer)
		}
		if err != nil {
			return checkoutError(err)
		}

		return web.Respond(ctx, w, ord, http.StatusCreated)
	}
}

func handleListOrders(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, s.Orders(), http.StatusOK)
	}
}

// couponError renders coupon rejections with their user-facing message.
func couponError(err error) error {
	switch {
	case errors.Is(err, coupon.ErrInvalidOrInactive),
		errors.Is(err, coupon.ErrExpired),
		errors.Is(err, coupon.ErrLimitReached),
		errors.Is(err, coupon.ErrMalformedDate):
		return weberr.Unprocessable(err)
	}
	return err
}

func checkoutError(err error) error {
	switch {
	case errors.Is(err, shop.ErrEmptyCart):
		return weberr.BadRequest(err)
	case errors.Is(err, shop.ErrUnknownProduct):
		return weberr.NotFound(err)
	case errors.Is(err, shop.ErrBadQuantity):
		return weberr.BadRequest(err)
	}
	return couponError(err)
}
