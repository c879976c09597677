package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/digistorehq/digistore/api/web"
	"github.com/digistorehq/digistore/api/weberr"
	"github.com/digistorehq/digistore/core/cart"
	"github.com/digistorehq/digistore/core/shop"
	"github.com/digistorehq/digistore/money"
	"github.com/digistorehq/digistore/validate"
)

func handleShowCart(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		lines := s.CartDetails()

		out := struct {
			Items    []cart.Line  `json:"items"`
			Subtotal money.Amount `json:"subtotal"`
		}{
			Items:    lines,
			Subtotal: cart.Subtotal(lines),
		}
		return web.Respond(ctx, w, out, http.StatusOK)
	}
}

func handleCreateCartItem(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var ni cart.ItemNew
		if err := web.Decode(w, r, &ni); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}
		if err := validate.Check(ni); err != nil {
			return weberr.Unprocessable(err)
		}

		if ni.Quantity == 0 {
			ni.Quantity = 1
		}

		if err := s.AddToCart(ni.ProductID, ni.Quantity); err != nil {
			return cartError(err)
		}
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func handleUpdateCartItem(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "product_id")
		if err != nil {
			return weberr.NotFound(err)
		}

		var payload struct {
			Quantity int `json:"quantity"`
		}
		if err := web.Decode(w, r, &payload); err != nil {
			return weberr.BadRequest(errors.New("unable to decode payload"))
		}

		s.UpdateCartQuantity(id, payload.Quantity)
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func handleDeleteCartItem(s *shop.Shop) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.IntParam(r, "product_id")
		if err != nil {
			return weberr.NotFound(err)
		}

		s.RemoveFromCart(id)
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func cartError(err error) error {
	switch {
	case errors.Is(err, shop.ErrUnknownProduct):
		return weberr.NotFound(err)
	case errors.Is(err, shop.ErrBadQuantity):
		return weberr.BadRequest(err)
	}
	return err
}
