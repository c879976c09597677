package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/digistorehq/digistore/api"
	"github.com/digistorehq/digistore/core/shop"
	"github.com/digistorehq/digistore/store"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMux builds the full router over a fresh in-memory store with the
// seed catalog.
func newMux(t *testing.T) http.Handler {
	t.Helper()

	logger, _ := test.NewNullLogger()
	s := shop.New(context.Background(), logger, store.NewMemory(0))
	return api.APIMux(api.APIConfig{
		Log:  logger,
		Shop: s,
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestListProducts(t *testing.T) {
	h := newMux(t)

	w := do(t, h, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var products []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 4)
}

func TestShowProduct(t *testing.T) {
	h := newMux(t)

	w := do(t, h, http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var p map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "₹499.00", p["price"])
	assert.Equal(t, "₹299.00", p["salePrice"])

	w = do(t, h, http.MethodGet, "/products/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/products/top-rated", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewEndpoints(t *testing.T) {
	h := newMux(t)

	w := do(t, h, http.MethodPost, "/products/1/reviews", `{"rating":9,"comment":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "out-of-range rating is rejected")

	w = do(t, h, http.MethodPost, "/products/1/reviews", `{"rating":4,"comment":"solid","name":"asha"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodGet, "/products/1/reviews", "")
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.NotEmpty(t, reviews)
	assert.Equal(t, "solid", reviews[0]["comment"], "newest review first")
	assert.Equal(t, "asha", reviews[0]["name"])
}

func TestTreeEndpoints(t *testing.T) {
	h := newMux(t)

	w := do(t, h, http.MethodPost, "/products/1/modules", `{"title":"Bonus"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = do(t, h, http.MethodPost, "/products/1/modules/"+created.ID+"/files",
		`{"name":"notes.pdf","type":"pdf","url":"data:notes"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodPost, "/products/1/modules/"+created.ID+"/files",
		`{"name":"weird","type":"floppy","url":"data:x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "unknown file types are rejected")

	w = do(t, h, http.MethodPut, "/products/1/modules/"+created.ID, `{"title":"Bonus Material"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodDelete, "/products/1/modules/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodPost, "/products/99/modules", `{"title":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProductAndVisibility(t *testing.T) {
	h := newMux(t)

	w := do(t, h, http.MethodPost, "/products",
		`{"title":"Notion Templates Pack","description":"Ready-made workspaces","price":"₹799"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var p map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "₹799.00", p["price"])

	w = do(t, h, http.MethodGet, "/products", "")
	var products []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 5)

	w = do(t, h, http.MethodPut, "/products/1/visibility", `{"isVisible":false}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/products", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 4, "hidden products drop off the storefront list")

	w = do(t, h, http.MethodPost, "/products", `{"title":"Broken","description":"x","price":"free!!"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateCoupon(t *testing.T) {
	h := newMux(t)

	w := do(t, h, http.MethodPost, "/coupons",
		`{"code":"diwali20","type":"percentage","value":20,"expiryDate":"2026-11-30","usageLimit":50}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var c map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Equal(t, "DIWALI20", c["code"])

	w = do(t, h, http.MethodPost, "/coupons",
		`{"code":"DIWALI20","type":"fixed","value":10,"expiryDate":"2026-11-30","usageLimit":1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, h, http.MethodPost, "/coupons",
		`{"code":"BAD","type":"lucky-draw","value":10,"expiryDate":"2026-11-30","usageLimit":1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, h, http.MethodGet, "/coupons", "")
	require.Equal(t, http.StatusOK, w.Code)
	var coupons []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &coupons))
	assert.Len(t, coupons, 5)
}

func TestCartAndCheckout(t *testing.T) {
	h := newMux(t)

	w := do(t, h, http.MethodPost, "/checkout", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty cart cannot be checked out")

	w = do(t, h, http.MethodPut, "/cart/items", `{"productId":1,"quantity":2}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var c struct {
		Items    []map[string]any `json:"items"`
		Subtotal string           `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	require.Len(t, c.Items, 1)
	assert.Equal(t, "₹598.00", c.Subtotal, "sale price times two")

	w = do(t, h, http.MethodPost, "/checkout", `{"name":"asha","email":"asha@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var ord map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ord))
	assert.Equal(t, "₹598.00", ord["total"])

	w = do(t, h, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)

	w = do(t, h, http.MethodGet, "/products/purchased", "")
	require.Equal(t, http.StatusOK, w.Code)
	var purchased []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &purchased))
	assert.Len(t, purchased, 1)

	w = do(t, h, http.MethodGet, "/cart", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Empty(t, c.Items, "checkout clears the cart")
}

func TestCartItemUpdateAndDelete(t *testing.T) {
	h := newMux(t)

	w := do(t, h, http.MethodPut, "/cart/items", `{"productId":2}`)
	require.Equal(t, http.StatusNoContent, w.Code, "quantity defaults to one")

	w = do(t, h, http.MethodPut, "/cart/items/2", `{"quantity":3}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/cart", "")
	var c struct {
		Items []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)

	w = do(t, h, http.MethodDelete, "/cart/items/2", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodPut, "/cart/items", `{"productId":99}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyCouponRejections(t *testing.T) {
	h := newMux(t)

	w := do(t, h, http.MethodPost, "/coupons/apply", `{"code":"NOPE"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var er struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
	assert.Equal(t, "invalid or inactive coupon", er.Error)

	w = do(t, h, http.MethodPost, "/coupons/apply", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "a code is required")
}

func TestApplyCouponRateLimited(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := shop.New(context.Background(), logger, store.NewMemory(0))
	h := api.APIMux(api.APIConfig{
		Log:            logger,
		Shop:           s,
		CouponBurst:    2,
		CouponInterval: time.Hour,
	})

	do(t, h, http.MethodPost, "/coupons/apply", `{"code":"NOPE"}`)
	do(t, h, http.MethodPost, "/coupons/apply", `{"code":"NOPE"}`)

	w := do(t, h, http.MethodPost, "/coupons/apply", `{"code":"NOPE"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestWishlistToggle(t *testing.T) {
	h := newMux(t)

	w := do(t, h, http.MethodPost, "/wishlist/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Wishlisted bool `json:"wishlisted"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.Wishlisted)

	w = do(t, h, http.MethodPost, "/wishlist/1", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.False(t, out.Wishlisted)

	w = do(t, h, http.MethodPost, "/wishlist/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCorsPreflight(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := shop.New(context.Background(), logger, store.NewMemory(0))
	h := api.APIMux(api.APIConfig{
		Log:        logger,
		Shop:       s,
		CorsOrigin: "http://localhost:5173",
	})

	w := do(t, h, http.MethodOptions, "/products", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/products", "")
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
