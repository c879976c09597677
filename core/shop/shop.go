// Package shop owns the application state: the catalog, reviews,
// coupons, orders, the cart, the purchased-id set and the wishlist.
// Every operation runs under one mutex, which keeps the engine a
// single logical actor; the durable store underneath is last writer
// wins with no merge.
package shop

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/digistorehq/digistore/core/cart"
	"github.com/digistorehq/digistore/core/catalog"
	"github.com/digistorehq/digistore/core/coupon"
	"github.com/digistorehq/digistore/core/order"
	"github.com/digistorehq/digistore/core/review"
	"github.com/digistorehq/digistore/money"
	"github.com/digistorehq/digistore/seed"
	"github.com/digistorehq/digistore/store"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyCart      = errors.New("no items to checkout")
	ErrUnknownProduct = errors.New("product not found")
	ErrBadQuantity    = errors.New("quantity must be at least 1")
	ErrDuplicateCode  = errors.New("coupon code already exists")
)

type Shop struct {
	mu  sync.Mutex
	log logrus.FieldLogger
	kv  store.KV

	products  []catalog.Product
	reviews   map[int][]review.Review
	coupons   []coupon.Coupon
	orders    []order.Order
	cartItems []cart.Item
	purchased []int
	wishlist  []int

	now func() time.Time
}

// New loads every collection from the store, falling back to seed
// data (or an empty collection) when a key is missing or unreadable.
// A broken store is reported, never fatal.
func New(ctx context.Context, log logrus.FieldLogger, kv store.KV) *Shop {
	s := &Shop{
		log: log,
		kv:  kv,
		now: time.Now,
	}

	s.products = load(ctx, log, kv, store.KeyProducts, seed.Products())
	s.reviews = load(ctx, log, kv, store.KeyReviews, seed.Reviews())
	s.coupons = load(ctx, log, kv, store.KeyCoupons, seed.Coupons())
	s.orders = load(ctx, log, kv, store.KeyOrders, []order.Order{})
	s.cartItems = load(ctx, log, kv, store.KeyCart, []cart.Item{})
	s.purchased = load(ctx, log, kv, store.KeyPurchased, []int{})
	s.wishlist = load(ctx, log, kv, store.KeyWishlist, []int{})

	return s
}

func load[T any](ctx context.Context, log logrus.FieldLogger, kv store.KV, key string, def T) T {
	var v T
	err := kv.Load(ctx, key, &v)
	switch {
	case err == nil:
		return v
	case errors.Is(err, store.ErrNotFound):
		return def
	default:
		log.WithField("key", key).WithError(err).Warn("stored record unreadable, using defaults")
		return def
	}
}

// sync persists the named collections. Failures are logged, with
// quota exhaustion called out distinctly, and never unwind the
// in-memory change that triggered the write.
func (s *Shop) sync(keys ...string) {
	ctx := context.Background()
	for _, key := range keys {
		var v any
		switch key {
		case store.KeyProducts:
			v = s.products
		case store.KeyReviews:
			v = s.reviews
		case store.KeyCoupons:
			v = s.coupons
		case store.KeyOrders:
			v = s.orders
		case store.KeyCart:
			v = s.cartItems
		case store.KeyPurchased:
			v = s.purchased
		case store.KeyWishlist:
			v = s.wishlist
		default:
			continue
		}

		err := s.kv.Save(ctx, key, v)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrQuotaExceeded):
			s.log.WithField("key", key).Warn("storage full, state kept in memory only")
		default:
			s.log.WithField("key", key).WithError(err).Warn("storage write failed")
		}
	}
}

// Products returns every product joined with its derived rating. The
// rating is recomputed on each call, never cached on the product.
func (s *Shop) Products() []review.Rated {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratedLocked(false)
}

// VisibleProducts filters out products hidden from the storefront.
func (s *Shop) VisibleProducts() []review.Rated {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratedLocked(true)
}

func (s *Shop) ratedLocked(visibleOnly bool) []review.Rated {
	out := make([]review.Rated, 0, len(s.products))
	for _, p := range s.products {
		if visibleOnly && !p.Visible {
			continue
		}
		out = append(out, review.Rate(p, s.reviews[p.ID]))
	}
	return out
}

// Product returns a single rated product.
func (s *Shop) Product(id int) (review.Rated, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return review.Rate(p, s.reviews[p.ID]), true
		}
	}
	return review.Rated{}, false
}

// ViewProduct returns the product and bumps its view counter.
func (s *Shop) ViewProduct(id int) (review.Rated, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products[i].ViewCount++
			rated := review.Rate(s.products[i], s.reviews[p.ID])
			s.sync(store.KeyProducts)
			return rated, true
		}
	}
	return review.Rated{}, false
}

// CreateProduct adds a product to the catalog. New products start
// visible with an empty content tree; ids continue from the highest
// id in use.
func (s *Shop) CreateProduct(np catalog.ProductNew) (catalog.Product, error) {
	price, err := money.Parse(np.Price)
	if err != nil {
		return catalog.Product{}, err
	}
	var sale *money.Amount
	if np.SalePrice != "" {
		v, err := money.Parse(np.SalePrice)
		if err != nil {
			return catalog.Product{}, err
		}
		sale = &v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := 0
	for _, p := range s.products {
		if p.ID > id {
			id = p.ID
		}
	}

	p := catalog.Product{
		ID:              id + 1,
		ImageSeed:       np.ImageSeed,
		Title:           np.Title,
		Description:     np.Description,
		LongDescription: np.LongDescription,
		Category:        np.Category,
		Price:           price,
		SalePrice:       sale,
		ManualRating:    np.ManualRating,
		Visible:         true,
		IsFree:          np.IsFree,
	}
	s.products = append(s.products, p)
	s.sync(store.KeyProducts)
	return p, nil
}

// SetProductVisibility hides or shows a product on the storefront.
func (s *Shop) SetProductVisibility(id int, visible bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products[i].Visible = visible
			s.sync(store.KeyProducts)
			return true
		}
	}
	return false
}

// TopRated returns the three best-rated visible products.
func (s *Shop) TopRated() []review.Rated {
	s.mu.Lock()
	defer s.mu.Unlock()

	rated := s.ratedLocked(true)
	// Insertion sort keeps this simple for a three-element result.
	for i := 1; i < len(rated); i++ {
		for j := i; j > 0 && rated[j].Rating > rated[j-1].Rating; j-- {
			rated[j], rated[j-1] = rated[j-1], rated[j]
		}
	}
	if len(rated) > 3 {
		rated = rated[:3]
	}
	return rated
}

// PurchasedProducts lists the products the customer has checked out.
func (s *Shop) PurchasedProducts() []review.Rated {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := make(map[int]bool, len(s.purchased))
	for _, id := range s.purchased {
		owned[id] = true
	}

	out := make([]review.Rated, 0, len(s.purchased))
	for _, p := range s.products {
		if owned[p.ID] {
			out = append(out, review.Rate(p, s.reviews[p.ID]))
		}
	}
	return out
}

// Reviews lists a product's reviews, newest first.
func (s *Shop) Reviews(productID int) []review.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.reviews[productID]
	out := make([]review.Review, len(src))
	copy(out, src)
	return out
}

// AddReview prepends a review to the product's list. Reviews are
// append-only; nothing here edits or removes one.
func (s *Shop) AddReview(productID int, nr review.ReviewNew, name string) review.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		name = "Customer"
	}
	r := review.Review{
		Name:    name,
		Rating:  nr.Rating,
		Comment: nr.Comment,
		Date:    "Just now",
	}
	if s.reviews == nil {
		s.reviews = make(map[int][]review.Review)
	}
	s.reviews[productID] = append([]review.Review{r}, s.reviews[productID]...)
	s.sync(store.KeyReviews)
	return r
}

// Coupons returns a copy of the coupon list.
func (s *Shop) Coupons() []coupon.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]coupon.Coupon, len(s.coupons))
	copy(out, s.coupons)
	return out
}

// CreateCoupon adds a coupon, storing the code uppercased. Lookups are
// case-insensitive, so the duplicate check is too.
func (s *Shop) CreateCoupon(nc coupon.CouponNew) (coupon.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := coupon.Find(s.coupons, nc.Code); ok {
		return coupon.Coupon{}, ErrDuplicateCode
	}

	id := 0
	for _, c := range s.coupons {
		if c.ID > id {
			id = c.ID
		}
	}

	c := coupon.Coupon{
		ID:         id + 1,
		Code:       strings.ToUpper(nc.Code),
		Type:       coupon.Type(nc.Type),
		Value:      nc.Value,
		ExpiryDate: nc.ExpiryDate,
		IsActive:   true,
		UsageLimit: nc.UsageLimit,
	}
	s.coupons = append(s.coupons, c)
	s.sync(store.KeyCoupons)
	return c, nil
}

// ApplyCoupon validates a code for preview. It never touches the
// usage counter; only a completed checkout does that.
func (s *Shop) ApplyCoupon(code string) (coupon.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := coupon.Find(s.coupons, code)
	if !ok {
		return coupon.Coupon{}, coupon.ErrInvalidOrInactive
	}
	if err := coupon.Validate(c, s.now()); err != nil {
		return coupon.Coupon{}, err
	}
	return c, nil
}

// Cart returns a copy of the raw cart items.
func (s *Shop) Cart() []cart.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]cart.Item, len(s.cartItems))
	copy(out, s.cartItems)
	return out
}

// CartDetails prices the cart against the live catalog. Items whose
// product has disappeared are skipped, not errors.
func (s *Shop) CartDetails() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLinesLocked()
}

func (s *Shop) cartLinesLocked() []cart.Line {
	lines := make([]cart.Line, 0, len(s.cartItems))
	for _, it := range s.cartItems {
		p, ok := s.productLocked(it.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, cart.Line{
			ProductID: p.ID,
			Name:      p.Title,
			UnitPrice: p.EffectivePrice(),
			Quantity:  it.Quantity,
		})
	}
	return lines
}

func (s *Shop) productLocked(id int) (catalog.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// AddToCart merges the product into the cart.
func (s *Shop) AddToCart(productID, quantity int) error {
	if quantity < 1 {
		return ErrBadQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.productLocked(productID); !ok {
		return ErrUnknownProduct
	}
	s.cartItems = cart.Add(s.cartItems, productID, quantity)
	s.sync(store.KeyCart)
	return nil
}

// UpdateCartQuantity sets a new quantity; zero or less removes the
// item.
func (s *Shop) UpdateCartQuantity(productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartItems = cart.SetQuantity(s.cartItems, productID, quantity)
	s.sync(store.KeyCart)
}

// RemoveFromCart drops the product from the cart.
func (s *Shop) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartItems = cart.Remove(s.cartItems, productID)
	s.sync(store.KeyCart)
}

// CheckoutCart commits the whole cart as one order.
func (s *Shop) CheckoutCart(couponCode string, customer order.Customer) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cartLinesLocked()
	if len(lines) == 0 {
		return order.Order{}, ErrEmptyCart
	}
	return s.commitLocked(lines, couponCode, customer)
}

// BuyNow commits a single product purchase, bypassing the cart. The
// cart is still cleared afterwards, matching the storefront flow
// where a direct purchase supersedes whatever was being assembled.
func (s *Shop) BuyNow(productID, quantity int, couponCode string, customer order.Customer) (order.Order, error) {
	if quantity < 1 {
		return order.Order{}, ErrBadQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.productLocked(productID)
	if !ok {
		return order.Order{}, ErrUnknownProduct
	}

	lines := []cart.Line{{
		ProductID: p.ID,
		Name:      p.Title,
		UnitPrice: p.EffectivePrice(),
		Quantity:  quantity,
	}}
	return s.commitLocked(lines, couponCode, customer)
}

// commitLocked is the atomic checkout step. Prices are recomputed
// from the live catalog here, never trusted from earlier in the
// interaction; the lines passed in were built under the same lock.
// The in-memory commit succeeds regardless of the storage outcome.
func (s *Shop) commitLocked(lines []cart.Line, couponCode string, customer order.Customer) (order.Order, error) {
	subtotal := cart.Subtotal(lines)

	var discount money.Amount
	couponIdx := -1
	if couponCode != "" {
		c, ok := coupon.Find(s.coupons, couponCode)
		if !ok {
			return order.Order{}, coupon.ErrInvalidOrInactive
		}
		if err := coupon.Validate(c, s.now()); err != nil {
			return order.Order{}, err
		}
		discount = coupon.Discount(c, subtotal)
		for i := range s.coupons {
			if s.coupons[i].ID == c.ID {
				couponIdx = i
			}
		}
	}

	ord := order.New(lines, cart.FinalPrice(subtotal, discount), customer, s.now())

	// Newest order first is the external contract.
	s.orders = append([]order.Order{ord}, s.orders...)

	if couponIdx >= 0 {
		s.coupons[couponIdx].TimesUsed++
	}

	// Idempotent union: an already-purchased product is not re-added.
	owned := make(map[int]bool, len(s.purchased))
	for _, id := range s.purchased {
		owned[id] = true
	}
	for _, l := range lines {
		if !owned[l.ProductID] {
			s.purchased = append(s.purchased, l.ProductID)
			owned[l.ProductID] = true
		}
	}

	s.cartItems = nil

	s.sync(store.KeyOrders, store.KeyCoupons, store.KeyPurchased, store.KeyCart)
	return ord, nil
}

// Orders returns a copy of the order list, newest first.
func (s *Shop) Orders() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// PurchasedIDs returns a copy of the purchased-product-id set.
func (s *Shop) PurchasedIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, len(s.purchased))
	copy(out, s.purchased)
	return out
}

// ToggleWishlist adds or removes the product from the wishlist and
// keeps the product's wishlist counter in step, never below zero. It
// reports whether the product is wishlisted afterwards.
func (s *Shop) ToggleWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	adding := true
	next := make([]int, 0, len(s.wishlist))
	for _, id := range s.wishlist {
		if id == productID {
			adding = false
			continue
		}
		next = append(next, id)
	}
	if adding {
		next = append(next, productID)
	}
	s.wishlist = next

	for i, p := range s.products {
		if p.ID != productID {
			continue
		}
		if adding {
			s.products[i].WishlistCount++
		} else if s.products[i].WishlistCount > 0 {
			s.products[i].WishlistCount--
		}
	}

	s.sync(store.KeyWishlist, store.KeyProducts)
	return adding
}

// Wishlist returns a copy of the wishlisted product ids.
func (s *Shop) Wishlist() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}
