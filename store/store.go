// Package store defines the durable-storage contract: a flat
// key-to-JSON map. Writes are fire-and-forget from the commerce
// engine's point of view; a failed write never invalidates the
// in-memory state that triggered it.
package store

import (
	"context"
	"errors"
)

// Keys of the persisted collections.
const (
	KeyProducts  = "siteProducts"
	KeyReviews   = "productReviews"
	KeyCoupons   = "siteCoupons"
	KeyOrders    = "siteOrders"
	KeyPurchased = "purchasedProducts"
	KeyCart      = "shoppingCart"
	KeyWishlist  = "productWishlist"
)

var (
	// ErrQuotaExceeded means the medium is out of capacity. Callers
	// surface it as a distinct warning; other failures are generic.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrUnavailable covers I/O and connectivity failures.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrNotFound is returned by Load for a missing key. Callers fall
	// back to defaults; it is never fatal.
	ErrNotFound = errors.New("key not found")

	// ErrSerialization marks a value that could not be encoded on Save
	// or decoded on Load.
	ErrSerialization = errors.New("serialization failure")
)

// KV is the read/write contract the durable medium must honor.
// Ordering between a Save and a later Load of the same key is only
// guaranteed within a single actor's sequential execution.
type KV interface {
	Save(ctx context.Context, key string, value any) error
	Load(ctx context.Context, key string, dest any) error
}
