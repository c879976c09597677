// Package cart holds the shopping cart model and its pricing helpers.
package cart

import (
	"github.com/digistorehq/digistore/money"
)

// Item references a product by id; a cart holds at most one Item per
// product.
type Item struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// ItemNew is the payload for putting a product into the cart.
type ItemNew struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity" validate:"omitempty,gte=1"`
}

// Line is a cart item priced against the live catalog.
type Line struct {
	ProductID int          `json:"productId"`
	Name      string       `json:"name"`
	UnitPrice money.Amount `json:"unitPrice"`
	Quantity  int          `json:"quantity"`
}

// Add merges the product into the cart, summing quantities when it is
// already present. The input slice is not modified.
func Add(items []Item, productID, quantity int) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i, it := range out {
		if it.ProductID == productID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, Item{ProductID: productID, Quantity: quantity})
}

// SetQuantity replaces the quantity for a product; zero or less
// removes it from the cart.
func SetQuantity(items []Item, productID, quantity int) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
			continue
		}
		if quantity > 0 {
			out = append(out, Item{ProductID: productID, Quantity: quantity})
		}
	}
	return out
}

// Remove drops the product from the cart.
func Remove(items []Item, productID int) []Item {
	return SetQuantity(items, productID, 0)
}

// Count is the total number of units across all items.
func Count(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// Subtotal sums unit price times quantity over the lines.
func Subtotal(lines []Line) money.Amount {
	var total money.Amount
	for _, l := range lines {
		total += l.UnitPrice.Mul(l.Quantity)
	}
	return total
}

// FinalPrice subtracts the discount from the subtotal, clamping at
// zero. The coupon engine already bounds the discount, so the clamp
// only guards against future callers passing an unbounded one.
func FinalPrice(subtotal, discount money.Amount) money.Amount {
	if discount >= subtotal {
		return 0
	}
	return subtotal - discount
}
