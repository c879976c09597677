// Package order builds immutable order records at checkout.
package order

import (
	"fmt"
	"time"

	"github.com/digistorehq/digistore/core/cart"
	"github.com/digistorehq/digistore/money"
	"github.com/digistorehq/digistore/random"
)

type Status string

const (
	Pending   Status = "Pending"
	Shipped   Status = "Shipped"
	Completed Status = "Completed"
	Cancelled Status = "Cancelled"
)

// Item is a snapshot of a purchased product taken at commit time. It
// is never re-derived from the catalog afterwards, so later price or
// title edits cannot rewrite history.
type Item struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Quantity int          `json:"quantity"`
	Price    money.Amount `json:"price"`
}

// Order is created once at checkout and never mutated afterwards,
// except for Status which back-office tooling may advance.
type Order struct {
	ID            string       `json:"id"`
	CustomerName  string       `json:"customerName"`
	CustomerEmail string       `json:"customerEmail"`
	Date          string       `json:"date"`
	Total         money.Amount `json:"total"`
	Status        Status       `json:"status"`
	Items         []Item       `json:"items"`
}

// Customer identifies the buyer on the order record. Checkout without
// an account falls back to placeholder contact details.
type Customer struct {
	Name  string
	Email string
}

// New snapshots the priced lines into an order. The id is derived from
// the commit time with a random suffix, which keeps ids effectively
// unique without a counter in the store.
func New(lines []cart.Line, total money.Amount, customer Customer, now time.Time) Order {
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			ID:       l.ProductID,
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.UnitPrice,
		})
	}

	name, email := customer.Name, customer.Email
	if name == "" {
		name = "Valued Customer"
	}
	if email == "" {
		email = "customer@example.com"
	}

	return Order{
		ID:            fmt.Sprintf("DC-%d-%s", now.UnixMilli(), random.String(4)),
		CustomerName:  name,
		CustomerEmail: email,
		Date:          now.Format("2006-01-02"),
		Total:         total,
		Status:        Completed,
		Items:         items,
	}
}
