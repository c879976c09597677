package order

import (
	"strings"
	"testing"
	"time"

	"github.com/digistorehq/digistore/core/cart"
	"github.com/digistorehq/digistore/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	lines := []cart.Line{
		{ProductID: 1, Name: "Dropshipping Course", UnitPrice: money.MustParse("₹299"), Quantity: 2},
	}

	ord := New(lines, money.MustParse("₹598"), Customer{Name: "asha", Email: "asha@example.com"}, now)

	require.Len(t, ord.Items, 1)
	assert.Equal(t, 1, ord.Items[0].ID)
	assert.Equal(t, "Dropshipping Course", ord.Items[0].Name)
	assert.Equal(t, 2, ord.Items[0].Quantity)
	assert.Equal(t, money.MustParse("₹299"), ord.Items[0].Price)

	assert.Equal(t, money.MustParse("₹598"), ord.Total)
	assert.Equal(t, Completed, ord.Status)
	assert.Equal(t, "2024-06-15", ord.Date)
	assert.True(t, strings.HasPrefix(ord.ID, "DC-"), "id %q", ord.ID)
}

func TestNewAnonymousCustomer(t *testing.T) {
	ord := New(nil, 0, Customer{}, time.Now())
	assert.Equal(t, "Valued Customer", ord.CustomerName)
	assert.Equal(t, "customer@example.com", ord.CustomerEmail)
}

func TestNewIDsDiffer(t *testing.T) {
	now := time.Now()
	a := New(nil, 0, Customer{}, now)
	b := New(nil, 0, Customer{}, now)
	assert.NotEqual(t, a.ID, b.ID, "orders committed in the same millisecond must not collide")
}
