// Package coupon validates discount codes and computes the bounded
// discount they grant.
package coupon

import (
	"errors"
	"strings"
	"time"

	"github.com/digistorehq/digistore/money"
)

type Type string

const (
	Percentage Type = "percentage"
	Fixed      Type = "fixed"
)

var (
	ErrInvalidOrInactive = errors.New("invalid or inactive coupon")
	ErrExpired           = errors.New("this coupon has expired")
	ErrLimitReached      = errors.New("coupon usage limit reached")
	ErrMalformedDate     = errors.New("invalid coupon date format")
)

// Coupon grants a bounded discount, gated by an activity flag, an
// expiry date and a usage limit. TimesUsed never exceeds UsageLimit;
// it is incremented only at order commit, exactly once per completed
// order that used the code.
type Coupon struct {
	ID         int    `json:"id"`
	Code       string `json:"code"`
	Type       Type   `json:"type"`
	Value      int64  `json:"value"`
	ExpiryDate string `json:"expiryDate"`
	IsActive   bool   `json:"isActive"`
	UsageLimit int    `json:"usageLimit"`
	TimesUsed  int    `json:"timesUsed"`
}

// CouponNew is the payload for creating a coupon.
type CouponNew struct {
	Code       string `json:"code" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=percentage fixed"`
	Value      int64  `json:"value" validate:"required,gt=0"`
	ExpiryDate string `json:"expiryDate" validate:"required,datetime=2006-01-02"`
	UsageLimit int    `json:"usageLimit" validate:"required,gt=0"`
}

// Find looks a coupon up by code, case-insensitively.
func Find(coupons []Coupon, code string) (Coupon, bool) {
	for _, c := range coupons {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return Coupon{}, false
}

// Validate checks the coupon against today's date. Checks run in a
// fixed order and the first failure wins: activity, expiry, usage
// limit. The coupon stays valid through 23:59:59 local time of its
// expiry date; the time of day on today is ignored.
func Validate(c Coupon, today time.Time) error {
	if !c.IsActive {
		return ErrInvalidOrInactive
	}

	expiry, err := time.ParseInLocation("2006-01-02", c.ExpiryDate, today.Location())
	if err != nil {
		return ErrMalformedDate
	}

	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	if expiry.Before(day) {
		return ErrExpired
	}

	if c.TimesUsed >= c.UsageLimit {
		return ErrLimitReached
	}

	return nil
}

// Discount computes the amount taken off the given subtotal. Fixed
// coupons never discount below zero; percentage coupons of value <=
// 100 cannot exceed the subtotal by construction. Values above 100 are
// a data-entry problem, not validated here.
func Discount(c Coupon, subtotal money.Amount) money.Amount {
	switch c.Type {
	case Fixed:
		d := money.FromRupees(c.Value)
		if d > subtotal {
			return subtotal
		}
		return d
	case Percentage:
		// Round half up in paise.
		return money.Amount((int64(subtotal)*c.Value + 50) / 100)
	}
	return 0
}
