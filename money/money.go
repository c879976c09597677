// Package money represents monetary values as integer paise so that
// repeated additions never accumulate binary floating-point drift. The
// currency-prefixed decimal text form ("₹1999.00") exists only at the
// serialization boundary.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Symbol is the currency prefix used by the catalog's text representation.
const Symbol = "₹"

// Amount is a quantity of money in paise (hundredths of a rupee).
type Amount int64

var ErrMalformed = errors.New("malformed amount")

// FromRupees converts whole rupees to an Amount.
func FromRupees(r int64) Amount {
	return Amount(r * 100)
}

// Parse reads a currency-prefixed decimal text amount. The ₹ prefix,
// thousands separators and surrounding whitespace are optional; at most
// two fractional digits are accepted.
func Parse(s string) (Amount, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, Symbol)
	t = strings.ReplaceAll(t, ",", "")
	t = strings.TrimSpace(t)
	if t == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	neg := false
	if t[0] == '-' {
		neg = true
		t = t[1:]
	}

	whole, frac := t, ""
	if i := strings.IndexByte(t, '.'); i >= 0 {
		whole, frac = t[:i], t[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: %q has more than two decimals", ErrMalformed, s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	a := Amount(w*100 + f)
	if neg {
		a = -a
	}
	return a, nil
}

// MustParse is a test and seed-data helper that panics on malformed input.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String renders the amount in the canonical ₹-prefixed form with two
// decimals, e.g. "₹499.00".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, Symbol, v/100, v%100)
}

// Mul scales the amount by an item quantity.
func (a Amount) Mul(qty int) Amount {
	return a * Amount(qty)
}

// MarshalJSON writes the canonical text form.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts both the prefixed text form and a bare JSON
// number, since hand-edited catalog data has used both.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMalformed, s)
		}
		s = unq
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
