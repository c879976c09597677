package money

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{"₹499", 49900},
		{"₹1,999", 199900},
		{"₹1999.50", 199950},
		{"299", 29900},
		{"0.05", 5},
		{" ₹3 ", 300},
		{"-₹10.25", -1025},
		{".99", 99},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", "₹", "abc", "1.234", "1.2.3"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		in   Amount
		want string
	}{
		{49900, "₹499.00"},
		{199950, "₹1999.50"},
		{5, "₹0.05"},
		{0, "₹0.00"},
		{-1025, "-₹10.25"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("Amount(%d).String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Price Amount `json:"price"`
	}

	b, err := json.Marshal(wrapper{Price: 199900})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"price":"₹1999.00"}` {
		t.Fatalf("unexpected encoding: %s", b)
	}

	var w wrapper
	if err := json.Unmarshal(b, &w); err != nil {
		t.Fatal(err)
	}
	if w.Price != 199900 {
		t.Fatalf("round trip: got %d", w.Price)
	}

	// Legacy records carry bare numbers.
	if err := json.Unmarshal([]byte(`{"price":499}`), &w); err != nil {
		t.Fatal(err)
	}
	if w.Price != 49900 {
		t.Fatalf("bare number: got %d", w.Price)
	}
}

func TestNoDriftAcrossRepeatedAdditions(t *testing.T) {
	var sum Amount
	for i := 0; i < 10000; i++ {
		sum += MustParse("₹0.10")
	}
	if sum != 100000 {
		t.Fatalf("10000 * ₹0.10 = %s, want ₹1000.00", sum)
	}
}
