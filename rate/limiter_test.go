package rate

import (
	"testing"
	"time"
)

func TestLimiter(t *testing.T) {
	interval := 10 * time.Millisecond
	lim := NewLimiter(1, time.Hour, Every(interval))

	tooshort := 1 * time.Millisecond

	client := "10.0.0.1"
	expected := []bool{true, false, true, true, false, false}
	waits := []time.Duration{tooshort, interval, interval, tooshort, tooshort, tooshort}
	for i, exp := range expected {
		if got := lim.Check(client); got != exp {
			t.Fatalf("iteration %d: expected %v, but got %v", i, exp, got)
		}
		time.Sleep(waits[i])
	}
}

func TestLimiterIsolatesClients(t *testing.T) {
	interval := 100 * time.Millisecond
	lim := NewLimiter(1, time.Hour, Every(interval))

	if !lim.Check("a") {
		t.Fatal("first request for a should pass")
	}
	if lim.Check("a") {
		t.Fatal("second immediate request for a should be limited")
	}
	if !lim.Check("b") {
		t.Fatal("b must not be affected by a's usage")
	}
}

func TestLimiterWithBurst(t *testing.T) {
	interval := 100 * time.Millisecond
	lim := NewLimiter(10, time.Hour, Every(interval))

	client := "10.0.0.2"
	for i := 0; i < 10; i++ {
		if !lim.Check(client) {
			t.Fatalf("burst request %d should pass", i)
		}
	}
	if lim.Check(client) {
		t.Fatal("request beyond burst should be limited")
	}
}
