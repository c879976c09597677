package review

import (
	"testing"

	"github.com/digistorehq/digistore/core/catalog"
)

func TestAggregate(t *testing.T) {
	rating, count := Aggregate(nil)
	if rating != 0 || count != 0 {
		t.Fatalf("empty aggregate: got %v, %d", rating, count)
	}

	reviews := []Review{{Rating: 5}, {Rating: 4}, {Rating: 3}}
	rating, count = Aggregate(reviews)
	if rating != 4 || count != 3 {
		t.Fatalf("got %v, %d, want 4, 3", rating, count)
	}
}

func TestDisplayRatingManualOverride(t *testing.T) {
	reviews := []Review{{Rating: 5}, {Rating: 5}}

	manual := 2.5
	if got := DisplayRating(&manual, reviews); got != 2.5 {
		t.Fatalf("manual override ignored: got %v", got)
	}

	// A manual rating of 0 is still an override; only nil means "use
	// the aggregate".
	zero := 0.0
	if got := DisplayRating(&zero, reviews); got != 0 {
		t.Fatalf("manual 0 not honored: got %v", got)
	}

	if got := DisplayRating(nil, reviews); got != 5 {
		t.Fatalf("aggregate fallback: got %v, want 5", got)
	}
}

func TestRate(t *testing.T) {
	manual := 4.8
	p := catalog.Product{ID: 1, Title: "SEO Mastery", ManualRating: &manual}
	reviews := []Review{{Rating: 5}, {Rating: 4}}

	rated := Rate(p, reviews)
	if rated.Rating != 4.8 {
		t.Fatalf("display rating: got %v", rated.Rating)
	}
	if rated.CalculatedRating != 4.5 {
		t.Fatalf("calculated rating: got %v", rated.CalculatedRating)
	}
	if rated.ReviewCount != 2 {
		t.Fatalf("review count: got %d", rated.ReviewCount)
	}
}
