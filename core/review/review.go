// Package review holds customer reviews and the display-rating rule.
package review

import "github.com/digistorehq/digistore/core/catalog"

// Review is a single customer review. Reviews are append-only from the
// engine's point of view: no edit or delete operation exists.
type Review struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// ReviewNew is the payload for posting a review.
type ReviewNew struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

// Aggregate returns the arithmetic mean of the review ratings and the
// review count. An empty slice aggregates to 0, 0.
func Aggregate(reviews []Review) (rating float64, count int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews)), len(reviews)
}

// DisplayRating is the rating shown to customers: the administrator
// override when one is set (a manual 0 is a real override, only nil
// means "no override"), the review aggregate otherwise.
func DisplayRating(manual *float64, reviews []Review) float64 {
	if manual != nil {
		return *manual
	}
	rating, _ := Aggregate(reviews)
	return rating
}

// Rated is a product joined with its derived rating fields. The rating
// is recomputed on every read and never stored on the product itself.
type Rated struct {
	catalog.Product
	Rating           float64 `json:"rating"`
	ReviewCount      int     `json:"reviewCount"`
	CalculatedRating float64 `json:"calculatedRating"`
}

// Rate derives the display fields for a product from its reviews.
func Rate(p catalog.Product, reviews []Review) Rated {
	calculated, count := Aggregate(reviews)
	return Rated{
		Product:          p,
		Rating:           DisplayRating(p.ManualRating, reviews),
		ReviewCount:      count,
		CalculatedRating: calculated,
	}
}
