// Package seed supplies the starter catalog used when the durable
// store is empty or a stored collection cannot be read.
package seed

import (
	"github.com/digistorehq/digistore/core/catalog"
	"github.com/digistorehq/digistore/core/coupon"
	"github.com/digistorehq/digistore/core/review"
	"github.com/digistorehq/digistore/money"
)

func ptr[T any](v T) *T { return &v }

// Products returns the starter catalog.
func Products() []catalog.Product {
	return []catalog.Product{
		{
			ID:              1,
			ImageSeed:       "ebook-marketing",
			Title:           "The Ultimate Marketing Guide",
			Description:     "A comprehensive e-book covering everything from SEO to social media marketing.",
			LongDescription: "Unlock the secrets of digital marketing with this all-in-one guide covering social media engagement, SEO, content creation, email marketing and analytics.",
			Features:        []string{"In-depth SEO strategies", "Social Media content calendar", "Email marketing templates", "150+ pages of expert advice"},
			Category:        "E-books",
			Price:           money.MustParse("₹499"),
			SalePrice:       ptr(money.MustParse("₹299")),
			ManualRating:    ptr(5.0),
			Visible:         true,
			WishlistCount:   243,
			ViewCount:       1054,
			Content: []catalog.Module{
				{
					ID:    "mod-marketing-1",
					Title: "Module 1: Introduction to Digital Marketing",
					Files: []catalog.File{
						{
							ID:   "file-pdf-1",
							Name: "The Ultimate Marketing Guide.pdf",
							Type: catalog.FilePDF,
							URL:  "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
						},
					},
					Modules: []catalog.Module{},
				},
			},
		},
		{
			ID:              2,
			ImageSeed:       "dropshipping-course",
			Title:           "Dropshipping Masterclass",
			Description:     "Video course and PDF notes on how to start and scale a successful dropshipping business.",
			LongDescription: "A complete video course: finding a profitable niche, sourcing suppliers, building a high-converting store and mastering paid traffic.",
			Features:        []string{"Over 10 hours of video content", "Supplier vetting checklist", "Lifetime access to course updates"},
			Category:        "Online Courses",
			Price:           money.MustParse("₹1999"),
			Visible:         true,
			WishlistCount:   189,
			ViewCount:       892,
			Content: []catalog.Module{
				{
					ID:    "mod-dropship-1",
					Title: "Module 1: Finding Your Niche",
					Files: []catalog.File{
						{
							ID:   "file-video-yt-1",
							Name: "Welcome to the Course!",
							Type: catalog.FileYoutube,
							URL:  "https://www.youtube.com/watch?v=l6bTbg3aVIM",
						},
					},
					Modules: []catalog.Module{},
				},
			},
		},
		{
			ID:          3,
			ImageSeed:   "seo-notes",
			Title:       "SEO Checklist PDF",
			Description: "A printable PDF checklist to optimize your website for search engines.",
			Category:    "Digital Goods",
			// Free products still carry a nominal processing fee.
			Price:         money.MustParse("₹3"),
			IsFree:        true,
			Visible:       true,
			WishlistCount: 56,
			ViewCount:     420,
			Content:       []catalog.Module{},
		},
		{
			ID:              4,
			ImageSeed:       "advanced-seo-ebook",
			Title:           "Advanced SEO Techniques",
			Description:     "An e-book for experienced marketers looking to level up their SEO game.",
			LongDescription: "Technical SEO, schema markup, international SEO, advanced link building and algorithm analysis for competitive keywords.",
			Features:        []string{"Technical SEO deep dive", "Schema and structured data", "Advanced backlink analysis"},
			Category:        "E-books",
			Price:           money.MustParse("₹799"),
			SalePrice:       ptr(money.MustParse("₹599")),
			ManualRating:    ptr(4.8),
			Visible:         true,
			WishlistCount:   120,
			ViewCount:       650,
			Content: []catalog.Module{
				{
					ID:    "mod-adv-seo-1",
					Title: "Chapter 1: The Evolution of SEO",
					Files: []catalog.File{
						{
							ID:      "file-ebook-1",
							Name:    "The Ever-Changing Landscape",
							Type:    catalog.FileEbook,
							Content: "<h2>The Ever-Changing Landscape</h2><p>Search Engine Optimization is not a static field.</p>",
						},
					},
					Modules: []catalog.Module{},
				},
			},
		},
	}
}

// Coupons returns the starter coupon list.
func Coupons() []coupon.Coupon {
	return []coupon.Coupon{
		{ID: 1, Code: "SUMMER25", Type: coupon.Percentage, Value: 25, ExpiryDate: "2025-12-31", IsActive: true, UsageLimit: 100, TimesUsed: 42},
		{ID: 2, Code: "WELCOME500", Type: coupon.Fixed, Value: 500, ExpiryDate: "2024-12-31", IsActive: true, UsageLimit: 500, TimesUsed: 150},
		{ID: 3, Code: "MONSOON10", Type: coupon.Percentage, Value: 10, ExpiryDate: "2025-12-31", IsActive: true, UsageLimit: 200, TimesUsed: 198},
		{ID: 4, Code: "FLAT150", Type: coupon.Fixed, Value: 150, ExpiryDate: "2025-01-01", IsActive: true, UsageLimit: 1000, TimesUsed: 0},
	}
}

// Reviews returns the starter review sets, keyed by product id.
func Reviews() map[int][]review.Review {
	return map[int][]review.Review{
		1: {
			{Name: "Rohan Sharma", Rating: 5, Comment: "This guide was a game-changer for my business. Easy to follow and packed with value!", Date: "2 weeks ago"},
			{Name: "Priya Patel", Rating: 4, Comment: "Very informative and well-structured. I learned a lot.", Date: "1 month ago"},
		},
		2: {
			{Name: "Amit Singh", Rating: 5, Comment: "Absolutely the best dropshipping course out there. Worth every penny!", Date: "3 days ago"},
		},
		4: {
			{Name: "Sneha Verma", Rating: 5, Comment: "Finally, an SEO book that goes beyond the basics. Highly recommended!", Date: "1 week ago"},
			{Name: "Rajesh Kumar", Rating: 4, Comment: "Good content, but some parts are very technical. A great resource nonetheless.", Date: "2 weeks ago"},
		},
	}
}
