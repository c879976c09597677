// Package catalog holds the product model and the recursive content
// tree attached to each purchasable product: modules containing files
// and further sub-modules at unbounded depth.
package catalog

import (
	"github.com/digistorehq/digistore/money"
)

// FileType enumerates the kinds of content a module can carry.
type FileType string

const (
	FileYoutube FileType = "youtube"
	FileVideo   FileType = "video"
	FileAudio   FileType = "audio"
	FilePDF     FileType = "pdf"
	FileDoc     FileType = "doc"
	FileSheet   FileType = "sheet"
	FileLink    FileType = "link"
	FileEbook   FileType = "ebook"
)

// ValidFileType reports whether t is one of the known content kinds.
func ValidFileType(t FileType) bool {
	switch t {
	case FileYoutube, FileVideo, FileAudio, FilePDF, FileDoc, FileSheet, FileLink, FileEbook:
		return true
	}
	return false
}

// File is a single piece of content inside a module. For uploads URL is
// an embedded payload reference, for links it is the external address.
// Content carries rich text for ebooks.
type File struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    FileType `json:"type"`
	URL     string   `json:"url"`
	Content string   `json:"content,omitempty"`
}

// Module is a node of the content tree. Its ID is unique across the
// entire tree of the owning product, not just among siblings.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Files   []File   `json:"files"`
	Modules []Module `json:"modules"`
}

// Product is a digital good in the catalog. Prices serialize as
// ₹-prefixed decimal text; all arithmetic happens in paise.
type Product struct {
	ID              int           `json:"id"`
	ImageSeed       string        `json:"imageSeed"`
	Images          []string      `json:"images,omitempty"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	LongDescription string        `json:"longDescription,omitempty"`
	Features        []string      `json:"features,omitempty"`
	Category        string        `json:"category,omitempty"`
	Price           money.Amount  `json:"price"`
	SalePrice       *money.Amount `json:"salePrice,omitempty"`
	ManualRating    *float64      `json:"manualRating,omitempty"`
	Visible         bool          `json:"isVisible"`
	IsFree          bool          `json:"isFree,omitempty"`
	Content         []Module      `json:"courseContent,omitempty"`
	WishlistCount   int           `json:"wishlistCount,omitempty"`
	ViewCount       int           `json:"viewCount,omitempty"`
}

// EffectivePrice is the price charged at checkout: the sale price when
// one is set, the regular price otherwise. A free product still carries
// a nominal processing fee here, never zero.
func (p Product) EffectivePrice() money.Amount {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// ProductNew is the payload for creating a product.
type ProductNew struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	LongDescription string   `json:"longDescription"`
	ImageSeed       string   `json:"imageSeed"`
	Category        string   `json:"category"`
	Price           string   `json:"price" validate:"required"`
	SalePrice       string   `json:"salePrice"`
	ManualRating    *float64 `json:"manualRating" validate:"omitempty,gte=0,lte=5"`
	IsFree          bool     `json:"isFree"`
}

// FileNew is the payload for adding a file to a module.
type FileNew struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type" validate:"required"`
	URL     string `json:"url" validate:"required"`
	Content string `json:"content"`
}

// ModuleNew is the payload for adding a module.
type ModuleNew struct {
	Title string `json:"title" validate:"required"`
	// ParentID targets a nested module; empty means the root list.
	ParentID string `json:"parentId"`
}
