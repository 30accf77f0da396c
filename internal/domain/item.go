package domain

import (
	"context"
	"time"
)

// --- Categories ---

const AllCategories = "All Categories"

const (
	CategoryElectronics    = "Electronics"
	CategoryFashion        = "Fashion"
	CategoryHome           = "Home"
	CategoryFoodBeverage   = "Food & Beverage"
	CategoryBooksMedia     = "Books & Media"
	CategorySportsOutdoors = "Sports & Outdoors"
	CategoryToysGames      = "Toys & Games"
	CategoryOthers         = "Others"
)

// Categories lists the selectable filter values, sentinel first.
var Categories = []string{
	AllCategories,
	CategoryElectronics,
	CategoryFashion,
	CategoryHome,
	CategoryFoodBeverage,
	CategoryBooksMedia,
	CategorySportsOutdoors,
	CategoryToysGames,
	CategoryOthers,
}

// IsValidCategory reports whether c is a concrete item category.
func IsValidCategory(c string) bool {
	for _, known := range Categories[1:] {
		if known == c {
			return true
		}
	}
	return false
}

// --- Sorting ---

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortTitle     SortKey = "title"
)

type SortOption struct {
	Value SortKey `json:"value"`
	Label string  `json:"label"`
}

var SortOptions = []SortOption{
	{Value: SortNewest, Label: "Newest First"},
	{Value: SortOldest, Label: "Oldest First"},
	{Value: SortPriceLow, Label: "Price: Low to High"},
	{Value: SortPriceHigh, Label: "Price: High to Low"},
	{Value: SortTitle, Label: "Title A-Z"},
}

// --- Items ---

type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Seller      string    `json:"seller"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ItemView is an Item as seen by one visitor. IsFavorited is projected from
// the visitor's favorites at read time and never stored.
type ItemView struct {
	Item
	IsFavorited    bool   `json:"isFavorited"`
	FormattedPrice string `json:"formattedPrice,omitempty"`
}

// ItemDetail backs the quick view overlay.
type ItemDetail struct {
	Item    ItemView   `json:"item"`
	Related []ItemView `json:"related"`
}

// CatalogQuery is the input to the catalog query engine.
type CatalogQuery struct {
	Text     string
	Category string
	Sort     SortKey
	Page     int
	PageSize int
}

// CatalogPage is one rendered page of the catalog.
type CatalogPage struct {
	Items      []ItemView `json:"items"`
	Pagination Pagination `json:"pagination"`
	Loading    bool       `json:"loading"`
}

// --- Interfaces ---

type CatalogRepository interface {
	// All returns the loaded catalog in source order; ok is false while the
	// catalog is still loading.
	All(ctx context.Context) (items []Item, ok bool)
	GetByID(ctx context.Context, id string) (*Item, bool)
}
