package catalog

import (
	"sort"
	"strings"
)

// PriceRange is one of the selectable price buckets. Ranges are evaluated
// independently and OR-combined, with inclusive boundaries matching the
// storefront labels: a product priced exactly 50 satisfies both "25 - 50"
// and "50 - 100".
type PriceRange string

const (
	PriceUnder25  PriceRange = "under_25"
	Price25To50   PriceRange = "25_to_50"
	Price50To100  PriceRange = "50_to_100"
	Price100To200 PriceRange = "100_to_200"
	PriceOver200  PriceRange = "over_200"
)

// PriceRanges lists every bucket in display order.
var PriceRanges = []PriceRange{
	PriceUnder25,
	Price25To50,
	Price50To100,
	Price100To200,
	PriceOver200,
}

func (pr PriceRange) matches(price float64) bool {
	switch pr {
	case PriceUnder25:
		return price < 25
	case Price25To50:
		return price >= 25 && price <= 50
	case Price50To100:
		return price >= 50 && price <= 100
	case Price100To200:
		return price >= 100 && price <= 200
	case PriceOver200:
		return price > 200
	default:
		return false
	}
}

// SortKey selects the ordering of a filtered view.
type SortKey string

const (
	SortFeatured    SortKey = "featured"
	SortPriceAsc    SortKey = "price_asc"
	SortPriceDesc   SortKey = "price_desc"
	SortRatingDesc  SortKey = "rating_desc"
	SortNewestFirst SortKey = "newest"
)

// Filter is the full filter/sort configuration of a catalog view. Zero value
// means no restriction and featured (catalog) order.
type Filter struct {
	SearchTerm  string
	Categories  []string
	PriceRanges []PriceRange
	InStockOnly bool
	OnSaleOnly  bool
	Sort        SortKey
}

// Apply produces the filtered, sorted view of products. The input slice is
// never mutated; the result is always non-nil so an empty view is
// distinguishable from an absent catalog.
func Apply(products []Product, f Filter) []Product {
	result := make([]Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if len(f.Categories) > 0 && !containsString(f.Categories, p.Category) {
			continue
		}
		if len(f.PriceRanges) > 0 && !matchesAnyRange(f.PriceRanges, p.Price) {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		if f.OnSaleOnly && !p.IsSale {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, f.Sort)

	return result
}

// sortProducts orders the view in place. Every sort is stable so Featured and
// NewestFirst preserve catalog order among ties.
func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewestFirst:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	default:
		// Featured keeps catalog order.
	}
}

func containsString(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func matchesAnyRange(ranges []PriceRange, price float64) bool {
	for _, r := range ranges {
		if r.matches(price) {
			return true
		}
	}
	return false
}
