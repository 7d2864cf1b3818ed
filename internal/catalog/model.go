package catalog

// Product is a read-only catalog entry supplied by the catalog data source.
// OriginalPrice, when set, is the pre-sale price and is always greater than
// Price.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	InStock       bool     `json:"in_stock"`
	IsNew         bool     `json:"is_new,omitempty"`
	IsSale        bool     `json:"is_sale,omitempty"`
}

// Categories lists every category a product may belong to, in display order.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Sports",
	"Beauty",
	"Books",
	"Toys & Games",
	"Automotive",
}
