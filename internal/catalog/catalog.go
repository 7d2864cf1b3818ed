package catalog

import "sync"

// Catalog holds the externally supplied product list. Consumers get value
// copies; the only write path is a wholesale Replace, there is no incremental
// update contract.
type Catalog struct {
	mu       sync.RWMutex
	products []Product
}

func New(products []Product) *Catalog {
	c := &Catalog{}
	c.Replace(products)
	return c
}

// Products returns a copy of the current product list in catalog order.
func (c *Catalog) Products() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Replace swaps the whole product list.
func (c *Catalog) Replace(products []Product) {
	next := make([]Product, len(products))
	copy(next, products)

	c.mu.Lock()
	c.products = next
	c.mu.Unlock()
}

// Get returns the product with the given id, or false when the catalog does
// not carry it.
func (c *Catalog) Get(id string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Apply runs the filter engine over the current product list.
func (c *Catalog) Apply(f Filter) []Product {
	return Apply(c.Products(), f)
}

func price(v float64) *float64 {
	return &v
}

// SeedProducts is the demo catalog shipped with the storefront.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Title:         "Wireless Bluetooth Headphones - Premium Quality Sound",
			Price:         99.99,
			OriginalPrice: price(149.99),
			Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Category:      "Electronics",
			Rating:        4.5,
			Reviews:       124,
			InStock:       true,
			IsSale:        true,
		},
		{
			ID:       "2",
			Title:    "Smart Watch Series 5 - Health & Fitness Tracker",
			Price:    249.99,
			Image:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
			Category: "Electronics",
			Rating:   4.8,
			Reviews:  89,
			InStock:  true,
			IsNew:    true,
		},
		{
			ID:            "3",
			Title:         "Premium Coffee Maker - Barista Quality",
			Price:         179.99,
			OriginalPrice: price(219.99),
			Image:         "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400",
			Category:      "Home & Garden",
			Rating:        4.3,
			Reviews:       67,
			InStock:       true,
			IsSale:        true,
		},
		{
			ID:       "4",
			Title:    "Designer Sunglasses - UV Protection",
			Price:    79.99,
			Image:    "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=400",
			Category: "Clothing",
			Rating:   4.6,
			Reviews:  156,
			InStock:  true,
		},
		{
			ID:            "5",
			Title:         "Laptop Backpack - Water Resistant",
			Price:         49.99,
			OriginalPrice: price(69.99),
			Image:         "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
			Category:      "Clothing",
			Rating:        4.4,
			Reviews:       203,
			InStock:       true,
			IsSale:        true,
		},
		{
			ID:       "6",
			Title:    "Wireless Phone Charger - Fast Charging",
			Price:    29.99,
			Image:    "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=400",
			Category: "Electronics",
			Rating:   4.2,
			Reviews:  98,
			InStock:  true,
		},
		{
			ID:            "7",
			Title:         "Gaming Mouse - RGB Lighting",
			Price:         59.99,
			OriginalPrice: price(79.99),
			Image:         "https://images.unsplash.com/photo-1527814050087-3793815479db?w=400",
			Category:      "Electronics",
			Rating:        4.7,
			Reviews:       145,
			InStock:       false,
			IsSale:        true,
		},
		{
			ID:       "8",
			Title:    "Bluetooth Speaker - Waterproof",
			Price:    89.99,
			Image:    "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400",
			Category: "Electronics",
			Rating:   4.5,
			Reviews:  176,
			InStock:  true,
			IsNew:    true,
		},
	}
}
