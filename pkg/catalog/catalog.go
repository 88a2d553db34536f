// Package catalog holds the static product templates and the keyword
// matcher that maps a free-text query to one category.
package catalog

import "strings"

// Template is a prototype product. Per-request fields (prices, rating,
// history) are synthesized elsewhere; templates are never mutated.
type Template struct {
	Name      string
	Image     string
	BasePrice int
	Category  string
}

// Entry binds a category keyword to its templates. Entry order is
// significant: the first matching keyword wins.
type Entry struct {
	Keyword   string
	Templates []Template
}

type Catalog struct {
	entries  []Entry
	fallback string
}

const (
	imgHeadphones = "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400"
	imgLaptop     = "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400"
	imgPhone      = "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400"
	imgWatch      = "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400"
	imgShoes      = "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400"
	imgTV         = "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400"
)

var defaultEntries = []Entry{
	{Keyword: "headphones", Templates: []Template{
		{Name: "Sony WH-1000XM5 Wireless Headphones", Image: imgHeadphones, BasePrice: 349, Category: "Electronics"},
		{Name: "Bose QuietComfort Ultra Headphones", Image: imgHeadphones, BasePrice: 379, Category: "Electronics"},
		{Name: "Apple AirPods Pro (2nd Gen)", Image: imgHeadphones, BasePrice: 249, Category: "Electronics"},
	}},
	{Keyword: "laptop", Templates: []Template{
		{Name: "Apple MacBook Air 13\" M3", Image: imgLaptop, BasePrice: 1099, Category: "Electronics"},
		{Name: "Dell XPS 13", Image: imgLaptop, BasePrice: 999, Category: "Electronics"},
		{Name: "Lenovo ThinkPad X1 Carbon", Image: imgLaptop, BasePrice: 1299, Category: "Electronics"},
	}},
	{Keyword: "phone", Templates: []Template{
		{Name: "Apple iPhone 15", Image: imgPhone, BasePrice: 799, Category: "Electronics"},
		{Name: "Samsung Galaxy S24", Image: imgPhone, BasePrice: 859, Category: "Electronics"},
		{Name: "Google Pixel 8", Image: imgPhone, BasePrice: 699, Category: "Electronics"},
	}},
	{Keyword: "watch", Templates: []Template{
		{Name: "Apple Watch Series 9", Image: imgWatch, BasePrice: 399, Category: "Electronics"},
		{Name: "Samsung Galaxy Watch 6", Image: imgWatch, BasePrice: 329, Category: "Electronics"},
	}},
	{Keyword: "shoes", Templates: []Template{
		{Name: "Nike Air Max 270", Image: imgShoes, BasePrice: 150, Category: "Footwear"},
		{Name: "Adidas Ultraboost Light", Image: imgShoes, BasePrice: 190, Category: "Footwear"},
	}},
	{Keyword: "tv", Templates: []Template{
		{Name: "Samsung 55\" QLED 4K", Image: imgTV, BasePrice: 649, Category: "Electronics"},
		{Name: "LG C3 55\" OLED", Image: imgTV, BasePrice: 1299, Category: "Electronics"},
	}},
}

// New returns the built-in catalog. Unmatched queries fall back to the
// headphones category.
func New() *Catalog {
	return &Catalog{entries: defaultEntries, fallback: "headphones"}
}

// NewFromEntries builds a catalog from custom entries. fallback must name
// an existing keyword.
func NewFromEntries(entries []Entry, fallback string) *Catalog {
	return &Catalog{entries: entries, fallback: fallback}
}

// Match maps a query to one category's templates. First pass is
// case-insensitive substring containment, first keyword wins. Second pass
// matches any whitespace-delimited query word against keyword words; with
// the built-in single-word keys this pass only fires for catalogs that
// carry multi-word keywords. Always returns a non-empty list; blank
// queries are rejected at the request boundary before reaching here.
func (c *Catalog) Match(query string) []Template {
	q := strings.ToLower(query)

	for _, e := range c.entries {
		if strings.Contains(q, e.Keyword) {
			return e.Templates
		}
	}

	words := strings.Fields(q)
	for _, e := range c.entries {
		for _, kw := range strings.Fields(e.Keyword) {
			for _, w := range words {
				if w == kw {
					return e.Templates
				}
			}
		}
	}

	return c.templatesFor(c.fallback)
}

func (c *Catalog) templatesFor(keyword string) []Template {
	for _, e := range c.entries {
		if e.Keyword == keyword {
			return e.Templates
		}
	}
	return nil
}
