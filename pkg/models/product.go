package models

// PriceQuote is one retailer's offer for a product in the current response.
type PriceQuote struct {
	Store   string `json:"store"`
	Price   int    `json:"price"`
	URL     string `json:"url"`
	InStock bool   `json:"inStock"`
}

// HistoryPoint is a single entry of the synthesized price history.
// Date uses YYYY-MM-DD.
type HistoryPoint struct {
	Date  string `json:"date"`
	Price int    `json:"price"`
}

type Product struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Image        string         `json:"image"`
	Prices       []PriceQuote   `json:"prices"`
	LowestPrice  int            `json:"lowestPrice"`
	HighestPrice int            `json:"highestPrice"`
	AveragePrice int            `json:"averagePrice"`
	PriceHistory []HistoryPoint `json:"priceHistory"`
	AIInsights   string         `json:"aiInsights"`
	Rating       float64        `json:"rating"`
	Reviews      int            `json:"reviews"`
	Category     string         `json:"category"`
}

type SearchResponse struct {
	Products     []Product `json:"products"`
	TotalResults int       `json:"totalResults"`
	Query        string    `json:"query"`
}
