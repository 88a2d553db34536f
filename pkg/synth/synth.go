// Package synth generates the randomized per-request product fields:
// store prices, price summary, price history, rating and review count.
package synth

import (
	"fmt"
	"math"
	"math/rand/v2"

	"pricewise/pkg/catalog"
	"pricewise/pkg/models"
)

// Rand is the entropy source behind all draws. *rand.Rand satisfies it,
// which lets tests inject a seeded source.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// globalRand delegates to math/rand/v2's shared source so the
// synthesizer is safe for concurrent requests.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

type store struct {
	name string
	url  string
	// inclusive offset bounds added to the base price
	minOffset, maxOffset int
	alwaysStocked        bool
}

var stores = []store{
	{name: "Amazon", url: "https://amazon.com", minOffset: -20, maxOffset: 10, alwaysStocked: true},
	{name: "Best Buy", url: "https://bestbuy.com", minOffset: -10, maxOffset: 30, alwaysStocked: false},
	{name: "Walmart", url: "https://walmart.com", minOffset: -30, maxOffset: 5, alwaysStocked: true},
}

type Synthesizer struct {
	rng Rand
}

func New(rng Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// NewDefault uses the process-wide random source. Repeated calls with the
// same base price produce different outputs; that is intended.
func NewDefault() *Synthesizer {
	return New(globalRand{})
}

func (s *Synthesizer) intIn(min, max int) int {
	return min + s.rng.IntN(max-min+1)
}

// Prices draws one quote per store from that store's fixed offset range.
// Best Buy's stock flag is a fair coin flip; the others are always in stock.
func (s *Synthesizer) Prices(basePrice int) []models.PriceQuote {
	quotes := make([]models.PriceQuote, 0, len(stores))
	for _, st := range stores {
		inStock := st.alwaysStocked || s.rng.IntN(2) == 1
		quotes = append(quotes, models.PriceQuote{
			Store:   st.name,
			Price:   basePrice + s.intIn(st.minOffset, st.maxOffset),
			URL:     st.url,
			InStock: inStock,
		})
	}
	return quotes
}

// Summary derives lowest, highest and the rounded mean from the quotes.
func Summary(quotes []models.PriceQuote) (lowest, highest, average int) {
	lowest = quotes[0].Price
	highest = quotes[0].Price
	sum := 0
	for _, q := range quotes {
		if q.Price < lowest {
			lowest = q.Price
		}
		if q.Price > highest {
			highest = q.Price
		}
		sum += q.Price
	}
	average = int(math.Round(float64(sum) / float64(len(quotes))))
	return lowest, highest, average
}

// History walks five points back from currentPrice+100, dropping a fresh
// [10,30] step between points. The dates are a fixed monthly template.
// The walk trends downward but individual draws are independent, so
// monotonicity is not guaranteed.
func (s *Synthesizer) History(currentPrice int) []models.HistoryPoint {
	price := currentPrice + 100
	points := make([]models.HistoryPoint, 0, 5)
	for month := 1; month <= 5; month++ {
		points = append(points, models.HistoryPoint{
			Date:  fmt.Sprintf("2024-0%d-01", month),
			Price: price,
		})
		price -= s.intIn(10, 30)
	}
	return points
}

// Rating draws a one-decimal rating in [4.0, 4.9].
func (s *Synthesizer) Rating() float64 {
	return math.Round((4.0+s.rng.Float64()*0.9)*10) / 10
}

// Reviews draws a review count in [500, 5000].
func (s *Synthesizer) Reviews() int {
	return s.intIn(500, 5000)
}

// Product assembles a full response product from a template. The caller
// sets AIInsights. History is anchored on the lowest current quote so the
// series ends near today's best price.
func (s *Synthesizer) Product(id string, tpl catalog.Template) models.Product {
	quotes := s.Prices(tpl.BasePrice)
	lowest, highest, average := Summary(quotes)
	return models.Product{
		ID:           id,
		Name:         tpl.Name,
		Image:        tpl.Image,
		Prices:       quotes,
		LowestPrice:  lowest,
		HighestPrice: highest,
		AveragePrice: average,
		PriceHistory: s.History(lowest),
		Rating:       s.Rating(),
		Reviews:      s.Reviews(),
		Category:     tpl.Category,
	}
}
