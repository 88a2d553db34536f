package synth

import (
	"math"
	"math/rand/v2"
	"testing"

	"pricewise/pkg/catalog"
)

func newSeeded(seed uint64) *Synthesizer {
	return New(rand.New(rand.NewPCG(seed, 0)))
}

func TestPrices_WithinOffsetRanges(t *testing.T) {
	s := newSeeded(42)
	const base = 300

	bounds := map[string][2]int{
		"Amazon":   {base - 20, base + 10},
		"Best Buy": {base - 10, base + 30},
		"Walmart":  {base - 30, base + 5},
	}

	for i := 0; i < 500; i++ {
		quotes := s.Prices(base)
		if len(quotes) != 3 {
			t.Fatalf("got %d quotes, want 3", len(quotes))
		}
		for _, q := range quotes {
			b, ok := bounds[q.Store]
			if !ok {
				t.Fatalf("unexpected store %q", q.Store)
			}
			if q.Price < b[0] || q.Price > b[1] {
				t.Errorf("%s price %d outside [%d, %d]", q.Store, q.Price, b[0], b[1])
			}
		}
	}
}

func TestPrices_StockFlags(t *testing.T) {
	s := newSeeded(7)

	sawBestBuyOut := false
	sawBestBuyIn := false
	for i := 0; i < 200; i++ {
		for _, q := range s.Prices(100) {
			switch q.Store {
			case "Amazon", "Walmart":
				if !q.InStock {
					t.Fatalf("%s must always be in stock", q.Store)
				}
			case "Best Buy":
				if q.InStock {
					sawBestBuyIn = true
				} else {
					sawBestBuyOut = true
				}
			}
		}
	}
	if !sawBestBuyIn || !sawBestBuyOut {
		t.Errorf("Best Buy stock flag never varied over 200 draws (in=%v out=%v)", sawBestBuyIn, sawBestBuyOut)
	}
}

func TestSummary_Exact(t *testing.T) {
	s := newSeeded(99)

	for i := 0; i < 300; i++ {
		quotes := s.Prices(250)
		lowest, highest, average := Summary(quotes)

		sum := 0
		for _, q := range quotes {
			if q.Price < lowest || q.Price > highest {
				t.Fatalf("price %d outside [lowest=%d, highest=%d]", q.Price, lowest, highest)
			}
			sum += q.Price
		}
		if want := int(math.Round(float64(sum) / 3)); average != want {
			t.Errorf("average = %d, want rounded mean %d", average, want)
		}
		if lowest > average || average > highest {
			t.Errorf("invariant violated: %d <= %d <= %d", lowest, average, highest)
		}
	}
}

func TestHistory_ShapeAndSteps(t *testing.T) {
	s := newSeeded(3)
	const current = 289

	wantDates := []string{"2024-01-01", "2024-02-01", "2024-03-01", "2024-04-01", "2024-05-01"}

	for i := 0; i < 100; i++ {
		points := s.History(current)
		if len(points) != 5 {
			t.Fatalf("got %d points, want 5", len(points))
		}
		for j, p := range points {
			if p.Date != wantDates[j] {
				t.Errorf("point[%d].Date = %q, want %q", j, p.Date, wantDates[j])
			}
		}
		if points[0].Price != current+100 {
			t.Errorf("oldest price = %d, want %d", points[0].Price, current+100)
		}
		for j := 1; j < len(points); j++ {
			step := points[j-1].Price - points[j].Price
			if step < 10 || step > 30 {
				t.Errorf("step %d->%d is %d, want within [10, 30]", j-1, j, step)
			}
		}
	}
}

func TestRating_OneDecimalInRange(t *testing.T) {
	s := newSeeded(11)
	for i := 0; i < 300; i++ {
		r := s.Rating()
		if r < 4.0 || r > 4.9 {
			t.Fatalf("rating %v outside [4.0, 4.9]", r)
		}
		if math.Abs(r*10-math.Round(r*10)) > 1e-9 {
			t.Errorf("rating %v has more than one decimal", r)
		}
	}
}

func TestReviews_InRange(t *testing.T) {
	s := newSeeded(13)
	for i := 0; i < 300; i++ {
		n := s.Reviews()
		if n < 500 || n > 5000 {
			t.Fatalf("reviews %d outside [500, 5000]", n)
		}
	}
}

func TestProduct_Assembly(t *testing.T) {
	s := newSeeded(21)
	tpl := catalog.Template{
		Name:      "Test Widget",
		Image:     "https://example.com/widget.jpg",
		BasePrice: 199,
		Category:  "Electronics",
	}

	p := s.Product("7", tpl)

	if p.ID != "7" || p.Name != tpl.Name || p.Image != tpl.Image || p.Category != tpl.Category {
		t.Errorf("template fields not carried over: %+v", p)
	}
	if len(p.Prices) != 3 || len(p.PriceHistory) != 5 {
		t.Fatalf("got %d prices and %d history points", len(p.Prices), len(p.PriceHistory))
	}
	lowest, highest, average := Summary(p.Prices)
	if p.LowestPrice != lowest || p.HighestPrice != highest || p.AveragePrice != average {
		t.Errorf("summary mismatch: product=(%d,%d,%d) recomputed=(%d,%d,%d)",
			p.LowestPrice, p.HighestPrice, p.AveragePrice, lowest, highest, average)
	}
	if p.PriceHistory[0].Price != p.LowestPrice+100 {
		t.Errorf("history anchored at %d, want lowest+100 = %d", p.PriceHistory[0].Price, p.LowestPrice+100)
	}
}
