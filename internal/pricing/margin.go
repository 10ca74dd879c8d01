// Package pricing applies the reseller markup to upstream prices.
package pricing

import (
	"math"

	"github.com/lukman83/jumia-reseller/internal/models"
)

// MaxProfit caps the absolute markup on a single item, in naira.
const MaxProfit = 20000

// DefaultPercent is used when no valid margin is configured.
const DefaultPercent = 15.0

// Margin is a percentage markup with a fixed absolute cap.
type Margin struct {
	Percent float64
}

// Quote is the outcome of pricing a single upstream amount.
type Quote struct {
	Original float64
	Profit   float64
	Price    float64
	// ActualPercent is profit/original*100 rounded to 2 places; 0 when the
	// original price is 0.
	ActualPercent float64
}

// Quote computes the marked-up price for originalPrice.
func (m Margin) Quote(originalPrice float64) Quote {
	profit := math.Round(originalPrice * m.Percent / 100)
	if profit > MaxProfit {
		profit = MaxProfit
	}

	q := Quote{
		Original: originalPrice,
		Profit:   profit,
		Price:    originalPrice + profit,
	}
	if originalPrice != 0 {
		q.ActualPercent = math.Round(profit/originalPrice*100*100) / 100
	}
	return q
}

func (m Margin) apply(p *models.Product) {
	q := m.Quote(p.Price)
	p.OriginalPrice = q.Original
	p.Price = q.Price
	p.ProfitAmount = q.Profit
	p.ProfitMargin = q.ActualPercent
	if p.OldPrice != nil {
		old := *p.OldPrice + q.Profit
		p.OldPrice = &old
	}
}

// ApplyAll returns copies of products with the markup applied. The input
// slice is left untouched.
func (m Margin) ApplyAll(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		m.apply(&p)
		out[i] = p
	}
	return out
}

// ApplyDetails returns a copy of d with the markup applied.
func (m Margin) ApplyDetails(d models.ProductDetails) models.ProductDetails {
	m.apply(&d.Product)
	return d
}
