package pricing

import (
	"testing"

	"github.com/lukman83/jumia-reseller/internal/models"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestQuote(t *testing.T) {
	testCases := []struct {
		name     string
		percent  float64
		original float64
		profit   float64
		actual   float64
	}{
		{"typical", 15, 10000, 1500, 15},
		{"rounds half up", 15, 10, 2, 20},
		{"capped", 15, 200000, MaxProfit, 10},
		{"cap boundary", 10, 200000, MaxProfit, 10},
		{"zero price", 15, 0, 0, 0},
		{"zero percent", 0, 5000, 0, 0},
		{"fractional margin", 15, 3333, 500, 15},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			q := Margin{Percent: test.percent}.Quote(test.original)
			require.Equal(t, test.profit, q.Profit)
			require.Equal(t, test.original+test.profit, q.Price)
			require.Equal(t, test.original, q.Original)
			require.Equal(t, test.actual, q.ActualPercent)
		})
	}
}

func TestQuoteActualPercentRounding(t *testing.T) {
	q := Margin{Percent: 15}.Quote(150000)
	require.Equal(t, float64(MaxProfit), q.Profit)
	require.Equal(t, 13.33, q.ActualPercent)
}

func TestApplyAllPreservesOldPriceGap(t *testing.T) {
	products := []models.Product{
		{Name: "a", Price: 8000, OldPrice: ptr(12000)},
		{Name: "b", Price: 500000, OldPrice: ptr(650000)},
		{Name: "c", Price: 2500},
	}

	out := Margin{Percent: 15}.ApplyAll(products)
	require.Len(t, out, 3)

	for i, p := range out {
		require.Equal(t, products[i].Price, p.OriginalPrice)
		require.Equal(t, p.ProfitAmount, p.Price-p.OriginalPrice)
		if products[i].OldPrice == nil {
			require.Nil(t, p.OldPrice)
			continue
		}
		require.Equal(t, *products[i].OldPrice-products[i].Price, *p.OldPrice-p.Price)
	}

	// inputs are untouched
	require.Equal(t, 8000.0, products[0].Price)
	require.Equal(t, 12000.0, *products[0].OldPrice)
}

func TestApplyDetails(t *testing.T) {
	d := models.ProductDetails{
		Product: models.Product{Price: 1000},
		Title:   "Kettle",
	}

	out := Margin{Percent: 20}.ApplyDetails(d)
	require.Equal(t, 1200.0, out.Price)
	require.Equal(t, 1000.0, out.OriginalPrice)
	require.Equal(t, 200.0, out.ProfitAmount)
	require.Equal(t, 20.0, out.ProfitMargin)
	require.Equal(t, "Kettle", out.Title)
	require.Equal(t, 1000.0, d.Price)
}
