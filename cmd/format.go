package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lukman83/jumia-reseller/internal/models"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printProductsTable prints products in a human-friendly card layout.
func printProductsTable(w io.Writer, products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}
	for i, p := range products {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, " %d. %s\n", i+1, p.Name)

		// Price line with optional old price and discount
		priceLine := "    Price: " + formatPrice(p.Price)
		if p.OldPrice != nil {
			priceLine += "  (was " + formatPrice(*p.OldPrice)
			if p.Discount != "" {
				priceLine += ", -" + strings.TrimPrefix(p.Discount, "-")
			}
			priceLine += ")"
		}
		if p.ProfitAmount > 0 {
			priceLine += fmt.Sprintf("  |  Margin: %s (%.2f%%)", formatPrice(p.ProfitAmount), p.ProfitMargin)
		}
		fmt.Fprintln(w, priceLine)

		var tags []string
		if p.IsOfficialStore {
			tags = append(tags, "[Official Store]")
		}
		if p.HasExpressShipping {
			tags = append(tags, "[Express]")
		}
		if p.Campaign != "" {
			tags = append(tags, "["+p.Campaign+"]")
		}
		if len(tags) > 0 {
			fmt.Fprintf(w, "    %s\n", strings.Join(tags, " "))
		}
		if p.Brand != "" || p.Category != "" {
			fmt.Fprintf(w, "    Brand: %s  |  Category: %s\n", orDash(p.Brand), formatBreadcrumb(p.Category))
		}
		if p.Rating != nil {
			fmt.Fprintf(w, "    Rating: %.1f/5 (%d reviews)\n", *p.Rating, p.Reviews)
		}
		fmt.Fprintf(w, "    Slug: %s\n", p.Slug)
	}
}

func printDetailsTable(w io.Writer, d models.ProductDetails) {
	fmt.Fprintf(w, "%s\n", d.Title)
	fmt.Fprintf(w, "  SKU: %s  |  Brand: %s\n", orDash(d.SKU), orDash(d.Brand))
	priceLine := "  Price: " + formatPrice(d.Price)
	if d.OldPrice != nil {
		priceLine += "  (was " + formatPrice(*d.OldPrice) + ")"
	}
	fmt.Fprintln(w, priceLine)

	stock := "in stock"
	if !d.InStock {
		stock = "out of stock"
	}
	if d.StockQuantity != nil {
		stock += fmt.Sprintf(" (~%d units)", *d.StockQuantity)
	}
	fmt.Fprintf(w, "  Stock: %s\n", stock)

	if d.Rating != nil {
		fmt.Fprintf(w, "  Rating: %.1f/5 (%d verified ratings)\n", *d.Rating, d.Reviews)
	}
	if len(d.Badges) > 0 {
		fmt.Fprintf(w, "  Badges: %s\n", strings.Join(d.Badges, ", "))
	}
	if len(d.Variations) > 0 {
		fmt.Fprintln(w, "  Variations:")
		for _, v := range d.Variations {
			line := "    - " + v.Name
			if v.Price != nil {
				line += "  " + formatPrice(*v.Price)
			}
			if !v.Available {
				line += "  [unavailable]"
			}
			fmt.Fprintln(w, line)
		}
	}
	if len(d.KeyFeatures) > 0 {
		fmt.Fprintln(w, "  Key features:")
		for _, f := range d.KeyFeatures {
			fmt.Fprintf(w, "    * %s\n", truncate(f, 100))
		}
	}
	fmt.Fprintf(w, "  Images: %d\n", len(d.Images))
}

func printReviewsTable(w io.Writer, set models.ReviewSet) {
	if set.OverallRating != nil {
		fmt.Fprintf(w, "Overall: %.1f/5 from %d ratings\n", *set.OverallRating, set.TotalRatings)
	}
	if len(set.RatingDistribution) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Stars", "Ratings"})
		for stars := 5; stars >= 1; stars-- {
			t.AppendRow(table.Row{strings.Repeat("★", stars), set.RatingDistribution[stars]})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}
	fmt.Fprintf(w, "Page %d of %d\n", set.CurrentPage, set.TotalPages)
	for _, r := range set.Reviews {
		fmt.Fprintln(w)
		verified := ""
		if r.Verified {
			verified = " (verified)"
		}
		date := ""
		if r.Date != nil {
			date = " on " + *r.Date
		}
		fmt.Fprintf(w, " %s %s\n", strings.Repeat("★", r.Rating)+strings.Repeat("☆", 5-r.Rating), r.Title)
		fmt.Fprintf(w, "   by %s%s%s\n", r.Author, date, verified)
		if r.Comment != "" {
			fmt.Fprintf(w, "   %s\n", truncate(r.Comment, 200))
		}
	}
}

func printCategoriesTable(w io.Writer, categories []models.Category) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Category", "Subcategory", "Item", "URL"})
	for _, c := range categories {
		t.AppendRow(table.Row{c.Name, "", "", c.URL})
		for _, sub := range c.Subcategories {
			t.AppendRow(table.Row{"", sub.Name, "", sub.URL})
			for _, item := range sub.Items {
				t.AppendRow(table.Row{"", "", item.Name, item.URL})
			}
		}
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// formatPrice formats a naira amount as "₦ 1,234,567", keeping kobo only
// when present.
func formatPrice(n float64) string {
	whole := int64(math.Abs(n))
	frac := math.Round((math.Abs(n) - float64(whole)) * 100)
	if frac >= 100 {
		whole++
		frac = 0
	}

	s := fmt.Sprintf("%d", whole)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := "₦ " + strings.Join(parts, ",")
	if frac > 0 {
		out += fmt.Sprintf(".%02d", int(frac))
	}
	if n < 0 {
		out = "-" + out
	}
	return out
}

// formatBreadcrumb converts "Phones & Tablets/Mobile Phones" to
// "Phones & Tablets > Mobile Phones".
func formatBreadcrumb(s string) string {
	if s == "" {
		return "-"
	}
	parts := strings.Split(s, "/")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, " > ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
