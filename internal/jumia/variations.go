package jumia

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/lukman83/jumia-reseller/internal/markup"
	"github.com/lukman83/jumia-reseller/internal/models"
)

// VariationStrategy extracts a product's purchasable options from one region
// of the detail page.
type VariationStrategy interface {
	Name() string
	Extract(doc *markup.Document) []models.Variation
}

// VariationStrategies returns the strategies in the order they are tried.
func (s *Schema) VariationStrategies() []VariationStrategy {
	return []VariationStrategy{
		inputVariations{s},
		popupVariations{s},
	}
}

// ResolveVariations runs strategies in order and returns the first non-empty
// result with the name of the strategy that produced it.
func ResolveVariations(doc *markup.Document, strategies []VariationStrategy) ([]models.Variation, string) {
	for _, st := range strategies {
		if v := st.Extract(doc); len(v) > 0 {
			return v, st.Name()
		}
	}
	return []models.Variation{}, ""
}

// inputVariations reads checkbox/radio variation inputs and their labels.
type inputVariations struct{ s *Schema }

func (inputVariations) Name() string { return "inputs" }

func (iv inputVariations) Extract(doc *markup.Document) []models.Variation {
	ds := iv.s.Detail
	var out []models.Variation

	doc.Find(ds.VariationInput).Each(func(_ int, input *goquery.Selection) {
		var name string
		if id := input.AttrOr("id", ""); id != "" {
			name = markup.Text(doc.Find(`label[for="` + id + `"]`))
		}
		out = append(out, models.Variation{
			Name:      name,
			Value:     input.AttrOr("value", ""),
			Available: !input.HasClass(ds.VariationDisabled),
		})
	})
	return out
}

// popupVariations reads the popup variation picker, which also carries a
// per-option price and stock text.
type popupVariations struct{ s *Schema }

func (popupVariations) Name() string { return "popup" }

func (pv popupVariations) Extract(doc *markup.Document) []models.Variation {
	ds := pv.s.Detail
	var out []models.Variation

	doc.Find(ds.PopupForm).Each(func(_ int, form *goquery.Selection) {
		parent := form.Parent()
		name := markup.Text(parent.Find(ds.PopupName).First())
		if name == "" {
			return
		}

		value := form.AttrOr(ds.PopupValueAttr, "")
		if value == "" {
			value = name
		}

		out = append(out, models.Variation{
			Name:          name,
			Value:         value,
			Available:     !markup.Exists(parent, ds.PopupDisabled),
			Price:         nonZero(pv.s.parsePrice(markup.Text(parent.Find(ds.PopupPrice)))),
			StockQuantity: pv.s.VariationStock.Parse(markup.Text(parent.Find(ds.PopupStock))).Ptr(),
		})
	})
	return out
}
