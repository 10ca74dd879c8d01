package jumia

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/lukman83/jumia-reseller/internal/markup"
	"github.com/lukman83/jumia-reseller/internal/models"
)

// DetailPage is an extracted product page plus per-field outcomes.
type DetailPage struct {
	Details models.ProductDetails

	SKU               Field[string]
	Price             Field[float64]
	OldPrice          Field[float64]
	Rating            Field[float64]
	Reviews           Field[int]
	Stock             Field[int]
	VariationStrategy string
}

// ExtractDetails reads a product detail page.
func (s *Schema) ExtractDetails(doc *markup.Document) DetailPage {
	ds := s.Detail
	p := DetailPage{}

	sku := strings.TrimSpace(doc.Find(ds.AddToCart).AttrOr(ds.SKUAttr, ""))
	if sku != "" {
		p.SKU = found(sku)
	}

	p.Price = s.parsePrice(markup.Text(doc.Find(ds.Price).First()))
	p.OldPrice = s.parsePrice(markup.Text(doc.Find(ds.OldPrice).First()))
	p.Rating = captureFloat(ds.RatingPattern, markup.Text(doc.Find(ds.Rating)))
	p.Reviews = captureInt(ds.ReviewCountPattern, markup.Text(doc.Find(ds.ReviewCount)))

	variations, strategy := ResolveVariations(doc, s.VariationStrategies())
	p.VariationStrategy = strategy

	p.Stock = s.ProductStock.Parse(markup.Text(doc.Find(ds.AddToCart).Parent().Find(ds.StockText)))

	desc := doc.Find(ds.Description).First()
	descHTML, _ := desc.Html()

	badges := s.badges(doc)
	images := s.gallery(doc)

	d := models.ProductDetails{
		Title:           markup.Text(doc.Find(ds.Title)),
		SKU:             sku,
		Images:          images,
		Variations:      variations,
		StockQuantity:   p.Stock.Ptr(),
		Description:     markup.Text(desc),
		DescriptionHTML: strings.TrimSpace(descHTML),
		Shipping:        markup.Text(doc.Find(ds.Shipping)),
		Badges:          badges,
		KeyFeatures:     s.keyFeatures(doc),
		Specifications:  s.specifications(doc),
	}
	d.Product = models.Product{
		Name:            d.Title,
		Brand:           markup.Text(doc.Find(ds.Brand).First()),
		ProductID:       sku,
		Price:           p.Price.Or(0),
		OldPrice:        nonZero(p.OldPrice),
		Discount:        markup.Text(doc.Find(ds.Discount).First()),
		Rating:          p.Rating.Ptr(),
		Reviews:         p.Reviews.Or(0),
		IsOfficialStore: hasBadge(badges, ds.OfficialBadge),
	}
	if len(images) > 0 {
		d.Image = images[0]
	}
	d.InStock = d.HasStock()

	p.Details = d
	return p
}

// gallery collects full-size gallery images, skipping inline placeholders
// and duplicates.
func (s *Schema) gallery(doc *markup.Document) []string {
	ds := s.Detail
	images := []string{}
	seen := map[string]bool{}

	doc.Find(ds.GalleryImage).Each(func(_ int, img *goquery.Selection) {
		src := markup.FirstAttr(img, "data-src", "src")
		if src == "" || strings.Contains(src, ds.PlaceholderMarker) {
			return
		}
		src = strings.Replace(src, ds.ThumbSegment, ds.LargeSegment, 1)
		if seen[src] {
			return
		}
		seen[src] = true
		images = append(images, src)
	})
	return images
}

func (s *Schema) badges(doc *markup.Document) []string {
	badges := []string{}
	doc.Find(s.Detail.Badges).Each(func(_ int, b *goquery.Selection) {
		if t := markup.CleanText(b); t != "" {
			badges = append(badges, t)
		}
	})
	return badges
}

func hasBadge(badges []string, phrase string) bool {
	for _, b := range badges {
		if strings.Contains(strings.ToLower(b), phrase) {
			return true
		}
	}
	return false
}

// keyFeatures returns nil when the page has none. Long entries are dropped
// as they usually come from unrelated blocks matched by the list selector.
func (s *Schema) keyFeatures(doc *markup.Document) []string {
	var features []string
	doc.Find(s.Detail.KeyFeatures).Each(func(_ int, li *goquery.Selection) {
		f := markup.Text(li)
		if f != "" && utf8.RuneCountInString(f) < s.Detail.MaxFeatureLen {
			features = append(features, f)
		}
	})
	return features
}

// specifications returns nil when the page has none.
func (s *Schema) specifications(doc *markup.Document) map[string]string {
	ds := s.Detail
	var specs map[string]string
	doc.Find(ds.SpecRows).Each(func(_ int, row *goquery.Selection) {
		label := markup.Text(row.Find(ds.SpecLabel))
		value := markup.Text(row.Find(ds.SpecValue))
		if label == "" || value == "" || utf8.RuneCountInString(label) >= ds.MaxSpecLabelLen {
			return
		}
		if specs == nil {
			specs = map[string]string{}
		}
		specs[label] = value
	})
	return specs
}
