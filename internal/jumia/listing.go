package jumia

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/lukman83/jumia-reseller/internal/markup"
	"github.com/lukman83/jumia-reseller/internal/models"
)

// ListingCard is one extracted card plus the outcome of its optional fields.
type ListingCard struct {
	Product  models.Product
	Price    Field[float64]
	OldPrice Field[float64]
	Rating   Field[float64]
	Reviews  Field[int]
}

// ExtractCards returns every non-sponsored product card in DOM order.
func (s *Schema) ExtractCards(doc *markup.Document, origin string) []ListingCard {
	ls := s.Listing
	var cards []ListingCard

	doc.Find(ls.Card).Each(func(_ int, card *goquery.Selection) {
		if _, sponsored := card.Attr(ls.SponsoredAttr); sponsored {
			return
		}

		name := markup.FirstAttr(card, ls.NameAttr)
		if name == "" {
			name = markup.Text(card.Find(ls.NameFallback))
		}

		href := card.AttrOr("href", "")
		c := ListingCard{
			Price:    s.parsePrice(markup.Text(card.Find(ls.Price))),
			OldPrice: s.parsePrice(markup.Text(card.Find(ls.OldPrice))),
			Rating:   parseFloat(card.AttrOr(ls.RatingAttr, "")),
			Reviews:  parseInt(card.AttrOr(ls.ReviewsAttr, "")),
		}
		c.Product = models.Product{
			Name:               name,
			Price:              c.Price.Or(0),
			Brand:              card.AttrOr(ls.BrandAttr, ""),
			Category:           card.AttrOr(ls.CategoryAttr, ""),
			ProductID:          card.AttrOr(ls.IDAttr, ""),
			Slug:               Slug(href),
			URL:                absolute(origin, href),
			Image:              markup.FirstAttr(card.Find(ls.Image), "data-src", "src"),
			OldPrice:           nonZero(c.OldPrice),
			Discount:           markup.Text(card.Find(ls.Discount)),
			Rating:             nonZero(c.Rating),
			Reviews:            c.Reviews.Or(0),
			IsOfficialStore:    markup.Exists(card, ls.OfficialStore),
			HasExpressShipping: markup.Exists(card, ls.ExpressShipping),
			Campaign:           markup.Text(card.Find(ls.Campaign)),
		}
		cards = append(cards, c)
	})

	return cards
}

// ExtractListing returns the products of a catalog, search or home page.
func (s *Schema) ExtractListing(doc *markup.Document, origin string) []models.Product {
	cards := s.ExtractCards(doc, origin)
	products := make([]models.Product, len(cards))
	for i, c := range cards {
		products[i] = c.Product
	}
	return products
}
