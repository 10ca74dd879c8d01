package platform

import (
	"context"

	"github.com/lukman83/jumia-reseller/internal/models"
)

// SearchOpts narrows a catalog search. Price bounds are forwarded upstream
// verbatim and only when both are set.
type SearchOpts struct {
	Query    string
	PriceMin string
	PriceMax string
}

// PriceRange returns "min-max", or "" unless both bounds are set.
func (o SearchOpts) PriceRange() string {
	if o.PriceMin == "" || o.PriceMax == "" {
		return ""
	}
	return o.PriceMin + "-" + o.PriceMax
}

// Scraper is a storefront whose pages can be extracted into the catalog
// model. Prices are returned as found upstream; callers apply the margin.
type Scraper interface {
	Home(ctx context.Context) ([]models.Product, error)
	Category(ctx context.Context, url string) ([]models.Product, error)
	Search(ctx context.Context, opts SearchOpts) ([]models.Product, error)
	ProductURL(slug string) string
	ProductDetails(ctx context.Context, url string) (*models.ProductDetails, error)
	Reviews(ctx context.Context, sku string, page int) (*models.ReviewSet, error)
	Categories() ([]models.Category, error)
}
