// Package jumia extracts the catalog model from jumia.com.ng pages.
//
// Every request fetches, parses and extracts sequentially; nothing is cached
// between calls.
package jumia

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lukman83/jumia-reseller/internal/fetch"
	"github.com/lukman83/jumia-reseller/internal/markup"
	"github.com/lukman83/jumia-reseller/internal/models"
	"github.com/lukman83/jumia-reseller/internal/platform"
	"go.uber.org/zap"
)

// DefaultOrigin is the storefront base URL.
const DefaultOrigin = "https://www.jumia.com.ng"

// Options configures a Scraper.
type Options struct {
	Origin         string
	CategoriesPath string
	Schema         *Schema
}

// Scraper implements platform.Scraper for Jumia.
type Scraper struct {
	fetcher        fetch.Fetcher
	schema         *Schema
	origin         string
	categoriesPath string
}

var _ platform.Scraper = (*Scraper)(nil)

func NewScraper(fetcher fetch.Fetcher, opts Options) *Scraper {
	if opts.Origin == "" {
		opts.Origin = DefaultOrigin
	}
	if opts.Schema == nil {
		opts.Schema = DefaultSchema
	}
	return &Scraper{
		fetcher:        fetcher,
		schema:         opts.Schema,
		origin:         strings.TrimSuffix(opts.Origin, "/"),
		categoriesPath: opts.CategoriesPath,
	}
}

// Origin is the storefront base URL used to absolutize links.
func (j *Scraper) Origin() string { return j.origin }

func (j *Scraper) page(ctx context.Context, pageURL string) (*markup.Document, error) {
	platform.Progressf(ctx, "Fetching %s...", pageURL)
	body, err := j.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := markup.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return doc, nil
}

func (j *Scraper) Home(ctx context.Context) ([]models.Product, error) {
	return j.Category(ctx, j.origin)
}

// Category extracts the listing at any catalog URL.
func (j *Scraper) Category(ctx context.Context, pageURL string) ([]models.Product, error) {
	doc, err := j.page(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	products := j.schema.ExtractListing(doc, j.origin)
	platform.Progressf(ctx, "Extracted %d products", len(products))
	return products, nil
}

func (j *Scraper) Search(ctx context.Context, opts platform.SearchOpts) ([]models.Product, error) {
	searchURL := j.SearchURL(opts)
	zap.L().Info("searching catalog",
		zap.String("query", opts.Query),
		zap.String("price_range", opts.PriceRange()),
		zap.String("url", searchURL),
	)
	return j.Category(ctx, searchURL)
}

// SearchURL builds the catalog search URL. The storefront expects the price
// filter as price=min-max.
func (j *Scraper) SearchURL(opts platform.SearchOpts) string {
	u := j.origin + "/catalog/?q=" + encodeComponent(opts.Query)
	if r := opts.PriceRange(); r != "" {
		u += "&price=" + encodeComponent(opts.PriceMin) + "-" + encodeComponent(opts.PriceMax)
	}
	return u
}

func (j *Scraper) ProductURL(slug string) string {
	return ProductURL(j.origin, slug)
}

func (j *Scraper) ProductDetails(ctx context.Context, pageURL string) (*models.ProductDetails, error) {
	doc, err := j.page(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	p := j.schema.ExtractDetails(doc)
	p.Details.URL = pageURL
	p.Details.Slug = Slug(pageURL)

	zap.L().Debug("extracted product",
		zap.String("title", p.Details.Title),
		zap.String("sku", p.Details.SKU),
		zap.Stringer("price", p.Price.Presence),
		zap.Stringer("stock", p.Stock.Presence),
		zap.String("variation_strategy", p.VariationStrategy),
		zap.Int("variations", len(p.Details.Variations)),
	)
	return &p.Details, nil
}

// ReviewsURL is the ratings page for sku.
func (j *Scraper) ReviewsURL(sku string, page int) string {
	return j.origin + "/catalog/productratingsreviews/sku/" + url.PathEscape(sku) + "/?page=" + strconv.Itoa(page)
}

func (j *Scraper) Reviews(ctx context.Context, sku string, page int) (*models.ReviewSet, error) {
	if page < 1 {
		page = 1
	}
	doc, err := j.page(ctx, j.ReviewsURL(sku, page))
	if err != nil {
		return nil, err
	}
	set := j.schema.ExtractReviews(doc, page)
	return &set, nil
}

func (j *Scraper) Categories() ([]models.Category, error) {
	return LoadCategories(j.categoriesPath, j.origin)
}

// encodeComponent escapes s like a URI component: spaces become %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
