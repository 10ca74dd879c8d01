package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lukman83/jumia-reseller/internal/models"
	"github.com/lukman83/jumia-reseller/internal/platform"
	"github.com/lukman83/jumia-reseller/internal/pricing"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Tools serves catalog lookups to MCP clients. Prices are returned with the
// margin applied, the same as the REST API.
type Tools struct {
	// Platform is the registry name used when a call does not pick one.
	Platform string
	Margin   pricing.Margin
}

func (t *Tools) register(s *server.MCPServer) {
	platformArg := mcp.WithString("platform",
		mcp.Description(fmt.Sprintf("Storefront to query (default: %s)", t.Platform)),
	)
	limitArg := mcp.WithNumber("limit",
		mcp.Description("Maximum number of products to return (default: all)"),
	)

	s.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List the storefront category tree with absolute URLs"),
		platformArg,
	), t.handleListCategories)

	s.AddTool(mcp.NewTool("home_products",
		mcp.WithDescription("List products featured on the storefront home page"),
		platformArg,
		limitArg,
	), t.handleHomeProducts)

	s.AddTool(mcp.NewTool("category_products",
		mcp.WithDescription("List products on a category page"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Category page URL, as returned by list_categories"),
		),
		platformArg,
		limitArg,
	), t.handleCategoryProducts)

	s.AddTool(mcp.NewTool("search_products",
		mcp.WithDescription("Search the catalog by keyword with an optional price range"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search keyword"),
		),
		mcp.WithString("price_min",
			mcp.Description("Lower price bound in naira; only applied together with price_max"),
		),
		mcp.WithString("price_max",
			mcp.Description("Upper price bound in naira; only applied together with price_min"),
		),
		platformArg,
		limitArg,
	), t.handleSearchProducts)

	s.AddTool(mcp.NewTool("product_detail",
		mcp.WithDescription("Get full product details by slug"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Product slug, e.g. tecno-spark-20-256gb-12345"),
		),
		platformArg,
	), t.handleProductDetail)

	s.AddTool(mcp.NewTool("product_reviews",
		mcp.WithDescription("Get one page of ratings and reviews for a product SKU"),
		mcp.WithString("sku",
			mcp.Required(),
			mcp.Description("Product SKU from product_detail"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (default: 1)"),
		),
		platformArg,
	), t.handleProductReviews)
}

func (t *Tools) scraper(request mcp.CallToolRequest) (platform.Scraper, *mcp.CallToolResult) {
	s, err := platform.Get(request.GetString("platform", t.Platform))
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("platform error: %v", err))
	}
	return s, nil
}

func (t *Tools) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scraper, fail := t.scraper(request)
	if fail != nil {
		return fail, nil
	}
	categories, err := scraper.Categories()
	if err != nil {
		return toolError("categories", err), nil
	}
	return jsonResult(categories)
}

func (t *Tools) handleHomeProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scraper, fail := t.scraper(request)
	if fail != nil {
		return fail, nil
	}
	products, err := scraper.Home(ctx)
	if err != nil {
		return toolError("home", err), nil
	}
	return t.productsResult(products, request.GetInt("limit", 0))
}

func (t *Tools) handleCategoryProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url := request.GetString("url", "")
	if url == "" {
		return mcp.NewToolResultError("url is required"), nil
	}
	scraper, fail := t.scraper(request)
	if fail != nil {
		return fail, nil
	}
	products, err := scraper.Category(ctx, url)
	if err != nil {
		return toolError("category", err), nil
	}
	return t.productsResult(products, request.GetInt("limit", 0))
}

func (t *Tools) handleSearchProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := platform.SearchOpts{
		Query:    request.GetString("query", ""),
		PriceMin: request.GetString("price_min", ""),
		PriceMax: request.GetString("price_max", ""),
	}
	if opts.Query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	scraper, fail := t.scraper(request)
	if fail != nil {
		return fail, nil
	}
	products, err := scraper.Search(ctx, opts)
	if err != nil {
		return toolError("search", err), nil
	}
	return t.productsResult(products, request.GetInt("limit", 0))
}

func (t *Tools) handleProductDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := request.GetString("slug", "")
	if slug == "" {
		return mcp.NewToolResultError("slug is required"), nil
	}
	scraper, fail := t.scraper(request)
	if fail != nil {
		return fail, nil
	}

	pageURL := scraper.ProductURL(slug)
	details, err := scraper.ProductDetails(ctx, pageURL)
	if err != nil {
		zap.L().Warn("product detail failed", zap.String("slug", slug), zap.String("attempted_url", pageURL), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("detail error for %s: %v", pageURL, err)), nil
	}

	product := t.Margin.ApplyDetails(*details)
	product.URL = ""
	product.Slug = slug
	return jsonResult(product)
}

func (t *Tools) handleProductReviews(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sku := request.GetString("sku", "")
	if sku == "" {
		return mcp.NewToolResultError("sku is required"), nil
	}
	scraper, fail := t.scraper(request)
	if fail != nil {
		return fail, nil
	}
	set, err := scraper.Reviews(ctx, sku, request.GetInt("page", 1))
	if err != nil {
		return toolError("reviews", err), nil
	}
	return jsonResult(set)
}

func (t *Tools) productsResult(products []models.Product, limit int) (*mcp.CallToolResult, error) {
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return jsonResult(t.Margin.ApplyAll(products))
}

func toolError(op string, err error) *mcp.CallToolResult {
	zap.L().Warn("mcp tool failed", zap.String("op", op), zap.Error(err))
	return mcp.NewToolResultError(fmt.Sprintf("%s error: %v", op, err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
