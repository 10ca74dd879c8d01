package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lukman83/jumia-reseller/internal/fetch"
	"github.com/lukman83/jumia-reseller/internal/jumia"
	"github.com/lukman83/jumia-reseller/internal/models"
	"github.com/lukman83/jumia-reseller/internal/platform"
	"go.uber.org/zap"
)

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Jumia Reseller API is running"})
}

func (s *Server) Categories(c *gin.Context) {
	categories, err := s.scraper.Categories()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(categories),
		"categories": categories,
	})
}

func (s *Server) HomeProducts(c *gin.Context) {
	products, err := s.scraper.Home(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.products(c, products, nil)
}

func (s *Server) CategoryProducts(c *gin.Context) {
	pageURL := c.Query("url")
	if pageURL == "" {
		badRequest(c, "Category URL is required")
		return
	}
	products, err := s.scraper.Category(c.Request.Context(), pageURL)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.products(c, products, nil)
}

func (s *Server) SearchProducts(c *gin.Context) {
	opts := platform.SearchOpts{
		Query:    c.Query("q"),
		PriceMin: c.Query("priceMin"),
		PriceMax: c.Query("priceMax"),
	}
	if opts.Query == "" {
		badRequest(c, "Search query is required")
		return
	}

	products, err := s.scraper.Search(c.Request.Context(), opts)
	if err != nil {
		s.fail(c, err)
		return
	}

	var priceRange *string
	if r := opts.PriceRange(); r != "" {
		priceRange = &r
	}
	s.products(c, products, gin.H{"query": opts.Query, "priceRange": priceRange})
}

func (s *Server) ProductDetails(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		msg := "Product slug or ID is required"
		if c.Query("id") != "" {
			msg = "Please provide product slug"
		}
		badRequest(c, msg)
		return
	}

	pageURL := s.scraper.ProductURL(slug)
	details, err := s.scraper.ProductDetails(c.Request.Context(), pageURL)
	if err != nil {
		logFailure(c, err, zap.String("slug", slug), zap.String("attempted_url", pageURL))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":      false,
			"error":        err.Error(),
			"slug":         slug,
			"attemptedUrl": pageURL,
		})
		return
	}

	product := s.margin.ApplyDetails(*details)
	product.URL = ""
	product.Slug = slug

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"profitMargin": s.margin.Percent,
		"product":      product,
	})
}

type reviewsResponse struct {
	Success bool `json:"success"`
	*models.ReviewSet
}

func (s *Server) ProductReviews(c *gin.Context) {
	sku := c.Query("sku")
	if sku == "" {
		badRequest(c, "Product SKU is required")
		return
	}
	page, _ := strconv.Atoi(strings.TrimSpace(c.DefaultQuery("page", "1")))

	set, err := s.scraper.Reviews(c.Request.Context(), sku, page)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewsResponse{Success: true, ReviewSet: set})
}

// products writes a margin-adjusted listing with any extra response fields.
func (s *Server) products(c *gin.Context, products []models.Product, extra gin.H) {
	body := gin.H{
		"success":      true,
		"count":        len(products),
		"profitMargin": s.margin.Percent,
		"products":     s.margin.ApplyAll(products),
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) fail(c *gin.Context, err error) {
	logFailure(c, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

func logFailure(c *gin.Context, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("path", c.FullPath()), zap.Error(err))

	var netErr *fetch.NetworkError
	var cfgErr *jumia.ConfigError
	switch {
	case errors.As(err, &netErr):
		fields = append(fields, zap.String("upstream_url", netErr.URL), zap.Int("upstream_status", netErr.StatusCode))
		zap.L().Error("upstream fetch failed", fields...)
	case errors.As(err, &cfgErr):
		fields = append(fields, zap.String("file", cfgErr.Path))
		zap.L().Error("category data unavailable", fields...)
	default:
		zap.L().Error("request failed", fields...)
	}
}
