// Package api exposes the catalog over a JSON REST surface. Every endpoint
// performs one fetch and extract cycle and applies the margin to prices
// before responding.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lukman83/jumia-reseller/internal/platform"
	"github.com/lukman83/jumia-reseller/internal/pricing"
	"go.uber.org/zap"
)

// Server holds the handlers' dependencies.
type Server struct {
	scraper platform.Scraper
	margin  pricing.Margin
}

func NewServer(scraper platform.Scraper, margin pricing.Margin) *Server {
	return &Server{scraper: scraper, margin: margin}
}

// Router builds the gin engine with every route mounted under /api.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery(), allowAnyOrigin())

	api := r.Group("/api")
	{
		api.GET("/health", s.Health)
		api.GET("/categories", s.Categories)
		api.GET("/products", s.HomeProducts)
		api.GET("/products/category", s.CategoryProducts)
		api.GET("/products/search", s.SearchProducts)
		api.GET("/product/details", s.ProductDetails)
		api.GET("/product/reviews", s.ProductReviews)
	}
	return r
}

// HTTPServer wraps the router in an http.Server listening on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// requestLogger writes one zap line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			zap.L().Warn("request failed", fields...)
			return
		}
		zap.L().Info("request", fields...)
	}
}

// allowAnyOrigin lets the storefront frontend call the API cross-origin.
func allowAnyOrigin() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET,HEAD,OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
