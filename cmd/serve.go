package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lukman83/jumia-reseller/internal/api"
	mcpserver "github.com/lukman83/jumia-reseller/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API (and optionally the MCP HTTP server)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "REST port (default from $PORT or 5000)")
	serveCmd.Flags().String("mcp-port", "", "Also serve MCP over HTTP on this port")
	rootCmd.AddCommand(serveCmd)
}

const shutdownGrace = 10 * time.Second

func runServe(cmd *cobra.Command, args []string) error {
	scraper, err := currentScraper()
	if err != nil {
		return err
	}

	port := cfg.HTTPPort
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		port = p
	}
	mcpPort, _ := cmd.Flags().GetString("mcp-port")

	servers := []*http.Server{
		api.NewServer(scraper, margin()).HTTPServer(":" + port),
	}
	if mcpPort != "" {
		tools := &mcpserver.Tools{Platform: cfg.Platform, Margin: margin()}
		servers = append(servers, mcpserver.NewHTTPServer(":"+mcpPort, cfg.APIKey, tools))
	}

	zap.L().Info("starting servers",
		zap.String("rest_addr", ":"+port),
		zap.String("mcp_addr", mcpPort),
		zap.Float64("profit_margin", cfg.ProfitMarginPercent),
		zap.String("fetch_mode", cfg.FetchMode),
	)
	return runServers(cmd.Context(), servers...)
}

// runServers serves until ctx is cancelled or one server fails, then shuts
// every server down.
func runServers(ctx context.Context, servers ...*http.Server) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		g.Go(func() error {
			zap.L().Info("listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		zap.L().Info("servers stopped")
		return errors.Join(errs...)
	})

	return g.Wait()
}
