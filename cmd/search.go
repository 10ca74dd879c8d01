package cmd

import (
	"context"
	"fmt"

	"github.com/lukman83/jumia-reseller/internal/models"
	"github.com/lukman83/jumia-reseller/internal/platform"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search products by keyword",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().String("price-min", "", "Lower price bound (used only with --price-max)")
	searchCmd.Flags().String("price-max", "", "Upper price bound (used only with --price-min)")
	addListingFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts := platform.SearchOpts{Query: args[0]}
	opts.PriceMin, _ = cmd.Flags().GetString("price-min")
	opts.PriceMax, _ = cmd.Flags().GetString("price-max")

	status := fmt.Sprintf("Searching '%s' on %s...", opts.Query, cfg.Platform)
	if r := opts.PriceRange(); r != "" {
		status = fmt.Sprintf("Searching '%s' priced %s on %s...", opts.Query, r, cfg.Platform)
	}
	return runListing(cmd, status, func(ctx context.Context, s platform.Scraper) ([]models.Product, error) {
		products, err := s.Search(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("search failed: %w", err)
		}
		return products, nil
	})
}
