package cmd

import (
	"context"
	"fmt"

	"github.com/lukman83/jumia-reseller/internal/models"
	"github.com/lukman83/jumia-reseller/internal/platform"
	"github.com/lukman83/jumia-reseller/internal/ui"
	"github.com/spf13/cobra"
)

func addListingFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 0, "Maximum number of products (0 for all)")
	cmd.Flags().String("format", "json", "Output format: json, table")
	cmd.Flags().Bool("official-only", false, "Only show official store products")
}

// runListing loads one listing page, applies the margin and prints it.
func runListing(cmd *cobra.Command, status string, load func(context.Context, platform.Scraper) ([]models.Product, error)) error {
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")
	officialOnly, _ := cmd.Flags().GetBool("official-only")

	scraper, err := currentScraper()
	if err != nil {
		return err
	}

	spin := ui.NewSpinner()
	spin.Start(status)
	ctx := platform.WithProgress(cmd.Context(), spin.Update)
	products, err := load(ctx, scraper)
	spin.Stop()
	if err != nil {
		return err
	}

	if officialOnly {
		products = filterOfficial(products)
	}
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	products = margin().ApplyAll(products)

	switch format {
	case "table":
		printProductsTable(cmd.OutOrStdout(), products)
		return nil
	default:
		return writeJSON(cmd.OutOrStdout(), products)
	}
}

func filterOfficial(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.IsOfficialStore {
			out = append(out, p)
		}
	}
	return out
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "List products featured on the home page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(cmd, "Fetching home page...", func(ctx context.Context, s platform.Scraper) ([]models.Product, error) {
			return s.Home(ctx)
		})
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category [url]",
	Short: "List products on a category page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(cmd, fmt.Sprintf("Fetching category %s...", args[0]), func(ctx context.Context, s platform.Scraper) ([]models.Product, error) {
			return s.Category(ctx, args[0])
		})
	},
}

func init() {
	addListingFlags(homeCmd)
	addListingFlags(categoryCmd)
	rootCmd.AddCommand(homeCmd, categoryCmd)
}
