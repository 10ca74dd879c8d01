package cmd

import (
	"fmt"

	"github.com/lukman83/jumia-reseller/internal/platform"
	"github.com/lukman83/jumia-reseller/internal/ui"
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product [slug]",
	Short: "Show full details for a product slug",
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews [sku]",
	Short: "Show one page of ratings and reviews for a product SKU",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviews,
}

func init() {
	productCmd.Flags().String("format", "json", "Output format: json, table")
	reviewsCmd.Flags().Int("page", 1, "Page number")
	reviewsCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(productCmd, reviewsCmd)
}

func runProduct(cmd *cobra.Command, args []string) error {
	slug := args[0]
	format, _ := cmd.Flags().GetString("format")

	scraper, err := currentScraper()
	if err != nil {
		return err
	}

	pageURL := scraper.ProductURL(slug)
	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Fetching product %s...", slug))
	details, err := scraper.ProductDetails(platform.WithProgress(cmd.Context(), spin.Update), pageURL)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("product %s (%s): %w", slug, pageURL, err)
	}

	product := margin().ApplyDetails(*details)
	product.URL = ""
	product.Slug = slug

	if format == "table" {
		printDetailsTable(cmd.OutOrStdout(), product)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), product)
}

func runReviews(cmd *cobra.Command, args []string) error {
	sku := args[0]
	page, _ := cmd.Flags().GetInt("page")
	format, _ := cmd.Flags().GetString("format")

	scraper, err := currentScraper()
	if err != nil {
		return err
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Fetching reviews for %s (page %d)...", sku, page))
	set, err := scraper.Reviews(platform.WithProgress(cmd.Context(), spin.Update), sku, page)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("reviews failed: %w", err)
	}

	if format == "table" {
		printReviewsTable(cmd.OutOrStdout(), *set)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), set)
}
