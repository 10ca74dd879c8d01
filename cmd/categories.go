package cmd

import (
	"fmt"
	"os"

	"github.com/lukman83/jumia-reseller/internal/jumia"
	"github.com/lukman83/jumia-reseller/internal/markup"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the storefront category tree",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var categoriesImportCmd = &cobra.Command{
	Use:   "import [menu.html]",
	Short: "Rebuild the category file from a saved copy of the storefront menu",
	Long: "Parses the flyout category menu from a saved storefront page and writes it as the " +
		"category tree. Relative URLs are kept; they are made absolute when the tree is read.",
	Args: cobra.ExactArgs(1),
	RunE: runCategoriesImport,
}

func init() {
	categoriesCmd.Flags().String("format", "json", "Output format: json, table")
	categoriesImportCmd.Flags().StringP("output", "o", "", "Output file (default: the configured categories file, - for stdout)")
	categoriesCmd.AddCommand(categoriesImportCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	categories, err := jumia.LoadCategories(cfg.CategoriesPath, cfg.Origin)
	if err != nil {
		return err
	}

	if format == "table" {
		printCategoriesTable(cmd.OutOrStdout(), categories)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), categories)
}

func runCategoriesImport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.CategoriesPath
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	doc, err := markup.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	categories := jumia.DefaultSchema.ExtractMenu(doc)
	if len(categories) == 0 {
		return fmt.Errorf("no categories found in %s", args[0])
	}

	if output == "-" {
		return writeJSON(cmd.OutOrStdout(), categories)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := writeJSON(f, categories); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	subs := 0
	for _, c := range categories {
		subs += len(c.Subcategories)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d categories (%d subcategories) to %s\n", len(categories), subs, output)
	return nil
}
