package cmd

import (
	"fmt"

	mcpserver "github.com/lukman83/jumia-reseller/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  "Start the MCP server on stdio, or over HTTP with --http for remote access.",
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

func init() {
	mcpCmd.Flags().String("http", "", "Serve over HTTP on this port instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	if _, err := currentScraper(); err != nil {
		return err
	}
	tools := &mcpserver.Tools{Platform: cfg.Platform, Margin: margin()}

	if port, _ := cmd.Flags().GetString("http"); port != "" {
		return runServers(cmd.Context(), mcpserver.NewHTTPServer(":"+port, cfg.APIKey, tools))
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting Jumia MCP server on stdio...")
	return mcpserver.Serve(tools)
}
