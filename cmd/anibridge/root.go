package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "anibridge",
	Short: "MCP gateway to the MyAnimeList catalog",
	Long: `anibridge - MCP gateway to the MyAnimeList catalog

Serves catalog search, rankings, and seasonal listings as MCP tools,
with attribute filters the catalog API does not offer applied on the
proxy side. The same queries are available directly as CLI commands.

Run 'anibridge serve' to start the MCP server.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (discovered when empty)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("anibridge {{.Version}}\n")
}
