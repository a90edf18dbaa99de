package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/anibridge/internal/genres"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genre vocabulary",
	Long:  "List the genre and theme names accepted by --genre and --exclude-genre.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			printJSON(genres.Canon())
			return nil
		}
		for _, g := range genres.Canon() {
			fmt.Println(g)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
}
