package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/anibridge/internal/mal"
	"github.com/vmunix/anibridge/internal/query"
)

var searchCmd = &cobra.Command{
	Use:   "search anime|manga <query>...",
	Short: "Search the catalog by title keyword",
	Long: `Search the catalog by title keyword.

Attribute filters are applied on the proxy side: a filtered search
reads a full catalog page, keeps the matches, and reports how many
records it scanned.

Examples:
  anibridge search anime "steins gate"
  anibridge search anime frieren --min-score 8 --genre Fantasy
  anibridge search manga berserk --status finished`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addFilterFlags(searchCmd)
	addPageFlags(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	kind := strings.ToLower(args[0])
	if kind != "anime" && kind != "manga" {
		return fmt.Errorf("unknown catalog %q (expected anime or manga)", args[0])
	}
	q := strings.Join(args[1:], " ")

	limit, offset, err := pageFromFlags(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog := newCatalog(cfg)
	ctx := cmd.Context()

	if kind == "manga" {
		filter, err := mangaFilterFromFlags(cmd)
		if err != nil {
			return err
		}
		fetch := func(ctx context.Context, limit, offset int) ([]mal.Manga, bool, error) {
			return catalog.SearchManga(ctx, q, limit, offset)
		}
		items, meta, err := query.FetchFiltered(ctx, fetch, filter, limit, offset)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		printMangaListing(items, meta)
		return nil
	}

	filter, err := animeFilterFromFlags(cmd)
	if err != nil {
		return err
	}
	fetch := func(ctx context.Context, limit, offset int) ([]mal.Anime, bool, error) {
		return catalog.SearchAnime(ctx, q, limit, offset)
	}
	items, meta, err := query.FetchFiltered(ctx, fetch, filter, limit, offset)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	printAnimeListing(items, meta)
	return nil
}
