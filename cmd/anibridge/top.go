package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/anibridge/internal/mal"
	"github.com/vmunix/anibridge/internal/query"
)

var topCmd = &cobra.Command{
	Use:   "top [anime|manga] [board]",
	Short: "Show a ranking board",
	Long: `Show a catalog ranking board, top rated by default.

Anime boards: all, airing, upcoming, tv, ova, movie, special,
bypopularity, favorite.
Manga boards: all, manga, novels, oneshots, doujin, manhwa, manhua,
bypopularity, favorite.

Examples:
  anibridge top                      # top rated anime
  anibridge top airing               # best currently airing anime
  anibridge top manga bypopularity   # most popular manga`,
	Args: cobra.MaximumNArgs(2),
	RunE: runTop,
}

func init() {
	rootCmd.AddCommand(topCmd)
	addFilterFlags(topCmd)
	addPageFlags(topCmd)
}

// parseTopArgs reads an optional record kind followed by an optional
// board name. A single argument that is not a kind names a board on
// the anime ranking.
func parseTopArgs(args []string) (kind, board string, err error) {
	kind, board = "anime", "all"
	switch len(args) {
	case 1:
		switch strings.ToLower(args[0]) {
		case "anime":
		case "manga":
			kind = "manga"
		default:
			board = strings.ToLower(args[0])
		}
	case 2:
		kind = strings.ToLower(args[0])
		if kind != "anime" && kind != "manga" {
			return "", "", fmt.Errorf("unknown catalog %q (expected anime or manga)", args[0])
		}
		board = strings.ToLower(args[1])
	}
	return kind, board, nil
}

func runTop(cmd *cobra.Command, args []string) error {
	kind, board, err := parseTopArgs(args)
	if err != nil {
		return err
	}
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
		if !mal.ValidEnum(board, mal.MangaRankingTypes) {
			return fmt.Errorf("invalid board %q (allowed: %s)", board, strings.Join(mal.MangaRankingTypes, ", "))
		}
		filter, err := mangaFilterFromFlags(cmd)
		if err != nil {
			return err
		}
		fetch := func(ctx context.Context, limit, offset int) ([]mal.Manga, bool, error) {
			return catalog.MangaRanking(ctx, board, limit, offset)
		}
		items, meta, err := query.FetchFiltered(ctx, fetch, filter, limit, offset)
		if err != nil {
			return fmt.Errorf("ranking failed: %w", err)
		}
		printMangaListing(items, meta)
		return nil
	}

	if !mal.ValidEnum(board, mal.AnimeRankingTypes) {
		return fmt.Errorf("invalid board %q (allowed: %s)", board, strings.Join(mal.AnimeRankingTypes, ", "))
	}
	filter, err := animeFilterFromFlags(cmd)
	if err != nil {
		return err
	}
	fetch := func(ctx context.Context, limit, offset int) ([]mal.Anime, bool, error) {
		return catalog.AnimeRanking(ctx, board, limit, offset)
	}
	items, meta, err := query.FetchFiltered(ctx, fetch, filter, limit, offset)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}
	printAnimeListing(items, meta)
	return nil
}
