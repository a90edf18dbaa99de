package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/anibridge/internal/mal"
	"github.com/vmunix/anibridge/internal/query"
)

var seasonCmd = &cobra.Command{
	Use:   "season <year> <season>",
	Short: "List anime from a broadcast season",
	Long: `List anime from a broadcast season (winter, spring, summer, fall).

The catalog lists long-running carryover shows alongside the season's
premieres; pass --current-only to keep premieres only.

Examples:
  anibridge season 2026 winter
  anibridge season 2025 fall --current-only --min-score 7.5`,
	Args: cobra.ExactArgs(2),
	RunE: runSeason,
}

func init() {
	rootCmd.AddCommand(seasonCmd)
	addFilterFlags(seasonCmd)
	addPageFlags(seasonCmd)
	seasonCmd.Flags().Bool("current-only", false, "Keep only shows that premiered in the queried season")
	seasonCmd.Flags().String("sort", "", "Sort order: anime_score, anime_num_list_users")
}

func runSeason(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil || year < 1900 {
		return fmt.Errorf("year must be a four-digit year")
	}
	season := strings.ToLower(args[1])
	if !mal.ValidEnum(season, mal.SeasonNames) {
		return fmt.Errorf("invalid season %q (allowed: %s)", args[1], strings.Join(mal.SeasonNames, ", "))
	}
	sort, _ := cmd.Flags().GetString("sort")
	sort = strings.ToLower(sort)
	if sort != "" && !mal.ValidEnum(sort, mal.SeasonalSorts) {
		return fmt.Errorf("invalid --sort %q (allowed: %s)", sort, strings.Join(mal.SeasonalSorts, ", "))
	}

	base, err := animeFilterFromFlags(cmd)
	if err != nil {
		return err
	}
	currentOnly, _ := cmd.Flags().GetBool("current-only")
	filter := &query.SeasonalAnimeFilter{
		AnimeFilter:       *base,
		CurrentSeasonOnly: currentOnly,
		Year:              year,
		Season:            season,
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

	fetch := func(ctx context.Context, limit, offset int) ([]mal.Anime, bool, error) {
		return catalog.SeasonalAnime(ctx, year, season, sort, limit, offset)
	}
	items, meta, err := query.FetchFiltered(cmd.Context(), fetch, filter, limit, offset)
	if err != nil {
		return fmt.Errorf("seasonal listing failed: %w", err)
	}
	printAnimeListing(items, meta)
	return nil
}
