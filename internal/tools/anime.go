package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vmunix/anibridge/internal/mal"
	"github.com/vmunix/anibridge/internal/query"
	"github.com/vmunix/anibridge/internal/render"
)

// animeFilterArgs is the attribute filter block shared by the anime
// list tools.
type animeFilterArgs struct {
	Genres        []string `json:"genres"`
	GenresExclude []string `json:"genres_exclude"`
	GenreMode     string   `json:"genre_mode"`
	MinScore      *float64 `json:"min_score"`
	MinMembers    *int     `json:"min_members"`
	MediaType     []string `json:"media_type"`
	Status        string   `json:"status"`
	Source        []string `json:"source"`
}

// filter validates the arguments and builds the typed filter.
func (a *animeFilterArgs) filter() (*query.AnimeFilter, error) {
	if err := validateGenres(a.Genres); err != nil {
		return nil, err
	}
	if err := validateGenres(a.GenresExclude); err != nil {
		return nil, err
	}
	mode := strings.ToLower(a.GenreMode)
	if mode != "" && mode != string(query.GenreModeOr) && mode != string(query.GenreModeAnd) {
		return nil, fmt.Errorf("invalid genre_mode %q (allowed: or, and)", a.GenreMode)
	}
	if a.MinScore != nil && (*a.MinScore < 0 || *a.MinScore > 10) {
		return nil, fmt.Errorf("min_score must be between 0 and 10")
	}
	if a.MinMembers != nil && *a.MinMembers < 0 {
		return nil, fmt.Errorf("min_members must not be negative")
	}
	mediaTypes := lowerAll(a.MediaType)
	if err := validateEnumSet("media_type", mediaTypes, mal.AnimeMediaTypes); err != nil {
		return nil, err
	}
	status := strings.ToLower(a.Status)
	if err := validateEnum("status", status, mal.AnimeStatuses); err != nil {
		return nil, err
	}
	sources := lowerAll(a.Source)
	if err := validateEnumSet("source", sources, mal.Sources); err != nil {
		return nil, err
	}

	f := &query.AnimeFilter{
		Criteria: query.Criteria{
			GenresInclude: a.Genres,
			GenresExclude: a.GenresExclude,
			GenreMode:     query.GenreMode(mode),
			MinScore:      a.MinScore,
			MinMembers:    a.MinMembers,
			MediaTypes:    mediaTypes,
		},
		Sources: sources,
	}
	if status != "" {
		f.Status = &status
	}
	return f, nil
}

// animeFilterProps is the schema block for the shared filter arguments.
func animeFilterProps() map[string]any {
	return map[string]any{
		"genres": map[string]any{
			"type": "array", "items": map[string]any{"type": "string"},
			"description": "Keep only results tagged with these genres (use list_genres for valid names)",
		},
		"genres_exclude": map[string]any{
			"type": "array", "items": map[string]any{"type": "string"},
			"description": "Drop results tagged with any of these genres",
		},
		"genre_mode": map[string]any{
			"type": "string", "enum": []string{"or", "and"},
			"description": "How multiple include genres combine (default or)",
		},
		"min_score": map[string]any{
			"type": "number", "minimum": 0, "maximum": 10,
			"description": "Minimum community score (0-10)",
		},
		"min_members": map[string]any{
			"type": "integer", "minimum": 0,
			"description": "Minimum number of list members",
		},
		"media_type": map[string]any{
			"type": "array", "items": map[string]any{"type": "string", "enum": mal.AnimeMediaTypes},
			"description": "Allowed media types",
		},
		"status": map[string]any{
			"type": "string", "enum": mal.AnimeStatuses,
			"description": "Required airing status",
		},
		"source": map[string]any{
			"type": "array", "items": map[string]any{"type": "string", "enum": mal.Sources},
			"description": "Allowed source material",
		},
	}
}

// pageProps is the schema block for pagination arguments.
func pageProps() map[string]any {
	return map[string]any{
		"limit": map[string]any{
			"type": "integer", "minimum": 1, "maximum": 100,
			"description": "Results to return (default 10, max 100)",
		},
		"offset": map[string]any{
			"type": "integer", "minimum": 0,
			"description": "Catalog offset to start from; pass the offset a previous result reported to continue",
		},
	}
}

func (r *Registry) registerSearchAnime(srv *mcp.Server) {
	type args struct {
		Query  string `json:"query"`
		Limit  int    `json:"limit"`
		Offset int    `json:"offset"`
		animeFilterArgs
	}

	tool := &mcp.Tool{
		Name:        "search_anime",
		Description: "Search anime by title keyword, with optional attribute filters applied to the results.",
		InputSchema: inputSchema(
			withProps(animeFilterProps(), withProps(pageProps(), map[string]any{
				"query": map[string]any{"type": "string", "description": "Title keyword to search for"},
			})),
			[]string{"query"},
		),
	}

	r.register(srv, tool, func(ctx context.Context, raw json.RawMessage) (string, error) {
		var a args
		if err := json.Unmarshal(raw, &a); err != nil {
			return "", fmt.Errorf("invalid arguments: %w", err)
		}
		if strings.TrimSpace(a.Query) == "" {
			return "", fmt.Errorf("query is required")
		}
		filter, err := a.filter()
		if err != nil {
			return "", err
		}
		limit, offset := clampPage(a.Limit, a.Offset)

		fetch := func(ctx context.Context, limit, offset int) ([]mal.Anime, bool, error) {
			return r.catalog.SearchAnime(ctx, a.Query, limit, offset)
		}
		items, meta, err := query.FetchFiltered(ctx, fetch, filter, limit, offset)
		if err != nil {
			return "", err
		}
		return render.AnimeList(items, meta), nil
	})
}

func (r *Registry) registerAnimeRanking(srv *mcp.Server) {
	type args struct {
		RankingType string `json:"ranking_type"`
		Limit       int    `json:"limit"`
		Offset      int    `json:"offset"`
		animeFilterArgs
	}

	tool := &mcp.Tool{
		Name:        "get_anime_ranking",
		Description: "Fetch an anime ranking board (top rated, most popular, airing, and so on), with optional attribute filters.",
		InputSchema: inputSchema(
			withProps(animeFilterProps(), withProps(pageProps(), map[string]any{
				"ranking_type": map[string]any{
					"type": "string", "enum": mal.AnimeRankingTypes,
					"description": "Ranking board to read (default all)",
				},
			})),
			nil,
		),
	}

	r.register(srv, tool, func(ctx context.Context, raw json.RawMessage) (string, error) {
		var a args
		if err := json.Unmarshal(raw, &a); err != nil {
			return "", fmt.Errorf("invalid arguments: %w", err)
		}
		rankingType := strings.ToLower(a.RankingType)
		if rankingType == "" {
			rankingType = "all"
		}
		if err := validateEnum("ranking_type", rankingType, mal.AnimeRankingTypes); err != nil {
			return "", err
		}
		filter, err := a.filter()
		if err != nil {
			return "", err
		}
		limit, offset := clampPage(a.Limit, a.Offset)

		fetch := func(ctx context.Context, limit, offset int) ([]mal.Anime, bool, error) {
			return r.catalog.AnimeRanking(ctx, rankingType, limit, offset)
		}
		items, meta, err := query.FetchFiltered(ctx, fetch, filter, limit, offset)
		if err != nil {
			return "", err
		}
		return render.AnimeList(items, meta), nil
	})
}

func (r *Registry) registerSeasonalAnime(srv *mcp.Server) {
	type args struct {
		Year              int    `json:"year"`
		Season            string `json:"season"`
		Sort              string `json:"sort"`
		Limit             int    `json:"limit"`
		Offset            int    `json:"offset"`
		CurrentSeasonOnly bool   `json:"current_season_only"`
		animeFilterArgs
	}

	tool := &mcp.Tool{
		Name:        "get_seasonal_anime",
		Description: "List anime from a broadcast season. The catalog includes long-running carryover shows; set current_season_only to keep premieres only.",
		InputSchema: inputSchema(
			withProps(animeFilterProps(), withProps(pageProps(), map[string]any{
				"year": map[string]any{"type": "integer", "description": "Season year, e.g. 2026"},
				"season": map[string]any{
					"type": "string", "enum": mal.SeasonNames,
					"description": "Season name",
				},
				"sort": map[string]any{
					"type": "string", "enum": mal.SeasonalSorts,
					"description": "Sort order (catalog default when omitted)",
				},
				"current_season_only": map[string]any{
					"type":        "boolean",
					"description": "Keep only shows that premiered in the queried season",
				},
			})),
			[]string{"year", "season"},
		),
	}

	r.register(srv, tool, func(ctx context.Context, raw json.RawMessage) (string, error) {
		var a args
		if err := json.Unmarshal(raw, &a); err != nil {
			return "", fmt.Errorf("invalid arguments: %w", err)
		}
		if a.Year < 1900 {
			return "", fmt.Errorf("year must be a four-digit year")
		}
		season := strings.ToLower(a.Season)
		if season == "" {
			return "", fmt.Errorf("season is required")
		}
		if err := validateEnum("season", season, mal.SeasonNames); err != nil {
			return "", err
		}
		sort := strings.ToLower(a.Sort)
		if err := validateEnum("sort", sort, mal.SeasonalSorts); err != nil {
			return "", err
		}
		base, err := a.filter()
		if err != nil {
			return "", err
		}
		filter := &query.SeasonalAnimeFilter{
			AnimeFilter:       *base,
			CurrentSeasonOnly: a.CurrentSeasonOnly,
			Year:              a.Year,
			Season:            season,
		}
		limit, offset := clampPage(a.Limit, a.Offset)

		fetch := func(ctx context.Context, limit, offset int) ([]mal.Anime, bool, error) {
			return r.catalog.SeasonalAnime(ctx, a.Year, season, sort, limit, offset)
		}
		items, meta, err := query.FetchFiltered(ctx, fetch, filter, limit, offset)
		if err != nil {
			return "", err
		}
		return render.AnimeList(items, meta), nil
	})
}

func (r *Registry) registerAnimeDetails(srv *mcp.Server) {
	type args struct {
		ID int `json:"id"`
	}

	tool := &mcp.Tool{
		Name:        "get_anime_details",
		Description: "Fetch one anime by its catalog ID, with full details.",
		InputSchema: inputSchema(map[string]any{
			"id": map[string]any{"type": "integer", "description": "Catalog ID of the anime"},
		}, []string{"id"}),
	}

	r.register(srv, tool, func(ctx context.Context, raw json.RawMessage) (string, error) {
		var a args
		if err := json.Unmarshal(raw, &a); err != nil {
			return "", fmt.Errorf("invalid arguments: %w", err)
		}
		if a.ID <= 0 {
			return "", fmt.Errorf("id is required")
		}
		anime, err := r.catalog.GetAnime(ctx, a.ID)
		if err != nil {
			return "", err
		}
		return render.AnimeDetails(anime), nil
	})
}
