package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vmunix/anibridge/internal/genres"
	"github.com/vmunix/anibridge/internal/mal"
	"github.com/vmunix/anibridge/internal/query"
	"github.com/vmunix/anibridge/internal/render"
)

// mangaFilterArgs mirrors animeFilterArgs minus the source filter,
// which the catalog only tracks for anime.
type mangaFilterArgs struct {
	Genres        []string `json:"genres"`
	GenresExclude []string `json:"genres_exclude"`
	GenreMode     string   `json:"genre_mode"`
	MinScore      *float64 `json:"min_score"`
	MinMembers    *int     `json:"min_members"`
	MediaType     []string `json:"media_type"`
	Status        string   `json:"status"`
}

func (a *mangaFilterArgs) filter() (*query.MangaFilter, error) {
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
	if err := validateEnumSet("media_type", mediaTypes, mal.MangaMediaTypes); err != nil {
		return nil, err
	}
	status := strings.ToLower(a.Status)
	if err := validateEnum("status", status, mal.MangaStatuses); err != nil {
		return nil, err
	}

	f := &query.MangaFilter{
		Criteria: query.Criteria{
			GenresInclude: a.Genres,
			GenresExclude: a.GenresExclude,
			GenreMode:     query.GenreMode(mode),
			MinScore:      a.MinScore,
			MinMembers:    a.MinMembers,
			MediaTypes:    mediaTypes,
		},
	}
	if status != "" {
		f.Status = &status
	}
	return f, nil
}

func mangaFilterProps() map[string]any {
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
			"type": "array", "items": map[string]any{"type": "string", "enum": mal.MangaMediaTypes},
			"description": "Allowed media types",
		},
		"status": map[string]any{
			"type": "string", "enum": mal.MangaStatuses,
			"description": "Required publication status",
		},
	}
}

func (r *Registry) registerSearchManga(srv *mcp.Server) {
	type args struct {
		Query  string `json:"query"`
		Limit  int    `json:"limit"`
		Offset int    `json:"offset"`
		mangaFilterArgs
	}

	tool := &mcp.Tool{
		Name:        "search_manga",
		Description: "Search manga by title keyword, with optional attribute filters applied to the results.",
		InputSchema: inputSchema(
			withProps(mangaFilterProps(), withProps(pageProps(), map[string]any{
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

		fetch := func(ctx context.Context, limit, offset int) ([]mal.Manga, bool, error) {
			return r.catalog.SearchManga(ctx, a.Query, limit, offset)
		}
		items, meta, err := query.FetchFiltered(ctx, fetch, filter, limit, offset)
		if err != nil {
			return "", err
		}
		return render.MangaList(items, meta), nil
	})
}

func (r *Registry) registerMangaRanking(srv *mcp.Server) {
	type args struct {
		RankingType string `json:"ranking_type"`
		Limit       int    `json:"limit"`
		Offset      int    `json:"offset"`
		mangaFilterArgs
	}

	tool := &mcp.Tool{
		Name:        "get_manga_ranking",
		Description: "Fetch a manga ranking board (top rated, most popular, by format), with optional attribute filters.",
		InputSchema: inputSchema(
			withProps(mangaFilterProps(), withProps(pageProps(), map[string]any{
				"ranking_type": map[string]any{
					"type": "string", "enum": mal.MangaRankingTypes,
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
		if err := validateEnum("ranking_type", rankingType, mal.MangaRankingTypes); err != nil {
			return "", err
		}
		filter, err := a.filter()
		if err != nil {
			return "", err
		}
		limit, offset := clampPage(a.Limit, a.Offset)

		fetch := func(ctx context.Context, limit, offset int) ([]mal.Manga, bool, error) {
			return r.catalog.MangaRanking(ctx, rankingType, limit, offset)
		}
		items, meta, err := query.FetchFiltered(ctx, fetch, filter, limit, offset)
		if err != nil {
			return "", err
		}
		return render.MangaList(items, meta), nil
	})
}

func (r *Registry) registerMangaDetails(srv *mcp.Server) {
	type args struct {
		ID int `json:"id"`
	}

	tool := &mcp.Tool{
		Name:        "get_manga_details",
		Description: "Fetch one manga by its catalog ID, with full details.",
		InputSchema: inputSchema(map[string]any{
			"id": map[string]any{"type": "integer", "description": "Catalog ID of the manga"},
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
		manga, err := r.catalog.GetManga(ctx, a.ID)
		if err != nil {
			return "", err
		}
		return render.MangaDetails(manga), nil
	})
}

func (r *Registry) registerListGenres(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "list_genres",
		Description: "List every genre, theme, and demographic tag accepted by the genre filters.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	r.register(srv, tool, func(_ context.Context, _ json.RawMessage) (string, error) {
		return strings.Join(genres.Canon(), "\n"), nil
	})
}
