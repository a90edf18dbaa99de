package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/anibridge/internal/genres"
	"github.com/vmunix/anibridge/internal/mal"
	"github.com/vmunix/anibridge/internal/query"
)

// addFilterFlags registers the attribute filter flags shared by the
// list commands. The source flag only applies to anime; commands
// querying manga reject it at run time.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("genre", nil, "Keep only results tagged with this genre (repeatable)")
	cmd.Flags().StringSlice("exclude-genre", nil, "Drop results tagged with this genre (repeatable)")
	cmd.Flags().String("genre-mode", "or", "How multiple --genre values combine: or, and")
	cmd.Flags().Float64("min-score", 0, "Minimum community score (0-10)")
	cmd.Flags().Int("min-members", 0, "Minimum number of list members")
	cmd.Flags().StringSlice("media-type", nil, "Allowed media types (repeatable)")
	cmd.Flags().String("status", "", "Required airing or publication status")
	cmd.Flags().StringSlice("source", nil, "Allowed source material (repeatable, anime only)")
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 10, "Results to return (1-100)")
	cmd.Flags().Int("offset", 0, "Catalog offset to start from")
}

// criteriaFromFlags validates the shared filter flags against the
// vocabulary of the queried record kind and builds the criteria.
// Threshold flags become pointers only when set on the command line.
func criteriaFromFlags(cmd *cobra.Command, mediaTypes, statuses []string) (query.Criteria, error) {
	var c query.Criteria

	c.GenresInclude, _ = cmd.Flags().GetStringSlice("genre")
	c.GenresExclude, _ = cmd.Flags().GetStringSlice("exclude-genre")
	if err := validGenres(c.GenresInclude); err != nil {
		return query.Criteria{}, err
	}
	if err := validGenres(c.GenresExclude); err != nil {
		return query.Criteria{}, err
	}

	mode, _ := cmd.Flags().GetString("genre-mode")
	mode = strings.ToLower(mode)
	if mode != string(query.GenreModeOr) && mode != string(query.GenreModeAnd) {
		return query.Criteria{}, fmt.Errorf("invalid --genre-mode %q (allowed: or, and)", mode)
	}
	c.GenreMode = query.GenreMode(mode)

	if cmd.Flags().Changed("min-score") {
		v, _ := cmd.Flags().GetFloat64("min-score")
		if v < 0 || v > 10 {
			return query.Criteria{}, fmt.Errorf("--min-score must be between 0 and 10")
		}
		c.MinScore = &v
	}
	if cmd.Flags().Changed("min-members") {
		v, _ := cmd.Flags().GetInt("min-members")
		if v < 0 {
			return query.Criteria{}, fmt.Errorf("--min-members must not be negative")
		}
		c.MinMembers = &v
	}

	types, _ := cmd.Flags().GetStringSlice("media-type")
	for i, v := range types {
		types[i] = strings.ToLower(v)
		if !mal.ValidEnum(types[i], mediaTypes) {
			return query.Criteria{}, fmt.Errorf("invalid --media-type %q (allowed: %s)", v, strings.Join(mediaTypes, ", "))
		}
	}
	c.MediaTypes = types

	if status, _ := cmd.Flags().GetString("status"); status != "" {
		s := strings.ToLower(status)
		if !mal.ValidEnum(s, statuses) {
			return query.Criteria{}, fmt.Errorf("invalid --status %q (allowed: %s)", status, strings.Join(statuses, ", "))
		}
		c.Status = &s
	}

	return c, nil
}

func animeFilterFromFlags(cmd *cobra.Command) (*query.AnimeFilter, error) {
	c, err := criteriaFromFlags(cmd, mal.AnimeMediaTypes, mal.AnimeStatuses)
	if err != nil {
		return nil, err
	}
	sources, _ := cmd.Flags().GetStringSlice("source")
	for i, v := range sources {
		sources[i] = strings.ToLower(v)
		if !mal.ValidEnum(sources[i], mal.Sources) {
			return nil, fmt.Errorf("invalid --source %q (allowed: %s)", v, strings.Join(mal.Sources, ", "))
		}
	}
	return &query.AnimeFilter{Criteria: c, Sources: sources}, nil
}

func mangaFilterFromFlags(cmd *cobra.Command) (*query.MangaFilter, error) {
	if sources, _ := cmd.Flags().GetStringSlice("source"); len(sources) > 0 {
		return nil, fmt.Errorf("--source only filters anime")
	}
	c, err := criteriaFromFlags(cmd, mal.MangaMediaTypes, mal.MangaStatuses)
	if err != nil {
		return nil, err
	}
	return &query.MangaFilter{Criteria: c}, nil
}

func pageFromFlags(cmd *cobra.Command) (limit, offset int, err error) {
	limit, _ = cmd.Flags().GetInt("limit")
	if limit < 1 || limit > 100 {
		return 0, 0, fmt.Errorf("--limit must be between 1 and 100")
	}
	offset, _ = cmd.Flags().GetInt("offset")
	if offset < 0 {
		return 0, 0, fmt.Errorf("--offset must not be negative")
	}
	return limit, offset, nil
}

// validGenres checks every name against the vocabulary, suggesting the
// closest canonical name for a misspelling.
func validGenres(names []string) error {
	for _, name := range names {
		if genres.Valid(name) {
			continue
		}
		if suggestion, ok := genres.Suggest(name); ok {
			return fmt.Errorf("unknown genre %q (did you mean %q?)", name, suggestion)
		}
		return fmt.Errorf("unknown genre %q (run 'anibridge genres' for the vocabulary)", name)
	}
	return nil
}
