// Package query applies client-side attribute filters to paged catalog
// windows and reconciles the catalog's pagination with the filtered view.
package query

import (
	"fmt"
	"strings"

	"github.com/vmunix/anibridge/internal/genres"
	"github.com/vmunix/anibridge/internal/mal"
)

// GenreMode selects how multiple include genres combine.
type GenreMode string

const (
	// GenreModeOr keeps records carrying at least one include genre.
	GenreModeOr GenreMode = "or"
	// GenreModeAnd keeps records carrying every include genre.
	GenreModeAnd GenreMode = "and"
)

// Filter decides which records from a fetched window are kept.
type Filter[R any] interface {
	// Active reports whether any criterion is set. An inactive filter
	// keeps every record and adds nothing to result metadata.
	Active() bool
	// Matches applies every set criterion. All must hold.
	Matches(record R) bool
	// Describe renders one line per set criterion, in a fixed order.
	Describe() []string
}

var (
	_ Filter[mal.Anime] = (*AnimeFilter)(nil)
	_ Filter[mal.Anime] = (*SeasonalAnimeFilter)(nil)
	_ Filter[mal.Manga] = (*MangaFilter)(nil)
)

// Criteria is the attribute filter shared by anime and manga queries.
// Nil and empty fields are inactive. A record missing an attribute fails
// that attribute's check, except member counts where missing reads as
// zero.
type Criteria struct {
	GenresInclude []string
	GenresExclude []string
	GenreMode     GenreMode // modifier on GenresInclude; or when empty
	MinScore      *float64  // community mean, 0-10 scale
	MinMembers    *int
	MediaTypes    []string
	Status        *string
}

// active is computed from the criterion fields themselves. GenreMode is
// a modifier, not a criterion: set alone it never activates the filter.
func (c *Criteria) active() bool {
	return len(c.GenresInclude) > 0 ||
		len(c.GenresExclude) > 0 ||
		c.MinScore != nil ||
		c.MinMembers != nil ||
		len(c.MediaTypes) > 0 ||
		c.Status != nil
}

func (c *Criteria) matches(genreNames []string, mean float64, members int, mediaType, status string) bool {
	if len(c.GenresInclude) > 0 {
		if c.GenreMode == GenreModeAnd {
			if !hasAllGenres(genreNames, c.GenresInclude) {
				return false
			}
		} else if !hasAnyGenre(genreNames, c.GenresInclude) {
			return false
		}
	}
	if len(c.GenresExclude) > 0 && hasAnyGenre(genreNames, c.GenresExclude) {
		return false
	}
	// A zero mean means the catalog has not scored the record yet; an
	// unscored record fails any score threshold.
	if c.MinScore != nil && (mean == 0 || mean < *c.MinScore) {
		return false
	}
	if c.MinMembers != nil && members < *c.MinMembers {
		return false
	}
	if len(c.MediaTypes) > 0 && !containsFold(c.MediaTypes, mediaType) {
		return false
	}
	if c.Status != nil && !strings.EqualFold(status, *c.Status) {
		return false
	}
	return true
}

// describe renders the set criteria in canonical order: include genres,
// exclude genres, score, members, media type, status. Variants append
// their own lines after these.
func (c *Criteria) describe() []string {
	var lines []string
	if len(c.GenresInclude) > 0 {
		mode := "OR"
		if c.GenreMode == GenreModeAnd {
			mode = "AND"
		}
		lines = append(lines, fmt.Sprintf("Genres (%s): %s", mode, strings.Join(c.GenresInclude, ", ")))
	}
	if len(c.GenresExclude) > 0 {
		lines = append(lines, "Exclude genres: "+strings.Join(c.GenresExclude, ", "))
	}
	if c.MinScore != nil {
		lines = append(lines, fmt.Sprintf("Min score: %g", *c.MinScore))
	}
	if c.MinMembers != nil {
		lines = append(lines, fmt.Sprintf("Min members: %d", *c.MinMembers))
	}
	if len(c.MediaTypes) > 0 {
		lines = append(lines, "Media type: "+strings.Join(c.MediaTypes, ", "))
	}
	if c.Status != nil {
		lines = append(lines, "Status: "+*c.Status)
	}
	return lines
}

// AnimeFilter filters anime records.
type AnimeFilter struct {
	Criteria
	Sources []string // source material, anime only
}

func (f *AnimeFilter) Active() bool {
	return f.Criteria.active() || len(f.Sources) > 0
}

func (f *AnimeFilter) Matches(a mal.Anime) bool {
	if !f.Criteria.matches(a.GenreNames(), a.Mean, a.NumListUsers, a.MediaType, a.Status) {
		return false
	}
	if len(f.Sources) > 0 && !containsFold(f.Sources, a.Source) {
		return false
	}
	return true
}

func (f *AnimeFilter) Describe() []string {
	lines := f.Criteria.describe()
	if len(f.Sources) > 0 {
		lines = append(lines, "Source: "+strings.Join(f.Sources, ", "))
	}
	return lines
}

// SeasonalAnimeFilter filters records from a seasonal listing. Year and
// Season carry the queried season so CurrentSeasonOnly can drop
// carryover entries: long-runners and reruns the catalog lists alongside
// that season's premieres.
type SeasonalAnimeFilter struct {
	AnimeFilter
	CurrentSeasonOnly bool
	Year              int
	Season            string
}

func (f *SeasonalAnimeFilter) Active() bool {
	return f.AnimeFilter.Active() || f.CurrentSeasonOnly
}

func (f *SeasonalAnimeFilter) Matches(a mal.Anime) bool {
	if !f.AnimeFilter.Matches(a) {
		return false
	}
	if f.CurrentSeasonOnly {
		if a.StartSeason == nil {
			return false
		}
		if a.StartSeason.Year != f.Year || !strings.EqualFold(a.StartSeason.Name, f.Season) {
			return false
		}
	}
	return true
}

func (f *SeasonalAnimeFilter) Describe() []string {
	lines := f.AnimeFilter.Describe()
	if f.CurrentSeasonOnly {
		lines = append(lines, "Current season only")
	}
	return lines
}

// MangaFilter filters manga records.
type MangaFilter struct {
	Criteria
}

func (f *MangaFilter) Active() bool {
	return f.Criteria.active()
}

func (f *MangaFilter) Matches(m mal.Manga) bool {
	return f.Criteria.matches(m.GenreNames(), m.Mean, m.NumListUsers, m.MediaType, m.Status)
}

func (f *MangaFilter) Describe() []string {
	return f.Criteria.describe()
}

// hasAnyGenre reports whether any wanted genre appears in have.
// Comparison is case and accent insensitive.
func hasAnyGenre(have, want []string) bool {
	for _, w := range want {
		nw := genres.Normalize(w)
		for _, h := range have {
			if genres.Normalize(h) == nw {
				return true
			}
		}
	}
	return false
}

// hasAllGenres reports whether every wanted genre appears in have.
func hasAllGenres(have, want []string) bool {
	for _, w := range want {
		nw := genres.Normalize(w)
		found := false
		for _, h := range have {
			if genres.Normalize(h) == nw {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// containsFold reports whether s is in set, case insensitively. An empty
// s never matches, so records missing the attribute fail the check.
func containsFold(set []string, s string) bool {
	if s == "" {
		return false
	}
	for _, v := range set {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
