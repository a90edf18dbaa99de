package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/anibridge/internal/mal"
	"github.com/vmunix/anibridge/internal/query"
)

func TestAnimeList_Unfiltered(t *testing.T) {
	items := []mal.Anime{
		{
			ID: 1, Title: "Cowboy Bebop", Mean: 8.75, NumListUsers: 1900000,
			MediaType: "tv", Status: "finished_airing", NumEpisodes: 26,
			Genres: []mal.Genre{{Name: "Action"}, {Name: "Sci-Fi"}},
		},
		{ID: 2, Title: "Trigun"},
	}
	meta := query.Meta{TotalScanned: 2, TotalMatched: 2, PagesScanned: 1}

	out := AnimeList(items, meta)

	assert.NotContains(t, out, "Active filters")
	assert.Contains(t, out, "Found 2 results:")
	assert.Contains(t, out, "1. Cowboy Bebop")
	assert.Contains(t, out, "Score: 8.75 | Members: 1900000")
	assert.Contains(t, out, "tv | finished_airing | 26 eps")
	assert.Contains(t, out, "Genres: Action, Sci-Fi")
	assert.Contains(t, out, "2. Trigun")
	assert.NotContains(t, out, "continue from offset")
}

func TestAnimeList_FilteredWithMore(t *testing.T) {
	items := []mal.Anime{{ID: 1, Title: "Monster", Mean: 8.88}}
	meta := query.Meta{
		TotalScanned:  100,
		TotalMatched:  12,
		PagesScanned:  1,
		ActiveFilters: []string{"Min score: 8", "Status: finished_airing"},
		HasMore:       true,
		NextOffset:    100,
	}

	out := AnimeList(items, meta)

	assert.Contains(t, out, "Active filters:\n  - Min score: 8\n  - Status: finished_airing\n")
	assert.Contains(t, out, "Showing 1 of 12 matches (100 scanned):")
	assert.Contains(t, out, "More results available; continue from offset 100.")
}

func TestAnimeList_RankAnnotations(t *testing.T) {
	items := []mal.Anime{
		{ID: 5114, Title: "Fullmetal Alchemist: Brotherhood", RankPosition: 1},
		{ID: 9253, Title: "Steins;Gate", RankPosition: 2},
	}
	meta := query.Meta{TotalScanned: 2, TotalMatched: 2, PagesScanned: 1}

	out := AnimeList(items, meta)

	assert.Contains(t, out, "#1 Fullmetal Alchemist: Brotherhood")
	assert.Contains(t, out, "#2 Steins;Gate")
	assert.NotContains(t, out, "1. Fullmetal")
}

func TestAnimeList_Empty(t *testing.T) {
	out := AnimeList(nil, query.Meta{TotalScanned: 100, ActiveFilters: []string{"Min score: 9.9"}})
	assert.Contains(t, out, "No results matched the filters (100 scanned).")

	out = AnimeList(nil, query.Meta{})
	assert.Contains(t, out, "No results found.")
}

func TestAnimeList_SynopsisTruncated(t *testing.T) {
	items := []mal.Anime{{ID: 1, Title: "Long", Synopsis: strings.Repeat("a", 500)}}
	out := AnimeList(items, query.Meta{TotalScanned: 1, TotalMatched: 1, PagesScanned: 1})

	assert.Contains(t, out, "...")
	assert.NotContains(t, out, strings.Repeat("a", 300))
}

func TestMangaList(t *testing.T) {
	items := []mal.Manga{
		{
			ID: 2, Title: "Berserk", Mean: 9.47, NumListUsers: 700000,
			MediaType: "manga", Status: "currently_publishing", NumChapters: 380,
			Genres: []mal.Genre{{Name: "Action"}, {Name: "Horror"}},
		},
	}
	meta := query.Meta{
		TotalScanned:  100,
		TotalMatched:  1,
		PagesScanned:  1,
		ActiveFilters: []string{"Genres (OR): Action"},
	}

	out := MangaList(items, meta)

	assert.Contains(t, out, "Showing 1 of 1 matches (100 scanned):")
	assert.Contains(t, out, "1. Berserk")
	assert.Contains(t, out, "manga | currently_publishing | 380 ch")
}

func TestAnimeDetails(t *testing.T) {
	a := &mal.Anime{
		ID:    52991,
		Title: "Sousou no Frieren",
		AlternativeTitles: &mal.AltTitles{
			English:  "Frieren: Beyond Journey's End",
			Japanese: "葬送のフリーレン",
		},
		StartDate:              "2023-09-29",
		EndDate:                "2024-03-22",
		Synopsis:               "The adventure is over but life goes on.",
		Mean:                   9.3,
		Rank:                   1,
		Popularity:             150,
		NumListUsers:           1000000,
		MediaType:              "tv",
		Status:                 "finished_airing",
		NumEpisodes:            28,
		StartSeason:            &mal.Season{Year: 2023, Name: "fall"},
		Source:                 "manga",
		AverageEpisodeDuration: 1440,
		Rating:                 "pg_13",
		Studios:                []mal.Studio{{Name: "Madhouse"}},
		Genres:                 []mal.Genre{{Name: "Adventure"}, {Name: "Fantasy"}},
	}

	out := AnimeDetails(a)

	assert.Contains(t, out, "Sousou no Frieren (2023)")
	assert.Contains(t, out, "English: Frieren: Beyond Journey's End")
	assert.Contains(t, out, "Score: 9.30 | Rank: #1 | Popularity: #150 | Members: 1000000")
	assert.Contains(t, out, "Type: tv | Episodes: 28 | Duration: 24m")
	assert.Contains(t, out, "Aired: 2023-09-29 to 2024-03-22")
	assert.Contains(t, out, "Premiered: fall 2023")
	assert.Contains(t, out, "Source: manga")
	assert.Contains(t, out, "Studios: Madhouse")
	assert.Contains(t, out, "The adventure is over but life goes on.")
}

func TestMangaDetails(t *testing.T) {
	m := &mal.Manga{
		ID:          2,
		Title:       "Berserk",
		StartDate:   "1989-08-25",
		Mean:        9.47,
		MediaType:   "manga",
		Status:      "currently_publishing",
		NumChapters: 380,
		Authors: []mal.Author{
			{Node: mal.PersonName{FirstName: "Kentarou", LastName: "Miura"}, Role: "Story & Art"},
		},
		Genres: []mal.Genre{{Name: "Action"}},
	}

	out := MangaDetails(m)

	assert.Contains(t, out, "Berserk (1989)")
	assert.Contains(t, out, "Type: manga | Chapters: 380")
	assert.Contains(t, out, "Published: 1989-08-25")
	assert.Contains(t, out, "Authors: Kentarou Miura (Story & Art)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
	// Rune-aware: multibyte input cuts on rune boundaries.
	assert.Equal(t, "日本語...", truncate("日本語のテキスト", 3))
}
