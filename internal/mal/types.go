// Package mal provides a client for the MyAnimeList API v2.
package mal

import "strconv"

// Anime represents a MyAnimeList anime record.
type Anime struct {
	ID                     int        `json:"id"`
	Title                  string     `json:"title"`
	MainPicture            *Picture   `json:"main_picture,omitempty"`
	AlternativeTitles      *AltTitles `json:"alternative_titles,omitempty"`
	StartDate              string     `json:"start_date,omitempty"` // "2013-04-07"
	EndDate                string     `json:"end_date,omitempty"`
	Synopsis               string     `json:"synopsis,omitempty"`
	Mean                   float64    `json:"mean,omitempty"` // 0 = not yet scored
	Rank                   int        `json:"rank,omitempty"`
	Popularity             int        `json:"popularity,omitempty"`
	NumListUsers           int        `json:"num_list_users,omitempty"`
	NumScoringUsers        int        `json:"num_scoring_users,omitempty"`
	NSFW                   string     `json:"nsfw,omitempty"`
	Genres                 []Genre    `json:"genres,omitempty"`
	MediaType              string     `json:"media_type,omitempty"`
	Status                 string     `json:"status,omitempty"`
	NumEpisodes            int        `json:"num_episodes,omitempty"`
	StartSeason            *Season    `json:"start_season,omitempty"`
	Source                 string     `json:"source,omitempty"`
	AverageEpisodeDuration int        `json:"average_episode_duration,omitempty"` // seconds
	Rating                 string     `json:"rating,omitempty"`
	Studios                []Studio   `json:"studios,omitempty"`

	// RankPosition is the position annotation from ranking endpoints.
	// It lives alongside the node in the response envelope, not inside it.
	RankPosition int `json:"-"`
}

// Manga represents a MyAnimeList manga record.
type Manga struct {
	ID                int        `json:"id"`
	Title             string     `json:"title"`
	MainPicture       *Picture   `json:"main_picture,omitempty"`
	AlternativeTitles *AltTitles `json:"alternative_titles,omitempty"`
	StartDate         string     `json:"start_date,omitempty"`
	EndDate           string     `json:"end_date,omitempty"`
	Synopsis          string     `json:"synopsis,omitempty"`
	Mean              float64    `json:"mean,omitempty"` // 0 = not yet scored
	Rank              int        `json:"rank,omitempty"`
	Popularity        int        `json:"popularity,omitempty"`
	NumListUsers      int        `json:"num_list_users,omitempty"`
	NumScoringUsers   int        `json:"num_scoring_users,omitempty"`
	NSFW              string     `json:"nsfw,omitempty"`
	Genres            []Genre    `json:"genres,omitempty"`
	MediaType         string     `json:"media_type,omitempty"`
	Status            string     `json:"status,omitempty"`
	NumVolumes        int        `json:"num_volumes,omitempty"`
	NumChapters       int        `json:"num_chapters,omitempty"`
	Authors           []Author   `json:"authors,omitempty"`

	// RankPosition is the position annotation from ranking endpoints.
	RankPosition int `json:"-"`
}

// Genre is a genre, theme, or demographic tag.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Picture holds cover image URLs.
type Picture struct {
	Medium string `json:"medium,omitempty"`
	Large  string `json:"large,omitempty"`
}

// AltTitles holds alternative titles for a record.
type AltTitles struct {
	Synonyms []string `json:"synonyms,omitempty"`
	English  string   `json:"en,omitempty"`
	Japanese string   `json:"ja,omitempty"`
}

// Season is a broadcast season (year + quarter name).
type Season struct {
	Year int    `json:"year"`
	Name string `json:"season"` // winter, spring, summer, fall
}

// Studio is an animation studio credit.
type Studio struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Author is a manga author credit with their role.
type Author struct {
	Node PersonName `json:"node"`
	Role string     `json:"role,omitempty"`
}

// PersonName holds an author's name parts.
type PersonName struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// GenreNames returns the genre names in catalog order.
func (a *Anime) GenreNames() []string {
	names := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		names = append(names, g.Name)
	}
	return names
}

// Year extracts the year from StartDate.
func (a *Anime) Year() int {
	if len(a.StartDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(a.StartDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// GenreNames returns the genre names in catalog order.
func (m *Manga) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}

// AuthorNames returns "First Last (Role)" strings for each author credit.
func (m *Manga) AuthorNames() []string {
	names := make([]string, 0, len(m.Authors))
	for _, a := range m.Authors {
		name := a.Node.FirstName
		if a.Node.LastName != "" {
			if name != "" {
				name += " "
			}
			name += a.Node.LastName
		}
		if a.Role != "" {
			name += " (" + a.Role + ")"
		}
		names = append(names, name)
	}
	return names
}

// animePage is the paged envelope returned by anime list endpoints.
type animePage struct {
	Data   []animeEntry `json:"data"`
	Paging paging       `json:"paging"`
}

// animeEntry wraps a record; ranking endpoints annotate it with a position.
type animeEntry struct {
	Node    Anime     `json:"node"`
	Ranking *rankInfo `json:"ranking,omitempty"`
}

// mangaPage is the paged envelope returned by manga list endpoints.
type mangaPage struct {
	Data   []mangaEntry `json:"data"`
	Paging paging       `json:"paging"`
}

type mangaEntry struct {
	Node    Manga     `json:"node"`
	Ranking *rankInfo `json:"ranking,omitempty"`
}

type rankInfo struct {
	Rank int `json:"rank"`
}

// paging carries MAL's continuation URLs. A non-empty Next means the
// catalog advertises at least one more page past this window.
type paging struct {
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
}
