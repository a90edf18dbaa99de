// Package genres holds the catalog's tag vocabulary and helpers for
// validating and comparing user-supplied genre names.
package genres

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a
// "did you mean" suggestion.
const suggestThreshold = 0.80

// The catalog groups tags into genres, themes, and demographics. All three
// groups are valid values for genre filters.
var (
	genreNames = []string{
		"Action", "Adventure", "Avant Garde", "Award Winning", "Boys Love",
		"Comedy", "Drama", "Ecchi", "Erotica", "Fantasy", "Girls Love",
		"Gourmet", "Hentai", "Horror", "Mystery", "Romance", "Sci-Fi",
		"Slice of Life", "Sports", "Supernatural", "Suspense",
	}

	themeNames = []string{
		"Adult Cast", "Anthropomorphic", "CGDCT", "Childcare",
		"Combat Sports", "Crossdressing", "Delinquents", "Detective",
		"Educational", "Gag Humor", "Gore", "Harem", "High Stakes Game",
		"Historical", "Idols (Female)", "Idols (Male)", "Isekai",
		"Iyashikei", "Love Polygon", "Magical Sex Shift", "Mahou Shoujo",
		"Martial Arts", "Mecha", "Medical", "Military", "Music",
		"Mythology", "Organized Crime", "Otaku Culture", "Parody",
		"Performing Arts", "Pets", "Psychological", "Racing",
		"Reincarnation", "Reverse Harem", "Romantic Subtext", "Samurai",
		"School", "Showbiz", "Space", "Strategy Game", "Super Power",
		"Survival", "Team Sports", "Time Travel", "Vampire", "Video Game",
		"Visual Arts", "Workplace",
	}

	demographicNames = []string{
		"Josei", "Kids", "Seinen", "Shoujo", "Shounen",
	}
)

var canonical = buildCanonical()

func buildCanonical() map[string]string {
	idx := make(map[string]string, len(genreNames)+len(themeNames)+len(demographicNames))
	for _, group := range [][]string{genreNames, themeNames, demographicNames} {
		for _, name := range group {
			idx[Normalize(name)] = name
		}
	}
	return idx
}

// Canon returns the full vocabulary in display order: genres, themes,
// then demographics.
func Canon() []string {
	out := make([]string, 0, len(genreNames)+len(themeNames)+len(demographicNames))
	out = append(out, genreNames...)
	out = append(out, themeNames...)
	out = append(out, demographicNames...)
	return out
}

// Normalize lowercases s, strips accents, and collapses whitespace, so
// "Sci-fi", "SCI-FI" and "Sci-Fi" compare equal.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// Canonical resolves name to its canonical spelling, case and accent
// insensitively.
func Canonical(name string) (string, bool) {
	c, ok := canonical[Normalize(name)]
	return c, ok
}

// Valid reports whether name is in the vocabulary.
func Valid(name string) bool {
	_, ok := Canonical(name)
	return ok
}

// Suggest returns the closest canonical name for a misspelled input.
// Jaro-Winkler favors shared prefixes, which suits tag typos. Returns
// false when nothing clears the similarity threshold.
func Suggest(name string) (string, bool) {
	normalized := Normalize(name)

	best := ""
	bestScore := 0.0
	for canon := range canonical {
		score := float64(edlib.JaroWinklerSimilarity(normalized, canon))
		if score > bestScore {
			best = canon
			bestScore = score
		}
	}

	if bestScore < suggestThreshold {
		return "", false
	}
	return canonical[best], true
}
