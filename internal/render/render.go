// Package render formats catalog records and query metadata as plain
// text blocks shared by tool results and CLI output.
package render

import (
	"fmt"
	"strings"

	"github.com/vmunix/anibridge/internal/mal"
	"github.com/vmunix/anibridge/internal/query"
)

// synopsisLimit caps synopsis length in list entries, in runes.
const synopsisLimit = 280

// AnimeList renders a filtered anime listing with its pagination summary.
func AnimeList(items []mal.Anime, meta query.Meta) string {
	var b strings.Builder
	writeFilterBlock(&b, meta)

	if len(items) == 0 {
		writeEmpty(&b, meta)
		return b.String()
	}

	writeCountLine(&b, len(items), meta)
	for i, a := range items {
		b.WriteString("\n")
		writeAnimeEntry(&b, i, a)
	}
	writeFooter(&b, meta)
	return b.String()
}

// MangaList renders a filtered manga listing with its pagination summary.
func MangaList(items []mal.Manga, meta query.Meta) string {
	var b strings.Builder
	writeFilterBlock(&b, meta)

	if len(items) == 0 {
		writeEmpty(&b, meta)
		return b.String()
	}

	writeCountLine(&b, len(items), meta)
	for i, m := range items {
		b.WriteString("\n")
		writeMangaEntry(&b, i, m)
	}
	writeFooter(&b, meta)
	return b.String()
}

// AnimeDetails renders one anime record in full.
func AnimeDetails(a *mal.Anime) string {
	var b strings.Builder

	title := a.Title
	if year := a.Year(); year > 0 {
		title = fmt.Sprintf("%s (%d)", title, year)
	}
	b.WriteString(title + "\n")
	writeAltTitles(&b, a.AlternativeTitles)
	b.WriteString("\n")

	writeStatsLine(&b, a.Mean, a.Rank, a.Popularity, a.NumListUsers)
	typeLine := "Type: " + orUnknown(a.MediaType)
	if a.NumEpisodes > 0 {
		typeLine += fmt.Sprintf(" | Episodes: %d", a.NumEpisodes)
	}
	if a.AverageEpisodeDuration > 0 {
		typeLine += fmt.Sprintf(" | Duration: %dm", a.AverageEpisodeDuration/60)
	}
	b.WriteString(typeLine + "\n")
	if a.Status != "" {
		b.WriteString("Status: " + a.Status + "\n")
	}
	if a.StartDate != "" {
		aired := "Aired: " + a.StartDate
		if a.EndDate != "" {
			aired += " to " + a.EndDate
		}
		b.WriteString(aired + "\n")
	}
	if a.StartSeason != nil {
		b.WriteString(fmt.Sprintf("Premiered: %s %d\n", a.StartSeason.Name, a.StartSeason.Year))
	}
	if a.Source != "" {
		b.WriteString("Source: " + a.Source + "\n")
	}
	if a.Rating != "" {
		b.WriteString("Rating: " + a.Rating + "\n")
	}
	if len(a.Studios) > 0 {
		names := make([]string, 0, len(a.Studios))
		for _, s := range a.Studios {
			names = append(names, s.Name)
		}
		b.WriteString("Studios: " + strings.Join(names, ", ") + "\n")
	}
	if len(a.Genres) > 0 {
		b.WriteString("Genres: " + strings.Join(a.GenreNames(), ", ") + "\n")
	}
	if a.Synopsis != "" {
		b.WriteString("\n" + a.Synopsis + "\n")
	}
	return b.String()
}

// MangaDetails renders one manga record in full.
func MangaDetails(m *mal.Manga) string {
	var b strings.Builder

	title := m.Title
	if len(m.StartDate) >= 4 {
		title = fmt.Sprintf("%s (%s)", title, m.StartDate[:4])
	}
	b.WriteString(title + "\n")
	writeAltTitles(&b, m.AlternativeTitles)
	b.WriteString("\n")

	writeStatsLine(&b, m.Mean, m.Rank, m.Popularity, m.NumListUsers)
	typeLine := "Type: " + orUnknown(m.MediaType)
	if m.NumVolumes > 0 {
		typeLine += fmt.Sprintf(" | Volumes: %d", m.NumVolumes)
	}
	if m.NumChapters > 0 {
		typeLine += fmt.Sprintf(" | Chapters: %d", m.NumChapters)
	}
	b.WriteString(typeLine + "\n")
	if m.Status != "" {
		b.WriteString("Status: " + m.Status + "\n")
	}
	if m.StartDate != "" {
		published := "Published: " + m.StartDate
		if m.EndDate != "" {
			published += " to " + m.EndDate
		}
		b.WriteString(published + "\n")
	}
	if len(m.Authors) > 0 {
		b.WriteString("Authors: " + strings.Join(m.AuthorNames(), ", ") + "\n")
	}
	if len(m.Genres) > 0 {
		b.WriteString("Genres: " + strings.Join(m.GenreNames(), ", ") + "\n")
	}
	if m.Synopsis != "" {
		b.WriteString("\n" + m.Synopsis + "\n")
	}
	return b.String()
}

// writeFilterBlock prefixes the listing with the active filter lines,
// one per criterion, when any filtering happened.
func writeFilterBlock(b *strings.Builder, meta query.Meta) {
	if len(meta.ActiveFilters) == 0 {
		return
	}
	b.WriteString("Active filters:\n")
	for _, line := range meta.ActiveFilters {
		b.WriteString("  - " + line + "\n")
	}
	b.WriteString("\n")
}

func writeEmpty(b *strings.Builder, meta query.Meta) {
	if len(meta.ActiveFilters) > 0 {
		fmt.Fprintf(b, "No results matched the filters (%d scanned).\n", meta.TotalScanned)
		return
	}
	b.WriteString("No results found.\n")
}

func writeCountLine(b *strings.Builder, returned int, meta query.Meta) {
	if len(meta.ActiveFilters) > 0 {
		fmt.Fprintf(b, "Showing %d of %d matches (%d scanned):\n", returned, meta.TotalMatched, meta.TotalScanned)
		return
	}
	fmt.Fprintf(b, "Found %d results:\n", returned)
}

func writeFooter(b *strings.Builder, meta query.Meta) {
	if !meta.HasMore {
		return
	}
	fmt.Fprintf(b, "\nMore results available; continue from offset %d.\n", meta.NextOffset)
}

// writeAnimeEntry renders one list entry. Ranking annotations take over
// the numbering so board positions read as published.
func writeAnimeEntry(b *strings.Builder, i int, a mal.Anime) {
	b.WriteString(entryHeading(i, a.RankPosition, a.Title) + "\n")

	stats := entryStats(a.Mean, a.NumListUsers)
	if stats != "" {
		b.WriteString("   " + stats + "\n")
	}

	var facts []string
	if a.MediaType != "" {
		facts = append(facts, a.MediaType)
	}
	if a.Status != "" {
		facts = append(facts, a.Status)
	}
	if a.StartSeason != nil {
		facts = append(facts, fmt.Sprintf("%s %d", a.StartSeason.Name, a.StartSeason.Year))
	}
	if a.NumEpisodes > 0 {
		facts = append(facts, fmt.Sprintf("%d eps", a.NumEpisodes))
	}
	if len(facts) > 0 {
		b.WriteString("   " + strings.Join(facts, " | ") + "\n")
	}

	if len(a.Genres) > 0 {
		b.WriteString("   Genres: " + strings.Join(a.GenreNames(), ", ") + "\n")
	}
	if a.Synopsis != "" {
		b.WriteString("   " + truncate(a.Synopsis, synopsisLimit) + "\n")
	}
}

func writeMangaEntry(b *strings.Builder, i int, m mal.Manga) {
	b.WriteString(entryHeading(i, m.RankPosition, m.Title) + "\n")

	stats := entryStats(m.Mean, m.NumListUsers)
	if stats != "" {
		b.WriteString("   " + stats + "\n")
	}

	var facts []string
	if m.MediaType != "" {
		facts = append(facts, m.MediaType)
	}
	if m.Status != "" {
		facts = append(facts, m.Status)
	}
	if m.NumChapters > 0 {
		facts = append(facts, fmt.Sprintf("%d ch", m.NumChapters))
	}
	if len(facts) > 0 {
		b.WriteString("   " + strings.Join(facts, " | ") + "\n")
	}

	if len(m.Genres) > 0 {
		b.WriteString("   Genres: " + strings.Join(m.GenreNames(), ", ") + "\n")
	}
	if m.Synopsis != "" {
		b.WriteString("   " + truncate(m.Synopsis, synopsisLimit) + "\n")
	}
}

func entryHeading(i, rankPosition int, title string) string {
	if rankPosition > 0 {
		return fmt.Sprintf("#%d %s", rankPosition, title)
	}
	return fmt.Sprintf("%d. %s", i+1, title)
}

func entryStats(mean float64, members int) string {
	var parts []string
	if mean > 0 {
		parts = append(parts, fmt.Sprintf("Score: %.2f", mean))
	}
	if members > 0 {
		parts = append(parts, fmt.Sprintf("Members: %d", members))
	}
	return strings.Join(parts, " | ")
}

func writeStatsLine(b *strings.Builder, mean float64, rank, popularity, members int) {
	var parts []string
	if mean > 0 {
		parts = append(parts, fmt.Sprintf("Score: %.2f", mean))
	}
	if rank > 0 {
		parts = append(parts, fmt.Sprintf("Rank: #%d", rank))
	}
	if popularity > 0 {
		parts = append(parts, fmt.Sprintf("Popularity: #%d", popularity))
	}
	if members > 0 {
		parts = append(parts, fmt.Sprintf("Members: %d", members))
	}
	if len(parts) > 0 {
		b.WriteString(strings.Join(parts, " | ") + "\n")
	}
}

func writeAltTitles(b *strings.Builder, alt *mal.AltTitles) {
	if alt == nil {
		return
	}
	if alt.English != "" {
		b.WriteString("English: " + alt.English + "\n")
	}
	if alt.Japanese != "" {
		b.WriteString("Japanese: " + alt.Japanese + "\n")
	}
	if len(alt.Synonyms) > 0 {
		b.WriteString("Synonyms: " + strings.Join(alt.Synonyms, ", ") + "\n")
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// truncate cuts s to limit runes, marking the cut with an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
