package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/anibridge/internal/mal"
)

func TestFetchFiltered_Passthrough(t *testing.T) {
	window := scoredWindow(10)
	var calls []fetchCall
	fetch := stubFetch(window, false, &calls)

	items, meta, err := FetchFiltered(context.Background(), fetch, &AnimeFilter{}, 10, 0)
	require.NoError(t, err)

	// Inactive filter: the requested window comes back verbatim.
	assert.Equal(t, window, items)
	require.Len(t, calls, 1)
	assert.Equal(t, fetchCall{limit: 10, offset: 0}, calls[0])

	assert.Equal(t, 10, meta.TotalScanned)
	assert.Equal(t, 10, meta.TotalMatched)
	assert.Equal(t, 1, meta.PagesScanned)
	assert.Empty(t, meta.ActiveFilters)
	assert.False(t, meta.HasMore)
	assert.Equal(t, 0, meta.NextOffset)
}

func TestFetchFiltered_Passthrough_NilFilter(t *testing.T) {
	window := scoredWindow(3)
	var calls []fetchCall
	fetch := stubFetch(window, false, &calls)

	items, meta, err := FetchFiltered[mal.Anime](context.Background(), fetch, nil, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, window, items)
	assert.Equal(t, 3, meta.TotalScanned)
}

func TestFetchFiltered_Passthrough_HasMore(t *testing.T) {
	window := scoredWindow(10)
	var calls []fetchCall
	fetch := stubFetch(window, true, &calls)

	_, meta, err := FetchFiltered(context.Background(), fetch, &AnimeFilter{}, 10, 40)
	require.NoError(t, err)

	// Unfiltered, HasMore mirrors the catalog's indicator directly.
	assert.True(t, meta.HasMore)
	assert.Equal(t, 50, meta.NextOffset)
	require.Len(t, calls, 1)
	assert.Equal(t, 40, calls[0].offset)
}

func TestFetchFiltered_ScoreWindow(t *testing.T) {
	// 100 records, 12 of which score at or above the threshold.
	window := scoredWindow(100)
	var calls []fetchCall
	fetch := stubFetch(window, false, &calls)

	filter := &AnimeFilter{Criteria: Criteria{MinScore: ptr(8.0)}}
	items, meta, err := FetchFiltered(context.Background(), fetch, filter, 5, 0)
	require.NoError(t, err)

	// One overfetch round trip regardless of the requested limit.
	require.Len(t, calls, 1)
	assert.Equal(t, fetchCall{limit: OverfetchWindow, offset: 0}, calls[0])

	// First five matches in arrival order; the full window still counts.
	require.Len(t, items, 5)
	assert.Equal(t, []int{1, 10, 19, 28, 37},
		[]int{items[0].ID, items[1].ID, items[2].ID, items[3].ID, items[4].ID})
	assert.Equal(t, 100, meta.TotalScanned)
	assert.Equal(t, 12, meta.TotalMatched)
	assert.Equal(t, 1, meta.PagesScanned)
	assert.Equal(t, []string{"Min score: 8"}, meta.ActiveFilters)
}

func TestFetchFiltered_ShortWindowOverridesIndicator(t *testing.T) {
	// Catalog hands back 40 records with its continuation indicator
	// still truthy. A short window wins: the source is exhausted.
	window := scoredWindow(40)
	var calls []fetchCall
	fetch := stubFetch(window, true, &calls)

	filter := &AnimeFilter{Criteria: Criteria{MinScore: ptr(8.0)}}
	items, meta, err := FetchFiltered(context.Background(), fetch, filter, 5, 0)
	require.NoError(t, err)

	require.Len(t, items, 5)
	assert.Equal(t, 40, meta.TotalScanned)
	assert.False(t, meta.HasMore)
	assert.Equal(t, 0, meta.NextOffset)
}

func TestFetchFiltered_FullWindowWithRemoteCursor(t *testing.T) {
	window := scoredWindow(100)
	var calls []fetchCall
	fetch := stubFetch(window, true, &calls)

	filter := &AnimeFilter{Criteria: Criteria{MinScore: ptr(8.0)}}
	_, meta, err := FetchFiltered(context.Background(), fetch, filter, 5, 30)
	require.NoError(t, err)

	assert.True(t, meta.HasMore)
	// Resume position is the end of the scanned window, not the match count.
	assert.Equal(t, 130, meta.NextOffset)
}

func TestFetchFiltered_FullWindowNoRemoteCursor(t *testing.T) {
	window := scoredWindow(100)
	var calls []fetchCall
	fetch := stubFetch(window, false, &calls)

	filter := &AnimeFilter{Criteria: Criteria{MinScore: ptr(8.0)}}
	_, meta, err := FetchFiltered(context.Background(), fetch, filter, 5, 0)
	require.NoError(t, err)

	assert.False(t, meta.HasMore)
	assert.Equal(t, 0, meta.NextOffset)
}

func TestFetchFiltered_NoMatches(t *testing.T) {
	window := scoredWindow(100)
	var calls []fetchCall
	fetch := stubFetch(window, false, &calls)

	// Nothing scores this high; empty result, not an error.
	filter := &AnimeFilter{Criteria: Criteria{MinScore: ptr(9.9)}}
	items, meta, err := FetchFiltered(context.Background(), fetch, filter, 5, 0)
	require.NoError(t, err)

	assert.Empty(t, items)
	assert.Equal(t, 100, meta.TotalScanned)
	assert.Equal(t, 0, meta.TotalMatched)
}

func TestFetchFiltered_FewerMatchesThanLimit(t *testing.T) {
	// 12 matches in the window but 20 requested: no second fetch tops
	// the result up.
	window := scoredWindow(100)
	var calls []fetchCall
	fetch := stubFetch(window, false, &calls)

	filter := &AnimeFilter{Criteria: Criteria{MinScore: ptr(8.0)}}
	items, meta, err := FetchFiltered(context.Background(), fetch, filter, 20, 0)
	require.NoError(t, err)

	assert.Len(t, items, 12)
	assert.Equal(t, 12, meta.TotalMatched)
	assert.Len(t, calls, 1)
}

func TestFetchFiltered_FetchErrorPropagates(t *testing.T) {
	errUpstream := errors.New("catalog unavailable")
	fetch := func(_ context.Context, _, _ int) ([]mal.Anime, bool, error) {
		return nil, false, errUpstream
	}

	filter := &AnimeFilter{Criteria: Criteria{MinScore: ptr(8.0)}}
	items, meta, err := FetchFiltered[mal.Anime](context.Background(), fetch, filter, 5, 0)

	// The error comes through unwrapped and nothing partial survives.
	assert.Equal(t, errUpstream, err)
	assert.Nil(t, items)
	assert.Equal(t, Meta{}, meta)

	_, _, err = FetchFiltered[mal.Anime](context.Background(), fetch, &AnimeFilter{}, 5, 0)
	assert.Equal(t, errUpstream, err)
}

func TestFetchFiltered_Invariants(t *testing.T) {
	window := scoredWindow(100)
	limits := []int{1, 5, 12, 50, 100}

	for _, limit := range limits {
		var calls []fetchCall
		fetch := stubFetch(window, true, &calls)
		filter := &AnimeFilter{Criteria: Criteria{MinScore: ptr(8.0)}}

		items, meta, err := FetchFiltered(context.Background(), fetch, filter, limit, 0)
		require.NoError(t, err)

		assert.LessOrEqual(t, meta.TotalMatched, meta.TotalScanned)
		assert.LessOrEqual(t, len(items), limit)
		assert.LessOrEqual(t, len(items), meta.TotalMatched)
		if meta.HasMore {
			assert.Equal(t, OverfetchWindow, meta.TotalScanned)
			assert.Equal(t, meta.TotalScanned, meta.NextOffset)
		}
	}
}

func TestFetchFiltered_AndNarrowerThanOr(t *testing.T) {
	window := []mal.Anime{
		{ID: 1, Genres: []mal.Genre{{Name: "Action"}, {Name: "Romance"}}},
		{ID: 2, Genres: []mal.Genre{{Name: "Action"}}},
		{ID: 3, Genres: []mal.Genre{{Name: "Romance"}}},
		{ID: 4, Genres: []mal.Genre{{Name: "Comedy"}}},
	}

	matchedIDs := func(mode GenreMode) map[int]bool {
		var calls []fetchCall
		fetch := stubFetch(window, false, &calls)
		filter := &AnimeFilter{Criteria: Criteria{
			GenresInclude: []string{"Action", "Romance"},
			GenreMode:     mode,
		}}
		items, _, err := FetchFiltered(context.Background(), fetch, filter, 10, 0)
		require.NoError(t, err)
		ids := make(map[int]bool, len(items))
		for _, it := range items {
			ids[it.ID] = true
		}
		return ids
	}

	orIDs := matchedIDs(GenreModeOr)
	andIDs := matchedIDs(GenreModeAnd)

	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, orIDs)
	assert.Equal(t, map[int]bool{1: true}, andIDs)
	for id := range andIDs {
		assert.True(t, orIDs[id], "and-matched record %d must also match under or", id)
	}
}
