package query

import (
	"context"
	"fmt"

	"github.com/vmunix/anibridge/internal/mal"
)

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}

type fetchCall struct {
	limit  int
	offset int
}

// stubFetch serves a fixed backing window, honoring the requested limit
// the way the catalog does, and records each call.
func stubFetch(items []mal.Anime, hasNext bool, calls *[]fetchCall) FetchFunc[mal.Anime] {
	return func(_ context.Context, limit, offset int) ([]mal.Anime, bool, error) {
		*calls = append(*calls, fetchCall{limit: limit, offset: offset})
		if limit < len(items) {
			return items[:limit], hasNext, nil
		}
		return items, hasNext, nil
	}
}

// scoredWindow returns n records where every ninth record, starting at
// the first, scores 8.4 and the rest 6.5. For n=100 that is 12 high
// scorers at positions 1, 10, 19, ... of the window.
func scoredWindow(n int) []mal.Anime {
	items := make([]mal.Anime, n)
	for i := range items {
		mean := 6.5
		if i%9 == 0 {
			mean = 8.4
		}
		items[i] = mal.Anime{
			ID:    i + 1,
			Title: fmt.Sprintf("Anime %d", i+1),
			Mean:  mean,
		}
	}
	return items
}
