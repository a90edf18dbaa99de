package query

import "context"

// OverfetchWindow is how many records one filtered call pulls from the
// catalog before filtering. It matches the catalog's maximum page size
// and is independent of the caller's requested limit.
const OverfetchWindow = 100

// FetchFunc retrieves one window of records from the catalog. hasNext is
// the catalog's own continuation indicator for the window.
type FetchFunc[R any] func(ctx context.Context, limit, offset int) (items []R, hasNext bool, err error)

// Meta describes what one FetchFiltered call did: how much of the
// catalog it scanned, what the filter kept, and where a follow-up call
// should resume. NextOffset is meaningful only when HasMore is true.
type Meta struct {
	TotalScanned  int      `json:"total_scanned"`
	TotalMatched  int      `json:"total_matched"`
	PagesScanned  int      `json:"pages_scanned"`
	ActiveFilters []string `json:"active_filters,omitempty"`
	HasMore       bool     `json:"has_more"`
	NextOffset    int      `json:"next_offset"`
}

// FetchFiltered performs one logical catalog query in exactly one round
// trip.
//
// With an inactive filter, the requested window passes through verbatim
// and HasMore mirrors the catalog's continuation indicator. With an
// active filter, a full catalog page of OverfetchWindow records is
// pulled instead, every record is tested, and the first limit matches
// become the result. No second fetch tops up a short filtered result;
// callers wanting more re-invoke with Meta.NextOffset.
//
// Fetch errors propagate unmodified. An empty result is not an error.
func FetchFiltered[R any](ctx context.Context, fetch FetchFunc[R], filter Filter[R], limit, offset int) ([]R, Meta, error) {
	if filter == nil || !filter.Active() {
		items, hasNext, err := fetch(ctx, limit, offset)
		if err != nil {
			return nil, Meta{}, err
		}
		meta := Meta{
			TotalScanned: len(items),
			TotalMatched: len(items),
			PagesScanned: 1,
			HasMore:      hasNext,
		}
		if meta.HasMore {
			meta.NextOffset = offset + len(items)
		}
		return items, meta, nil
	}

	window, remoteHasMore, err := fetch(ctx, OverfetchWindow, offset)
	if err != nil {
		return nil, Meta{}, err
	}

	matched := make([]R, 0, min(limit, len(window)))
	totalMatched := 0
	for _, record := range window {
		if !filter.Matches(record) {
			continue
		}
		totalMatched++
		if len(matched) < limit {
			matched = append(matched, record)
		}
	}

	// A short window means the catalog is exhausted no matter what its
	// cursor claims; only a full window with a live cursor can hold
	// more. With a narrow filter this can still report more results
	// when every remaining match is already in hand.
	windowFull := len(window) == OverfetchWindow
	meta := Meta{
		TotalScanned:  len(window),
		TotalMatched:  totalMatched,
		PagesScanned:  1,
		ActiveFilters: filter.Describe(),
		HasMore:       remoteHasMore && windowFull,
	}
	if meta.HasMore {
		// Resume from the end of the scanned window, not from the match
		// count: unmatched records must not be re-scanned next call.
		meta.NextOffset = offset + len(window)
	}
	return matched, meta, nil
}
