package mal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the production MyAnimeList API v2 endpoint.
const DefaultBaseURL = "https://api.myanimelist.net/v2"

// Field lists requested from MAL. The API omits every attribute not named
// in the fields parameter, so list and detail requests spell them out.
const (
	animeListFields   = "id,title,main_picture,start_date,synopsis,mean,rank,popularity,num_list_users,genres,media_type,status,num_episodes,start_season,source"
	animeDetailFields = animeListFields + ",alternative_titles,end_date,num_scoring_users,nsfw,average_episode_duration,rating,studios"
	mangaListFields   = "id,title,main_picture,start_date,synopsis,mean,rank,popularity,num_list_users,genres,media_type,status,num_volumes,num_chapters"
	mangaDetailFields = mangaListFields + ",alternative_titles,end_date,num_scoring_users,nsfw,authors{first_name,last_name}"
)

// Client is a MyAnimeList API v2 client authenticated with a client ID.
type Client struct {
	clientID   string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "mal")
	}
}

// New creates a MyAnimeList API v2 client.
func New(clientID string, opts ...Option) *Client {
	c := &Client{
		clientID: clientID,
		baseURL:  DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs an authenticated GET and decodes the response body into v.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, v any) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-MAL-CLIENT-ID", c.clientID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkResponse(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// SearchAnime queries anime whose titles match q. The returned flag reports
// whether the catalog advertises a page past this window.
func (c *Client) SearchAnime(ctx context.Context, q string, limit, offset int) ([]Anime, bool, error) {
	start := time.Now()

	query := url.Values{}
	query.Set("q", q)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("fields", animeListFields)

	var page animePage
	if err := c.get(ctx, "/anime", query, &page); err != nil {
		return nil, false, err
	}

	items, hasNext := flattenAnime(page)
	if c.log != nil {
		c.log.Debug("anime search completed", "query", q, "results", len(items), "duration_ms", time.Since(start).Milliseconds())
	}
	return items, hasNext, nil
}

// AnimeRanking fetches a window of an anime ranking board.
func (c *Client) AnimeRanking(ctx context.Context, rankingType string, limit, offset int) ([]Anime, bool, error) {
	start := time.Now()

	query := url.Values{}
	query.Set("ranking_type", rankingType)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("fields", animeListFields)

	var page animePage
	if err := c.get(ctx, "/anime/ranking", query, &page); err != nil {
		return nil, false, err
	}

	items, hasNext := flattenAnime(page)
	if c.log != nil {
		c.log.Debug("anime ranking fetched", "type", rankingType, "results", len(items), "duration_ms", time.Since(start).Milliseconds())
	}
	return items, hasNext, nil
}

// SeasonalAnime fetches a window of a broadcast season. Sort may be empty
// to keep the catalog's default order.
func (c *Client) SeasonalAnime(ctx context.Context, year int, season, sort string, limit, offset int) ([]Anime, bool, error) {
	start := time.Now()

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("fields", animeListFields)
	if sort != "" {
		query.Set("sort", sort)
	}

	endpoint := fmt.Sprintf("/anime/season/%d/%s", year, season)
	var page animePage
	if err := c.get(ctx, endpoint, query, &page); err != nil {
		return nil, false, err
	}

	items, hasNext := flattenAnime(page)
	if c.log != nil {
		c.log.Debug("seasonal anime fetched", "year", year, "season", season, "results", len(items), "duration_ms", time.Since(start).Milliseconds())
	}
	return items, hasNext, nil
}

// GetAnime fetches a single anime record by ID with detail fields.
func (c *Client) GetAnime(ctx context.Context, id int) (*Anime, error) {
	start := time.Now()

	query := url.Values{}
	query.Set("fields", animeDetailFields)

	var anime Anime
	if err := c.get(ctx, fmt.Sprintf("/anime/%d", id), query, &anime); err != nil {
		return nil, err
	}

	if c.log != nil {
		c.log.Debug("fetched anime", "id", id, "title", anime.Title, "duration_ms", time.Since(start).Milliseconds())
	}
	return &anime, nil
}

// SearchManga queries manga whose titles match q.
func (c *Client) SearchManga(ctx context.Context, q string, limit, offset int) ([]Manga, bool, error) {
	start := time.Now()

	query := url.Values{}
	query.Set("q", q)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("fields", mangaListFields)

	var page mangaPage
	if err := c.get(ctx, "/manga", query, &page); err != nil {
		return nil, false, err
	}

	items, hasNext := flattenManga(page)
	if c.log != nil {
		c.log.Debug("manga search completed", "query", q, "results", len(items), "duration_ms", time.Since(start).Milliseconds())
	}
	return items, hasNext, nil
}

// MangaRanking fetches a window of a manga ranking board.
func (c *Client) MangaRanking(ctx context.Context, rankingType string, limit, offset int) ([]Manga, bool, error) {
	start := time.Now()

	query := url.Values{}
	query.Set("ranking_type", rankingType)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	query.Set("fields", mangaListFields)

	var page mangaPage
	if err := c.get(ctx, "/manga/ranking", query, &page); err != nil {
		return nil, false, err
	}

	items, hasNext := flattenManga(page)
	if c.log != nil {
		c.log.Debug("manga ranking fetched", "type", rankingType, "results", len(items), "duration_ms", time.Since(start).Milliseconds())
	}
	return items, hasNext, nil
}

// GetManga fetches a single manga record by ID with detail fields.
func (c *Client) GetManga(ctx context.Context, id int) (*Manga, error) {
	start := time.Now()

	query := url.Values{}
	query.Set("fields", mangaDetailFields)

	var manga Manga
	if err := c.get(ctx, fmt.Sprintf("/manga/%d", id), query, &manga); err != nil {
		return nil, err
	}

	if c.log != nil {
		c.log.Debug("fetched manga", "id", id, "title", manga.Title, "duration_ms", time.Since(start).Milliseconds())
	}
	return &manga, nil
}

// flattenAnime unwraps envelope entries, carrying ranking annotations
// onto the records themselves.
func flattenAnime(page animePage) ([]Anime, bool) {
	items := make([]Anime, 0, len(page.Data))
	for _, e := range page.Data {
		a := e.Node
		if e.Ranking != nil {
			a.RankPosition = e.Ranking.Rank
		}
		items = append(items, a)
	}
	return items, page.Paging.Next != ""
}

func flattenManga(page mangaPage) ([]Manga, bool) {
	items := make([]Manga, 0, len(page.Data))
	for _, e := range page.Data {
		m := e.Node
		if e.Ranking != nil {
			m.RankPosition = e.Ranking.Rank
		}
		items = append(items, m)
	}
	return items, page.Paging.Next != ""
}

// checkResponse maps non-200 responses to sentinel or typed errors.
func (c *Client) checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrInvalidClientID
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Message = body.Message
			if apiErr.Message == "" {
				apiErr.Message = body.Error
			}
		}
		return apiErr
	}
}
