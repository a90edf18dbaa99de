// Package tools registers the catalog query tools on an MCP server.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vmunix/anibridge/internal/genres"
	"github.com/vmunix/anibridge/internal/mal"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Catalog is the slice of the MAL client the tools consume.
type Catalog interface {
	SearchAnime(ctx context.Context, q string, limit, offset int) ([]mal.Anime, bool, error)
	AnimeRanking(ctx context.Context, rankingType string, limit, offset int) ([]mal.Anime, bool, error)
	SeasonalAnime(ctx context.Context, year int, season, sort string, limit, offset int) ([]mal.Anime, bool, error)
	GetAnime(ctx context.Context, id int) (*mal.Anime, error)
	SearchManga(ctx context.Context, q string, limit, offset int) ([]mal.Manga, bool, error)
	MangaRanking(ctx context.Context, rankingType string, limit, offset int) ([]mal.Manga, bool, error)
	GetManga(ctx context.Context, id int) (*mal.Manga, error)
}

// AuditFunc observes every completed tool call.
type AuditFunc func(ctx context.Context, tool, arguments string, dur time.Duration, err error)

// Registry wires the catalog query tools onto an MCP server.
type Registry struct {
	catalog Catalog
	log     *slog.Logger
	audit   AuditFunc
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets a logger for tool call logging.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		r.log = log.With("component", "tools")
	}
}

// WithAudit sets a hook invoked after every tool call.
func WithAudit(fn AuditFunc) Option {
	return func(r *Registry) {
		r.audit = fn
	}
}

// NewRegistry creates a tool registry backed by the given catalog.
func NewRegistry(catalog Catalog, opts ...Option) *Registry {
	r := &Registry{catalog: catalog}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register registers all catalog tools on srv.
func (r *Registry) Register(srv *mcp.Server) {
	r.registerSearchAnime(srv)
	r.registerAnimeRanking(srv)
	r.registerSeasonalAnime(srv)
	r.registerAnimeDetails(srv)
	r.registerSearchManga(srv)
	r.registerMangaRanking(srv)
	r.registerMangaDetails(srv)
	r.registerListGenres(srv)
}

// register installs one tool. Failures surface as tool errors in the
// result, never as protocol errors, so a client sees the message.
func (r *Registry) register(srv *mcp.Server, tool *mcp.Tool, run func(ctx context.Context, args json.RawMessage) (string, error)) {
	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		text, err := run(ctx, req.Params.Arguments)
		r.observe(ctx, tool.Name, string(req.Params.Arguments), time.Since(start), err)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(err)
			return &res, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil
	})
}

func (r *Registry) observe(ctx context.Context, tool, arguments string, dur time.Duration, err error) {
	if r.log != nil {
		if err != nil {
			r.log.Warn("tool call failed", "tool", tool, "duration_ms", dur.Milliseconds(), "error", err)
		} else {
			r.log.Debug("tool call completed", "tool", tool, "duration_ms", dur.Milliseconds())
		}
	}
	if r.audit != nil {
		r.audit(ctx, tool, arguments, dur, err)
	}
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// withProps merges tool-specific properties over a shared base.
func withProps(base map[string]any, extra map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// clampPage applies the default and bounds to limit and offset.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// validateGenres checks every name against the vocabulary, suggesting
// the closest canonical name for a misspelling.
func validateGenres(names []string) error {
	for _, name := range names {
		if genres.Valid(name) {
			continue
		}
		if suggestion, ok := genres.Suggest(name); ok {
			return fmt.Errorf("unknown genre %q (did you mean %q?)", name, suggestion)
		}
		return fmt.Errorf("unknown genre %q", name)
	}
	return nil
}

func validateEnum(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !mal.ValidEnum(value, allowed) {
		return fmt.Errorf("invalid %s %q (allowed: %s)", field, value, strings.Join(allowed, ", "))
	}
	return nil
}

func validateEnumSet(field string, values, allowed []string) error {
	for _, v := range values {
		if !mal.ValidEnum(v, allowed) {
			return fmt.Errorf("invalid %s %q (allowed: %s)", field, v, strings.Join(allowed, ", "))
		}
	}
	return nil
}

// lowerAll lowercases enum-valued arguments in place so "TV" and "tv"
// both reach the catalog as "tv".
func lowerAll(values []string) []string {
	for i, v := range values {
		values[i] = strings.ToLower(v)
	}
	return values
}
