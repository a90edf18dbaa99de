package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/vmunix/anibridge/internal/config"
	"github.com/vmunix/anibridge/internal/mal"
	"github.com/vmunix/anibridge/internal/query"
	"github.com/vmunix/anibridge/internal/render"
)

// loadConfig resolves the effective configuration: the --config path if
// given, else a discovered config file, else built-in defaults with the
// client ID from MAL_CLIENT_ID.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if path, err := config.Discover(); err == nil {
		return config.Load(path)
	}
	cfg := config.Default()
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Errors: errs}
	}
	return cfg, nil
}

// loadConfigUnvalidated resolves configuration the same way but skips
// validation, for commands that work without a catalog client.
func loadConfigUnvalidated() (*config.Config, error) {
	if configPath != "" {
		return config.LoadWithoutValidation(configPath)
	}
	if path, err := config.Discover(); err == nil {
		return config.LoadWithoutValidation(path)
	}
	return config.Default(), nil
}

func newCatalog(cfg *config.Config) *mal.Client {
	opts := []mal.Option{
		mal.WithHTTPClient(&http.Client{Timeout: cfg.MAL.Timeout()}),
	}
	if cfg.MAL.BaseURL != "" {
		opts = append(opts, mal.WithBaseURL(cfg.MAL.BaseURL))
	}
	return mal.New(cfg.MAL.ClientID, opts...)
}

// listing is the --json shape of a list query: the records plus the
// scan and pagination metadata.
type listing[R any] struct {
	Results []R        `json:"results"`
	Meta    query.Meta `json:"meta"`
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func printAnimeListing(items []mal.Anime, meta query.Meta) {
	if jsonOutput {
		printJSON(listing[mal.Anime]{Results: items, Meta: meta})
		return
	}
	fmt.Print(render.AnimeList(items, meta))
}

func printMangaListing(items []mal.Manga, meta query.Meta) {
	if jsonOutput {
		printJSON(listing[mal.Manga]{Results: items, Meta: meta})
		return
	}
	fmt.Print(render.MangaList(items, meta))
}
