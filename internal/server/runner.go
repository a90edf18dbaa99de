// Package server assembles the MCP server and runs it over the configured transport.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/anibridge/internal/audit"
	"github.com/vmunix/anibridge/internal/config"
	"github.com/vmunix/anibridge/internal/mal"
	"github.com/vmunix/anibridge/internal/tools"
)

// Runner builds the tool server from configuration and serves it.
type Runner struct {
	cfg     *config.Config
	version string
	log     *slog.Logger
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg *config.Config, version string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, version: version, log: logger}
}

// Run serves the MCP server over the configured transport.
// It blocks until the context is canceled or the transport fails.
func (r *Runner) Run(ctx context.Context) error {
	srv, cleanup, err := r.buildServer()
	if err != nil {
		return err
	}
	defer cleanup()

	switch r.cfg.Server.Transport {
	case "http":
		return r.serveHTTP(ctx, srv)
	default:
		r.log.Info("mcp server starting", "transport", "stdio")
		return srv.Run(ctx, &mcp.StdioTransport{})
	}
}

// buildServer wires the MAL client, the optional audit log, and the tool
// registry into an MCP server. The returned cleanup closes the audit log.
func (r *Runner) buildServer() (*mcp.Server, func(), error) {
	malOpts := []mal.Option{
		mal.WithHTTPClient(&http.Client{Timeout: r.cfg.MAL.Timeout()}),
		mal.WithLogger(r.log),
	}
	if r.cfg.MAL.BaseURL != "" {
		malOpts = append(malOpts, mal.WithBaseURL(r.cfg.MAL.BaseURL))
	}
	catalog := mal.New(r.cfg.MAL.ClientID, malOpts...)

	toolOpts := []tools.Option{tools.WithLogger(r.log)}
	cleanup := func() {}
	if r.cfg.Audit.Path != "" {
		auditLog, err := audit.Open(r.cfg.Audit.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("audit log: %w", err)
		}
		cleanup = func() { _ = auditLog.Close() }
		toolOpts = append(toolOpts, tools.WithAudit(r.auditHook(auditLog)))
		r.log.Info("audit log enabled", "path", r.cfg.Audit.Path)
	}

	srv := mcp.NewServer(&mcp.Implementation{Name: "anibridge", Version: r.version}, nil)
	tools.NewRegistry(catalog, toolOpts...).Register(srv)
	return srv, cleanup, nil
}

// auditHook records completed tool calls, logging write failures instead
// of failing the call.
func (r *Runner) auditHook(auditLog *audit.Logger) tools.AuditFunc {
	return func(ctx context.Context, tool, arguments string, dur time.Duration, err error) {
		entry := audit.Entry{Tool: tool, Arguments: arguments, Duration: dur}
		if err != nil {
			entry.Error = err.Error()
		}
		if logErr := auditLog.Log(ctx, entry); logErr != nil {
			r.log.Warn("audit write failed", "tool", tool, "error", logErr)
		}
	}
}

func (r *Runner) serveHTTP(ctx context.Context, srv *mcp.Server) error {
	httpSrv := &http.Server{
		Addr:    r.cfg.Server.Addr,
		Handler: r.handler(srv),
		// No WriteTimeout: streamable MCP responses stay open.
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.log.Info("mcp server starting", "transport", "http", "addr", r.cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		r.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	r.log.Info("server stopped")
	return err
}

// handler routes the MCP endpoint plus a health check.
func (r *Runner) handler(srv *mcp.Server) http.Handler {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return srv }, nil)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler { return logRequests(next, r.log) })
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","version":%q}`, r.version)
	})
	router.Handle("/mcp", mcpHandler)
	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
