// Package web wires configuration parsing and startup for the web command.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/reclaim.space/internal/platform/config"
	"github.com/louisbranch/reclaim.space/internal/platform/timeouts"
	"github.com/louisbranch/reclaim.space/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr       string        `env:"RECLAIM_SPACE_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	BackendBaseURL string        `env:"RECLAIM_SPACE_BACKEND_BASE_URL" envDefault:"http://localhost:1337"`
	BackendTimeout time.Duration `env:"RECLAIM_SPACE_BACKEND_TIMEOUT"`
	PublicBaseURL  string        `env:"RECLAIM_SPACE_PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	SessionDBPath  string        `env:"RECLAIM_SPACE_SESSION_DB" envDefault:"reclaim-sessions.db"`
	// ProtectedPrefixes is the comma-separated path-prefix set requiring a
	// session.
	ProtectedPrefixes []string `env:"RECLAIM_SPACE_PROTECTED_PREFIXES" envSeparator:"," envDefault:"/dashboard/"`
}

// ParseConfig loads environment defaults, then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.BackendTimeout <= 0 {
		cfg.BackendTimeout = timeouts.Backend
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendBaseURL, "backend-base-url", cfg.BackendBaseURL, "Record backend base URL")
	fs.DurationVar(&cfg.BackendTimeout, "backend-timeout", cfg.BackendTimeout, "Record backend call timeout")
	fs.StringVar(&cfg.PublicBaseURL, "public-base-url", cfg.PublicBaseURL, "Public base URL used in share links")
	fs.StringVar(&cfg.SessionDBPath, "session-db", cfg.SessionDBPath, "Session store sqlite path")
	prefixes := fs.String("protected-prefixes", strings.Join(cfg.ProtectedPrefixes, ","), "Comma-separated path prefixes requiring a session")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.ProtectedPrefixes = splitPrefixes(*prefixes)

	return cfg, nil
}

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := web.NewServer(web.Config{
		HTTPAddr:          cfg.HTTPAddr,
		BackendBaseURL:    cfg.BackendBaseURL,
		BackendTimeout:    cfg.BackendTimeout,
		PublicBaseURL:     cfg.PublicBaseURL,
		SessionDBPath:     cfg.SessionDBPath,
		ProtectedPrefixes: cfg.ProtectedPrefixes,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func splitPrefixes(raw string) []string {
	parts := strings.Split(raw, ",")
	prefixes := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prefixes = append(prefixes, part)
	}
	return prefixes
}
