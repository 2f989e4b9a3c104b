// Package web hosts the browser-facing lost-and-found service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/platform/timeouts"
	"github.com/louisbranch/reclaim.space/internal/session"
	sessionsqlite "github.com/louisbranch/reclaim.space/internal/session/sqlite"
	"github.com/louisbranch/reclaim.space/internal/web/app"
	"github.com/louisbranch/reclaim.space/internal/web/module"
	"github.com/louisbranch/reclaim.space/internal/web/modules/contact"
	"github.com/louisbranch/reclaim.space/internal/web/modules/dashboard"
	"github.com/louisbranch/reclaim.space/internal/web/modules/items"
	"github.com/louisbranch/reclaim.space/internal/web/modules/publicauth"
	"github.com/louisbranch/reclaim.space/internal/web/modules/publicitem"
	"github.com/louisbranch/reclaim.space/internal/web/platform/httpx"
	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr       string
	BackendBaseURL string
	BackendTimeout time.Duration
	// PublicBaseURL is the externally reachable base of this service, used
	// in shareable item links.
	PublicBaseURL string
	// SessionDBPath is the sqlite file holding device sessions.
	SessionDBPath string
	// ProtectedPrefixes names the path prefixes that require a session.
	// Empty means the dashboard area only.
	ProtectedPrefixes []string
	Logger            *log.Logger
}

// Server hosts the web HTTP server and owns the session store.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	sessions   session.Store
}

// NewServer assembles the full route surface from the configured backend.
func NewServer(cfg Config) (*Server, error) {
	client, err := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	if err != nil {
		return nil, fmt.Errorf("init backend client: %w", err)
	}
	sessions, err := sessionsqlite.Open(cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	handler, err := NewHandler(cfg, client, sessions)
	if err != nil {
		_ = sessions.Close()
		return nil, err
	}
	return &Server{
		httpAddr: cfg.HTTPAddr,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		sessions: sessions,
	}, nil
}

// backendClients is the full gateway surface the modules consume.
type backendClients interface {
	backend.AuthClient
	backend.ItemClient
	backend.MessageClient
}

// NewHandler builds the HTTP handler with injectable collaborators. It is
// the test-oriented entrypoint; NewServer wires the real backend and store.
func NewHandler(cfg Config, clients backendClients, sessions session.Store) (http.Handler, error) {
	resolver := newSessionResolver(sessions)
	deps := module.Dependencies{
		Auth:           clients,
		Items:          clients,
		Messages:       clients,
		Sessions:       sessions,
		ResolveSession: resolver.resolveSession,
		ResolveViewer:  resolver.resolveViewer,
		PublicBaseURL:  strings.TrimSpace(cfg.PublicBaseURL),
	}
	prefixes := cfg.ProtectedPrefixes
	if len(prefixes) == 0 {
		prefixes = []string{routepath.DashboardPrefix}
	}
	composed, err := app.Composer{}.Compose(app.ComposeInput{
		Dependencies:      deps,
		AuthRequired:      resolver.authRequired(),
		ProtectedPrefixes: prefixes,
		PublicModules: []module.Module{
			publicauth.New(),
			publicitem.New(),
			contact.New(),
		},
		ProtectedModules: []module.Module{
			dashboard.New(),
			items.New(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compose web modules: %w", err)
	}

	root := http.NewServeMux()
	root.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	root.Handle(routepath.Root, composed)

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.RequestLogger(logger),
	), nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the session store held by the server.
func (s *Server) Close() {
	if s == nil || s.sessions == nil {
		return
	}
	if err := s.sessions.Close(); err != nil {
		log.Printf("close session store: %v", err)
	}
}
