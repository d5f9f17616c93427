package dev

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/passage-dev/passage/internal/config"
)

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives server events. Defaults to slog.Default.
	Logger *slog.Logger

	// OnReload is called when browsers are reloaded.
	OnReload func(clients int)
}

// Server is the development server. It serves the application shell for
// every route path so deep links resolve on the client, serves static
// assets, and pushes live reload messages over a websocket when watched
// files change.
type Server struct {
	config       *config.Config
	options      ServerOptions
	watcher      *Watcher
	reloadServer *ReloadServer
	changeCh     chan Change
	httpServer   *http.Server
	logger       *slog.Logger
	mu           sync.Mutex
	running      bool
	hotReload    bool
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	hotReload := cfg.Dev.HotReload

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "dev")

	watcher := NewWatcher(WatcherConfig{
		Paths:    CollectWatchPaths(cfg),
		Ignore:   DefaultIgnore,
		Debounce: 100 * time.Millisecond,
	})

	var reloadServer *ReloadServer
	if hotReload {
		reloadServer = NewReloadServer()
	}

	return &Server{
		config:       cfg,
		options:      options,
		watcher:      watcher,
		reloadServer: reloadServer,
		logger:       logger,
		hotReload:    hotReload,
	}
}

// Start starts the development server. It blocks until the context is
// canceled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	s.changeCh = make(chan Change, 64)
	s.watcher.OnChange(func(change Change) {
		select {
		case s.changeCh <- change:
		default:
		}
	})

	go s.watcher.Start(ctx)
	go s.processChanges(ctx)

	s.httpServer = &http.Server{
		Addr:    s.config.DevAddress(),
		Handler: s.Handler(),
	}

	s.logger.Info("dev server running", "url", s.config.DevURL())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Handler builds the dev server's HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if s.reloadEnabled() {
		r.Get(ReloadPath, s.reloadServer.HandleWebSocket)
	}

	r.NotFound(s.serveRequest)
	r.Get("/*", s.serveRequest)

	return r
}

// Stop stops the development server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	s.watcher.Stop()
	if s.reloadServer != nil {
		s.reloadServer.Close()
	}

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// serveRequest serves a static asset when one exists for the request
// path, and otherwise falls back to the application shell so client-side
// routes resolve on deep links and reloads.
func (s *Server) serveRequest(w http.ResponseWriter, r *http.Request) {
	reqPath := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
	if reqPath == "." {
		reqPath = ""
	}
	if strings.HasPrefix(reqPath, "..") {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	if reqPath != "" {
		assetPath := filepath.Join(s.config.StaticPath(), reqPath)
		if info, err := os.Stat(assetPath); err == nil && !info.IsDir() {
			http.ServeFile(w, r, assetPath)
			return
		}
	}

	s.serveShell(w, r)
}

// serveShell serves the HTML shell, injecting the reload client script
// when hot reload is enabled.
func (s *Server) serveShell(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.config.ShellPath())
	if err != nil {
		s.logger.Error("shell not found", "path", s.config.ShellPath(), "error", err)
		http.Error(w, "application shell not found", http.StatusInternalServerError)
		return
	}

	if s.reloadEnabled() {
		data = injectReloadScript(data)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// injectReloadScript inserts the reload client before </body>, or appends
// it when no closing body tag exists.
func injectReloadScript(shell []byte) []byte {
	idx := bytes.LastIndex(shell, []byte("</body>"))
	if idx < 0 {
		return append(shell, []byte(ReloadClientScript)...)
	}

	out := make([]byte, 0, len(shell)+len(ReloadClientScript))
	out = append(out, shell[:idx]...)
	out = append(out, []byte(ReloadClientScript)...)
	out = append(out, shell[idx:]...)
	return out
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(changes)
		}
	}
}

// handleChanges handles a batch of file changes.
func (s *Server) handleChanges(changes []Change) {
	if len(changes) == 0 || !s.reloadEnabled() {
		return
	}

	cssOnly := true
	var cssFile string
	for _, change := range changes {
		s.logger.Debug("file changed", "path", change.Path)
		if change.Type == ChangeCSS {
			cssFile = change.Path
		} else {
			cssOnly = false
		}
	}

	if cssOnly {
		s.reloadServer.NotifyCSS(filepath.Base(cssFile))
	} else {
		s.reloadServer.NotifyReload()
	}

	if s.options.OnReload != nil {
		s.options.OnReload(s.reloadServer.ClientCount())
	}
}

func (s *Server) reloadEnabled() bool {
	return s.hotReload && s.reloadServer != nil
}
