package preview

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeebo/blake3"

	xerrors "github.com/cyb3rnet/xhtml/internal/errors"
	"github.com/cyb3rnet/xhtml/pkg/document"
)

// BuildFunc builds a fresh, assembled document.
type BuildFunc func(ctx context.Context) (*document.Document, error)

// Config configures the preview server.
type Config struct {
	// Addr is the listen address.
	Addr string

	// ContentType is the media type documents are served with
	// (default: "text/html"). The charset is appended.
	ContentType string

	// LiveReload injects the reload script and enables the websocket.
	LiveReload bool

	// Gatherer backs /metrics. The route is omitted when nil.
	Gatherer prometheus.Gatherer

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server is the preview HTTP server.
type Server struct {
	config Config
	build  BuildFunc
	reload *ReloadServer
	router chi.Router
	logger *slog.Logger
}

// New creates a preview server for the documents produced by build.
func New(config Config, build BuildFunc) *Server {
	if config.ContentType == "" {
		config.ContentType = "text/html"
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config: config,
		build:  build,
		reload: NewReloadServer(),
		logger: logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleDocument)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	if s.config.LiveReload {
		r.Get(ReloadPath, s.reload.HandleWebSocket)
	}
	if s.config.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Reload returns the live-reload hub.
func (s *Server) Reload() *ReloadServer {
	return s.reload
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return xerrors.New(xerrors.CodePreviewFailed).Wrap(err)
	case <-ctx.Done():
	}

	s.reload.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return xerrors.New(xerrors.CodePreviewFailed).Wrap(err)
	}
	return nil
}

// Watch reloads connected browsers when any of paths changes: a clean build
// triggers a reload, a failing one shows the error.
func (s *Server) Watch(ctx context.Context, paths []string, debounce time.Duration) (*Watcher, error) {
	w, err := NewWatcher(paths, debounce, s.logger)
	if err != nil {
		return nil, xerrors.New(xerrors.CodePreviewFailed).Wrap(err)
	}
	w.OnChange(func(path string) {
		if _, err := s.render(ctx); err != nil {
			s.logger.Warn("rebuild failed", "file", path, "error", err)
			s.reload.NotifyError(path, formatError(err))
			return
		}
		s.logger.Info("rebuilt", "file", path)
		s.reload.ClearError()
		s.reload.NotifyReload(path)
	})
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, xerrors.New(xerrors.CodePreviewFailed).Wrap(err)
	}
	return w, nil
}

type page struct {
	body        []byte
	contentType string
	etag        string
}

func (s *Server) render(ctx context.Context) (*page, error) {
	d, err := s.build(ctx)
	if err != nil {
		return nil, err
	}
	out, err := d.Generate()
	if err != nil {
		return nil, err
	}
	if s.config.LiveReload {
		out = injectBeforeBodyEnd(out, ReloadScript)
	}

	var buf bytes.Buffer
	if _, err := d.Renderer().Encode(&buf, out); err != nil {
		return nil, err
	}

	sum := blake3.Sum256(buf.Bytes())
	return &page{
		body:        buf.Bytes(),
		contentType: d.Renderer().ContentType(s.config.ContentType),
		etag:        `"` + hex.EncodeToString(sum[:16]) + `"`,
	}, nil
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	p, err := s.render(r.Context())
	if err != nil {
		s.logger.Error("build failed", "error", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(formatError(err)))
		return
	}

	w.Header().Set("ETag", p.etag)
	w.Header().Set("Cache-Control", "no-cache")
	if match := r.Header.Get("If-None-Match"); match != "" && match == p.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", p.contentType)
	w.Write(p.body)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// injectBeforeBodyEnd inserts snippet before the last </body>, or appends it
// when there is none.
func injectBeforeBodyEnd(doc, snippet string) string {
	i := strings.LastIndex(doc, "</body>")
	if i < 0 {
		return doc + snippet
	}
	return doc[:i] + snippet + doc[i:]
}

func formatError(err error) string {
	var me *xerrors.MarkupError
	if errors.As(err, &me) {
		return me.FormatCompact()
	}
	return err.Error()
}
