package preview

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/domweave/domweave/internal/config"
	"github.com/domweave/domweave/internal/errors"
	"github.com/domweave/domweave/pkg/render"
	"github.com/domweave/domweave/pkg/schema"
)

// ServerOptions configures the preview server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Registry receives the preview metrics. A fresh registry is
	// created when nil, so multiple servers never collide.
	Registry *prometheus.Registry

	// Verbose enables change logging.
	Verbose bool

	// OnReload is called after browsers are told to reload.
	OnReload func(clients int)
}

// Server serves the schema reference page with live reload.
type Server struct {
	config  *config.Config
	options ServerOptions

	hub      *ReloadHub
	watcher  *Watcher
	metrics  *metrics
	registry *prometheus.Registry
	tracer   trace.Tracer
	renderer *render.Renderer

	httpServer *http.Server
	changeCh   chan Change

	mu        sync.RWMutex
	running   bool
	schema    *schema.Schema
	schemaErr error
}

// NewServer creates a preview server for the given project.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config

	registry := options.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	watchPaths := append([]string(nil), cfg.Preview.Watch...)
	if cfg.Schema != "" {
		watchPaths = append(watchPaths, filepath.Join(cfg.Dir(), cfg.Schema))
	}

	s := &Server{
		config:   cfg,
		options:  options,
		hub:      NewReloadHub(),
		metrics:  newMetrics(registry),
		registry: registry,
		tracer:   otel.Tracer("domweave/preview"),
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
	s.watcher = NewWatcher(WatcherConfig{Paths: watchPaths})
	s.hub.OnClientCount(func(count int) {
		s.metrics.reloadClients.Set(float64(count))
	})

	s.reloadSchema()
	return s
}

// Handler returns the preview HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/_domweave/reload", s.hub.HandleWebSocket)

	return r
}

// Start runs the preview server until the context is cancelled.
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

	addr := fmt.Sprintf("%s:%d", s.config.Preview.Host, s.config.Preview.Port)
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- errors.FromError(err, "E401").
				WithDetail(fmt.Sprintf("could not listen on %s", addr))
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

// Stop stops the preview server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	s.watcher.Stop()
	s.hub.Close()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// URL returns the address the server listens on.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s:%d", s.config.Preview.Host, s.config.Preview.Port)
}

// handleIndex renders the schema reference page.
func (s *Server) handleIndex(w http.ResponseWriter, req *http.Request) {
	s.mu.RLock()
	sc := s.schema
	loadErr := s.schemaErr
	s.mu.RUnlock()

	if loadErr != nil {
		http.Error(w, formatError(loadErr), http.StatusInternalServerError)
		return
	}

	_, span := s.tracer.Start(req.Context(), "preview.render", trace.WithAttributes(
		attribute.Int("schema.version", sc.Version),
		attribute.Int("schema.elements", len(sc.Elements)),
		attribute.Int("schema.attributes", len(sc.Attributes)),
		attribute.Int("schema.events", len(sc.Events)),
	))
	defer span.End()

	start := time.Now()
	var buf bytes.Buffer
	err := s.renderer.RenderPage(&buf, render.PageData{
		Title:        "domweave binding reference",
		InlineCSS:    referenceCSS,
		InlineScript: ReloadClientScript,
		Body:         BuildReferencePage(sc),
	})
	s.metrics.renderDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.rendersTotal.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.rendersTotal.WithLabelValues("success").Inc()
	span.SetAttributes(attribute.Int("render.bytes", buf.Len()))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// processChanges serializes change handling and coalesces bursts.
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

// handleChanges reloads the schema and notifies browsers.
func (s *Server) handleChanges(changes []Change) {
	if len(changes) == 0 {
		return
	}

	for _, change := range changes {
		s.log("Changed: %s", change.Path)
	}

	s.metrics.schemaReloads.Inc()
	if err := s.reloadSchema(); err != nil {
		s.hub.NotifyError(formatError(err))
		return
	}

	s.hub.ClearError()
	s.hub.NotifyReload()
	if s.options.OnReload != nil {
		s.options.OnReload(s.hub.ClientCount())
	}
}

// reloadSchema loads the configured schema, falling back to the
// embedded default table when the project sets no schema path.
func (s *Server) reloadSchema() error {
	var (
		sc  *schema.Schema
		err error
	)
	if s.config.Schema == "" {
		sc, err = schema.Default()
	} else {
		sc, err = schema.LoadFile(filepath.Join(s.config.Dir(), s.config.Schema))
	}

	s.mu.Lock()
	if err == nil {
		s.schema = sc
	}
	s.schemaErr = err
	s.mu.Unlock()
	return err
}

// formatError prefers the structured formatter for registry errors.
func formatError(err error) string {
	var we *errors.WeaveError
	if stderrors.As(err, &we) {
		return we.FormatCompact()
	}
	return err.Error()
}

func (s *Server) log(format string, args ...any) {
	if s.options.Verbose {
		fmt.Fprintf(os.Stderr, "[preview] "+format+"\n", args...)
	}
}
