package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/chanderbhanswami/lantern/internal/deck"
	"github.com/chanderbhanswami/lantern/internal/engine"
)

const serverTimeout = 10 * time.Second

// Server exposes a running presenter over HTTP for remote control.
type Server struct {
	engine *engine.Engine
	deck   *deck.Deck
	logger *zap.Logger
	bind   string

	mu       sync.Mutex
	listener net.Listener
	http     *http.Server
}

// NewServer builds a Server that will listen on bind once started.
func NewServer(bind string, eng *engine.Engine, d *deck.Deck, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		engine: eng,
		deck:   d,
		logger: logger,
		bind:   bind,
	}
}

// Start binds the listener and serves in the background. The bound address
// is available from URL afterwards, which matters when bind requests an
// ephemeral port.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return fmt.Errorf("remote server already started")
	}

	ln, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("bind remote control %q: %w", s.bind, err)
	}
	s.listener = ln
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: serverTimeout,
	}

	s.logger.Info("remote control listening", zap.String("addr", ln.Addr().String()))
	go func() {
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Warn("remote control server stopped", zap.Error(err))
		}
	}()
	return nil
}

// URL returns the base URL of the running server, or empty before Start.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return "http://" + s.listener.Addr().String()
}

// Shutdown drains in-flight requests and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Handler constructs the chi router with shared middleware and API routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(serverTimeout))
	r.Use(s.requestLog)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no route for %s", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path))
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/state", s.handleState)
	r.Get("/api/deck", s.handleDeck)
	r.Post("/api/next", s.handleNext)
	r.Post("/api/previous", s.handlePrevious)
	r.Post("/api/autoplay/toggle", s.handleToggleAutoplay)
	r.Post("/api/goto/{index}", s.handleGoTo)

	return r
}

// requestLog records every control call; the operator's log file is the
// only place remote activity is visible.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("remote request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("from", r.RemoteAddr))
	})
}

// handleHealth lets a remote probe reachability before it starts sending
// commands.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeState(w)
}

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NewDeckResponse(s.deck))
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.engine.Next(engine.CauseAPI)
	s.writeState(w)
}

func (s *Server) handlePrevious(w http.ResponseWriter, r *http.Request) {
	s.engine.Previous(engine.CauseAPI)
	s.writeState(w)
}

func (s *Server) handleToggleAutoplay(w http.ResponseWriter, r *http.Request) {
	s.engine.ToggleAutoplay()
	s.writeState(w)
}

// handleGoTo rejects non-numeric indexes but answers 200 for out-of-range
// ones. The engine drops those silently, so the remote just sees an
// unchanged snapshot, same as a local key press past the end of the deck.
func (s *Server) handleGoTo(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("index %q is not a number", raw))
		return
	}
	s.engine.GoTo(index, engine.CauseAPI)
	s.writeState(w)
}

func (s *Server) writeState(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, NewStateResponse(s.engine.State(), s.deck))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
