// Package http exposes the toolkit as a JSON API over HTTP.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nfakit/nfakit/pkg/automaton"
	"github.com/nfakit/nfakit/pkg/codec"
)

// Engine defines the interface the HTTP layer needs from the toolkit core.
type Engine interface {
	Accepts(ctx context.Context, n *automaton.NFA, input string) (bool, error)
	Concatenate(a, b *automaton.NFA) *automaton.NFA
	Union(a, b *automaton.NFA) *automaton.NFA
	Closure(a *automaton.NFA) *automaton.NFA
	Prune(n *automaton.NFA) []automaton.State
	RenderDOT(n *automaton.NFA) string
	RenderMermaid(n *automaton.NFA) string

	Save(ctx context.Context, name string, n *automaton.NFA) error
	Load(ctx context.Context, name string) (*automaton.NFA, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}

// Server carries the handler dependencies.
type Server struct {
	engine Engine
	logger *slog.Logger
}

// NewHandler builds the chi router for the API. The gatherer backs the
// /metrics endpoint; pass nil to disable it.
func NewHandler(engine Engine, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	s := &Server{engine: engine, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/automata", func(r chi.Router) {
		r.Get("/", s.list)
		r.Post("/", s.create)
		r.Route("/{name}", func(r chi.Router) {
			r.Put("/", s.put)
			r.Get("/", s.get)
			r.Delete("/", s.delete)
			r.Post("/accepts", s.accepts)
			r.Post("/prune", s.prune)
			r.Get("/graph", s.renderGraph)
		})
	})
	r.Post("/compose", s.compose)

	return r
}

// writeError maps domain errors onto HTTP status codes: invariant violations
// become 422, missing automata 404, everything else 500.
func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, automaton.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, automaton.ErrInvalidSymbol),
		errors.Is(err, automaton.ErrUnknownState),
		errors.Is(err, automaton.ErrIllegalStartTarget):
		status = http.StatusUnprocessableEntity
	}
	s.logger.Warn(op+" failed", "error", err, "status", status)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, op string) (*automaton.NFA, bool) {
	var doc codec.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		s.logger.Warn(op+": invalid request body", "error", err)
		return nil, false
	}
	n, err := codec.Decode(&doc)
	if err != nil {
		s.writeError(w, op, err)
		return nil, false
	}
	return n, true
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	names, err := s.engine.List(r.Context())
	if err != nil {
		s.writeError(w, "list", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"automata": names})
}

// create stores a new automaton under a server-assigned name.
func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	n, ok := s.decodeBody(w, r, "create")
	if !ok {
		return
	}
	name := uuid.NewString()
	if err := s.engine.Save(r.Context(), name, n); err != nil {
		s.writeError(w, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"name": name})
}

func (s *Server) put(w http.ResponseWriter, r *http.Request) {
	n, ok := s.decodeBody(w, r, "put")
	if !ok {
		return
	}
	name := chi.URLParam(r, "name")
	if err := s.engine.Save(r.Context(), name, n); err != nil {
		s.writeError(w, "put", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	n, err := s.engine.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, codec.Encode(n))
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) accepts(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Input string `json:"input"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	n, err := s.engine.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, "accepts", err)
		return
	}

	accepted, err := s.engine.Accepts(r.Context(), n, body.Input)
	if err != nil {
		s.writeError(w, "accepts", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"accepted": accepted})
}

// prune removes unreachable states and persists the pruned automaton back
// under the same name.
func (s *Server) prune(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	n, err := s.engine.Load(r.Context(), name)
	if err != nil {
		s.writeError(w, "prune", err)
		return
	}

	removed := s.engine.Prune(n)
	if err := s.engine.Save(r.Context(), name, n); err != nil {
		s.writeError(w, "prune", err)
		return
	}

	states := make([]int, 0, len(removed))
	for _, st := range removed {
		states = append(states, int(st))
	}
	writeJSON(w, http.StatusOK, map[string][]int{"removed": states})
}

func (s *Server) renderGraph(w http.ResponseWriter, r *http.Request) {
	n, err := s.engine.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, "graph", err)
		return
	}

	var out string
	switch format := r.URL.Query().Get("format"); format {
	case "", "dot":
		out = s.engine.RenderDOT(n)
	case "mermaid":
		out = s.engine.RenderMermaid(n)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown format %q", format)})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(out))
}

func (s *Server) compose(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Op    string          `json:"op"`
		Left  *codec.Document `json:"left"`
		Right *codec.Document `json:"right"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if body.Left == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing left operand"})
		return
	}

	left, err := codec.Decode(body.Left)
	if err != nil {
		s.writeError(w, "compose", err)
		return
	}

	var result *automaton.NFA
	switch body.Op {
	case "closure":
		result = s.engine.Closure(left)
	case "concat", "union":
		if body.Right == nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing right operand"})
			return
		}
		right, err := codec.Decode(body.Right)
		if err != nil {
			s.writeError(w, "compose", err)
			return
		}
		if body.Op == "concat" {
			result = s.engine.Concatenate(left, right)
		} else {
			result = s.engine.Union(left, right)
		}
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown op %q", body.Op)})
		return
	}

	writeJSON(w, http.StatusOK, codec.Encode(result))
}
