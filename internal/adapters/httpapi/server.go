// Package httpapi exposes a loaded story tree over a small read-only JSON
// API, plus the prometheus metrics endpoint. The traversal session stays on
// the console; this adapter only serves inspection of the structure.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/fabula/pkg/story"
)

// Server serves a single story tree. The tree must not be mutated while the
// server is running.
type Server struct {
	tree   *story.Tree[string]
	logger *slog.Logger
}

// nodeResponse is the wire shape of a story node.
type nodeResponse struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Children []string `json:"children"`
	Root     bool     `json:"root,omitempty"`
}

// NewHandler creates the HTTP handler for the story API.
func NewHandler(tree *story.Tree[string], logger *slog.Logger) http.Handler {
	s := &Server{tree: tree, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.healthz)
	r.Get("/nodes", s.listNodes)
	r.Get("/nodes/{id}", s.getNode)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// listNodes returns every node in display order.
func (s *Server) listNodes(w http.ResponseWriter, r *http.Request) {
	nodes := make([]nodeResponse, 0, s.tree.Len())
	for _, id := range s.tree.IDs() {
		node, ok := s.tree.Find(id)
		if !ok {
			continue
		}
		nodes = append(nodes, s.toResponse(node))
	}
	s.writeJSON(w, nodes)
}

func (s *Server) getNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	node, ok := s.tree.Find(id)
	if !ok {
		http.Error(w, "node not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, s.toResponse(node))
}

func (s *Server) toResponse(node *story.Node[string]) nodeResponse {
	children := make([]string, 0, len(node.Children()))
	for _, c := range node.Children() {
		children = append(children, c.ID)
	}
	resp := nodeResponse{
		ID:       node.ID,
		Text:     s.tree.Render(node),
		Children: children,
	}
	if root, ok := s.tree.Root(); ok && root == node {
		resp.Root = true
	}
	return resp
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
