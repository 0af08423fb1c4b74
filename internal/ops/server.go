// Package ops exposes a minimal health endpoint for container deployments.
package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	srv     *http.Server
	started time.Time
}

func New(port string) *Server {
	s := &Server{started: time.Now()}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)

	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	return s
}

// Start blocks serving until Shutdown or a listener error.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}
