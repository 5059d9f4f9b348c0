package httpserver

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Server struct {
	mux  *chi.Mux
	sess *scs.SessionManager
}

func New(sess *scs.SessionManager) *Server {
	m := chi.NewRouter()

	// Middlewares before any routes. MethodOverride must run before chi
	// matches the method; LoadAndSave wraps every handler that touches the
	// session or flashes.
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))
	m.Use(MethodOverride)
	m.Use(sess.LoadAndSave)

	return &Server{mux: m, sess: sess}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
