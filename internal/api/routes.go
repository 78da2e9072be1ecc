package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes returns the HTTP handler for the API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/healthz"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/score", s.handleScore)
		r.Post("/tier/{tier}", s.handleSelectTier)

		r.Route("/levels", func(r chi.Router) {
			r.Post("/move", s.handleMoveLevel)
			r.Get("/{tier}/{index}", s.handleGetLevel)
			r.Post("/{tier}/{index}/answer", s.handleLevelAnswer)
			r.Post("/{tier}/{index}/hint", s.handleLevelHint)
		})

		r.Route("/missions", func(r chi.Router) {
			r.Post("/move", s.handleMoveMission)
			r.Get("/{index}", s.handleGetMission)
			r.Post("/{index}/answer", s.handleMissionAnswer)
			r.Post("/{index}/hint", s.handleMissionHint)
		})

		r.Route("/daily", func(r chi.Router) {
			r.Get("/", s.handleGetDaily)
			r.Put("/{date}", s.handleLoadDaily)
			r.Post("/{date}/answer", s.handleDailyAnswer)
			r.Post("/{date}/hint", s.handleDailyHint)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		Error(w, http.StatusNotFound, "not_found", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		Error(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" not allowed on "+r.URL.Path)
	})
	return r
}
