package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimw.RealIP)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/render.svg", s.handleRender("svg", "image/svg+xml"))
	r.Get("/render.png", s.handleRender("png", "image/png"))
	r.Get("/theme.css", s.handleThemeCSS)

	r.Route("/api", func(api chi.Router) {
		api.Get("/items", s.handleItems)
		api.Get("/layout", s.handleLayout)
		api.Post("/reload", s.handleReload)
		api.Get("/theme", s.handleGetTheme)
		api.Put("/theme", s.handlePutTheme)
	})

	return r
}
