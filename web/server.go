/* server.go
 * Contains the router setup and the HTTP server Start function
 */

package web

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	corslib "github.com/rs/cors"
)

// NewRouter builds the chi router with all routes bound to handler methods
// that have access to the API facade
func NewRouter(cfg Config) *chi.Mux {
	s := &Server{
		api:        cfg.API,
		syncSecret: cfg.SyncSecret,
	}

	r := chi.NewRouter()

	c := corslib.New(corslib.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	})
	r.Use(c.Handler)

	r.Route("/predictions", func(r chi.Router) {
		r.Post("/", s.SubmitPrediction)
		r.Get("/", s.ListPredictions)
		r.Get("/names", s.PredictionNames)
		r.Get("/{id}", s.GetPrediction)
		r.Get("/{id}/report", s.PredictionReport)
		r.Delete("/{id}", s.DeletePrediction)
	})
	r.Get("/leaderboard", s.Leaderboard)
	r.Get("/results", s.Results)
	r.Post("/sync", s.Sync)

	return r
}

// Start initializes and starts the HTTP server with the given configuration.
// Blocks until the server stops
func Start(cfg Config) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      NewRouter(cfg),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Println("HTTP server listening on", cfg.Addr)
	return srv.ListenAndServe()
}
