package main

import (
	"database/sql"
	"net/http"

	"github.com/crucial707/cronlens/internal/config"
	"github.com/crucial707/cronlens/internal/handlers"
	"github.com/crucial707/cronlens/internal/middleware"
	"github.com/crucial707/cronlens/internal/repo"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newRouter(db *sql.DB, cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSEnabled()))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			handlers.JSONError(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	cronH := &handlers.CronHandler{}
	recurrenceH := &handlers.RecurrenceHandler{}
	presetH := &handlers.PresetHandler{Repo: repo.NewPresetRepo(db)}

	limit := cfg.RateLimitPerMinute
	if limit <= 0 {
		limit = 120
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.PerMinute(limit).Middleware)
		r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

		r.Get("/cron/normalize", cronH.Normalize)
		r.Post("/cron/normalize", cronH.Normalize)
		r.Post("/recurrence/describe", recurrenceH.Describe)
		r.Get("/recurrence/options", recurrenceH.Options)

		r.Get("/presets", presetH.ListPresets)
		r.Get("/presets/{id}", presetH.GetPreset)
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWT([]byte(cfg.JWTSecret)))
			r.Post("/presets", presetH.CreatePreset)
			r.Put("/presets/{id}", presetH.UpdatePreset)
			r.Delete("/presets/{id}", presetH.DeletePreset)
		})
	})

	return r
}
