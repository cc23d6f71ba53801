// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/handlers"
	"github.com/danielhkuo/mood-diary/imagestore"
	"github.com/danielhkuo/mood-diary/middleware"
	"github.com/danielhkuo/mood-diary/views"
)

// UploadsPrefix is the route stored images are served under
const UploadsPrefix = "/uploads/"

func NewRouter(svc *diary.Service, images imagestore.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()
	pages := views.Must()

	// Initialize handlers
	diaryHandler := handlers.NewDiaryHandler(svc, pages, cfg)
	recordHandler := handlers.NewRecordHandler(svc, pages, cfg)
	statsHandler := handlers.NewStatsHandler(svc, pages, cfg)
	systemHandler := handlers.NewSystemHandler(svc, images)

	limit := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.LimitBody(cfg.MaxUploadBytes, h)
	}

	// Health check and stored images
	mux.HandleFunc("GET /health", systemHandler.Health)
	mux.HandleFunc("GET "+UploadsPrefix+"{filename}", systemHandler.Image)

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(diaryHandler.Index))
	mux.HandleFunc("POST /{$}", middleware.WithLogging(limit(diaryHandler.Upload)))
	mux.HandleFunc("GET /history", middleware.WithLogging(recordHandler.History))
	mux.HandleFunc("GET /edit/{id}", middleware.WithLogging(recordHandler.EditForm))
	mux.HandleFunc("POST /edit/{id}", middleware.WithLogging(recordHandler.Edit))
	mux.HandleFunc("POST /delete/{id}", middleware.WithLogging(recordHandler.Delete))
	mux.HandleFunc("GET /month_stats", middleware.WithLogging(statsHandler.MonthStats))

	// JSON API, reachable cross-origin
	api := http.NewServeMux()
	api.HandleFunc("POST /api/records", middleware.WithLogging(limit(diaryHandler.CreateRecord)))
	api.HandleFunc("GET /api/records", middleware.WithLogging(recordHandler.ListRecords))
	api.HandleFunc("GET /api/records/{id}", middleware.WithLogging(recordHandler.GetRecord))
	api.HandleFunc("PATCH /api/records/{id}", middleware.WithLogging(recordHandler.UpdateRecord))
	api.HandleFunc("DELETE /api/records/{id}", middleware.WithLogging(recordHandler.DeleteRecord))
	api.HandleFunc("GET /api/stats", middleware.WithLogging(statsHandler.GetStats))
	mux.Handle("/api/", middleware.CORS(api))

	return middleware.Recover(mux)
}
