// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/imagestore"
	"github.com/danielhkuo/mood-diary/middleware"
)

type SystemHandler struct {
	svc    *diary.Service
	images imagestore.Store
}

func NewSystemHandler(svc *diary.Service, images imagestore.Store) *SystemHandler {
	return &SystemHandler{svc: svc, images: images}
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		middleware.JSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Image handles GET /uploads/{filename}. Local images are served from
// disk; object storage images redirect to their public URL.
func (h *SystemHandler) Image(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")
	if !imagestore.ValidName(name) {
		http.NotFound(w, r)
		return
	}

	local, ok := h.images.(*imagestore.LocalStore)
	if !ok {
		http.Redirect(w, r, h.images.URL(name), http.StatusFound)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, filepath.Join(local.Dir(), name))
}
