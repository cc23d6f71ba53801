// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/middleware"
	"github.com/danielhkuo/mood-diary/models"
	"github.com/danielhkuo/mood-diary/views"
)

type DiaryHandler struct {
	base
}

func NewDiaryHandler(svc *diary.Service, pages *views.Renderer, cfg cliparse.Config) *DiaryHandler {
	return &DiaryHandler{base: newBase(svc, pages, cfg)}
}

// Index handles GET /
func (h *DiaryHandler) Index(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	h.renderIndex(w, r, http.StatusOK, views.IndexPage{Base: h.pageBase(l, l.T("Emotion Diary"))})
}

// Upload handles POST /
func (h *DiaryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	page := views.IndexPage{Base: h.pageBase(l, l.T("Emotion Diary"))}

	up, err := h.readUpload(r)
	if err != nil {
		slog.Warn("failed to read upload form", "error", err)
		status, msg := h.formFailure(l, err)
		page.Error = msg
		h.renderIndex(w, r, status, page)
		return
	}
	page.Diary = up.Diary

	res, err := h.svc.Upload(r.Context(), up)
	if err != nil {
		status, msg := uploadFailure(l, err)
		page.Error = msg
		h.renderIndex(w, r, status, page)
		return
	}

	page.Diary = ""
	page.Summary = summary(l, res.Record)
	page.ImageURL = h.svc.ImageURL(res.Record.Filename)
	h.renderIndex(w, r, http.StatusOK, page)
}

// renderIndex fills in today's records and renders the upload page
func (h *DiaryHandler) renderIndex(w http.ResponseWriter, r *http.Request, status int, page views.IndexPage) {
	records, err := h.svc.History(r.Context(), h.svc.Now())
	if err != nil {
		slog.Error("failed to list today's records", "error", err)
	}
	page.Records = h.recordViews(records)
	h.render(w, status, views.PageIndex, page)
}

// CreateRecord handles POST /api/records
func (h *DiaryHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)

	up, err := h.readUpload(r)
	if err != nil {
		slog.Warn("failed to read upload form", "error", err)
		status, msg := h.formFailure(l, err)
		middleware.ErrorResponse(w, status, msg)
		return
	}

	res, err := h.svc.Upload(r.Context(), up)
	if err != nil {
		status, msg := uploadFailure(l, err)
		middleware.ErrorResponse(w, status, msg)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.UploadResponse{
		Record:  h.recordResponse(l, res.Record),
		Summary: summary(l, res.Record),
	})
}
