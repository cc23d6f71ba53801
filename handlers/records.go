// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/i18n"
	"github.com/danielhkuo/mood-diary/middleware"
	"github.com/danielhkuo/mood-diary/models"
	"github.com/danielhkuo/mood-diary/views"
)

type RecordHandler struct {
	base
}

func NewRecordHandler(svc *diary.Service, pages *views.Renderer, cfg cliparse.Config) *RecordHandler {
	return &RecordHandler{base: newBase(svc, pages, cfg)}
}

// History handles GET /history
func (h *RecordHandler) History(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	now := h.svc.Now()
	day := parseDay(r, now, h.svc.Location())

	records, err := h.svc.History(r.Context(), day)
	if err != nil {
		slog.Error("failed to list records", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, l.T(i18n.MsgRecordStorage))
		return
	}

	date := day.Format(dateLayout)
	isToday := date == now.Format(dateLayout)
	title := l.T("History for %s", date)
	if isToday {
		title = l.T("Today's history")
	}

	h.render(w, http.StatusOK, views.PageHistory, views.HistoryPage{
		Base:    h.pageBase(l, title),
		Date:    date,
		Prev:    day.AddDate(0, 0, -1).Format(dateLayout),
		Next:    day.AddDate(0, 0, 1).Format(dateLayout),
		IsToday: isToday,
		Records: h.recordViews(records),
	})
}

// EditForm handles GET /edit/{id}
func (h *RecordHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	id, err := parseID(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, l.T(i18n.MsgBadID))
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, diary.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, l.T(i18n.MsgNotFound))
		return
	}
	if err != nil {
		slog.Error("failed to load record", "record_id", id, "error", err)
		h.renderError(w, r, http.StatusInternalServerError, l.T(i18n.MsgRecordStorage))
		return
	}

	h.render(w, http.StatusOK, views.PageEdit, views.EditPage{
		Base:   h.pageBase(l, l.T("Edit diary")),
		Record: h.recordView(rec),
	})
}

// Edit handles POST /edit/{id}
func (h *RecordHandler) Edit(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	id, err := parseID(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, l.T(i18n.MsgBadID))
		return
	}

	_, err = h.svc.UpdateDiary(r.Context(), id, r.FormValue("diary"))
	if errors.Is(err, diary.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, l.T(i18n.MsgNotFound))
		return
	}
	if err != nil {
		slog.Error("failed to update diary", "record_id", id, "error", err)
		h.renderError(w, r, http.StatusInternalServerError, l.T(i18n.MsgRecordStorage))
		return
	}

	http.Redirect(w, r, l.Link("/history"), http.StatusSeeOther)
}

// Delete handles POST /delete/{id}
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	id, err := parseID(r)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, l.T(i18n.MsgBadID))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete record", "record_id", id, "error", err)
		h.renderError(w, r, http.StatusInternalServerError, l.T(i18n.MsgRecordStorage))
		return
	}

	http.Redirect(w, r, l.Link("/history"), http.StatusSeeOther)
}

// ListRecords handles GET /api/records
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	day := parseDay(r, h.svc.Now(), h.svc.Location())

	records, err := h.svc.History(r.Context(), day)
	if err != nil {
		slog.Error("failed to list records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.ListRecordsResponse{
		Date:    day.Format(dateLayout),
		Records: make([]models.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, h.recordResponse(l, rec))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetRecord handles GET /api/records/{id}
func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	id, err := parseID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, l.T(i18n.MsgBadID))
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, diary.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, l.T(i18n.MsgNotFound))
		return
	}
	if err != nil {
		slog.Error("failed to load record", "record_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.recordResponse(l, rec))
}

// UpdateRecord handles PATCH /api/records/{id}
func (h *RecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	id, err := parseID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, l.T(i18n.MsgBadID))
		return
	}

	var req models.UpdateDiaryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rec, err := h.svc.UpdateDiary(r.Context(), id, req.Diary)
	if errors.Is(err, diary.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, l.T(i18n.MsgNotFound))
		return
	}
	if err != nil {
		slog.Error("failed to update diary", "record_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.recordResponse(l, rec))
}

// DeleteRecord handles DELETE /api/records/{id}
func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	id, err := parseID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, l.T(i18n.MsgBadID))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete record", "record_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
