// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/i18n"
	"github.com/danielhkuo/mood-diary/middleware"
	"github.com/danielhkuo/mood-diary/models"
	"github.com/danielhkuo/mood-diary/views"
)

type StatsHandler struct {
	base
}

func NewStatsHandler(svc *diary.Service, pages *views.Renderer, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{base: newBase(svc, pages, cfg)}
}

// MonthStats handles GET /month_stats
func (h *StatsHandler) MonthStats(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	year, month := parseMonth(r, h.svc.Now())

	stats, err := h.svc.MonthStats(r.Context(), year, month)
	if err != nil {
		slog.Error("failed to compute month stats", "year", year, "month", month, "error", err)
		h.renderError(w, r, http.StatusInternalServerError, l.T(i18n.MsgRecordStorage))
		return
	}

	h.render(w, http.StatusOK, views.PageMonthStats, views.MonthStatsPage{
		Base:   h.pageBase(l, l.T("Monthly statistics")),
		Stats:  stats,
		Years:  h.svc.Years(),
		Months: views.AllMonths,
	})
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	l := h.locale(r)
	year, month := parseMonth(r, h.svc.Now())

	stats, err := h.svc.MonthStats(r.Context(), year, month)
	if err != nil {
		slog.Error("failed to compute month stats", "year", year, "month", month, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MonthStatsResponse{
		MonthStats: stats,
		Names:      emotionNames(l),
		Years:      h.svc.Years(),
	})
}
