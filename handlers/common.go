// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"

	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/emotion"
	"github.com/danielhkuo/mood-diary/i18n"
	"github.com/danielhkuo/mood-diary/middleware"
	"github.com/danielhkuo/mood-diary/models"
	"github.com/danielhkuo/mood-diary/views"
)

const dateLayout = "2006-01-02"

// multipartMemory is how much of an upload is held in memory before
// spilling to temp files
const multipartMemory = 8 << 20

var errBadID = errors.New("invalid record id")

// base holds what every page and API handler needs
type base struct {
	svc   *diary.Service
	pages *views.Renderer
	cfg   cliparse.Config
	lang  language.Tag
}

func newBase(svc *diary.Service, pages *views.Renderer, cfg cliparse.Config) base {
	lang, ok := i18n.ParseTag(cfg.DefaultLang)
	if !ok {
		lang = language.Korean
	}
	return base{svc: svc, pages: pages, cfg: cfg, lang: lang}
}

func (b base) locale(r *http.Request) views.Locale {
	return views.NewLocale(i18n.ResolveTag(r, b.lang))
}

func (b base) pageBase(l views.Locale, title string) views.Base {
	return views.Base{L: l, Title: title, Loc: b.svc.Location()}
}

func (b base) render(w http.ResponseWriter, status int, page string, data any) {
	if err := b.pages.Render(w, status, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (b base) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	l := b.locale(r)
	b.render(w, status, views.PageError, views.ErrorPage{
		Base:    b.pageBase(l, l.T("Error")),
		Status:  status,
		Message: message,
	})
}

func (b base) recordView(rec models.EmotionRecord) views.Record {
	return views.Record{EmotionRecord: rec, ImageURL: b.svc.ImageURL(rec.Filename)}
}

func (b base) recordViews(recs []models.EmotionRecord) []views.Record {
	out := make([]views.Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, b.recordView(rec))
	}
	return out
}

func (b base) recordResponse(l views.Locale, rec models.EmotionRecord) models.RecordResponse {
	return models.RecordResponse{
		EmotionRecord: rec,
		EmotionName:   l.Emotion(rec.Emotion),
		ImageURL:      b.svc.ImageURL(rec.Filename),
	}
}

// summary is the one-line analysis result shown after an upload
func summary(l views.Locale, rec models.EmotionRecord) string {
	return l.T(i18n.MsgSummary, l.Emotion(rec.Emotion), rec.Confidence*100)
}

// parseID reads the {id} path value
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errBadID
	}
	return id, nil
}

// parseDay reads ?date=YYYY-MM-DD in loc, falling back to now
func parseDay(r *http.Request, now time.Time, loc *time.Location) time.Time {
	if v := r.URL.Query().Get("date"); v != "" {
		if day, err := time.ParseInLocation(dateLayout, v, loc); err == nil {
			return day
		}
	}
	return now
}

// parseMonth reads ?year=&month=, falling back to the current month for
// anything missing or non-numeric
func parseMonth(r *http.Request, now time.Time) (int, int) {
	year, month := now.Year(), int(now.Month())
	if v, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		year = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil {
		month = v
	}
	return year, month
}

// readUpload pulls the "image" file and "diary" field from a multipart
// form. A missing file is not an error here; the service reports it.
func (b base) readUpload(r *http.Request) (diary.Upload, error) {
	var up diary.Upload

	err := r.ParseMultipartForm(multipartMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return up, err
	}
	up.Diary = r.FormValue("diary")

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return up, nil
	}
	if err != nil {
		return up, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return up, err
	}

	up.Filename = header.Filename
	up.Data = data
	up.ContentType = contentType(header, data)
	return up, nil
}

func contentType(header *multipart.FileHeader, data []byte) string {
	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	return http.DetectContentType(data)
}

// formFailure maps a form read error to a status and message
func (b base) formFailure(l views.Locale, err error) (int, string) {
	if middleware.IsTooLarge(err) {
		return http.StatusRequestEntityTooLarge, l.T(i18n.MsgTooLarge, humanize.Bytes(uint64(b.cfg.MaxUploadBytes)))
	}
	return http.StatusBadRequest, l.T(i18n.MsgBadForm)
}

// uploadFailure maps a diary.Service.Upload error to a status and message
func uploadFailure(l views.Locale, err error) (int, string) {
	switch {
	case errors.Is(err, diary.ErrNoImage):
		return http.StatusBadRequest, l.T(i18n.MsgNoImage)
	case errors.Is(err, diary.ErrNoFace):
		return http.StatusUnprocessableEntity, l.T(i18n.MsgNoFace)
	case errors.Is(err, diary.ErrAnalysis):
		cause := strings.TrimPrefix(err.Error(), diary.ErrAnalysis.Error()+": ")
		return http.StatusBadGateway, l.T(i18n.MsgAnalysisFailed, cause)
	case errors.Is(err, diary.ErrImageStorage):
		return http.StatusInternalServerError, l.T(i18n.MsgImageStorage)
	default:
		return http.StatusInternalServerError, l.T(i18n.MsgRecordStorage)
	}
}

// emotionNames maps every label to its display name
func emotionNames(l views.Locale) map[emotion.Label]string {
	names := make(map[emotion.Label]string, len(emotion.Labels))
	for _, label := range emotion.Labels {
		names[label] = l.Emotion(label)
	}
	return names
}
