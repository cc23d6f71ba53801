// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the mood diary.

# Handler Types

Each handler is a struct built from the diary service, the page renderer
and the config:

  - DiaryHandler: upload form and photo analysis
  - RecordHandler: daily history, diary edits and deletes
  - StatsHandler: monthly emotion counts
  - SystemHandler: health check and stored image serving

	diaryHandler := handlers.NewDiaryHandler(svc, pages, cfg)

# Pages

	GET  /             → Index (upload form and today's records)
	POST /             → Upload (multipart "image" and "diary")
	GET  /history      → History (?date=YYYY-MM-DD, default today)
	GET  /edit/{id}    → EditForm
	POST /edit/{id}    → Edit (redirects to /history)
	POST /delete/{id}  → Delete (redirects to /history)
	GET  /month_stats  → MonthStats (?year=&month=, default this month)

# JSON API

	POST   /api/records      → CreateRecord (201)
	GET    /api/records      → ListRecords (?date=)
	GET    /api/records/{id} → GetRecord
	PATCH  /api/records/{id} → UpdateRecord ({"diary": "..."})
	DELETE /api/records/{id} → DeleteRecord (204, repeatable)
	GET    /api/stats        → GetStats (?year=&month=)

# Upload Failures

diary.Service errors map onto statuses:

	ErrNoImage      → 400
	ErrNoFace       → 422
	ErrAnalysis     → 502
	ErrImageStorage → 500
	ErrStorage      → 500

Bodies over the configured limit answer 413.

# Language

Text is Korean by default. ?lang=en|ko or Accept-Language selects
another supported language, and links and redirects carry ?lang along.
*/
package handlers
