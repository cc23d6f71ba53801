// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the mood diary.

# Route Registration

NewRouter wires every handler to one http.ServeMux and wraps it with
panic recovery:

	handler := router.NewRouter(svc, images, cfg)

# Endpoints

Health and images:

	GET /health              - Database ping
	GET /uploads/{filename}  - Stored photo (file or redirect)

Pages:

	GET  /             - Upload form
	POST /             - Upload and analyze
	GET  /history      - Records of one day
	GET  /edit/{id}    - Diary edit form
	POST /edit/{id}    - Save diary
	POST /delete/{id}  - Delete record
	GET  /month_stats  - Emotion counts for one month

JSON API (CORS enabled):

	POST   /api/records
	GET    /api/records
	GET    /api/records/{id}
	PATCH  /api/records/{id}
	DELETE /api/records/{id}
	GET    /api/stats

Upload routes are capped at cfg.MaxUploadBytes.
*/
package router
