// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs method, path, status, response size, client IP and duration_ms.
Server errors are logged at error level.

# Body Limits

Cap upload sizes before parsing:

	mux.HandleFunc("POST /", middleware.WithLogging(middleware.LimitBody(cfg.MaxUploadBytes, h.Upload)))

Handlers check middleware.IsTooLarge(err) on parse failures to answer 413.

# CORS and Recovery

The JSON API accepts cross-origin calls:

	mux.Handle("/api/", middleware.CORS(api))

Recover wraps the whole mux so a panicking handler answers 500.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.UpdateDiaryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Prefers X-Forwarded-For, then X-Real-IP, then RemoteAddr without its port.
*/
package middleware
