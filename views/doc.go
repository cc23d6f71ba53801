// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the server-side HTML pages.

Templates are embedded from templates/*.html. Each page file defines a
"content" block executed inside layout.html:

	r := views.Must()
	r.Render(w, http.StatusOK, views.PageHistory, views.HistoryPage{...})

Pages receive a Locale (field L) for translated text, emotion names and
percentages:

	{{.L.T "History for %s" .Date}}
	{{.L.Emotion .Emotion}} {{.L.Percent .Confidence}}
*/
package views
