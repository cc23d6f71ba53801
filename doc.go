// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the mood diary server.

The mood diary takes a photo, asks an emotion analysis service which
emotion the face shows, and stores the result next to a short diary
entry. Records can be browsed by day, edited, deleted and counted per
month.

# Starting the Server

	DATABASE_URL=diary.db go run .

Or with flags:

	go run . -p 5000 -t postgres -d "postgres://..." -analyzer http://localhost:5005

The analyzer is a DeepFace REST service (POST /analyze).

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string

Common optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ANALYZER_URL (-analyzer): DeepFace service (default: http://localhost:5005)
  - IMAGE_BACKEND (-image-backend): local or minio (default: local)
  - DEFAULT_LANG: ko or en (default: ko)

See package cliparse for the full list.

# Architecture

  - handlers: HTTP handlers (pages and JSON API)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, CORS, body limits, JSON helpers
  - views: Embedded HTML templates
  - diary: Upload-and-analyze service, day and month ranges
  - store: SQL over the emotion_records table
  - analyzer: Emotion analysis client
  - imagestore: Local and MinIO image storage
  - emotion: Labels and the classification rule
  - i18n: Korean and English text
  - db: Connections and schema
  - logging: slog setup with optional log rotation
  - models: Record and response types
  - cliparse: Configuration parsing
*/
package main
