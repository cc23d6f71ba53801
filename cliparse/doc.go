// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first. Variables already
present in the environment are never overwritten by it.

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type (sqlite or postgres)
	-upload-dir     Directory for uploaded images
	-image-backend  local or minio
	-analyzer       Emotion analysis service URL
	-log-level      debug, info, warn, error

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p (default 5000)
	DATABASE_URL   → -d (required)
	DATABASE_TYPE  → -t (default sqlite)
	UPLOAD_DIR     → -upload-dir (default static/uploads)
	IMAGE_BACKEND  → -image-backend (default local)
	ANALYZER_URL   → -analyzer (default http://localhost:5005)
	LOG_LEVEL      → -log-level (default info)

Environment only:

	DB_MAX_OPEN_CONNS  Connection pool size (default 10)
	MAX_UPLOAD_BYTES   Upload size limit (default 10 MiB)
	DETECTOR_BACKEND   Face detector passed to the analyzer (default mtcnn)
	ANALYZE_TIMEOUT    Analyzer call timeout (default 60s)
	SAD_THRESHOLD      Neutral→sad relabel threshold, a fraction (default 0.25)
	DEFAULT_LANG       Display language when the request names none (default ko)
	TIMEZONE           Zone for "today" and month boundaries (default Local)
	LOG_FILE           Rotating log file, in addition to stderr
	MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY,
	MINIO_BUCKET, MINIO_PUBLIC_URL, MINIO_USE_SSL
	                   Object storage settings when IMAGE_BACKEND=minio

CLI flags take precedence over environment variables.
*/
package cliparse
