// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open registers both drivers and returns a pooled handle:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL, cfg.DBMaxOpen)

Supported types are "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite). SQLite is pinned to a single connection.

# Schema Creation

CreateSchema initializes the table:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Tables

  - emotion_records: one analyzed photo and its diary entry

	id          surrogate key (BIGSERIAL / INTEGER AUTOINCREMENT)
	filename    generated image name, unique
	emotion     canonical label, CHECK-constrained to the seven labels
	confidence  fraction in [0, 1]
	diary       free text, '' when absent
	upload_time UTC timestamp

# Indexes

  - emotion_records.upload_time (history and monthly ranges)
*/
package db
