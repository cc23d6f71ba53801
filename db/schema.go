// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema, err := schemaFor(dbType)
	if err != nil {
		return err
	}

	_, err = db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func schemaFor(dbType string) (string, error) {
	switch dbType {
	case TypePostgres:
		return fmt.Sprintf(schemaTemplate, "BIGSERIAL PRIMARY KEY", "DOUBLE PRECISION"), nil
	case TypeSQLite:
		return fmt.Sprintf(schemaTemplate, "INTEGER PRIMARY KEY AUTOINCREMENT", "REAL"), nil
	}
	return "", fmt.Errorf("unsupported database type %q", dbType)
}

// Only the id and float column types differ between dialects
const schemaTemplate = `
-- Emotion records
CREATE TABLE IF NOT EXISTS emotion_records (
    id %s,
    filename TEXT NOT NULL UNIQUE,
    emotion TEXT NOT NULL CHECK (emotion IN ('angry', 'disgust', 'fear', 'happy', 'sad', 'surprise', 'neutral')),
    confidence %s NOT NULL CHECK (confidence >= 0 AND confidence <= 1),
    diary TEXT NOT NULL DEFAULT '',
    upload_time TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_emotion_records_upload_time ON emotion_records(upload_time);
`
