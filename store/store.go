// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/mood-diary/emotion"
	"github.com/danielhkuo/mood-diary/models"
)

var ErrNotFound = errors.New("record not found")

// Store runs the emotion_records queries. Placeholders use the $N form,
// which both lib/pq and modernc.org/sqlite accept.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping checks the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Insert writes a new record and returns it with its assigned ID
func (s *Store) Insert(ctx context.Context, rec models.EmotionRecord) (models.EmotionRecord, error) {
	if !rec.Emotion.Valid() {
		return models.EmotionRecord{}, fmt.Errorf("invalid emotion label %q", rec.Emotion)
	}
	if rec.Filename == "" {
		return models.EmotionRecord{}, errors.New("filename is required")
	}
	if rec.UploadTime.IsZero() {
		rec.UploadTime = time.Now()
	}
	rec.UploadTime = rec.UploadTime.UTC()

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO emotion_records (filename, emotion, confidence, diary, upload_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, rec.Filename, string(rec.Emotion), rec.Confidence, rec.Diary, rec.UploadTime).Scan(&rec.ID)
	if err != nil {
		return models.EmotionRecord{}, fmt.Errorf("insert record: %w", err)
	}

	return rec, nil
}

// Get returns one record by ID
func (s *Store) Get(ctx context.Context, id int64) (models.EmotionRecord, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx, `
		SELECT id, filename, emotion, confidence, diary, upload_time
		FROM emotion_records
		WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return models.EmotionRecord{}, ErrNotFound
	}
	if err != nil {
		return models.EmotionRecord{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// UpdateDiary replaces the diary text and touches nothing else
func (s *Store) UpdateDiary(ctx context.Context, id int64, diary string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE emotion_records
		SET diary = $1
		WHERE id = $2
	`, diary, id)
	if err != nil {
		return fmt.Errorf("update diary: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update diary: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record and returns the image filename it referenced
func (s *Store) Delete(ctx context.Context, id int64) (string, error) {
	var filename string
	err := s.db.QueryRowContext(ctx, `
		DELETE FROM emotion_records
		WHERE id = $1
		RETURNING filename
	`, id).Scan(&filename)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("delete record: %w", err)
	}
	return filename, nil
}

// ListBetween returns records with from <= upload_time < to, newest first
func (s *Store) ListBetween(ctx context.Context, from, to time.Time) ([]models.EmotionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, emotion, confidence, diary, upload_time
		FROM emotion_records
		WHERE upload_time >= $1 AND upload_time < $2
		ORDER BY upload_time DESC, id DESC
	`, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := []models.EmotionRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}

// CountByEmotion groups records with from <= upload_time < to by emotion,
// most frequent first
func (s *Store) CountByEmotion(ctx context.Context, from, to time.Time) ([]models.EmotionCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT emotion, COUNT(*)
		FROM emotion_records
		WHERE upload_time >= $1 AND upload_time < $2
		GROUP BY emotion
		ORDER BY COUNT(*) DESC, emotion ASC
	`, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	defer rows.Close()

	counts := []models.EmotionCount{}
	for rows.Next() {
		var c models.EmotionCount
		var label string
		if err := rows.Scan(&label, &c.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		c.Emotion = emotion.Label(label)
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.EmotionRecord, error) {
	var rec models.EmotionRecord
	var label string
	if err := row.Scan(&rec.ID, &rec.Filename, &label, &rec.Confidence, &rec.Diary, &rec.UploadTime); err != nil {
		return models.EmotionRecord{}, err
	}
	rec.Emotion = emotion.Label(label)
	rec.UploadTime = rec.UploadTime.UTC()
	return rec, nil
}
