package models

import (
	"time"

	"github.com/danielhkuo/mood-diary/emotion"
)

// Domain types

// EmotionRecord is one analyzed photo plus its diary entry.
// Only Diary changes after creation.
type EmotionRecord struct {
	ID         int64         `json:"id"`
	Filename   string        `json:"filename"`
	Emotion    emotion.Label `json:"emotion"`
	Confidence float64       `json:"confidence"` // fraction in [0, 1]
	Diary      string        `json:"diary"`
	UploadTime time.Time     `json:"upload_time"`
}

type EmotionCount struct {
	Emotion emotion.Label `json:"emotion"`
	Count   int           `json:"count"`
}

// MonthStats counts records per emotion over [From, To)
type MonthStats struct {
	Year   int            `json:"year"`
	Month  int            `json:"month"`
	From   time.Time      `json:"from"`
	To     time.Time      `json:"to"`
	Counts []EmotionCount `json:"counts"`
	Total  int            `json:"total"`
}

// Request types

type UpdateDiaryRequest struct {
	Diary string `json:"diary"`
}

// Response types

// RecordResponse is a record with its display fields filled in
type RecordResponse struct {
	EmotionRecord
	EmotionName string `json:"emotion_name"`
	ImageURL    string `json:"image_url"`
}

type UploadResponse struct {
	Record  RecordResponse `json:"record"`
	Summary string         `json:"summary"`
}

type ListRecordsResponse struct {
	Date    string           `json:"date"`
	Records []RecordResponse `json:"records"`
}

type MonthStatsResponse struct {
	MonthStats
	Names map[emotion.Label]string `json:"names"`
	Years []int                    `json:"years"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
