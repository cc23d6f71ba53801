// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/mood-diary/analyzer"
	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/db"
	"github.com/danielhkuo/mood-diary/emotion"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL, 1)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:            5000,
		DatabaseURL:     TestDBURL,
		DatabaseType:    db.TypeSQLite,
		DBMaxOpen:       1,
		UploadDir:       t.TempDir(),
		ImageBackend:    "local",
		MaxUploadBytes:  1 << 20,
		AnalyzerURL:     "http://analyzer.invalid",
		DetectorBackend: "mtcnn",
		AnalyzeTimeout:  5 * time.Second,
		SadThreshold:    emotion.DefaultSadThreshold,
		DefaultLang:     "ko",
		Timezone:        "UTC",
		LogLevel:        "error",
	}
}

// CreateTestRecord inserts a record directly and returns its ID
func CreateTestRecord(t *testing.T, conn *sql.DB, filename string, label emotion.Label, confidence float64, diary string, uploadTime time.Time) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO emotion_records (filename, emotion, confidence, diary, upload_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, filename, string(label), confidence, diary, uploadTime.UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test record: %v", err)
	}

	return id
}

// CountRecords returns the number of rows in emotion_records
func CountRecords(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM emotion_records").Scan(&n); err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	return n
}

// FakeAnalyzer returns canned scores or an error and records its calls
type FakeAnalyzer struct {
	mu     sync.Mutex
	Scores emotion.Scores
	Err    error
	Calls  []analyzer.Image
}

func (f *FakeAnalyzer) Analyze(ctx context.Context, img analyzer.Image) (emotion.Scores, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, img)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Scores, nil
}

// CallCount returns how many times Analyze ran
func (f *FakeAnalyzer) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// FixedClock returns a Now function that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeUploadRequest builds a multipart request with an "image" file part
// and a "diary" field. An empty filename omits the file part.
func MakeUploadRequest(t *testing.T, path, filename string, data []byte, diary string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := mw.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		part.Write(data)
	}
	if err := mw.WriteField("diary", diary); err != nil {
		t.Fatalf("Failed to write diary field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// MakeFormRequest builds a urlencoded POST request
func MakeFormRequest(path string, values map[string]string) *http.Request {
	form := url.Values{}
	for k, v := range values {
		form.Set(k, v)
	}
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// SampleScores returns analyzer scores whose dominant label is l
func SampleScores(l emotion.Label) emotion.Scores {
	scores := emotion.Scores{}
	for _, other := range emotion.Labels {
		scores[other] = 0.02
	}
	scores[l] = 0.88
	return scores
}
