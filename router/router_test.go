// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/emotion"
	"github.com/danielhkuo/mood-diary/imagestore"
	"github.com/danielhkuo/mood-diary/store"
	"github.com/danielhkuo/mood-diary/testutil"
)

type fixture struct {
	handler http.Handler
	images  *imagestore.LocalStore
	id      string
}

func setup(t *testing.T) fixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	cfg.MaxUploadBytes = 4096

	images, err := imagestore.NewLocalStore(cfg.UploadDir, UploadsPrefix)
	if err != nil {
		t.Fatal(err)
	}
	svc := diary.NewService(store.New(db), images, &testutil.FakeAnalyzer{Scores: testutil.SampleScores(emotion.Happy)}, diary.Options{
		SadThreshold: cfg.SadThreshold,
		Location:     time.UTC,
	})

	if err := os.WriteFile(filepath.Join(images.Dir(), "seed.jpg"), []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
	id := testutil.CreateTestRecord(t, db, "seed.jpg", emotion.Sad, 0.4, "seed", time.Now())

	return fixture{
		handler: NewRouter(svc, images, cfg),
		images:  images,
		id:      strconv.FormatInt(id, 10),
	}
}

func TestHealthEndpoint(t *testing.T) {
	f := setup(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %s", w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	f := setup(t)

	testCases := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{"GET", "/", http.StatusOK},
		{"GET", "/history", http.StatusOK},
		{"GET", "/history?date=2024-01-01", http.StatusOK},
		{"GET", "/month_stats", http.StatusOK},
		{"GET", "/month_stats?year=2024&month=12", http.StatusOK},
		{"GET", "/edit/" + f.id, http.StatusOK},
		{"GET", "/edit/999", http.StatusNotFound},
		{"GET", "/uploads/seed.jpg", http.StatusOK},
		{"GET", "/uploads/missing.jpg", http.StatusNotFound},
		{"GET", "/api/records", http.StatusOK},
		{"GET", "/api/records/" + f.id, http.StatusOK},
		{"GET", "/api/records/abc", http.StatusBadRequest},
		{"GET", "/api/stats", http.StatusOK},
		{"GET", "/no/such/page", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			f.handler.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d. Body: %s", tc.expectedStatus, tc.method, tc.path, w.Code, w.Body.String())
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	f := setup(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/history"},
		{"GET", "/delete/1"},
		{"PUT", "/api/records/1"},
		{"POST", "/api/stats"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			f.handler.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUploadThroughRouter(t *testing.T) {
	f := setup(t)

	req := testutil.MakeUploadRequest(t, "/", "new.png", []byte("png"), "routed")
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "행복") {
		t.Error("Expected the analysis summary")
	}
}

func TestUploadTooLarge(t *testing.T) {
	f := setup(t)

	for _, path := range []string{"/", "/api/records"} {
		t.Run(path, func(t *testing.T) {
			req := testutil.MakeUploadRequest(t, path, "big.jpg", bytes.Repeat([]byte("x"), 16384), "")
			w := httptest.NewRecorder()
			f.handler.ServeHTTP(w, req)

			if w.Code != http.StatusRequestEntityTooLarge {
				t.Errorf("Expected 413, got %d", w.Code)
			}
		})
	}
}

func TestDeleteRedirects(t *testing.T) {
	f := setup(t)

	req := httptest.NewRequest("POST", "/delete/"+f.id, nil)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/history") {
		t.Errorf("Expected redirect to /history, got %s", loc)
	}
	if _, err := os.Stat(filepath.Join(f.images.Dir(), "seed.jpg")); !os.IsNotExist(err) {
		t.Error("Expected the image to be removed")
	}
}

func TestAPICORS(t *testing.T) {
	f := setup(t)

	req := httptest.NewRequest("OPTIONS", "/api/records/"+f.id, nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Error("Expected CORS headers on the API")
	}

	req = httptest.NewRequest("GET", "/history", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w = httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("Pages should not carry CORS headers")
	}
}
