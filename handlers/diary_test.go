// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/mood-diary/analyzer"
	"github.com/danielhkuo/mood-diary/emotion"
	"github.com/danielhkuo/mood-diary/i18n"
	"github.com/danielhkuo/mood-diary/middleware"
	"github.com/danielhkuo/mood-diary/models"
	"github.com/danielhkuo/mood-diary/testutil"
)

func TestIndex(t *testing.T) {
	env := newTestEnv(t)
	env.addRecord(t, "today.jpg", emotion.Happy, 0.9, "sunny walk", fixedNow.Add(-time.Hour))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	env.diary.Index(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	for _, s := range []string{"감정 일기", `enctype="multipart/form-data"`, "sunny walk"} {
		if !strings.Contains(body, s) {
			t.Errorf("Expected index to contain %q", s)
		}
	}
}

func TestUpload(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		filename       string
		scores         emotion.Scores
		analyzerErr    error
		expectedStatus int
		expectedText   string
		expectRecord   bool
	}{
		{
			name:           "success",
			path:           "/",
			filename:       "me.jpg",
			scores:         testutil.SampleScores(emotion.Happy),
			expectedStatus: http.StatusOK,
			expectedText:   "분석 결과: 행복 (신뢰도: 88.0%)",
			expectRecord:   true,
		},
		{
			name:           "success in english",
			path:           "/?lang=en",
			filename:       "me.jpg",
			scores:         testutil.SampleScores(emotion.Happy),
			expectedStatus: http.StatusOK,
			expectedText:   "Analysis result: Happy (confidence: 88.0%)",
			expectRecord:   true,
		},
		{
			name:           "neutral relabeled as sad",
			path:           "/",
			filename:       "me.png",
			scores:         emotion.Scores{emotion.Neutral: 0.5, emotion.Sad: 0.3, emotion.Happy: 0.1, emotion.Fear: 0.1},
			expectedStatus: http.StatusOK,
			expectedText:   "분석 결과: 슬픔 (신뢰도: 30.0%)",
			expectRecord:   true,
		},
		{
			name:           "no file",
			path:           "/",
			expectedStatus: http.StatusBadRequest,
			expectedText:   "분석할 이미지를 선택하세요.",
		},
		{
			name:           "no face",
			path:           "/",
			filename:       "wall.jpg",
			analyzerErr:    analyzer.ErrNoFace,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedText:   "이미지에서 얼굴을 찾지 못했습니다.",
		},
		{
			name:           "collaborator failure",
			path:           "/",
			filename:       "me.jpg",
			analyzerErr:    errors.New("connection refused"),
			expectedStatus: http.StatusBadGateway,
			expectedText:   "감정 분석 중 오류 발생: connection refused",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.analyzer.Scores = tc.scores
			env.analyzer.Err = tc.analyzerErr

			var data []byte
			if tc.filename != "" {
				data = []byte("\xff\xd8\xff\xe0 fake jpeg")
			}
			req := testutil.MakeUploadRequest(t, tc.path, tc.filename, data, "my diary")
			w := httptest.NewRecorder()

			env.diary.Upload(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if !strings.Contains(w.Body.String(), tc.expectedText) {
				t.Errorf("Expected body to contain %q", tc.expectedText)
			}

			count := testutil.CountRecords(t, env.db)
			files := env.storedImages(t)
			if tc.expectRecord {
				if count != 1 || len(files) != 1 {
					t.Fatalf("Expected 1 record and 1 image, got %d and %v", count, files)
				}
				if !strings.Contains(w.Body.String(), "/uploads/"+files[0]) {
					t.Error("Expected the uploaded image to be shown")
				}
			} else {
				if count != 0 || len(files) != 0 {
					t.Errorf("Expected nothing stored, got %d records and %v", count, files)
				}
				if !strings.Contains(w.Body.String(), "my diary") {
					t.Error("Expected the diary text to be kept in the form")
				}
			}
		})
	}
}

func TestUpload_TooLarge(t *testing.T) {
	env := newTestEnv(t)

	req := testutil.MakeUploadRequest(t, "/", "big.jpg", bytes.Repeat([]byte("x"), 4096), "")
	w := httptest.NewRecorder()

	middleware.LimitBody(1024, env.diary.Upload)(w, req)

	testutil.AssertStatus(t, w, http.StatusRequestEntityTooLarge)
	if env.analyzer.CallCount() != 0 {
		t.Error("Analyzer should not run for an oversized upload")
	}
	if testutil.CountRecords(t, env.db) != 0 {
		t.Error("Expected no record")
	}
}

func TestCreateRecord(t *testing.T) {
	env := newTestEnv(t)
	env.analyzer.Scores = testutil.SampleScores(emotion.Surprise)

	req := testutil.MakeUploadRequest(t, "/api/records?lang=en", "cat.JPEG", []byte("jpeg"), "saw a cat")
	w := httptest.NewRecorder()
	env.diary.CreateRecord(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.UploadResponse
	testutil.AssertJSON(t, w, &resp)

	rec := resp.Record
	if rec.ID == 0 || rec.Emotion != emotion.Surprise || rec.Diary != "saw a cat" {
		t.Errorf("Unexpected record %+v", rec)
	}
	if !strings.HasSuffix(rec.Filename, ".jpeg") {
		t.Errorf("Expected lowercased extension, got %s", rec.Filename)
	}
	if rec.ImageURL != "/uploads/"+rec.Filename {
		t.Errorf("Unexpected image URL %s", rec.ImageURL)
	}
	if rec.EmotionName != "Surprise" {
		t.Errorf("Expected emotion name Surprise, got %s", rec.EmotionName)
	}
	if resp.Summary != "Analysis result: Surprise (confidence: 88.0%)" {
		t.Errorf("Unexpected summary %q", resp.Summary)
	}
	if !env.imageExists(rec.Filename) {
		t.Error("Expected image to be stored")
	}
}

func TestCreateRecord_Errors(t *testing.T) {
	testCases := []struct {
		name           string
		filename       string
		analyzerErr    error
		expectedStatus int
	}{
		{"no image", "", nil, http.StatusBadRequest},
		{"no face", "a.jpg", analyzer.ErrNoFace, http.StatusUnprocessableEntity},
		{"analysis failure", "a.jpg", errors.New("timeout"), http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.analyzer.Err = tc.analyzerErr

			req := testutil.MakeUploadRequest(t, "/api/records", tc.filename, []byte("x"), "")
			w := httptest.NewRecorder()
			env.diary.CreateRecord(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message == "" {
				t.Error("Expected an error message")
			}
			if testutil.CountRecords(t, env.db) != 0 {
				t.Error("Expected no record")
			}
		})
	}
}

func TestCreateRecord_NotMultipart(t *testing.T) {
	env := newTestEnv(t)

	req := testutil.MakeRequest("POST", "/api/records", map[string]string{"diary": "x"}, nil)
	w := httptest.NewRecorder()
	env.diary.CreateRecord(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

// truncatedMultipart opens a file part and never closes the form
func truncatedMultipart(path string) *http.Request {
	body := "--xyz\r\n" +
		"Content-Disposition: form-data; name=\"image\"; filename=\"a.jpg\"\r\n" +
		"Content-Type: image/jpeg\r\n\r\n" +
		"partial"
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	return req
}

func TestCreateRecord_MalformedForm(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.diary.CreateRecord(w, truncatedMultipart("/api/records?lang=en"))

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != i18n.MsgBadForm {
		t.Errorf("Expected message %q, got %q", i18n.MsgBadForm, resp.Message)
	}
	if env.analyzer.CallCount() != 0 {
		t.Error("Analyzer should not run for an unreadable form")
	}
	if testutil.CountRecords(t, env.db) != 0 {
		t.Error("Expected no record")
	}
}

func TestUpload_MalformedForm(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.diary.Upload(w, truncatedMultipart("/?lang=en"))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	body := w.Body.String()
	if !strings.Contains(body, i18n.MsgBadForm) {
		t.Errorf("Expected the unreadable-form message in the page, got:\n%s", body)
	}
	if strings.Contains(body, i18n.MsgNoImage) {
		t.Error("An unreadable form should not be reported as a missing image")
	}
}
