// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/emotion"
	"github.com/danielhkuo/mood-diary/imagestore"
	"github.com/danielhkuo/mood-diary/store"
	"github.com/danielhkuo/mood-diary/testutil"
	"github.com/danielhkuo/mood-diary/views"
)

var fixedNow = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

// testEnv wires every handler to one in-memory database, a temp upload
// directory and a fake analyzer
type testEnv struct {
	db       *sql.DB
	cfg      cliparse.Config
	svc      *diary.Service
	analyzer *testutil.FakeAnalyzer
	images   *imagestore.LocalStore

	diary   *DiaryHandler
	records *RecordHandler
	stats   *StatsHandler
	system  *SystemHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)

	images, err := imagestore.NewLocalStore(cfg.UploadDir, "/uploads/")
	if err != nil {
		t.Fatalf("Failed to create image store: %v", err)
	}
	fake := &testutil.FakeAnalyzer{Scores: testutil.SampleScores(emotion.Happy)}

	svc := diary.NewService(store.New(db), images, fake, diary.Options{
		SadThreshold:   cfg.SadThreshold,
		AnalyzeTimeout: cfg.AnalyzeTimeout,
		Location:       time.UTC,
		Now:            testutil.FixedClock(fixedNow),
	})
	pages := views.Must()

	return &testEnv{
		db:       db,
		cfg:      cfg,
		svc:      svc,
		analyzer: fake,
		images:   images,
		diary:    NewDiaryHandler(svc, pages, cfg),
		records:  NewRecordHandler(svc, pages, cfg),
		stats:    NewStatsHandler(svc, pages, cfg),
		system:   NewSystemHandler(svc, images),
	}
}

// addRecord inserts a record and writes its image file
func (e *testEnv) addRecord(t *testing.T, filename string, label emotion.Label, confidence float64, diaryText string, at time.Time) int64 {
	t.Helper()
	if err := os.WriteFile(filepath.Join(e.images.Dir(), filename), []byte("img"), 0o644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}
	return testutil.CreateTestRecord(t, e.db, filename, label, confidence, diaryText, at)
}

func (e *testEnv) imageExists(filename string) bool {
	_, err := os.Stat(filepath.Join(e.images.Dir(), filename))
	return err == nil
}

func (e *testEnv) storedImages(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(e.images.Dir())
	if err != nil {
		t.Fatal(err)
	}
	names := []string{}
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
