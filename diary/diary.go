// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package diary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/mood-diary/analyzer"
	"github.com/danielhkuo/mood-diary/emotion"
	"github.com/danielhkuo/mood-diary/imagestore"
	"github.com/danielhkuo/mood-diary/models"
	"github.com/danielhkuo/mood-diary/store"
)

// Upload failures. Each is distinct so callers can report them separately.
var (
	ErrNoImage      = errors.New("no image provided")
	ErrNoFace       = errors.New("no face detected")
	ErrAnalysis     = errors.New("emotion analysis failed")
	ErrImageStorage = errors.New("image storage failed")
	ErrStorage      = errors.New("record storage failed")
	ErrNotFound     = store.ErrNotFound
)

// FirstYear is the earliest year offered by the monthly statistics page
const FirstYear = 2023

// Upload is one submitted photo and its diary text
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
	Diary       string
}

type UploadResult struct {
	Record    models.EmotionRecord
	Relabeled bool
}

type Options struct {
	SadThreshold   float64
	AnalyzeTimeout time.Duration
	Location       *time.Location
	Now            func() time.Time
}

type Service struct {
	store     *store.Store
	images    imagestore.Store
	analyzer  analyzer.Analyzer
	threshold float64
	timeout   time.Duration
	loc       *time.Location
	now       func() time.Time
}

func NewService(st *store.Store, images imagestore.Store, an analyzer.Analyzer, opts Options) *Service {
	s := &Service{
		store:     st,
		images:    images,
		analyzer:  an,
		threshold: opts.SadThreshold,
		timeout:   opts.AnalyzeTimeout,
		loc:       opts.Location,
		now:       opts.Now,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Now is the current time in the display zone
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// Ping checks that the record store is reachable
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// ImageURL is where the record's photo can be fetched
func (s *Service) ImageURL(filename string) string {
	return s.images.URL(filename)
}

// Upload stores the image, analyzes it and writes one record.
// On any failure nothing is kept: no record and no stored image.
func (s *Service) Upload(ctx context.Context, up Upload) (UploadResult, error) {
	if up.Filename == "" || len(up.Data) == 0 {
		return UploadResult{}, ErrNoImage
	}

	name := imagestore.NewFilename(up.Filename)
	if err := s.images.Save(ctx, name, up.Data, up.ContentType); err != nil {
		slog.Error("failed to save image", "filename", name, "error", err)
		return UploadResult{}, fmt.Errorf("%w: %w", ErrImageStorage, err)
	}

	res, err := s.analyze(ctx, name, up)
	if err != nil {
		s.discardImage(ctx, name)
		return UploadResult{}, err
	}

	rec, err := s.store.Insert(ctx, models.EmotionRecord{
		Filename:   name,
		Emotion:    res.Label,
		Confidence: res.Confidence,
		Diary:      up.Diary,
		UploadTime: s.now(),
	})
	if err != nil {
		slog.Error("failed to insert record", "filename", name, "error", err)
		s.discardImage(ctx, name)
		return UploadResult{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	slog.Info("record created",
		"record_id", rec.ID,
		"emotion", rec.Emotion,
		"confidence", rec.Confidence,
		"relabeled", res.Relabeled,
	)

	return UploadResult{Record: rec, Relabeled: res.Relabeled}, nil
}

func (s *Service) analyze(ctx context.Context, name string, up Upload) (emotion.Result, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	scores, err := s.analyzer.Analyze(ctx, analyzer.Image{
		Name:        name,
		ContentType: up.ContentType,
		Data:        up.Data,
	})
	if errors.Is(err, analyzer.ErrNoFace) {
		slog.Info("no face detected", "filename", name)
		return emotion.Result{}, fmt.Errorf("%w: %w", ErrNoFace, err)
	}
	if err != nil {
		slog.Error("emotion analysis failed", "filename", name, "error", err)
		return emotion.Result{}, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	res, err := emotion.Classify(scores, s.threshold)
	if err != nil {
		slog.Error("unusable analysis scores", "filename", name, "scores", scores)
		return emotion.Result{}, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}
	return res, nil
}

// discardImage removes an image whose upload did not produce a record.
// It runs even if the request was cancelled.
func (s *Service) discardImage(ctx context.Context, name string) {
	if err := s.images.Delete(context.WithoutCancel(ctx), name); err != nil {
		slog.Warn("failed to remove image", "filename", name, "error", err)
	}
}

func (s *Service) Get(ctx context.Context, id int64) (models.EmotionRecord, error) {
	return s.store.Get(ctx, id)
}

// UpdateDiary changes only the diary text. Unknown IDs give ErrNotFound.
func (s *Service) UpdateDiary(ctx context.Context, id int64, diary string) (models.EmotionRecord, error) {
	if err := s.store.UpdateDiary(ctx, id, diary); err != nil {
		return models.EmotionRecord{}, err
	}
	slog.Info("diary updated", "record_id", id)
	return s.store.Get(ctx, id)
}

// Delete removes the record and its image. Deleting an ID that is
// already gone succeeds without doing anything.
func (s *Service) Delete(ctx context.Context, id int64) error {
	filename, err := s.store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.images.Delete(context.WithoutCancel(ctx), filename); err != nil {
		// The row is gone either way; a stale file is only logged
		slog.Warn("failed to remove image for deleted record", "record_id", id, "filename", filename, "error", err)
	}
	slog.Info("record deleted", "record_id", id)
	return nil
}

// History returns the records of the calendar day containing day, newest first
func (s *Service) History(ctx context.Context, day time.Time) ([]models.EmotionRecord, error) {
	from, to := DayRange(day, s.loc)
	return s.store.ListBetween(ctx, from, to)
}

// MonthStats counts records per emotion for one calendar month
func (s *Service) MonthStats(ctx context.Context, year, month int) (models.MonthStats, error) {
	from, to := MonthRange(year, month, s.loc)

	counts, err := s.store.CountByEmotion(ctx, from, to)
	if err != nil {
		return models.MonthStats{}, err
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}

	return models.MonthStats{
		Year:   from.Year(),
		Month:  int(from.Month()),
		From:   from,
		To:     to,
		Counts: counts,
		Total:  total,
	}, nil
}

// Years lists the selectable statistics years, FirstYear through this year
func (s *Service) Years() []int {
	return YearsThrough(s.Now().Year())
}
