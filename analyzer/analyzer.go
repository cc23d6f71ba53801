// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analyzer

import (
	"context"
	"errors"

	"github.com/danielhkuo/mood-diary/emotion"
)

var (
	// ErrNoFace means strict detection found no face; the image is not scored
	ErrNoFace = errors.New("no face detected")
	// ErrEmptyImage means there were no bytes to analyze
	ErrEmptyImage = errors.New("empty image")
)

// Image is the payload handed to the analysis collaborator
type Image struct {
	Name        string
	ContentType string
	Data        []byte
}

// Analyzer scores one image for each emotion label.
// Returned scores are fractions in [0, 1].
type Analyzer interface {
	Analyze(ctx context.Context, img Image) (emotion.Scores, error)
}

// Func adapts a plain function to Analyzer
type Func func(ctx context.Context, img Image) (emotion.Scores, error)

func (f Func) Analyze(ctx context.Context, img Image) (emotion.Scores, error) {
	return f(ctx, img)
}
