// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package emotion

import (
	"errors"
	"math"
)

// Label is one of the seven canonical emotion keys
type Label string

const (
	Angry    Label = "angry"
	Disgust  Label = "disgust"
	Fear     Label = "fear"
	Happy    Label = "happy"
	Sad      Label = "sad"
	Surprise Label = "surprise"
	Neutral  Label = "neutral"
)

// Labels lists the closed label set in a fixed order.
// The order also breaks ties when two labels share the top score.
var Labels = []Label{Angry, Disgust, Fear, Happy, Sad, Surprise, Neutral}

// DefaultSadThreshold is the sad score above which a neutral result is relabeled
const DefaultSadThreshold = 0.25

var ErrNoScores = errors.New("no recognized emotion scores")

// Valid reports whether l is in the closed label set
func (l Label) Valid() bool {
	for _, known := range Labels {
		if l == known {
			return true
		}
	}
	return false
}

// Scores maps each label to a confidence fraction in [0, 1]
type Scores map[Label]float64

// Dominant returns the label with the highest score.
// Unknown keys and NaN values are ignored.
func (s Scores) Dominant() (Label, float64, error) {
	best := Label("")
	bestScore := math.Inf(-1)
	for _, l := range Labels {
		v, ok := s[l]
		if !ok || math.IsNaN(v) {
			continue
		}
		if v > bestScore {
			best, bestScore = l, v
		}
	}
	if best == "" {
		return "", 0, ErrNoScores
	}
	return best, bestScore, nil
}

// Result is the final label and confidence chosen for one image
type Result struct {
	Label      Label   `json:"emotion"`
	Confidence float64 `json:"confidence"`
	Relabeled  bool    `json:"relabeled"`
}

// Classify picks the dominant label, then applies the neutral→sad relabel:
// a neutral result whose sad score exceeds threshold becomes sad, carrying
// the sad score as its confidence. Scores and threshold share the [0, 1] scale.
func Classify(scores Scores, threshold float64) (Result, error) {
	label, confidence, err := scores.Dominant()
	if err != nil {
		return Result{}, err
	}

	res := Result{Label: label, Confidence: clamp01(confidence)}
	if label == Neutral {
		if sad, ok := scores[Sad]; ok && sad > threshold {
			res = Result{Label: Sad, Confidence: clamp01(sad), Relabeled: true}
		}
	}
	return res, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
