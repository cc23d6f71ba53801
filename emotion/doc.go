// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package emotion defines the closed emotion label set and turns analyzer scores
into the single label stored with a diary record.

# Labels

	angry, disgust, fear, happy, sad, surprise, neutral

Only these keys are ever persisted. Display names live in package i18n.

# Classification

Classify selects the dominant label (highest score) and applies the relabel
heuristic:

	res, err := emotion.Classify(emotion.Scores{
		emotion.Neutral: 0.5,
		emotion.Sad:     0.3,
		emotion.Happy:   0.1,
	}, emotion.DefaultSadThreshold)
	// res.Label == emotion.Sad, res.Confidence == 0.3

All scores are fractions in [0, 1]. The analyzer client normalizes the
collaborator's percentages before they reach this package, so the threshold
and the scores are always compared on the same scale.
*/
package emotion
