// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package analyzer is the boundary to the facial-emotion analysis collaborator.

# Contract

	type Analyzer interface {
		Analyze(ctx context.Context, img Image) (emotion.Scores, error)
	}

Implementations return one score per label as a fraction in [0, 1]. When
strict detection finds no face they return ErrNoFace and no scores; every
other failure is an ordinary wrapped error.

# DeepFace

DeepFaceClient talks to a DeepFace REST server (POST /analyze). The image is
sent inline as a base64 data URI with actions=["emotion"] and
enforce_detection=true. DeepFace reports percentages, so each score is
divided by 100 before it is returned.
*/
package analyzer
