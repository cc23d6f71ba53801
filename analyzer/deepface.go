// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analyzer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/mood-diary/emotion"
)

// DeepFaceClient calls the /analyze endpoint of a DeepFace REST service
type DeepFaceClient struct {
	baseURL  string
	detector string
	http     *http.Client
}

func NewDeepFaceClient(baseURL, detector string, timeout time.Duration) *DeepFaceClient {
	return &DeepFaceClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		detector: detector,
		http:     &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	Img              string   `json:"img"`
	Actions          []string `json:"actions"`
	EnforceDetection bool     `json:"enforce_detection"`
	DetectorBackend  string   `json:"detector_backend,omitempty"`
}

type faceResult struct {
	Emotion map[string]float64 `json:"emotion"`
}

type analyzeResponse struct {
	Results []faceResult `json:"results"`
	Error   string       `json:"error"`
}

// Analyze sends the image inline as a data URI with strict face detection.
// The service reports percentages; they are converted to fractions here.
func (c *DeepFaceClient) Analyze(ctx context.Context, img Image) (emotion.Scores, error) {
	if len(img.Data) == 0 {
		return nil, ErrEmptyImage
	}

	contentType := img.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(img.Data)
	}

	payload, err := json.Marshal(analyzeRequest{
		Img:              "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(img.Data),
		Actions:          []string{"emotion"},
		EnforceDetection: true,
		DetectorBackend:  c.detector,
	})
	if err != nil {
		return nil, fmt.Errorf("encode analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call analyzer: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read analyzer response: %w", err)
	}

	slog.Debug("analyzer responded",
		"status", resp.StatusCode,
		"image", img.Name,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	var parsed analyzeResponse
	decodeErr := json.Unmarshal(body, &parsed)

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(parsed.Error)
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		if isNoFace(msg) {
			return nil, ErrNoFace
		}
		return nil, fmt.Errorf("analyzer returned %d: %s", resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode analyzer response: %w", decodeErr)
	}
	if parsed.Error != "" {
		if isNoFace(parsed.Error) {
			return nil, ErrNoFace
		}
		return nil, fmt.Errorf("analyzer error: %s", parsed.Error)
	}
	if len(parsed.Results) == 0 {
		return nil, ErrNoFace
	}

	// Several faces: the first one is scored
	return normalize(parsed.Results[0].Emotion), nil
}

func normalize(raw map[string]float64) emotion.Scores {
	scores := make(emotion.Scores, len(raw))
	for k, v := range raw {
		l := emotion.Label(strings.ToLower(k))
		if !l.Valid() {
			continue
		}
		scores[l] = v / 100
	}
	return scores
}

func isNoFace(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "face could not be detected") ||
		strings.Contains(msg, "no face")
}
