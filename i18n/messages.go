// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/danielhkuo/mood-diary/emotion"
)

// Message keys. The English text doubles as the format string.
const (
	MsgSummary        = "Analysis result: %s (confidence: %.1f%%)"
	MsgNoImage        = "Please choose an image to analyze."
	MsgBadForm        = "The upload could not be read. Please try again."
	MsgNoFace         = "No face was detected in the image."
	MsgAnalysisFailed = "Emotion analysis failed: %s"
	MsgImageStorage   = "The image could not be saved."
	MsgRecordStorage  = "The analysis result could not be saved."
	MsgTooLarge       = "The image is too large (limit %s)."
	MsgNotFound       = "Record not found."
	MsgBadID          = "Invalid record id."
)

var emotionNames = map[emotion.Label][2]string{
	// {ko, en}
	emotion.Angry:    {"화남", "Angry"},
	emotion.Disgust:  {"역겨움", "Disgust"},
	emotion.Fear:     {"두려움", "Fear"},
	emotion.Happy:    {"행복", "Happy"},
	emotion.Sad:      {"슬픔", "Sad"},
	emotion.Surprise: {"놀람", "Surprise"},
	emotion.Neutral:  {"보통", "Neutral"},
}

var korean = map[string]string{
	MsgSummary:        "분석 결과: %s (신뢰도: %.1f%%)",
	MsgNoImage:        "분석할 이미지를 선택하세요.",
	MsgBadForm:        "업로드를 읽지 못했습니다. 다시 시도하세요.",
	MsgNoFace:         "이미지에서 얼굴을 찾지 못했습니다.",
	MsgAnalysisFailed: "감정 분석 중 오류 발생: %s",
	MsgImageStorage:   "이미지를 저장하지 못했습니다.",
	MsgRecordStorage:  "분석 결과를 저장하지 못했습니다.",
	MsgTooLarge:       "이미지가 너무 큽니다 (최대 %s).",
	MsgNotFound:       "기록을 찾을 수 없습니다.",
	MsgBadID:          "잘못된 기록 번호입니다.",

	// Page text
	"Emotion Diary":       "감정 일기",
	"Upload":              "업로드",
	"Photo":               "사진",
	"Diary":               "일기",
	"Analyze":             "분석하기",
	"Today's history":     "오늘의 감정 히스토리",
	"History for %s":      "%s의 감정 히스토리",
	"Monthly statistics":  "월간 감정 통계",
	"Edit diary":          "일기 수정",
	"Save":                "저장",
	"Delete":              "삭제",
	"Edit":                "수정",
	"Cancel":              "취소",
	"Emotion":             "감정",
	"Confidence":          "신뢰도",
	"Time":                "시간",
	"Count":               "횟수",
	"Year":                "연도",
	"Month":               "월",
	"Show":                "보기",
	"Total":               "합계",
	"No records yet.":     "기록이 없습니다.",
	"Delete this record?": "이 기록을 삭제할까요?",
	"Previous day":        "이전 날",
	"Next day":            "다음 날",
	"Today":               "오늘",
	"Back":                "돌아가기",
	"Error":               "오류",
}

func init() {
	for l, names := range emotionNames {
		mustSet(language.Korean, emotionKey(l), names[0])
		mustSet(language.English, emotionKey(l), names[1])
	}
	for key, msg := range korean {
		mustSet(language.Korean, key, msg)
		mustSet(language.English, key, key)
	}
}

func mustSet(tag language.Tag, key, msg string) {
	if err := message.SetString(tag, key, msg); err != nil {
		panic(fmt.Sprintf("i18n: register %q for %s: %v", key, tag, err))
	}
}
