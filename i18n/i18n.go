// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/danielhkuo/mood-diary/emotion"
)

// LangParam is the query parameter used to select a language
const LangParam = "lang"

var supported = []language.Tag{language.Korean, language.English}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// ParseTag maps a language string onto a supported tag
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// ResolveTag picks the display language for a request:
// ?lang= first, then Accept-Language, then fallback.
func ResolveTag(r *http.Request, fallback language.Tag) language.Tag {
	if r == nil {
		return fallback
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return supported[idx]
			}
		}
	}
	return fallback
}

// Printer returns a message printer for the supplied tag
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// EmotionName returns the display name of a label
func EmotionName(p *message.Printer, l emotion.Label) string {
	if !l.Valid() {
		return string(l)
	}
	return p.Sprintf(emotionKey(l))
}

func emotionKey(l emotion.Label) string {
	return "emotion." + string(l)
}
