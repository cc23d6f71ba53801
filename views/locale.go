// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/danielhkuo/mood-diary/emotion"
	"github.com/danielhkuo/mood-diary/i18n"
)

// Locale carries the request language into templates
type Locale struct {
	Tag language.Tag
	p   *message.Printer
}

func NewLocale(tag language.Tag) Locale {
	return Locale{Tag: tag, p: i18n.Printer(tag)}
}

// Lang is the BCP 47 code used in the html lang attribute and links
func (l Locale) Lang() string {
	base, _ := l.Tag.Base()
	return base.String()
}

// T translates a message key, formatting args into it
func (l Locale) T(key string, args ...any) string {
	return l.p.Sprintf(key, args...)
}

func (l Locale) Emotion(label emotion.Label) string {
	return i18n.EmotionName(l.p, label)
}

// Percent renders a [0, 1] confidence as a percentage with one decimal
func (l Locale) Percent(confidence float64) string {
	return l.p.Sprintf("%.1f%%", confidence*100)
}

func (l Locale) Count(n int) string {
	return humanize.Comma(int64(n))
}

// Clock formats t as a wall-clock time in loc
func (l Locale) Clock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04:05")
}

// Ago is a rough relative time for tooltips
func (l Locale) Ago(t time.Time) string {
	return humanize.Time(t)
}

// Link adds the current language to a local path so it survives navigation
func (l Locale) Link(p string, params ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(params); i += 2 {
		q.Set(params[i], params[i+1])
	}
	q.Set(i18n.LangParam, l.Lang())
	return p + "?" + q.Encode()
}
