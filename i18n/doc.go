// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package i18n holds the Korean and English display strings for the diary.

Messages are registered with golang.org/x/text/message at init. The English
text of each message is also its key, so a printer for any tag formats it:

	p := i18n.Printer(i18n.ResolveTag(r, language.Korean))
	p.Sprintf(i18n.MsgSummary, i18n.EmotionName(p, emotion.Sad), 30.0)
	// 분석 결과: 슬픔 (신뢰도: 30.0%)

# Language Selection

ResolveTag checks the ?lang= query parameter, then Accept-Language, then
falls back to the configured default.
*/
package i18n
