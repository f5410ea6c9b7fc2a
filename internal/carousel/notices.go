package carousel

import (
	"slices"
	"strings"
)

// Notices are the accessibility announcements the engine emits.
type Notices struct {
	AlreadyAtStart string
	AlreadyAtEnd   string
	ReachedStart   string
	ReachedEnd     string
}

var notices = map[string]Notices{
	"en": {
		AlreadyAtStart: "Already at the start of the list.",
		AlreadyAtEnd:   "Already at the end of the list.",
		ReachedStart:   "Reached the start of the list.",
		ReachedEnd:     "Reached the end of the list.",
	},
	"ko": {
		AlreadyAtStart: "이미 목록의 처음 위치에 있습니다.",
		AlreadyAtEnd:   "이미 목록의 끝 위치에 있습니다.",
		ReachedStart:   "목록의 처음입니다.",
		ReachedEnd:     "목록의 끝입니다.",
	},
}

// NoticesFor returns the built-in notices for locale, falling back to
// English. Region suffixes ("ko-KR") are ignored.
func NoticesFor(locale string) Notices {
	if n, ok := notices[baseLocale(locale)]; ok {
		return n
	}
	return notices["en"]
}

// SupportedLocale reports whether locale, region suffix aside, is one of
// Locales.
func SupportedLocale(locale string) bool {
	return slices.Contains(Locales(), baseLocale(locale))
}

// Locales lists the built-in notice locales.
func Locales() []string {
	return []string{"en", "ko"}
}

func baseLocale(locale string) string {
	key := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(key, "-_"); i >= 0 {
		key = key[:i]
	}
	return key
}
