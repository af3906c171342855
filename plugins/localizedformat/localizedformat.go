// Package localizedformat renders the locale format presets LT, LTS, L,
// LL, LLL and LLLL plus their short lowercase forms l, ll, lll and llll.
package localizedformat

import (
	"regexp"

	datekit "github.com/goliatone/go-datekit"
)

// Plugin registers one token per preset.
var Plugin = datekit.NewPlugin("localizedformat", install)

var presets = []string{"LT", "LTS", "L", "LL", "LLL", "LLLL"}

var shortenable = regexp.MustCompile(`\[[^\]]*\]|MMMM|MM|DD|dddd`)

var english = datekit.EnglishLocale()

func install(_ any, env *datekit.Env) {
	for _, key := range presets {
		env.RegisterToken(key, presetToken(key))
	}
	for _, key := range []string{"l", "ll", "lll", "llll"} {
		env.RegisterToken(key, presetToken(key))
	}
}

func presetToken(key string) datekit.TokenFunc {
	return func(d datekit.Date, l *datekit.Locale) string {
		return d.FormatTokens(l, Layout(l, key))
	}
}

// Layout returns the layout behind preset key for l. Lowercase keys the
// locale does not define are derived from the uppercase preset by
// shortening month, day and weekday names.
func Layout(l *datekit.Locale, key string) string {
	if layout, ok := l.FormatPreset(key); ok {
		return layout
	}
	if layout, ok := english.FormatPreset(key); ok {
		return layout
	}

	upper := ""
	switch key {
	case "l":
		upper = "L"
	case "ll":
		upper = "LL"
	case "lll":
		upper = "LLL"
	case "llll":
		upper = "LLLL"
	default:
		return key
	}
	return Shorten(Layout(l, upper))
}

// Shorten drops one letter from MMMM, MM, DD and dddd outside [literals].
func Shorten(layout string) string {
	return shortenable.ReplaceAllStringFunc(layout, func(match string) string {
		if match[0] == '[' {
			return match
		}
		return match[1:]
	})
}
