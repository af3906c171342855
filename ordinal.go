package datekit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Ordinal system names accepted by LocaleDefinition.Ordinal.
const (
	OrdinalEnglish   = "english"
	OrdinalPeriod    = "period"
	OrdinalMasculine = "masculine"
	OrdinalFrench    = "french"
	OrdinalJapanese  = "japanese"
	OrdinalPlain     = "plain"
)

var ordinalSystems = map[string]OrdinalFunc{
	OrdinalEnglish:   englishOrdinal,
	OrdinalPeriod:    func(n int, _ string) string { return strconv.Itoa(n) + "." },
	OrdinalMasculine: func(n int, _ string) string { return strconv.Itoa(n) + "º" },
	OrdinalFrench: func(n int, _ string) string {
		if n == 1 {
			return "1er"
		}
		return strconv.Itoa(n)
	},
	OrdinalJapanese: func(n int, period string) string {
		if period == "D" {
			return strconv.Itoa(n) + "日"
		}
		return strconv.Itoa(n)
	},
	OrdinalPlain: func(n int, _ string) string { return strconv.Itoa(n) },
}

// OrdinalSystem returns the ordinal function registered under name.
func OrdinalSystem(name string) (OrdinalFunc, bool) {
	fn, ok := ordinalSystems[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

func englishOrdinal(n int, _ string) string {
	suffixes := [4]string{"th", "st", "nd", "rd"}
	abs := n
	if abs < 0 {
		abs = -abs
	}
	v := abs % 100

	suffix := suffixes[0]
	switch {
	case v >= 11 && v <= 13:
	case v%10 >= 1 && v%10 <= 3:
		suffix = suffixes[v%10]
	}
	return strconv.Itoa(n) + suffix
}

// DigitTransforms builds the PostFormat/PreParse pair that swaps ASCII
// digits with the ten native digits in digits (zero first).
func DigitTransforms(digits string) (post TextTransform, pre TextTransform, err error) {
	if utf8.RuneCountInString(digits) != 10 {
		return nil, nil, fmt.Errorf("%w: digits must list exactly 10 characters, got %q", ErrInvalidLocale, digits)
	}

	native := []rune(digits)
	reverse := make(map[rune]rune, len(native))
	for i, r := range native {
		reverse[r] = rune('0' + i)
	}

	post = func(input string) string {
		return strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return native[r-'0']
			}
			return r
		}, input)
	}
	pre = func(input string) string {
		return strings.Map(func(r rune) rune {
			if ascii, ok := reverse[r]; ok {
				return ascii
			}
			return r
		}, input)
	}
	return post, pre, nil
}
