package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		numeric bool
		want    string
	}{
		{name: "quoted words", pattern: "d 'de' MMMM 'de' y", want: "D [de] MMMM [de] YYYY"},
		{name: "full weekday", pattern: "EEEE, d MMMM y", want: "dddd, D MMMM YYYY"},
		{name: "numeric short", pattern: "d/M/yy", numeric: true, want: "DD/MM/YYYY"},
		{name: "numeric padded", pattern: "dd.MM.yy", numeric: true, want: "DD.MM.YYYY"},
		{name: "two digit year", pattern: "d/M/yy", want: "D/M/YY"},
		{name: "cjk literals", pattern: "y年M月d日", want: "YYYY年M月D日"},
		{name: "meridiem", pattern: "h:mm a", want: "h:mm A"},
		{name: "narrow space", pattern: "h:mm\u202fa", want: "h:mm A"},
		{name: "letter literal", pattern: "HH 'h' mm", want: "HH [h] mm"},
		{name: "escaped quote", pattern: "h 'o''clock' a", want: "h [o'clock] A"},
		{name: "bare quote", pattern: "HH''mm", want: "HH'mm"},
		{name: "era dropped", pattern: "d MMMM y G", want: "D MMMM YYYY"},
		{name: "zones", pattern: "HH:mm:ss zzzz", want: "HH:mm:ss zzz"},
		{name: "offset", pattern: "HH:mm xxx", want: "HH:mm Z"},
		{name: "fraction", pattern: "ss.SSSS", want: "ss.SSS"},
		{name: "short weekday", pattern: "EEE d MMM", want: "ddd D MMM"},
		{name: "narrow weekday", pattern: "EEEEEE", want: "dd"},
		{name: "empty", pattern: "", want: ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, convertPattern(tc.pattern, tc.numeric), tc.name)
	}
}

func TestLocalizedFormats(t *testing.T) {
	t.Parallel()

	formats := localizedFormats(
		map[string]string{"full": "EEEE d MMMM y", "long": "d MMMM y", "short": "dd.MM.yy"},
		map[string]string{"medium": "HH:mm:ss", "short": "HH:mm"},
		map[string]string{"full": "{1} 'um' {0}", "medium": "{1}, {0}"},
	)

	assert.Equal(t, map[string]string{
		"LT":   "HH:mm",
		"LTS":  "HH:mm:ss",
		"L":    "DD.MM.YYYY",
		"LL":   "D MMMM YYYY",
		"LLL":  "D MMMM YYYY, HH:mm",
		"LLLL": "dddd D MMMM YYYY [um] HH:mm",
	}, formats)

	assert.Nil(t, localizedFormats(nil, nil, nil))
	assert.Equal(t, map[string]string{"LL": "D MMMM YYYY"},
		localizedFormats(map[string]string{"long": "d MMMM y"}, nil, map[string]string{"long": "{1} {0}"}),
		"date-time presets need a time pattern")
}
