package localizedformat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datekit "github.com/goliatone/go-datekit"
	"github.com/goliatone/go-datekit/plugins/localizedformat"
)

func newEnv(t *testing.T) *datekit.Env {
	t.Helper()
	env, err := datekit.NewEnv(
		datekit.WithLocation(time.UTC),
		datekit.WithLocales("de", "es", "ja", "ar"),
		datekit.WithPlugin(localizedformat.Plugin, nil),
	)
	require.NoError(t, err)
	return env
}

func TestLocalizedFormats(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	d := env.Date(2021, 4, 5, 14, 7, 9)

	tests := []struct {
		locale string
		layout string
		want   string
	}{
		{locale: "en", layout: "LT", want: "2:07 PM"},
		{locale: "en", layout: "LTS", want: "2:07:09 PM"},
		{locale: "en", layout: "L", want: "05/05/2021"},
		{locale: "en", layout: "LL", want: "May 5, 2021"},
		{locale: "en", layout: "LLL", want: "May 5, 2021 2:07 PM"},
		{locale: "en", layout: "LLLL", want: "Wednesday, May 5, 2021 2:07 PM"},
		{locale: "en", layout: "l", want: "5/5/2021"},
		{locale: "en", layout: "ll", want: "May 5, 2021"},
		{locale: "en", layout: "lll", want: "May 5, 2021 2:07 PM"},
		{locale: "en", layout: "llll", want: "Wed, May 5, 2021 2:07 PM"},
		{locale: "en", layout: "[Due] L [at] LT", want: "Due 05/05/2021 at 2:07 PM"},
		{locale: "de", layout: "L LT", want: "05.05.2021 14:07"},
		{locale: "de", layout: "LLLL", want: "Mittwoch, 5. Mai 2021 14:07"},
		{locale: "es", layout: "LL", want: "5 de mayo de 2021"},
		{locale: "es", layout: "ll", want: "5 de may de 2021"},
		{locale: "ja", layout: "LL", want: "2021年5月5日"},
		{locale: "ar", layout: "LT", want: "١٤:٠٧"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, d.WithLocale(tc.locale).Format(tc.layout), "%s %s", tc.locale, tc.layout)
	}
}

func TestLayout(t *testing.T) {
	t.Parallel()

	custom := datekit.EnglishLocale()
	custom.Name = "custom"
	custom.Formats = map[string]string{"L": "YYYY-MM-DD", "l": "YY"}

	assert.Equal(t, "YYYY-MM-DD", localizedformat.Layout(custom, "L"))
	assert.Equal(t, "YY", localizedformat.Layout(custom, "l"))
	assert.Equal(t, "MMMM D, YYYY", localizedformat.Layout(custom, "LL"), "missing presets come from English")
	assert.Equal(t, "MMM D, YYYY", localizedformat.Layout(custom, "ll"))
	assert.Equal(t, "X", localizedformat.Layout(custom, "X"))
}

func TestShorten(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"MM/DD/YYYY":                "M/D/YYYY",
		"dddd, MMMM D, YYYY h:mm A": "ddd, MMM D, YYYY h:mm A",
		"D [de] MMMM [de] YYYY":     "D [de] MMM [de] YYYY",
		"[MMMM] MMMM":               "[MMMM] MMM",
		"HH:mm":                     "HH:mm",
	}

	for layout, want := range tests {
		assert.Equal(t, want, localizedformat.Shorten(layout), layout)
	}
}

func TestPresetsApplyPostFormatOnce(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	wrapped := datekit.EnglishLocale()
	wrapped.Name = "en-wrap"
	wrapped.PostFormat = func(s string) string { return "<" + s + ">" }
	require.NoError(t, env.RegisterLocale(wrapped))

	d := env.Date(2021, 4, 5, 14, 7, 9).WithLocale("en-wrap")
	assert.Equal(t, "<May 5, 2021>", d.Format("LL"))
	assert.Equal(t, "<2:07 PM on May 5, 2021>", d.Format("LT [on] LL"))
	assert.Equal(t, "May 5, 2021", d.FormatTokens(nil, "LL"))
	assert.Equal(t, "١٥/٥/٢٠٢١", env.Date(2021, 4, 15).WithLocale("ar").Format("L"))
}
