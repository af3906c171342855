package datekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constToken(value string) TokenFunc {
	return func(Date, *Locale) string { return value }
}

func TestTokenRegistryDefaults(t *testing.T) {
	t.Parallel()

	registry := NewTokenRegistry(nil)
	tokens := registry.Tokens("en")

	for _, token := range []string{"YY", "YYYY", "M", "MM", "MMM", "MMMM", "D", "DD", "d", "dd", "ddd", "dddd", "H", "HH", "h", "hh", "m", "mm", "s", "ss", "S", "SS", "SSS", "A", "a", "Z", "ZZ", "X", "x"} {
		assert.Contains(t, tokens, token)
	}

	_, ok := registry.Token("Q", "en")
	assert.False(t, ok)
}

func TestTokenRegistryInvalidatesCache(t *testing.T) {
	t.Parallel()

	registry := NewTokenRegistry(nil)
	_, ok := registry.Token("Q", "en")
	require.False(t, ok)

	registry.Register("Q", constToken("quarter"))
	fn, ok := registry.Token("Q", "en")
	require.True(t, ok)
	assert.Equal(t, "quarter", fn(Date{}, nil))

	registry.Register("", constToken("ignored"))
	registry.Register("R", nil)
	_, ok = registry.Token("R", "en")
	assert.False(t, ok)
}

func TestTokenRegistryLookupOrder(t *testing.T) {
	t.Parallel()

	resolver := NewStaticFallbackResolver()
	resolver.Set("ca", "es")
	registry := NewTokenRegistry(resolver)

	registry.RegisterProvider(TokenProviderFunc(func(locale string) map[string]TokenFunc {
		return map[string]TokenFunc{"P": constToken("provider:" + locale), "MMMM": constToken("provider-month")}
	}))
	registry.RegisterLocale("es", "MMMM", constToken("es-month"))
	registry.RegisterLocale("es-MX", "MMMM", constToken("es-mx-month"))

	tests := []struct {
		token  string
		locale string
		want   string
	}{
		{token: "MMMM", locale: "en", want: "provider-month"},
		{token: "MMMM", locale: "es", want: "es-month"},
		{token: "MMMM", locale: "es-ar", want: "es-month"},
		{token: "MMMM", locale: "es-mx", want: "es-mx-month"},
		{token: "MMMM", locale: "ca", want: "es-month"},
		{token: "P", locale: "de", want: "provider:de"},
	}

	for _, tc := range tests {
		fn, ok := registry.Token(tc.token, tc.locale)
		require.True(t, ok, "%s/%s", tc.token, tc.locale)
		assert.Equal(t, tc.want, fn(Date{}, nil), "%s/%s", tc.token, tc.locale)
	}
}

func TestTokenRegistryLaterProvidersWin(t *testing.T) {
	t.Parallel()

	registry := NewTokenRegistry(nil)
	registry.RegisterProvider(TokenProviderFunc(func(string) map[string]TokenFunc {
		return map[string]TokenFunc{"P": constToken("first")}
	}))
	registry.RegisterProvider(TokenProviderFunc(func(string) map[string]TokenFunc {
		return map[string]TokenFunc{"P": constToken("second"), "": constToken("skip")}
	}))
	registry.RegisterProvider(nil)

	fn, ok := registry.Token("P", "en")
	require.True(t, ok)
	assert.Equal(t, "second", fn(Date{}, nil))
}

func TestTokenRegistrySetResolver(t *testing.T) {
	t.Parallel()

	registry := NewTokenRegistry(nil)
	registry.RegisterLocale("es", "D", constToken("es-day"))

	fn, _ := registry.Token("D", "ca")
	assert.NotEqual(t, "es-day", fn(Date{valid: true}, englishLocale))

	resolver := NewStaticFallbackResolver()
	resolver.Set("ca", "es")
	registry.SetResolver(resolver)

	fn, _ = registry.Token("D", "ca")
	assert.Equal(t, "es-day", fn(Date{}, nil))
}

func TestFormatMatchesLongestToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.RegisterToken("Do", constToken("<Do>"))
	env.RegisterToken("DDDD", constToken("<DDDD>"))
	d := env.Date(2021, 4, 5)

	assert.Equal(t, "<Do> <DDDD> 05 5", d.Format("Do DDDD DD D"))
	assert.Equal(t, "<DDDD>5", d.Format("DDDDD"))
}
