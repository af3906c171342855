package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datekit "github.com/goliatone/go-datekit"
)

var cldrFixture = filepath.Join("testdata", "cldr")

func TestParseLocaleSpec(t *testing.T) {
	t.Parallel()

	spec, err := parseLocaleSpec(" pt:br ")
	require.NoError(t, err)
	assert.Equal(t, localeSpec{Locale: "pt", Territory: "BR"}, spec)

	spec, err = parseLocaleSpec("es")
	require.NoError(t, err)
	assert.Equal(t, localeSpec{Locale: "es"}, spec)

	_, err = parseLocaleSpec("  ")
	assert.Error(t, err)
	_, err = parseLocaleSpec(":MX")
	assert.Error(t, err)
}

func TestNormalizeLocaleSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   localeSpec
		want localeSpec
	}{
		{in: localeSpec{Locale: "es_MX"}, want: localeSpec{Locale: "es-MX", Territory: "MX"}},
		{in: localeSpec{Locale: "es"}, want: localeSpec{Locale: "es", Territory: "ES"}},
		{in: localeSpec{Locale: "ar"}, want: localeSpec{Locale: "ar", Territory: "EG"}},
		{in: localeSpec{Locale: "pt", Territory: "br"}, want: localeSpec{Locale: "pt", Territory: "BR"}},
	}

	for _, tc := range tests {
		spec := tc.in
		require.NoError(t, normalizeLocaleSpec(&spec))
		assert.Equal(t, tc.want, spec)
	}

	assert.Error(t, normalizeLocaleSpec(nil))
	assert.Error(t, normalizeLocaleSpec(&localeSpec{Locale: " "}))
}

func TestParseFlags(t *testing.T) {
	t.Setenv("CLDR_CORE_DIR", "")

	cfg, err := parseFlags([]string{"--cldr", "core", "--locale", "es,de", "--locale", "pt:BR", "--stdout"})
	require.NoError(t, err)
	assert.Equal(t, "core", cfg.cldrPath)
	assert.True(t, cfg.stdout)
	assert.Equal(t, filepath.Join("data", "locales"), cfg.out)
	assert.Equal(t, []localeSpec{{Locale: "es"}, {Locale: "de"}, {Locale: "pt", Territory: "BR"}}, cfg.locales)

	_, err = parseFlags([]string{"--cldr", "core"})
	assert.ErrorContains(t, err, "--locale")

	_, err = parseFlags([]string{"--locale", "es"})
	assert.ErrorContains(t, err, "CLDR")

	t.Setenv("CLDR_CORE_DIR", "from-env")
	cfg, err = parseFlags([]string{"--locale", "es"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.cldrPath)
}

func TestBuildDefinitions(t *testing.T) {
	t.Parallel()

	data, err := loadCLDR(cldrFixture)
	require.NoError(t, err)

	definitions, err := buildDefinitions(data, []localeSpec{{Locale: "es"}, {Locale: "ar"}})
	require.NoError(t, err)
	require.Len(t, definitions, 2)

	ar, es := definitions[0], definitions[1]

	assert.Equal(t, "es", es.Name)
	assert.Equal(t, "español", es.DisplayName)
	assert.Equal(t, "mayo", es.Months[4])
	assert.Equal(t, "sept", es.MonthsShort[8], "alt variants are skipped")
	assert.Equal(t, "sábado", es.Weekdays[6])
	assert.Equal(t, "dom", es.WeekdaysShort[0])
	assert.Nil(t, es.WeekdaysMin, "incomplete widths are left to inherit")
	assert.Equal(t, datekit.OrdinalMasculine, es.Ordinal)
	require.NotNil(t, es.WeekStart)
	assert.Equal(t, 1, *es.WeekStart)
	require.NotNil(t, es.YearStart)
	assert.Equal(t, 4, *es.YearStart)
	assert.Empty(t, es.Digits)
	assert.Equal(t, &datekit.MeridiemDefinition{AM: "a. m.", PM: "p. m."}, es.Meridiem)
	assert.Equal(t, map[string]string{
		"LT":   "H:mm",
		"LTS":  "H:mm:ss",
		"L":    "DD/MM/YYYY",
		"LL":   "D [de] MMMM [de] YYYY",
		"LLL":  "D [de] MMMM [de] YYYY, H:mm",
		"LLLL": "dddd, D [de] MMMM [de] YYYY, H:mm",
	}, es.Formats)

	assert.Equal(t, "ar", ar.Name)
	assert.Equal(t, "العربية", ar.DisplayName)
	assert.Equal(t, "٠١٢٣٤٥٦٧٨٩", ar.Digits)
	require.NotNil(t, ar.WeekStart)
	assert.Equal(t, 6, *ar.WeekStart)
	require.NotNil(t, ar.YearStart)
	assert.Equal(t, 1, *ar.YearStart)
	assert.Nil(t, ar.Months)
	assert.Equal(t, "h:mm A", ar.Formats["LT"])
	assert.Equal(t, datekit.OrdinalPlain, ar.Ordinal)

	_, err = buildDefinitions(data, []localeSpec{{Locale: "ja"}})
	assert.Error(t, err, "no LDML and no root")
}

func TestRunWritesLoadableFiles(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "locales")
	cfg := generatorConfig{
		out:      out,
		cldrPath: cldrFixture,
		locales:  []localeSpec{{Locale: "es"}, {Locale: "ar"}},
	}
	require.NoError(t, run(cfg, nil))

	source, err := os.ReadFile(filepath.Join(out, "es.yaml"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(source, []byte(generatedHeader)))

	env, err := datekit.NewEnv(
		datekit.WithLocaleFiles(out),
		datekit.WithLocation(time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"ar", "en", "es"}, env.Locales())

	d := env.Date(2021, 4, 15).WithLocale("es")
	assert.Equal(t, "sábado 15 de mayo", d.Format("dddd D [de] MMMM"))
	assert.Equal(t, "١٥", d.WithLocale("ar").Format("DD"))
}

func TestRunStdout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := generatorConfig{
		cldrPath: cldrFixture,
		stdout:   true,
		locales:  []localeSpec{{Locale: "es"}, {Locale: "ar"}},
	}
	require.NoError(t, run(cfg, &buf))

	definitions, err := datekit.DecodeLocaleFile("locales.yaml", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, definitions, 2)
	assert.Equal(t, "ar", definitions[0].Name)
	assert.Equal(t, "es", definitions[1].Name)
}

func TestLoadCLDRErrors(t *testing.T) {
	t.Parallel()

	_, err := loadCLDR(filepath.Join("testdata", "missing"))
	assert.ErrorContains(t, err, "stat CLDR directory")

	_, err = loadCLDR(filepath.Join(cldrFixture, "main", "es.xml"))
	assert.ErrorContains(t, err, "not a directory")
}
