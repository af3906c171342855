package datekit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEnv(t *testing.T) {
	t.Cleanup(ResetDefault)

	first := Default()
	assert.Same(t, first, Default())

	env := newTestEnv(t, WithLocales("de"))
	SetDefault(env)
	assert.Same(t, env, Default())

	assert.Equal(t, "2021-05-15T10:30:45Z", Now().Format(DefaultLayout))
	assert.Equal(t, "2021-05-05", New("2021-05-05T10:00:00Z").Format("YYYY-MM-DD"))
	assert.True(t, UTC("2021-05-05").IsUTC())
	assert.Equal(t, int64(86400), Unix(86400).Unix())
	assert.Equal(t, int64(1500), UnixMilli(1500).ValueOf())
	assert.Equal(t, 2021, FromTime(fixedNow).Year())
	assert.Equal(t, "2021-05-05", ParseFormat("2021-05-05", "").Format("YYYY-MM-DD"))

	require.NoError(t, RegisterLocale(testLocale("xx")))
	assert.True(t, env.LocaleRegistry().Has("xx"))

	installed := false
	Extend(NewPlugin("flag", func(any, *Env) { installed = true }), nil)
	assert.True(t, installed)
	assert.True(t, env.HasPlugin("flag"))

	var zero Date
	assert.Same(t, env, zero.Env(), "zero dates use the default env")
	assert.Equal(t, "Samstag", zero.Env().Now().WithLocale("de").Format("dddd"))

	ResetDefault()
	assert.NotSame(t, env, Default())
	assert.Equal(t, []string{"en"}, Default().Locales())
	assert.WithinDuration(t, time.Now(), Now().Time(), time.Minute)
}
