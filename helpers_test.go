package datekit

import (
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2021, time.May, 15, 10, 30, 45, 123_000_000, time.UTC)

func fixedClock() time.Time { return fixedNow }

// newTestEnv returns an Env reading dates in UTC with the clock stopped at
// fixedNow. Extra options are applied after those defaults.
func newTestEnv(t *testing.T, opts ...Option) *Env {
	t.Helper()
	base := []Option{WithLocation(time.UTC), WithClock(fixedClock)}
	env, err := NewEnv(append(base, opts...)...)
	require.NoError(t, err)
	return env
}

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func testLocale(name string) *Locale {
	locale := EnglishLocale()
	locale.Name = name
	return locale
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
