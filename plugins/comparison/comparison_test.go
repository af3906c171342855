package comparison_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datekit "github.com/goliatone/go-datekit"
	"github.com/goliatone/go-datekit/plugins/comparison"
)

var now = time.Date(2021, time.May, 15, 10, 30, 45, 0, time.UTC)

func newEnv(t *testing.T) *datekit.Env {
	t.Helper()
	env, err := datekit.NewEnv(
		datekit.WithLocation(time.UTC),
		datekit.WithClock(func() time.Time { return now }),
		datekit.WithPlugin(comparison.Plugin, nil),
	)
	require.NoError(t, err)
	return env
}

func TestIsBetween(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	d := env.New("2021-05-10T12:00:00Z")

	tests := []struct {
		name        string
		a, b        any
		unit        datekit.Unit
		inclusivity string
		want        bool
	}{
		{name: "inside", a: "2021-05-01", b: "2021-05-31", want: true},
		{name: "reversed bounds", a: "2021-05-31", b: "2021-05-01", want: true},
		{name: "outside", a: "2021-05-11", b: "2021-05-31", want: false},
		{name: "same day exclusive", a: "2021-05-10", b: "2021-05-31", unit: datekit.UnitDay, want: false},
		{name: "same day inclusive", a: "2021-05-10", b: "2021-05-31", unit: datekit.UnitDay, inclusivity: comparison.Inclusive, want: true},
		{name: "include start", a: "2021-05-10", b: "2021-05-31", unit: datekit.UnitDay, inclusivity: comparison.IncludeStart, want: true},
		{name: "include end only", a: "2021-05-10", b: "2021-05-31", unit: datekit.UnitDay, inclusivity: comparison.IncludeEnd, want: false},
		{name: "month granularity", a: "2021-05-01", b: "2021-05-31", unit: datekit.UnitMonth, inclusivity: comparison.Inclusive, want: true},
		{name: "bad inclusivity", a: "2021-05-10", b: "2021-05-31", unit: datekit.UnitDay, inclusivity: "[", want: false},
		{name: "invalid bound", a: "garbage", b: "2021-05-31", want: false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, comparison.IsBetween(d, tc.a, tc.b, tc.unit, tc.inclusivity), tc.name)
	}

	assert.False(t, comparison.IsBetween(env.Invalid(), "2021-05-01", "2021-05-31", "", ""))
}

func TestIsSameOrBeforeAfter(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	d := env.New("2021-05-10T12:00:00Z")

	assert.True(t, comparison.IsSameOrBefore(d, "2021-05-10T12:00:00Z"))
	assert.True(t, comparison.IsSameOrBefore(d, "2021-05-11"))
	assert.False(t, comparison.IsSameOrBefore(d, "2021-05-10"))
	assert.True(t, comparison.IsSameOrBefore(d, "2021-05-10", datekit.UnitDay))

	assert.True(t, comparison.IsSameOrAfter(d, "2021-05-10"))
	assert.False(t, comparison.IsSameOrAfter(d, "2021-05-11"))
	assert.True(t, comparison.IsSameOrAfter(d, "2021-05-31", datekit.UnitMonth))
	assert.False(t, comparison.IsSameOrAfter(d, "garbage"))
}

func TestRelativeDays(t *testing.T) {
	t.Parallel()

	env := newEnv(t)

	assert.True(t, comparison.IsToday(env.Date(2021, 4, 15, 23, 59)))
	assert.False(t, comparison.IsToday(env.Date(2021, 4, 16)))
	assert.True(t, comparison.IsTomorrow(env.Date(2021, 4, 16)))
	assert.True(t, comparison.IsYesterday(env.Date(2021, 4, 14, 0, 1)))
	assert.False(t, comparison.IsYesterday(env.Date(2021, 4, 13, 23)))
	assert.False(t, comparison.IsToday(env.Invalid()))

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	// 17:00 UTC on the 15th is already the 16th in Tokyo, where it is 19:30 now
	late := env.Date(2021, 4, 15, 17).In(tokyo)
	assert.False(t, comparison.IsToday(late))
	assert.True(t, comparison.IsTomorrow(late))
}

func TestIsBetweenPluginInclusivity(t *testing.T) {
	t.Parallel()

	env, err := datekit.NewEnv(
		datekit.WithLocation(time.UTC),
		datekit.WithPlugin(comparison.Plugin, comparison.Options{Inclusivity: comparison.IncludeStart}),
	)
	require.NoError(t, err)

	d := env.New("2021-05-10T12:00:00Z")
	assert.True(t, comparison.IsBetween(d, "2021-05-10", "2021-05-31", datekit.UnitDay, ""), "installed default applies")
	assert.False(t, comparison.IsBetween(d, "2021-05-10", "2021-05-31", datekit.UnitDay, comparison.Exclusive), "explicit value wins")

	got, ok := env.Extension(comparison.ExtensionKey)
	require.True(t, ok)
	assert.Equal(t, comparison.IncludeStart, got.(comparison.Options).Inclusivity)

	bad, err := datekit.NewEnv(
		datekit.WithLocation(time.UTC),
		datekit.WithPlugin(comparison.Plugin, "<>"),
	)
	require.NoError(t, err)
	got, _ = bad.Extension(comparison.ExtensionKey)
	assert.Equal(t, comparison.Exclusive, got.(comparison.Options).Inclusivity)
	assert.False(t, comparison.IsBetween(bad.New("2021-05-10"), "2021-05-10", "2021-05-31", datekit.UnitDay, ""))
}
