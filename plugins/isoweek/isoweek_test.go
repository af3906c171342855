package isoweek_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datekit "github.com/goliatone/go-datekit"
	"github.com/goliatone/go-datekit/plugins/isoweek"
)

const stamp = "YYYY-MM-DD HH:mm:ss.SSS"

func newEnv(t *testing.T) *datekit.Env {
	t.Helper()
	env, err := datekit.NewEnv(
		datekit.WithLocation(time.UTC),
		datekit.WithPlugin(isoweek.Plugin, nil),
	)
	require.NoError(t, err)
	return env
}

func TestISOWeek(t *testing.T) {
	t.Parallel()

	env := newEnv(t)

	tests := []struct {
		date    string
		week    int
		year    int
		weekday int
	}{
		{date: "2021-01-03", week: 53, year: 2020, weekday: 7},
		{date: "2021-01-04", week: 1, year: 2021, weekday: 1},
		{date: "2021-05-15", week: 19, year: 2021, weekday: 6},
		{date: "2019-12-30", week: 1, year: 2020, weekday: 1},
		{date: "2020-12-31", week: 53, year: 2020, weekday: 4},
	}

	for _, tc := range tests {
		d := env.New(tc.date)
		assert.Equal(t, tc.week, isoweek.ISOWeek(d), tc.date)
		assert.Equal(t, tc.year, isoweek.ISOWeekYear(d), tc.date)
		assert.Equal(t, tc.weekday, isoweek.ISOWeekday(d), tc.date)
		assert.Equal(t, tc.week, d.Get(datekit.UnitISOWeek), tc.date)
	}
}

func TestISOWeekTokens(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	assert.Equal(t, "2020-W53-7", env.New("2021-01-03").Format("GGGG-[W]WW-E"))
	assert.Equal(t, "W 1", env.New("2021-01-04").Format("[W] W"))
}

func TestISOWeekUnit(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	d := env.Date(2021, 0, 3, 15, 20)

	assert.Equal(t, "2020-12-28 00:00:00.000", d.StartOf(datekit.UnitISOWeek).Format(stamp))
	assert.Equal(t, "2021-01-03 23:59:59.999", d.EndOf("isoWeek").Format(stamp))
	assert.Equal(t, "2021-01-10", d.Add(1, "W").Format("YYYY-MM-DD"))
	assert.Equal(t, int64(2), d.Add(15, datekit.UnitDay).Diff(d, datekit.UnitISOWeek))

	saturday := env.New("2021-05-15")
	assert.Equal(t, "2021-01-09", saturday.Set(datekit.UnitISOWeek, 1).Format("YYYY-MM-DD"))
	assert.Equal(t, "2021-05-10", isoweek.WithISOWeekday(saturday, 1).Format("YYYY-MM-DD"))
	assert.Equal(t, "2021-05-16", isoweek.WithISOWeekday(saturday, 7).Format("YYYY-MM-DD"))
}

func TestISOWeekInvalid(t *testing.T) {
	t.Parallel()

	var d datekit.Date
	assert.Equal(t, 0, isoweek.ISOWeek(d))
	assert.Equal(t, 0, isoweek.ISOWeekYear(d))
	assert.Equal(t, 0, isoweek.ISOWeekday(d))
	assert.False(t, isoweek.WithISOWeek(d, 3).IsValid())
}
