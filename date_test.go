package datekit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroDateIsInvalid(t *testing.T) {
	t.Parallel()

	var d Date
	assert.False(t, d.IsValid())
	assert.Equal(t, int64(0), d.ValueOf())
	assert.True(t, d.Time().IsZero())
	assert.False(t, d.Add(1, UnitDay).IsValid())
	assert.False(t, d.WithYear(2020).IsValid())
	assert.False(t, d.StartOf(UnitMonth).IsValid())
	assert.False(t, d.Equal(d))
}

func TestDateAccessors(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	d := env.Now()

	require.True(t, d.IsValid())
	assert.Equal(t, 2021, d.Year())
	assert.Equal(t, 4, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, 6, d.Weekday())
	assert.Equal(t, 10, d.Hour())
	assert.Equal(t, 30, d.Minute())
	assert.Equal(t, 45, d.Second())
	assert.Equal(t, 123, d.Millisecond())
	assert.Equal(t, fixedNow.UnixMilli(), d.ValueOf())
	assert.Equal(t, fixedNow.Unix(), d.Unix())
	assert.Same(t, env, d.Env())
	assert.Equal(t, time.UTC, d.Location())

	assert.Equal(t, 2021, d.Get(UnitYear))
	assert.Equal(t, 4, d.Get("M"))
	assert.Equal(t, 15, d.Get("D"))
	assert.Equal(t, 6, d.Get("d"))
	assert.Equal(t, 123, d.Get("ms"))
	assert.Equal(t, 0, d.Get("fortnight"))
}

func TestDateTruncatesToMilliseconds(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	d := env.FromTime(time.Date(2021, 1, 1, 0, 0, 0, 123_456_789, time.UTC))

	assert.Equal(t, 123, d.Millisecond())
	assert.Equal(t, 123_000_000, d.Time().Nanosecond())
}

func TestDateIsImmutable(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	d := env.Now()
	before := d.ValueOf()

	_ = d.Add(3, UnitDay)
	_ = d.WithYear(1999)
	_ = d.StartOf(UnitYear)
	_ = d.WithLocale("es")
	_ = d.WithExtra("key", "value")

	assert.Equal(t, before, d.ValueOf())
	assert.Equal(t, "en", d.Locale())
	_, ok := d.Extra("key")
	assert.False(t, ok)
}

func TestDateExtrasCopyOnWrite(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	a := env.Now().WithExtra("zone", "Europe/Berlin")
	b := a.WithExtra("zone", "Asia/Tokyo")

	got, ok := a.Extra("zone")
	require.True(t, ok)
	assert.Equal(t, "Europe/Berlin", got)

	got, ok = b.Extra("zone")
	require.True(t, ok)
	assert.Equal(t, "Asia/Tokyo", got)

	derived := b.Add(1, UnitHour)
	got, _ = derived.Extra("zone")
	assert.Equal(t, "Asia/Tokyo", got)
}

func TestDateZones(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	d := env.Now()

	t.Run("WithUTCOffset hours", func(t *testing.T) {
		shifted := d.WithUTCOffset(5)
		assert.Equal(t, 300, shifted.UTCOffset())
		assert.Equal(t, 15, shifted.Hour())
		assert.Equal(t, d.ValueOf(), shifted.ValueOf())
		assert.False(t, shifted.IsUTC())
	})

	t.Run("WithUTCOffset minutes", func(t *testing.T) {
		shifted := d.WithUTCOffset(-90)
		assert.Equal(t, -90, shifted.UTCOffset())
		assert.Equal(t, "-01:30", shifted.Format("Z"))
	})

	t.Run("WithUTCOffset zero is UTC", func(t *testing.T) {
		assert.True(t, d.WithUTCOffset(5).WithUTCOffset(0).IsUTC())
	})

	t.Run("In and Local", func(t *testing.T) {
		berlin := mustLocation(t, "Europe/Berlin")
		inBerlin := d.In(berlin)
		assert.Equal(t, 12, inBerlin.Hour())
		assert.Equal(t, 120, inBerlin.UTCOffset())
		assert.Equal(t, d.ValueOf(), inBerlin.ValueOf())

		back := inBerlin.Local()
		assert.Equal(t, 10, back.Hour())
		assert.Equal(t, time.UTC, back.Location())
	})

	t.Run("UTC mode", func(t *testing.T) {
		berlinEnv := newTestEnv(t, WithLocation(mustLocation(t, "Europe/Berlin")))
		local := berlinEnv.Now()
		assert.Equal(t, 12, local.Hour())
		assert.False(t, local.IsUTC())

		utc := local.UTC()
		assert.True(t, utc.IsUTC())
		assert.Equal(t, 10, utc.Hour())
		assert.Equal(t, 0, utc.UTCOffset())
	})
}

func TestDateLocale(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, WithLocales("es"))
	d := env.Now()

	assert.Equal(t, "en", d.Locale())
	es := d.WithLocale("ES")
	assert.Equal(t, "es", es.Locale())
	assert.Equal(t, "es", es.LocaleData().Name)
	assert.Equal(t, "sábado", es.Format("dddd"))

	unknown := d.WithLocale("xx")
	assert.Equal(t, "en", unknown.LocaleData().Name)
}

func TestDateCalendarFacts(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	tests := []struct {
		year, month int
		days        int
		leap        bool
	}{
		{year: 2020, month: 1, days: 29, leap: true},
		{year: 2021, month: 1, days: 28, leap: false},
		{year: 2000, month: 1, days: 29, leap: true},
		{year: 1900, month: 1, days: 28, leap: false},
		{year: 2021, month: 3, days: 30, leap: false},
		{year: 2021, month: 11, days: 31, leap: false},
	}

	for _, tc := range tests {
		d := env.Date(tc.year, tc.month, 10)
		assert.Equal(t, tc.days, d.DaysInMonth(), "%d-%d", tc.year, tc.month+1)
		assert.Equal(t, tc.leap, d.IsLeapYear(), "%d", tc.year)
	}
}

func TestDateSerialization(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	d := env.Now()

	assert.Equal(t, "2021-05-15T10:30:45.123Z", d.ToISOString())
	assert.Equal(t, "Sat, 15 May 2021 10:30:45 GMT", d.String())
	assert.Equal(t, "2021-05-15T10:30:45.123Z", d.WithUTCOffset(3).ToISOString())

	data, err := json.Marshal(map[string]Date{"at": d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2021-05-15T10:30:45.123Z"}`, string(data))

	data, err = json.Marshal(env.Invalid())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	assert.Equal(t, InvalidDateString, env.Invalid().ToISOString())
}

func TestDateEqualAndClone(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	d := env.Now()

	assert.True(t, d.Equal(d.Clone()))
	assert.True(t, d.Equal(d.WithUTCOffset(2)))
	assert.False(t, d.Equal(d.Add(1, UnitMillisecond)))
	assert.False(t, d.Equal(env.Invalid()))
}
