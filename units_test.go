package datekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Unit
	}{
		{raw: "y", want: UnitYear},
		{raw: "years", want: UnitYear},
		{raw: "Year", want: UnitYear},
		{raw: "M", want: UnitMonth},
		{raw: "months", want: UnitMonth},
		{raw: "m", want: UnitMinute},
		{raw: "minutes", want: UnitMinute},
		{raw: "D", want: UnitDate},
		{raw: "dates", want: UnitDate},
		{raw: "d", want: UnitDay},
		{raw: "days", want: UnitDay},
		{raw: "w", want: UnitWeek},
		{raw: "W", want: UnitISOWeek},
		{raw: "isoWeek", want: UnitISOWeek},
		{raw: "isoweeks", want: UnitISOWeek},
		{raw: "Q", want: UnitQuarter},
		{raw: "quarters", want: UnitQuarter},
		{raw: "h", want: UnitHour},
		{raw: "HOURS", want: UnitHour},
		{raw: "s", want: UnitSecond},
		{raw: "ms", want: UnitMillisecond},
		{raw: "milliseconds", want: UnitMillisecond},
		{raw: " day ", want: UnitDay},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeUnit(tc.raw), "NormalizeUnit(%q)", tc.raw)
	}
}

func TestNormalizeUnitPassesUnknownThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unit("fortnight"), NormalizeUnit("fortnight"))
	assert.Equal(t, Unit(""), NormalizeUnit(""))
	assert.Equal(t, UnitMonth, Unit("Months").Normalize())
	assert.Equal(t, "isoWeek", UnitISOWeek.String())
}
