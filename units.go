package datekit

import (
	"strings"
	"time"
)

// Unit is a canonical calendar granularity name.
type Unit string

const (
	UnitMillisecond Unit = "millisecond"
	UnitSecond      Unit = "second"
	UnitMinute      Unit = "minute"
	UnitHour        Unit = "hour"
	// UnitDay is a day span; as a field it reads the day of the week.
	UnitDay Unit = "day"
	// UnitDate is the day of the month.
	UnitDate    Unit = "date"
	UnitWeek    Unit = "week"
	UnitISOWeek Unit = "isoWeek"
	UnitMonth   Unit = "month"
	UnitQuarter Unit = "quarter"
	UnitYear    Unit = "year"
)

var shortUnits = map[string]Unit{
	"y":  UnitYear,
	"M":  UnitMonth,
	"Q":  UnitQuarter,
	"w":  UnitWeek,
	"W":  UnitISOWeek,
	"D":  UnitDate,
	"d":  UnitDay,
	"h":  UnitHour,
	"m":  UnitMinute,
	"s":  UnitSecond,
	"ms": UnitMillisecond,
}

var longUnits = map[string]Unit{
	"year":        UnitYear,
	"month":       UnitMonth,
	"quarter":     UnitQuarter,
	"week":        UnitWeek,
	"isoweek":     UnitISOWeek,
	"date":        UnitDate,
	"day":         UnitDay,
	"hour":        UnitHour,
	"minute":      UnitMinute,
	"second":      UnitSecond,
	"millisecond": UnitMillisecond,
}

// NormalizeUnit resolves single letter codes, full names and plurals to
// their canonical Unit. Short codes are case sensitive (M is month, m is
// minute). Unknown strings are returned unchanged.
func NormalizeUnit(raw string) Unit {
	if unit, ok := shortUnits[raw]; ok {
		return unit
	}

	lowered := strings.ToLower(strings.TrimSpace(raw))
	if unit, ok := longUnits[lowered]; ok {
		return unit
	}
	if unit, ok := longUnits[strings.TrimSuffix(lowered, "s")]; ok {
		return unit
	}

	return Unit(raw)
}

// Normalize returns the canonical form of u.
func (u Unit) Normalize() Unit {
	return NormalizeUnit(string(u))
}

func (u Unit) String() string {
	return string(u)
}

// unitDuration returns the fixed elapsed length of units that are not
// calendar aware.
func unitDuration(u Unit) (time.Duration, bool) {
	switch u {
	case UnitMillisecond:
		return time.Millisecond, true
	case UnitSecond:
		return time.Second, true
	case UnitMinute:
		return time.Minute, true
	case UnitHour:
		return time.Hour, true
	default:
		return 0, false
	}
}
