// Package isoweek adds ISO 8601 weeks: Monday first, week 1 holds the
// year's first Thursday.
package isoweek

import (
	"strconv"

	datekit "github.com/goliatone/go-datekit"
)

// Plugin registers the isoWeek unit and the W, WW, E and GGGG tokens.
var Plugin = datekit.NewPlugin("isoweek", install)

func install(_ any, env *datekit.Env) {
	env.RegisterUnit(datekit.UnitISOWeek, datekit.UnitHandler{
		Get:     ISOWeek,
		Set:     WithISOWeek,
		Add:     func(d datekit.Date, amount int) datekit.Date { return d.Add(7*amount, datekit.UnitDay) },
		StartOf: startOfISOWeek,
	})

	env.RegisterToken("W", func(d datekit.Date, _ *datekit.Locale) string {
		return strconv.Itoa(ISOWeek(d))
	})
	env.RegisterToken("WW", func(d datekit.Date, _ *datekit.Locale) string {
		return datekit.Pad(ISOWeek(d), 2)
	})
	env.RegisterToken("E", func(d datekit.Date, _ *datekit.Locale) string {
		return strconv.Itoa(ISOWeekday(d))
	})
	env.RegisterToken("GGGG", func(d datekit.Date, _ *datekit.Locale) string {
		return datekit.Pad(ISOWeekYear(d), 4)
	})
}

// ISOWeek returns the ISO week number, 1 to 53.
func ISOWeek(d datekit.Date) int {
	if !d.IsValid() {
		return 0
	}
	_, week := d.Time().ISOWeek()
	return week
}

// ISOWeekYear returns the year the ISO week of d belongs to.
func ISOWeekYear(d datekit.Date) int {
	if !d.IsValid() {
		return 0
	}
	year, _ := d.Time().ISOWeek()
	return year
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(d datekit.Date) int {
	if !d.IsValid() {
		return 0
	}
	if wd := d.Weekday(); wd != 0 {
		return wd
	}
	return 7
}

// WithISOWeek moves d by whole weeks into ISO week w, keeping the weekday.
func WithISOWeek(d datekit.Date, w int) datekit.Date {
	if !d.IsValid() {
		return d
	}
	return d.Add((w-ISOWeek(d))*7, datekit.UnitDay)
}

// WithISOWeekday moves d within its ISO week; 1 is Monday, 7 Sunday.
func WithISOWeekday(d datekit.Date, weekday int) datekit.Date {
	if !d.IsValid() {
		return d
	}
	return d.Add(weekday-ISOWeekday(d), datekit.UnitDay)
}

func startOfISOWeek(d datekit.Date) datekit.Date {
	if !d.IsValid() {
		return d
	}
	return d.Add(1-ISOWeekday(d), datekit.UnitDay).StartOf(datekit.UnitDay)
}
