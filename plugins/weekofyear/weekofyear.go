// Package weekofyear numbers weeks the way the date's locale does: weeks
// begin on Locale.WeekStart and week 1 is the week holding January
// Locale.YearStart.
package weekofyear

import (
	"math"
	"strconv"

	datekit "github.com/goliatone/go-datekit"
)

// Plugin registers the w, ww, wo and gggg tokens.
var Plugin = datekit.NewPlugin("weekofyear", install)

func install(_ any, env *datekit.Env) {
	env.RegisterToken("w", func(d datekit.Date, _ *datekit.Locale) string {
		return strconv.Itoa(Week(d))
	})
	env.RegisterToken("ww", func(d datekit.Date, _ *datekit.Locale) string {
		return datekit.Pad(Week(d), 2)
	})
	env.RegisterToken("wo", func(d datekit.Date, l *datekit.Locale) string {
		return l.OrdinalFor(Week(d), "w")
	})
	env.RegisterToken("gggg", func(d datekit.Date, _ *datekit.Locale) string {
		return datekit.Pad(WeekYear(d), 4)
	})
}

// Week returns the locale week of the year, 1 to 53.
func Week(d datekit.Date) int {
	if !d.IsValid() {
		return 0
	}

	yearStart := d.LocaleData().YearStart
	if yearStart < 1 {
		yearStart = 1
	}

	// late December may already belong to week 1 of the next year
	if d.Month() == 11 && d.Day() > 25 {
		nextYearStart := d.StartOf(datekit.UnitYear).Add(1, datekit.UnitYear).WithDay(yearStart)
		if nextYearStart.IsBefore(d.EndOf(datekit.UnitWeek)) {
			return 1
		}
	}

	yearStartDay := d.StartOf(datekit.UnitYear).WithDay(yearStart)
	beforeWeekOne := yearStartDay.StartOf(datekit.UnitWeek).Subtract(1, datekit.UnitMillisecond)
	weeks := d.DiffFloat(beforeWeekOne, datekit.UnitWeek)
	if weeks < 0 {
		return Week(d.StartOf(datekit.UnitWeek))
	}
	return int(math.Ceil(weeks))
}

// WithWeek moves d by whole weeks into locale week w.
func WithWeek(d datekit.Date, w int) datekit.Date {
	if !d.IsValid() {
		return d
	}
	return d.Add((w-Week(d))*7, datekit.UnitDay)
}

// WeekYear returns the year the locale week of d is counted in.
func WeekYear(d datekit.Date) int {
	if !d.IsValid() {
		return 0
	}
	week := Week(d)
	switch {
	case week == 1 && d.Month() == 11:
		return d.Year() + 1
	case d.Month() == 0 && week >= 52:
		return d.Year() - 1
	}
	return d.Year()
}
