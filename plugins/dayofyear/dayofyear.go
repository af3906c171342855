// Package dayofyear adds the day of the year, 1 to 366, and the DDD and
// DDDD tokens.
package dayofyear

import (
	"strconv"

	datekit "github.com/goliatone/go-datekit"
)

// Plugin registers the DDD and DDDD tokens.
var Plugin = datekit.NewPlugin("dayofyear", install)

func install(_ any, env *datekit.Env) {
	env.RegisterToken("DDD", func(d datekit.Date, _ *datekit.Locale) string {
		return strconv.Itoa(DayOfYear(d))
	})
	env.RegisterToken("DDDD", func(d datekit.Date, _ *datekit.Locale) string {
		return datekit.Pad(DayOfYear(d), 3)
	})
}

// DayOfYear returns 1 for January 1st.
func DayOfYear(d datekit.Date) int {
	if !d.IsValid() {
		return 0
	}
	return d.Time().YearDay()
}

// WithDayOfYear moves d to day n of its year keeping the wall clock time.
// Values outside the year carry into the neighbours.
func WithDayOfYear(d datekit.Date, n int) datekit.Date {
	if !d.IsValid() {
		return d
	}
	return d.Add(n-DayOfYear(d), datekit.UnitDay)
}
