// Package minmax picks the earliest or latest of a set of dates.
package minmax

import (
	datekit "github.com/goliatone/go-datekit"
)

// ExtensionKey is the Env extension holding the installed Statics.
const ExtensionKey = "minmax"

// Statics are Min and Max bound to one Env: an empty list returns that
// Env's now instead of the default Env's.
type Statics struct {
	Min func(dates ...datekit.Date) datekit.Date
	Max func(dates ...datekit.Date) datekit.Date
}

// Plugin binds Statics to the Env. Min and Max work without it.
var Plugin = datekit.NewPlugin("minmax", install)

func install(_ any, env *datekit.Env) {
	env.SetExtension(ExtensionKey, Statics{
		Min: func(dates ...datekit.Date) datekit.Date { return pick(env, dates, earlier) },
		Max: func(dates ...datekit.Date) datekit.Date { return pick(env, dates, later) },
	})
}

// For returns the Statics installed on env.
func For(env *datekit.Env) (Statics, bool) {
	if env == nil {
		return Statics{}, false
	}
	value, ok := env.Extension(ExtensionKey)
	if !ok {
		return Statics{}, false
	}
	statics, ok := value.(Statics)
	return statics, ok
}

// Min returns the earliest date. An invalid date in the list is returned
// as is; an empty list returns now on the default Env.
func Min(dates ...datekit.Date) datekit.Date {
	return pick(datekit.Default(), dates, earlier)
}

// Max returns the latest date, with the same rules as Min.
func Max(dates ...datekit.Date) datekit.Date {
	return pick(datekit.Default(), dates, later)
}

func earlier(candidate, current datekit.Date) bool { return candidate.IsBefore(current) }

func later(candidate, current datekit.Date) bool { return candidate.IsAfter(current) }

func pick(env *datekit.Env, dates []datekit.Date, better func(candidate, current datekit.Date) bool) datekit.Date {
	if len(dates) == 0 {
		return env.Now()
	}
	result := dates[0]
	if !result.IsValid() {
		return result
	}
	for _, d := range dates[1:] {
		if !d.IsValid() {
			return d
		}
		if better(d, result) {
			result = d
		}
	}
	return result
}
