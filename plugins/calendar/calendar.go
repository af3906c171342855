// Package calendar renders dates relative to a reference day, such as
// "Today at 2:30 PM" or "Last Monday at 9:00 AM".
package calendar

import (
	"maps"

	datekit "github.com/goliatone/go-datekit"
)

// ExtensionKey is the Env extension holding the installed Options.
const ExtensionKey = "calendar.options"

// Options configures Env wide calendar layouts.
type Options struct {
	// Formats replaces locale templates by key (sameDay, nextDay, ...)
	// for every locale of the Env.
	Formats map[string]string
}

// Plugin stores the Options given to Extend on the Env. Calendar works
// without it, using only locale templates.
var Plugin = datekit.NewPlugin("calendar", install)

func install(opts any, env *datekit.Env) {
	var o Options
	switch v := opts.(type) {
	case Options:
		o = v
	case *Options:
		if v != nil {
			o = *v
		}
	case map[string]string:
		o.Formats = v
	}
	o.Formats = maps.Clone(o.Formats)
	env.SetExtension(ExtensionKey, o)
}

func options(env *datekit.Env) Options {
	if value, ok := env.Extension(ExtensionKey); ok {
		if o, ok := value.(Options); ok {
			return o
		}
	}
	return Options{}
}

var english = datekit.EnglishLocale()

// Key returns the calendar phrase key for d seen from the day holding ref.
func Key(d datekit.Date, ref any) string {
	start := d.Env().New(ref).StartOf(datekit.UnitDay)
	return key(d.DiffFloat(start, datekit.UnitDay))
}

func key(days float64) string {
	switch {
	case days < -6:
		return datekit.CalendarSameElse
	case days < -1:
		return datekit.CalendarLastWeek
	case days < 0:
		return datekit.CalendarLastDay
	case days < 1:
		return datekit.CalendarSameDay
	case days < 2:
		return datekit.CalendarNextDay
	case days < 7:
		return datekit.CalendarNextWeek
	}
	return datekit.CalendarSameElse
}

// Calendar renders d against ref (nil for now). overrides replaces locale
// templates by key, then the installed Options.Formats do; locale
// CalendarFuncs win over locale templates.
func Calendar(d datekit.Date, ref any, overrides map[string]string) string {
	if !d.IsValid() {
		return d.Format("")
	}
	start := d.Env().New(ref).StartOf(datekit.UnitDay)
	if !start.IsValid() {
		return d.Env().Invalid().WithLocale(d.Locale()).Format("")
	}

	k := key(d.DiffFloat(start, datekit.UnitDay))
	if layout, ok := overrides[k]; ok && layout != "" {
		return d.Format(layout)
	}
	if layout, ok := options(d.Env()).Formats[k]; ok && layout != "" {
		return d.Format(layout)
	}

	l := d.LocaleData()
	if fn, ok := l.CalendarFuncs[k]; ok && fn != nil {
		return fn(d, start)
	}
	if layout, ok := l.Calendar[k]; ok && layout != "" {
		return d.Format(layout)
	}
	return d.Format(english.Calendar[k])
}
