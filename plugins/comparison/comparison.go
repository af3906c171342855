// Package comparison adds range and inclusive comparisons on top of
// IsSame, IsBefore and IsAfter.
package comparison

import (
	datekit "github.com/goliatone/go-datekit"
)

// ExtensionKey is the Env extension holding the installed Options.
const ExtensionKey = "comparison.options"

// Options configures the Env wide comparison defaults.
type Options struct {
	// Inclusivity is used by IsBetween when the call passes "".
	Inclusivity string
}

// Plugin stores the Options given to Extend on the Env. The helpers work
// without it and then default to "()".
var Plugin = datekit.NewPlugin("comparison", install)

func install(opts any, env *datekit.Env) {
	var o Options
	switch v := opts.(type) {
	case Options:
		o = v
	case *Options:
		if v != nil {
			o = *v
		}
	case string:
		o.Inclusivity = v
	}
	if o.Inclusivity == "" {
		o.Inclusivity = defaultBetween
	}
	if !validInclusivity(o.Inclusivity) {
		env.Logger().Warn("comparison: ignoring inclusivity", "value", o.Inclusivity)
		o.Inclusivity = defaultBetween
	}
	env.SetExtension(ExtensionKey, o)
}

func validInclusivity(value string) bool {
	return len(value) == 2 &&
		(value[0] == '(' || value[0] == '[') &&
		(value[1] == ')' || value[1] == ']')
}

func defaultInclusivity(env *datekit.Env) string {
	if value, ok := env.Extension(ExtensionKey); ok {
		if o, ok := value.(Options); ok {
			return o.Inclusivity
		}
	}
	return defaultBetween
}

// Inclusivity markers for IsBetween. "(" and ")" exclude the bound, "["
// and "]" include it.
const (
	Exclusive      = "()"
	Inclusive      = "[]"
	IncludeStart   = "[)"
	IncludeEnd     = "(]"
	defaultBetween = Exclusive
)

// IsBetween reports whether d lies between a and b at unit granularity.
// The bounds may be given in either order. An empty inclusivity means the
// installed Options.Inclusivity, else "()". Any invalid operand gives
// false.
func IsBetween(d datekit.Date, a, b any, unit datekit.Unit, inclusivity string) bool {
	if !d.IsValid() {
		return false
	}
	env := d.Env()
	start, end := env.New(a), env.New(b)
	if !start.IsValid() || !end.IsValid() {
		return false
	}

	if inclusivity == "" {
		inclusivity = defaultInclusivity(env)
	}
	if !validInclusivity(inclusivity) {
		inclusivity = defaultBetween
	}
	openStart := inclusivity[0] == '('
	openEnd := inclusivity[1] == ')'

	after := func(bound datekit.Date, open bool) bool {
		if open {
			return d.IsAfter(bound, unit)
		}
		return !d.IsBefore(bound, unit)
	}
	before := func(bound datekit.Date, open bool) bool {
		if open {
			return d.IsBefore(bound, unit)
		}
		return !d.IsAfter(bound, unit)
	}

	return (after(start, openStart) && before(end, openEnd)) ||
		(before(start, openStart) && after(end, openEnd))
}

// IsSameOrBefore reports d.IsSame(other, unit) || d.IsBefore(other, unit).
func IsSameOrBefore(d datekit.Date, other any, unit ...datekit.Unit) bool {
	return d.IsSame(other, unit...) || d.IsBefore(other, unit...)
}

// IsSameOrAfter reports d.IsSame(other, unit) || d.IsAfter(other, unit).
func IsSameOrAfter(d datekit.Date, other any, unit ...datekit.Unit) bool {
	return d.IsSame(other, unit...) || d.IsAfter(other, unit...)
}

// IsToday reports whether d falls on the current day of its Env clock.
func IsToday(d datekit.Date) bool {
	return isDayFromNow(d, 0)
}

// IsTomorrow reports whether d falls on the day after today.
func IsTomorrow(d datekit.Date) bool {
	return isDayFromNow(d, 1)
}

// IsYesterday reports whether d falls on the day before today.
func IsYesterday(d datekit.Date) bool {
	return isDayFromNow(d, -1)
}

func isDayFromNow(d datekit.Date, days int) bool {
	if !d.IsValid() {
		return false
	}
	target := d.Env().Now().In(d.Location()).Add(days, datekit.UnitDay)
	return d.IsSame(target, datekit.UnitDay)
}
