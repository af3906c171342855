// Package relativetime renders the distance between two dates as a phrase
// such as "in an hour" or "3 days ago" using the locale RelativeTime
// templates.
package relativetime

import (
	"math"
	"strconv"
	"strings"

	datekit "github.com/goliatone/go-datekit"
)

// ExtensionKey is the Env extension holding the installed Options.
const ExtensionKey = "relativetime.options"

// Threshold picks the locale template Key while the rounded distance is at
// most Max. Unit is the granularity the distance is measured in; an empty
// Unit keeps the unit of the previous threshold. Max 0 has no limit.
type Threshold struct {
	Key  string
	Max  int
	Unit datekit.Unit
}

// Options tunes the phrase selection.
type Options struct {
	Thresholds []Threshold
	// Rounding turns the fractional distance into the number shown.
	Rounding func(float64) float64
}

// DefaultThresholds are the cut-offs used when none are configured.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Key: "s", Max: 44, Unit: datekit.UnitSecond},
		{Key: "m", Max: 89},
		{Key: "mm", Max: 44, Unit: datekit.UnitMinute},
		{Key: "h", Max: 89},
		{Key: "hh", Max: 21, Unit: datekit.UnitHour},
		{Key: "d", Max: 35},
		{Key: "dd", Max: 25, Unit: datekit.UnitDay},
		{Key: "M", Max: 45},
		{Key: "MM", Max: 10, Unit: datekit.UnitMonth},
		{Key: "y", Max: 17},
		{Key: "yy", Unit: datekit.UnitYear},
	}
}

// Plugin stores the Options given to Extend on the Env.
var Plugin = datekit.NewPlugin("relativetime", install)

func install(opts any, env *datekit.Env) {
	var o Options
	switch v := opts.(type) {
	case Options:
		o = v
	case *Options:
		if v != nil {
			o = *v
		}
	}
	env.SetExtension(ExtensionKey, o.withDefaults())
}

func (o Options) withDefaults() Options {
	if len(o.Thresholds) == 0 {
		o.Thresholds = DefaultThresholds()
	}
	if o.Rounding == nil {
		o.Rounding = math.Round
	}
	return o
}

func options(env *datekit.Env) Options {
	if value, ok := env.Extension(ExtensionKey); ok {
		if o, ok := value.(Options); ok {
			return o
		}
	}
	return Options{}.withDefaults()
}

// From describes d relative to other: "3 days ago" when d is three days
// before other.
func From(d datekit.Date, other any, withoutSuffix bool) string {
	ref := d.Env().New(other)
	return describe(d, d, ref, withoutSuffix)
}

// To describes other relative to d: "in 3 days" when other is three days
// after d.
func To(d datekit.Date, other any, withoutSuffix bool) string {
	ref := d.Env().New(other)
	return describe(d, ref, d, withoutSuffix)
}

// FromNow is From against the Env clock.
func FromNow(d datekit.Date, withoutSuffix bool) string {
	return From(d, d.Env().Now(), withoutSuffix)
}

// ToNow is To against the Env clock.
func ToNow(d datekit.Date, withoutSuffix bool) string {
	return To(d, d.Env().Now(), withoutSuffix)
}

// describe renders the distance from base to target in the locale of d.
func describe(d, target, base datekit.Date, withoutSuffix bool) string {
	l := d.LocaleData()
	if !target.IsValid() || !base.IsValid() {
		if l.InvalidDate != "" {
			return l.InvalidDate
		}
		return datekit.InvalidDateString
	}

	opts := options(d.Env())
	var (
		result float64
		abs    int
		out    string
	)
	for i, t := range opts.Thresholds {
		if t.Unit != "" {
			result = target.DiffFloat(base, t.Unit)
		}
		abs = int(opts.Rounding(math.Abs(result)))
		if t.Max != 0 && abs > t.Max {
			continue
		}
		if abs <= 1 && i > 0 {
			t = opts.Thresholds[i-1]
		}
		out = strings.Replace(l.Relative(t.Key), "%d", strconv.Itoa(abs), 1)
		break
	}

	if !withoutSuffix {
		key := datekit.RelativePast
		if result > 0 {
			key = datekit.RelativeFuture
		}
		out = strings.Replace(l.Relative(key), "%s", out, 1)
	}
	if l.PostFormat != nil {
		out = l.PostFormat(out)
	}
	return out
}
