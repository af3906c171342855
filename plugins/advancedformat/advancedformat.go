// Package advancedformat adds the Do, k, kk, z and zzz format tokens.
package advancedformat

import (
	"strconv"

	datekit "github.com/goliatone/go-datekit"
)

// Plugin registers the extra tokens on the Env token registry.
var Plugin = datekit.NewPlugin("advancedformat", install)

func install(_ any, env *datekit.Env) {
	for token, fn := range Tokens() {
		env.RegisterToken(token, fn)
	}
}

// Tokens returns the token functions installed by Plugin.
func Tokens() map[string]datekit.TokenFunc {
	return map[string]datekit.TokenFunc{
		"Do": func(d datekit.Date, l *datekit.Locale) string {
			return l.OrdinalFor(d.Day(), "D")
		},
		"k": func(d datekit.Date, _ *datekit.Locale) string {
			return strconv.Itoa(hour24(d))
		},
		"kk": func(d datekit.Date, _ *datekit.Locale) string {
			return datekit.Pad(hour24(d), 2)
		},
		"z":   ZoneAbbreviation,
		"zzz": ZoneName,
	}
}

// ZoneAbbreviation renders the zone abbreviation in effect at d, such as
// CET or EDT. Zones without one render their offset.
func ZoneAbbreviation(d datekit.Date, _ *datekit.Locale) string {
	name, _ := d.Time().Zone()
	if name == "" {
		return datekit.FormatOffset(d.UTCOffset(), ":")
	}
	return name
}

// ZoneName renders the location name of d, such as Europe/Berlin.
func ZoneName(d datekit.Date, l *datekit.Locale) string {
	loc := d.Location()
	if loc == nil || loc.String() == "" {
		return ZoneAbbreviation(d, l)
	}
	return loc.String()
}

// hour24 counts hours 1 to 24, midnight being 24.
func hour24(d datekit.Date) int {
	if h := d.Hour(); h != 0 {
		return h
	}
	return 24
}
