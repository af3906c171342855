package datekit

import (
	"encoding/json"
	"maps"
	"time"
)

// config travels with every Date and is copied on each derivation.
type config struct {
	env    *Env
	locale string
	utc    bool
	loc    *time.Location
	extras map[string]any
}

// Date is an immutable instant at millisecond resolution plus the locale,
// zone and plugin settings used to read it. The zero Date is invalid.
// Every operation on an invalid Date yields an invalid Date.
type Date struct {
	t     time.Time
	valid bool
	cfg   config
}

// Invalid returns the invalid Date bound to env.
func (e *Env) Invalid() Date {
	return Date{cfg: config{env: e, loc: e.Location()}}
}

func (e *Env) fromTime(t time.Time, locale string) Date {
	loc := e.Location()
	return Date{
		t:     t.In(loc).Truncate(time.Millisecond),
		valid: true,
		cfg:   config{env: e, locale: locale, loc: loc},
	}
}

func (d Date) env() *Env {
	if d.cfg.env != nil {
		return d.cfg.env
	}
	return Default()
}

func (d Date) location() *time.Location {
	if d.cfg.loc != nil {
		return d.cfg.loc
	}
	return d.env().Location()
}

// derive returns a Date at t carrying a copy of d's configuration.
func (d Date) derive(t time.Time) Date {
	if !d.valid {
		return d
	}
	cfg := d.cfg
	cfg.extras = maps.Clone(d.cfg.extras)
	loc := d.location()
	return Date{t: t.In(loc).Truncate(time.Millisecond), valid: true, cfg: cfg}
}

// build constructs a Date from wall clock fields in d's location. Out of
// range fields carry like time.Date.
func (d Date) build(year, month0, day, hour, minute, second, ms int) Date {
	if !d.valid {
		return d
	}
	return d.derive(WallTime(year, time.Month(month0+1), day, hour, minute, second, ms*int(time.Millisecond), d.location()))
}

// WallTime is time.Date except that a wall clock skipped by a DST gap
// resolves forward to the same distance past the gap, so midnight on a
// day starting at 01:00 reads as 01:00 of that day.
func WallTime(year int, month time.Month, day, hour, minute, second, nsec int, loc *time.Location) time.Time {
	t := time.Date(year, month, day, hour, minute, second, nsec, loc)
	want := time.Date(year, month, day, hour, minute, second, nsec, time.UTC)
	got := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	if skipped := want.Sub(got); skipped > 0 {
		return t.Add(skipped)
	}
	return t
}

// IsValid reports whether d holds an instant.
func (d Date) IsValid() bool {
	return d.valid
}

// Env returns the Env that created d.
func (d Date) Env() *Env {
	return d.env()
}

// Clone returns d. Dates are values, Clone exists for readability at call sites.
func (d Date) Clone() Date {
	if !d.valid {
		return d
	}
	return d.derive(d.t)
}

// Time returns the instant in d's location, or the zero time when invalid.
func (d Date) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}
	return d.t
}

// ValueOf returns milliseconds since the Unix epoch, 0 when invalid.
func (d Date) ValueOf() int64 {
	if !d.valid {
		return 0
	}
	return d.t.UnixMilli()
}

// Unix returns whole seconds since the Unix epoch, 0 when invalid.
func (d Date) Unix() int64 {
	if !d.valid {
		return 0
	}
	return d.t.Unix()
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the month, 0 for January.
func (d Date) Month() int { return int(d.t.Month()) - 1 }

// Day returns the day of the month, starting at 1.
func (d Date) Day() int { return d.t.Day() }

// Weekday returns the day of the week, 0 for Sunday.
func (d Date) Weekday() int { return int(d.t.Weekday()) }

// Hour returns the hour of the day.
func (d Date) Hour() int { return d.t.Hour() }

// Minute returns the minute of the hour.
func (d Date) Minute() int { return d.t.Minute() }

// Second returns the second of the minute.
func (d Date) Second() int { return d.t.Second() }

// Millisecond returns the millisecond of the second.
func (d Date) Millisecond() int { return d.t.Nanosecond() / int(time.Millisecond) }

// Location returns the zone d is read in.
func (d Date) Location() *time.Location {
	return d.location()
}

// IsUTC reports whether d was put in UTC mode.
func (d Date) IsUTC() bool {
	return d.cfg.utc
}

// UTCOffset returns the offset from UTC in minutes.
func (d Date) UTCOffset() int {
	if !d.valid {
		return 0
	}
	_, offset := d.t.Zone()
	return offset / 60
}

// UTC returns d read in UTC.
func (d Date) UTC() Date {
	out := d.In(time.UTC)
	out.cfg.utc = true
	return out
}

// Local returns d read in the Env location.
func (d Date) Local() Date {
	out := d.In(d.env().Location())
	out.cfg.utc = false
	return out
}

// In returns d read in loc. A nil loc leaves d unchanged.
func (d Date) In(loc *time.Location) Date {
	if !d.valid || loc == nil {
		return d
	}
	out := d.derive(d.t)
	out.cfg.loc = loc
	out.cfg.utc = loc == time.UTC
	out.t = d.t.In(loc)
	return out
}

// WithUTCOffset returns d read at a fixed offset. Values within ±16 are
// taken as hours, anything else as minutes.
func (d Date) WithUTCOffset(offset int) Date {
	if !d.valid {
		return d
	}
	minutes := offset
	if minutes >= -16 && minutes <= 16 {
		minutes *= 60
	}
	if minutes == 0 {
		return d.UTC()
	}
	out := d.In(time.FixedZone(FormatOffset(minutes, ":"), minutes*60))
	out.cfg.utc = false
	return out
}

// Locale returns the locale code used by d.
func (d Date) Locale() string {
	if d.cfg.locale != "" {
		return d.cfg.locale
	}
	return d.env().DefaultLocale()
}

// LocaleData returns the resolved locale used to render d.
func (d Date) LocaleData() *Locale {
	return d.env().ResolveLocale(d.cfg.locale)
}

// WithLocale returns d rendered with the named locale. Unknown codes fall
// back through the Env resolution chain when formatting.
func (d Date) WithLocale(code string) Date {
	out := d
	out.cfg.extras = maps.Clone(d.cfg.extras)
	out.cfg.locale = normalizeLocale(code)
	return out
}

// Extra returns a plugin value stored on d.
func (d Date) Extra(key string) (any, bool) {
	value, ok := d.cfg.extras[key]
	return value, ok
}

// WithExtra returns d carrying value under key.
func (d Date) WithExtra(key string, value any) Date {
	out := d
	out.cfg.extras = maps.Clone(d.cfg.extras)
	if out.cfg.extras == nil {
		out.cfg.extras = make(map[string]any, 1)
	}
	out.cfg.extras[key] = value
	return out
}

// Equal reports whether both dates are valid and hold the same instant.
func (d Date) Equal(other Date) bool {
	return d.valid && other.valid && d.t.Equal(other.t)
}

// DaysInMonth returns the number of days in d's month.
func (d Date) DaysInMonth() int {
	if !d.valid {
		return 0
	}
	return daysIn(d.Year(), d.t.Month())
}

// IsLeapYear reports whether d falls in a leap year.
func (d Date) IsLeapYear() bool {
	return d.valid && isLeap(d.Year())
}

// ToISOString renders d in UTC as YYYY-MM-DDTHH:mm:ss.SSSZ.
func (d Date) ToISOString() string {
	if !d.valid {
		return d.LocaleData().invalidDate()
	}
	return d.t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// String renders d as an RFC 1123 time in GMT.
func (d Date) String() string {
	if !d.valid {
		return d.LocaleData().invalidDate()
	}
	return d.t.UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT")
}

// MarshalJSON encodes d as its ISO string, or null when invalid.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.ToISOString())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
