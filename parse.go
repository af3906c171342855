package datekit

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// isoLike accepts YYYY, YYYY-MM, YYYY-MM-DD and optional time parts with
// "-" or "/" separators. It is read in the Env location.
var isoLike = regexp.MustCompile(`^(\d{4})[-/]?(\d{1,2})?[-/]?(\d{0,2})[Tt\s]*(\d{1,2})?:?(\d{1,2})?:?(\d{1,2})?[.:]?(\d+)?$`)

// zonedLayouts are tried when isoLike does not match.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
}

// New builds a Date from input. Accepted inputs: nil (now), Date,
// *Date, time.Time, *time.Time, integer and float epoch milliseconds,
// []int fields (year, month0, day, hour, minute, second, ms) and strings
// in ISO like, RFC 3339 or RFC 1123 form. Anything else is invalid.
func (e *Env) New(input any) Date {
	return e.construct(input, e.Location(), false)
}

// UTC builds a Date like New but in UTC mode: strings without an offset
// and field slices are read as UTC and the result reads in UTC.
func (e *Env) UTC(input any) Date {
	return e.construct(input, time.UTC, true)
}

// NewIn builds a Date like New but reads wall clock input (strings
// without an offset and field slices) in loc. The result reads in loc.
func (e *Env) NewIn(input any, loc *time.Location) Date {
	if loc == nil {
		return e.New(input)
	}
	return e.coerceIn(input, loc).In(loc)
}

func (e *Env) construct(input any, loc *time.Location, utc bool) Date {
	d := e.coerceIn(input, loc)
	if utc && d.valid {
		return d.UTC()
	}
	return d
}

// coerce turns a comparand into a Date. Dates pass through untouched and
// everything else is built with New.
func (e *Env) coerce(input any) Date {
	switch v := input.(type) {
	case Date:
		return v
	case *Date:
		if v == nil {
			return e.Invalid()
		}
		return *v
	default:
		return e.New(input)
	}
}

func (e *Env) coerceIn(input any, loc *time.Location) Date {
	switch v := input.(type) {
	case nil:
		return e.Now()
	case Date:
		return v.Clone()
	case *Date:
		if v == nil {
			return e.Invalid()
		}
		return v.Clone()
	case time.Time:
		return e.fromTime(v, "")
	case *time.Time:
		if v == nil {
			return e.Invalid()
		}
		return e.fromTime(*v, "")
	case int:
		return e.UnixMilli(int64(v))
	case int32:
		return e.UnixMilli(int64(v))
	case int64:
		return e.UnixMilli(v)
	case uint:
		return e.UnixMilli(int64(v))
	case uint32:
		return e.UnixMilli(int64(v))
	case uint64:
		if v > math.MaxInt64 {
			return e.Invalid()
		}
		return e.UnixMilli(int64(v))
	case float32:
		return e.fromFloat(float64(v))
	case float64:
		return e.fromFloat(v)
	case []int:
		return e.fromFields(v, loc)
	case string:
		return e.parseString(v, loc)
	default:
		return e.Invalid()
	}
}

func (e *Env) fromFloat(ms float64) Date {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return e.Invalid()
	}
	return e.UnixMilli(int64(math.Trunc(ms)))
}

// fromFields builds a Date from up to seven fields; out of range values
// carry. A missing day defaults to 1.
func (e *Env) fromFields(fields []int, loc *time.Location) Date {
	if len(fields) == 0 || len(fields) > 7 {
		return e.Invalid()
	}

	values := [7]int{0, 0, 1, 0, 0, 0, 0}
	copy(values[:], fields)
	t := WallTime(values[0], time.Month(values[1]+1), values[2], values[3], values[4], values[5], values[6]*int(time.Millisecond), loc)
	return e.fromTime(t, "")
}

func (e *Env) parseString(input string, loc *time.Location) Date {
	input = strings.TrimSpace(input)
	if input == "" {
		return e.Invalid()
	}

	if m := isoLike.FindStringSubmatch(input); m != nil {
		t, ok := isoFieldsTime(m, loc)
		if !ok {
			return e.Invalid()
		}
		return e.fromTime(t, "")
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return e.fromTime(t, "")
		}
	}

	return e.Invalid()
}

func isoFieldsTime(m []string, loc *time.Location) (time.Time, bool) {
	atoi := func(s string, fallback int) int {
		if s == "" {
			return fallback
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return -1
		}
		return n
	}

	year := atoi(m[1], 0)
	month := atoi(m[2], 1)
	day := atoi(m[3], 1)
	hour := atoi(m[4], 0)
	minute := atoi(m[5], 0)
	second := atoi(m[6], 0)

	frac := m[7]
	if len(frac) > 3 {
		frac = frac[:3]
	}
	ms := 0
	if frac != "" {
		ms = atoi(frac+strings.Repeat("0", 3-len(frac)), 0)
	}

	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 || ms < 0 {
		return time.Time{}, false
	}

	return WallTime(year, time.Month(month), day, hour, minute, second, ms*int(time.Millisecond), loc), true
}
