package datekit

import (
	"maps"
)

// OrdinalFunc renders n as an ordinal. period names the token family that
// asked for it ("D" for day of month, "w" for week, ...).
type OrdinalFunc func(n int, period string) string

// MeridiemFunc returns the AM/PM marker for the wall clock time.
type MeridiemFunc func(hour, minute int, lower bool) string

// TextTransform rewrites a whole string, used for native digit systems.
type TextTransform func(string) string

// CalendarFunc renders a calendar phrase for d; ref is the start of the
// reference day.
type CalendarFunc func(d, ref Date) string

// Relative time phrase keys.
const (
	RelativeFuture = "future"
	RelativePast   = "past"
)

// Calendar phrase keys.
const (
	CalendarSameDay  = "sameDay"
	CalendarNextDay  = "nextDay"
	CalendarNextWeek = "nextWeek"
	CalendarLastDay  = "lastDay"
	CalendarLastWeek = "lastWeek"
	CalendarSameElse = "sameElse"
)

// Locale holds the names, week rules and phrase templates used to render
// and parse dates. Registered locales are shared and must not be modified;
// use Clone to derive a new one.
type Locale struct {
	Name          string
	Weekdays      []string
	WeekdaysShort []string
	WeekdaysMin   []string
	Months        []string
	MonthsShort   []string
	// WeekStart is the first day of the week, 0 for Sunday.
	WeekStart int
	// YearStart is the day of January that always falls in week 1.
	YearStart     int
	Ordinal       OrdinalFunc
	Formats       map[string]string
	Calendar      map[string]string
	CalendarFuncs map[string]CalendarFunc
	RelativeTime  map[string]string
	Meridiem      MeridiemFunc
	PreParse      TextTransform
	PostFormat    TextTransform
	InvalidDate   string
}

// Clone returns a deep copy that can be modified without touching l.
func (l *Locale) Clone() *Locale {
	if l == nil {
		return nil
	}

	out := *l
	out.Weekdays = cloneStrings(l.Weekdays)
	out.WeekdaysShort = cloneStrings(l.WeekdaysShort)
	out.WeekdaysMin = cloneStrings(l.WeekdaysMin)
	out.Months = cloneStrings(l.Months)
	out.MonthsShort = cloneStrings(l.MonthsShort)
	out.Formats = maps.Clone(l.Formats)
	out.Calendar = maps.Clone(l.Calendar)
	out.CalendarFuncs = maps.Clone(l.CalendarFuncs)
	out.RelativeTime = maps.Clone(l.RelativeTime)
	return &out
}

// MeridiemFor returns the locale meridiem or the default AM/PM marker.
func (l *Locale) MeridiemFor(hour, minute int, lower bool) string {
	if l != nil && l.Meridiem != nil {
		return l.Meridiem(hour, minute, lower)
	}
	return defaultMeridiem(hour, minute, lower)
}

// OrdinalFor renders n through the locale ordinal function.
func (l *Locale) OrdinalFor(n int, period string) string {
	if l != nil && l.Ordinal != nil {
		return l.Ordinal(n, period)
	}
	return englishOrdinal(n, period)
}

// FormatPreset returns the locale format string for key (LT, L, LL, ...).
func (l *Locale) FormatPreset(key string) (string, bool) {
	if l == nil || len(l.Formats) == 0 {
		return "", false
	}
	value, ok := l.Formats[key]
	return value, ok && value != ""
}

// Relative returns the relative time template for key.
func (l *Locale) Relative(key string) string {
	if l == nil {
		return ""
	}
	if value, ok := l.RelativeTime[key]; ok {
		return value
	}
	return englishLocale.RelativeTime[key]
}

func (l *Locale) invalidDate() string {
	if l != nil && l.InvalidDate != "" {
		return l.InvalidDate
	}
	return InvalidDateString
}

func defaultMeridiem(hour, _ int, lower bool) string {
	marker := "AM"
	if hour >= 12 {
		marker = "PM"
	}
	if lower {
		if hour >= 12 {
			return "pm"
		}
		return "am"
	}
	return marker
}

// LocaleDefinition is the serialized form of a Locale as found in locale
// files. Empty fields inherit from Parent (or the built-in English locale).
type LocaleDefinition struct {
	Name          string              `json:"name" yaml:"name" toml:"name"`
	Parent        string              `json:"parent,omitempty" yaml:"parent,omitempty" toml:"parent,omitempty"`
	DisplayName   string              `json:"display_name,omitempty" yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	Fallbacks     []string            `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty" toml:"fallbacks,omitempty"`
	Weekdays      []string            `json:"weekdays,omitempty" yaml:"weekdays,omitempty" toml:"weekdays,omitempty"`
	WeekdaysShort []string            `json:"weekdays_short,omitempty" yaml:"weekdays_short,omitempty" toml:"weekdays_short,omitempty"`
	WeekdaysMin   []string            `json:"weekdays_min,omitempty" yaml:"weekdays_min,omitempty" toml:"weekdays_min,omitempty"`
	Months        []string            `json:"months,omitempty" yaml:"months,omitempty" toml:"months,omitempty"`
	MonthsShort   []string            `json:"months_short,omitempty" yaml:"months_short,omitempty" toml:"months_short,omitempty"`
	WeekStart     *int                `json:"week_start,omitempty" yaml:"week_start,omitempty" toml:"week_start,omitempty"`
	YearStart     *int                `json:"year_start,omitempty" yaml:"year_start,omitempty" toml:"year_start,omitempty"`
	Ordinal       string              `json:"ordinal,omitempty" yaml:"ordinal,omitempty" toml:"ordinal,omitempty"`
	Formats       map[string]string   `json:"formats,omitempty" yaml:"formats,omitempty" toml:"formats,omitempty"`
	Calendar      map[string]string   `json:"calendar,omitempty" yaml:"calendar,omitempty" toml:"calendar,omitempty"`
	RelativeTime  map[string]string   `json:"relative_time,omitempty" yaml:"relative_time,omitempty" toml:"relative_time,omitempty"`
	Meridiem      *MeridiemDefinition `json:"meridiem,omitempty" yaml:"meridiem,omitempty" toml:"meridiem,omitempty"`
	Digits        string              `json:"digits,omitempty" yaml:"digits,omitempty" toml:"digits,omitempty"`
	InvalidDate   string              `json:"invalid_date,omitempty" yaml:"invalid_date,omitempty" toml:"invalid_date,omitempty"`
}

// MeridiemDefinition lists the markers used before and after noon.
type MeridiemDefinition struct {
	AM      string `json:"am" yaml:"am" toml:"am"`
	PM      string `json:"pm" yaml:"pm" toml:"pm"`
	LowerAM string `json:"lower_am,omitempty" yaml:"lower_am,omitempty" toml:"lower_am,omitempty"`
	LowerPM string `json:"lower_pm,omitempty" yaml:"lower_pm,omitempty" toml:"lower_pm,omitempty"`
}

func (m *MeridiemDefinition) fn() MeridiemFunc {
	if m == nil || (m.AM == "" && m.PM == "") {
		return nil
	}
	def := *m
	return func(hour, _ int, lower bool) string {
		if lower {
			if hour < 12 {
				return firstNonEmpty(def.LowerAM, def.AM)
			}
			return firstNonEmpty(def.LowerPM, def.PM)
		}
		if hour < 12 {
			return def.AM
		}
		return def.PM
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
