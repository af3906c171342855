package datekit

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultLayout is used by Format when no layout is given.
const DefaultLayout = "YYYY-MM-DDTHH:mm:ssZ"

// Format renders d through layout. Tokens are matched longest first,
// text inside [brackets] is copied without the brackets and every other
// character is copied as is. The locale PostFormat runs last.
func (d Date) Format(layout string) string {
	env := d.env()
	locale := env.ResolveLocale(d.cfg.locale)
	if !d.valid {
		return locale.invalidDate()
	}
	if layout == "" {
		layout = DefaultLayout
	}

	out := env.tokens.table(locale.Name).render(d, locale, layout)
	if locale.PostFormat != nil {
		out = locale.PostFormat(out)
	}
	return out
}

// FormatTokens renders layout with the tokens and names of l like Format
// does, but leaves PostFormat out. Tokens expanding into a nested layout
// use it so PostFormat runs once on the outer result. A nil l means the
// locale of d.
func (d Date) FormatTokens(l *Locale, layout string) string {
	env := d.env()
	if l == nil {
		l = env.ResolveLocale(d.cfg.locale)
	}
	if !d.valid {
		return l.invalidDate()
	}
	return env.tokens.table(l.Name).render(d, l, layout)
}

func (t *tokenTable) render(d Date, locale *Locale, layout string) string {
	var b strings.Builder
	b.Grow(len(layout) + 8)

	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			if end := strings.IndexByte(layout[i+1:], ']'); end >= 0 {
				b.WriteString(layout[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}

		if token, fn, ok := t.match(layout, i); ok {
			b.WriteString(fn(d, locale))
			i += len(token)
			continue
		}

		_, size := utf8.DecodeRuneInString(layout[i:])
		b.WriteString(layout[i : i+size])
		i += size
	}

	return b.String()
}

// Pad renders n with at least width digits, keeping the sign in front.
func Pad(n, width int) string {
	if n < 0 {
		return "-" + Pad(-n, width)
	}
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// FormatOffset renders an offset in minutes as +hh:mm, or +hhmm when
// separator is empty.
func FormatOffset(minutes int, separator string) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return sign + Pad(minutes/60, 2) + separator + Pad(minutes%60, 2)
}

func hour12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

func pickName(names []string, idx int) string {
	if idx < 0 || idx >= len(names) {
		return ""
	}
	return names[idx]
}

func defaultTokens() map[string]TokenFunc {
	return map[string]TokenFunc{
		"YY": func(d Date, _ *Locale) string {
			s := Pad(d.Year(), 4)
			return s[len(s)-2:]
		},
		"YYYY": func(d Date, _ *Locale) string { return Pad(d.Year(), 4) },
		"M":    func(d Date, _ *Locale) string { return strconv.Itoa(d.Month() + 1) },
		"MM":   func(d Date, _ *Locale) string { return Pad(d.Month()+1, 2) },
		"MMM":  func(d Date, l *Locale) string { return pickName(l.MonthsShort, d.Month()) },
		"MMMM": func(d Date, l *Locale) string { return pickName(l.Months, d.Month()) },
		"D":    func(d Date, _ *Locale) string { return strconv.Itoa(d.Day()) },
		"DD":   func(d Date, _ *Locale) string { return Pad(d.Day(), 2) },
		"d":    func(d Date, _ *Locale) string { return strconv.Itoa(d.Weekday()) },
		"dd":   func(d Date, l *Locale) string { return pickName(l.WeekdaysMin, d.Weekday()) },
		"ddd":  func(d Date, l *Locale) string { return pickName(l.WeekdaysShort, d.Weekday()) },
		"dddd": func(d Date, l *Locale) string { return pickName(l.Weekdays, d.Weekday()) },
		"H":    func(d Date, _ *Locale) string { return strconv.Itoa(d.Hour()) },
		"HH":   func(d Date, _ *Locale) string { return Pad(d.Hour(), 2) },
		"h":    func(d Date, _ *Locale) string { return strconv.Itoa(hour12(d.Hour())) },
		"hh":   func(d Date, _ *Locale) string { return Pad(hour12(d.Hour()), 2) },
		"m":    func(d Date, _ *Locale) string { return strconv.Itoa(d.Minute()) },
		"mm":   func(d Date, _ *Locale) string { return Pad(d.Minute(), 2) },
		"s":    func(d Date, _ *Locale) string { return strconv.Itoa(d.Second()) },
		"ss":   func(d Date, _ *Locale) string { return Pad(d.Second(), 2) },
		"S":    func(d Date, _ *Locale) string { return strconv.Itoa(d.Millisecond() / 100) },
		"SS":   func(d Date, _ *Locale) string { return Pad(d.Millisecond()/10, 2) },
		"SSS":  func(d Date, _ *Locale) string { return Pad(d.Millisecond(), 3) },
		"A": func(d Date, l *Locale) string {
			return l.MeridiemFor(d.Hour(), d.Minute(), false)
		},
		"a": func(d Date, l *Locale) string {
			return l.MeridiemFor(d.Hour(), d.Minute(), true)
		},
		"Z":  func(d Date, _ *Locale) string { return FormatOffset(d.UTCOffset(), ":") },
		"ZZ": func(d Date, _ *Locale) string { return FormatOffset(d.UTCOffset(), "") },
		"X":  func(d Date, _ *Locale) string { return strconv.FormatInt(d.Unix(), 10) },
		"x":  func(d Date, _ *Locale) string { return strconv.FormatInt(d.ValueOf(), 10) },
	}
}
