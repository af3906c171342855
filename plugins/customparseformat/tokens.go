package customparseformat

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	datekit "github.com/goliatone/go-datekit"
)

var (
	match1    = regexp.MustCompile(`^\d`)
	match2    = regexp.MustCompile(`^\d\d`)
	match3    = regexp.MustCompile(`^\d{3}`)
	match4    = regexp.MustCompile(`^\d{4}`)
	match1to2 = regexp.MustCompile(`^\d\d?`)

	matchOffset  = regexp.MustCompile(`^(?:([+-])(\d\d):?(\d\d)?|Z)`)
	matchSeconds = regexp.MustCompile(`^([+-]?\d+)(?:\.(\d{1,3}))?`)
	matchMillis  = regexp.MustCompile(`^[+-]?\d+`)
)

func intp(v int) *int { return &v }

// number builds a TokenParser that reads the digits matched by re and
// hands their value to set.
func number(re *regexp.Regexp, set func(f *Fields, v int)) TokenParser {
	return func(input string, _ *datekit.Locale, f *Fields) (int, bool) {
		m := re.FindString(input)
		if m == "" {
			return 0, false
		}
		v, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		set(f, v)
		return len(m), true
	}
}

func defaultTokens() map[string]TokenParser {
	setYear := func(f *Fields, v int) { f.Year = intp(v) }
	setMonth := func(f *Fields, v int) { f.Month = intp(v) }
	setDay := func(f *Fields, v int) { f.Day = intp(v) }
	setHour := func(f *Fields, v int) { f.Hour = intp(v) }
	setHour12 := func(f *Fields, v int) { f.Hour = intp(v); f.Hour12 = true }
	setMinute := func(f *Fields, v int) { f.Minute = intp(v) }
	setSecond := func(f *Fields, v int) { f.Second = intp(v) }

	return map[string]TokenParser{
		"YYYY": number(match4, setYear),
		"YY": number(match2, func(f *Fields, v int) {
			if v > 68 {
				f.Year = intp(1900 + v)
				return
			}
			f.Year = intp(2000 + v)
		}),
		"M":    number(match1to2, setMonth),
		"MM":   number(match2, setMonth),
		"MMM":  names(func(l *datekit.Locale) []string { return l.MonthsShort }, setMonth),
		"MMMM": names(func(l *datekit.Locale) []string { return l.Months }, setMonth),
		"D":    number(match1to2, setDay),
		"DD":   number(match2, setDay),
		"Do":   ordinalDay,
		"H":    number(match1to2, setHour),
		"HH":   number(match2, setHour),
		"h":    number(match1to2, setHour12),
		"hh":   number(match2, setHour12),
		"m":    number(match1to2, setMinute),
		"mm":   number(match2, setMinute),
		"s":    number(match1to2, setSecond),
		"ss":   number(match2, setSecond),
		"S":    number(match1, func(f *Fields, v int) { f.Millisecond = intp(v * 100) }),
		"SS":   number(match2, func(f *Fields, v int) { f.Millisecond = intp(v * 10) }),
		"SSS":  number(match3, func(f *Fields, v int) { f.Millisecond = intp(v) }),
		"A":    meridiem(false),
		"a":    meridiem(true),
		"Z":    offset,
		"ZZ":   offset,
		"X":    unixSeconds,
		"x":    unixMillis,
		"d":    number(match1, func(*Fields, int) {}),
		"dd":   names(func(l *datekit.Locale) []string { return l.WeekdaysMin }, nil),
		"ddd":  names(func(l *datekit.Locale) []string { return l.WeekdaysShort }, nil),
		"dddd": names(func(l *datekit.Locale) []string { return l.Weekdays }, nil),
	}
}

// names matches the longest entry of list ignoring case and stores its
// 1 based position. A nil set consumes the name without recording it.
func names(list func(l *datekit.Locale) []string, set func(f *Fields, v int)) TokenParser {
	return func(input string, l *datekit.Locale, f *Fields) (int, bool) {
		idx, n := longestName(input, list(l))
		if idx < 0 {
			return 0, false
		}
		if set != nil {
			set(f, idx+1)
		}
		return n, true
	}
}

// longestName returns the index of the longest candidate that prefixes
// input under Unicode case folding, and the bytes of input it covers.
func longestName(input string, candidates []string) (int, int) {
	fold := cases.Fold()
	best, bestLen, bestRunes := -1, 0, 0

	for i, candidate := range candidates {
		if candidate == "" {
			continue
		}
		candidate = norm.NFC.String(candidate)
		runes := utf8.RuneCountInString(candidate)
		if runes <= bestRunes {
			continue
		}
		prefix, ok := runePrefix(input, runes)
		if !ok {
			continue
		}
		if fold.String(prefix) == fold.String(candidate) {
			best, bestLen, bestRunes = i, len(prefix), runes
		}
	}
	return best, bestLen
}

func runePrefix(s string, runes int) (string, bool) {
	i := 0
	for n := 0; n < runes; n++ {
		if i >= len(s) {
			return "", false
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], true
}

func ordinalDay(input string, l *datekit.Locale, f *Fields) (int, bool) {
	best, bestLen := 0, 0
	for day := 1; day <= 31; day++ {
		ordinal := l.OrdinalFor(day, "D")
		if len(ordinal) > bestLen && strings.HasPrefix(input, ordinal) {
			best, bestLen = day, len(ordinal)
		}
	}
	if best == 0 {
		return 0, false
	}
	f.Day = intp(best)
	return bestLen, true
}

func meridiem(lower bool) TokenParser {
	return func(input string, l *datekit.Locale, f *Fields) (int, bool) {
		am := l.MeridiemFor(0, 0, lower)
		pm := l.MeridiemFor(12, 0, lower)
		idx, n := longestName(input, []string{am, pm})
		if idx < 0 {
			return 0, false
		}
		afternoon := idx == 1
		f.Afternoon = &afternoon
		return n, true
	}
}

func offset(input string, _ *datekit.Locale, f *Fields) (int, bool) {
	m := matchOffset.FindStringSubmatch(input)
	if m == nil {
		return 0, false
	}
	if m[0] == "Z" {
		f.Offset = intp(0)
		return 1, true
	}
	hours, _ := strconv.Atoi(m[2])
	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}
	total := hours*60 + minutes
	if m[1] == "-" {
		total = -total
	}
	f.Offset = intp(total)
	return len(m[0]), true
}

func unixSeconds(input string, _ *datekit.Locale, f *Fields) (int, bool) {
	m := matchSeconds.FindStringSubmatch(input)
	if m == nil {
		return 0, false
	}
	sec, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	ms := sec * 1000
	if frac := m[2]; frac != "" {
		frac += strings.Repeat("0", 3-len(frac))
		extra, _ := strconv.ParseInt(frac, 10, 64)
		if strings.HasPrefix(m[1], "-") {
			ms -= extra
		} else {
			ms += extra
		}
	}
	f.UnixMilli = &ms
	return len(m[0]), true
}

func unixMillis(input string, _ *datekit.Locale, f *Fields) (int, bool) {
	m := matchMillis.FindString(input)
	if m == "" {
		return 0, false
	}
	ms, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	f.UnixMilli = &ms
	return len(m), true
}
