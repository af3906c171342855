package main

import (
	"strings"
)

// localizedFormats builds the LT..LLLL presets from CLDR date, time and
// date-time patterns keyed by length (full, long, medium, short).
func localizedFormats(dates, times, joins map[string]string) map[string]string {
	formats := map[string]string{}

	lt := convertPattern(times["short"], false)
	if lt != "" {
		formats["LT"] = lt
	}
	if lts := convertPattern(times["medium"], false); lts != "" {
		formats["LTS"] = lts
	}
	if l := convertPattern(dates["short"], true); l != "" {
		formats["L"] = l
	}

	ll := convertPattern(dates["long"], false)
	if ll != "" {
		formats["LL"] = ll
	}
	if lll := joinPattern(firstNonEmpty(joins["long"], joins["medium"]), ll, lt); lll != "" {
		formats["LLL"] = lll
	}
	if llll := joinPattern(joins["full"], convertPattern(dates["full"], false), lt); llll != "" {
		formats["LLLL"] = llll
	}

	if len(formats) == 0 {
		return nil
	}
	return formats
}

// joinPattern fills a CLDR date-time glue pattern where {1} is the date and
// {0} the time.
func joinPattern(pattern, date, clock string) string {
	if pattern == "" || date == "" || clock == "" {
		return ""
	}
	glue := convertPattern(pattern, false)
	return strings.NewReplacer("{1}", date, "{0}", clock).Replace(glue)
}

// convertPattern rewrites a CLDR date pattern as a datekit layout. With
// numeric set, day and month numbers are zero padded and years widened,
// which is the shape used by the L preset.
func convertPattern(pattern string, numeric bool) string {
	if pattern == "" {
		return ""
	}

	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			literal, next := quotedLiteral(runes, i)
			writeLiteral(&b, literal)
			i = next
		case isASCIILetter(r):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			b.WriteString(convertField(r, j-i, numeric))
			i = j
		default:
			b.WriteRune(r)
			i++
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// quotedLiteral reads the literal starting at the quote at runes[start]
// and returns it with the index after the closing quote.
func quotedLiteral(runes []rune, start int) (string, int) {
	j := start + 1
	if j < len(runes) && runes[j] == '\'' {
		return "'", j + 1
	}

	var lit strings.Builder
	for j < len(runes) {
		if runes[j] == '\'' {
			if j+1 < len(runes) && runes[j+1] == '\'' {
				lit.WriteRune('\'')
				j += 2
				continue
			}
			break
		}
		lit.WriteRune(runes[j])
		j++
	}
	return lit.String(), j + 1
}

func writeLiteral(b *strings.Builder, literal string) {
	if literal == "" {
		return
	}
	if strings.IndexFunc(literal, isASCIILetter) < 0 {
		b.WriteString(literal)
		return
	}
	b.WriteString("[" + literal + "]")
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func convertField(r rune, n int, numeric bool) string {
	switch r {
	case 'y', 'u', 'Y':
		if n == 2 && !numeric {
			return "YY"
		}
		return "YYYY"
	case 'M', 'L':
		switch {
		case n == 1 && !numeric:
			return "M"
		case n <= 2:
			return "MM"
		case n == 4:
			return "MMMM"
		default:
			return "MMM"
		}
	case 'd':
		if n == 1 && !numeric {
			return "D"
		}
		return "DD"
	case 'D':
		if n == 1 {
			return "DDD"
		}
		return "DDDD"
	case 'E', 'c', 'e':
		switch {
		case r != 'E' && n <= 2:
			return "d"
		case n <= 3:
			return "ddd"
		case n == 4:
			return "dddd"
		default:
			return "dd"
		}
	case 'h', 'K':
		return repeatField("h", n, 2)
	case 'H':
		return repeatField("H", n, 2)
	case 'k':
		return repeatField("k", n, 2)
	case 'm':
		return repeatField("m", n, 2)
	case 's':
		return repeatField("s", n, 2)
	case 'S':
		return repeatField("S", n, 3)
	case 'a', 'b', 'B':
		return "A"
	case 'z':
		if n < 4 {
			return "z"
		}
		return "zzz"
	case 'Z':
		if n < 4 {
			return "ZZ"
		}
		return "Z"
	case 'x', 'X', 'O', 'v', 'V':
		return "Z"
	case 'w':
		return repeatField("w", n, 2)
	case 'Q', 'q':
		if n <= 2 {
			return "Q"
		}
		return ""
	default:
		return ""
	}
}

func repeatField(token string, n, limit int) string {
	return strings.Repeat(token, min(n, limit))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
