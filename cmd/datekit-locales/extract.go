package main

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"

	datekit "github.com/goliatone/go-datekit"
)

const latinDigits = "0123456789"

var weekdayIndex = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

func buildDefinition(data *cldr.CLDR, supplemental *cldr.SupplementalData, spec localeSpec) (datekit.LocaleDefinition, error) {
	definition := datekit.LocaleDefinition{
		Name: strings.ToLower(spec.Locale),
	}

	ldml := findLDML(data, spec.Locale)
	if ldml == nil {
		return definition, errors.New("missing LDML data")
	}

	cal := gregorian(ldml)
	if cal == nil {
		return definition, errors.New("missing gregorian calendar")
	}

	definition.DisplayName = extractDisplayName(ldml, spec.Locale)
	definition.Months = extractMonths(cal, "wide")
	definition.MonthsShort = extractMonths(cal, "abbreviated")
	definition.Weekdays = extractDays(cal, "wide")
	definition.WeekdaysShort = extractDays(cal, "abbreviated")
	definition.WeekdaysMin = extractDays(cal, "short")
	definition.Meridiem = extractMeridiem(cal)
	definition.Formats = extractFormats(cal)
	definition.Ordinal = detectOrdinalSystem(spec.Locale)
	definition.WeekStart = extractWeekStart(supplemental, spec.Territory)
	definition.YearStart = extractYearStart(supplemental, spec.Territory)
	definition.Digits = extractDigits(ldml, supplemental)

	return definition, nil
}

func gregorian(ldml *cldr.LDML) *cldr.Calendar {
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, cal := range ldml.Dates.Calendars.Calendar {
		if cal != nil && cal.Type == "gregorian" {
			return cal
		}
	}
	return nil
}

func extractDisplayName(ldml *cldr.LDML, locale string) string {
	if ldml.LocaleDisplayNames == nil || ldml.LocaleDisplayNames.Languages == nil {
		return ""
	}

	base := locale
	if tag, err := language.Parse(locale); err == nil {
		b, _ := tag.Base()
		base = b.String()
	}

	for _, entry := range ldml.LocaleDisplayNames.Languages.Language {
		if entry == nil || entry.Alt != "" {
			continue
		}
		if entry.Type == base {
			return entry.Data()
		}
	}
	return ""
}

// extractMonths returns the format context names of width, ordered January
// first. Incomplete sets are dropped so the locale inherits them instead.
func extractMonths(cal *cldr.Calendar, width string) []string {
	if cal.Months == nil {
		return nil
	}

	names := make([]string, 12)
	for _, ctx := range cal.Months.MonthContext {
		if ctx == nil || ctx.Type != "format" {
			continue
		}
		for _, w := range ctx.MonthWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, month := range w.Month {
				if month == nil || month.Alt != "" || month.Yeartype != "" {
					continue
				}
				n, err := strconv.Atoi(month.Type)
				if err != nil || n < 1 || n > 12 {
					continue
				}
				names[n-1] = month.Data()
			}
		}
	}
	return completeNames(names)
}

// extractDays returns the format context names of width, Sunday first.
func extractDays(cal *cldr.Calendar, width string) []string {
	if cal.Days == nil {
		return nil
	}

	names := make([]string, 7)
	for _, ctx := range cal.Days.DayContext {
		if ctx == nil || ctx.Type != "format" {
			continue
		}
		for _, w := range ctx.DayWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, day := range w.Day {
				if day == nil || day.Alt != "" {
					continue
				}
				if idx, ok := weekdayIndex[day.Type]; ok {
					names[idx] = day.Data()
				}
			}
		}
	}
	return completeNames(names)
}

func completeNames(names []string) []string {
	for _, name := range names {
		if name == "" {
			return nil
		}
	}
	return names
}

func extractMeridiem(cal *cldr.Calendar) *datekit.MeridiemDefinition {
	if cal.DayPeriods == nil {
		return nil
	}

	var am, pm string
	for _, ctx := range cal.DayPeriods.DayPeriodContext {
		if ctx == nil || ctx.Type != "format" {
			continue
		}
		for _, w := range ctx.DayPeriodWidth {
			if w == nil || w.Type != "abbreviated" {
				continue
			}
			for _, period := range w.DayPeriod {
				if period == nil || period.Alt != "" {
					continue
				}
				switch period.Type {
				case "am":
					am = period.Data()
				case "pm":
					pm = period.Data()
				}
			}
		}
	}

	if am == "" || pm == "" {
		return nil
	}

	meridiem := &datekit.MeridiemDefinition{AM: am, PM: pm}
	if lower := strings.ToLower(am); lower != am {
		meridiem.LowerAM = lower
	}
	if lower := strings.ToLower(pm); lower != pm {
		meridiem.LowerPM = lower
	}
	return meridiem
}

func extractFormats(cal *cldr.Calendar) map[string]string {
	dates := map[string]string{}
	if cal.DateFormats != nil {
		for _, length := range cal.DateFormats.DateFormatLength {
			if length == nil {
				continue
			}
			for _, format := range length.DateFormat {
				if format == nil || (format.Type != "" && format.Type != "standard") {
					continue
				}
				if pattern := firstPattern(format.Pattern); pattern != "" {
					dates[length.Type] = pattern
				}
			}
		}
	}

	times := map[string]string{}
	if cal.TimeFormats != nil {
		for _, length := range cal.TimeFormats.TimeFormatLength {
			if length == nil {
				continue
			}
			for _, format := range length.TimeFormat {
				if format == nil || (format.Type != "" && format.Type != "standard") {
					continue
				}
				if pattern := firstPattern(format.Pattern); pattern != "" {
					times[length.Type] = pattern
				}
			}
		}
	}

	joins := map[string]string{}
	if cal.DateTimeFormats != nil {
		for _, length := range cal.DateTimeFormats.DateTimeFormatLength {
			if length == nil {
				continue
			}
			for _, format := range length.DateTimeFormat {
				if format == nil || (format.Type != "" && format.Type != "standard") {
					continue
				}
				if pattern := firstPattern(format.Pattern); pattern != "" {
					joins[length.Type] = pattern
				}
			}
		}
	}

	return localizedFormats(dates, times, joins)
}

func firstPattern(patterns []*struct {
	cldr.Common
	Numbers string `xml:"numbers,attr"`
	Count   string `xml:"count,attr"`
}) string {
	for _, pattern := range patterns {
		if pattern == nil || pattern.Alt != "" {
			continue
		}
		return pattern.Data()
	}
	return ""
}

func detectOrdinalSystem(locale string) string {
	base := strings.ToLower(locale)
	if idx := strings.IndexAny(base, "-_"); idx >= 0 {
		base = base[:idx]
	}

	switch base {
	case "en":
		return datekit.OrdinalEnglish
	case "de", "da", "nb", "nn", "no", "fi", "cs", "sk", "sl", "hr", "sr", "pl", "et", "lv", "hu", "tr", "is", "fo":
		return datekit.OrdinalPeriod
	case "es", "pt", "it", "gl":
		return datekit.OrdinalMasculine
	case "fr":
		return datekit.OrdinalFrench
	case "ja", "zh":
		return datekit.OrdinalJapanese
	default:
		return datekit.OrdinalPlain
	}
}

func extractWeekStart(supplemental *cldr.SupplementalData, territory string) *int {
	if supplemental == nil || supplemental.WeekData == nil {
		return nil
	}

	var world string
	for _, entry := range supplemental.WeekData.FirstDay {
		if entry == nil || entry.Alt != "" {
			continue
		}
		if hasTerritory(entry.Territories, territory) {
			return weekday(entry.Day)
		}
		if hasTerritory(entry.Territories, "001") {
			world = entry.Day
		}
	}
	if world == "" {
		return nil
	}
	return weekday(world)
}

// extractYearStart maps CLDR minDays onto the day of January that always
// falls in the first week, which is the same number.
func extractYearStart(supplemental *cldr.SupplementalData, territory string) *int {
	if supplemental == nil || supplemental.WeekData == nil {
		return nil
	}

	var world string
	for _, entry := range supplemental.WeekData.MinDays {
		if entry == nil || entry.Alt != "" {
			continue
		}
		if hasTerritory(entry.Territories, territory) {
			return count(entry.Count)
		}
		if hasTerritory(entry.Territories, "001") {
			world = entry.Count
		}
	}
	if world == "" {
		return nil
	}
	return count(world)
}

func hasTerritory(list, territory string) bool {
	if territory == "" {
		return false
	}
	for _, field := range strings.Fields(list) {
		if strings.EqualFold(field, territory) {
			return true
		}
	}
	return false
}

func weekday(day string) *int {
	idx, ok := weekdayIndex[day]
	if !ok {
		return nil
	}
	return &idx
}

func count(value string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > 7 {
		return nil
	}
	return &n
}

// extractDigits returns the native digits of the default numbering system,
// or "" when it is latn.
func extractDigits(ldml *cldr.LDML, supplemental *cldr.SupplementalData) string {
	if ldml.Numbers == nil || supplemental == nil || supplemental.NumberingSystems == nil {
		return ""
	}

	var system string
	for _, entry := range ldml.Numbers.DefaultNumberingSystem {
		if entry != nil && entry.Alt == "" {
			system = strings.TrimSpace(entry.Data())
			break
		}
	}
	if system == "" || system == "latn" {
		return ""
	}

	for _, entry := range supplemental.NumberingSystems.NumberingSystem {
		if entry == nil || entry.Id != system {
			continue
		}
		if entry.Digits == latinDigits || len([]rune(entry.Digits)) != 10 {
			return ""
		}
		return entry.Digits
	}
	return ""
}
