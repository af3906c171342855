package datekit

// DefaultLocaleCode is the locale every Env can resolve.
const DefaultLocaleCode = "en"

var englishLocale = &Locale{
	Name: DefaultLocaleCode,
	Weekdays: []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	WeekdaysShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	WeekdaysMin:   []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	Months: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthsShort: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	WeekStart: 0,
	YearStart: 1,
	Ordinal:   englishOrdinal,
	Formats: map[string]string{
		"LT":   "h:mm A",
		"LTS":  "h:mm:ss A",
		"L":    "MM/DD/YYYY",
		"LL":   "MMMM D, YYYY",
		"LLL":  "MMMM D, YYYY h:mm A",
		"LLLL": "dddd, MMMM D, YYYY h:mm A",
	},
	Calendar: map[string]string{
		CalendarSameDay:  "[Today at] h:mm A",
		CalendarNextDay:  "[Tomorrow at] h:mm A",
		CalendarNextWeek: "dddd [at] h:mm A",
		CalendarLastDay:  "[Yesterday at] h:mm A",
		CalendarLastWeek: "[Last] dddd [at] h:mm A",
		CalendarSameElse: "MM/DD/YYYY",
	},
	RelativeTime: map[string]string{
		RelativeFuture: "in %s",
		RelativePast:   "%s ago",
		"s":            "a few seconds",
		"m":            "a minute",
		"mm":           "%d minutes",
		"h":            "an hour",
		"hh":           "%d hours",
		"d":            "a day",
		"dd":           "%d days",
		"w":            "a week",
		"ww":           "%d weeks",
		"M":            "a month",
		"MM":           "%d months",
		"y":            "a year",
		"yy":           "%d years",
	},
}

// EnglishLocale returns a copy of the built-in English locale, the usual
// starting point for locales defined in code.
func EnglishLocale() *Locale {
	return englishLocale.Clone()
}
