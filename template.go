package datekit

import (
	"reflect"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey names the map key or struct field holding the locale in
	// template data. Defaults to "Locale".
	LocaleKey string
	// Layout is used by date_format when the layout argument is empty.
	Layout string
}

// TemplateHelpers exposes date helpers for text/template and html/template.
// Helpers taking a data argument read the locale from it (a string, a map
// or a struct) using cfg.LocaleKey.
func TemplateHelpers(env *Env, cfg HelperConfig) map[string]any {
	if env == nil {
		env = Default()
	}

	date := func(value any) Date {
		return env.New(value)
	}

	return map[string]any{
		"date": date,
		"date_now": func() Date {
			return env.Now()
		},
		"date_format": func(data any, value any, layout string) string {
			if layout == "" {
				layout = cfg.Layout
			}
			return date(value).WithLocale(extractLocale(env, data, cfg.LocaleKey)).Format(layout)
		},
		"date_parse": func(input, layout string) Date {
			return env.ParseFormat(input, layout)
		},
		"date_add": func(value any, amount int, unit string) Date {
			return date(value).Add(amount, Unit(unit))
		},
		"date_subtract": func(value any, amount int, unit string) Date {
			return date(value).Subtract(amount, Unit(unit))
		},
		"date_start_of": func(value any, unit string) Date {
			return date(value).StartOf(Unit(unit))
		},
		"date_end_of": func(value any, unit string) Date {
			return date(value).EndOf(Unit(unit))
		},
		"date_diff": func(a, b any, unit string) int64 {
			return date(a).Diff(b, Unit(unit))
		},
		"date_is_before": func(a, b any, unit string) bool {
			return date(a).IsBefore(b, Unit(unit))
		},
		"date_is_after": func(a, b any, unit string) bool {
			return date(a).IsAfter(b, Unit(unit))
		},
		"date_is_same": func(a, b any, unit string) bool {
			return date(a).IsSame(b, Unit(unit))
		},
		"current_locale": func(data any) string {
			return extractLocale(env, data, cfg.LocaleKey)
		},
	}
}

// extractLocale reads the locale from a string, a map or a struct field
// named by localeKey.
func extractLocale(env *Env, data any, localeKey string) string {
	fallback := env.DefaultLocale()
	if data == nil {
		return fallback
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	switch d := data.(type) {
	case string:
		return d
	case map[string]any:
		if v, ok := d[localeKey].(string); ok {
			return v
		}
		return fallback
	case map[string]string:
		if v, ok := d[localeKey]; ok {
			return v
		}
		return fallback
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return fallback
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return fallback
}
