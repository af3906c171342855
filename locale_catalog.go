package datekit

import (
	"fmt"
	"maps"
	"sort"
)

// LocaleCatalog is an immutable snapshot of locales built from
// definitions, with parent inheritance applied.
type LocaleCatalog struct {
	locales   Locales
	names     map[string]string
	fallbacks map[string][]string
	codes     []string
}

// NewLocaleCatalog resolves definitions into locales. A definition
// inherits every field it leaves empty from its parent: the explicit
// Parent, else the closest defined language parent (es-mx from es), else
// base, else English. Parents may also come from base.
func NewLocaleCatalog(definitions []LocaleDefinition, base Store) (*LocaleCatalog, error) {
	defs := make(map[string]LocaleDefinition, len(definitions))
	for _, definition := range definitions {
		code := normalizeLocale(definition.Name)
		if code == "" {
			return nil, fmt.Errorf("%w: locale catalog entry without name", ErrEmptyLocale)
		}
		if existing, ok := defs[code]; ok {
			definition = mergeDefinition(existing, definition)
		}
		definition.Name = code
		defs[code] = definition
	}

	catalog := &LocaleCatalog{
		locales:   make(Locales, len(defs)),
		names:     make(map[string]string, len(defs)),
		fallbacks: make(map[string][]string),
	}

	building := make(map[string]bool, len(defs))
	var build func(code string) (*Locale, error)
	build = func(code string) (*Locale, error) {
		if locale, ok := catalog.locales[code]; ok {
			return locale, nil
		}
		definition, ok := defs[code]
		if !ok {
			if base != nil {
				if locale, found := base.Get(code); found {
					return locale, nil
				}
			}
			if code == DefaultLocaleCode {
				return englishLocale, nil
			}
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
		}
		if building[code] {
			return nil, fmt.Errorf("%w: locale %q inherits from itself", ErrInvalidLocale, code)
		}
		building[code] = true
		defer delete(building, code)

		parentCode := normalizeLocale(definition.Parent)
		if parentCode == "" {
			parentCode = implicitParent(code, defs, base)
		}

		parent := englishLocale
		if parentCode != "" {
			resolved, err := build(parentCode)
			if err != nil {
				return nil, fmt.Errorf("locale %q parent: %w", code, err)
			}
			parent = resolved
		}

		locale, err := buildLocale(definition, parent)
		if err != nil {
			return nil, err
		}
		catalog.locales[code] = locale
		return locale, nil
	}

	for code, definition := range defs {
		if _, err := build(code); err != nil {
			return nil, err
		}
		catalog.codes = append(catalog.codes, code)
		catalog.names[code] = firstNonEmpty(definition.DisplayName, code)
		if fallbacks := sanitizeFallbacks(code, definition.Fallbacks); len(fallbacks) > 0 {
			catalog.fallbacks[code] = fallbacks
		}
	}
	sort.Strings(catalog.codes)

	return catalog, nil
}

func implicitParent(code string, defs map[string]LocaleDefinition, base Store) string {
	for _, candidate := range localeParentChain(code) {
		if _, ok := defs[candidate]; ok {
			return candidate
		}
		if base != nil {
			if _, ok := base.Get(candidate); ok {
				return candidate
			}
		}
	}
	return ""
}

// Locales returns the built locales keyed by code.
func (c *LocaleCatalog) Locales() Locales {
	if c == nil {
		return nil
	}
	return maps.Clone(c.locales)
}

// Codes returns every locale code in the catalog, sorted alphabetically.
func (c *LocaleCatalog) Codes() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.codes...)
}

// Has reports whether the catalog defines code.
func (c *LocaleCatalog) Has(code string) bool {
	if c == nil {
		return false
	}
	_, ok := c.locales[normalizeLocale(code)]
	return ok
}

// DisplayName returns the human readable name of code.
func (c *LocaleCatalog) DisplayName(code string) string {
	if c == nil {
		return ""
	}
	return c.names[normalizeLocale(code)]
}

// Fallbacks returns the explicit fallback chain declared for code.
func (c *LocaleCatalog) Fallbacks(code string) []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.fallbacks[normalizeLocale(code)]...)
}

// AllFallbacks returns every declared fallback chain.
func (c *LocaleCatalog) AllFallbacks() map[string][]string {
	if c == nil {
		return nil
	}
	out := make(map[string][]string, len(c.fallbacks))
	for code, chain := range c.fallbacks {
		out[code] = append([]string(nil), chain...)
	}
	return out
}

// buildLocale applies definition over a copy of parent.
func buildLocale(definition LocaleDefinition, parent *Locale) (*Locale, error) {
	if parent == nil {
		parent = englishLocale
	}
	locale := parent.Clone()
	locale.Name = normalizeLocale(definition.Name)

	if len(definition.Weekdays) > 0 {
		locale.Weekdays = cloneStrings(definition.Weekdays)
	}
	if len(definition.WeekdaysShort) > 0 {
		locale.WeekdaysShort = cloneStrings(definition.WeekdaysShort)
	}
	if len(definition.WeekdaysMin) > 0 {
		locale.WeekdaysMin = cloneStrings(definition.WeekdaysMin)
	}
	if len(definition.Months) > 0 {
		locale.Months = cloneStrings(definition.Months)
	}
	if len(definition.MonthsShort) > 0 {
		locale.MonthsShort = cloneStrings(definition.MonthsShort)
	}
	if definition.WeekStart != nil {
		locale.WeekStart = *definition.WeekStart
	}
	if definition.YearStart != nil {
		locale.YearStart = *definition.YearStart
	}

	if definition.Ordinal != "" {
		fn, ok := OrdinalSystem(definition.Ordinal)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q uses unknown ordinal system %q", ErrInvalidLocale, locale.Name, definition.Ordinal)
		}
		locale.Ordinal = fn
	}

	locale.Formats = mergeStrings(locale.Formats, definition.Formats)
	locale.Calendar = mergeStrings(locale.Calendar, definition.Calendar)
	locale.RelativeTime = mergeStrings(locale.RelativeTime, definition.RelativeTime)

	if fn := definition.Meridiem.fn(); fn != nil {
		locale.Meridiem = fn
	}

	if definition.Digits != "" {
		post, pre, err := DigitTransforms(definition.Digits)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale.Name, err)
		}
		locale.PostFormat = post
		locale.PreParse = pre
	}

	if definition.InvalidDate != "" {
		locale.InvalidDate = definition.InvalidDate
	}

	if err := validateLocale(locale); err != nil {
		return nil, err
	}
	return locale, nil
}

// mergeDefinition lays the non-empty fields of src over dst.
func mergeDefinition(dst, src LocaleDefinition) LocaleDefinition {
	out := dst
	if src.Parent != "" {
		out.Parent = src.Parent
	}
	if src.DisplayName != "" {
		out.DisplayName = src.DisplayName
	}
	if len(src.Fallbacks) > 0 {
		out.Fallbacks = cloneStrings(src.Fallbacks)
	}
	if len(src.Weekdays) > 0 {
		out.Weekdays = cloneStrings(src.Weekdays)
	}
	if len(src.WeekdaysShort) > 0 {
		out.WeekdaysShort = cloneStrings(src.WeekdaysShort)
	}
	if len(src.WeekdaysMin) > 0 {
		out.WeekdaysMin = cloneStrings(src.WeekdaysMin)
	}
	if len(src.Months) > 0 {
		out.Months = cloneStrings(src.Months)
	}
	if len(src.MonthsShort) > 0 {
		out.MonthsShort = cloneStrings(src.MonthsShort)
	}
	if src.WeekStart != nil {
		out.WeekStart = src.WeekStart
	}
	if src.YearStart != nil {
		out.YearStart = src.YearStart
	}
	if src.Ordinal != "" {
		out.Ordinal = src.Ordinal
	}
	out.Formats = mergeStrings(dst.Formats, src.Formats)
	out.Calendar = mergeStrings(dst.Calendar, src.Calendar)
	out.RelativeTime = mergeStrings(dst.RelativeTime, src.RelativeTime)
	if src.Meridiem != nil {
		meridiem := *src.Meridiem
		out.Meridiem = &meridiem
	}
	if src.Digits != "" {
		out.Digits = src.Digits
	}
	if src.InvalidDate != "" {
		out.InvalidDate = src.InvalidDate
	}
	return out
}

func mergeStrings(base, overlay map[string]string) map[string]string {
	if len(overlay) == 0 {
		return maps.Clone(base)
	}
	out := make(map[string]string, len(base)+len(overlay))
	maps.Copy(out, base)
	maps.Copy(out, overlay)
	return out
}

func sanitizeFallbacks(locale string, fallbacks []string) []string {
	if len(fallbacks) == 0 {
		return nil
	}

	result := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		normalized := normalizeLocale(fallback)
		if normalized == "" || normalized == locale || containsLocale(result, normalized) {
			continue
		}
		result = append(result, normalized)
	}
	return result
}
