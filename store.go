package datekit

import (
	"fmt"
	"sort"
	"sync"
)

// Locales maps locale codes to their definitions.
type Locales map[string]*Locale

// Store exposes read access to registered locales.
type Store interface {
	// Get returns the locale registered under code and ok=false if missing
	Get(code string) (*Locale, bool)
	// Locales returns the codes known to the store
	Locales() []string
}

// Loader retrieves the locales used to seed a registry
type Loader interface {
	Load() (Locales, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Locales, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Locales, error) {
	return fn()
}

// LocaleRegistry is the name keyed locale store. The built-in English
// locale is always present. Registering an existing code replaces it.
type LocaleRegistry struct {
	mu            sync.RWMutex
	locales       map[string]*Locale
	resolver      FallbackResolver
	defaultLocale string
}

var _ Store = &LocaleRegistry{}

// NewLocaleRegistry builds a registry holding copies of data plus English.
func NewLocaleRegistry(data Locales) *LocaleRegistry {
	registry := &LocaleRegistry{
		locales:       map[string]*Locale{DefaultLocaleCode: englishLocale.Clone()},
		defaultLocale: DefaultLocaleCode,
	}

	for code, locale := range data {
		if locale == nil {
			continue
		}
		clone := locale.Clone()
		if clone.Name == "" {
			clone.Name = code
		}
		clone.Name = normalizeLocale(clone.Name)
		if clone.Name == "" {
			continue
		}
		registry.locales[clone.Name] = clone
	}

	return registry
}

// NewLocaleRegistryFromLoader hydrates a LocaleRegistry using the provided loader
func NewLocaleRegistryFromLoader(loader Loader) (*LocaleRegistry, error) {
	if loader == nil {
		return NewLocaleRegistry(nil), nil
	}

	locales, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewLocaleRegistry(locales), nil
}

// Register stores a copy of locale under its normalized name.
func (r *LocaleRegistry) Register(locale *Locale) error {
	if locale == nil {
		return fmt.Errorf("%w: nil locale", ErrInvalidLocale)
	}

	code := normalizeLocale(locale.Name)
	if code == "" {
		return ErrEmptyLocale
	}
	if err := validateLocale(locale); err != nil {
		return err
	}

	clone := locale.Clone()
	clone.Name = code

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.locales == nil {
		r.locales = make(map[string]*Locale)
	}
	r.locales[code] = clone
	return nil
}

// Get returns the registered locale for code without fallback.
func (r *LocaleRegistry) Get(code string) (*Locale, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	locale, ok := r.locales[normalizeLocale(code)]
	return locale, ok
}

// Has reports whether code is registered.
func (r *LocaleRegistry) Has(code string) bool {
	_, ok := r.Get(code)
	return ok
}

// Locales returns a sorted slice with all locale codes
func (r *LocaleRegistry) Locales() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.locales))
	for code := range r.locales {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// SetResolver installs the resolver consulted before parent tags.
func (r *LocaleRegistry) SetResolver(resolver FallbackResolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolver = resolver
}

// SetDefault changes the locale used when nothing else resolves.
func (r *LocaleRegistry) SetDefault(code string) error {
	normalized := normalizeLocale(code)
	if normalized == "" {
		return ErrEmptyLocale
	}
	if !r.Has(normalized) {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultLocale = normalized
	return nil
}

// Default returns the default locale code.
func (r *LocaleRegistry) Default() string {
	if r == nil {
		return DefaultLocaleCode
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.defaultLocale == "" {
		return DefaultLocaleCode
	}
	return r.defaultLocale
}

// Candidates lists the codes Resolve tries for code, in order.
func (r *LocaleRegistry) Candidates(code string) []string {
	normalized := normalizeLocale(code)

	var chain []string
	if normalized != "" {
		chain = append(chain, normalized)
	}

	r.mu.RLock()
	resolver := r.resolver
	r.mu.RUnlock()

	if resolver != nil && normalized != "" {
		for _, fallback := range resolver.Resolve(normalized) {
			if fallback == "" || containsLocale(chain, fallback) {
				continue
			}
			chain = append(chain, fallback)
		}
	}

	for _, parent := range localeParentChain(normalized) {
		if !containsLocale(chain, parent) {
			chain = append(chain, parent)
		}
	}

	for _, last := range []string{r.Default(), DefaultLocaleCode} {
		if !containsLocale(chain, last) {
			chain = append(chain, last)
		}
	}
	return chain
}

// Resolve returns the best registered locale for code. It never returns nil.
func (r *LocaleRegistry) Resolve(code string) *Locale {
	if r == nil {
		return englishLocale
	}

	for _, candidate := range r.Candidates(code) {
		if locale, ok := r.Get(candidate); ok {
			return locale
		}
	}
	return englishLocale
}

func validateLocale(locale *Locale) error {
	checks := []struct {
		name string
		list []string
		want int
	}{
		{"weekdays", locale.Weekdays, 7},
		{"weekdays_short", locale.WeekdaysShort, 7},
		{"weekdays_min", locale.WeekdaysMin, 7},
		{"months", locale.Months, 12},
		{"months_short", locale.MonthsShort, 12},
	}
	for _, check := range checks {
		if len(check.list) != check.want {
			return fmt.Errorf("%w: %s %q has %d %s, want %d", ErrInvalidLocale, "locale", locale.Name, len(check.list), check.name, check.want)
		}
	}
	if locale.WeekStart < 0 || locale.WeekStart > 6 {
		return fmt.Errorf("%w: locale %q week start %d out of range", ErrInvalidLocale, locale.Name, locale.WeekStart)
	}
	if locale.YearStart < 0 || locale.YearStart > 31 {
		return fmt.Errorf("%w: locale %q year start %d out of range", ErrInvalidLocale, locale.Name, locale.YearStart)
	}
	return nil
}
