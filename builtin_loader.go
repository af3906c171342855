package datekit

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed data/locales/*.yaml
var builtinLocaleFS embed.FS

const builtinLocaleDir = "data/locales"

// BuiltinLoader loads the locales shipped with the package, optionally
// restricted to a set of codes, with definition files merged on top.
type BuiltinLoader struct {
	codes     []string
	overrides []string
	fallbacks map[string][]string
}

var _ Loader = &BuiltinLoader{}

// NewBuiltinLoader creates a loader for codes; no codes loads every
// shipped locale.
func NewBuiltinLoader(codes ...string) *BuiltinLoader {
	return &BuiltinLoader{codes: normalizeLocales(codes)}
}

// AddOverride merges the definitions in path over the shipped ones.
func (l *BuiltinLoader) AddOverride(path string) {
	l.overrides = append(l.overrides, path)
}

// BuiltinLocales lists the codes shipped with the package.
func BuiltinLocales() []string {
	definitions, err := builtinDefinitions()
	if err != nil {
		return []string{DefaultLocaleCode}
	}
	codes := []string{DefaultLocaleCode}
	for _, definition := range definitions {
		codes = append(codes, normalizeLocale(definition.Name))
	}
	return normalizeLocales(codes)
}

// Load builds the shipped locales plus overrides and keeps the requested ones.
func (l *BuiltinLoader) Load() (Locales, error) {
	definitions, err := builtinDefinitions()
	if err != nil {
		return nil, err
	}

	for _, override := range l.overrides {
		data, err := os.ReadFile(override)
		if err != nil {
			return nil, fmt.Errorf("datekit: load locale override %q: %w", override, err)
		}
		decoded, err := DecodeLocaleFile(override, data)
		if err != nil {
			return nil, fmt.Errorf("datekit: parse locale override %q: %w", override, err)
		}
		definitions = append(definitions, decoded...)
	}

	catalog, err := NewLocaleCatalog(definitions, nil)
	if err != nil {
		return nil, err
	}

	all := catalog.Locales()
	if _, ok := all[DefaultLocaleCode]; !ok {
		all[DefaultLocaleCode] = englishLocale.Clone()
	}
	l.fallbacks = catalog.AllFallbacks()

	if len(l.codes) == 0 {
		return all, nil
	}

	selected := make(Locales, len(l.codes))
	for _, code := range l.codes {
		locale, ok := all[code]
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a built-in locale (have %s)", ErrUnknownLocale, code, strings.Join(BuiltinLocales(), ", "))
		}
		selected[code] = locale
	}
	return selected, nil
}

// Fallbacks returns the fallback chains declared by the shipped locales.
func (l *BuiltinLoader) Fallbacks() map[string][]string {
	return l.fallbacks
}

func builtinDefinitions() ([]LocaleDefinition, error) {
	entries, err := fs.ReadDir(builtinLocaleFS, builtinLocaleDir)
	if err != nil {
		return nil, fmt.Errorf("datekit: read built-in locales: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var definitions []LocaleDefinition
	for _, name := range names {
		file := path.Join(builtinLocaleDir, name)
		data, err := builtinLocaleFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("datekit: read %s: %w", file, err)
		}
		decoded, err := DecodeLocaleFile(file, data)
		if err != nil {
			return nil, fmt.Errorf("datekit: decode %s: %w", file, err)
		}
		definitions = append(definitions, decoded...)
	}
	return definitions, nil
}
