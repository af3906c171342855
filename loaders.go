package datekit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileLoader reads locale definitions from json, yaml or toml files.
// A path may name a directory, in which case every supported file inside
// it is read in name order. Definitions for the same code are merged in
// read order.
type FileLoader struct {
	paths     []string
	base      Store
	fallbacks map[string][]string
}

var _ Loader = &FileLoader{}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// WithBase lets definitions inherit from locales in store.
func (l *FileLoader) WithBase(store Store) *FileLoader {
	if l == nil {
		return l
	}
	l.base = store
	return l
}

// localeFile is the multi locale document form:
//
//	locales:
//	  - name: de
//	    ...
type localeFile struct {
	Locales []LocaleDefinition `json:"locales" yaml:"locales" toml:"locales"`
}

func (l *FileLoader) Load() (Locales, error) {
	definitions, err := l.Definitions()
	if err != nil {
		return nil, err
	}

	catalog, err := NewLocaleCatalog(definitions, l.base)
	if err != nil {
		return nil, err
	}
	l.fallbacks = catalog.AllFallbacks()
	return catalog.Locales(), nil
}

// Fallbacks returns the fallback chains declared by the last Load.
func (l *FileLoader) Fallbacks() map[string][]string {
	if l == nil {
		return nil
	}
	return l.fallbacks
}

// Definitions reads every configured file without building locales.
func (l *FileLoader) Definitions() ([]LocaleDefinition, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, ErrNoLoaderPaths
	}

	files, err := expandLocalePaths(l.paths)
	if err != nil {
		return nil, err
	}

	var definitions []LocaleDefinition
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("datekit: read %s: %w", path, err)
		}

		decoded, err := DecodeLocaleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("datekit: decode %s: %w", path, err)
		}
		definitions = append(definitions, decoded...)
	}

	return definitions, nil
}

func expandLocalePaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("datekit: stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("datekit: read dir %s: %w", path, err)
		}
		var names []string
		for _, entry := range entries {
			if entry.IsDir() || !supportedLocaleExt(entry.Name()) {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			files = append(files, filepath.Join(path, name))
		}
	}
	return files, nil
}

func supportedLocaleExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}

// DecodeLocaleFile decodes a single definition or a "locales" list from
// data. The format is picked by the path extension.
func DecodeLocaleFile(path string, data []byte) ([]LocaleDefinition, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		file   localeFile
		single LocaleDefinition
	)

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
		if len(file.Locales) == 0 {
			if err := json.Unmarshal(data, &single); err != nil {
				return nil, err
			}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
		if len(file.Locales) == 0 {
			if err := yaml.Unmarshal(data, &single); err != nil {
				return nil, fmt.Errorf("yaml parse error: %w", err)
			}
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
		if len(file.Locales) == 0 {
			if _, err := toml.Decode(string(data), &single); err != nil {
				return nil, fmt.Errorf("toml parse error: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	if len(file.Locales) > 0 {
		for i, definition := range file.Locales {
			if strings.TrimSpace(definition.Name) == "" {
				return nil, fmt.Errorf("%w: entry %d", ErrEmptyLocale, i)
			}
		}
		return file.Locales, nil
	}

	if strings.TrimSpace(single.Name) == "" {
		return nil, errors.Join(ErrEmptyLocale, fmt.Errorf("no locale definitions in %s", path))
	}
	return []LocaleDefinition{single}, nil
}
