package datekit

import "errors"

// InvalidDateString is rendered by Format for invalid dates when the locale
// does not override it.
const InvalidDateString = "Invalid Date"

var (
	// ErrUnknownLocale indicates that no locale definition is registered for a code.
	ErrUnknownLocale = errors.New("datekit: unknown locale")
	// ErrEmptyLocale rejects definitions without a locale code.
	ErrEmptyLocale = errors.New("datekit: locale code cannot be empty")
	// ErrInvalidLocale marks structurally broken locale definitions.
	ErrInvalidLocale = errors.New("datekit: invalid locale definition")
	// ErrNoLoaderPaths is returned by file loaders without configured paths.
	ErrNoLoaderPaths = errors.New("datekit: no loader paths configured")
	// ErrUnsupportedFormat is returned for locale files with an unknown extension.
	ErrUnsupportedFormat = errors.New("datekit: unsupported locale file format")
	// ErrUnknownTimezone is returned when a zone name cannot be loaded.
	ErrUnknownTimezone = errors.New("datekit: unknown timezone")
	// ErrStaticResolverRequired is returned by WithFallback when a custom
	// FallbackResolver is already configured.
	ErrStaticResolverRequired = errors.New("datekit: fallback chains need a StaticFallbackResolver")
)
