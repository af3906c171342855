package datekit

import (
	"fmt"
	"log/slog"
	"time"
)

// Config captures Env setup
type Config struct {
	DefaultLocale string
	// Locales lists built-in locales to activate.
	Locales  []string
	Loaders  []Loader
	Store    Store
	Resolver FallbackResolver
	Location *time.Location
	Clock    func() time.Time
	Logger   *slog.Logger

	localeFiles     []string
	localeOverrides []string
	plugins         []pluginEntry
}

type pluginEntry struct {
	plugin Plugin
	opts   any
}

// fallbackLoader is implemented by loaders that know locale fallback chains.
type fallbackLoader interface {
	Fallbacks() map[string][]string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Locales = normalizeLocales(cfg.Locales)
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)

	if len(cfg.Locales) > 0 || len(cfg.localeOverrides) > 0 {
		loader := NewBuiltinLoader(cfg.Locales...)
		for _, path := range cfg.localeOverrides {
			loader.AddOverride(path)
		}
		cfg.Loaders = append([]Loader{loader}, cfg.Loaders...)
	}
	if len(cfg.localeFiles) > 0 {
		cfg.Loaders = append(cfg.Loaders, NewFileLoader(cfg.localeFiles...))
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = newNopLogger()
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocaleCode
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used by dates that do not pick one.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales activates built-in locales by code.
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithLoader adds a locale loader. Loaders run in order, later ones
// replace locales loaded earlier under the same code.
func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		if loader != nil {
			c.Loaders = append(c.Loaders, loader)
		}
		return nil
	}
}

// WithLocaleFiles loads locale definitions from json, yaml or toml files.
func WithLocaleFiles(paths ...string) Option {
	return func(c *Config) error {
		c.localeFiles = append(c.localeFiles, paths...)
		return nil
	}
}

// WithLocaleOverride merges a definition file over the built-in locales.
func WithLocaleOverride(path string) Option {
	return func(c *Config) error {
		if path != "" {
			c.localeOverrides = append(c.localeOverrides, path)
		}
		return nil
	}
}

// WithStore seeds the Env from an existing store.
func WithStore(store Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback declares the fallback chain of locale. It adds to the
// StaticFallbackResolver and fails when WithFallbackResolver installed a
// different resolver earlier; declare chains on that resolver instead.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return fmt.Errorf("%w: %q with %T", ErrStaticResolverRequired, locale, c.Resolver)
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithLocation sets the zone local mode dates are read in.
func WithLocation(loc *time.Location) Option {
	return func(c *Config) error {
		c.Location = loc
		return nil
	}
}

// WithLocationName loads the named IANA zone.
func WithLocationName(name string) Option {
	return func(c *Config) error {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrUnknownTimezone, name, err)
		}
		c.Location = loc
		return nil
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithPlugin extends the Env with p once it is built.
func WithPlugin(p Plugin, opts any) Option {
	return func(c *Config) error {
		if p == nil {
			return fmt.Errorf("datekit: nil plugin")
		}
		c.plugins = append(c.plugins, pluginEntry{plugin: p, opts: opts})
		return nil
	}
}

func (cfg *Config) buildRegistry() (*LocaleRegistry, error) {
	var registry *LocaleRegistry
	switch store := cfg.Store.(type) {
	case nil:
		registry = NewLocaleRegistry(nil)
	case *LocaleRegistry:
		registry = store
	default:
		seed := make(Locales)
		for _, code := range store.Locales() {
			if locale, ok := store.Get(code); ok {
				seed[code] = locale
			}
		}
		registry = NewLocaleRegistry(seed)
	}
	registry.SetResolver(cfg.Resolver)

	for _, loader := range cfg.Loaders {
		if files, ok := loader.(*FileLoader); ok && files.base == nil {
			// file definitions inherit from locales registered so far
			files.WithBase(registry)
		}
		locales, err := loader.Load()
		if err != nil {
			return nil, err
		}
		for code, locale := range locales {
			if locale == nil {
				continue
			}
			if locale.Name == "" {
				locale = locale.Clone()
				locale.Name = code
			}
			if err := registry.Register(locale); err != nil {
				return nil, err
			}
		}
		cfg.Logger.Debug("locales loaded", "loader", fmt.Sprintf("%T", loader), "count", len(locales))
		cfg.applyLoaderFallbacks(loader)
	}

	if !registry.Has(cfg.DefaultLocale) {
		return nil, fmt.Errorf("%w: default locale %q", ErrUnknownLocale, cfg.DefaultLocale)
	}
	if err := registry.SetDefault(cfg.DefaultLocale); err != nil {
		return nil, err
	}

	return registry, nil
}

func (cfg *Config) applyLoaderFallbacks(loader Loader) {
	source, ok := loader.(fallbackLoader)
	if !ok {
		return
	}
	resolver, ok := cfg.Resolver.(*StaticFallbackResolver)
	if !ok || resolver == nil {
		return
	}

	for locale, fallbacks := range source.Fallbacks() {
		if existing := resolver.Resolve(locale); len(existing) > 0 {
			continue
		}
		resolver.Set(locale, fallbacks...)
	}
}
