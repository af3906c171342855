package datekit

import (
	"io"
	"log/slog"
	"maps"
	"sort"
	"sync"
	"time"
)

// Env is the factory for Dates and the registry plugins extend: locales,
// format tokens, extra units, the layout parser and plugin values.
type Env struct {
	mu         sync.RWMutex
	locales    *LocaleRegistry
	resolver   FallbackResolver
	tokens     *TokenRegistry
	units      map[Unit]UnitHandler
	parser     FormatParser
	loc        *time.Location
	clock      func() time.Time
	logger     *slog.Logger
	extensions map[string]any
	plugins    []string
}

// NewEnv builds an Env from options and installs any WithPlugin plugins.
func NewEnv(opts ...Option) (*Env, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	registry, err := cfg.buildRegistry()
	if err != nil {
		return nil, err
	}

	env := &Env{
		locales:    registry,
		resolver:   cfg.Resolver,
		tokens:     NewTokenRegistry(cfg.Resolver),
		units:      make(map[Unit]UnitHandler),
		loc:        cfg.Location,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
		extensions: make(map[string]any),
	}

	for _, entry := range cfg.plugins {
		env.Extend(entry.plugin, entry.opts)
	}

	env.logger.Debug("env ready",
		"default_locale", registry.Default(),
		"locales", registry.Locales(),
		"location", env.loc.String(),
	)
	return env, nil
}

// MustEnv is NewEnv that panics on error.
func MustEnv(opts ...Option) *Env {
	env, err := NewEnv(opts...)
	if err != nil {
		panic(err)
	}
	return env
}

func newNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Logger returns the Env logger.
func (e *Env) Logger() *slog.Logger {
	return e.logger
}

// Location returns the zone local mode dates are read in.
func (e *Env) Location() *time.Location {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.loc == nil {
		return time.Local
	}
	return e.loc
}

// SetLocation changes the zone for dates created afterwards.
func (e *Env) SetLocation(loc *time.Location) {
	if loc == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loc = loc
}

func (e *Env) now() time.Time {
	e.mu.RLock()
	clock := e.clock
	e.mu.RUnlock()
	if clock == nil {
		return time.Now()
	}
	return clock()
}

// Now returns the current instant.
func (e *Env) Now() Date {
	return e.fromTime(e.now(), "")
}

// FromTime wraps t, read in the Env location.
func (e *Env) FromTime(t time.Time) Date {
	return e.fromTime(t, "")
}

// Unix returns the Date sec seconds after the epoch.
func (e *Env) Unix(sec int64) Date {
	return e.fromTime(time.Unix(sec, 0), "")
}

// UnixMilli returns the Date ms milliseconds after the epoch.
func (e *Env) UnixMilli(ms int64) Date {
	return e.fromTime(time.UnixMilli(ms), "")
}

// Date builds a Date from wall clock fields in the Env location. month is
// 0 based; clock holds hour, minute, second and millisecond. Out of range
// values carry.
func (e *Env) Date(year, month, day int, clock ...int) Date {
	fields := append([]int{year, month, day}, clock...)
	return e.fromFields(fields, e.Location())
}

// Locales returns the registered locale codes.
func (e *Env) Locales() []string {
	return e.locales.Locales()
}

// LocaleRegistry exposes the Env locale store.
func (e *Env) LocaleRegistry() *LocaleRegistry {
	return e.locales
}

// RegisterLocale adds or replaces a locale.
func (e *Env) RegisterLocale(locale *Locale) error {
	if err := e.locales.Register(locale); err != nil {
		return err
	}
	e.logger.Debug("locale registered", "locale", normalizeLocale(locale.Name))
	return nil
}

// DefaultLocale returns the code used by dates without a locale.
func (e *Env) DefaultLocale() string {
	return e.locales.Default()
}

// SetDefaultLocale changes the default locale. The code must be registered.
func (e *Env) SetDefaultLocale(code string) error {
	return e.locales.SetDefault(code)
}

// ResolveLocale returns the locale for code, walking fallbacks, parents and
// finally the default. An empty code resolves the default locale.
func (e *Env) ResolveLocale(code string) *Locale {
	if code == "" {
		code = e.locales.Default()
	}
	return e.locales.Resolve(code)
}

// Tokens returns the format token registry.
func (e *Env) Tokens() *TokenRegistry {
	return e.tokens
}

// RegisterToken adds or replaces a format token for every locale.
func (e *Env) RegisterToken(token string, fn TokenFunc) {
	e.tokens.Register(token, fn)
}

// RegisterLocaleToken overrides a format token for one locale and the
// locales falling back to it.
func (e *Env) RegisterLocaleToken(locale, token string, fn TokenFunc) {
	e.tokens.RegisterLocale(locale, token, fn)
}

// RegisterTokenProvider adds tokens computed per locale.
func (e *Env) RegisterTokenProvider(provider TokenProvider) {
	e.tokens.RegisterProvider(provider)
}

// RegisterUnit teaches Get, Set, Add, StartOf and EndOf a new unit.
func (e *Env) RegisterUnit(unit Unit, handler UnitHandler) {
	u := unit.Normalize()
	if u == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.units == nil {
		e.units = make(map[Unit]UnitHandler)
	}
	e.units[u] = handler
}

func (e *Env) unitHandler(u Unit) (UnitHandler, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	handler, ok := e.units[u]
	return handler, ok
}

func (e *Env) knowsUnit(u Unit) bool {
	switch u {
	case UnitYear, UnitMonth, UnitWeek, UnitDate, UnitDay, UnitHour, UnitMinute, UnitSecond, UnitMillisecond:
		return true
	}
	handler, ok := e.unitHandler(u)
	return ok && handler.StartOf != nil && handler.Add != nil
}

// SetFormatParser installs the parser used by ParseFormat.
func (e *Env) SetFormatParser(parser FormatParser) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.parser = parser
}

// FormatParser returns the installed parser, nil when none is.
func (e *Env) FormatParser() FormatParser {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.parser
}

// ParseFormat parses input against layout in the default locale. Without
// a format parser the layout is ignored and input goes through New.
func (e *Env) ParseFormat(input, layout string) Date {
	return e.ParseFormatIn(input, layout, "")
}

// ParseFormatIn is ParseFormat with an explicit locale.
func (e *Env) ParseFormatIn(input, layout, locale string) Date {
	parser := e.FormatParser()
	if parser == nil || layout == "" {
		d := e.New(input)
		if locale != "" {
			return d.WithLocale(locale)
		}
		return d
	}
	return parser.ParseFormat(e, input, layout, locale)
}

// ParseAny returns the first valid result of parsing input with each
// layout, or an invalid Date.
func (e *Env) ParseAny(input string, layouts ...string) Date {
	for _, layout := range layouts {
		if d := e.ParseFormat(input, layout); d.valid {
			return d
		}
	}
	return e.Invalid()
}

// SetExtension stores a plugin value on the Env.
func (e *Env) SetExtension(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.extensions == nil {
		e.extensions = make(map[string]any)
	}
	e.extensions[key] = value
}

// Extension returns a plugin value stored with SetExtension.
func (e *Env) Extension(key string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	value, ok := e.extensions[key]
	return value, ok
}

// Extensions returns a copy of every stored plugin value.
func (e *Env) Extensions() map[string]any {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.extensions)
}

// Extend installs p with opts. Each call runs Install once; installing
// the same plugin twice installs it twice. Returns e for chaining.
func (e *Env) Extend(p Plugin, opts any) *Env {
	if p == nil {
		return e
	}

	p.Install(opts, e)

	name := PluginName(p)
	e.mu.Lock()
	e.plugins = append(e.plugins, name)
	e.mu.Unlock()

	e.logger.Debug("plugin installed", "plugin", name)
	return e
}

// Plugins lists installed plugin names in install order.
func (e *Env) Plugins() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.plugins...)
}

// HasPlugin reports whether a plugin named name was installed.
func (e *Env) HasPlugin(name string) bool {
	for _, installed := range e.Plugins() {
		if installed == name {
			return true
		}
	}
	return false
}

// Describe summarizes the Env, used by the CLI.
func (e *Env) Describe() map[string]any {
	units := make([]string, 0)
	e.mu.RLock()
	for unit := range e.units {
		units = append(units, string(unit))
	}
	e.mu.RUnlock()
	sort.Strings(units)

	return map[string]any{
		"default_locale": e.DefaultLocale(),
		"locales":        e.Locales(),
		"location":       e.Location().String(),
		"plugins":        e.Plugins(),
		"units":          units,
		"parser":         e.FormatParser() != nil,
	}
}
