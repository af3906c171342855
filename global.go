package datekit

import (
	"sync"
	"time"
)

var (
	defaultMu  sync.RWMutex
	defaultEnv *Env
)

// Default returns the process wide Env used by the package level helpers
// and by zero Dates. It is created on first use with English only.
func Default() *Env {
	defaultMu.RLock()
	env := defaultEnv
	defaultMu.RUnlock()
	if env != nil {
		return env
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEnv == nil {
		defaultEnv = MustEnv()
	}
	return defaultEnv
}

// SetDefault replaces the process wide Env. nil restores a fresh one.
func SetDefault(env *Env) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEnv = env
}

// ResetDefault discards the process wide Env; the next Default call
// builds a new one.
func ResetDefault() {
	SetDefault(nil)
}

// New builds a Date with the default Env. See Env.New.
func New(input any) Date {
	return Default().New(input)
}

// Now returns the current instant from the default Env.
func Now() Date {
	return Default().Now()
}

// UTC builds a UTC mode Date with the default Env.
func UTC(input any) Date {
	return Default().UTC(input)
}

// FromTime wraps t with the default Env.
func FromTime(t time.Time) Date {
	return Default().FromTime(t)
}

// Unix returns the Date sec seconds after the epoch.
func Unix(sec int64) Date {
	return Default().Unix(sec)
}

// UnixMilli returns the Date ms milliseconds after the epoch.
func UnixMilli(ms int64) Date {
	return Default().UnixMilli(ms)
}

// ParseFormat parses input with the default Env.
func ParseFormat(input, layout string) Date {
	return Default().ParseFormat(input, layout)
}

// Extend installs p on the default Env.
func Extend(p Plugin, opts any) *Env {
	return Default().Extend(p, opts)
}

// RegisterLocale adds a locale to the default Env.
func RegisterLocale(locale *Locale) error {
	return Default().RegisterLocale(locale)
}
