// Package timezone converts dates between IANA zones and remembers the zone
// name on the Date so it can be read back with Name.
package timezone

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	datekit "github.com/goliatone/go-datekit"
)

// ExtraKey is the Date extra holding the zone name.
const ExtraKey = "timezone.name"

// ExtensionKey is the Env extension holding the default zone name.
const ExtensionKey = "timezone.default"

// Options configures the plugin. Default, when set, becomes the Env
// location.
type Options struct {
	Default string
}

// Plugin applies Options to the Env.
var Plugin = datekit.NewPlugin("timezone", install)

func install(opts any, env *datekit.Env) {
	var o Options
	switch v := opts.(type) {
	case Options:
		o = v
	case *Options:
		if v != nil {
			o = *v
		}
	case string:
		o.Default = v
	}
	if o.Default == "" {
		return
	}
	if err := SetDefault(env, o.Default); err != nil {
		env.Logger().Warn("timezone default not applied", "zone", o.Default, "error", err)
	}
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*time.Location{}
)

// Load returns the location for name. Unknown names wrap
// datekit.ErrUnknownTimezone.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", datekit.ErrUnknownTimezone)
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if loc, ok := cache[name]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", datekit.ErrUnknownTimezone, name, err)
	}
	cache[name] = loc
	return loc, nil
}

// SetDefault makes name the location of env.
func SetDefault(env *datekit.Env, name string) error {
	loc, err := Load(name)
	if err != nil {
		return err
	}
	env.SetLocation(loc)
	env.SetExtension(ExtensionKey, name)
	return nil
}

// In returns d read in zone name. Unknown zones give an invalid Date.
func In(d datekit.Date, name string) datekit.Date {
	if !d.IsValid() {
		return d
	}
	loc, err := Load(name)
	if err != nil {
		return d.Env().Invalid()
	}
	return d.In(loc).WithExtra(ExtraKey, name)
}

// Parse reads input as wall clock time in zone name. Inputs carrying their
// own offset keep their instant and are then read in the zone.
func Parse(env *datekit.Env, input any, name string) datekit.Date {
	loc, err := Load(name)
	if err != nil {
		return env.Invalid()
	}
	d := env.NewIn(input, loc)
	if !d.IsValid() {
		return d
	}
	return d.WithExtra(ExtraKey, name)
}

// Name returns the zone name d was put in, or its location name.
func Name(d datekit.Date) string {
	if value, ok := d.Extra(ExtraKey); ok {
		if name, ok := value.(string); ok && name != "" {
			return name
		}
	}
	if loc := d.Location(); loc != nil {
		return loc.String()
	}
	return ""
}

// Guess returns the IANA name of the host zone. It reads TZ, then the
// /etc/localtime link, and falls back to UTC.
func Guess() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		if _, err := Load(tz); err == nil {
			return tz
		}
	}
	if name := time.Local.String(); name != "Local" && name != "" {
		return name
	}
	if target, err := os.Readlink("/etc/localtime"); err == nil {
		if i := strings.Index(target, "zoneinfo/"); i >= 0 {
			return target[i+len("zoneinfo/"):]
		}
	}
	return "UTC"
}
