package datekit

import "fmt"

// Plugin extends an Env. Install runs once per Extend call and may
// register tokens, units, locales, a format parser or Env extensions.
// Plugins that build on another plugin must be installed after it; no
// ordering is enforced.
type Plugin interface {
	Install(opts any, env *Env)
}

// PluginFunc adapts a bare function to Plugin.
type PluginFunc func(opts any, env *Env)

// Install implements Plugin.
func (fn PluginFunc) Install(opts any, env *Env) {
	fn(opts, env)
}

type namedPlugin struct {
	name    string
	install PluginFunc
}

// NewPlugin returns a Plugin that reports name in Env.Plugins.
func NewPlugin(name string, install PluginFunc) Plugin {
	return namedPlugin{name: name, install: install}
}

func (p namedPlugin) Install(opts any, env *Env) {
	if p.install != nil {
		p.install(opts, env)
	}
}

func (p namedPlugin) Name() string {
	return p.name
}

// PluginName returns the plugin name when p has one, otherwise its type.
func PluginName(p Plugin) string {
	if named, ok := p.(interface{ Name() string }); ok && named.Name() != "" {
		return named.Name()
	}
	return fmt.Sprintf("%T", p)
}
