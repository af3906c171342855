package datekit

import (
	"maps"
	"sort"
	"sync"
)

// TokenFunc renders one format token for d using the resolved locale.
type TokenFunc func(d Date, l *Locale) string

// TokenProvider contributes tokens computed per locale.
type TokenProvider interface {
	Tokens(locale string) map[string]TokenFunc
}

// TokenProviderFunc adapts a bare function to TokenProvider.
type TokenProviderFunc func(locale string) map[string]TokenFunc

// Tokens implements TokenProvider.
func (fn TokenProviderFunc) Tokens(locale string) map[string]TokenFunc {
	return fn(locale)
}

// TokenRegistry manages format tokens and locale specific overrides.
type TokenRegistry struct {
	mu        sync.RWMutex
	defaults  map[string]TokenFunc
	overrides map[string]map[string]TokenFunc
	providers []TokenProvider
	resolver  FallbackResolver
	cache     map[string]*tokenTable
}

// tokenTable is the compiled view for one locale: every token with its
// function plus the match order grouped by first byte, longest first.
type tokenTable struct {
	funcs   map[string]TokenFunc
	byFirst map[byte][]string
}

// NewTokenRegistry seeds a registry with the core format tokens.
func NewTokenRegistry(resolver FallbackResolver) *TokenRegistry {
	return &TokenRegistry{
		defaults:  defaultTokens(),
		overrides: make(map[string]map[string]TokenFunc),
		resolver:  resolver,
	}
}

// Register sets or replaces the default implementation for token.
func (r *TokenRegistry) Register(token string, fn TokenFunc) {
	if token == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.defaults == nil {
		r.defaults = make(map[string]TokenFunc)
	}
	r.defaults[token] = fn
	r.invalidateLocked()
}

// RegisterLocale registers a locale specific override for token.
func (r *TokenRegistry) RegisterLocale(locale, token string, fn TokenFunc) {
	locale = normalizeLocale(locale)
	if locale == "" || token == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.overrides == nil {
		r.overrides = make(map[string]map[string]TokenFunc)
	}
	tokens := r.overrides[locale]
	if tokens == nil {
		tokens = make(map[string]TokenFunc)
		r.overrides[locale] = tokens
	}
	tokens[token] = fn
	r.invalidateLocked()
}

// RegisterProvider appends a provider consulted for every locale. Later
// providers win over earlier ones.
func (r *TokenRegistry) RegisterProvider(provider TokenProvider) {
	if provider == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers = append(r.providers, provider)
	r.invalidateLocked()
}

// SetResolver replaces the fallback resolver used for locale overrides.
func (r *TokenRegistry) SetResolver(resolver FallbackResolver) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resolver = resolver
	r.invalidateLocked()
}

// Token returns the implementation of token for locale.
func (r *TokenRegistry) Token(token, locale string) (TokenFunc, bool) {
	fn, ok := r.table(locale).funcs[token]
	return fn, ok
}

// Tokens returns the sorted token names available for locale.
func (r *TokenRegistry) Tokens(locale string) []string {
	table := r.table(locale)
	out := make([]string, 0, len(table.funcs))
	for token := range table.funcs {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

func (r *TokenRegistry) table(locale string) *tokenTable {
	key := normalizeLocale(locale)

	r.mu.RLock()
	if cached, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return cached
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil {
		r.cache = make(map[string]*tokenTable)
	} else if cached, ok := r.cache[key]; ok {
		return cached
	}

	funcs := make(map[string]TokenFunc, len(r.defaults))
	maps.Copy(funcs, r.defaults)

	for _, provider := range r.providers {
		for token, fn := range provider.Tokens(key) {
			if token != "" && fn != nil {
				funcs[token] = fn
			}
		}
	}

	// least specific first so the requested locale wins
	candidates := r.candidateLocales(key)
	for i := len(candidates) - 1; i >= 0; i-- {
		if tokens, ok := r.overrides[candidates[i]]; ok {
			maps.Copy(funcs, tokens)
		}
	}

	table := compileTokenTable(funcs)
	r.cache[key] = table
	return table
}

func (r *TokenRegistry) candidateLocales(locale string) []string {
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	if r.resolver != nil {
		for _, parent := range r.resolver.Resolve(locale) {
			if parent == "" || containsLocale(chain, parent) {
				continue
			}
			chain = append(chain, parent)
		}
	}
	for _, parent := range localeParentChain(locale) {
		if !containsLocale(chain, parent) {
			chain = append(chain, parent)
		}
	}
	return chain
}

func (r *TokenRegistry) invalidateLocked() {
	r.cache = nil
}

func compileTokenTable(funcs map[string]TokenFunc) *tokenTable {
	byFirst := make(map[byte][]string)
	for token := range funcs {
		byFirst[token[0]] = append(byFirst[token[0]], token)
	}
	for first, tokens := range byFirst {
		sort.Slice(tokens, func(i, j int) bool {
			if len(tokens[i]) != len(tokens[j]) {
				return len(tokens[i]) > len(tokens[j])
			}
			return tokens[i] < tokens[j]
		})
		byFirst[first] = tokens
	}
	return &tokenTable{funcs: funcs, byFirst: byFirst}
}

// match returns the longest token starting at layout[i:].
func (t *tokenTable) match(layout string, i int) (string, TokenFunc, bool) {
	for _, token := range t.byFirst[layout[i]] {
		if len(layout)-i >= len(token) && layout[i:i+len(token)] == token {
			return token, t.funcs[token], true
		}
	}
	return "", nil, false
}
