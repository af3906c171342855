// Package customparseformat parses strings against the same token layouts
// Format renders, so env.ParseFormat("24/12/2021", "DD/MM/YYYY") works.
//
// Input is NFC normalized and passed through the locale PreParse before
// matching. Literals must match exactly, name tokens match the longest
// locale name ignoring case, and out of range fields (month 13, Feb 30,
// hour 24) make the result invalid instead of carrying.
package customparseformat

import (
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	datekit "github.com/goliatone/go-datekit"
)

// ExtensionKey is the Env extension holding the installed *Parser.
const ExtensionKey = "customparseformat.parser"

// Options configures the plugin. Tokens adds or replaces parse tokens.
type Options struct {
	Tokens map[string]TokenParser
}

// Plugin installs a Parser as the Env format parser.
var Plugin = datekit.NewPlugin("customparseformat", install)

func install(opts any, env *datekit.Env) {
	parser := NewParser()
	switch o := opts.(type) {
	case Options:
		for token, fn := range o.Tokens {
			parser.Register(token, fn)
		}
	case *Options:
		if o != nil {
			for token, fn := range o.Tokens {
				parser.Register(token, fn)
			}
		}
	}
	env.SetFormatParser(parser)
	env.SetExtension(ExtensionKey, parser)
}

// RegisterToken adds a parse token to the parser installed on env. It
// reports false when the plugin is not installed.
func RegisterToken(env *datekit.Env, token string, fn TokenParser) bool {
	value, ok := env.Extension(ExtensionKey)
	if !ok {
		return false
	}
	parser, ok := value.(*Parser)
	if !ok {
		return false
	}
	parser.Register(token, fn)
	return true
}

// Parse parses input against layout with the parser installed on env.
func Parse(env *datekit.Env, input, layout string) datekit.Date {
	return env.ParseFormat(input, layout)
}

// Fields collects the values matched while walking a layout. Nil pointers
// are fields the layout did not mention.
type Fields struct {
	Year        *int
	Month       *int // 1 based
	Day         *int
	Hour        *int
	Minute      *int
	Second      *int
	Millisecond *int
	// Offset is the parsed UTC offset in minutes.
	Offset *int
	// UnixMilli wins over every other field when set.
	UnixMilli *int64
	// Afternoon is set by the meridiem tokens.
	Afternoon *bool
	// Hour12 marks hours read from h or hh.
	Hour12 bool
}

// TokenParser consumes a prefix of input, records what it read in f and
// returns the number of bytes used. ok=false fails the parse.
type TokenParser func(input string, l *datekit.Locale, f *Fields) (n int, ok bool)

// Parser is a datekit.FormatParser driven by a token table.
type Parser struct {
	mu     sync.RWMutex
	tokens map[string]TokenParser
	order  map[byte][]string
}

var _ datekit.FormatParser = &Parser{}

// NewParser returns a Parser with the core tokens.
func NewParser() *Parser {
	p := &Parser{tokens: defaultTokens()}
	p.compileLocked()
	return p
}

// Register sets or replaces the parser for token.
func (p *Parser) Register(token string, fn TokenParser) {
	if token == "" || fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokens[token] = fn
	p.compileLocked()
}

func (p *Parser) compileLocked() {
	order := make(map[byte][]string)
	for token := range p.tokens {
		order[token[0]] = append(order[token[0]], token)
	}
	for first, tokens := range order {
		sort.Slice(tokens, func(i, j int) bool {
			if len(tokens[i]) != len(tokens[j]) {
				return len(tokens[i]) > len(tokens[j])
			}
			return tokens[i] < tokens[j]
		})
		order[first] = tokens
	}
	p.order = order
}

func (p *Parser) match(layout string, i int) (string, TokenParser, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, token := range p.order[layout[i]] {
		if strings.HasPrefix(layout[i:], token) {
			return token, p.tokens[token], true
		}
	}
	return "", nil, false
}

// ParseFormat implements datekit.FormatParser.
func (p *Parser) ParseFormat(env *datekit.Env, input, layout, locale string) datekit.Date {
	l := env.ResolveLocale(locale)

	fields, ok := p.walk(norm.NFC.String(input), layout, l)
	if !ok {
		return env.Invalid()
	}

	t, ok := fields.time(env.Now().Time(), env.Location())
	if !ok {
		return env.Invalid()
	}

	d := env.FromTime(t)
	if locale != "" {
		d = d.WithLocale(locale)
	}
	return d
}

// Fields walks layout over input and returns the matched fields without
// building a date.
func (p *Parser) Fields(input, layout string, l *datekit.Locale) (Fields, bool) {
	return p.walk(norm.NFC.String(input), layout, l)
}

func (p *Parser) walk(input, layout string, l *datekit.Locale) (Fields, bool) {
	if l.PreParse != nil {
		input = l.PreParse(input)
	}

	var f Fields
	pos := 0
	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			if end := strings.IndexByte(layout[i+1:], ']'); end >= 0 {
				literal := layout[i+1 : i+1+end]
				if !strings.HasPrefix(input[pos:], literal) {
					return Fields{}, false
				}
				pos += len(literal)
				i += end + 2
				continue
			}
		}

		if token, fn, ok := p.match(layout, i); ok {
			n, ok := fn(input[pos:], l, &f)
			if !ok || n < 0 || pos+n > len(input) {
				return Fields{}, false
			}
			pos += n
			i += len(token)
			continue
		}

		_, size := utf8.DecodeRuneInString(layout[i:])
		if !strings.HasPrefix(input[pos:], layout[i:i+size]) {
			return Fields{}, false
		}
		pos += size
		i += size
	}

	if pos != len(input) {
		return Fields{}, false
	}
	return f, true
}

// time builds the instant described by f. Missing fields default the way
// a calendar reader expects: no day means today when neither year nor
// month are given and the 1st otherwise, no year means this year, no
// month means January when only a year is given and this month otherwise.
func (f Fields) time(now time.Time, loc *time.Location) (time.Time, bool) {
	if f.UnixMilli != nil {
		return time.UnixMilli(*f.UnixMilli), true
	}

	now = now.In(loc)

	year := now.Year()
	if f.Year != nil {
		year = *f.Year
	}

	month := int(now.Month())
	switch {
	case f.Month != nil:
		month = *f.Month
	case f.Year != nil:
		month = 1
	}

	day := 1
	switch {
	case f.Day != nil:
		day = *f.Day
	case f.Year == nil && f.Month == nil:
		day = now.Day()
	}

	hour := value(f.Hour)
	if f.Hour12 && (hour < 1 || hour > 12) {
		return time.Time{}, false
	}
	if f.Afternoon != nil {
		switch {
		case *f.Afternoon && hour < 12:
			hour += 12
		case !*f.Afternoon && hour == 12:
			hour = 0
		}
	}

	minute := value(f.Minute)
	second := value(f.Second)
	ms := value(f.Millisecond)

	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > daysIn(year, month) {
		return time.Time{}, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 || ms < 0 || ms > 999 {
		return time.Time{}, false
	}

	nanos := ms * int(time.Millisecond)
	if f.Offset != nil {
		utc := time.Date(year, time.Month(month), day, hour, minute, second, nanos, time.UTC)
		return utc.Add(-time.Duration(*f.Offset) * time.Minute), true
	}
	return datekit.WallTime(year, time.Month(month), day, hour, minute, second, nanos, loc), true
}

func value(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}
