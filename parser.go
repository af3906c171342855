package datekit

// FormatParser turns input into a Date following layout. locale may be
// empty, in which case the Env default locale applies.
type FormatParser interface {
	ParseFormat(env *Env, input, layout, locale string) Date
}

// FormatParserFunc adapters allow bare functions to implement FormatParser
type FormatParserFunc func(env *Env, input, layout, locale string) Date

// ParseFormat implements FormatParser for FormatParserFunc
func (fn FormatParserFunc) ParseFormat(env *Env, input, layout, locale string) Date {
	return fn(env, input, layout, locale)
}
