// Package quarterofyear adds the quarter unit and the Q format token.
package quarterofyear

import (
	"strconv"

	datekit "github.com/goliatone/go-datekit"
)

// Plugin registers the quarter unit with Get, Set, Add and StartOf plus
// the Q token.
var Plugin = datekit.NewPlugin("quarterofyear", install)

func install(_ any, env *datekit.Env) {
	env.RegisterUnit(datekit.UnitQuarter, datekit.UnitHandler{
		Get:     Quarter,
		Set:     WithQuarter,
		Add:     func(d datekit.Date, amount int) datekit.Date { return d.Add(amount*3, datekit.UnitMonth) },
		StartOf: startOfQuarter,
	})
	env.RegisterToken("Q", func(d datekit.Date, _ *datekit.Locale) string {
		return strconv.Itoa(Quarter(d))
	})
}

// Quarter returns 1 to 4.
func Quarter(d datekit.Date) int {
	if !d.IsValid() {
		return 0
	}
	return d.Month()/3 + 1
}

// WithQuarter moves d to the same month position inside quarter q.
func WithQuarter(d datekit.Date, q int) datekit.Date {
	if !d.IsValid() {
		return d
	}
	return d.WithMonth(d.Month()%3 + (q-1)*3)
}

func startOfQuarter(d datekit.Date) datekit.Date {
	if !d.IsValid() {
		return d
	}
	return d.WithMonth((Quarter(d) - 1) * 3).StartOf(datekit.UnitMonth)
}
