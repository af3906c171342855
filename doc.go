// Package datekit provides an immutable Date value with locale aware
// formatting, parsing, arithmetic and comparison.
//
// Dates are created from an Env, which holds the locale registry, the
// location, the clock and the installed plugins:
//
//	env := datekit.MustEnv(datekit.WithLocales("en", "es"))
//	d := env.New("2021-05-15").WithLocale("es")
//	d.Add(1, datekit.UnitMonth).Format("dddd D [de] MMMM") // "martes 15 de junio"
//
// Package level helpers such as New and Now use a shared default Env.
// Optional behavior (custom parse layouts, relative time, ISO weeks and
// more) lives in the plugins directory and is installed with WithPlugin.
package datekit
