package datekit

import (
	"math"
	"time"
)

// UnitHandler lets a plugin teach Date about a unit the core does not
// know. Nil members make the matching operation a no-op.
type UnitHandler struct {
	Get     func(d Date) int
	Set     func(d Date, value int) Date
	Add     func(d Date, amount int) Date
	StartOf func(d Date) Date
}

// Get reads the field named by unit. Unknown units read 0.
func (d Date) Get(unit Unit) int {
	if !d.valid {
		return 0
	}

	switch u := unit.Normalize(); u {
	case UnitYear:
		return d.Year()
	case UnitMonth:
		return d.Month()
	case UnitDate:
		return d.Day()
	case UnitDay:
		return d.Weekday()
	case UnitHour:
		return d.Hour()
	case UnitMinute:
		return d.Minute()
	case UnitSecond:
		return d.Second()
	case UnitMillisecond:
		return d.Millisecond()
	default:
		if handler, ok := d.env().unitHandler(u); ok && handler.Get != nil {
			return handler.Get(d)
		}
		return 0
	}
}

// Set returns d with the field named by unit replaced. Values out of range
// carry into the next field; year and month keep the day of month within
// the target month. Unknown units return d unchanged.
func (d Date) Set(unit Unit, value int) Date {
	if !d.valid {
		return d
	}

	switch u := unit.Normalize(); u {
	case UnitYear:
		return d.withMonthYear(value, d.Month())
	case UnitMonth:
		return d.withMonthYear(d.Year(), value)
	case UnitDate:
		return d.build(d.Year(), d.Month(), value, d.Hour(), d.Minute(), d.Second(), d.Millisecond())
	case UnitDay:
		return d.build(d.Year(), d.Month(), d.Day()+value-d.Weekday(), d.Hour(), d.Minute(), d.Second(), d.Millisecond())
	case UnitHour:
		return d.build(d.Year(), d.Month(), d.Day(), value, d.Minute(), d.Second(), d.Millisecond())
	case UnitMinute:
		return d.build(d.Year(), d.Month(), d.Day(), d.Hour(), value, d.Second(), d.Millisecond())
	case UnitSecond:
		return d.build(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), value, d.Millisecond())
	case UnitMillisecond:
		return d.build(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), value)
	default:
		if handler, ok := d.env().unitHandler(u); ok && handler.Set != nil {
			return handler.Set(d, value)
		}
		return d.Clone()
	}
}

func (d Date) withMonthYear(year, month0 int) Date {
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	day := d.Day()
	if limit := daysIn(first.Year(), first.Month()); day > limit {
		day = limit
	}
	return d.build(first.Year(), int(first.Month())-1, day, d.Hour(), d.Minute(), d.Second(), d.Millisecond())
}

// WithYear returns d in year, clamping Feb 29 to Feb 28 where needed.
func (d Date) WithYear(year int) Date { return d.Set(UnitYear, year) }

// WithMonth returns d in month (0 based), clamping the day of month.
func (d Date) WithMonth(month int) Date { return d.Set(UnitMonth, month) }

// WithDay returns d on the given day of month.
func (d Date) WithDay(day int) Date { return d.Set(UnitDate, day) }

// WithWeekday returns the date in d's Sunday based week with that weekday.
func (d Date) WithWeekday(weekday int) Date { return d.Set(UnitDay, weekday) }

func (d Date) WithHour(hour int) Date { return d.Set(UnitHour, hour) }

func (d Date) WithMinute(minute int) Date { return d.Set(UnitMinute, minute) }

func (d Date) WithSecond(second int) Date { return d.Set(UnitSecond, second) }

func (d Date) WithMillisecond(ms int) Date { return d.Set(UnitMillisecond, ms) }

// Add moves d by amount units. Hours and smaller units add elapsed time;
// days and weeks move the wall clock date; months and years keep the day
// of month inside the target month. Unknown units return d unchanged.
func (d Date) Add(amount int, unit Unit) Date {
	if !d.valid {
		return d
	}

	u := unit.Normalize()
	if step, ok := unitDuration(u); ok {
		return d.derive(d.t.Add(time.Duration(amount) * step))
	}

	switch u {
	case UnitDate, UnitDay:
		return d.build(d.Year(), d.Month(), d.Day()+amount, d.Hour(), d.Minute(), d.Second(), d.Millisecond())
	case UnitWeek:
		return d.build(d.Year(), d.Month(), d.Day()+7*amount, d.Hour(), d.Minute(), d.Second(), d.Millisecond())
	case UnitMonth:
		return d.withMonthYear(d.Year(), d.Month()+amount)
	case UnitYear:
		return d.withMonthYear(d.Year()+amount, d.Month())
	default:
		if handler, ok := d.env().unitHandler(u); ok && handler.Add != nil {
			return handler.Add(d, amount)
		}
		return d.Clone()
	}
}

// Subtract is Add with the amount negated.
func (d Date) Subtract(amount int, unit Unit) Date {
	return d.Add(-amount, unit)
}

// StartOf returns the first millisecond of the unit containing d. Weeks
// start on the locale WeekStart.
func (d Date) StartOf(unit Unit) Date {
	if !d.valid {
		return d
	}

	switch u := unit.Normalize(); u {
	case UnitYear:
		return d.build(d.Year(), 0, 1, 0, 0, 0, 0)
	case UnitMonth:
		return d.build(d.Year(), d.Month(), 1, 0, 0, 0, 0)
	case UnitWeek:
		weekStart := d.LocaleData().WeekStart
		weekday := d.Weekday()
		if weekday < weekStart {
			weekday += 7
		}
		return d.build(d.Year(), d.Month(), d.Day()-(weekday-weekStart), 0, 0, 0, 0)
	case UnitDate, UnitDay:
		return d.build(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0)
	case UnitHour:
		return d.derive(d.t.Add(-d.sinceHour()))
	case UnitMinute:
		return d.derive(d.t.Add(-d.sinceHour() + time.Duration(d.Minute())*time.Minute))
	case UnitSecond:
		return d.derive(d.t.Add(-time.Duration(d.Millisecond()) * time.Millisecond))
	case UnitMillisecond:
		return d.Clone()
	default:
		if handler, ok := d.env().unitHandler(u); ok && handler.StartOf != nil {
			return handler.StartOf(d)
		}
		return d.Clone()
	}
}

// sinceHour is the elapsed time since the top of the wall clock hour. It
// is subtracted rather than rebuilt so repeated DST hours stay put.
func (d Date) sinceHour() time.Duration {
	return time.Duration(d.Minute())*time.Minute +
		time.Duration(d.Second())*time.Second +
		time.Duration(d.Millisecond())*time.Millisecond
}

// EndOf returns the last millisecond of the unit containing d.
func (d Date) EndOf(unit Unit) Date {
	if !d.valid {
		return d
	}

	u := unit.Normalize()
	if !d.env().knowsUnit(u) {
		return d.Clone()
	}
	if u == UnitMillisecond {
		return d.Clone()
	}
	// a start moved past a DST gap carries its 01:00 through Add
	return d.StartOf(u).Add(1, u).StartOf(u).Add(-1, UnitMillisecond)
}

// Diff returns d - other in unit, truncated toward zero. Months,
// quarters and years count calendar months; days and weeks ignore zone
// offset changes between the two instants. Unknown units diff in
// milliseconds.
func (d Date) Diff(other any, unit Unit) int64 {
	value := d.DiffFloat(other, unit)
	if math.IsNaN(value) {
		return 0
	}
	return int64(value)
}

// DiffFloat is Diff without truncation. Invalid operands yield NaN.
func (d Date) DiffFloat(other any, unit Unit) float64 {
	that := d.env().coerce(other)
	if !d.valid || !that.valid {
		return math.NaN()
	}

	diff := float64(d.ValueOf() - that.ValueOf())
	zoneDelta := float64(that.UTCOffset()-d.UTCOffset()) * float64(time.Minute/time.Millisecond)

	switch unit.Normalize() {
	case UnitYear:
		return monthDiff(d, that) / 12
	case UnitMonth:
		return monthDiff(d, that)
	case UnitQuarter:
		return monthDiff(d, that) / 3
	case UnitWeek, UnitISOWeek:
		return (diff - zoneDelta) / float64(7*24*time.Hour/time.Millisecond)
	case UnitDay, UnitDate:
		return (diff - zoneDelta) / float64(24*time.Hour/time.Millisecond)
	case UnitHour:
		return diff / float64(time.Hour/time.Millisecond)
	case UnitMinute:
		return diff / float64(time.Minute/time.Millisecond)
	case UnitSecond:
		return diff / float64(time.Second/time.Millisecond)
	default:
		return diff
	}
}

// monthDiff counts the months from a to b, as a fraction anchored on a's
// day of month, negated so that later a gives positive results.
func monthDiff(a, b Date) float64 {
	if a.Day() < b.Day() {
		return -monthDiff(b, a)
	}

	whole := (b.Year()-a.Year())*12 + (b.Month() - a.Month())
	anchor := a.Add(whole, UnitMonth)
	behind := b.ValueOf()-anchor.ValueOf() < 0

	var anchor2 Date
	if behind {
		anchor2 = a.Add(whole-1, UnitMonth)
	} else {
		anchor2 = a.Add(whole+1, UnitMonth)
	}

	span := float64(anchor2.ValueOf() - anchor.ValueOf())
	if behind {
		span = float64(anchor.ValueOf() - anchor2.ValueOf())
	}
	if span == 0 {
		return float64(-whole)
	}

	result := -(float64(whole) + float64(b.ValueOf()-anchor.ValueOf())/span)
	if result == 0 {
		return 0
	}
	return result
}
