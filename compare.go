package datekit

// IsSame reports whether d and other fall in the same unit. Without a unit
// the instants must match to the millisecond. other is coerced with d's
// Env when it is not a Date.
func (d Date) IsSame(other any, unit ...Unit) bool {
	a, b, ok := d.truncatePair(other, unit)
	return ok && a == b
}

// IsBefore reports whether d's unit starts before other's.
func (d Date) IsBefore(other any, unit ...Unit) bool {
	a, b, ok := d.truncatePair(other, unit)
	return ok && a < b
}

// IsAfter reports whether d's unit starts after other's.
func (d Date) IsAfter(other any, unit ...Unit) bool {
	a, b, ok := d.truncatePair(other, unit)
	return ok && a > b
}

// truncatePair coerces other and truncates both sides with their own
// StartOf. ok is false when either side is invalid.
func (d Date) truncatePair(other any, unit []Unit) (int64, int64, bool) {
	if !d.valid {
		return 0, 0, false
	}
	that := d.env().coerce(other)
	if !that.valid {
		return 0, 0, false
	}

	u := UnitMillisecond
	if len(unit) > 0 && unit[0] != "" {
		u = unit[0].Normalize()
	}
	if u == UnitMillisecond {
		return d.ValueOf(), that.ValueOf(), true
	}
	return d.StartOf(u).ValueOf(), that.StartOf(u).ValueOf(), true
}
