package schedule

import (
	"sort"
	"time"
)

// Weekday is a day of the week with Sunday-first storage ordinals:
// Sunday=1 ... Saturday=7. The zero value is invalid and, on a TriggerSpec,
// means "every day".
type Weekday int

const (
	Sunday    Weekday = 1
	Monday    Weekday = 2
	Tuesday   Weekday = 3
	Wednesday Weekday = 4
	Thursday  Weekday = 5
	Friday    Weekday = 6
	Saturday  Weekday = 7
)

// Valid reports whether w is one of the seven weekdays.
func (w Weekday) Valid() bool { return w >= Sunday && w <= Saturday }

// Ordinal returns the 1..7 storage ordinal.
func (w Weekday) Ordinal() int { return int(w) }

// FromTimeWeekday converts from the stdlib's Sunday=0 numbering.
func FromTimeWeekday(d time.Weekday) Weekday { return Weekday(int(d) + 1) }

// TimeWeekday converts to the stdlib's Sunday=0 numbering.
func (w Weekday) TimeWeekday() time.Weekday { return time.Weekday(int(w) - 1) }

// AllWeekdays returns the full seven-day set in ascending ordinal order.
// Callers own the returned slice.
func AllWeekdays() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// Less reports whether a sorts before b in calendar order starting from
// first (the week's first day, e.g. Monday for most European locales).
// The ordinal space is rotated so first becomes the minimum; ties are never
// "less". first is an explicit parameter rather than ambient locale state so
// a single sort can never observe two different week starts.
func Less(a, b, first Weekday) bool {
	if !first.Valid() {
		first = Sunday
	}
	return rotated(a, first) < rotated(b, first)
}

func rotated(w, first Weekday) int {
	return (int(w) - int(first) + 7) % 7
}

// SortWeekdays sorts days in place in calendar order starting from first.
func SortWeekdays(days []Weekday, first Weekday) {
	sort.Slice(days, func(i, j int) bool { return Less(days[i], days[j], first) })
}
