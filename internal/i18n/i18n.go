// Package i18n supplies the locale data the renderer consumes: weekday
// names, list-joining templates, the short clock format, and the locale's
// first day of week.
//
// A Bundle can be loaded from a YAML file so deployments can ship their own
// translations; English() is the builtin fallback and also backfills any
// field a bundle leaves empty.
package i18n

import (
	"strings"
	"time"

	"remind/internal/schedule"
)

// Localizer is what the renderer needs from a locale. Implementations must
// be safe for concurrent readers.
type Localizer interface {
	// EveryDay is the phrase used for the full seven-day set, e.g. "every day".
	EveryDay() string
	// DaysAtTimes composes the verbose "{days} at {times}" sentence.
	DaysAtTimes(days, times string) string
	// WeekdayName returns the long localized name, e.g. "Monday".
	WeekdayName(w schedule.Weekday) string
	// WeekdayShortName returns the abbreviated name, e.g. "Mon".
	WeekdayShortName(w schedule.Weekday) string
	// FirstWeekday is the locale's first day of the week.
	FirstWeekday() schedule.Weekday
	// JoinNatural joins items as prose: "A", "A and B", "A, B and C".
	JoinNatural(items []string) string
	// JoinList joins items with the locale's flat list delimiter.
	JoinList(items []string) string
	// Clock renders a wall-clock time in the locale's short format,
	// e.g. "8:00 AM" or "08:00".
	Clock(hour, minute int) string
}

// Bundle is a data-driven Localizer. Build one via English() or Load();
// see bundle.go for the on-disk YAML shape.
type Bundle struct {
	First         int       // 1=Sunday .. 7=Saturday
	EveryDayText  string    // "every day"
	AtTemplate    string    // "%1 at %2"
	ListDelimiter string    // ", "
	ListConjunct  string    // " and "
	ClockLayout   string    // Go time layout, e.g. "3:04 PM"
	LongNames     [7]string // Sunday first
	ShortNames    [7]string // Sunday first
}

func (b *Bundle) EveryDay() string { return b.EveryDayText }

func (b *Bundle) DaysAtTimes(days, times string) string {
	return strings.Replace(strings.Replace(b.AtTemplate, "%1", days, 1), "%2", times, 1)
}

func (b *Bundle) WeekdayName(w schedule.Weekday) string {
	if !w.Valid() {
		return ""
	}
	return b.LongNames[int(w)-1]
}

func (b *Bundle) WeekdayShortName(w schedule.Weekday) string {
	if !w.Valid() {
		return ""
	}
	return b.ShortNames[int(w)-1]
}

func (b *Bundle) FirstWeekday() schedule.Weekday {
	w := schedule.Weekday(b.First)
	if !w.Valid() {
		return schedule.Sunday
	}
	return w
}

func (b *Bundle) JoinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	head := strings.Join(items[:len(items)-1], b.ListDelimiter)
	return head + b.ListConjunct + items[len(items)-1]
}

func (b *Bundle) JoinList(items []string) string {
	return strings.Join(items, b.ListDelimiter)
}

func (b *Bundle) Clock(hour, minute int) string {
	// The date part is irrelevant; only the layout's clock verbs are used.
	at := time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC)
	return at.Format(b.ClockLayout)
}
