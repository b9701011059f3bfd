package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// WeeklySchedule is a weekly recurrence rule: a set of weekdays plus an
// optional time of day. The zero value has no days and no time ("never");
// New() returns the default rule (all seven days, no time).
//
// Days are kept normalized: unique, ascending ordinal. The time, when
// present, is always a well-formed two-digit "HH:mm" string; the setters are
// the only writers.
type WeeklySchedule struct {
	days      []Weekday
	timeOfDay string
}

// New returns a schedule covering all seven days with no time configured.
func New() WeeklySchedule {
	return WeeklySchedule{days: AllWeekdays()}
}

// NewAt returns a schedule for the given days at hour:minute.
// Invalid days and out-of-range times are dropped, same as the setters.
func NewAt(hour, minute int, days ...Weekday) WeeklySchedule {
	var s WeeklySchedule
	s.SetDays(days...)
	s.SetTime(hour, minute)
	return s
}

// Days returns the day set in ascending ordinal order. Callers own the slice.
func (s *WeeklySchedule) Days() []Weekday {
	out := make([]Weekday, len(s.days))
	copy(out, s.days)
	return out
}

// SetDays replaces the day set. Invalid weekdays are silently dropped and
// duplicates collapse; the result may be empty ("never").
func (s *WeeklySchedule) SetDays(days ...Weekday) {
	s.days = normalizeDays(days)
}

// SetDayOrdinals replaces the day set from raw 1..7 ordinals.
// Out-of-range integers are silently dropped.
func (s *WeeklySchedule) SetDayOrdinals(ords []int) {
	days := make([]Weekday, 0, len(ords))
	for _, o := range ords {
		days = append(days, Weekday(o))
	}
	s.days = normalizeDays(days)
}

func normalizeDays(days []Weekday) []Weekday {
	out := make([]Weekday, 0, len(days))
	var seen [8]bool
	for _, d := range days {
		if !d.Valid() || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsDaily reports whether the schedule covers all seven days.
func (s *WeeklySchedule) IsDaily() bool { return len(s.days) == 7 }

// TimeString returns the configured "HH:mm" time, if any.
func (s *WeeklySchedule) TimeString() (string, bool) {
	if s.timeOfDay == "" {
		return "", false
	}
	return s.timeOfDay, true
}

// TimeComponents returns the configured hour and minute, if any.
func (s *WeeklySchedule) TimeComponents() (hour, minute int, ok bool) {
	return ParseClock(s.timeOfDay)
}

// SetTime sets the time of day from an hour/minute pair. Out-of-range values
// clear the time and return false.
func (s *WeeklySchedule) SetTime(hour, minute int) bool {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		s.timeOfDay = ""
		return false
	}
	s.timeOfDay = FormatClock(hour, minute)
	return true
}

// SetTimeString sets the time of day from an "HH:mm" string. A malformed
// string clears the time and returns false.
func (s *WeeklySchedule) SetTimeString(v string) bool {
	h, m, ok := ParseClock(v)
	if !ok {
		s.timeOfDay = ""
		return false
	}
	s.timeOfDay = FormatClock(h, m)
	return true
}

// ClearTime removes the configured time ("no triggers").
func (s *WeeklySchedule) ClearTime() { s.timeOfDay = "" }

// Equal reports value equality: same day set and same time.
func (s *WeeklySchedule) Equal(o WeeklySchedule) bool {
	return s.timeOfDay == o.timeOfDay && s.dayKey() == o.dayKey()
}

// dayKey is a canonical key for the day set, used for grouping.
func (s *WeeklySchedule) dayKey() string {
	var b strings.Builder
	for i, d := range s.days {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(d)))
	}
	return b.String()
}

// ParseClock parses a 24-hour "HH:mm" string. It is total: any malformed
// input yields ok=false, never an error. The grammar is strict two-digit:
// all four positions must be ASCII digits, so sign prefixes like "+1:23"
// are rejected rather than coerced.
func ParseClock(v string) (hour, minute int, ok bool) {
	if len(v) != 5 || v[2] != ':' {
		return 0, 0, false
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if v[i] < '0' || v[i] > '9' {
			return 0, 0, false
		}
	}
	h := int(v[0]-'0')*10 + int(v[1]-'0')
	m := int(v[3]-'0')*10 + int(v[4]-'0')
	if h > 23 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// FormatClock renders hour and minute as a zero-padded 24-hour "HH:mm".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
