// Package schedule implements the weekly recurrence rule behind recurring
// local reminders.
//
// # Overview
//
// A WeeklySchedule is a set of weekdays plus an optional wall-clock time of
// day ("HH:mm", 24-hour, no time zone). It expands into TriggerSpec values,
// the minimal (hour, minute, optional weekday) tuples a host needs to arm
// repeating local notifications. A rule covering all seven days collapses
// into a single weekday-less daily trigger.
//
// # Conventions
//
//   - Weekday ordinals are Sunday=1 .. Saturday=7 in storage and on the wire.
//   - Display order depends on the locale's first day of week, which is
//     always passed explicitly (see Less / SortWeekdays).
//   - Nothing here errors on bad domain input: malformed times and
//     out-of-range ordinals degrade to "absent"/"dropped", and the typed
//     setters report success as a bool.
//
// The package never arms, delivers, or cancels notifications and never
// persists rules; it is pure computation over value types.
package schedule
