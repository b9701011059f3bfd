// Package render turns weekly schedules into display text at one of four
// verbosity styles, using locale data injected via i18n.Localizer.
package render

import (
	"strings"

	"remind/internal/i18n"
	"remind/internal/schedule"
)

// Style selects how compact the rendered text is.
type Style int

const (
	// StyleFull and StyleLong compose a sentence: "Monday and Friday at 8:00 AM".
	StyleFull Style = iota
	StyleLong
	// StyleMedium puts times and long day names on separate lines.
	StyleMedium
	// StyleShort is a single flat list with abbreviated day names.
	StyleShort
)

// ParseStyle maps a user-facing style name to a Style. Unknown names fall
// back to StyleMedium, the default.
func ParseStyle(v string) Style {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "full":
		return StyleFull
	case "long":
		return StyleLong
	case "short":
		return StyleShort
	default:
		return StyleMedium
	}
}

func (st Style) String() string {
	switch st {
	case StyleFull:
		return "full"
	case StyleLong:
		return "long"
	case StyleShort:
		return "short"
	default:
		return "medium"
	}
}

// verbose styles join day and time lists as prose and use the
// "{days} at {times}" sentence template.
func (st Style) verbose() bool { return st == StyleFull || st == StyleLong }

// Formatter renders schedules for one locale at one style. It is stateless
// beyond its configuration and safe for concurrent use.
type Formatter struct {
	loc   i18n.Localizer
	style Style
}

// New returns a formatter for the given locale and style.
func New(loc i18n.Localizer, style Style) *Formatter {
	return &Formatter{loc: loc, style: style}
}

// Render renders a single schedule.
func (f *Formatter) Render(s schedule.WeeklySchedule) string {
	return f.renderGroup([]schedule.WeeklySchedule{s}, f.style)
}

// RenderAll renders a batch. Schedules sharing one day set merge into a
// single line ("8:00 AM, 7:30 PM, Mon, Fri"); mixed day sets render one
// schedule per line, each demoted from medium to short so the lines stay
// scannable.
func (f *Formatter) RenderAll(ss []schedule.WeeklySchedule) string {
	if len(ss) == 0 {
		return ""
	}
	if sameDaySet(ss) {
		return f.renderGroup(ss, f.style)
	}
	st := f.style
	if st == StyleMedium {
		st = StyleShort
	}
	lines := make([]string, 0, len(ss))
	for i := range ss {
		lines = append(lines, f.renderGroup(ss[i:i+1], st))
	}
	return strings.Join(lines, "\n")
}

// RenderDays renders only a day list from raw 1..7 ordinals, ignoring time.
func (f *Formatter) RenderDays(ords []int) string {
	var s schedule.WeeklySchedule
	s.SetDayOrdinals(ords)
	return f.renderDays(&s, f.style)
}

func sameDaySet(ss []schedule.WeeklySchedule) bool {
	first := ss[0].Days()
	for i := 1; i < len(ss); i++ {
		days := ss[i].Days()
		if len(days) != len(first) {
			return false
		}
		for j := range days {
			if days[j] != first[j] {
				return false
			}
		}
	}
	return true
}

// renderGroup renders schedules that all share ss[0]'s day set: the day
// string once, then one time per distinct configured time in batch order.
func (f *Formatter) renderGroup(ss []schedule.WeeklySchedule, st Style) string {
	days := f.renderDays(&ss[0], st)

	var times []string
	seen := map[string]bool{}
	for i := range ss {
		t, ok := ss[i].TimeString()
		if !ok || seen[t] {
			continue
		}
		seen[t] = true
		h, m, _ := ss[i].TimeComponents()
		times = append(times, f.loc.Clock(h, m))
	}
	var timesText string
	if st.verbose() {
		timesText = f.loc.JoinNatural(times)
	} else {
		timesText = f.loc.JoinList(times)
	}

	switch {
	case days == "":
		return timesText
	case timesText == "":
		return days
	}
	switch st {
	case StyleFull, StyleLong:
		return f.loc.DaysAtTimes(days, timesText)
	case StyleShort:
		return f.loc.JoinList([]string{timesText, days})
	default:
		return timesText + "\n" + days
	}
}

func (f *Formatter) renderDays(s *schedule.WeeklySchedule, st Style) string {
	if s.IsDaily() {
		return f.loc.EveryDay()
	}
	days := s.Days()
	if len(days) == 0 {
		return ""
	}
	// Read the week start once so one render never mixes two sort orders.
	schedule.SortWeekdays(days, f.loc.FirstWeekday())

	names := make([]string, 0, len(days))
	for _, d := range days {
		if st == StyleShort {
			names = append(names, f.loc.WeekdayShortName(d))
		} else {
			names = append(names, f.loc.WeekdayName(d))
		}
	}
	if st.verbose() {
		return f.loc.JoinNatural(names)
	}
	return f.loc.JoinList(names)
}
