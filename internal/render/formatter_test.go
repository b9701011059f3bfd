package render

import (
	"strings"
	"testing"

	"remind/internal/i18n"
	"remind/internal/schedule"
)

func TestParseStyle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Style
	}{
		{"full", StyleFull},
		{"LONG", StyleLong},
		{" short ", StyleShort},
		{"medium", StyleMedium},
		{"", StyleMedium},
		{"bogus", StyleMedium},
	}
	for _, tt := range tests {
		if got := ParseStyle(tt.in); got != tt.want {
			t.Fatalf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderSingle(t *testing.T) {
	t.Parallel()
	s := schedule.NewAt(8, 0, schedule.Monday, schedule.Friday)

	tests := []struct {
		style Style
		want  string
	}{
		{StyleFull, "Monday and Friday at 8:00 AM"},
		{StyleLong, "Monday and Friday at 8:00 AM"},
		{StyleMedium, "8:00 AM\nMonday, Friday"},
		{StyleShort, "8:00 AM, Mon, Fri"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.style.String(), func(t *testing.T) {
			f := New(i18n.English(), tt.style)
			if got := f.Render(s); got != tt.want {
				t.Fatalf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEveryDayIgnoresStyle(t *testing.T) {
	t.Parallel()
	s := schedule.New() // all days, no time
	for _, st := range []Style{StyleFull, StyleLong, StyleMedium, StyleShort} {
		f := New(i18n.English(), st)
		if got := f.Render(s); got != "every day" {
			t.Fatalf("style %v: Render = %q, want %q", st, got, "every day")
		}
	}
}

func TestRenderSidesAbsent(t *testing.T) {
	t.Parallel()
	f := New(i18n.English(), StyleShort)

	// Time only: empty day set contributes nothing.
	var timeOnly schedule.WeeklySchedule
	timeOnly.SetDays()
	timeOnly.SetTime(9, 15)
	if got := f.Render(timeOnly); got != "9:15 AM" {
		t.Fatalf("time-only Render = %q", got)
	}

	// Days only.
	daysOnly := schedule.WeeklySchedule{}
	daysOnly.SetDays(schedule.Wednesday)
	if got := f.Render(daysOnly); got != "Wed" {
		t.Fatalf("days-only Render = %q", got)
	}

	// Both absent.
	var empty schedule.WeeklySchedule
	if got := f.Render(empty); got != "" {
		t.Fatalf("empty Render = %q", got)
	}
}

func TestRenderAllMergedDaySet(t *testing.T) {
	t.Parallel()
	a := schedule.NewAt(8, 0, schedule.Monday, schedule.Friday)
	b := schedule.NewAt(19, 30, schedule.Monday, schedule.Friday)

	f := New(i18n.English(), StyleShort)
	got := f.RenderAll([]schedule.WeeklySchedule{a, b})
	if got != "8:00 AM, 7:30 PM, Mon, Fri" {
		t.Fatalf("RenderAll = %q", got)
	}
}

func TestRenderAllDedupesTimes(t *testing.T) {
	t.Parallel()
	a := schedule.NewAt(8, 0, schedule.Monday)
	b := schedule.NewAt(8, 0, schedule.Monday)

	f := New(i18n.English(), StyleShort)
	if got := f.RenderAll([]schedule.WeeklySchedule{a, b}); got != "8:00 AM, Mon" {
		t.Fatalf("RenderAll = %q", got)
	}
}

func TestRenderAllMixedDaySetsDemotesMedium(t *testing.T) {
	t.Parallel()
	a := schedule.NewAt(8, 0, schedule.Monday)
	b := schedule.NewAt(19, 30, schedule.Saturday, schedule.Sunday)

	f := New(i18n.English(), StyleMedium)
	got := f.RenderAll([]schedule.WeeklySchedule{a, b})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	// Each line uses the short style (flat join, abbreviated names).
	if lines[0] != "8:00 AM, Mon" {
		t.Fatalf("line[0] = %q", lines[0])
	}
	if lines[1] != "7:30 PM, Sun, Sat" {
		t.Fatalf("line[1] = %q", lines[1])
	}
}

func TestRenderAllMixedKeepsVerboseStyle(t *testing.T) {
	t.Parallel()
	a := schedule.NewAt(8, 0, schedule.Monday)
	b := schedule.NewAt(19, 30, schedule.Friday)

	f := New(i18n.English(), StyleFull)
	got := f.RenderAll([]schedule.WeeklySchedule{a, b})
	want := "Monday at 8:00 AM\nFriday at 7:30 PM"
	if got != want {
		t.Fatalf("RenderAll = %q, want %q", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	t.Parallel()
	ss := []schedule.WeeklySchedule{
		schedule.NewAt(8, 0, schedule.Monday, schedule.Friday),
		schedule.NewAt(19, 30, schedule.Monday, schedule.Friday),
	}
	f := New(i18n.English(), StyleMedium)
	first := f.RenderAll(ss)
	for i := 0; i < 3; i++ {
		if got := f.RenderAll(ss); got != first {
			t.Fatalf("render not idempotent: %q vs %q", got, first)
		}
	}
}

func TestRenderDays(t *testing.T) {
	t.Parallel()
	f := New(i18n.English(), StyleShort)
	if got := f.RenderDays([]int{6, 2, 99}); got != "Mon, Fri" {
		t.Fatalf("RenderDays = %q", got)
	}
	if got := f.RenderDays([]int{1, 2, 3, 4, 5, 6, 7}); got != "every day" {
		t.Fatalf("RenderDays(all) = %q", got)
	}
}

func TestRenderUsesBundleFirstWeekday(t *testing.T) {
	t.Parallel()
	b := i18n.English()
	b.First = int(schedule.Monday)

	f := New(b, StyleShort)
	s := schedule.WeeklySchedule{}
	s.SetDays(schedule.Sunday, schedule.Monday, schedule.Friday)
	// With a Monday week start, Sunday sorts last.
	if got := f.Render(s); got != "Mon, Fri, Sun" {
		t.Fatalf("Render = %q", got)
	}
}
