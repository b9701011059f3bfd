package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"remind/internal/schedule"
)

func TestEnglishJoins(t *testing.T) {
	t.Parallel()
	b := English()
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{name: "empty", items: nil, want: ""},
		{name: "one", items: []string{"Monday"}, want: "Monday"},
		{name: "two", items: []string{"Monday", "Friday"}, want: "Monday and Friday"},
		{name: "three", items: []string{"Monday", "Wednesday", "Friday"}, want: "Monday, Wednesday and Friday"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := b.JoinNatural(tt.items); got != tt.want {
				t.Fatalf("JoinNatural = %q, want %q", got, tt.want)
			}
		})
	}

	if got := b.JoinList([]string{"Mon", "Fri"}); got != "Mon, Fri" {
		t.Fatalf("JoinList = %q", got)
	}
}

func TestEnglishClock(t *testing.T) {
	t.Parallel()
	b := English()
	tests := []struct {
		h, m int
		want string
	}{
		{8, 0, "8:00 AM"},
		{19, 30, "7:30 PM"},
		{0, 5, "12:05 AM"},
		{12, 0, "12:00 PM"},
	}
	for _, tt := range tests {
		if got := b.Clock(tt.h, tt.m); got != tt.want {
			t.Fatalf("Clock(%d, %d) = %q, want %q", tt.h, tt.m, got, tt.want)
		}
	}
}

func TestEnglishWeekdayNames(t *testing.T) {
	t.Parallel()
	b := English()
	if got := b.WeekdayName(schedule.Monday); got != "Monday" {
		t.Fatalf("WeekdayName(Monday) = %q", got)
	}
	if got := b.WeekdayShortName(schedule.Saturday); got != "Sat" {
		t.Fatalf("WeekdayShortName(Saturday) = %q", got)
	}
	if got := b.WeekdayName(schedule.Weekday(0)); got != "" {
		t.Fatalf("invalid weekday should render empty, got %q", got)
	}
}

func TestDaysAtTimesTemplate(t *testing.T) {
	t.Parallel()
	b := English()
	if got := b.DaysAtTimes("Monday", "8:00 AM"); got != "Monday at 8:00 AM" {
		t.Fatalf("DaysAtTimes = %q", got)
	}

	// Translations may reorder the halves.
	b.AtTemplate = "um %2: %1"
	if got := b.DaysAtTimes("Montag", "08:00"); got != "um 08:00: Montag" {
		t.Fatalf("reordered DaysAtTimes = %q", got)
	}
}

func TestLoadBundlePartialFallback(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "de.yaml")
	data := `
first_weekday: 2
every_day: "jeden Tag"
days_at_times: "%1 um %2"
time_layout: "15:04"
weekdays_long: [Sonntag, Montag]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.FirstWeekday() != schedule.Monday {
		t.Fatalf("FirstWeekday = %v, want Monday", b.FirstWeekday())
	}
	if b.EveryDay() != "jeden Tag" {
		t.Fatalf("EveryDay = %q", b.EveryDay())
	}
	if got := b.Clock(19, 30); got != "19:30" {
		t.Fatalf("Clock = %q, want 19:30", got)
	}
	if got := b.WeekdayName(schedule.Monday); got != "Montag" {
		t.Fatalf("WeekdayName(Monday) = %q", got)
	}
	// Fields the bundle omits keep their English values.
	if got := b.WeekdayName(schedule.Tuesday); got != "Tuesday" {
		t.Fatalf("fallback WeekdayName(Tuesday) = %q", got)
	}
	if got := b.WeekdayShortName(schedule.Monday); got != "Mon" {
		t.Fatalf("fallback WeekdayShortName(Monday) = %q", got)
	}
}

func TestLoadBundleMissingFile(t *testing.T) {
	t.Parallel()
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing bundle")
	}
}
