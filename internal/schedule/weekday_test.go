package schedule

import (
	"testing"
	"time"
)

func TestLessMondayFirst(t *testing.T) {
	t.Parallel()
	// Calendar order with a Monday week start: Mon < Tue < ... < Sat < Sun.
	order := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	for i := range order {
		for j := range order {
			got := Less(order[i], order[j], Monday)
			want := i < j
			if got != want {
				t.Fatalf("Less(%d, %d, Monday) = %v, want %v", order[i], order[j], got, want)
			}
		}
	}
}

func TestLessNoSelf(t *testing.T) {
	t.Parallel()
	for first := Sunday; first <= Saturday; first++ {
		for d := Sunday; d <= Saturday; d++ {
			if Less(d, d, first) {
				t.Fatalf("Less(%d, %d, first=%d) = true", d, d, first)
			}
		}
	}
}

func TestSortWeekdays(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		days  []Weekday
		first Weekday
		want  []Weekday
	}{
		{name: "sunday first", days: []Weekday{Saturday, Monday, Sunday}, first: Sunday, want: []Weekday{Sunday, Monday, Saturday}},
		{name: "monday first wraps sunday", days: []Weekday{Sunday, Friday, Monday}, first: Monday, want: []Weekday{Monday, Friday, Sunday}},
		{name: "saturday first", days: []Weekday{Sunday, Saturday, Friday}, first: Saturday, want: []Weekday{Saturday, Sunday, Friday}},
		{name: "invalid first falls back to sunday", days: []Weekday{Monday, Sunday}, first: 0, want: []Weekday{Sunday, Monday}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			days := append([]Weekday(nil), tt.days...)
			SortWeekdays(days, tt.first)
			for i := range tt.want {
				if days[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", days, tt.want)
				}
			}
		})
	}
}

func TestTimeWeekdayRoundTrip(t *testing.T) {
	t.Parallel()
	for d := time.Sunday; d <= time.Saturday; d++ {
		w := FromTimeWeekday(d)
		if !w.Valid() {
			t.Fatalf("FromTimeWeekday(%v) = %d, invalid", d, w)
		}
		if w.TimeWeekday() != d {
			t.Fatalf("round trip %v -> %d -> %v", d, w, w.TimeWeekday())
		}
	}
}
