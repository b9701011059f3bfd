package schedule

import "encoding/json"

// wireSchedule is the persisted shape:
//
//	{ "daysOfWeek": [1, 3, 5], "timeOfDay": "08:00" }
//
// daysOfWeek omitted means all seven days; timeOfDay omitted means no time.
// Field order (daysOfWeek before timeOfDay) is a stability contract for
// diff-friendly persisted configuration and is pinned by a test.
type wireSchedule struct {
	DaysOfWeek *[]int `json:"daysOfWeek,omitempty"`
	TimeOfDay  string `json:"timeOfDay,omitempty"`
}

// MarshalJSON encodes the canonical wire form. The day list is always
// emitted, even when it is the full default set.
func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	ords := make([]int, len(s.days))
	for i, d := range s.days {
		ords[i] = int(d)
	}
	return json.Marshal(wireSchedule{DaysOfWeek: &ords, TimeOfDay: s.timeOfDay})
}

// UnmarshalJSON decodes the wire form. In-schema values never fail: unknown
// ordinals are dropped and a malformed time degrades to "no time". Only
// wrong JSON types surface as decode errors, and those belong to the codec
// layer, not this rule.
func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var w wireSchedule
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.DaysOfWeek == nil {
		s.days = AllWeekdays()
	} else {
		s.SetDayOrdinals(*w.DaysOfWeek)
	}
	s.SetTimeString(w.TimeOfDay)
	return nil
}
