package schedule

// TriggerSpec is the minimal calendar specification needed to arm one
// repeating local notification: a wall-clock hour/minute and an optional
// weekday. A zero Weekday means the trigger repeats every day.
//
// The engine only produces these specs; arming and cancelling notifications
// is the host's job.
type TriggerSpec struct {
	Hour    int     `json:"hour"`
	Minute  int     `json:"minute"`
	Weekday Weekday `json:"weekday,omitempty"`
}

// Daily reports whether the trigger repeats every day (no weekday).
func (t TriggerSpec) Daily() bool { return t.Weekday == 0 }

// Triggers expands the schedule into trigger specs:
//
//   - no time configured: nil, regardless of days;
//   - all seven days: a single weekday-less spec (one daily trigger is
//     equivalent to seven per-weekday ones, and cheaper to arm);
//   - otherwise: one spec per day, in ascending ordinal order;
//   - empty day set: empty output ("never").
func (s *WeeklySchedule) Triggers() []TriggerSpec {
	h, m, ok := s.TimeComponents()
	if !ok {
		return nil
	}
	if s.IsDaily() {
		return []TriggerSpec{{Hour: h, Minute: m}}
	}
	out := make([]TriggerSpec, 0, len(s.days))
	for _, d := range s.days {
		out = append(out, TriggerSpec{Hour: h, Minute: m, Weekday: d})
	}
	return out
}
