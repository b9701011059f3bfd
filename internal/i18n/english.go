package i18n

// English returns the builtin en locale: Sunday-first week, 12-hour clock.
// The days_at_times template uses positional %1 (days) and %2 (times) so
// translations may reorder the halves.
func English() *Bundle {
	return &Bundle{
		First:         1,
		EveryDayText:  "every day",
		AtTemplate:    "%1 at %2",
		ListDelimiter: ", ",
		ListConjunct:  " and ",
		ClockLayout:   "3:04 PM",
		LongNames: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		ShortNames: [7]string{
			"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
		},
	}
}
