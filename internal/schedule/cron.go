package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser accepts the standard 5-field layout plus descriptors, the same
// parser shape the host's scheduler uses.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// CronSpec renders the trigger as a 5-field cron line. Cron numbers weekdays
// Sunday=0, one below the storage ordinal; a daily trigger uses "*".
func (t TriggerSpec) CronSpec() string {
	if t.Daily() {
		return fmt.Sprintf("%d %d * * *", t.Minute, t.Hour)
	}
	return fmt.Sprintf("%d %d * * %d", t.Minute, t.Hour, int(t.Weekday)-1)
}

// NextRuns previews the first n fire times of a trigger after from, in
// from's location. It is informational only: nothing is armed. A malformed
// trigger yields nil.
func NextRuns(t TriggerSpec, from time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	sched, err := cronParser.Parse(t.CronSpec())
	if err != nil {
		return nil
	}
	out := make([]time.Time, 0, n)
	at := from
	for i := 0; i < n; i++ {
		at = sched.Next(at)
		if at.IsZero() {
			break
		}
		out = append(out, at)
	}
	return out
}
