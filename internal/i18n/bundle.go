package i18n

import (
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v3"
)

// bundleFile is the on-disk YAML shape. Lists may be shorter than seven;
// missing entries fall back to English.
type bundleFile struct {
	FirstWeekday  int      `yaml:"first_weekday"`
	EveryDay      string   `yaml:"every_day"`
	DaysAtTimes   string   `yaml:"days_at_times"`
	ListDelimiter string   `yaml:"list_delimiter"`
	ListAnd       string   `yaml:"list_and"`
	TimeLayout    string   `yaml:"time_layout"`
	WeekdaysLong  []string `yaml:"weekdays_long"`
	WeekdaysShort []string `yaml:"weekdays_short"`
}

// Load reads a locale bundle from a YAML file. Fields the file omits keep
// their English values, so partial bundles are fine.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locale bundle: %w", err)
	}
	var f bundleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("locale bundle %s: %w", path, err)
	}

	b := English()
	if f.FirstWeekday >= 1 && f.FirstWeekday <= 7 {
		b.First = f.FirstWeekday
	}
	if f.EveryDay != "" {
		b.EveryDayText = f.EveryDay
	}
	if f.DaysAtTimes != "" {
		b.AtTemplate = f.DaysAtTimes
	}
	if f.ListDelimiter != "" {
		b.ListDelimiter = f.ListDelimiter
	}
	if f.ListAnd != "" {
		b.ListConjunct = f.ListAnd
	}
	if f.TimeLayout != "" {
		b.ClockLayout = f.TimeLayout
	}
	for i := 0; i < 7 && i < len(f.WeekdaysLong); i++ {
		if f.WeekdaysLong[i] != "" {
			b.LongNames[i] = f.WeekdaysLong[i]
		}
	}
	for i := 0; i < 7 && i < len(f.WeekdaysShort); i++ {
		if f.WeekdaysShort[i] != "" {
			b.ShortNames[i] = f.WeekdaysShort[i]
		}
	}
	return b, nil
}
