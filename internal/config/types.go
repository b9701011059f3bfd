package config

import (
	"remind/internal/schedule"
	"remind/pkg/logx"
)

// Config is the application config (YAML or JSON on disk).
type Config struct {
	Logging   logx.Config     `json:"logging"`
	Locale    LocaleConfig    `json:"locale,omitempty"`
	Reminders RemindersConfig `json:"reminders"`
}

// LocaleConfig selects the locale bundle. An empty bundle path means the
// builtin English bundle.
type LocaleConfig struct {
	Bundle string `json:"bundle,omitempty"`
}

// RemindersConfig points at the reminders document and sets display defaults.
type RemindersConfig struct {
	// Path of the reminders document (YAML or JSON, see Document).
	Path string `json:"path"`

	// Style is the default verbosity: "full", "long", "medium" or "short".
	Style string `json:"style,omitempty"`

	// Preview is how many upcoming fire times to show per trigger.
	// Defaults to 3.
	Preview int `json:"preview,omitempty"`
}

// Document is the reminders document: the named rules this process renders
// and expands into triggers.
type Document struct {
	Reminders []Reminder `json:"reminders"`
}

// Reminder pairs a display name with its weekly recurrence rule.
type Reminder struct {
	Name     string                  `json:"name"`
	Schedule schedule.WeeklySchedule `json:"schedule"`
}

func (c *Config) withDefaults() {
	if c.Reminders.Preview <= 0 {
		c.Reminders.Preview = 3
	}
	if c.Reminders.Style == "" {
		c.Reminders.Style = "medium"
	}
}
