package model

import "time"

// Theme selects the color palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (theme Theme) Toggle() Theme {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid reports whether theme is a known palette.
func (theme Theme) Valid() bool {
	return theme == ThemeLight || theme == ThemeDark
}

const (
	MinIntervalMinutes     = 1
	MaxIntervalMinutes     = 120
	MinPopupTimeoutSeconds = 10
	MaxPopupTimeoutSeconds = 300
)

// Settings defines the persisted user preferences.
type Settings struct {
	IntervalMinutes     int
	QuietEnabled        bool
	QuietStart          string
	QuietEnd            string
	Theme               Theme
	CustomMessage       string
	PopupTimeoutSeconds int
	PopupPersistent     bool
	SoundEnabled        bool
}

// DefaultSettings returns the settings used on first launch.
func DefaultSettings() Settings {
	return Settings{
		IntervalMinutes:     45,
		QuietEnabled:        false,
		QuietStart:          "18:00",
		QuietEnd:            "08:00",
		Theme:               ThemeLight,
		CustomMessage:       "Time to Stretch!",
		PopupTimeoutSeconds: 180,
		PopupPersistent:     false,
		SoundEnabled:        true,
	}
}

// Normalized clamps numeric fields into range and replaces unknown themes
// and an empty message with their defaults.
func (settings Settings) Normalized() Settings {
	settings.IntervalMinutes = clamp(settings.IntervalMinutes, MinIntervalMinutes, MaxIntervalMinutes)
	settings.PopupTimeoutSeconds = clamp(settings.PopupTimeoutSeconds, MinPopupTimeoutSeconds, MaxPopupTimeoutSeconds)
	if !settings.Theme.Valid() {
		settings.Theme = ThemeLight
	}
	if settings.CustomMessage == "" {
		settings.CustomMessage = DefaultSettings().CustomMessage
	}
	return settings
}

// Interval returns the reminder interval as a duration.
func (settings Settings) Interval() time.Duration {
	return time.Duration(settings.IntervalMinutes) * time.Minute
}

// PopupTimeout returns the popup auto-close delay.
func (settings Settings) PopupTimeout() time.Duration {
	return time.Duration(settings.PopupTimeoutSeconds) * time.Second
}

// QuietHours describes the reminder suppression window.
type QuietHours struct {
	Enabled bool
	Start   string
	End     string
}

// TimeKeeperConfig contains runtime settings for the countdown engine.
type TimeKeeperConfig struct {
	IntervalSeconds int
	Quiet           QuietHours
}

// TimeKeeperConfig converts settings to TimeKeeperConfig.
func (settings Settings) TimeKeeperConfig() TimeKeeperConfig {
	normalized := settings.Normalized()
	return TimeKeeperConfig{
		IntervalSeconds: int(normalized.Interval() / time.Second),
		Quiet: QuietHours{
			Enabled: settings.QuietEnabled,
			Start:   settings.QuietStart,
			End:     settings.QuietEnd,
		},
	}
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
