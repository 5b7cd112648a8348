package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"stretchtimer/internal/core/model"
)

// SettingsFileName is the name of the settings file placed beside the executable.
const SettingsFileName = "stretch_timer_settings.json"

type jsonSettings struct {
	IntervalMinutes     *int    `json:"interval_minutes,omitempty"`
	QuietEnabled        *bool   `json:"quiet_enabled,omitempty"`
	QuietStart          *string `json:"quiet_start,omitempty"`
	QuietEnd            *string `json:"quiet_end,omitempty"`
	Theme               *string `json:"theme,omitempty"`
	CustomMessage       *string `json:"custom_message,omitempty"`
	PopupTimeoutSeconds *int    `json:"popup_timeout_seconds,omitempty"`
	PopupPersistent     *bool   `json:"popup_persistent,omitempty"`
	SoundEnabled        *bool   `json:"sound_enabled,omitempty"`
}

// Store persists settings to a single JSON file.
type Store struct {
	path string
}

// Open returns a store for the file at path.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads user preferences from JSON.
// Fields missing from the file keep their defaults. A missing file yields
// defaults and no error; unreadable or malformed content yields defaults
// and an error for the caller to log.
func (store *Store) Load() (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData jsonSettings
	if err := json.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings json: %w", err)
	}

	applyJSONSettings(&settings, fileData)
	return settings.Normalized(), nil
}

// Save writes user preferences to JSON with two-space indentation.
func (store *Store) Save(settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	theme := string(settings.Theme)
	fileData := jsonSettings{
		IntervalMinutes:     &settings.IntervalMinutes,
		QuietEnabled:        &settings.QuietEnabled,
		QuietStart:          &settings.QuietStart,
		QuietEnd:            &settings.QuietEnd,
		Theme:               &theme,
		CustomMessage:       &settings.CustomMessage,
		PopupTimeoutSeconds: &settings.PopupTimeoutSeconds,
		PopupPersistent:     &settings.PopupPersistent,
		SoundEnabled:        &settings.SoundEnabled,
	}

	serialized, err := json.MarshalIndent(fileData, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings json: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyJSONSettings(settings *model.Settings, fileData jsonSettings) {
	if fileData.IntervalMinutes != nil {
		settings.IntervalMinutes = *fileData.IntervalMinutes
	}
	if fileData.QuietEnabled != nil {
		settings.QuietEnabled = *fileData.QuietEnabled
	}
	if fileData.QuietStart != nil {
		settings.QuietStart = *fileData.QuietStart
	}
	if fileData.QuietEnd != nil {
		settings.QuietEnd = *fileData.QuietEnd
	}
	if fileData.Theme != nil {
		settings.Theme = model.Theme(*fileData.Theme)
	}
	if fileData.CustomMessage != nil {
		settings.CustomMessage = *fileData.CustomMessage
	}
	if fileData.PopupTimeoutSeconds != nil {
		settings.PopupTimeoutSeconds = *fileData.PopupTimeoutSeconds
	}
	if fileData.PopupPersistent != nil {
		settings.PopupPersistent = *fileData.PopupPersistent
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
}
