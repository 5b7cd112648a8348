package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetConfigDir returns the OS-standard configuration directory.
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// SettingsPath returns the settings file location beside the running
// executable, or inside the user config directory when the executable
// cannot be located.
func SettingsPath(appName, fileName string) (string, error) {
	executable, err := os.Executable()
	if err == nil {
		if resolved, resolveErr := filepath.EvalSymlinks(executable); resolveErr == nil {
			executable = resolved
		}
		return filepath.Join(filepath.Dir(executable), fileName), nil
	}

	configDir, configErr := GetConfigDir()
	if configErr != nil {
		return "", fmt.Errorf("resolve settings path: %w", configErr)
	}
	return filepath.Join(configDir, appName, fileName), nil
}
