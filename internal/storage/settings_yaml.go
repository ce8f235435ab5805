package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"phasetimer/internal/core/model"
	"phasetimer/internal/present"
	"phasetimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes  *float64 `yaml:"work_minutes"`
	BreakMinutes *float64 `yaml:"break_minutes"`
	View         string   `yaml:"view"`
	ChimeEnabled *bool    `yaml:"chime_enabled"`
	ChimeVolume  *float64 `yaml:"chime_volume"`
	LogLevel     string   `yaml:"log_level"`
}

// LoadSettings reads startup options from the YAML file at configPath.
// If the file does not exist, default settings are returned.
// The file is never written back.
func LoadSettings(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// ResolveConfigPath returns the default location of the settings file.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes != nil {
		settings.WorkMinutes = model.ClampMinutes(*fileData.WorkMinutes, settings.WorkMinutes)
	}
	if fileData.BreakMinutes != nil {
		settings.BreakMinutes = model.ClampMinutes(*fileData.BreakMinutes, settings.BreakMinutes)
	}
	if fileData.View != "" {
		settings.View = present.ResolveView(fileData.View).ID
	}
	if fileData.ChimeEnabled != nil {
		settings.ChimeEnabled = *fileData.ChimeEnabled
	}
	if fileData.ChimeVolume != nil && *fileData.ChimeVolume >= -10 && *fileData.ChimeVolume <= 2 {
		settings.ChimeVolume = *fileData.ChimeVolume
	}
	if level := strings.TrimSpace(fileData.LogLevel); level != "" {
		settings.LogLevel = strings.ToLower(level)
	}
}
