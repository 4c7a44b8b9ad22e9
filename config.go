package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultSettingsFile = ".lml-uploader.yaml"
	defaultSessionFile  = ".lml_session_id"
	defaultBaseURL      = "https://api.lml.live"
)

// Settings represents the optional YAML configuration file. Flags take
// precedence over settings, settings over the in-code defaults.
type Settings struct {
	BaseURL     string `yaml:"base_url"`
	SessionFile string `yaml:"session_file"`
	UserAgent   string `yaml:"user_agent"`
}

func defaultSettings() *Settings {
	return &Settings{
		BaseURL:     defaultBaseURL,
		SessionFile: defaultSessionFile,
		UserAgent:   defaultUserAgent,
	}
}

// loadSettings reads settings from path. A missing file is not an error:
// the defaults apply. Keys absent from the file keep their default values.
func loadSettings(path string) (*Settings, error) {
	settings := defaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	return settings, nil
}
