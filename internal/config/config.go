package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Probe struct {
		FetchTimeoutSeconds int64 `yaml:"fetch_timeout_seconds"`
		TLSTimeoutSeconds   int64 `yaml:"tls_timeout_seconds"`
	} `yaml:"probe"`
	Alerts struct {
		Enabled          bool   `yaml:"enabled"`
		TelegramBotToken string `yaml:"telegram_bot_token"`
		ChatID           int64  `yaml:"chat_id"`
	} `yaml:"alerts"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if config.Probe.FetchTimeoutSeconds == 0 {
		config.Probe.FetchTimeoutSeconds = 6
	}
	if config.Probe.TLSTimeoutSeconds == 0 {
		config.Probe.TLSTimeoutSeconds = 5
	}

	return config, nil
}
