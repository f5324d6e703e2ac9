package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigPath names the settings file when --config is not given.
const EnvConfigPath = "DAYCOUNTER_CONFIG"

// Settings are the runtime options of the command line tool. Values come
// from an optional YAML settings file, overridden by environment variables.
type Settings struct {
	Format     string `yaml:"format" env:"DAYCOUNTER_FORMAT" env-default:"console" env-description:"output format (console, json, csv, yaml)"`
	StrictDays bool   `yaml:"strict_days" env:"DAYCOUNTER_STRICT_DAYS" env-default:"false" env-description:"reject days past the end of their month instead of rolling over"`
	LogLevel   string `yaml:"log_level" env:"DAYCOUNTER_LOG_LEVEL" env-default:"warn" env-description:"log level (debug, info, warn, error)"`
}

// LoadSettings reads settings from path, or from the file named by
// DAYCOUNTER_CONFIG, or from the environment alone when neither is set.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	var s Settings
	if path == "" {
		if err := cleanenv.ReadEnv(&s); err != nil {
			return nil, fmt.Errorf("cannot read settings from environment: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("settings file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &s); err != nil {
			return nil, fmt.Errorf("cannot read settings %s: %w", path, err)
		}
	}

	if _, err := s.Level(); err != nil {
		return nil, err
	}
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	return &s, nil
}

// Level parses LogLevel.
func (s *Settings) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return lvl, nil
}

// SettingsHelp describes every environment variable Settings reads.
func SettingsHelp() (string, error) {
	header := "Environment variables:"
	return cleanenv.GetDescription(&Settings{}, &header)
}
