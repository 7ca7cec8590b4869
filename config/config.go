// Package config defines the runtime's configuration surface: exactly the
// two recognized options of spec.md §6, plus a YAML file loader as an
// alternative way to produce one.
package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the single configuration record recognized by the platform.
type Config struct {
	// LogLevel is the minimum severity emitted by the engine's log events.
	LogLevel logrus.Level
	// InTest, when true, sends log output to stdout with colours disabled
	// instead of stderr (see logging.NewLogrus).
	InTest bool
}

// Default returns the configuration used by platform() with no explicit
// config supplied: info-level logging, not in test mode.
func Default() Config {
	return Config{LogLevel: logrus.InfoLevel, InTest: false}
}

// fileConfig mirrors Config's fields using the on-disk string form of
// LogLevel, since logrus.Level has no native YAML (un)marshalling.
type fileConfig struct {
	LogLevel string `yaml:"log_level"`
	InTest   bool   `yaml:"in_test"`
}

// LoadFile reads a YAML configuration file. Only the two recognized
// options are read; anything else in the file is ignored. This is an
// additional configuration *source*, not an additional option — CLI/flag
// parsing remains out of scope.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, err
	}

	level := logrus.InfoLevel
	if fc.LogLevel != "" {
		parsed, err := logrus.ParseLevel(fc.LogLevel)
		if err != nil {
			return Config{}, err
		}
		level = parsed
	}

	return Config{LogLevel: level, InTest: fc.InTest}, nil
}
