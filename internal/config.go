package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// DefaultConfigFile is read from the working directory when no path is given
const DefaultConfigFile = "pulse.toml"

// Config is the pulse.toml configuration
type Config struct {
	Interpreter InterpreterConfig `toml:"interpreter"`
	Repl        ReplConfig        `toml:"repl"`
	Log         LogConfig         `toml:"log"`
}

// InterpreterConfig limits the evaluator
type InterpreterConfig struct {
	MaxCallDepth int `toml:"max_call_depth"`
}

// ReplConfig configures the interactive prompt
type ReplConfig struct {
	Prompt       string `toml:"prompt"`
	Continuation string `toml:"continuation"`
	HistoryFile  string `toml:"history_file"`
}

// LogConfig configures logrus and terminal colors
type LogConfig struct {
	Level string `toml:"level"`
	Color bool   `toml:"color"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	return Config{
		Interpreter: InterpreterConfig{
			MaxCallDepth: 1000,
		},
		Repl: ReplConfig{
			Prompt:       "pulse> ",
			Continuation: "... ",
			HistoryFile:  ".pulse_history",
		},
		Log: LogConfig{
			Level: "warn",
			Color: true,
		},
	}
}

// ParseConfig decodes toml data over the defaults and validates the result
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse error: %w", err)
	}
	return cfg, cfg.validate()
}

// LoadConfig reads the file at path. An empty path means DefaultConfigFile,
// which is optional; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg, err := ParseConfig(string(data))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Interpreter.MaxCallDepth <= 0 {
		return fmt.Errorf("interpreter.max_call_depth must be positive, got %d", c.Interpreter.MaxCallDepth)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log.level, falling back to warn
func (c Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
