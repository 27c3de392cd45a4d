package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Config represents the minishell configuration
type Config struct {
	Shell   ShellConfig   `json:"shell" mapstructure:"shell"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ShellConfig controls the session the shell starts with.
type ShellConfig struct {
	StartDir string `json:"start_dir" mapstructure:"start_dir"` // defaults to the process working directory
	HomeDir  string `json:"home_dir" mapstructure:"home_dir"`   // target of a bare cd
	Prompt   string `json:"prompt" mapstructure:"prompt"`       // shown on terminals only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	File   string `json:"file" mapstructure:"file"`
	Pretty bool   `json:"pretty" mapstructure:"pretty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt: "$ ",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Pretty: true,
		},
	}
}

// ResolveDirs fills StartDir and HomeDir from the process environment when
// they were not configured.
func (c *Config) ResolveDirs() error {
	if c.Shell.StartDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		c.Shell.StartDir = wd
	}

	if c.Shell.HomeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		c.Shell.HomeDir = home
	}

	return nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("invalid log level %q", c.Logging.Level)
		}
	}

	if c.Shell.StartDir != "" {
		info, err := os.Stat(c.Shell.StartDir)
		if err != nil {
			return fmt.Errorf("start directory %s: %w", c.Shell.StartDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("start directory %s is not a directory", c.Shell.StartDir)
		}
	}

	return nil
}
