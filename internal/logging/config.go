package logging

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level     string `yaml:"level" json:"level" mapstructure:"level"`
	Format    string `yaml:"format" json:"format" mapstructure:"format"`          // text, json or logfmt
	Timestamp bool   `yaml:"timestamp" json:"timestamp" mapstructure:"timestamp"` // whether to include timestamps
	Caller    bool   `yaml:"caller" json:"caller" mapstructure:"caller"`          // whether to report the calling file and line
}

// DefaultConfig returns a default logging configuration.
// The default level keeps ordinary runs silent on stderr.
func DefaultConfig() LoggingConfig {
	return LoggingConfig{
		Level:     "warn",
		Format:    "text",
		Timestamp: false,
		Caller:    false,
	}
}

// DebugConfig returns a configuration suitable for --debug runs
func DebugConfig() LoggingConfig {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.Timestamp = true
	return cfg
}

// Validate validates the logging configuration
func (c LoggingConfig) Validate() error {
	if _, err := log.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Level)
	}
	if _, err := parseFormatter(c.Format); err != nil {
		return err
	}
	return nil
}

func parseFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return 0, fmt.Errorf("invalid log format: %s (must be 'text', 'json' or 'logfmt')", format)
}
