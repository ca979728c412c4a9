package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/common-creation/tally/internal/logging"
	"github.com/common-creation/tally/internal/sum"
)

// Config represents the complete configuration for tally
type Config struct {
	// Operand type used when --type is not given
	Type string `yaml:"type" json:"type" mapstructure:"type"`

	// Result format: text or json
	Output string `yaml:"output" json:"output" mapstructure:"output"`

	// Disable colored diagnostics
	NoColor bool `yaml:"no_color" json:"no_color" mapstructure:"no_color"`

	// Logging configuration
	Logging logging.LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// NewDefaultConfig creates a new configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Type:    sum.KindInt.String(),
		Output:  "text",
		NoColor: false,
		Logging: logging.DefaultConfig(),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := sum.ParseKind(c.Type); err != nil {
		return fmt.Errorf("invalid type: %w", err)
	}

	switch strings.ToLower(c.Output) {
	case "text", "json":
	case "":
		return errors.New("output format is required")
	default:
		return fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", c.Output)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging configuration error: %w", err)
	}

	return nil
}

// Kind returns the operand kind named by Type.
func (c *Config) Kind() (sum.Kind, error) {
	return sum.ParseKind(c.Type)
}

// JSONOutput reports whether results are printed as JSON.
func (c *Config) JSONOutput() bool {
	return strings.EqualFold(c.Output, "json")
}
