package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Keys lists the settable configuration keys in file order.
func Keys() []string {
	return []string{
		"type",
		"output",
		"no_color",
		"logging.level",
		"logging.format",
		"logging.timestamp",
		"logging.caller",
	}
}

// Get returns the value stored under key, formatted for display.
func (c *Config) Get(key string) (string, error) {
	parts := strings.SplitN(strings.ToLower(key), ".", 2)

	switch parts[0] {
	case "type":
		if len(parts) == 1 {
			return c.Type, nil
		}
	case "output":
		if len(parts) == 1 {
			return c.Output, nil
		}
	case "no_color":
		if len(parts) == 1 {
			return strconv.FormatBool(c.NoColor), nil
		}
	case "logging":
		if len(parts) == 2 {
			return c.getLogging(parts[1])
		}
	}
	return "", fmt.Errorf("unknown configuration key: %s", key)
}

func (c *Config) getLogging(key string) (string, error) {
	switch key {
	case "level":
		return c.Logging.Level, nil
	case "format":
		return c.Logging.Format, nil
	case "timestamp":
		return strconv.FormatBool(c.Logging.Timestamp), nil
	case "caller":
		return strconv.FormatBool(c.Logging.Caller), nil
	}
	return "", fmt.Errorf("unknown logging configuration key: %s", key)
}

// Set stores value under key. The result is not validated; call Validate
// before saving.
func (c *Config) Set(key, value string) error {
	parts := strings.SplitN(strings.ToLower(key), ".", 2)

	switch parts[0] {
	case "type":
		if len(parts) == 1 {
			c.Type = strings.ToLower(value)
			return nil
		}
	case "output":
		if len(parts) == 1 {
			c.Output = strings.ToLower(value)
			return nil
		}
	case "no_color":
		if len(parts) == 1 {
			return setBool(&c.NoColor, key, value)
		}
	case "logging":
		if len(parts) == 2 {
			return c.setLogging(parts[1], value)
		}
	}
	return fmt.Errorf("unknown configuration key: %s", key)
}

func (c *Config) setLogging(key, value string) error {
	switch key {
	case "level":
		c.Logging.Level = strings.ToLower(value)
	case "format":
		c.Logging.Format = strings.ToLower(value)
	case "timestamp":
		return setBool(&c.Logging.Timestamp, "logging."+key, value)
	case "caller":
		return setBool(&c.Logging.Caller, "logging."+key, value)
	default:
		return fmt.Errorf("unknown logging configuration key: %s", key)
	}
	return nil
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q is not a boolean", key, value)
	}
	*dst = b
	return nil
}
