package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

//go:embed config.example.yaml
var embeddedConfigSample string

// EnvPrefix is the prefix of every environment variable read by the loader.
const EnvPrefix = "TALLY"

// ErrConfigExists is returned by WriteSample when the target already exists.
var ErrConfigExists = errors.New("config file already exists")

// Loader handles configuration loading and saving
type Loader struct {
	v *viper.Viper

	// Config file paths in priority order
	searchPaths []string
	used        string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, NewDefaultConfig())

	return &Loader{
		v:           v,
		searchPaths: getDefaultSearchPaths(),
	}
}

// BindFlag lets a command-line flag override key when the flag is set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for %s", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load loads configuration from file, environment variables and bound flags.
// An explicit path must exist; otherwise a missing file is not an error.
func (l *Loader) Load(explicitPath string) (*Config, error) {
	configPath := explicitPath
	if configPath == "" {
		for _, path := range l.searchPaths {
			if fileExists(path) {
				configPath = path
				break
			}
		}
	}

	if configPath != "" {
		l.v.SetConfigFile(configPath)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		l.used = configPath
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFile reads path on top of the defaults, ignoring the environment and
// bound flags. A missing file yields the defaults.
func (l *Loader) LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewDefaultConfig())

	if fileExists(path) {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// ConfigFileUsed returns the file read by the last Load, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.used
}

// Save saves configuration to file
func (l *Loader) Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WriteSample writes the annotated sample configuration to path.
func (l *Loader) WriteSample(path string, force bool) error {
	if fileExists(path) && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(embeddedConfigSample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path where config would be loaded from
func (l *Loader) GetConfigPath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	for _, path := range l.searchPaths {
		if fileExists(path) {
			return path
		}
	}

	return DefaultConfigPath()
}

// DefaultConfigPath returns the per-user config location.
func DefaultConfigPath() string {
	if envPath := os.Getenv("TALLY_CONFIG_PATH"); envPath != "" {
		return envPath
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "tally", "config.yaml")
}

// Sample returns the annotated sample configuration.
func Sample() string {
	return embeddedConfigSample
}

// getDefaultSearchPaths returns the default configuration search paths
func getDefaultSearchPaths() []string {
	paths := []string{}

	if envPath := os.Getenv("TALLY_CONFIG_PATH"); envPath != "" {
		paths = append(paths, envPath)
	}

	// Current directory - prioritized over the user config
	paths = append(paths, "tally.yaml")

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", "tally", "config.yaml"))
	}

	return paths
}

// setDefaults registers every key so environment variables are picked up by Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("type", cfg.Type)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("no_color", cfg.NoColor)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.timestamp", cfg.Logging.Timestamp)
	v.SetDefault("logging.caller", cfg.Logging.Caller)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
