package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points HOME and the config path variable at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TALLY_CONFIG_PATH", "")
	for _, key := range []string{"TALLY_TYPE", "TALLY_OUTPUT", "TALLY_NO_COLOR", "TALLY_LOGGING_LEVEL", "TALLY_LOGGING_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewLoader(t *testing.T) {
	isolate(t)
	loader := NewLoader()
	require.NotNil(t, loader)
	assert.NotEmpty(t, loader.searchPaths)
}

func TestGetDefaultSearchPaths(t *testing.T) {
	home := isolate(t)

	t.Run("without env var", func(t *testing.T) {
		paths := getDefaultSearchPaths()
		assert.Equal(t, []string{
			"tally.yaml",
			filepath.Join(home, ".config", "tally", "config.yaml"),
		}, paths)
	})

	t.Run("with env var", func(t *testing.T) {
		t.Setenv("TALLY_CONFIG_PATH", "/custom/config.yaml")
		paths := getDefaultSearchPaths()
		require.NotEmpty(t, paths)
		assert.Equal(t, "/custom/config.yaml", paths[0])
	})
}

func TestLoaderLoad(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		isolate(t)
		loader := NewLoader()

		cfg, err := loader.Load("")
		require.NoError(t, err)
		assert.Equal(t, NewDefaultConfig(), cfg)
		assert.Empty(t, loader.ConfigFileUsed())
	})

	t.Run("explicit path", func(t *testing.T) {
		home := isolate(t)
		path := filepath.Join(home, "custom.yaml")
		writeFile(t, path, "type: float\noutput: json\nlogging:\n  level: debug\n")

		loader := NewLoader()
		cfg, err := loader.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "float", cfg.Type)
		assert.Equal(t, "json", cfg.Output)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "text", cfg.Logging.Format)
		assert.Equal(t, path, loader.ConfigFileUsed())
	})

	t.Run("user config file", func(t *testing.T) {
		home := isolate(t)
		writeFile(t, filepath.Join(home, ".config", "tally", "config.yaml"), "type: bool\n")

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, "bool", cfg.Type)
	})

	t.Run("env path", func(t *testing.T) {
		home := isolate(t)
		path := filepath.Join(home, "env.yaml")
		writeFile(t, path, "type: string\n")
		t.Setenv("TALLY_CONFIG_PATH", path)

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, "string", cfg.Type)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		home := isolate(t)
		path := filepath.Join(home, "custom.yaml")
		writeFile(t, path, "type: float\n")
		t.Setenv("TALLY_TYPE", "json")
		t.Setenv("TALLY_LOGGING_LEVEL", "error")
		t.Setenv("TALLY_NO_COLOR", "true")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Type)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.True(t, cfg.NoColor)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("TALLY_TYPE", "json")

		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("type", "", "")
		require.NoError(t, fs.Parse([]string{"--type", "bool"}))

		loader := NewLoader()
		require.NoError(t, loader.BindFlag("type", fs.Lookup("type")))

		cfg, err := loader.Load("")
		require.NoError(t, err)
		assert.Equal(t, "bool", cfg.Type)
	})

	t.Run("unset flag keeps default", func(t *testing.T) {
		isolate(t)

		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("type", "", "")
		require.NoError(t, fs.Parse(nil))

		loader := NewLoader()
		require.NoError(t, loader.BindFlag("type", fs.Lookup("type")))

		cfg, err := loader.Load("")
		require.NoError(t, err)
		assert.Equal(t, "int", cfg.Type)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		home := isolate(t)
		_, err := NewLoader().Load(filepath.Join(home, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		home := isolate(t)
		path := filepath.Join(home, "invalid.yaml")
		writeFile(t, path, "invalid: yaml: content:")

		_, err := NewLoader().Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		home := isolate(t)
		path := filepath.Join(home, "bad.yaml")
		writeFile(t, path, "type: complex\n")

		_, err := NewLoader().Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration validation failed")
	})
}

func TestBindFlag_Nil(t *testing.T) {
	isolate(t)
	assert.Error(t, NewLoader().BindFlag("type", nil))
}

func TestLoaderSave(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "nested", "dir", "config.yaml")

	cfg := NewDefaultConfig()
	cfg.Type = "float"
	require.NoError(t, NewLoader().Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, *cfg, saved)

	loaded, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoaderWriteSample(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".config", "tally", "config.yaml")
	loader := NewLoader()

	require.NoError(t, loader.WriteSample(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Sample(), string(data))

	err = loader.WriteSample(path, false)
	assert.ErrorIs(t, err, ErrConfigExists)

	assert.NoError(t, loader.WriteSample(path, true))

	// The sample must load cleanly and match the defaults.
	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestGetConfigPath(t *testing.T) {
	home := isolate(t)
	loader := NewLoader()

	assert.Equal(t, "/explicit.yaml", loader.GetConfigPath("/explicit.yaml"))
	assert.Equal(t, filepath.Join(home, ".config", "tally", "config.yaml"), loader.GetConfigPath(""))

	t.Setenv("TALLY_CONFIG_PATH", "/from/env.yaml")
	assert.Equal(t, "/from/env.yaml", NewLoader().GetConfigPath(""))
}

func TestLoaderLoadFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "tally.yaml")

	cfg, err := NewLoader().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)

	writeFile(t, path, "type: string\n")
	t.Setenv("TALLY_OUTPUT", "json")

	cfg, err = NewLoader().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "string", cfg.Type)
	assert.Equal(t, "text", cfg.Output, "environment is not applied")

	writeFile(t, path, "invalid: yaml: content:")
	_, err = NewLoader().LoadFile(path)
	assert.Error(t, err)
}
