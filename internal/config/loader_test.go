package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader("/path/to/config.json")
	assert.NotNil(t, loader)
	assert.Equal(t, "/path/to/config.json", loader.GetConfigPath())
}

func TestLoaderLoad(t *testing.T) {
	t.Run("load default config when file doesn't exist", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "nonexistent.json")

		cfg, err := NewLoader(configPath).Load()

		require.NoError(t, err)
		assert.Equal(t, "$ ", cfg.Shell.Prompt)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.True(t, cfg.Logging.Pretty)
	})

	t.Run("load config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.json")

		testConfig := `{
			"shell": {
				"start_dir": "/srv/work",
				"prompt": "> "
			},
			"logging": {
				"level": "debug",
				"pretty": false
			}
		}`
		require.NoError(t, os.WriteFile(configPath, []byte(testConfig), 0644))

		cfg, err := NewLoader(configPath).Load()

		require.NoError(t, err)
		assert.Equal(t, "/srv/work", cfg.Shell.StartDir)
		assert.Equal(t, "> ", cfg.Shell.Prompt)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.False(t, cfg.Logging.Pretty)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("MINISHELL_LOGGING_LEVEL", "error")
		t.Setenv("MINISHELL_SHELL_HOME_DIR", "/home/override")

		cfg, err := NewLoader(filepath.Join(t.TempDir(), "none.json")).Load()

		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, "/home/override", cfg.Shell.HomeDir)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "invalid.json")
		require.NoError(t, os.WriteFile(configPath, []byte("invalid json"), 0644))

		_, err := NewLoader(configPath).Load()
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("unknown log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "chatty"
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing start directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Shell.StartDir = filepath.Join(t.TempDir(), "missing")
		assert.Error(t, cfg.Validate())
	})

	t.Run("start directory is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		cfg := DefaultConfig()
		cfg.Shell.StartDir = file
		assert.Error(t, cfg.Validate())
	})
}

func TestResolveDirs(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.ResolveDirs())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.Shell.StartDir)
	assert.NotEmpty(t, cfg.Shell.HomeDir)

	cfg = DefaultConfig()
	cfg.Shell.StartDir = "/configured"
	cfg.Shell.HomeDir = "/home/configured"
	require.NoError(t, cfg.ResolveDirs())
	assert.Equal(t, "/configured", cfg.Shell.StartDir)
	assert.Equal(t, "/home/configured", cfg.Shell.HomeDir)
}
