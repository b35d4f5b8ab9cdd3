package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"), "/tmp/data")
		require.NoError(t, err)
		assert.Equal(t, ThemeAuto, cfg.Theme)
		assert.Equal(t, 30, cfg.SubmitTimeout)
		assert.Equal(t, 64, cfg.EventBuffer)
		assert.Equal(t, "/tmp/data", cfg.DataDir)
	})

	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := Load("", "/tmp/data")
		require.NoError(t, err)
		assert.Equal(t, ThemeAuto, cfg.Theme)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
theme: dark
submit_timeout: 10
pinned_tags:
  - work/**
  - home
default_scope: Todos
`), 0o644))

		cfg, err := Load(path, "/tmp/data")
		require.NoError(t, err)
		assert.Equal(t, ThemeDark, cfg.Theme)
		assert.Equal(t, 10, cfg.SubmitTimeout)
		assert.Equal(t, []string{"work/**", "home"}, cfg.PinnedTags)
		assert.Equal(t, "Todos", cfg.DefaultScope)
		assert.Equal(t, 64, cfg.EventBuffer, "unset values keep defaults")
	})

	t.Run("data dir is not read from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0o644))

		cfg, err := Load(path, "/explicit/data")
		require.NoError(t, err)
		assert.Equal(t, "/explicit/data", cfg.DataDir)
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))

		_, err := Load(path, "/tmp/data")
		assert.Error(t, err)
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o644))

		_, err := Load(path, "/tmp/data")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "theme")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"bad theme", func(c *Config) { c.Theme = "neon" }, "theme"},
		{"zero timeout", func(c *Config) { c.SubmitTimeout = 0 }, "submit_timeout"},
		{"negative timeout", func(c *Config) { c.SubmitTimeout = -5 }, "submit_timeout"},
		{"zero buffer", func(c *Config) { c.EventBuffer = 0 }, "event_buffer"},
		{"bad pinned tag glob", func(c *Config) { c.PinnedTags = []string{"work/["} }, "pinned_tags[0]"},
		{"valid pinned tag globs", func(c *Config) { c.PinnedTags = []string{"work/**", "home"} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateDeep(t *testing.T) {
	t.Run("data dir may not exist yet", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = filepath.Join(t.TempDir(), "not-created-yet")
		assert.NoError(t, cfg.ValidateDeep(""))
	})

	t.Run("data dir as file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		cfg := DefaultConfig()
		cfg.DataDir = path
		err := cfg.ValidateDeep("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data_dir")
	})

	t.Run("config path as directory fails", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ValidateDeep(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config_file")
	})
}

func TestSubmitTimeoutDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SubmitTimeout = 10
	assert.Equal(t, 10*time.Second, cfg.SubmitTimeoutDuration())
}
