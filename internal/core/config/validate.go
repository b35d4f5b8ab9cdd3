package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, validTheme),
		criterio.Run("submit_timeout", c.SubmitTimeout, positiveSeconds),
		criterio.Run("event_buffer", c.EventBuffer, positiveBuffer),
		c.validatePinnedTags(),
	)
}

// ValidateDeep runs Validate plus filesystem checks. The configPath argument
// specifies the config file location (empty string skips that check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validTheme(theme string) error {
	switch theme {
	case ThemeDark, ThemeLight, ThemeAuto:
		return nil
	}
	return fmt.Errorf("must be one of dark, light, auto")
}

func positiveSeconds(n int) error {
	if n <= 0 {
		return fmt.Errorf("must be a positive number of seconds")
	}
	return nil
}

func positiveBuffer(n int) error {
	if n <= 0 {
		return fmt.Errorf("must be a positive buffer size")
	}
	return nil
}

func (c *Config) validatePinnedTags() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.PinnedTags {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("pinned_tags[%d]", i), fmt.Errorf("invalid glob pattern %q", pattern))
		}
	}
	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
