// Package commands implements the scopepad CLI command groups.
package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/scopepad/internal/core/config"
	"github.com/colonyops/scopepad/internal/core/eventbus"
	"github.com/colonyops/scopepad/internal/services"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Services is the application service registry
	Services *services.Services

	// Bus is the running event bus; forms publish lifecycle events on it
	Bus *eventbus.EventBus
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "scopepad", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "scopepad")
}

// DefaultLogFile returns the default log file path using the system's state
// directory. On macOS: ~/Library/Logs/scopepad/scopepad.log. On Linux:
// $XDG_STATE_HOME/scopepad/scopepad.log (defaults under ~/.local/state).
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "scopepad", "scopepad.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "scopepad", "scopepad.log")
	}

	return filepath.Join(home, ".local", "state", "scopepad", "scopepad.log")
}
