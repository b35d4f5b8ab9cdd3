package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/scopepad/internal/core/config"
)

// InitCmd writes a starter config file via an interactive wizard.
type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
}

// NewInitCmd creates a new init command.
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application.
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize scopepad configuration with an interactive wizard",
		UsageText: "scopepad init [--yes] [--force]",
		Description: `Sets up scopepad for first-time use.

The wizard generates a config file with sensible defaults. The ten
system scopes are seeded automatically on the first command that
touches the database.

Use --yes to accept all defaults without prompts.
Use --force to overwrite an existing config file.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()

	if !cmd.yes {
		var pinned string
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("auto (detect terminal)", config.ThemeAuto),
					huh.NewOption("dark", config.ThemeDark),
					huh.NewOption("light", config.ThemeLight),
				).
				Value(&cfg.Theme),
			huh.NewInput().
				Title("Default scope").
				Description("Scope used when none is given (blank for Todos)").
				Value(&cfg.DefaultScope),
			huh.NewInput().
				Title("Pinned tags").
				Description("Comma-separated tag globs surfaced first, e.g. work/**,home").
				Value(&pinned),
		)).Run()
		if err != nil {
			return err
		}

		for _, tag := range strings.Split(pinned, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				cfg.PinnedTags = append(cfg.PinnedTags, tag)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "wrote %s\n", path)
	return nil
}
