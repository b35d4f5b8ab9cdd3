package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/scopepad/internal/commands"
	"github.com/colonyops/scopepad/internal/core/config"
	"github.com/colonyops/scopepad/internal/core/eventbus"
	"github.com/colonyops/scopepad/internal/core/logging"
	"github.com/colonyops/scopepad/internal/data/db"
	"github.com/colonyops/scopepad/internal/data/stores"
	"github.com/colonyops/scopepad/internal/services"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		database  *db.DB
		busCancel context.CancelFunc
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "scopepad",
		Usage:     "Typed scopes and items from the terminal",
		UsageText: "scopepad [global options] command [command options]",
		Description: `Scopepad keeps typed scopes (todos, notes, bookmarks, checklists, and
more) in a local store. Each scope's type decides which fields its items
require, so a bookmark form asks for a URL while a note form asks for
content.

Run 'scopepad' with no arguments to open the interactive item editor.
Run 'scopepad init' to generate a starter config.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("SCOPEPAD_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/scopepad.log)",
				Sources:     cli.EnvVars("SCOPEPAD_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("SCOPEPAD_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("SCOPEPAD_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/scopepad.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "scopepad.log")
			}

			logger, closer, err := logging.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return ctx, fmt.Errorf("create data dir: %w", err)
			}

			database, err = db.Open(cfg.DataDir, db.DefaultOpenOptions())
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}

			bus := eventbus.New(cfg.EventBuffer)
			busCtx, cancel := context.WithCancel(context.Background())
			busCancel = cancel
			go bus.Run(busCtx)
			eventbus.RegisterDebugLogger(bus, log.With().Str("cmp", "eventbus").Logger())
			flags.Bus = bus

			svcs := services.New(
				stores.NewItemStore(database),
				stores.NewScopeStore(database),
				bus,
				log.With().Str("cmp", "services").Logger(),
			)
			flags.Services = svcs

			if err := svcs.Scopes.Seed(ctx); err != nil {
				return ctx, fmt.Errorf("seed system scopes: %w", err)
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if busCancel != nil {
				busCancel()
			}

			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = commands.NewScopeCmd(flags).Register(app)
	app = commands.NewItemCmd(flags).Register(app)
	app = commands.NewInitCmd(flags).Register(app)
	app = tuiCmd.Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Open the editor when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'scopepad --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
