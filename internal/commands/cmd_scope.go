package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/internal/services"
	"github.com/colonyops/scopepad/pkg/iojson"
)

// ScopeCmd implements the scopepad scope command group.
type ScopeCmd struct {
	flags *Flags

	// add flags
	addName        string
	addType        string
	addDescription string
	addIcon        string
	addColor       string
	addPinned      bool

	// list flags
	listType     string
	listArchived bool

	// delete flags
	deleteYes bool
}

// NewScopeCmd creates a new scope command.
func NewScopeCmd(flags *Flags) *ScopeCmd {
	return &ScopeCmd{flags: flags}
}

func (cmd *ScopeCmd) scopes() *services.ScopeService {
	return cmd.flags.Services.Scopes
}

// Register adds the scope command to the application.
func (cmd *ScopeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "scope",
		Usage: "Manage scopes",
		Description: `Scope commands for managing the typed containers items live in.

Ten system scopes (one per built-in type) are seeded on first run and
cannot be deleted. User scopes can carry any type.

Examples:
  scopepad scope list                      # list active scopes
  scopepad scope add --name "Reading" --type bookmark
  scopepad scope archive <id>              # stop accepting new items
  scopepad scope delete <id>               # soft delete a user scope`,
		Commands: []*cli.Command{
			cmd.listCmd(),
			cmd.addCmd(),
			cmd.archiveCmd(),
			cmd.deleteCmd(),
		},
	})

	return app
}

func (cmd *ScopeCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List scopes",
		UsageText: "scopepad scope list [--type <type>] [--archived]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "filter by scope type",
				Destination: &cmd.listType,
			},
			&cli.BoolFlag{
				Name:        "archived",
				Usage:       "include archived scopes",
				Destination: &cmd.listArchived,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *ScopeCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Create a scope",
		UsageText: "scopepad scope add --name <name> [--type <type>] [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "scope name (must be unique among active scopes)",
				Required:    true,
				Destination: &cmd.addName,
			},
			&cli.StringFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "scope type (todo, note, brainstorm, checklist, milestone, resource, bookmark, event, timeblock, flow, or custom)",
				Value:       string(scope.TypeTodo),
				Destination: &cmd.addType,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "optional description",
				Destination: &cmd.addDescription,
			},
			&cli.StringFlag{
				Name:        "icon",
				Usage:       "optional icon",
				Destination: &cmd.addIcon,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "optional #rrggbb color",
				Destination: &cmd.addColor,
			},
			&cli.BoolFlag{
				Name:        "pinned",
				Usage:       "pin the scope to the top of listings",
				Destination: &cmd.addPinned,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *ScopeCmd) archiveCmd() *cli.Command {
	return &cli.Command{
		Name:      "archive",
		Usage:     "Archive a scope",
		UsageText: "scopepad scope archive <id-or-name>",
		Action:    cmd.runArchive,
	}
}

func (cmd *ScopeCmd) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Soft-delete a user scope",
		UsageText: "scopepad scope delete <id-or-name> [--yes]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.deleteYes,
			},
		},
		Action: cmd.runDelete,
	}
}

func (cmd *ScopeCmd) runList(ctx context.Context, c *cli.Command) error {
	filter := scope.ScopeFilter{
		Type:            scope.Type(cmd.listType),
		IncludeArchived: cmd.listArchived,
	}

	scopes, err := cmd.scopes().ListScopes(ctx, filter).Unwrap()
	if err != nil {
		return fmt.Errorf("list scopes: %w", err)
	}

	for _, sc := range scopes {
		if err := iojson.WriteLine(c.Root().Writer, sc); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *ScopeCmd) runAdd(ctx context.Context, c *cli.Command) error {
	sc := scope.Scope{
		Name:        cmd.addName,
		Type:        scope.Type(cmd.addType),
		Description: cmd.addDescription,
		Icon:        cmd.addIcon,
		Color:       cmd.addColor,
		Pinned:      cmd.addPinned,
	}

	created, err := cmd.scopes().CreateScope(ctx, sc).Unwrap()
	if err != nil {
		return fmt.Errorf("create scope: %w", err)
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, created)
}

func (cmd *ScopeCmd) runArchive(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: scopepad scope archive <id-or-name>")
	}

	sc, err := cmd.scopes().FindScope(ctx, c.Args().Get(0)).Unwrap()
	if err != nil {
		return err
	}

	if _, err := cmd.scopes().ArchiveScope(ctx, sc.ID).Unwrap(); err != nil {
		return fmt.Errorf("archive scope: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "archived %q\n", sc.Name)
	return nil
}

func (cmd *ScopeCmd) runDelete(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: scopepad scope delete <id-or-name>")
	}

	sc, err := cmd.scopes().FindScope(ctx, c.Args().Get(0)).Unwrap()
	if err != nil {
		return err
	}

	if !cmd.deleteYes {
		confirmed := false
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete scope %q?", sc.Name)).
				Description("Items in the scope are kept but hidden from listings.").
				Value(&confirmed),
		)).Run()
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	if _, err := cmd.scopes().DeleteScope(ctx, sc.ID).Unwrap(); err != nil {
		return fmt.Errorf("delete scope: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "deleted %q\n", sc.Name)
	return nil
}
