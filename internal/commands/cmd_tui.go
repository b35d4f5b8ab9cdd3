package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/scopepad/internal/core/itemform"
	"github.com/colonyops/scopepad/internal/core/styles"
	"github.com/colonyops/scopepad/internal/tui"
)

// TuiCmd opens the interactive item editor. It backs the default action
// (create mode) and the edit command.
type TuiCmd struct {
	flags *Flags

	tuiScope string
}

// NewTuiCmd creates a new TUI command.
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI flags, registered on the root command.
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "scope",
			Aliases:     []string{"s"},
			Usage:       "scope ID or name to add the item to",
			Destination: &cmd.tuiScope,
		},
	}
}

// Register adds the edit command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit an item interactively",
		UsageText: "scopepad edit <item-id>",
		Action:    cmd.runEdit,
	})

	return app
}

// Run opens a create-mode editor in the chosen scope. Used as the default
// action when no subcommand is given.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	ref := cmd.tuiScope
	if ref == "" {
		ref = cmd.flags.Config.DefaultScope
	}
	if ref == "" {
		ref = "Todos"
	}

	sc, err := cmd.flags.Services.Scopes.FindScope(ctx, ref).Unwrap()
	if err != nil {
		return err
	}

	f := itemform.New(cmd.flags.Services.Items, cmd.flags.Bus, sc, nil)
	f.SetSubmitTimeout(cmd.flags.Config.SubmitTimeoutDuration())

	return cmd.runEditor(fmt.Sprintf("New item in %s", sc.Name), f)
}

func (cmd *TuiCmd) runEdit(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: scopepad edit <item-id>")
	}

	item, err := cmd.flags.Services.Items.GetItem(ctx, c.Args().Get(0)).Unwrap()
	if err != nil {
		return err
	}
	if item.Deleted() {
		return fmt.Errorf("item %q has been deleted", item.ID)
	}

	sc, err := cmd.flags.Services.Scopes.GetScope(ctx, item.ScopeID).Unwrap()
	if err != nil {
		return err
	}

	f := itemform.New(cmd.flags.Services.Items, cmd.flags.Bus, sc, &item)
	f.SetSubmitTimeout(cmd.flags.Config.SubmitTimeoutDuration())

	return cmd.runEditor(fmt.Sprintf("Edit %s", item.Title), f)
}

func (cmd *TuiCmd) runEditor(title string, f *itemform.Form) error {
	styles.Apply(cmd.flags.Config.Theme)

	model, err := tea.NewProgram(tui.New(title, f), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	if m, ok := model.(tui.Model); ok && m.Saved() {
		fmt.Println("saved")
	}
	return nil
}
