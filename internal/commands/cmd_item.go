package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/scopepad/internal/core/form"
	"github.com/colonyops/scopepad/internal/core/itemform"
	"github.com/colonyops/scopepad/internal/core/scope"
	"github.com/colonyops/scopepad/internal/core/validate"
	"github.com/colonyops/scopepad/internal/services"
	"github.com/colonyops/scopepad/pkg/iojson"
)

// ItemCmd implements the scopepad item command group.
type ItemCmd struct {
	flags *Flags

	// add flags
	addScope    string
	addTitle    string
	addContent  string
	addURL      string
	addPriority string
	addTags     []string
	addJSON     bool
	addReader   iojson.FileReader[scope.Item]

	// list flags
	listScope   string
	listStatus  string
	listTag     string
	listDeleted bool
}

// NewItemCmd creates a new item command.
func NewItemCmd(flags *Flags) *ItemCmd {
	return &ItemCmd{flags: flags}
}

func (cmd *ItemCmd) items() *services.ItemService {
	return cmd.flags.Services.Items
}

func (cmd *ItemCmd) scopes() *services.ScopeService {
	return cmd.flags.Services.Scopes
}

// Register adds the item command to the application.
func (cmd *ItemCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "item",
		Usage: "Manage scope items",
		Description: `Item commands for the records inside scopes.

Which fields an item requires is decided by its scope's type: notes need
content, bookmarks need a URL, checklists need at least one entry.

Examples:
  scopepad item add --scope Todos --title "Buy milk"
  scopepad item add --scope Bookmarks --json < payload.json
  scopepad item list --tag 'work/**'
  scopepad item view <id>
  scopepad item done <id>`,
		Commands: []*cli.Command{
			cmd.addCmd(),
			cmd.listCmd(),
			cmd.viewCmd(),
			cmd.doneCmd(),
			cmd.deleteCmd(),
		},
	})

	return app
}

func (cmd *ItemCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Create an item",
		UsageText: "scopepad item add --scope <scope> [--title <title>] [options] [--json]",
		Description: `Creates an item in a scope. Field flags feed the same form engine
the TUI uses, so validation messages match.

With --json the payload is read from --file or piped stdin instead.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "scope",
				Aliases:     []string{"s"},
				Usage:       "scope ID or name",
				Required:    true,
				Destination: &cmd.addScope,
			},
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "item title",
				Destination: &cmd.addTitle,
			},
			&cli.StringFlag{
				Name:        "content",
				Aliases:     []string{"c"},
				Usage:       "item content (notes and brainstorms)",
				Destination: &cmd.addContent,
			},
			&cli.StringFlag{
				Name:        "url",
				Aliases:     []string{"u"},
				Usage:       "item URL (bookmarks and resources)",
				Destination: &cmd.addURL,
			},
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "priority (low, medium, high, critical, urgent)",
				Destination: &cmd.addPriority,
			},
			&cli.StringSliceFlag{
				Name:        "tag",
				Usage:       "tag to attach (repeatable)",
				Destination: &cmd.addTags,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "read the item as JSON from --file or stdin",
				Destination: &cmd.addJSON,
			},
			cmd.addReader.Flag(),
		},
		Action: cmd.runAdd,
	}
}

func (cmd *ItemCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List items",
		UsageText: "scopepad item list [--scope <scope>] [--status <status>] [--tag <glob>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "scope",
				Aliases:     []string{"s"},
				Usage:       "filter by scope ID or name",
				Destination: &cmd.listScope,
			},
			&cli.StringFlag{
				Name:        "status",
				Usage:       "filter by status (not_started, in_progress, blocked, review, done)",
				Destination: &cmd.listStatus,
			},
			&cli.StringFlag{
				Name:        "tag",
				Usage:       "filter by tag, exact or doublestar glob like 'work/**'",
				Destination: &cmd.listTag,
			},
			&cli.BoolFlag{
				Name:        "deleted",
				Usage:       "include soft-deleted items",
				Destination: &cmd.listDeleted,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *ItemCmd) viewCmd() *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "Render an item as markdown",
		UsageText: "scopepad item view <id>",
		Action:    cmd.runView,
	}
}

func (cmd *ItemCmd) doneCmd() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Mark an item done",
		UsageText: "scopepad item done <id>",
		Action:    cmd.runDone,
	}
}

func (cmd *ItemCmd) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Soft-delete an item",
		UsageText: "scopepad item delete <id>",
		Action:    cmd.runDelete,
	}
}

func (cmd *ItemCmd) runAdd(ctx context.Context, c *cli.Command) error {
	sc, err := cmd.scopes().FindScope(ctx, cmd.addScope).Unwrap()
	if err != nil {
		return err
	}

	if cmd.addJSON {
		item, err := cmd.addReader.Read()
		if err != nil {
			return err
		}
		item.ScopeID = sc.ID
		return iojson.WriteResult(cmd.items().CreateItem(ctx, item))
	}

	if err := validate.ItemPriority(cmd.addPriority); err != nil {
		return err
	}

	// Flag input runs through the same form the TUI hosts, so required
	// fields and messages stay consistent.
	f := itemform.New(cmd.items(), cmd.flags.Bus, sc, nil)
	f.SetSubmitTimeout(cmd.flags.Config.SubmitTimeoutDuration())
	f.SetTitle(cmd.addTitle)
	f.SetContent(cmd.addContent)
	f.SetURL(cmd.addURL)
	f.SetPriority(scope.Priority(cmd.addPriority))
	f.SetTags(cmd.addTags)

	if err := f.Submit(ctx); err != nil {
		return formFailure(f)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "created")
	return nil
}

// formFailure flattens the form's error map into a single CLI error.
func formFailure(f *itemform.Form) error {
	var parts []string
	for field, msg := range f.Errors() {
		if field == form.GeneralField {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

func (cmd *ItemCmd) runList(ctx context.Context, c *cli.Command) error {
	filter := scope.ItemFilter{
		Status:         scope.Status(cmd.listStatus),
		Tag:            cmd.listTag,
		IncludeDeleted: cmd.listDeleted,
	}

	if err := validate.ItemStatus(cmd.listStatus); err != nil {
		return err
	}

	if cmd.listScope != "" {
		sc, err := cmd.scopes().FindScope(ctx, cmd.listScope).Unwrap()
		if err != nil {
			return err
		}
		filter.ScopeID = sc.ID
	}

	items, err := cmd.items().ListItems(ctx, filter).Unwrap()
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	for _, item := range items {
		if err := iojson.WriteLine(c.Root().Writer, item); err != nil {
			return err
		}
	}

	return nil
}

func (cmd *ItemCmd) runView(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: scopepad item view <id>")
	}

	item, err := cmd.items().GetItem(ctx, c.Args().Get(0)).Unwrap()
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render(itemMarkdown(item))
	if err != nil {
		return fmt.Errorf("render item: %w", err)
	}

	_, _ = fmt.Fprint(c.Root().Writer, out)
	return nil
}

// itemMarkdown renders an item as a small markdown document.
func itemMarkdown(item scope.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", item.Title)
	fmt.Fprintf(&b, "- **Status**: %s\n", item.Status)
	if item.Priority != "" {
		fmt.Fprintf(&b, "- **Priority**: %s\n", item.Priority)
	}
	if item.DueAt != nil {
		fmt.Fprintf(&b, "- **Due**: %s\n", item.DueAt.Format(time.DateOnly))
	}
	if len(item.Tags) > 0 {
		fmt.Fprintf(&b, "- **Tags**: %s\n", strings.Join(item.Tags, ", "))
	}
	if url := scope.MetadataURL(item.Metadata); url != "" {
		fmt.Fprintf(&b, "- **URL**: <%s>\n", url)
	}

	if item.Notes != "" {
		fmt.Fprintf(&b, "\n%s\n", item.Notes)
	} else if content := scope.MetadataContent(item.Metadata); content != "" {
		fmt.Fprintf(&b, "\n%s\n", content)
	}

	if len(item.Checklist) > 0 {
		b.WriteString("\n")
		for _, entry := range item.Checklist {
			mark := " "
			if entry.Completed {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, entry.Text)
		}
	}

	return b.String()
}

func (cmd *ItemCmd) runDone(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: scopepad item done <id>")
	}

	item, err := cmd.items().CompleteItem(ctx, c.Args().Get(0)).Unwrap()
	if err != nil {
		return fmt.Errorf("complete item: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "done %q\n", item.Title)
	return nil
}

func (cmd *ItemCmd) runDelete(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: scopepad item delete <id>")
	}

	item, err := cmd.items().DeleteItem(ctx, c.Args().Get(0)).Unwrap()
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "deleted %q\n", item.Title)
	return nil
}
