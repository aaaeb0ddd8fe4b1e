package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/core/task"
	"github.com/hay-kot/todolist/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	match      string
	pending    bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "todolist ls [--json] [--pending] [--match <glob>]",
		Description: `Displays a table of tasks with their position, status, description and due date.

Positions always refer to the full list, so they can be passed to "done" and
"rm" even when filters hide other tasks. --match takes a case-insensitive
glob such as "*milk*".`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "only show tasks whose description matches the glob",
				Destination: &cmd.match,
			},
			&cli.BoolFlag{
				Name:        "pending",
				Aliases:     []string{"p"},
				Usage:       "hide completed tasks",
				Destination: &cmd.pending,
			},
		},
		Action: cmd.run,
	})

	return app
}

// taskInfo is the JSON output format for todolist ls --json.
type taskInfo struct {
	Position    int     `json:"position"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Completed   bool    `json:"completed"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	pattern := strings.ToLower(cmd.match)
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid --match pattern %q", cmd.match)
	}

	var rows []taskInfo
	for i, t := range cmd.flags.Store.Tasks() {
		if cmd.pending && t.Completed {
			continue
		}
		if pattern != "" && !matches(pattern, t) {
			continue
		}
		rows = append(rows, taskInfo{
			Position:    i + 1,
			Description: t.Description,
			DueDate:     t.DueDate,
			Completed:   t.Completed,
		})
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, r := range rows {
			if err := iojson.WriteLine(out, r); err != nil {
				_ = iojson.WriteError(os.Stderr, "encode task", map[string]any{"position": r.Position})
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "No tasks found\n")
		return nil
	}

	placeholder := cmd.flags.DuePlaceholder()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tSTATUS\tDESCRIPTION\tDUE")
	for _, r := range rows {
		t := task.Task{Description: r.Description, DueDate: r.DueDate, Completed: r.Completed}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Position, t.StatusLabel(), t.Description, t.DueOr(placeholder))
	}

	return w.Flush()
}

func matches(pattern string, t task.Task) bool {
	ok, err := doublestar.Match(pattern, strings.ToLower(t.Description))
	return err == nil && ok
}
