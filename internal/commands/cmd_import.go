package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/core/logging"
	"github.com/hay-kot/todolist/internal/core/task"
	"github.com/hay-kot/todolist/internal/store/jsonfile"
	"github.com/hay-kot/todolist/pkg/iojson"
)

type ImportCmd struct {
	flags  *Flags
	reader *iojson.FileReader[[]task.Task]

	// flags
	appendTasks bool
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags) *ImportCmd {
	return &ImportCmd{
		flags:  flags,
		reader: &iojson.FileReader[[]task.Task]{Decode: jsonfile.DecodeDocument},
	}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Replace or extend the task list from a JSON document",
		UsageText: "todolist import [-f <file>] [--append]",
		Description: `Reads a task list in the same format as the data file and stores it.

The document must be a JSON array of objects with a string "description" and
optional "due_date" (string or null) and "completed" (boolean) keys. It is
validated before anything is written. Without --append the current list is
replaced.

Examples:
  todolist import -f backup.json
  cat tasks.json | todolist import --append`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.BoolFlag{
				Name:        "append",
				Aliases:     []string{"a"},
				Usage:       "append to the current list instead of replacing it",
				Destination: &cmd.appendTasks,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "import")

	incoming, err := cmd.reader.Read()
	if err != nil {
		return fmt.Errorf("read tasks: %w", err)
	}

	store := cmd.flags.Store
	tasks := incoming
	if cmd.appendTasks {
		tasks = append(store.Tasks(), incoming...)
	}

	if err := store.Replace(tasks); err != nil {
		return fmt.Errorf("import tasks: %w", err)
	}

	log.Info().Ctx(ctx).Int("imported", len(incoming)).Bool("append", cmd.appendTasks).Msg("tasks imported")

	_, _ = fmt.Fprintf(c.Root().Writer, "imported %d task(s), %d total\n", len(incoming), store.Len())
	return nil
}
