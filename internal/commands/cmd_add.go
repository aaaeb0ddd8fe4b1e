package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/core/logging"
	"github.com/hay-kot/todolist/internal/core/validate"
)

// PromptFunc asks the user for a description and due date.
type PromptFunc func() (description string, dueDate *string, err error)

type AddCmd struct {
	flags *Flags

	// flags
	due string

	// prompt is used when no description is given on an interactive
	// terminal. Nil disables prompting.
	prompt      PromptFunc
	interactive func() bool
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{
		flags:       flags,
		prompt:      promptTask,
		interactive: func() bool { return isTerminal(os.Stdin) && isTerminal(os.Stdout) },
	}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Aliases:   []string{"a"},
		Usage:     "Add a task",
		UsageText: "todolist add [--due <date>] <description...>",
		Description: `Appends a pending task to the list.

The description is the remaining arguments joined by spaces. --due is stored
verbatim without date parsing; omit it to leave the due date absent.

Run with no arguments on a terminal to be prompted for both fields.

Examples:
  todolist add Buy milk
  todolist add --due 2024-01-01 Pay rent`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "due",
				Aliases:     []string{"d"},
				Usage:       "optional due date, stored as typed",
				Destination: &cmd.due,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "add")

	description := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))

	var dueDate *string
	if c.IsSet("due") {
		due := strings.TrimSpace(cmd.due)
		dueDate = &due
	}

	if description == "" && c.NArg() == 0 && cmd.prompt != nil && cmd.interactive() {
		var err error
		description, dueDate, err = cmd.prompt()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := criterio.ValidateStruct(validate.DescriptionField("description", description)); err != nil {
		return err
	}

	store := cmd.flags.Store
	if err := store.Add(description, dueDate); err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	log.Debug().Ctx(ctx).Int("position", store.Len()).Msg("task added")

	_, _ = fmt.Fprintf(c.Root().Writer, "added task %d\n", store.Len())
	return nil
}

func promptTask() (string, *string, error) {
	var description, due string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task description").
				Validate(validate.Description).
				Value(&description),
			huh.NewInput().
				Title("Due date (optional)").
				Placeholder("e.g. 2024-01-01").
				Value(&due),
		),
	).Run()
	if err != nil {
		return "", nil, err
	}

	due = strings.TrimSpace(due)
	return strings.TrimSpace(description), &due, nil
}
