package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/core/logging"
)

type DoneCmd struct {
	flags *Flags
}

// NewDoneCmd creates a new done command
func NewDoneCmd(flags *Flags) *DoneCmd {
	return &DoneCmd{flags: flags}
}

// Register adds the done command to the application
func (cmd *DoneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "done",
		Aliases:   []string{"complete"},
		Usage:     "Mark a task completed",
		UsageText: "todolist done <n>",
		Description: `Marks the task at 1-based position n as completed.

Positions are the numbers shown by "todolist ls".`,
		Action: cmd.run,
	})

	return app
}

func (cmd *DoneCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "done")

	position, index, err := positionArg(c, "todolist done <n>")
	if err != nil {
		return err
	}

	ok, err := cmd.flags.Store.MarkCompleted(index)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	if !ok {
		log.Debug().Ctx(ctx).Int("position", position).Msg("no task at position")
		return noTaskError(position)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "completed task %d\n", position)
	return nil
}
