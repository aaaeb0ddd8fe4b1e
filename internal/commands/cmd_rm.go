package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/core/logging"
)

type RmCmd struct {
	flags *Flags
}

// NewRmCmd creates a new rm command
func NewRmCmd(flags *Flags) *RmCmd {
	return &RmCmd{flags: flags}
}

// Register adds the rm command to the application
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "Delete a task",
		UsageText: "todolist rm <n>",
		Description: `Deletes the task at 1-based position n.

Later tasks move up by one position.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "rm")

	position, index, err := positionArg(c, "todolist rm <n>")
	if err != nil {
		return err
	}

	ok, err := cmd.flags.Store.Delete(index)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !ok {
		log.Debug().Ctx(ctx).Int("position", position).Msg("no task at position")
		return noTaskError(position)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "deleted task %d\n", position)
	return nil
}
