package commands

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/core/task"
)

// positionArg parses the single 1-based task position argument of c and
// returns it with the matching 0-based store index.
func positionArg(c *cli.Command, usage string) (position, index int, err error) {
	if c.NArg() != 1 {
		return 0, 0, fmt.Errorf("usage: %s", usage)
	}

	arg := c.Args().First()
	index, err = task.ParsePosition(arg)
	if err != nil {
		return 0, 0, err
	}

	return index + 1, index, nil
}

func noTaskError(position int) error {
	return fmt.Errorf("%w %d", task.ErrNoTask, position)
}
