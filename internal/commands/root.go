package commands

import "github.com/urfave/cli/v3"

// NewApp builds the root command with the global flags bound to flags and
// every subcommand registered. The caller wires Before, After and the
// default action.
func NewApp(flags *Flags) (*cli.Command, *TuiCmd) {
	app := &cli.Command{
		Name:      "todolist",
		Usage:     "Keep a small list of things to do",
		UsageText: "todolist [global options] command [command options]",
		Description: `todolist keeps a single list of tasks, each with a description, an optional
due date and a completion flag, in a JSON file.

Run 'todolist' with no arguments to open the interactive list.
Run 'todolist add <description>' to add a task from a script.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TODOLIST_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/todolist.log)",
				Sources:     cli.EnvVars("TODOLIST_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (.yaml or .toml)",
				Sources:     cli.EnvVars("TODOLIST_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TODOLIST_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "data-file",
				Usage:       "path to the task file (defaults to <data-dir>/tasks.json)",
				Sources:     cli.EnvVars("TODOLIST_DATA_FILE"),
				Destination: &flags.DataFile,
			},
		},
	}

	tuiCmd := NewTuiCmd(flags)

	app = NewAddCmd(flags).Register(app)
	app = NewDoneCmd(flags).Register(app)
	app = NewRmCmd(flags).Register(app)
	app = NewLsCmd(flags).Register(app)
	app = NewImportCmd(flags).Register(app)
	app = NewExportCmd(flags).Register(app)
	app = NewDoctorCmd(flags).Register(app)
	app = tuiCmd.Register(app)

	return app, tuiCmd
}
