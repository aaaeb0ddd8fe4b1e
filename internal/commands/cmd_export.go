package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/core/logging"
	"github.com/hay-kot/todolist/internal/core/styles"
	"github.com/hay-kot/todolist/internal/export"
)

var errBinaryToTerminal = errors.New("pdf output requires --output")

type ExportCmd struct {
	flags *Flags

	// flags
	format string
	output string
	plain  bool
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export tasks as json, csv, markdown or pdf",
		UsageText: "todolist export [--format <format>] [-o <file>]",
		Description: `Writes the task list in another format.

Markdown is rendered for the terminal when writing to one; pass --plain or
-o to get the raw checklist. PDF is binary and always needs -o.

Examples:
  todolist export
  todolist export --format csv -o tasks.csv
  todolist export --format pdf -o tasks.pdf`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"F"},
				Usage:       "output format (" + strings.Join(names, ", ") + ")",
				Value:       string(export.FormatMarkdown),
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write to file instead of stdout",
				Destination: &cmd.output,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "do not render markdown for the terminal",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "export")

	format, err := export.ParseFormat(cmd.format)
	if err != nil {
		return err
	}

	if format.Binary() && cmd.output == "" {
		return errBinaryToTerminal
	}

	tasks := cmd.flags.Store.Tasks()
	exporter := export.New(cmd.flags.DuePlaceholder())

	if cmd.output != "" {
		data, err := exporter.Export(tasks, format)
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}

		if dir := filepath.Dir(cmd.output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(cmd.output, data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}

		log.Info().Ctx(ctx).Str("format", string(format)).Str("output", cmd.output).Int("tasks", len(tasks)).Msg("tasks exported")
		_, _ = fmt.Fprintf(c.Root().Writer, "exported %d task(s) to %s\n", len(tasks), cmd.output)
		return nil
	}

	out := c.Root().Writer

	if format == export.FormatMarkdown && !cmd.plain && isTerminal(out) {
		rendered, err := export.RenderMarkdown(
			exporter.Markdown(tasks),
			styles.CurrentPalette.GlamourStyle,
			terminalWidth(out, 80),
		)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	}

	data, err := exporter.Export(tasks, format)
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	_, err = out.Write(data)
	return err
}
