package iojson

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrTerminalInput is returned when no file is given and stdin is a terminal.
var ErrTerminalInput = errors.New("no input provided (stdin is a terminal); use -f flag or pipe JSON input")

// FileReader reads a payload from the file named by its --file flag, falling
// back to stdin. Decode turns the raw bytes into T, letting callers apply
// their own validation.
type FileReader[T any] struct {
	Decode func([]byte) (T, error)

	// Stdin defaults to os.Stdin. IsTerminal defaults to a TTY check on
	// os.Stdin.
	Stdin      io.Reader
	IsTerminal func() bool

	fileFlagValue string
}

// Flag returns the --file flag bound to this reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// Read loads and decodes the payload.
func (fr *FileReader[T]) Read() (T, error) {
	var zero T

	data, err := fr.readAll()
	if err != nil {
		return zero, err
	}

	out, err := fr.Decode(data)
	if err != nil {
		return zero, fmt.Errorf("decode JSON: %w", err)
	}

	return out, nil
}

func (fr *FileReader[T]) readAll() ([]byte, error) {
	if fr.fileFlagValue != "" {
		data, err := os.ReadFile(fr.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return data, nil
	}

	isTTY := fr.IsTerminal
	if isTTY == nil {
		isTTY = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	}
	if isTTY() {
		return nil, ErrTerminalInput
	}

	in := fr.Stdin
	if in == nil {
		in = os.Stdin
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
