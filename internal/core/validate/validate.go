// Package validate provides shared validation functions.
package validate

import (
	"errors"
	"strings"

	"github.com/hay-kot/criterio"
)

// ErrDescriptionRequired is returned for a description that is blank after
// trimming whitespace.
var ErrDescriptionRequired = errors.New("task description cannot be empty")

// Description validates a task description is non-empty after trimming
// whitespace. The store itself accepts any text; this check belongs to the
// interfaces that take user input.
func Description(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// DescriptionField returns a criterio validator for task descriptions.
func DescriptionField(field, description string) error {
	return criterio.Run(field, description, Description)
}
