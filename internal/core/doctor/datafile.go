package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/todolist/internal/store/jsonfile"
)

// DataFileCheck verifies that the task file exists and holds a valid
// document. A file that fails to decode would be silently replaced by an
// empty list on the next save, so with autofix it is moved aside to
// <path>.bak.
type DataFileCheck struct {
	path    string
	autofix bool
}

// NewDataFileCheck creates a new data file check.
func NewDataFileCheck(path string, autofix bool) *DataFileCheck {
	return &DataFileCheck{path: path, autofix: autofix}
}

func (c *DataFileCheck) Name() string {
	return "Task File"
}

func (c *DataFileCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	info, err := os.Stat(c.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		result.Items = append(result.Items, CheckItem{
			Label:  "file",
			Status: StatusWarn,
			Detail: c.path + " does not exist yet, it is created on the first change",
		})
		return result
	case err != nil:
		result.Items = append(result.Items, CheckItem{Label: "file", Status: StatusFail, Detail: err.Error()})
		return result
	case info.IsDir():
		result.Items = append(result.Items, CheckItem{Label: "file", Status: StatusFail, Detail: c.path + " is a directory"})
		return result
	}

	result.Items = append(result.Items, CheckItem{Label: "file", Status: StatusPass, Detail: c.path})

	data, err := os.ReadFile(c.path)
	if err != nil {
		result.Items = append(result.Items, CheckItem{Label: "document", Status: StatusFail, Detail: err.Error()})
		return result
	}

	tasks, err := jsonfile.DecodeDocument(data)
	if err != nil {
		item := CheckItem{Label: "document", Status: StatusFail, Detail: err.Error(), Fixable: true}
		if c.autofix {
			backup := c.path + ".bak"
			if err := os.Rename(c.path, backup); err != nil {
				item.Detail = fmt.Sprintf("%s (move aside failed: %v)", item.Detail, err)
			} else {
				item.Status = StatusWarn
				item.Detail = "invalid document moved to " + backup
			}
		}
		result.Items = append(result.Items, item)
		return result
	}

	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "document",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d task(s), %d completed", len(tasks), done),
	})

	return result
}
