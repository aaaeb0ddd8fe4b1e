// Package task defines the to-do item domain model and the store contract
// the presentation layers depend on.
package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultDuePlaceholder is rendered in place of an absent or empty due date.
const DefaultDuePlaceholder = "N/A"

// ErrNoTask is returned by presentation code when a position does not
// address a task. The store itself never returns it.
var ErrNoTask = errors.New("no task at position")

// Task is a single to-do entry.
//
// DueDate distinguishes three states: nil (absent), a pointer to "" (empty)
// and a pointer to a non-empty string. It is never parsed as a date.
type Task struct {
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Completed   bool    `json:"completed"`
}

// New returns a pending task. The due date is copied so the caller's
// pointer is never aliased by the store.
func New(description string, dueDate *string) Task {
	return Task{
		Description: description,
		DueDate:     cloneDue(dueDate),
	}
}

// Date returns a pointer to s, for use as a present due date.
func Date(s string) *string {
	return &s
}

// HasDueDate reports whether the due date is present, including when it is
// the empty string.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// DueOr returns the due date, or placeholder when it is absent or empty.
func (t Task) DueOr(placeholder string) string {
	if t.DueDate == nil || *t.DueDate == "" {
		return placeholder
	}
	return *t.DueDate
}

// StatusLabel returns the bracketed status shown next to a task.
func (t Task) StatusLabel() string {
	if t.Completed {
		return "[Done]"
	}
	return "[Pending]"
}

// Format renders the task for display at the given 1-based position,
// e.g. "1. [Pending] Buy milk (Due: N/A)".
func (t Task) Format(position int, placeholder string) string {
	return fmt.Sprintf("%d. %s %s (Due: %s)", position, t.StatusLabel(), t.Description, t.DueOr(placeholder))
}

// Clone returns a deep copy of t.
func (t Task) Clone() Task {
	t.DueDate = cloneDue(t.DueDate)
	return t
}

// ParsePosition converts a 1-based position typed by a user into a 0-based
// store index. It only rejects text that is not an integer; range checks are
// left to the store.
func ParsePosition(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid task number %q", s)
	}
	return n - 1, nil
}

func cloneDue(d *string) *string {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
