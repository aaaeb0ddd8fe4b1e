package task

// Store defines the operations a presentation layer may invoke on the task
// list. Indices are 0-based positions in insertion order.
type Store interface {
	// Tasks returns a copy of the current list in order.
	Tasks() []Task

	// Len returns the number of tasks.
	Len() int

	// Get returns the task at index. ok is false when index is out of range.
	Get(index int) (t Task, ok bool)

	// Add appends a pending task and persists the list. The description is
	// not validated.
	Add(description string, dueDate *string) error

	// Delete removes the task at index and persists the list. An out-of-range
	// index is a no-op that returns false and writes nothing.
	Delete(index int) (bool, error)

	// MarkCompleted flags the task at index as completed and persists the
	// list, with the same no-op policy as Delete.
	MarkCompleted(index int) (bool, error)

	// Replace swaps the whole list and persists it.
	Replace(tasks []Task) error
}
