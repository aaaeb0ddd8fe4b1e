// Package jsonfile implements task persistence backed by a single JSON file.
package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/hay-kot/todolist/internal/core/logging"
	"github.com/hay-kot/todolist/internal/core/task"
)

// DefaultFileName is the backing file name used when none is configured.
const DefaultFileName = "tasks.json"

var _ task.Store = (*TaskStore)(nil)

// TaskStore owns the in-memory task list and mirrors it to a JSON file on
// every mutation. It is the only writer of the file.
//
// TaskStore is not safe for concurrent use; it expects a single owner.
type TaskStore struct {
	path  string
	tasks []task.Task
	log   zerolog.Logger
}

// Open creates a store for path and loads its contents. A missing or
// malformed file yields an empty list.
func Open(path string) *TaskStore {
	s := &TaskStore{
		path: path,
		log:  logging.ForFile("store", path),
	}
	s.Load()
	return s
}

// Path returns the backing file path.
func (s *TaskStore) Path() string {
	return s.path
}

// Load replaces the in-memory list with the file contents. Read and decode
// failures are logged and leave the list empty; they are never returned.
func (s *TaskStore) Load() {
	s.tasks = []task.Task{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Debug().Msg("task file not found, starting empty")
			return
		}
		s.log.Warn().Err(err).Msg("task file unreadable, starting empty")
		return
	}

	if len(data) == 0 {
		s.log.Warn().Msg("task file is empty, starting empty")
		return
	}

	tasks, err := DecodeDocument(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("task file malformed, starting empty")
		return
	}

	s.tasks = tasks
	s.log.Debug().Int("count", len(tasks)).Msg("loaded tasks")
}

// Tasks returns a copy of the current list.
func (s *TaskStore) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Get returns the task at index.
func (s *TaskStore) Get(index int) (task.Task, bool) {
	if !s.inRange(index) {
		return task.Task{}, false
	}
	return s.tasks[index].Clone(), true
}

// Add appends a pending task and persists the list.
func (s *TaskStore) Add(description string, dueDate *string) error {
	s.tasks = append(s.tasks, task.New(description, dueDate))
	s.log.Debug().Int("index", len(s.tasks)-1).Msg("task added")
	return s.Save()
}

// Delete removes the task at index and persists. Out-of-range indices are
// ignored and report false.
func (s *TaskStore) Delete(index int) (bool, error) {
	if !s.inRange(index) {
		s.log.Debug().Int("index", index).Msg("delete ignored, index out of range")
		return false, nil
	}

	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	s.log.Debug().Int("index", index).Msg("task deleted")
	return true, s.Save()
}

// MarkCompleted flags the task at index as completed and persists.
// Out-of-range indices are ignored and report false.
func (s *TaskStore) MarkCompleted(index int) (bool, error) {
	if !s.inRange(index) {
		s.log.Debug().Int("index", index).Msg("complete ignored, index out of range")
		return false, nil
	}

	s.tasks[index].Completed = true
	s.log.Debug().Int("index", index).Msg("task completed")
	return true, s.Save()
}

// Replace swaps the whole list and persists it.
func (s *TaskStore) Replace(tasks []task.Task) error {
	s.tasks = make([]task.Task, len(tasks))
	for i, t := range tasks {
		s.tasks[i] = t.Clone()
	}
	s.log.Debug().Int("count", len(tasks)).Msg("tasks replaced")
	return s.Save()
}

// Save writes the full list to the backing file, replacing its contents.
// The write goes through a temporary file renamed over the target.
func (s *TaskStore) Save() error {
	data, err := EncodeDocument(s.tasks)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace task file: %w", err)
	}

	return nil
}

func (s *TaskStore) inRange(index int) bool {
	return index >= 0 && index < len(s.tasks)
}
