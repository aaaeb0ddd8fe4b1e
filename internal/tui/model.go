// Package tui implements the interactive to-do list interface.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/todolist/internal/core/logging"
	"github.com/hay-kot/todolist/internal/core/task"
	"github.com/hay-kot/todolist/internal/core/validate"
)

// User facing notifications. The store reports no-ops silently, so the
// interface owns these messages.
const (
	msgEmptyDescription = "Task description cannot be empty."
	msgNoSelection      = "No task selected."
	msgTaskAdded        = "Task added."
)

type focusArea int

const (
	focusList focusArea = iota
	focusDescription
	focusDue
	focusCount
)

type toastTickMsg struct{}

// Opts configures the model.
type Opts struct {
	// DuePlaceholder is shown for tasks with an absent or empty due date.
	DuePlaceholder string
}

// Model is the bubbletea model for the task list. It holds no task state of
// its own beyond a snapshot refreshed from the store after every mutation.
type Model struct {
	store       task.Store
	placeholder string
	log         zerolog.Logger

	tasks  []task.Task
	cursor int
	focus  focusArea

	description textinput.Model
	due         textinput.Model

	keys   keyMap
	help   help.Model
	toasts *ToastController

	width  int
	height int
}

// New creates a model backed by store.
func New(store task.Store, opts Opts) Model {
	if opts.DuePlaceholder == "" {
		opts.DuePlaceholder = task.DefaultDuePlaceholder
	}

	desc := textinput.New()
	desc.Placeholder = "What needs doing?"
	desc.Prompt = "Task Description: "
	desc.CharLimit = 256

	due := textinput.New()
	due.Placeholder = "e.g. 2024-01-01"
	due.Prompt = "Due Date (optional): "
	due.CharLimit = 64

	m := Model{
		store:       store,
		placeholder: opts.DuePlaceholder,
		log:         logging.Component("tui"),
		description: desc,
		due:         due,
		keys:        defaultKeyMap(),
		help:        help.New(),
		toasts:      NewToastController(),
	}
	m.setFocus(focusDescription)
	m.refresh()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if !m.toasts.HasToasts() {
			m.toasts.SetTicking(false)
			return m, nil
		}
		return m, toastTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQ):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	}

	if m.focus == focusList {
		return m.handleListKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.setFocus(focusList)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.addTask()
	}

	return m.updateInputs(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Complete):
		return m, m.completeSelected()
	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteSelected()
	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.Dismiss()
	}

	return m, nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds [2]tea.Cmd
	m.description, cmds[0] = m.description.Update(msg)
	m.due, cmds[1] = m.due.Update(msg)
	return m, tea.Batch(cmds[:]...)
}

// addTask validates the inputs and appends a task. The due date is trimmed
// and stored verbatim, so an empty field is kept as "".
func (m *Model) addTask() tea.Cmd {
	description := strings.TrimSpace(m.description.Value())
	dueDate := strings.TrimSpace(m.due.Value())

	if validate.Description(description) != nil {
		return m.notify(ToastError, msgEmptyDescription)
	}

	if err := m.store.Add(description, &dueDate); err != nil {
		m.log.Error().Err(err).Msg("add task")
		return m.notify(ToastError, "Could not save task: "+err.Error())
	}

	m.description.Reset()
	m.due.Reset()
	m.setFocus(focusDescription)
	m.refresh()
	m.cursor = len(m.tasks) - 1

	return m.notify(ToastInfo, msgTaskAdded)
}

func (m *Model) completeSelected() tea.Cmd {
	if len(m.tasks) == 0 {
		return m.notify(ToastError, msgNoSelection)
	}

	if _, err := m.store.MarkCompleted(m.cursor); err != nil {
		m.log.Error().Err(err).Int("index", m.cursor).Msg("mark completed")
		return m.notify(ToastError, "Could not save task: "+err.Error())
	}

	m.refresh()
	return nil
}

func (m *Model) deleteSelected() tea.Cmd {
	if len(m.tasks) == 0 {
		return m.notify(ToastError, msgNoSelection)
	}

	if _, err := m.store.Delete(m.cursor); err != nil {
		m.log.Error().Err(err).Int("index", m.cursor).Msg("delete task")
		return m.notify(ToastError, "Could not save task: "+err.Error())
	}

	m.refresh()
	return nil
}

// refresh re-reads the store and keeps the cursor in range.
func (m *Model) refresh() {
	m.tasks = m.store.Tasks()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.description.Blur()
	m.due.Blur()

	switch f {
	case focusDescription:
		m.description.Focus()
	case focusDue:
		m.due.Focus()
	}
}

func (m *Model) notify(level ToastLevel, message string) tea.Cmd {
	m.toasts.Push(level, message)
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return toastTick()
}

func toastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}
