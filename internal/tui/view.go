package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/todolist/internal/core/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	sections := []string{
		styles.TitleStyle.Render("To-Do List"),
		m.renderList(),
		"",
		m.renderInput(m.description.View(), m.focus == focusDescription),
		m.renderInput(m.due.View(), m.focus == focusDue),
	}

	if m.toasts.HasToasts() {
		sections = append(sections, "", NewToastView(m.toasts).View())
	}

	sections = append(sections, styles.HelpStyle.Render(m.renderHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderList() string {
	box := styles.BlurredBoxStyle
	if m.focus == focusList {
		box = styles.FocusedBoxStyle
	}

	if len(m.tasks) == 0 {
		return box.Render(styles.MutedStyle.Render("No tasks yet. Add one below."))
	}

	rows := make([]string, len(m.tasks))
	for i, t := range m.tasks {
		line := t.Format(i+1, m.placeholder)

		switch {
		case i == m.cursor && m.focus == focusList:
			line = styles.SelectedStyle.Render("┃ " + line)
		case i == m.cursor:
			line = "┃ " + line
		case t.Completed:
			line = "  " + styles.DoneStyle.Render(line)
		default:
			line = "  " + styles.PendingStyle.Render(line)
		}
		rows[i] = line
	}

	return box.Render(strings.Join(rows, "\n"))
}

func (m Model) renderInput(view string, focused bool) string {
	if focused {
		return styles.FocusedBoxStyle.Render(view)
	}
	return styles.BlurredBoxStyle.Render(view)
}

func (m Model) renderHelp() string {
	if m.focus == focusList {
		return m.help.View(listHelp{m.keys})
	}
	return m.help.View(inputHelp{m.keys})
}
