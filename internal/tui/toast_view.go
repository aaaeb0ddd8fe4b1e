package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/todolist/internal/core/styles"
)

const (
	iconToastInfo  = "●"
	iconToastError = "✘"
)

// ToastView renders the active toasts stacked vertically, oldest first.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

func (v *ToastView) View() string {
	if !v.controller.HasToasts() {
		return ""
	}

	rendered := make([]string, 0, len(v.controller.toasts))
	for _, t := range v.controller.toasts {
		rendered = append(rendered, renderToast(t))
	}

	return strings.Join(rendered, "\n")
}

func renderToast(t toast) string {
	var (
		icon  string
		style lipgloss.Style
	)

	switch t.level {
	case ToastError:
		icon = iconToastError
		style = styles.ErrorStyle
	default:
		icon = iconToastInfo
		style = styles.InfoStyle
	}

	return style.Render(icon + " " + t.message)
}
