package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/todolist/pkg/tuitest"
)

func TestToastView_Empty(t *testing.T) {
	v := NewToastView(NewToastController())
	assert.Empty(t, v.View())
}

func TestToastView_StacksOldestFirst(t *testing.T) {
	c := NewToastController()
	c.Push(ToastInfo, "Task added.")
	c.Push(ToastError, "disk full")

	got := tuitest.StripANSI(NewToastView(c).View())
	assert.Equal(t, "● Task added.\n✘ disk full", got)
}
