package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mTitle\x1b[0m   \nline two  \n\n"
	assert.Equal(t, "Title\nline two", StripANSI(in))
}

func TestKeyPress(t *testing.T) {
	assert.Equal(t, "q", KeyPress('q').String())
	assert.Equal(t, "abc", KeyPressString("abc").String())
	assert.Equal(t, tea.KeyTab, Key(tea.KeyTab).Type)
	assert.Equal(t, "enter", KeyEnter().String())
}
