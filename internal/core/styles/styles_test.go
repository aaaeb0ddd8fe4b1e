package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, []string{"gruvbox", "tokyo-night"}, names)
	assert.Contains(t, names, DefaultTheme)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Error, ErrorStyle.GetForeground())
}

func TestGetPalette_Unknown(t *testing.T) {
	_, ok := GetPalette("solarized")
	assert.False(t, ok)
}
