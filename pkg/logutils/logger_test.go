package logutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "todolist.log")

	logger, closer, err := New("info", file)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"message":"visible"`)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"time"`)
}

func TestNew_Appends(t *testing.T) {
	file := filepath.Join(t.TempDir(), "todolist.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", file)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}

func TestNew_EmptyFileDiscards(t *testing.T) {
	logger, closer, err := New("debug", "")
	require.NoError(t, err)
	defer closer()

	logger.Info().Msg("nowhere")
}
