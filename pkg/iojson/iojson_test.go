package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteLine(&buf, map[string]int{"a": 1}))
	require.NoError(t, WriteLine(&buf, map[string]int{"b": 2}))

	assert.Equal(t, "{\"a\":1}\n{\"b\":2}\n", buf.String())
}

func TestWriteLine_MarshalFailure(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLine(&buf, make(chan int))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestWriteIndent_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Error(t, WriteIndent(&out, &errOut, make(chan int)))

	assert.Empty(t, out.String())

	var e Error
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &e))
	assert.Equal(t, "error marshaling in iojson.WriteIndent", e.Message)
	assert.Contains(t, e.Data["json_error"], "chan int")
}

func TestMarshalError(t *testing.T) {
	got := MarshalError("bad input", map[string]any{"field": "due"})

	var e Error
	require.NoError(t, json.Unmarshal([]byte(got), &e))
	assert.Equal(t, "bad input", e.Message)
	assert.Equal(t, "due", e.Data["field"])
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, "oops", nil))
	assert.Equal(t, "{\"message\":\"oops\"}\n", buf.String())
}

func decodeStrings(data []byte) ([]string, error) {
	var out []string
	err := json.Unmarshal(data, &out)
	return out, err
}

func TestFileReader(t *testing.T) {
	t.Run("reads file flag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.json")
		require.NoError(t, os.WriteFile(path, []byte(`["a","b"]`), 0o644))

		fr := &FileReader[[]string]{Decode: decodeStrings}
		fr.fileFlagValue = path

		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("reads piped stdin", func(t *testing.T) {
		fr := &FileReader[[]string]{
			Decode:     decodeStrings,
			Stdin:      strings.NewReader(`["x"]`),
			IsTerminal: func() bool { return false },
		}

		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, got)
	})

	t.Run("refuses terminal stdin", func(t *testing.T) {
		fr := &FileReader[[]string]{
			Decode:     decodeStrings,
			IsTerminal: func() bool { return true },
		}

		_, err := fr.Read()
		assert.ErrorIs(t, err, ErrTerminalInput)
	})

	t.Run("missing file", func(t *testing.T) {
		fr := &FileReader[[]string]{Decode: decodeStrings}
		fr.fileFlagValue = filepath.Join(t.TempDir(), "nope.json")

		_, err := fr.Read()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open file")
	})

	t.Run("decode failure is wrapped", func(t *testing.T) {
		fr := &FileReader[[]string]{
			Decode:     decodeStrings,
			Stdin:      strings.NewReader(`{`),
			IsTerminal: func() bool { return false },
		}

		_, err := fr.Read()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode JSON")
	})

	t.Run("flag binds destination", func(t *testing.T) {
		fr := &FileReader[[]string]{Decode: decodeStrings}
		f := fr.Flag()
		assert.Equal(t, "file", f.Name)
		assert.Equal(t, []string{"f"}, f.Aliases)
	})
}
