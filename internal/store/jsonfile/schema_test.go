package jsonfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/todolist/internal/core/task"
)

func TestDecodeDocument(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []task.Task
		wantErr string
	}{
		{
			name:  "empty array",
			input: `[]`,
			want:  []task.Task{},
		},
		{
			name:  "all keys present",
			input: `[{"description": "Buy milk", "due_date": "2024-01-01", "completed": true}]`,
			want:  []task.Task{{Description: "Buy milk", DueDate: task.Date("2024-01-01"), Completed: true}},
		},
		{
			name:  "missing optional keys default",
			input: `[{"description": "Walk dog"}]`,
			want:  []task.Task{{Description: "Walk dog"}},
		},
		{
			name:  "null due date is absent",
			input: `[{"description": "A", "due_date": null, "completed": false}]`,
			want:  []task.Task{{Description: "A"}},
		},
		{
			name:  "empty due date is kept",
			input: `[{"description": "A", "due_date": ""}]`,
			want:  []task.Task{{Description: "A", DueDate: task.Date("")}},
		},
		{
			name:  "extra keys ignored",
			input: `[{"description": "A", "priority": 3}]`,
			want:  []task.Task{{Description: "A"}},
		},
		{
			name:    "invalid json",
			input:   `[{"description": `,
			wantErr: "parse document",
		},
		{
			name:    "object instead of array",
			input:   `{"description": "A"}`,
			wantErr: "validate document",
		},
		{
			name:    "missing description",
			input:   `[{"due_date": "tomorrow"}]`,
			wantErr: "validate document",
		},
		{
			name:  "null completed is pending",
			input: `[{"description": "A", "completed": null}]`,
			want:  []task.Task{{Description: "A"}},
		},
		{
			name:  "non boolean completed is pending",
			input: `[{"description": "A", "completed": "yes"}, {"description": "B", "completed": 1}]`,
			want:  []task.Task{{Description: "A"}, {Description: "B"}},
		},
		{
			name:  "numeric due date keeps its text",
			input: `[{"description": "A", "due_date": 20240101}, {"description": "B", "due_date": true}]`,
			want: []task.Task{
				{Description: "A", DueDate: task.Date("20240101")},
				{Description: "B", DueDate: task.Date("true")},
			},
		},
		{
			name:  "structured due date is absent",
			input: `[{"description": "A", "due_date": {"day": 1}}, {"description": "B", "due_date": [1]}]`,
			want:  []task.Task{{Description: "A"}, {Description: "B"}},
		},
		{
			name:    "non string description",
			input:   `[{"description": 42}]`,
			wantErr: "/0/description",
		},
		{
			name:    "null document",
			input:   `null`,
			wantErr: "validate document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDocument([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDocument(t *testing.T) {
	t.Run("nil encodes as empty array", func(t *testing.T) {
		data, err := EncodeDocument(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("four space indent with null due date", func(t *testing.T) {
		data, err := EncodeDocument([]task.Task{{Description: "Buy milk"}})
		require.NoError(t, err)

		want := "[\n" +
			"    {\n" +
			"        \"description\": \"Buy milk\",\n" +
			"        \"due_date\": null,\n" +
			"        \"completed\": false\n" +
			"    }\n" +
			"]\n"
		assert.Equal(t, want, string(data))
	})

	t.Run("html characters are not escaped", func(t *testing.T) {
		data, err := EncodeDocument([]task.Task{{Description: "fish & chips <today>"}})
		require.NoError(t, err)
		assert.Contains(t, string(data), "fish & chips <today>")
	})

	t.Run("decodes back to the same list", func(t *testing.T) {
		in := []task.Task{
			{Description: "A", DueDate: task.Date("2024-02-02"), Completed: true},
			{Description: "B", DueDate: task.Date("")},
			{Description: "C"},
		}

		data, err := EncodeDocument(in)
		require.NoError(t, err)

		out, err := DecodeDocument(data)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}
