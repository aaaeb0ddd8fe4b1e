package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	due := "2024-01-01"
	tk := New("Buy milk", &due)

	assert.Equal(t, "Buy milk", tk.Description)
	assert.False(t, tk.Completed)
	require.NotNil(t, tk.DueDate)
	assert.NotSame(t, &due, tk.DueDate)
	assert.Equal(t, due, *tk.DueDate)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		position int
		want     string
	}{
		{
			name:     "pending with due date",
			task:     Task{Description: "Buy milk", DueDate: Date("2024-01-01")},
			position: 1,
			want:     "1. [Pending] Buy milk (Due: 2024-01-01)",
		},
		{
			name:     "done without due date",
			task:     Task{Description: "Walk dog", Completed: true},
			position: 3,
			want:     "3. [Done] Walk dog (Due: N/A)",
		},
		{
			name:     "empty due date renders placeholder",
			task:     Task{Description: "Task A", DueDate: Date("")},
			position: 2,
			want:     "2. [Pending] Task A (Due: N/A)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Format(tt.position, DefaultDuePlaceholder))
		})
	}
}

func TestHasDueDate(t *testing.T) {
	assert.False(t, Task{}.HasDueDate())
	assert.True(t, Task{DueDate: Date("")}.HasDueDate())
	assert.True(t, Task{DueDate: Date("soon")}.HasDueDate())
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "1", want: 0},
		{in: " 12 ", want: 11},
		{in: "0", want: -1},
		{in: "-4", want: -5},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePosition(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
