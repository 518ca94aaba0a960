package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/task-list/internal/model"
)

func TestTextRenderer_RenderList(t *testing.T) {
	r := NewTextRenderer()
	tasks := []model.Task{
		{ID: 1, Title: "Buy milk", Priority: model.PriorityLow},
		{ID: 2, Title: "Pay rent", Description: "landlord", DueDate: "2025-02-01", Priority: model.PriorityHigh, Completed: true},
	}

	var buf bytes.Buffer
	require.NoError(t, r.RenderList(&buf, BuildRows(tasks, nil, nil)))
	out := buf.String()

	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "Due: 2025-02-01")
	assert.Contains(t, out, "landlord")
	assert.Contains(t, out, "Priority: high")
	assert.Equal(t, 1, strings.Count(out, "Due:"))
}

func TestTextRenderer_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().RenderList(&buf, nil))
	assert.Contains(t, buf.String(), "No tasks yet.")
}

func TestTextRenderer_Cursor(t *testing.T) {
	r := NewTextRenderer()
	out := r.List(BuildRows(tasksWith(2, 0), nil, nil), 1)

	lines := strings.Split(out, "\n")
	assert.False(t, strings.Contains(lines[0], ">"))
	assert.Contains(t, out, "> [ ]")
}

func TestTextRenderer_Progress(t *testing.T) {
	r := &TextRenderer{BarWidth: 10}

	tests := []struct {
		name       string
		tasks      []model.Task
		wantFilled int
		wantText   string
	}{
		{name: "empty", tasks: nil, wantFilled: 0, wantText: "0%\n0 of 0 tasks completed"},
		{name: "half", tasks: tasksWith(2, 1), wantFilled: 5, wantText: "50%\n1 of 2 tasks completed"},
		{name: "full", tasks: tasksWith(3, 3), wantFilled: 10, wantText: "100%\n3 of 3 tasks completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.RenderProgress(&buf, tt.tasks))
			out := buf.String()

			assert.Equal(t, tt.wantFilled, strings.Count(out, "█"))
			assert.Equal(t, 10-tt.wantFilled, strings.Count(out, "░"))
			assert.Contains(t, out, tt.wantText)
		})
	}
}
