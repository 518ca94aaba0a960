package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/task-list/internal/model"
)

func newHTML(t *testing.T) *HTMLRenderer {
	t.Helper()
	h, err := NewHTMLRenderer()
	require.NoError(t, err)
	return h
}

func TestHTMLRenderer_RenderList(t *testing.T) {
	h := newHTML(t)
	tasks := []model.Task{
		{ID: 1, Title: "Buy milk", Priority: model.PriorityLow},
		{ID: 2, Title: "File taxes", Description: "Use the new form", DueDate: "2025-04-15", Priority: model.PriorityHigh, Completed: true},
	}

	var buf bytes.Buffer
	require.NoError(t, h.RenderList(&buf, BuildRows(tasks, nil, nil)))
	out := buf.String()

	assert.Equal(t, 2, strings.Count(out, `<li class="task`))
	assert.Less(t, strings.Index(out, "Buy milk"), strings.Index(out, "File taxes"), "rows keep sequence order")

	assert.Contains(t, out, `action="/tasks/1/toggle"`)
	assert.Contains(t, out, `action="/tasks/2/delete"`)
	assert.Contains(t, out, `<li class="task completed" data-id="2">`)
	assert.Contains(t, out, `<li class="task" data-id="1">`)
	assert.Contains(t, out, "Due: 2025-04-15")
	assert.Contains(t, out, "Use the new form")
	assert.Contains(t, out, "Priority: high")
	assert.Contains(t, out, "Priority: low")
	assert.Equal(t, 1, strings.Count(out, " checked>"), "only the completed row is checked")
	assert.Equal(t, 1, strings.Count(out, "Due: "), "due date only when present")
	assert.Equal(t, 1, strings.Count(out, `class="desc"`), "description only when present")
}

func TestHTMLRenderer_ToggleSubmitsInverse(t *testing.T) {
	h := newHTML(t)

	var buf bytes.Buffer
	require.NoError(t, h.RenderList(&buf, BuildRows([]model.Task{
		{ID: 1, Title: "open", Priority: model.PriorityLow},
		{ID: 2, Title: "done", Priority: model.PriorityLow, Completed: true},
	}, nil, nil)))
	out := buf.String()

	first := out[:strings.Index(out, `data-id="2"`)]
	assert.Contains(t, first, `name="completed" value="true"`)
	assert.Contains(t, out[len(first):], `name="completed" value="false"`)
}

func TestHTMLRenderer_EscapesContent(t *testing.T) {
	h := newHTML(t)

	var buf bytes.Buffer
	require.NoError(t, h.RenderList(&buf, BuildRows([]model.Task{
		{ID: 1, Title: "<script>alert(1)</script>", Priority: model.PriorityLow},
	}, nil, nil)))

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestHTMLRenderer_RenderProgress(t *testing.T) {
	h := newHTML(t)

	tests := []struct {
		name  string
		tasks []model.Task
		want  []string
	}{
		{
			name:  "empty",
			tasks: nil,
			want:  []string{"width: 0%", ">0%<", "0 of 0 tasks completed"},
		},
		{
			name:  "partial",
			tasks: tasksWith(4, 1),
			want:  []string{"width: 25%", ">25%<", "1 of 4 tasks completed"},
		},
		{
			name:  "full",
			tasks: tasksWith(2, 2),
			want:  []string{"width: 100%", ">100%<", "2 of 2 tasks completed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, h.RenderProgress(&buf, tt.tasks))
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestHTMLRenderer_RenderPage(t *testing.T) {
	h := newHTML(t)

	var buf bytes.Buffer
	err := h.RenderPage(&buf, PageData{
		Rows:     BuildRows(tasksWith(1, 0), nil, nil),
		Progress: ComputeProgress(tasksWith(1, 0)),
		Form:     model.TaskInput{Title: "   ", Priority: "medium"},
		Error:    "Title is required",
	})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, `id="taskForm"`)
	assert.Contains(t, out, "Title is required")
	assert.Contains(t, out, `<option value="medium" selected>`)
	assert.NotContains(t, out, `<option value="low" selected>`)
	assert.Contains(t, out, "0 of 1 tasks completed")
}

func TestHTMLRenderer_RenderPageDefaultPriority(t *testing.T) {
	h := newHTML(t)

	var buf bytes.Buffer
	require.NoError(t, h.RenderPage(&buf, PageData{}))

	assert.Contains(t, buf.String(), `<option value="low" selected>`)
	assert.NotContains(t, buf.String(), `class="error"`)
}
