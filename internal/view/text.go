package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BuzzLyutic/task-list/internal/model"
)

const defaultBarWidth = 30

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	fillStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	priorityStyles = map[model.Priority]lipgloss.Style{
		model.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		model.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		model.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// TextRenderer renders rows and progress for a terminal.
type TextRenderer struct {
	BarWidth int
}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{BarWidth: defaultBarWidth}
}

func (r *TextRenderer) RenderList(w io.Writer, rows []Row) error {
	_, err := io.WriteString(w, r.List(rows, -1))
	return err
}

func (r *TextRenderer) RenderProgress(w io.Writer, tasks []model.Task) error {
	_, err := io.WriteString(w, r.Progress(ComputeProgress(tasks)))
	return err
}

// List returns the rendered rows; cursor marks the selected row, -1 for none.
func (r *TextRenderer) List(rows []Row, cursor int) string {
	if len(rows) == 0 {
		return dimStyle.Render("No tasks yet.") + "\n"
	}

	var b strings.Builder
	for i, row := range rows {
		b.WriteString(r.row(row, i == cursor))
	}
	return b.String()
}

func (r *TextRenderer) row(row Row, selected bool) string {
	t := row.Task

	pointer := "  "
	if selected {
		pointer = cursorStyle.Render("> ")
	}
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}

	title := titleStyle.Render(t.Title)
	if t.Completed {
		title = doneStyle.Render(t.Title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s %s\n", pointer, box, title, dimStyle.Render(fmt.Sprintf("#%d", t.ID)))
	if t.DueDate != "" {
		fmt.Fprintf(&b, "      Due: %s\n", t.DueDate)
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "      %s\n", t.Description)
	}
	prio, ok := priorityStyles[t.Priority]
	if !ok {
		prio = dimStyle
	}
	fmt.Fprintf(&b, "      Priority: %s\n", prio.Render(t.Priority.String()))
	return b.String()
}

// Progress returns a bar whose filled length is proportional to the percent,
// followed by the summary line.
func (r *TextRenderer) Progress(p Progress) string {
	width := r.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}
	filled := width * p.Percent / 100

	bar := fillStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d%%\n%s\n", bar, p.Percent, p.Summary())
}
