package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BuzzLyutic/task-list/internal/model"
	"github.com/BuzzLyutic/task-list/internal/service"
	"github.com/BuzzLyutic/task-list/internal/view"
)

const helpText = "space: toggle • d: delete • a: add • j/k: move • q: quit"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// snapshot is filled by the service listener; shared between model copies.
type snapshot struct {
	tasks []model.Task
}

type Model struct {
	ctx    context.Context
	svc    *service.TaskService
	text   *view.TextRenderer
	snap   *snapshot
	rows   []view.Row
	cursor int
	adding bool
	input  textinput.Model
	status string
}

func New(ctx context.Context, svc *service.TaskService) Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 256
	ti.Width = 40

	snap := &snapshot{tasks: svc.List()}
	svc.OnChange(func(tasks []model.Task) { snap.tasks = tasks })

	m := Model{
		ctx:   ctx,
		svc:   svc,
		text:  view.NewTextRenderer(),
		snap:  snap,
		input: ti,
	}
	m.rebuild()
	return m
}

// Run blocks until the user quits.
func Run(ctx context.Context, svc *service.TaskService) error {
	_, err := tea.NewProgram(New(ctx, svc), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.adding {
			return m.updateAdd(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.input.Width = msg.Width - 10
		}
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		_, err := m.svc.Create(m.ctx, model.TaskInput{Title: m.input.Value()})
		if err != nil {
			m.status = failure(err)
			return m, nil
		}
		// Поле очищается только после успешного добавления
		m.input.SetValue("")
		m.input.Blur()
		m.adding = false
		m.status = "Added task"
		m.rebuild()
		m.cursor = clampCursor(len(m.rows)-1, len(m.rows))
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(m.rows))
	case "up", "k":
		m.cursor = clampCursor(m.cursor-1, len(m.rows))
	case "a":
		m.adding = true
		m.status = ""
		return m, m.input.Focus()
	case " ":
		if row, ok := m.selected(); ok {
			if err := row.Toggle(!row.Task.Completed); err != nil {
				m.status = failure(err)
				break
			}
			m.status = ""
			m.rebuild()
		}
	case "d":
		if row, ok := m.selected(); ok {
			if err := row.Delete(); err != nil {
				m.status = failure(err)
				break
			}
			m.status = fmt.Sprintf("Deleted %q", row.Task.Title)
			m.rebuild()
			m.cursor = clampCursor(m.cursor, len(m.rows))
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Tasks"))
	b.WriteString("\n")
	b.WriteString(m.text.Progress(view.ComputeProgress(m.snap.tasks)))
	b.WriteString("\n")
	b.WriteString(m.text.List(m.rows, m.cursor))

	if m.adding {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

// rebuild turns the last notified sequence into rows bound to the service.
func (m *Model) rebuild() {
	ctx, svc := m.ctx, m.svc
	toggle := func(id int64, completed bool) error { return svc.Toggle(ctx, id, completed) }
	remove := func(id int64) error { return svc.Delete(ctx, id) }
	m.rows = view.BuildRows(m.snap.tasks, toggle, remove)
}

func (m Model) selected() (view.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return view.Row{}, false
	}
	return m.rows[m.cursor], true
}

func failure(err error) string {
	if errors.Is(err, service.ErrValidation) {
		msg := strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
		if msg == "" {
			return "Invalid input"
		}
		return strings.ToUpper(msg[:1]) + msg[1:]
	}
	return fmt.Sprintf("save failed: %v", err)
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
