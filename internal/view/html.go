package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/BuzzLyutic/task-list/internal/model"
)

//go:embed templates/page.html
var templateFS embed.FS

// PageData is everything the full page needs.
type PageData struct {
	Rows       []Row
	Progress   Progress
	Form       model.TaskInput
	Error      string
	Priorities []string
}

type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

func (h *HTMLRenderer) RenderList(w io.Writer, rows []Row) error {
	return h.tmpl.ExecuteTemplate(w, "list", rows)
}

func (h *HTMLRenderer) RenderProgress(w io.Writer, tasks []model.Task) error {
	return h.tmpl.ExecuteTemplate(w, "progress", ComputeProgress(tasks))
}

// RenderPage writes the form, the progress summary and the list. An empty
// form priority selects low.
func (h *HTMLRenderer) RenderPage(w io.Writer, data PageData) error {
	if data.Form.Priority == "" {
		data.Form.Priority = string(model.PriorityLow)
	}
	if data.Priorities == nil {
		for _, p := range model.Priorities() {
			data.Priorities = append(data.Priorities, string(p))
		}
	}
	return h.tmpl.ExecuteTemplate(w, "page", data)
}
