package view

import "github.com/BuzzLyutic/task-list/internal/model"

type (
	ToggleFunc func(id int64, completed bool) error
	DeleteFunc func(id int64) error
)

// Row is one rendered task with its interaction handlers already bound to the task id.
type Row struct {
	Task model.Task

	onToggle ToggleFunc
	onDelete DeleteFunc
}

// BuildRows produces one row per task in sequence order. Nil callbacks are allowed
// for read-only rendering.
func BuildRows(tasks []model.Task, onToggle ToggleFunc, onDelete DeleteFunc) []Row {
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, Row{Task: t, onToggle: onToggle, onDelete: onDelete})
	}
	return rows
}

func (r Row) Toggle(completed bool) error {
	if r.onToggle == nil {
		return nil
	}
	return r.onToggle(r.Task.ID, completed)
}

func (r Row) Delete() error {
	if r.onDelete == nil {
		return nil
	}
	return r.onDelete(r.Task.ID)
}
