package model

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DateLayout is the format of Task.DueDate (HTML date input value).
const DateLayout = "2006-01-02"

type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"desc"`
	DueDate     string   `json:"date"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
}

// TaskInput - поля формы создания задачи
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
	DueDate     string `json:"date"`
	Priority    string `json:"priority"`
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// ParsePriority accepts any letter case and surrounding spaces. Empty input
// means the form default, low.
func ParsePriority(s string) (Priority, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PriorityLow, nil
	}
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}
